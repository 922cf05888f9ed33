package ui

import (
	"context"
	"log"
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/tosoham/ResumeGrader/internal/config"
	"github.com/tosoham/ResumeGrader/internal/grader"
	"github.com/tosoham/ResumeGrader/internal/model"
)

const healthCheckTimeout = 5 * time.Second

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	graderSvc    grader.Grader
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	serverURLEntry *widget.Entry
	timeoutEntry   *widget.Entry
	modeSelect     *widget.Select
	languageSelect *widget.Select
	healthLabel    *widget.Label
}

// ShowSettingsDialog builds and shows the settings dialog
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, graderSvc grader.Grader, onSaved func()) {
	sd := NewSettingsDialog(window, settings, localization, graderSvc, onSaved)
	sd.Show()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, graderSvc grader.Grader, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		graderSvc:    graderSvc,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	loc := sd.localization

	// Grading service base URL
	sd.serverURLEntry = widget.NewEntry()
	sd.serverURLEntry.SetPlaceHolder(config.DefaultServerBaseURL)

	// Request timeout in seconds
	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder("5-300")

	// Analysis mode selection
	modeOptions := []string{}
	for _, mode := range sd.settings.GetAnalysisModeOptions() {
		modeOptions = append(modeOptions, sd.modeLabel(mode))
	}
	sd.modeSelect = widget.NewSelect(modeOptions, nil)

	// Language selection
	languageOptions := []string{}
	languageLabels := sd.settings.GetLanguageOptions()
	for code := range languageLabels {
		languageOptions = append(languageOptions, code)
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)
	sd.languageSelect.PlaceHolder = "Select language"

	// Connection probe against the grading service
	sd.healthLabel = widget.NewLabel("")
	testBtn := widget.NewButton(loc.GetText(KeyTestConnection), sd.onTestConnection)
	healthRow := container.NewBorder(nil, nil, nil, testBtn, sd.healthLabel)

	// Create form
	form := container.NewVBox(
		widget.NewLabel(loc.GetText(KeyServerURL)+":"),
		sd.serverURLEntry,

		widget.NewLabel(loc.GetText(KeyRequestTimeout)+":"),
		sd.timeoutEntry,

		widget.NewLabel(loc.GetText(KeyAnalysisMode)+":"),
		sd.modeSelect,

		healthRow,

		widget.NewSeparator(),

		widget.NewLabel(loc.GetText(KeyLanguage)+":"),
		sd.languageSelect,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		loc.GetText(KeySettings),
		loc.GetText(KeySave),
		loc.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.serverURLEntry.SetText(sd.settings.GetServerBaseURL())
	sd.timeoutEntry.SetText(strconv.Itoa(int(sd.settings.GetRequestTimeout().Seconds())))
	sd.modeSelect.SetSelected(sd.modeLabel(sd.settings.GetAnalysisMode()))
	sd.languageSelect.SetSelected(sd.settings.GetLanguage())
	sd.healthLabel.SetText("")
}

// modeLabel maps an analysis mode to its localized display label
func (sd *SettingsDialog) modeLabel(mode model.AnalysisMode) string {
	if mode == model.ModeParse {
		return sd.localization.GetText(KeyModeParse)
	}
	return sd.localization.GetText(KeyModeGrade)
}

// selectedMode maps the display label back to an analysis mode
func (sd *SettingsDialog) selectedMode() model.AnalysisMode {
	if sd.modeSelect.Selected == sd.localization.GetText(KeyModeParse) {
		return model.ModeParse
	}
	return model.ModeGrade
}

// onTestConnection probes the grading service health endpoint. The URL from
// the entry is applied first so the probe tests what will be saved.
func (sd *SettingsDialog) onTestConnection() {
	probe := sd.graderSvc
	if base := sd.serverURLEntry.Text; base != "" {
		probe = grader.NewService(grader.NewClient(base, healthCheckTimeout))
	}

	sd.healthLabel.SetText("...")

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), healthCheckTimeout)
		defer cancel()

		err := probe.CheckHealth(ctx)
		fyne.Do(func() {
			if err != nil {
				log.Printf("Health check failed: %v", err)
				sd.healthLabel.SetText(IconError + " " + sd.localization.GetText(KeyConnectionFailed))
				return
			}
			sd.healthLabel.SetText(sd.localization.GetText(KeyConnectionOK))
		})
	}()
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	// Validate and save server base URL
	if base := sd.serverURLEntry.Text; base != "" {
		sd.settings.SetServerBaseURL(base)
	}

	// Validate and save request timeout
	if timeoutStr := sd.timeoutEntry.Text; timeoutStr != "" {
		if sec, err := strconv.Atoi(timeoutStr); err == nil {
			sd.settings.SetRequestTimeoutSec(sec)
		}
	}

	// Save analysis mode
	if sd.modeSelect.Selected != "" {
		sd.settings.SetAnalysisMode(sd.selectedMode())
	}

	// Save language
	if sd.languageSelect.Selected != "" {
		sd.settings.SetLanguage(sd.languageSelect.Selected)
	}

	// Reconfigure the grading service with the saved endpoint
	sd.graderSvc.Configure(sd.settings.GetServerBaseURL(), sd.settings.GetRequestTimeout())

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
