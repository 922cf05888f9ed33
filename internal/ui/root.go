package ui

import (
	"fmt"
	"log"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/tosoham/ResumeGrader/internal/config"
	"github.com/tosoham/ResumeGrader/internal/export"
	"github.com/tosoham/ResumeGrader/internal/grader"
	"github.com/tosoham/ResumeGrader/internal/model"
	"github.com/tosoham/ResumeGrader/internal/platform"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	graderSvc    grader.Grader
	exportSvc    export.Exporter

	// Current selection and submission state driving the submit control
	selectedFilePath string
	currentStatus    model.SubmissionStatus

	selectBtn     *widget.Button
	submitBtn     *widget.Button
	saveReportBtn *widget.Button
	fileLabel     *widget.Label

	// Notification panel under the file row
	notificationContainer *fyne.Container
	notificationLabel     *widget.Label
	notificationSpinner   *widget.ProgressBarInfinite

	// Error panel, shown when a submission settles with an error
	errorContainer *fyne.Container
	errorLabel     *widget.Label

	resultContainer *fyne.Container
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, graderSvc grader.Grader, exportSvc export.Exporter) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		graderSvc:    graderSvc,
		exportSvc:    exportSvc,
	}

	log.Printf("RootUI initialized with grading service: %v", ui.graderSvc != nil)

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	// Set up callback for submission updates
	ui.graderSvc.SetUpdateCallback(ui.onSubmissionUpdate)

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	// Create file selection row
	ui.selectBtn = widget.NewButton(ui.localization.GetText(KeySelectFile), ui.onSelectFileClick)
	ui.fileLabel = widget.NewLabel(ui.localization.GetText(KeyNoFileSelected))
	ui.fileLabel.Truncation = fyne.TextTruncateEllipsis

	// Create submit button, inert until a file is selected
	ui.submitBtn = widget.NewButton(ui.localization.GetText(KeySubmit), ui.onSubmitClick)
	ui.submitBtn.Importance = widget.HighImportance
	ui.submitBtn.Disable()

	// Create settings button
	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	// Create logo
	logo, err := LoadLogoResource()
	var logoImage *canvas.Image
	if err == nil {
		logoImage = canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
	} else {
		// Fallback to text if logo loading fails
		logoImage = nil
	}

	// Create top panel (file row) with logo
	var topPanel *fyne.Container
	if logoImage != nil {
		topPanel = container.NewBorder(nil, nil, container.NewHBox(logoImage, settingsBtn, ui.selectBtn), ui.submitBtn, ui.fileLabel)
	} else {
		topPanel = container.NewBorder(nil, nil, container.NewHBox(settingsBtn, ui.selectBtn), ui.submitBtn, ui.fileLabel)
	}

	// Create notification panel under the file row (hidden by default)
	ui.notificationLabel = widget.NewLabel("")
	ui.notificationLabel.Alignment = fyne.TextAlignLeading
	ui.notificationSpinner = widget.NewProgressBarInfinite()
	ui.notificationSpinner.Hide()
	ui.notificationContainer = container.NewHBox(ui.notificationSpinner, container.NewPadded(ui.notificationLabel))
	ui.notificationContainer.Hide()

	// Create error panel (hidden until a submission fails)
	ui.errorLabel = widget.NewLabel("")
	ui.errorLabel.Wrapping = fyne.TextWrapWord
	ui.errorLabel.Importance = widget.DangerImportance
	ui.errorContainer = container.NewHBox(widget.NewLabel(IconError), ui.errorLabel)
	ui.errorContainer.Hide()

	// Save report button, shown once a graded report exists
	ui.saveReportBtn = widget.NewButton(IconSave+" "+ui.localization.GetText(KeySaveReport), ui.onSaveReport)
	ui.saveReportBtn.Hide()

	// Combine file row, notification and error panels at the top
	topCombined := container.NewVBox(topPanel, ui.notificationContainer, ui.errorContainer)

	// Result area, filled when a submission completes
	ui.resultContainer = container.NewVBox()
	resultScroll := container.NewVScroll(ui.resultContainer)
	resultScroll.SetMinSize(fyne.NewSize(0, ResultMinHeight))

	content := container.NewBorder(
		topCombined,                          // top
		container.NewHBox(ui.saveReportBtn), // bottom
		nil,                                 // left
		nil,                                 // right
		resultScroll,                        // center
	)

	ui.window.SetContent(content)

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	// Settings menu item
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	// Create main menu
	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	// Update localization
	ui.localization.SetLanguage(langCode)

	// Save to settings
	ui.settings.SetLanguage(langCode)

	// Update UI texts
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	// Update window title
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	// Update UI elements
	ui.selectBtn.SetText(ui.localization.GetText(KeySelectFile))
	ui.submitBtn.SetText(ui.localization.GetText(KeySubmit))
	ui.saveReportBtn.SetText(IconSave + " " + ui.localization.GetText(KeySaveReport))
	if ui.selectedFilePath == "" {
		ui.fileLabel.SetText(ui.localization.GetText(KeyNoFileSelected))
	}
}

// onSelectFileClick opens the PDF picker
func (ui *RootUI) onSelectFileClick() {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			log.Printf("Error selecting file: %v", err)
			ui.showError(err.Error())
			return
		}
		if reader == nil {
			// User cancelled
			return
		}
		path := reader.URI().Path()
		reader.Close()

		ui.setSelectedFile(path)
	}, ui.window)

	fileDialog.SetFilter(storage.NewExtensionFileFilter([]string{".pdf"}))
	fileDialog.Show()
}

// setSelectedFile records the chosen PDF and refreshes the file row. PDF
// metadata is informational only; a file that cannot be inspected locally is
// still submittable, the service has the final word.
func (ui *RootUI) setSelectedFile(path string) {
	ui.selectedFilePath = path
	ui.hideError()

	label := ui.describeSelectedFile(path)
	ui.fileLabel.SetText(IconFile + " " + label)

	ui.refreshSubmitState()

	log.Printf("Selected resume file: %s", path)
}

// describeSelectedFile builds the file row label from local PDF metadata.
func (ui *RootUI) describeSelectedFile(path string) string {
	info, err := platform.ReadPDFInfo(path)
	if err != nil {
		log.Printf("Could not read PDF metadata for %s: %v", path, err)
		return filepath.Base(path)
	}

	label := filepath.Base(path) + MiddleDotSeparator + formatFileSize(info.FileSize)
	if info.PageCount == 1 {
		label += MiddleDotSeparator + SinglePageLabel
	} else if info.PageCount > 1 {
		label += MiddleDotSeparator + fmt.Sprintf(PageCountFormat, info.PageCount)
	}
	return label
}

// onSubmitClick handles the submit button click
func (ui *RootUI) onSubmitClick() {
	if !model.CanSubmit(ui.selectedFilePath, ui.currentStatus) {
		if ui.currentStatus.IsActive() {
			ui.showNotification(ui.localization.GetText(KeyAlreadyInFlight), true)
		} else {
			ui.showNotification(ui.localization.GetText(KeyPleaseSelectFile), false)
		}
		return
	}

	mode := ui.settings.GetAnalysisMode()
	log.Printf("Submitting resume %s (mode=%s)", ui.selectedFilePath, mode)

	ui.hideError()
	ui.clearResult()

	sub, err := ui.graderSvc.Submit(ui.selectedFilePath, mode)
	if err != nil {
		log.Printf("Error submitting resume: %v", err)
		ui.showError(err.Error())
		return
	}

	log.Printf("Submission started: ID=%s, Status=%s", sub.ID, sub.Status)
}

// onSubmissionUpdate receives submission state changes from the grading
// service goroutine and forwards them to the UI thread.
func (ui *RootUI) onSubmissionUpdate(sub *model.Submission) {
	fyne.Do(func() {
		ui.applySubmissionUpdate(sub)
	})
}

// applySubmissionUpdate reflects a submission state change in the widgets.
// Must be called on the UI thread.
func (ui *RootUI) applySubmissionUpdate(sub *model.Submission) {
	if sub == nil {
		return
	}

	ui.currentStatus = sub.Status
	log.Printf("Submission %s status: %s", sub.ID, sub.Status)

	switch {
	case sub.Status.IsActive():
		ui.showNotification(ui.localization.GetText(KeyUploading), true)
	case sub.Status == model.StatusError:
		ui.hideNotification()
		message := ui.localization.GetText(KeyAnalysisFailed)
		if sub.LastError != "" {
			message += ": " + sub.LastError
		}
		ui.showError(message)
	case sub.Status == model.StatusCompleted:
		ui.showNotification(ui.localization.GetText(KeyAnalysisComplete), false)
		ui.hideError()
		ui.showReport(sub.Report)
	}

	ui.refreshSubmitState()
}

// showReport fills the result area with the rendered analysis
func (ui *RootUI) showReport(report *model.AnalysisReport) {
	ui.clearResult()

	view := NewReportView(report, ui.localization)
	if view == nil {
		return
	}

	ui.resultContainer.Add(view)
	ui.resultContainer.Refresh()
	ui.saveReportBtn.Show()
}

// clearResult empties the result area and hides the save button
func (ui *RootUI) clearResult() {
	ui.resultContainer.RemoveAll()
	ui.saveReportBtn.Hide()
	ui.resultContainer.Refresh()
}

// refreshSubmitState enables the submit button only when a file is selected
// and no submission is in flight
func (ui *RootUI) refreshSubmitState() {
	if model.CanSubmit(ui.selectedFilePath, ui.currentStatus) {
		ui.submitBtn.Enable()
	} else {
		ui.submitBtn.Disable()
	}
}

// showNotification displays a message in the notification panel under the
// file row. When spinning is true, a spinner indicates background activity.
func (ui *RootUI) showNotification(message string, spinning bool) {
	if ui.notificationLabel == nil || ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	ui.notificationLabel.SetText(message)
	if spinning {
		ui.notificationSpinner.Show()
	} else {
		ui.notificationSpinner.Hide()
	}
	ui.notificationContainer.Show()
	ui.notificationContainer.Refresh()
}

// hideNotification hides the notification panel.
func (ui *RootUI) hideNotification() {
	if ui.notificationContainer == nil || ui.notificationSpinner == nil {
		return
	}
	ui.notificationSpinner.Hide()
	ui.notificationContainer.Hide()
}

// showError surfaces a failure in the error panel
func (ui *RootUI) showError(message string) {
	if ui.errorLabel == nil || ui.errorContainer == nil {
		return
	}
	ui.errorLabel.SetText(message)
	ui.errorContainer.Show()
	ui.errorContainer.Refresh()
}

// hideError hides the error panel
func (ui *RootUI) hideError() {
	if ui.errorContainer == nil {
		return
	}
	ui.errorContainer.Hide()
}

// onSaveReport exports the latest report as JSON to the Documents directory
func (ui *RootUI) onSaveReport() {
	sub, ok := ui.graderSvc.LatestSubmission()
	if !ok || sub.Report == nil {
		ui.showNotification(ui.localization.GetText(KeyErrorSavingReport), false)
		return
	}

	dir, err := platform.GetHomeDocumentsDir()
	if err != nil {
		log.Printf("Error resolving documents directory: %v", err)
		ui.showError(ui.localization.GetText(KeyErrorSavingReport) + ": " + err.Error())
		return
	}

	path, err := ui.exportSvc.ExportReport(sub, dir)
	if err != nil {
		log.Printf("Error exporting report: %v", err)
		ui.showError(ui.localization.GetText(KeyErrorSavingReport) + ": " + err.Error())
		return
	}

	log.Printf("Report saved to %s", path)
	confirm := dialog.NewCustomConfirm(
		ui.localization.GetText(KeyReportSaved),
		ui.localization.GetText(KeyReveal),
		ui.localization.GetText(KeyCancel),
		widget.NewLabel(path),
		func(reveal bool) {
			if !reveal {
				return
			}
			if err := platform.OpenFileInManager(path); err != nil {
				log.Printf("Error revealing report %s: %v", path, err)
			}
		},
		ui.window,
	)
	confirm.Show()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.graderSvc, func() {
		widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeySettingsSaved)), ui.window.Canvas())
	})
}
