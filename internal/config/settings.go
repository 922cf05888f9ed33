package config

import (
	"os"
	"strings"
	"time"

	"fyne.io/fyne/v2"

	"github.com/tosoham/ResumeGrader/internal/model"
)

// Settings keys for Fyne preferences
const (
	KeyServerBaseURL = "server_base_url"
	KeyTimeoutSec    = "request_timeout_sec"
	KeyAnalysisMode  = "analysis_mode"
	KeyLanguage      = "app_language"
)

// EnvServerBaseURL overrides the default grading service URL when no
// preference is stored yet. Typically sourced from a .env file at startup.
const EnvServerBaseURL = "RESUME_GRADER_API_URL"

// Default values
const (
	DefaultServerBaseURL = "http://localhost:8000"
	DefaultTimeoutSec    = 60
	DefaultAnalysisMode  = model.ModeGrade
	DefaultLanguage      = "system"

	MinTimeoutSec = 5
	MaxTimeoutSec = 300
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetServerBaseURL returns the grading service base URL. Resolution order:
// stored preference, environment value, hardcoded local default.
func (s *Settings) GetServerBaseURL() string {
	base := s.app.Preferences().String(KeyServerBaseURL)
	if base == "" {
		base = os.Getenv(EnvServerBaseURL)
		if base == "" {
			base = DefaultServerBaseURL
		}
		s.SetServerBaseURL(base)
	}
	return strings.TrimRight(base, "/")
}

// SetServerBaseURL sets the grading service base URL
func (s *Settings) SetServerBaseURL(base string) {
	s.app.Preferences().SetString(KeyServerBaseURL, strings.TrimRight(strings.TrimSpace(base), "/"))
}

// GetRequestTimeout returns the per-request timeout
func (s *Settings) GetRequestTimeout() time.Duration {
	sec := s.app.Preferences().Int(KeyTimeoutSec)
	if sec <= 0 {
		s.SetRequestTimeoutSec(DefaultTimeoutSec)
		return DefaultTimeoutSec * time.Second
	}
	return time.Duration(sec) * time.Second
}

// SetRequestTimeoutSec sets the per-request timeout in seconds
func (s *Settings) SetRequestTimeoutSec(sec int) {
	if sec < MinTimeoutSec {
		sec = MinTimeoutSec
	}
	if sec > MaxTimeoutSec {
		sec = MaxTimeoutSec
	}
	s.app.Preferences().SetInt(KeyTimeoutSec, sec)
}

// GetAnalysisMode returns the configured analysis mode
func (s *Settings) GetAnalysisMode() model.AnalysisMode {
	mode := s.app.Preferences().String(KeyAnalysisMode)
	if mode == "" {
		s.SetAnalysisMode(DefaultAnalysisMode)
		return DefaultAnalysisMode
	}
	return model.AnalysisMode(mode)
}

// SetAnalysisMode sets the analysis mode
func (s *Settings) SetAnalysisMode(mode model.AnalysisMode) {
	if mode != model.ModeGrade && mode != model.ModeParse {
		mode = DefaultAnalysisMode
	}
	s.app.Preferences().SetString(KeyAnalysisMode, string(mode))
}

// GetAnalysisModeOptions returns available analysis modes
func (s *Settings) GetAnalysisModeOptions() []model.AnalysisMode {
	return []model.AnalysisMode{model.ModeGrade, model.ModeParse}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
