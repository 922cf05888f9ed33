package config

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/tosoham/ResumeGrader/internal/model"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestServerBaseURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	base := settings.GetServerBaseURL()
	if base != DefaultServerBaseURL {
		t.Errorf("Expected default base URL %s, got %s", DefaultServerBaseURL, base)
	}

	// Test setting custom value
	settings.SetServerBaseURL("http://grader.example.com:9000")
	if got := settings.GetServerBaseURL(); got != "http://grader.example.com:9000" {
		t.Errorf("Expected base URL http://grader.example.com:9000, got %s", got)
	}

	// Trailing slashes must not survive into request URLs
	settings.SetServerBaseURL("http://grader.example.com:9000/")
	if got := settings.GetServerBaseURL(); got != "http://grader.example.com:9000" {
		t.Errorf("Expected trimmed base URL, got %s", got)
	}
}

func TestServerBaseURL_EnvFallback(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	t.Setenv(EnvServerBaseURL, "http://env.example.com:8000")

	base := settings.GetServerBaseURL()
	if base != "http://env.example.com:8000" {
		t.Errorf("Expected env fallback http://env.example.com:8000, got %s", base)
	}
}

func TestRequestTimeout(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	timeout := settings.GetRequestTimeout()
	if timeout != DefaultTimeoutSec*time.Second {
		t.Errorf("Expected default timeout %ds, got %v", DefaultTimeoutSec, timeout)
	}

	// Test setting custom value
	settings.SetRequestTimeoutSec(30)
	if got := settings.GetRequestTimeout(); got != 30*time.Second {
		t.Errorf("Expected timeout 30s, got %v", got)
	}

	// Test boundary values
	settings.SetRequestTimeoutSec(1) // Should be clamped to MinTimeoutSec
	if settings.GetRequestTimeout() != MinTimeoutSec*time.Second {
		t.Errorf("Timeout should be clamped to minimum %ds", MinTimeoutSec)
	}

	settings.SetRequestTimeoutSec(1000) // Should be clamped to MaxTimeoutSec
	if settings.GetRequestTimeout() != MaxTimeoutSec*time.Second {
		t.Errorf("Timeout should be clamped to maximum %ds", MaxTimeoutSec)
	}
}

func TestAnalysisMode(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	mode := settings.GetAnalysisMode()
	if mode != DefaultAnalysisMode {
		t.Errorf("Expected default analysis mode %s, got %s", DefaultAnalysisMode, mode)
	}

	// Test setting custom value
	settings.SetAnalysisMode(model.ModeParse)
	if got := settings.GetAnalysisMode(); got != model.ModeParse {
		t.Errorf("Expected analysis mode %s, got %s", model.ModeParse, got)
	}

	// Unknown modes fall back to the default
	settings.SetAnalysisMode(model.AnalysisMode("bogus"))
	if got := settings.GetAnalysisMode(); got != DefaultAnalysisMode {
		t.Errorf("Unknown mode should default to %s, got %s", DefaultAnalysisMode, got)
	}
}

func TestGetAnalysisModeOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetAnalysisModeOptions()
	expectedOptions := []model.AnalysisMode{model.ModeGrade, model.ModeParse}

	if len(options) != len(expectedOptions) {
		t.Fatalf("Expected %d analysis mode options, got %d", len(expectedOptions), len(options))
	}

	for i, expected := range expectedOptions {
		if options[i] != expected {
			t.Errorf("Analysis mode option %d: expected %s, got %s", i, expected, options[i])
		}
	}
}

func TestLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	lang := settings.GetLanguage()
	if lang != DefaultLanguage {
		t.Errorf("Expected default language %s, got %s", DefaultLanguage, lang)
	}

	// Test setting custom value
	settings.SetLanguage("en")
	if got := settings.GetLanguage(); got != "en" {
		t.Errorf("Expected language 'en', got %s", got)
	}
}

func TestGetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetLanguageOptions()

	expectedLangs := []string{"system", "en", "ru", "pt"}
	for _, lang := range expectedLangs {
		if _, exists := options[lang]; !exists {
			t.Errorf("Expected language option '%s' to exist", lang)
		}
	}

	if len(options) != len(expectedLangs) {
		t.Errorf("Expected %d language options, got %d", len(expectedLangs), len(options))
	}
}
