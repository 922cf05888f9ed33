package ui

import (
	"strings"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/tosoham/ResumeGrader/internal/model"
)

// collectTexts walks a rendered view and gathers all visible label and card
// texts, for assertions on what the view actually shows.
func collectTexts(obj fyne.CanvasObject, out *[]string) {
	switch v := obj.(type) {
	case *widget.Label:
		if v.Text != "" {
			*out = append(*out, v.Text)
		}
	case *widget.Card:
		if v.Title != "" {
			*out = append(*out, v.Title)
		}
		if v.Content != nil {
			collectTexts(v.Content, out)
		}
	case *fyne.Container:
		for _, child := range v.Objects {
			collectTexts(child, out)
		}
	case *container.Scroll:
		collectTexts(v.Content, out)
	}
}

func renderedTexts(t *testing.T, report *model.AnalysisReport) []string {
	t.Helper()

	view := NewReportView(report, NewLocalization())
	if view == nil {
		t.Fatal("Expected a rendered view, got nil")
	}

	texts := []string{}
	collectTexts(view, &texts)
	return texts
}

func containsText(texts []string, want string) bool {
	for _, text := range texts {
		if strings.Contains(text, want) {
			return true
		}
	}
	return false
}

func TestNewReportView_NilReport(t *testing.T) {
	test.NewApp()

	if view := NewReportView(nil, NewLocalization()); view != nil {
		t.Error("Expected nil view for nil report")
	}
}

func TestNewReportView_EmptyReport(t *testing.T) {
	test.NewApp()

	texts := renderedTexts(t, &model.AnalysisReport{Success: true})
	if !containsText(texts, model.NotAvailable) {
		t.Errorf("Expected placeholder for empty report, got %v", texts)
	}
}

func TestNewReportView_ScoreOnly(t *testing.T) {
	test.NewApp()

	score := 72.0
	report := &model.AnalysisReport{
		Success:       true,
		GradingResult: &model.GradingResult{OverallScore: &score},
	}

	texts := renderedTexts(t, report)

	if !containsText(texts, "72 / 100") {
		t.Errorf("Expected overall score line, got %v", texts)
	}

	// No section scores were returned, so no section heading should render
	loc := NewLocalization()
	if containsText(texts, loc.GetText(KeySectionScores)) {
		t.Errorf("Did not expect section scores heading, got %v", texts)
	}
	if containsText(texts, loc.GetText(KeyParsedHeading)) {
		t.Errorf("Did not expect parsed resume card, got %v", texts)
	}
}

func TestNewReportView_FullGrading(t *testing.T) {
	test.NewApp()

	score := 81.5
	report := &model.AnalysisReport{
		Success: true,
		GradingResult: &model.GradingResult{
			OverallScore: &score,
			SectionScores: map[string]float64{
				"experience": 85,
				"skills":     70.5,
			},
			Strengths:        []string{"Strong project portfolio"},
			Improvements:     []string{"Add measurable outcomes"},
			DetailedFeedback: "Solid resume overall.",
		},
	}

	texts := renderedTexts(t, report)

	for _, want := range []string{"81.5 / 100", "85", "70.5", "Strong project portfolio", "Add measurable outcomes", "Solid resume overall."} {
		if !containsText(texts, want) {
			t.Errorf("Expected %q in rendered view, got %v", want, texts)
		}
	}
}

func TestNewReportView_ParsedOnly(t *testing.T) {
	test.NewApp()

	report := &model.AnalysisReport{
		Success: true,
		ParsedData: &model.ParsedData{
			PersonalInfo: model.PersonalInfo{Name: "Jane Doe", Email: "jane@example.com"},
			Experience: []model.ExperienceEntry{
				{Company: "Acme", Position: "Engineer", Duration: "2020-2023"},
			},
			Skills: []string{"Go", "SQL"},
		},
	}

	texts := renderedTexts(t, report)

	loc := NewLocalization()
	if containsText(texts, loc.GetText(KeyOverallScore)) {
		t.Errorf("Did not expect grading card for parse-only report, got %v", texts)
	}

	for _, want := range []string{"Jane Doe", "jane@example.com", "Acme", "Go, SQL"} {
		if !containsText(texts, want) {
			t.Errorf("Expected %q in rendered view, got %v", want, texts)
		}
	}
}

func TestNewReportView_NestedParsedData(t *testing.T) {
	test.NewApp()

	// The grade endpoint nests parsed content inside grading_result
	score := 60.0
	report := &model.AnalysisReport{
		Success: true,
		GradingResult: &model.GradingResult{
			OverallScore: &score,
			ParsedData: &model.ParsedData{
				Skills: []string{"Python"},
			},
		},
	}

	texts := renderedTexts(t, report)
	if !containsText(texts, "Python") {
		t.Errorf("Expected nested parsed skills to render, got %v", texts)
	}
}
