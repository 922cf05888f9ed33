package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/tosoham/ResumeGrader/internal/model"
)

// NewReportView builds the result area for a finished analysis. It renders
// only the sections the service actually returned: a score-only body yields
// just the grading card, a parse-only body just the parsed resume. A nil
// report yields nil so callers can clear the result area.
func NewReportView(report *model.AnalysisReport, loc *Localization) fyne.CanvasObject {
	if report == nil {
		return nil
	}

	sections := []fyne.CanvasObject{}

	if report.HasGrading() {
		sections = append(sections, buildGradingSection(report.Grading(), loc))
	}
	if parsed := report.Parsed(); parsed != nil {
		if parsedSection := buildParsedSection(parsed, loc); parsedSection != nil {
			sections = append(sections, parsedSection)
		}
	}

	if len(sections) == 0 {
		return widget.NewLabel(model.NotAvailable)
	}

	return container.NewVBox(sections...)
}

// buildGradingSection renders the overall score, per-section scores and the
// textual feedback lists.
func buildGradingSection(grading *model.GradingResult, loc *Localization) fyne.CanvasObject {
	items := []fyne.CanvasObject{}

	overall := widget.NewLabelWithStyle(
		fmt.Sprintf(ScoreLineFormat, grading.OverallScoreText()),
		fyne.TextAlignLeading,
		fyne.TextStyle{Bold: true},
	)
	items = append(items, overall)

	if len(grading.SectionScores) > 0 {
		items = append(items, widget.NewSeparator())
		items = append(items, buildSectionScores(grading, loc))
	}

	if len(grading.Strengths) > 0 {
		items = append(items, widget.NewSeparator())
		items = append(items, buildBulletList(loc.GetText(KeyStrengths), grading.Strengths))
	}

	if len(grading.Improvements) > 0 {
		items = append(items, widget.NewSeparator())
		items = append(items, buildBulletList(loc.GetText(KeyTips), grading.Improvements))
	}

	if grading.DetailedFeedback != "" {
		feedback := widget.NewLabel(grading.DetailedFeedback)
		feedback.Wrapping = fyne.TextWrapWord
		items = append(items, widget.NewSeparator())
		items = append(items, widget.NewLabelWithStyle(loc.GetText(KeyDetailedFeedback), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
		items = append(items, feedback)
	}

	return widget.NewCard(loc.GetText(KeyOverallScore), "", container.NewVBox(items...))
}

// buildSectionScores lays out one score row per graded section, in the
// canonical section order.
func buildSectionScores(grading *model.GradingResult, loc *Localization) fyne.CanvasObject {
	rows := container.NewVBox(widget.NewLabelWithStyle(loc.GetText(KeySectionScores), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
	for _, section := range model.SectionNames {
		if _, ok := grading.SectionScores[section]; !ok {
			continue
		}
		name := widget.NewLabel(loc.GetText(section))
		score := widget.NewLabelWithStyle(grading.SectionScoreText(section), fyne.TextAlignTrailing, fyne.TextStyle{Monospace: true})
		rows.Add(container.NewBorder(nil, nil, name, score))
	}
	return rows
}

// buildParsedSection renders the structured resume content. Empty sections
// are skipped entirely; returns nil when nothing is worth showing.
func buildParsedSection(parsed *model.ParsedData, loc *Localization) fyne.CanvasObject {
	items := []fyne.CanvasObject{}

	if parsed.PersonalInfo.HasContact() {
		items = append(items, buildPersonalInfo(parsed.PersonalInfo, loc))
	}

	if len(parsed.Experience) > 0 {
		entries := make([]fyne.CanvasObject, 0, len(parsed.Experience))
		for _, exp := range parsed.Experience {
			entries = append(entries, buildExperienceEntry(exp))
		}
		items = append(items, buildSubsection(loc.GetText(KeyExperience), entries))
	}

	if len(parsed.Education) > 0 {
		entries := make([]fyne.CanvasObject, 0, len(parsed.Education))
		for _, edu := range parsed.Education {
			entries = append(entries, buildEducationEntry(edu))
		}
		items = append(items, buildSubsection(loc.GetText(KeyEducation), entries))
	}

	if len(parsed.Skills) > 0 {
		skills := widget.NewLabel(strings.Join(parsed.Skills, ", "))
		skills.Wrapping = fyne.TextWrapWord
		items = append(items, buildSubsection(loc.GetText(KeySkills), []fyne.CanvasObject{skills}))
	}

	if len(parsed.Projects) > 0 {
		entries := make([]fyne.CanvasObject, 0, len(parsed.Projects))
		for _, proj := range parsed.Projects {
			entries = append(entries, buildProjectEntry(proj))
		}
		items = append(items, buildSubsection(loc.GetText(KeyProjects), entries))
	}

	if len(items) == 0 {
		return nil
	}

	return widget.NewCard(loc.GetText(KeyParsedHeading), "", container.NewVBox(items...))
}

func buildPersonalInfo(info model.PersonalInfo, loc *Localization) fyne.CanvasObject {
	fields := []struct {
		labelKey string
		value    string
	}{
		{KeyFieldName, info.Name},
		{KeyFieldEmail, info.Email},
		{KeyFieldPhone, info.Phone},
		{KeyFieldAddress, info.Address},
		{KeyFieldLinkedIn, info.LinkedIn},
		{KeyFieldGitHub, info.GitHub},
	}

	rows := []fyne.CanvasObject{}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		label := widget.NewLabelWithStyle(loc.GetText(f.labelKey), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
		value := widget.NewLabel(f.value)
		value.Wrapping = fyne.TextWrapWord
		rows = append(rows, container.NewBorder(nil, nil, label, nil, value))
	}
	return buildSubsection(loc.GetText(KeyPersonalInfo), rows)
}

func buildExperienceEntry(exp model.ExperienceEntry) fyne.CanvasObject {
	title := model.FieldOrPlaceholder(exp.Position)
	if exp.Company != "" {
		title += MiddleDotSeparator + exp.Company
	}

	lines := []fyne.CanvasObject{
		widget.NewLabelWithStyle(title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
	}
	if exp.Duration != "" {
		lines = append(lines, widget.NewLabel(exp.Duration))
	}
	if exp.Description != "" {
		desc := widget.NewLabel(exp.Description)
		desc.Wrapping = fyne.TextWrapWord
		lines = append(lines, desc)
	}
	for _, achievement := range exp.KeyAchievements {
		item := widget.NewLabel("• " + achievement)
		item.Wrapping = fyne.TextWrapWord
		lines = append(lines, item)
	}
	return container.NewVBox(lines...)
}

func buildEducationEntry(edu model.EducationEntry) fyne.CanvasObject {
	title := model.FieldOrPlaceholder(edu.Degree)
	if edu.FieldOfStudy != "" {
		title += MiddleDotSeparator + edu.FieldOfStudy
	}

	lines := []fyne.CanvasObject{
		widget.NewLabelWithStyle(title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
	}

	detail := edu.Institution
	if edu.Year != "" {
		if detail != "" {
			detail += MiddleDotSeparator
		}
		detail += edu.Year
	}
	if edu.GPA != "" {
		if detail != "" {
			detail += MiddleDotSeparator
		}
		detail += "GPA " + edu.GPA
	}
	if detail != "" {
		lines = append(lines, widget.NewLabel(detail))
	}
	return container.NewVBox(lines...)
}

func buildProjectEntry(proj model.ProjectEntry) fyne.CanvasObject {
	lines := []fyne.CanvasObject{
		widget.NewLabelWithStyle(model.FieldOrPlaceholder(proj.Name), fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
	}
	if proj.Description != "" {
		desc := widget.NewLabel(proj.Description)
		desc.Wrapping = fyne.TextWrapWord
		lines = append(lines, desc)
	}
	if len(proj.Technologies) > 0 {
		tech := widget.NewLabel(strings.Join(proj.Technologies, ", "))
		tech.Wrapping = fyne.TextWrapWord
		lines = append(lines, tech)
	}
	if proj.URL != "" {
		lines = append(lines, widget.NewLabel(proj.URL))
	}
	return container.NewVBox(lines...)
}

// buildSubsection stacks entries under a bold heading with spacing between entries.
func buildSubsection(title string, entries []fyne.CanvasObject) fyne.CanvasObject {
	box := container.NewVBox(widget.NewLabelWithStyle(title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
	for i, entry := range entries {
		if i > 0 {
			box.Add(container.NewPadded())
		}
		box.Add(entry)
	}
	return box
}

// buildBulletList renders a titled bullet list.
func buildBulletList(title string, lines []string) fyne.CanvasObject {
	box := container.NewVBox(widget.NewLabelWithStyle(title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
	for _, line := range lines {
		item := widget.NewLabel("• " + line)
		item.Wrapping = fyne.TextWrapWord
		box.Add(item)
	}
	return box
}

// formatFileSize renders a byte count as a human friendly string (1.2 MB).
func formatFileSize(bytes int64) string {
	if bytes < FileSizeUnit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(FileSizeUnit), 0
	for n := bytes / FileSizeUnit; n >= FileSizeUnit; n /= FileSizeUnit {
		div *= FileSizeUnit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), FileSizeUnits[exp])
}
