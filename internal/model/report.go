package model

import "strconv"

// NotAvailable is the placeholder shown for scalar fields the service omitted.
const NotAvailable = "N/A"

// SectionNames lists the graded resume sections in display order. The keys
// match the section_scores object returned by the grading service.
var SectionNames = []string{"personal_info", "experience", "education", "skills", "projects"}

// AnalysisReport is the decoded response envelope of the grading service.
// Every field is optional; the service guarantees nothing beyond a JSON
// object. Accessors below are nil-safe and substitute placeholders so the
// UI never has to branch on absent fields.
type AnalysisReport struct {
	Success       bool           `json:"success"`
	FileID        string         `json:"file_id,omitempty"`
	Filename      string         `json:"filename,omitempty"`
	GradingResult *GradingResult `json:"grading_result,omitempty"`
	ParsedData    *ParsedData    `json:"parsed_data,omitempty"`
}

// GradingResult carries the computed evaluation of a resume.
type GradingResult struct {
	OverallScore     *float64           `json:"overall_score,omitempty"`
	SectionScores    map[string]float64 `json:"section_scores,omitempty"`
	Strengths        []string           `json:"strengths,omitempty"`
	Improvements     []string           `json:"improvements,omitempty"`
	DetailedFeedback string             `json:"detailed_feedback,omitempty"`
	ParsingMethod    string             `json:"parsing_method,omitempty"`

	// The grade endpoint nests the parsed resume inside the grading result.
	ParsedData *ParsedData `json:"parsed_data,omitempty"`
}

// ParsedData is the structured resume content extracted by the service.
type ParsedData struct {
	PersonalInfo PersonalInfo      `json:"personal_info,omitempty"`
	Experience   []ExperienceEntry `json:"experience,omitempty"`
	Education    []EducationEntry  `json:"education,omitempty"`
	Skills       []string          `json:"skills,omitempty"`
	Projects     []ProjectEntry    `json:"projects,omitempty"`
	RawText      string            `json:"raw_text,omitempty"`
	ParsedAt     string            `json:"parsed_at,omitempty"`
}

// PersonalInfo holds contact details extracted from the resume.
type PersonalInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

// ExperienceEntry is one work experience record.
type ExperienceEntry struct {
	Company         string   `json:"company,omitempty"`
	Position        string   `json:"position,omitempty"`
	Duration        string   `json:"duration,omitempty"`
	Description     string   `json:"description,omitempty"`
	KeyAchievements []string `json:"key_achievements,omitempty"`
}

// EducationEntry is one education record.
type EducationEntry struct {
	Institution  string `json:"institution,omitempty"`
	Degree       string `json:"degree,omitempty"`
	FieldOfStudy string `json:"field_of_study,omitempty"`
	Year         string `json:"year,omitempty"`
	GPA          string `json:"gpa,omitempty"`
}

// ProjectEntry is one project record.
type ProjectEntry struct {
	Name         string   `json:"name,omitempty"`
	Description  string   `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	Duration     string   `json:"duration,omitempty"`
	URL          string   `json:"url,omitempty"`
}

// Grading returns the grading result, or nil when the report has none.
func (r *AnalysisReport) Grading() *GradingResult {
	if r == nil {
		return nil
	}
	return r.GradingResult
}

// Parsed returns the parsed resume content. The parse endpoint puts it at the
// top level while the grade endpoint nests it inside grading_result; both
// locations are checked.
func (r *AnalysisReport) Parsed() *ParsedData {
	if r == nil {
		return nil
	}
	if r.ParsedData != nil {
		return r.ParsedData
	}
	if r.GradingResult != nil {
		return r.GradingResult.ParsedData
	}
	return nil
}

// HasGrading returns true when the report carries any grading fields worth rendering.
func (r *AnalysisReport) HasGrading() bool {
	g := r.Grading()
	if g == nil {
		return false
	}
	return g.OverallScore != nil || len(g.SectionScores) > 0 || len(g.Strengths) > 0 ||
		len(g.Improvements) > 0 || g.DetailedFeedback != ""
}

// OverallScoreText formats the overall score for display, "N/A" when absent.
func (g *GradingResult) OverallScoreText() string {
	if g == nil || g.OverallScore == nil {
		return NotAvailable
	}
	return formatScore(*g.OverallScore)
}

// SectionScoreText formats one section score for display, "N/A" when absent.
func (g *GradingResult) SectionScoreText(section string) string {
	if g == nil {
		return NotAvailable
	}
	score, ok := g.SectionScores[section]
	if !ok {
		return NotAvailable
	}
	return formatScore(score)
}

// HasContact returns true when any contact field is present.
func (pi PersonalInfo) HasContact() bool {
	return pi.Name != "" || pi.Email != "" || pi.Phone != "" ||
		pi.Address != "" || pi.LinkedIn != "" || pi.GitHub != ""
}

// FieldOrPlaceholder substitutes "N/A" for empty scalar values.
func FieldOrPlaceholder(value string) string {
	if value == "" {
		return NotAvailable
	}
	return value
}

// formatScore renders a score without a trailing ".0" (72, 72.5, 66.7)
func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}
