package model

import (
	"fmt"
	"path/filepath"
	"time"
)

// AnalysisMode selects which service endpoint a submission targets.
type AnalysisMode string

const (
	// ModeGrade parses and grades the resume
	ModeGrade AnalysisMode = "grade"

	// ModeParse only extracts structured resume content
	ModeParse AnalysisMode = "parse"
)

// Submission represents a single resume upload and its outcome
type Submission struct {
	ID         string
	FilePath   string       // local path of the selected PDF
	FileName   string       // base name sent to the service
	FileSize   int64        // size in bytes, 0 if unknown
	Mode       AnalysisMode // grade or parse
	Status     SubmissionStatus
	LastError  string          // last error message if any
	Report     *AnalysisReport // set when the service responds successfully
	StartedAt  time.Time       // when the upload started
	FinishedAt time.Time       // when the request settled
}

// CanSubmit reports whether a new submission may start. The submit control
// must stay inert while no file is selected or a submission is in flight.
func CanSubmit(filePath string, status SubmissionStatus) bool {
	return filePath != "" && !status.IsActive()
}

// GetDisplayName returns the file name, falling back to the path base
func (s *Submission) GetDisplayName() string {
	if s.FileName != "" {
		return s.FileName
	}
	if s.FilePath != "" {
		return filepath.Base(s.FilePath)
	}
	return ""
}

// GetElapsedString returns the request duration formatted as mm:ss, or "—"
// while the submission has not settled
func (s *Submission) GetElapsedString() string {
	if s.StartedAt.IsZero() || s.FinishedAt.IsZero() {
		return "—"
	}

	elapsed := s.FinishedAt.Sub(s.StartedAt)
	if elapsed < 0 {
		return "—"
	}

	total := int(elapsed.Seconds())
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
