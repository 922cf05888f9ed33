// Package export writes finished analysis reports to disk so users can keep
// them beyond the session; the app itself persists nothing.
package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tosoham/ResumeGrader/internal/model"
)

// File permissions for exported reports
const (
	reportFilePermissions = 0o644
	exportDirPermissions  = 0o755
)

// Service exports analysis reports as JSON files
type Service struct{}

// NewService creates a new export service
func NewService() *Service {
	return &Service{}
}

// ExportReport writes the submission's report as pretty-printed JSON into dir
// and returns the written path. The submission must be completed.
func (s *Service) ExportReport(sub *model.Submission, dir string) (string, error) {
	if sub == nil || sub.Report == nil {
		return "", fmt.Errorf("submission has no report to export")
	}

	if err := os.MkdirAll(dir, exportDirPermissions); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	data, err := json.MarshalIndent(sub.Report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}

	path := filepath.Join(dir, reportFileName(sub))
	if err := os.WriteFile(path, data, reportFilePermissions); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	return path, nil
}

// reportFileName derives the export name from the uploaded file name
func reportFileName(sub *model.Submission) string {
	base := sub.GetDisplayName()
	if base == "" {
		base = sub.ID
	}
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return base + "_report.json"
}
