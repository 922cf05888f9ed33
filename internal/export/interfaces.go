package export

import (
	"github.com/tosoham/ResumeGrader/internal/model"
)

// Exporter defines the interface for the report export service.
type Exporter interface {
	ExportReport(sub *model.Submission, dir string) (string, error)
}
