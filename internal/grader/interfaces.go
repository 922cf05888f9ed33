package grader

import (
	"context"
	"time"

	"github.com/tosoham/ResumeGrader/internal/model"
)

// Grader defines the interface for the submission service.
type Grader interface {
	SetUpdateCallback(func(*model.Submission))
	Submit(filePath string, mode model.AnalysisMode) (*model.Submission, error)
	GetSubmission(id string) (*model.Submission, bool)
	GetAllSubmissions() []*model.Submission
	LatestSubmission() (*model.Submission, bool)
	CheckHealth(ctx context.Context) error

	// Configure replaces the service endpoint and request timeout,
	// typically after the user saves settings
	Configure(baseURL string, timeout time.Duration)
}
