package grader

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tosoham/ResumeGrader/internal/model"
)

// Service handles resume submissions
type Service struct {
	client      *Client
	submissions map[string]*model.Submission
	order       []string // submission IDs in creation order
	mu          sync.RWMutex
	onUpdate    func(*model.Submission) // callback for UI updates
}

// NewService creates a new submission service
func NewService(client *Client) *Service {
	return &Service{
		client:      client,
		submissions: make(map[string]*model.Submission),
	}
}

// SetUpdateCallback sets the callback function for submission updates
func (s *Service) SetUpdateCallback(callback func(*model.Submission)) {
	s.onUpdate = callback
}

// Configure replaces the service endpoint and request timeout
func (s *Service) Configure(baseURL string, timeout time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.client = NewClient(baseURL, timeout)
}

// Submit starts a new submission for the file at filePath. Only one
// submission may be in flight at a time; the UI disables the submit control
// while one is active and this guard backs that invariant at the service
// layer as well.
func (s *Service) Submit(filePath string, mode model.AnalysisMode) (*model.Submission, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("cannot read selected file: %w", err)
	}

	s.mu.Lock()

	for _, sub := range s.submissions {
		if sub.Status.IsActive() {
			s.mu.Unlock()
			return nil, fmt.Errorf("a submission is already in flight: %s", sub.ID)
		}
	}

	sub := &model.Submission{
		ID:        generateSubmissionID(),
		FilePath:  filePath,
		FileName:  filepath.Base(filePath),
		FileSize:  info.Size(),
		Mode:      mode,
		Status:    model.StatusPending,
		StartedAt: time.Now(),
	}

	s.submissions[sub.ID] = sub
	s.order = append(s.order, sub.ID)
	s.mu.Unlock()

	go s.run(sub)

	return sub, nil
}

// GetSubmission returns a submission by ID
func (s *Service) GetSubmission(id string) (*model.Submission, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sub, exists := s.submissions[id]
	return sub, exists
}

// GetAllSubmissions returns all submissions in creation order
func (s *Service) GetAllSubmissions() []*model.Submission {
	s.mu.RLock()
	defer s.mu.RUnlock()

	subs := make([]*model.Submission, 0, len(s.order))
	for _, id := range s.order {
		if sub, ok := s.submissions[id]; ok {
			subs = append(subs, sub)
		}
	}
	return subs
}

// LatestSubmission returns the most recently created submission
func (s *Service) LatestSubmission() (*model.Submission, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.order) == 0 {
		return nil, false
	}
	sub, ok := s.submissions[s.order[len(s.order)-1]]
	return sub, ok
}

// CheckHealth probes the grading service
func (s *Service) CheckHealth(ctx context.Context) error {
	s.mu.RLock()
	client := s.client
	s.mu.RUnlock()
	return client.CheckHealth(ctx)
}

// run performs one upload and settles the submission
func (s *Service) run(sub *model.Submission) {
	s.mu.Lock()
	client := s.client
	sub.Status = model.StatusUploading
	s.mu.Unlock()
	s.notifyUpdate(sub)

	report, err := client.Analyze(context.Background(), sub.FilePath, sub.Mode)

	s.mu.Lock()
	if err != nil {
		sub.Status = model.StatusError
		sub.LastError = err.Error()
		log.Printf("Submission %s failed: %v", sub.ID, err)
	} else {
		sub.Status = model.StatusCompleted
		sub.Report = report
	}
	sub.FinishedAt = time.Now()
	s.mu.Unlock()

	s.notifyUpdate(sub)
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(sub *model.Submission) {
	if s.onUpdate != nil {
		s.onUpdate(sub)
	}
}

// generateSubmissionID generates a unique submission ID
func generateSubmissionID() string {
	return fmt.Sprintf("submission-%s", uuid.New().String())
}
