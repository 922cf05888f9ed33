package model

import (
	"testing"
	"time"
)

func TestCanSubmit(t *testing.T) {
	tests := []struct {
		filePath string
		status   SubmissionStatus
		expected bool
	}{
		{"", SubmissionStatus(""), false},
		{"", StatusPending, false},
		{"", StatusUploading, false},
		{"", StatusCompleted, false},
		{"", StatusError, false},
		{"/tmp/resume.pdf", SubmissionStatus(""), true},
		{"/tmp/resume.pdf", StatusPending, false},
		{"/tmp/resume.pdf", StatusUploading, false},
		{"/tmp/resume.pdf", StatusCompleted, true},
		{"/tmp/resume.pdf", StatusError, true},
	}

	for _, test := range tests {
		result := CanSubmit(test.filePath, test.status)
		if result != test.expected {
			t.Errorf("CanSubmit(%q, %s) = %v, expected %v", test.filePath, test.status, result, test.expected)
		}
	}
}

func TestSubmission_GetDisplayName(t *testing.T) {
	tests := []struct {
		fileName string
		filePath string
		expected string
	}{
		{"resume.pdf", "/home/user/docs/resume.pdf", "resume.pdf"},
		{"", "/home/user/docs/my_cv.pdf", "my_cv.pdf"},
		{"", "", ""},
	}

	for _, test := range tests {
		sub := &Submission{FileName: test.fileName, FilePath: test.filePath}
		result := sub.GetDisplayName()
		if result != test.expected {
			t.Errorf("GetDisplayName() with name='%s', path='%s' = '%s', expected '%s'",
				test.fileName, test.filePath, result, test.expected)
		}
	}
}

func TestSubmission_GetElapsedString(t *testing.T) {
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		started  time.Time
		finished time.Time
		expected string
	}{
		{"not started", time.Time{}, time.Time{}, "—"},
		{"in flight", start, time.Time{}, "—"},
		{"four seconds", start, start.Add(4 * time.Second), "00:04"},
		{"ninety seconds", start, start.Add(90 * time.Second), "01:30"},
	}

	for _, test := range tests {
		sub := &Submission{StartedAt: test.started, FinishedAt: test.finished}
		result := sub.GetElapsedString()
		if result != test.expected {
			t.Errorf("%s: GetElapsedString() = %s, expected %s", test.name, result, test.expected)
		}
	}
}

func TestSubmission_Creation(t *testing.T) {
	now := time.Now()
	sub := &Submission{
		ID:        "submission-123",
		FilePath:  "/tmp/resume.pdf",
		FileName:  "resume.pdf",
		Mode:      ModeGrade,
		Status:    StatusPending,
		StartedAt: now,
	}

	if sub.ID != "submission-123" {
		t.Errorf("Expected ID to be 'submission-123', got '%s'", sub.ID)
	}

	if sub.Status != StatusPending {
		t.Errorf("Expected status to be StatusPending, got %s", sub.Status)
	}

	if !sub.StartedAt.Equal(now) {
		t.Errorf("Expected StartedAt to be %v, got %v", now, sub.StartedAt)
	}
}
