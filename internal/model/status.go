package model

// SubmissionStatus represents the status of a resume submission
type SubmissionStatus string

const (
	// StatusPending means the submission is created but not sent yet
	StatusPending SubmissionStatus = "Pending"

	// StatusUploading means the resume is being uploaded to the grading service
	StatusUploading SubmissionStatus = "Uploading"

	// StatusCompleted means the grading service returned a report
	StatusCompleted SubmissionStatus = "Completed"

	// StatusError means the submission failed
	StatusError SubmissionStatus = "Error"
)

// String returns the string representation of SubmissionStatus
func (ss SubmissionStatus) String() string {
	return string(ss)
}

// IsActive returns true if the submission is in flight
func (ss SubmissionStatus) IsActive() bool {
	return ss == StatusPending || ss == StatusUploading
}

// IsFinished returns true if the submission settled (completed or error)
func (ss SubmissionStatus) IsFinished() bool {
	return ss == StatusCompleted || ss == StatusError
}
