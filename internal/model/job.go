package model

import "time"

// Job status constants.
const (
	JobUploaded  = "uploaded"
	JobProcessed = "processed"
	JobError     = "error"
)

// Job associates an opaque identifier with the temporary artifacts of one
// upload/process interaction. Exactly one job exists per identifier; artifacts
// are exclusively owned by their job until cleanup.
type Job struct {
	ID         string    `json:"id"`
	Status     string    `json:"status"`
	SourcePath string    `json:"-"`
	OutputPath string    `json:"-"`
	ErrorCode  string    `json:"error_code,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewJob creates a job in the uploaded state.
func NewJob(id, sourcePath string) Job {
	return Job{
		ID:         id,
		Status:     JobUploaded,
		SourcePath: sourcePath,
		CreatedAt:  time.Now().UTC(),
	}
}

// Expired reports whether the job is older than ttl at the given instant.
func (j Job) Expired(now time.Time, ttl time.Duration) bool {
	return now.Sub(j.CreatedAt) > ttl
}
