package savedjob

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound     = errors.New("saved job not found")
	ErrAlreadySaved = errors.New("job already saved")
)

// SavedJob is a bookmark relation between a jobseeker and a job. The
// (jobseeker, job) pair is unique at the storage layer.
type SavedJob struct {
	ID          uuid.UUID `json:"_id"`
	JobseekerID uuid.UUID `json:"jobseeker"`
	JobID       uuid.UUID `json:"job"`
	CreatedAt   time.Time `json:"createdAt"`
}
