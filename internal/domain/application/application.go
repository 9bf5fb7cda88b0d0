package application

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("application not found")

// Status is the intended progression Applied -> In Review -> Accepted |
// Rejected -> Hired. No transition graph is enforced: the owning employer
// may set any value, including backward moves.
type Status string

const (
	StatusApplied  Status = "Applied"
	StatusInReview Status = "In Review"
	StatusAccepted Status = "Accepted"
	StatusRejected Status = "Rejected"
	StatusHired    Status = "Hired"
)

type Application struct {
	ID          uuid.UUID `json:"_id"`
	JobID       uuid.UUID `json:"job"`
	ApplicantID uuid.UUID `json:"applicant"`

	// Snapshots taken at apply time.
	Resume   string `json:"resume"`
	Category string `json:"category"`

	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// JobSummary and ApplicantSummary are the join payloads attached when an
// application is read back with its related records.
type JobSummary struct {
	ID        uuid.UUID `json:"_id"`
	Title     string    `json:"title"`
	CompanyID uuid.UUID `json:"company"`
	Location  string    `json:"location"`
	Type      string    `json:"type"`
	Category  string    `json:"category"`
}

type ApplicantSummary struct {
	ID     uuid.UUID `json:"_id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Avatar string    `json:"avatar"`
	Resume string    `json:"resume"`
}
