package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("user not found")

type Role string

const (
	RoleJobseeker Role = "jobseeker"
	RoleEmployer  Role = "employer"
)

func (r Role) Valid() bool {
	return r == RoleJobseeker || r == RoleEmployer
}

type User struct {
	ID           uuid.UUID `json:"_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Avatar       string    `json:"avatar"`

	// Jobseeker-only in practice.
	Resume string `json:"resume"`

	// Employer-only in practice.
	CompanyName        string `json:"companyName"`
	CompanyDescription string `json:"companyDescription"`
	CompanyLogo        string `json:"companyLogo"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Actor is the authenticated identity passed explicitly into every
// usecase call. Role-gated operations check it before touching the store.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

func (a Actor) IsJobseeker() bool {
	return a.Role == RoleJobseeker
}

func (a Actor) IsEmployer() bool {
	return a.Role == RoleEmployer
}
