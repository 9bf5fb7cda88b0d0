package job

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("job not found")

type Type string

const (
	TypePermanent  Type = "Permanent"
	TypeFullTime   Type = "Full-time"
	TypePartTime   Type = "Part-time"
	TypeContract   Type = "Contract"
	TypeInternship Type = "Internship"
	TypeTemporary  Type = "Temporary"
	TypeVolunteer  Type = "Volunteer"
	TypeRemote     Type = "Remote"
	TypeOther      Type = "Other"
)

func Types() []Type {
	return []Type{
		TypePermanent, TypeFullTime, TypePartTime, TypeContract,
		TypeInternship, TypeTemporary, TypeVolunteer, TypeRemote, TypeOther,
	}
}

func (t Type) Valid() bool {
	for _, v := range Types() {
		if t == v {
			return true
		}
	}
	return false
}

type Job struct {
	ID           uuid.UUID `json:"_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Requirements string    `json:"requirements"`
	Location     string    `json:"location"`
	Category     string    `json:"category"`
	Type         Type      `json:"type"`
	CompanyID    uuid.UUID `json:"company"`
	SalaryMin    int64     `json:"salaryMin"`
	SalaryMax    int64     `json:"salaryMax"`
	IsClosed     bool      `json:"isClosed"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Company is the owning employer's public summary, joined onto job reads.
type Company struct {
	ID          uuid.UUID `json:"_id"`
	Name        string    `json:"name"`
	CompanyName string    `json:"companyName"`
	CompanyLogo string    `json:"companyLogo"`
}

// Filter is the bag of optional search criteria over open jobs. Zero
// values mean "no filtering" for the matching criterion.
type Filter struct {
	Keyword    string
	Location   string
	Types      []string
	Categories []string
	MinSalary  *int64
	MaxSalary  *int64
}
