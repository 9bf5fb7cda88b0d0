package usecase

import (
	"context"
	"errors"
	"strings"

	"job-portal/internal/domain/application"
	"job-portal/internal/domain/job"
	"job-portal/internal/domain/user"
	"job-portal/internal/repository"

	"github.com/google/uuid"
)

// StatusNotifier pushes a status-change event to the applicant. A nil
// notifier disables notifications.
type StatusNotifier interface {
	NotifyStatusChanged(applicantID, applicationID uuid.UUID, jobTitle string, status application.Status)
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, actor user.Actor, jobID uuid.UUID) (repository.ApplicationDetail, error)
	ListMine(ctx context.Context, actor user.Actor) ([]repository.ApplicationDetail, error)
	ListForJob(ctx context.Context, actor user.Actor, jobID uuid.UUID) ([]repository.ApplicationDetail, error)
	Get(ctx context.Context, actor user.Actor, id uuid.UUID) (repository.ApplicationDetail, error)
	UpdateStatus(ctx context.Context, actor user.Actor, id uuid.UUID, status application.Status) (repository.ApplicationDetail, error)
}

type Applications struct {
	applications repository.ApplicationRepository
	jobs         repository.JobRepository
	users        repository.UserRepository
	notifier     StatusNotifier
}

func NewApplicationUsecase(
	applications repository.ApplicationRepository,
	jobs repository.JobRepository,
	users repository.UserRepository,
	notifier StatusNotifier,
) *Applications {
	return &Applications{applications: applications, jobs: jobs, users: users, notifier: notifier}
}

// Apply creates an application snapshotting the applicant's current
// resume and the job's category. Duplicate applies surface as
// ErrAlreadyApplied via the store's unique pair index.
func (u *Applications) Apply(ctx context.Context, actor user.Actor, jobID uuid.UUID) (repository.ApplicationDetail, error) {
	if !actor.IsJobseeker() {
		return repository.ApplicationDetail{}, ErrForbidden
	}

	target, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return repository.ApplicationDetail{}, ErrNotFound
		}
		return repository.ApplicationDetail{}, internalErr(err)
	}

	applicant, err := u.users.GetByID(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return repository.ApplicationDetail{}, ErrNotFound
		}
		return repository.ApplicationDetail{}, internalErr(err)
	}

	created, err := u.applications.Create(ctx, application.Application{
		ID:          uuid.New(),
		JobID:       target.Job.ID,
		ApplicantID: actor.ID,
		Resume:      applicant.Resume,
		Category:    target.Category,
		Status:      application.StatusApplied,
	})
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyApplied) {
			return repository.ApplicationDetail{}, ErrAlreadyApplied
		}
		return repository.ApplicationDetail{}, internalErr(err)
	}
	return created, nil
}

func (u *Applications) ListMine(ctx context.Context, actor user.Actor) ([]repository.ApplicationDetail, error) {
	if !actor.IsJobseeker() {
		return nil, ErrForbidden
	}

	out, err := u.applications.ListByApplicant(ctx, actor.ID)
	if err != nil {
		return nil, internalErr(err)
	}
	return out, nil
}

func (u *Applications) ListForJob(ctx context.Context, actor user.Actor, jobID uuid.UUID) ([]repository.ApplicationDetail, error) {
	target, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, internalErr(err)
	}
	if target.CompanyID != actor.ID {
		return nil, ErrForbidden
	}

	out, err := u.applications.ListByJob(ctx, jobID)
	if err != nil {
		return nil, internalErr(err)
	}
	return out, nil
}

// Get is visible to the owning jobseeker and the job's owning employer.
func (u *Applications) Get(ctx context.Context, actor user.Actor, id uuid.UUID) (repository.ApplicationDetail, error) {
	found, err := u.applications.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return repository.ApplicationDetail{}, ErrNotFound
		}
		return repository.ApplicationDetail{}, internalErr(err)
	}

	if found.ApplicantID != actor.ID && found.Job.CompanyID != actor.ID {
		return repository.ApplicationDetail{}, ErrForbidden
	}
	return found, nil
}

// UpdateStatus overwrites the status unconditionally; there is no
// transition graph, only ownership and a non-empty value.
func (u *Applications) UpdateStatus(ctx context.Context, actor user.Actor, id uuid.UUID, status application.Status) (repository.ApplicationDetail, error) {
	if strings.TrimSpace(string(status)) == "" {
		return repository.ApplicationDetail{}, ErrInvalidInput
	}

	found, err := u.applications.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return repository.ApplicationDetail{}, ErrNotFound
		}
		return repository.ApplicationDetail{}, internalErr(err)
	}
	if found.Job.CompanyID != actor.ID {
		return repository.ApplicationDetail{}, ErrForbidden
	}

	if err := u.applications.UpdateStatus(ctx, id, status); err != nil {
		return repository.ApplicationDetail{}, internalErr(err)
	}
	found.Status = status

	if u.notifier != nil {
		u.notifier.NotifyStatusChanged(found.ApplicantID, found.Application.ID, found.Job.Title, status)
	}
	return found, nil
}
