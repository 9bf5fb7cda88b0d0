package usecase

import (
	"context"
	"errors"

	"job-portal/internal/domain/job"
	"job-portal/internal/domain/savedjob"
	"job-portal/internal/domain/user"
	"job-portal/internal/repository"

	"github.com/google/uuid"
)

type SavedJobUsecase interface {
	Save(ctx context.Context, actor user.Actor, jobID uuid.UUID) error
	Unsave(ctx context.Context, actor user.Actor, jobID uuid.UUID) error
	ListMine(ctx context.Context, actor user.Actor) ([]repository.SavedJobWithJob, error)
}

type SavedJobs struct {
	savedJobs repository.SavedJobRepository
	jobs      repository.JobRepository
}

func NewSavedJobUsecase(savedJobs repository.SavedJobRepository, jobs repository.JobRepository) *SavedJobs {
	return &SavedJobs{savedJobs: savedJobs, jobs: jobs}
}

func (u *SavedJobs) Save(ctx context.Context, actor user.Actor, jobID uuid.UUID) error {
	if !actor.IsJobseeker() {
		return ErrForbidden
	}

	if _, err := u.jobs.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return ErrNotFound
		}
		return internalErr(err)
	}

	err := u.savedJobs.Save(ctx, savedjob.SavedJob{
		ID:          uuid.New(),
		JobseekerID: actor.ID,
		JobID:       jobID,
	})
	if err != nil {
		if errors.Is(err, savedjob.ErrAlreadySaved) {
			return ErrJobAlreadySaved
		}
		return internalErr(err)
	}
	return nil
}

func (u *SavedJobs) Unsave(ctx context.Context, actor user.Actor, jobID uuid.UUID) error {
	if !actor.IsJobseeker() {
		return ErrForbidden
	}

	if err := u.savedJobs.Delete(ctx, actor.ID, jobID); err != nil {
		if errors.Is(err, savedjob.ErrNotFound) {
			return ErrNotFound
		}
		return internalErr(err)
	}
	return nil
}

func (u *SavedJobs) ListMine(ctx context.Context, actor user.Actor) ([]repository.SavedJobWithJob, error) {
	if !actor.IsJobseeker() {
		return nil, ErrForbidden
	}

	out, err := u.savedJobs.ListByJobseeker(ctx, actor.ID)
	if err != nil {
		return nil, internalErr(err)
	}
	return out, nil
}
