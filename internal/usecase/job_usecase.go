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

type CreateJobInput struct {
	Title        string
	Description  string
	Requirements string
	Location     string
	Category     string
	Type         job.Type
	SalaryMin    int64
	SalaryMax    int64
}

type UpdateJobInput struct {
	Title        *string
	Description  *string
	Requirements *string
	Location     *string
	Category     *string
	Type         *job.Type
	SalaryMin    *int64
	SalaryMax    *int64
}

// JobView is a job result annotated with viewer-relative state. The
// stored job is never mutated; the extra fields are computed per read.
type JobView struct {
	repository.JobWithCompany
	IsSaved           bool                `json:"isSaved"`
	ApplicationStatus *application.Status `json:"applicationStatus"`
}

type EmployerJobView struct {
	repository.JobWithCompany
	ApplicationCount int `json:"applicationCount"`
}

type JobUsecase interface {
	Create(ctx context.Context, actor user.Actor, in CreateJobInput) (job.Job, error)
	Search(ctx context.Context, f job.Filter, viewerID *uuid.UUID) ([]JobView, error)
	GetByID(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID) (JobView, error)
	ListForEmployer(ctx context.Context, actor user.Actor) ([]EmployerJobView, error)
	Update(ctx context.Context, actor user.Actor, id uuid.UUID, in UpdateJobInput) (job.Job, error)
	Delete(ctx context.Context, actor user.Actor, id uuid.UUID) error
	ToggleClose(ctx context.Context, actor user.Actor, id uuid.UUID) (bool, error)
}

type Jobs struct {
	jobs         repository.JobRepository
	savedJobs    repository.SavedJobRepository
	applications repository.ApplicationRepository
}

func NewJobUsecase(jobs repository.JobRepository, savedJobs repository.SavedJobRepository, applications repository.ApplicationRepository) *Jobs {
	return &Jobs{jobs: jobs, savedJobs: savedJobs, applications: applications}
}

func (u *Jobs) Create(ctx context.Context, actor user.Actor, in CreateJobInput) (job.Job, error) {
	if !actor.IsEmployer() {
		return job.Job{}, ErrForbidden
	}
	if strings.TrimSpace(in.Title) == "" ||
		strings.TrimSpace(in.Description) == "" ||
		strings.TrimSpace(in.Requirements) == "" {
		return job.Job{}, ErrInvalidInput
	}
	if !in.Type.Valid() {
		return job.Job{}, ErrInvalidInput
	}

	created, err := u.jobs.Create(ctx, job.Job{
		ID:           uuid.New(),
		Title:        strings.TrimSpace(in.Title),
		Description:  in.Description,
		Requirements: in.Requirements,
		Location:     strings.TrimSpace(in.Location),
		Category:     strings.TrimSpace(in.Category),
		Type:         in.Type,
		CompanyID:    actor.ID,
		SalaryMin:    in.SalaryMin,
		SalaryMax:    in.SalaryMax,
	})
	if err != nil {
		return job.Job{}, internalErr(err)
	}
	return created, nil
}

func (u *Jobs) Search(ctx context.Context, f job.Filter, viewerID *uuid.UUID) ([]JobView, error) {
	results, err := u.jobs.Search(ctx, f)
	if err != nil {
		return nil, internalErr(err)
	}

	saved, statuses, err := u.viewerState(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	return annotateJobs(results, saved, statuses), nil
}

func (u *Jobs) GetByID(ctx context.Context, id uuid.UUID, viewerID *uuid.UUID) (JobView, error) {
	found, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return JobView{}, ErrNotFound
		}
		return JobView{}, internalErr(err)
	}

	saved, statuses, err := u.viewerState(ctx, viewerID)
	if err != nil {
		return JobView{}, err
	}

	views := annotateJobs([]repository.JobWithCompany{found}, saved, statuses)
	return views[0], nil
}

// viewerState loads the viewer's bookmarks and application statuses in
// one pass each. A nil viewer yields empty state, never an error.
func (u *Jobs) viewerState(ctx context.Context, viewerID *uuid.UUID) (map[uuid.UUID]bool, map[uuid.UUID]application.Status, error) {
	if viewerID == nil || *viewerID == uuid.Nil {
		return nil, nil, nil
	}

	saved, err := u.savedJobs.JobIDsByJobseeker(ctx, *viewerID)
	if err != nil {
		return nil, nil, internalErr(err)
	}
	statuses, err := u.applications.StatusesByApplicant(ctx, *viewerID)
	if err != nil {
		return nil, nil, internalErr(err)
	}
	return saved, statuses, nil
}

func annotateJobs(jobs []repository.JobWithCompany, saved map[uuid.UUID]bool, statuses map[uuid.UUID]application.Status) []JobView {
	out := make([]JobView, 0, len(jobs))
	for _, j := range jobs {
		view := JobView{JobWithCompany: j}
		if saved[j.Job.ID] {
			view.IsSaved = true
		}
		if st, ok := statuses[j.Job.ID]; ok {
			view.ApplicationStatus = &st
		}
		out = append(out, view)
	}
	return out
}

func (u *Jobs) ListForEmployer(ctx context.Context, actor user.Actor) ([]EmployerJobView, error) {
	if !actor.IsEmployer() {
		return nil, ErrForbidden
	}

	rows, err := u.jobs.ListByCompany(ctx, actor.ID)
	if err != nil {
		return nil, internalErr(err)
	}

	out := make([]EmployerJobView, 0, len(rows))
	for _, r := range rows {
		out = append(out, EmployerJobView{
			JobWithCompany:   r.JobWithCompany,
			ApplicationCount: r.ApplicationCount,
		})
	}
	return out, nil
}

func (u *Jobs) Update(ctx context.Context, actor user.Actor, id uuid.UUID, in UpdateJobInput) (job.Job, error) {
	current, err := u.ownedJob(ctx, actor, id)
	if err != nil {
		return job.Job{}, err
	}

	if in.Title != nil {
		current.Title = *in.Title
	}
	if in.Description != nil {
		current.Description = *in.Description
	}
	if in.Requirements != nil {
		current.Requirements = *in.Requirements
	}
	if in.Location != nil {
		current.Location = *in.Location
	}
	if in.Category != nil {
		current.Category = *in.Category
	}
	if in.Type != nil {
		if !in.Type.Valid() {
			return job.Job{}, ErrInvalidInput
		}
		current.Type = *in.Type
	}
	if in.SalaryMin != nil {
		current.SalaryMin = *in.SalaryMin
	}
	if in.SalaryMax != nil {
		current.SalaryMax = *in.SalaryMax
	}

	updated, err := u.jobs.Update(ctx, current)
	if err != nil {
		return job.Job{}, internalErr(err)
	}
	return updated, nil
}

func (u *Jobs) Delete(ctx context.Context, actor user.Actor, id uuid.UUID) error {
	if _, err := u.ownedJob(ctx, actor, id); err != nil {
		return err
	}
	if err := u.jobs.Delete(ctx, id); err != nil {
		return internalErr(err)
	}
	return nil
}

// ToggleClose flips is_closed and returns the new value. Closing is a
// soft delete: the job drops out of open search results only.
func (u *Jobs) ToggleClose(ctx context.Context, actor user.Actor, id uuid.UUID) (bool, error) {
	current, err := u.ownedJob(ctx, actor, id)
	if err != nil {
		return false, err
	}

	next := !current.IsClosed
	if err := u.jobs.SetClosed(ctx, id, next); err != nil {
		return false, internalErr(err)
	}
	return next, nil
}

func (u *Jobs) ownedJob(ctx context.Context, actor user.Actor, id uuid.UUID) (job.Job, error) {
	found, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, ErrNotFound
		}
		return job.Job{}, internalErr(err)
	}
	if found.CompanyID != actor.ID {
		return job.Job{}, ErrForbidden
	}
	return found.Job, nil
}
