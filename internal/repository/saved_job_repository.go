package repository

import (
	"context"

	"job-portal/internal/database"
	"job-portal/internal/domain/savedjob"

	"github.com/google/uuid"
)

type SavedJobWithJob struct {
	savedjob.SavedJob
	Job JobWithCompany
}

type SavedJobRepository interface {
	Save(ctx context.Context, s savedjob.SavedJob) error
	Delete(ctx context.Context, jobseekerID, jobID uuid.UUID) error
	ListByJobseeker(ctx context.Context, jobseekerID uuid.UUID) ([]SavedJobWithJob, error)
	JobIDsByJobseeker(ctx context.Context, jobseekerID uuid.UUID) (map[uuid.UUID]bool, error)
}

type PostgresSavedJobRepository struct {
	db database.DB
}

func NewPostgresSavedJobRepository(db database.DB) *PostgresSavedJobRepository {
	return &PostgresSavedJobRepository{db: db}
}

func (r *PostgresSavedJobRepository) Save(ctx context.Context, s savedjob.SavedJob) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO saved_jobs (id, jobseeker_id, job_id) VALUES ($1, $2, $3)`,
		s.ID, s.JobseekerID, s.JobID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return savedjob.ErrAlreadySaved
		}
		return err
	}
	return nil
}

func (r *PostgresSavedJobRepository) Delete(ctx context.Context, jobseekerID, jobID uuid.UUID) error {
	n, err := r.db.Exec(ctx,
		`DELETE FROM saved_jobs WHERE jobseeker_id = $1 AND job_id = $2`,
		jobseekerID, jobID,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return savedjob.ErrNotFound
	}
	return nil
}

func (r *PostgresSavedJobRepository) ListByJobseeker(ctx context.Context, jobseekerID uuid.UUID) ([]SavedJobWithJob, error) {
	rows, err := r.db.Query(ctx,
		`SELECT s.id, s.jobseeker_id, s.job_id, s.created_at,
			`+jobColumns+`, `+companyColumns+`
		 FROM saved_jobs s
		 JOIN jobs j ON j.id = s.job_id
		 JOIN users u ON u.id = j.company_id
		 WHERE s.jobseeker_id = $1
		 ORDER BY s.created_at DESC`,
		jobseekerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]SavedJobWithJob, 0)
	for rows.Next() {
		var item SavedJobWithJob
		err := rows.Scan(
			&item.SavedJob.ID, &item.JobseekerID, &item.SavedJob.JobID, &item.SavedJob.CreatedAt,
			&item.Job.Job.ID, &item.Job.Title, &item.Job.Description, &item.Job.Requirements,
			&item.Job.Job.Location, &item.Job.Category, &item.Job.Job.Type, &item.Job.CompanyID,
			&item.Job.SalaryMin, &item.Job.SalaryMax, &item.Job.Job.IsClosed,
			&item.Job.Job.CreatedAt, &item.Job.UpdatedAt,
			&item.Job.Company.ID, &item.Job.Company.Name, &item.Job.Company.CompanyName,
			&item.Job.Company.CompanyLogo,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *PostgresSavedJobRepository) JobIDsByJobseeker(ctx context.Context, jobseekerID uuid.UUID) (map[uuid.UUID]bool, error) {
	rows, err := r.db.Query(ctx,
		`SELECT job_id FROM saved_jobs WHERE jobseeker_id = $1`,
		jobseekerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[uuid.UUID]bool{}
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out[id] = true
	}
	return out, rows.Err()
}
