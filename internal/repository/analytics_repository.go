package repository

import (
	"context"
	"time"

	"job-portal/internal/database"
	"job-portal/internal/domain/application"
	"job-portal/internal/domain/job"

	"github.com/google/uuid"
)

// Window is a half-open creation-time interval [From, To).
type Window struct {
	From time.Time
	To   time.Time
}

type RecentJob struct {
	ID        uuid.UUID `json:"_id"`
	Title     string    `json:"title"`
	Location  string    `json:"location"`
	Type      job.Type  `json:"type"`
	IsClosed  bool      `json:"isClosed"`
	CreatedAt time.Time `json:"createdAt"`
}

type RecentApplication struct {
	ID        uuid.UUID          `json:"_id"`
	Status    application.Status `json:"status"`
	CreatedAt time.Time          `json:"createdAt"`
	JobTitle  string             `json:"jobTitle"`
	Applicant struct {
		ID     uuid.UUID `json:"_id"`
		Name   string    `json:"name"`
		Email  string    `json:"email"`
		Avatar string    `json:"avatar"`
	} `json:"applicant"`
}

type AnalyticsRepository interface {
	CountActiveJobs(ctx context.Context, employerID uuid.UUID) (int, error)
	CountJobsCreated(ctx context.Context, employerID uuid.UUID, w Window) (int, error)

	CountApplications(ctx context.Context, employerID uuid.UUID) (int, error)
	CountApplicationsCreated(ctx context.Context, employerID uuid.UUID, w Window) (int, error)

	CountHires(ctx context.Context, employerID uuid.UUID) (int, error)
	CountHiresCreated(ctx context.Context, employerID uuid.UUID, w Window) (int, error)

	// Company counts are platform-wide by design, not employer-scoped.
	CountCompanies(ctx context.Context) (int, error)
	CountCompaniesCreated(ctx context.Context, w Window) (int, error)

	RecentJobs(ctx context.Context, employerID uuid.UUID, limit int) ([]RecentJob, error)
	RecentApplications(ctx context.Context, employerID uuid.UUID, limit int) ([]RecentApplication, error)
}

type PostgresAnalyticsRepository struct {
	db database.DB
}

func NewPostgresAnalyticsRepository(db database.DB) *PostgresAnalyticsRepository {
	return &PostgresAnalyticsRepository{db: db}
}

func (r *PostgresAnalyticsRepository) count(ctx context.Context, query string, args ...any) (int, error) {
	var c int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&c); err != nil {
		return 0, err
	}
	return c, nil
}

func (r *PostgresAnalyticsRepository) CountActiveJobs(ctx context.Context, employerID uuid.UUID) (int, error) {
	return r.count(ctx,
		`SELECT COUNT(1) FROM jobs WHERE company_id = $1 AND is_closed = false`,
		employerID,
	)
}

func (r *PostgresAnalyticsRepository) CountJobsCreated(ctx context.Context, employerID uuid.UUID, w Window) (int, error) {
	return r.count(ctx,
		`SELECT COUNT(1) FROM jobs
		 WHERE company_id = $1 AND created_at >= $2 AND created_at < $3`,
		employerID, w.From, w.To,
	)
}

func (r *PostgresAnalyticsRepository) CountApplications(ctx context.Context, employerID uuid.UUID) (int, error) {
	return r.count(ctx,
		`SELECT COUNT(1) FROM applications a
		 JOIN jobs j ON j.id = a.job_id
		 WHERE j.company_id = $1`,
		employerID,
	)
}

func (r *PostgresAnalyticsRepository) CountApplicationsCreated(ctx context.Context, employerID uuid.UUID, w Window) (int, error) {
	return r.count(ctx,
		`SELECT COUNT(1) FROM applications a
		 JOIN jobs j ON j.id = a.job_id
		 WHERE j.company_id = $1 AND a.created_at >= $2 AND a.created_at < $3`,
		employerID, w.From, w.To,
	)
}

func (r *PostgresAnalyticsRepository) CountHires(ctx context.Context, employerID uuid.UUID) (int, error) {
	return r.count(ctx,
		`SELECT COUNT(1) FROM applications a
		 JOIN jobs j ON j.id = a.job_id
		 WHERE j.company_id = $1 AND a.status = $2`,
		employerID, application.StatusAccepted,
	)
}

func (r *PostgresAnalyticsRepository) CountHiresCreated(ctx context.Context, employerID uuid.UUID, w Window) (int, error) {
	return r.count(ctx,
		`SELECT COUNT(1) FROM applications a
		 JOIN jobs j ON j.id = a.job_id
		 WHERE j.company_id = $1 AND a.status = $2
			AND a.created_at >= $3 AND a.created_at < $4`,
		employerID, application.StatusAccepted, w.From, w.To,
	)
}

func (r *PostgresAnalyticsRepository) CountCompanies(ctx context.Context) (int, error) {
	return r.count(ctx,
		`SELECT COUNT(1) FROM users WHERE role = 'employer' AND company_name <> ''`,
	)
}

func (r *PostgresAnalyticsRepository) CountCompaniesCreated(ctx context.Context, w Window) (int, error) {
	return r.count(ctx,
		`SELECT COUNT(1) FROM users
		 WHERE role = 'employer' AND company_name <> ''
			AND created_at >= $1 AND created_at < $2`,
		w.From, w.To,
	)
}

func (r *PostgresAnalyticsRepository) RecentJobs(ctx context.Context, employerID uuid.UUID, limit int) ([]RecentJob, error) {
	if limit <= 0 {
		limit = 5
	}
	rows, err := r.db.Query(ctx,
		`SELECT id, title, location, type, is_closed, created_at
		 FROM jobs
		 WHERE company_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2`,
		employerID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]RecentJob, 0, limit)
	for rows.Next() {
		var j RecentJob
		if err := rows.Scan(&j.ID, &j.Title, &j.Location, &j.Type, &j.IsClosed, &j.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

func (r *PostgresAnalyticsRepository) RecentApplications(ctx context.Context, employerID uuid.UUID, limit int) ([]RecentApplication, error) {
	if limit <= 0 {
		limit = 5
	}
	rows, err := r.db.Query(ctx,
		`SELECT a.id, a.status, a.created_at, j.title, u.id, u.name, u.email, u.avatar
		 FROM applications a
		 JOIN jobs j ON j.id = a.job_id
		 JOIN users u ON u.id = a.applicant_id
		 WHERE j.company_id = $1
		 ORDER BY a.created_at DESC
		 LIMIT $2`,
		employerID, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]RecentApplication, 0, limit)
	for rows.Next() {
		var a RecentApplication
		err := rows.Scan(
			&a.ID, &a.Status, &a.CreatedAt, &a.JobTitle,
			&a.Applicant.ID, &a.Applicant.Name, &a.Applicant.Email, &a.Applicant.Avatar,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
