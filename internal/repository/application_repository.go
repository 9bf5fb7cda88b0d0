package repository

import (
	"context"
	"errors"

	"job-portal/internal/database"
	"job-portal/internal/domain/application"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrAlreadyApplied = errors.New("application already exists for job and applicant")

// ApplicationDetail is an application joined with its job and applicant
// summaries. JobCompanyID carries the owning employer for authorization.
type ApplicationDetail struct {
	application.Application
	Job       application.JobSummary
	Applicant application.ApplicantSummary
}

type ApplicationRepository interface {
	Create(ctx context.Context, a application.Application) (ApplicationDetail, error)
	GetByID(ctx context.Context, id uuid.UUID) (ApplicationDetail, error)
	ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]ApplicationDetail, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]ApplicationDetail, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status application.Status) error
	StatusesByApplicant(ctx context.Context, applicantID uuid.UUID) (map[uuid.UUID]application.Status, error)
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

const applicationSelect = `SELECT
	a.id, a.job_id, a.applicant_id, a.resume, a.category, a.status,
	a.created_at, a.updated_at,
	j.id, j.title, j.company_id, j.location, j.type, j.category,
	u.id, u.name, u.email, u.avatar, u.resume
 FROM applications a
 JOIN jobs j ON j.id = a.job_id
 JOIN users u ON u.id = a.applicant_id`

func (r *PostgresApplicationRepository) Create(ctx context.Context, a application.Application) (ApplicationDetail, error) {
	// The unique index on (job_id, applicant_id) resolves concurrent
	// duplicate applies; there is no check-then-act here.
	_, err := r.db.Exec(ctx,
		`INSERT INTO applications (id, job_id, applicant_id, resume, category, status)
		 VALUES ($1,$2,$3,$4,$5,$6)`,
		a.ID, a.JobID, a.ApplicantID, a.Resume, a.Category, a.Status,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ApplicationDetail{}, ErrAlreadyApplied
		}
		return ApplicationDetail{}, err
	}
	return r.GetByID(ctx, a.ID)
}

func (r *PostgresApplicationRepository) GetByID(ctx context.Context, id uuid.UUID) (ApplicationDetail, error) {
	row := r.db.QueryRow(ctx, applicationSelect+` WHERE a.id = $1`, id)
	var out ApplicationDetail
	if err := scanApplicationDetail(row, &out); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ApplicationDetail{}, application.ErrNotFound
		}
		return ApplicationDetail{}, err
	}
	return out, nil
}

func (r *PostgresApplicationRepository) ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]ApplicationDetail, error) {
	return r.list(ctx, applicationSelect+` WHERE a.applicant_id = $1 ORDER BY a.created_at DESC`, applicantID)
}

func (r *PostgresApplicationRepository) ListByJob(ctx context.Context, jobID uuid.UUID) ([]ApplicationDetail, error) {
	return r.list(ctx, applicationSelect+` WHERE a.job_id = $1 ORDER BY a.created_at DESC`, jobID)
}

func (r *PostgresApplicationRepository) list(ctx context.Context, query string, args ...any) ([]ApplicationDetail, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ApplicationDetail, 0)
	for rows.Next() {
		var item ApplicationDetail
		if err := scanApplicationDetail(rows, &item); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *PostgresApplicationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status application.Status) error {
	n, err := r.db.Exec(ctx,
		`UPDATE applications SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return application.ErrNotFound
	}
	return nil
}

func (r *PostgresApplicationRepository) StatusesByApplicant(ctx context.Context, applicantID uuid.UUID) (map[uuid.UUID]application.Status, error) {
	rows, err := r.db.Query(ctx,
		`SELECT job_id, status FROM applications WHERE applicant_id = $1`,
		applicantID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := map[uuid.UUID]application.Status{}
	for rows.Next() {
		var jobID uuid.UUID
		var status application.Status
		if err := rows.Scan(&jobID, &status); err != nil {
			return nil, err
		}
		out[jobID] = status
	}
	return out, rows.Err()
}

func scanApplicationDetail(row database.Row, out *ApplicationDetail) error {
	return row.Scan(
		&out.Application.ID, &out.JobID, &out.ApplicantID, &out.Application.Resume,
		&out.Application.Category, &out.Status, &out.CreatedAt, &out.UpdatedAt,
		&out.Job.ID, &out.Job.Title, &out.Job.CompanyID, &out.Job.Location,
		&out.Job.Type, &out.Job.Category,
		&out.Applicant.ID, &out.Applicant.Name, &out.Applicant.Email,
		&out.Applicant.Avatar, &out.Applicant.Resume,
	)
}
