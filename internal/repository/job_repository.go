package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"job-portal/internal/database"
	"job-portal/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type JobWithCompany struct {
	job.Job
	Company job.Company
}

type EmployerJobRow struct {
	JobWithCompany
	ApplicationCount int
}

type JobRepository interface {
	Create(ctx context.Context, j job.Job) (job.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (JobWithCompany, error)
	Search(ctx context.Context, f job.Filter) ([]JobWithCompany, error)
	ListByCompany(ctx context.Context, companyID uuid.UUID) ([]EmployerJobRow, error)
	Update(ctx context.Context, j job.Job) (job.Job, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetClosed(ctx context.Context, id uuid.UUID, closed bool) error
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `j.id, j.title, j.description, j.requirements, j.location,
	j.category, j.type, j.company_id, j.salary_min, j.salary_max, j.is_closed,
	j.created_at, j.updated_at`

const companyColumns = `u.id, u.name, u.company_name, u.company_logo`

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) (job.Job, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO jobs (id, title, description, requirements, location, category,
			type, company_id, salary_min, salary_max, is_closed)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
		 RETURNING id, title, description, requirements, location, category, type,
			company_id, salary_min, salary_max, is_closed, created_at, updated_at`,
		j.ID, j.Title, j.Description, j.Requirements, j.Location, j.Category,
		j.Type, j.CompanyID, j.SalaryMin, j.SalaryMax, j.IsClosed,
	)
	return scanJob(row)
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (JobWithCompany, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+jobColumns+`, `+companyColumns+`
		 FROM jobs j
		 JOIN users u ON u.id = j.company_id
		 WHERE j.id = $1`,
		id,
	)
	var out JobWithCompany
	if err := scanJobWithCompany(row, &out); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return JobWithCompany{}, job.ErrNotFound
		}
		return JobWithCompany{}, err
	}
	return out, nil
}

// Search runs the filter query. All supplied criteria are ANDed and the
// result is always restricted to open jobs; ordering is store-native.
func (r *PostgresJobRepository) Search(ctx context.Context, f job.Filter) ([]JobWithCompany, error) {
	where, args := searchConditions(f)
	q := `SELECT ` + jobColumns + `, ` + companyColumns + `
		 FROM jobs j
		 JOIN users u ON u.id = j.company_id
		 WHERE ` + strings.Join(where, " AND ")

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]JobWithCompany, 0)
	for rows.Next() {
		var item JobWithCompany
		if err := scanJobWithCompany(rows, &item); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// searchConditions translates the criteria bag into SQL predicates with
// positional args. A job matches the salary range when the ranges
// overlap: job max above the requested minimum and job min below the
// requested maximum.
func searchConditions(f job.Filter) ([]string, []any) {
	where := []string{"j.is_closed = false"}
	args := make([]any, 0, 6)

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if kw := strings.TrimSpace(f.Keyword); kw != "" {
		where = append(where, "j.title ILIKE "+arg("%"+kw+"%"))
	}
	if loc := strings.TrimSpace(f.Location); loc != "" {
		where = append(where, "j.location ILIKE "+arg("%"+loc+"%"))
	}
	if len(f.Types) > 0 {
		where = append(where, "j.type = ANY("+arg(f.Types)+")")
	}
	if len(f.Categories) > 0 {
		where = append(where, "j.category = ANY("+arg(f.Categories)+")")
	}
	if f.MinSalary != nil {
		where = append(where, "j.salary_max >= "+arg(*f.MinSalary))
	}
	if f.MaxSalary != nil {
		where = append(where, "j.salary_min <= "+arg(*f.MaxSalary))
	}

	return where, args
}

func (r *PostgresJobRepository) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]EmployerJobRow, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+`, `+companyColumns+`,
			(SELECT COUNT(1) FROM applications a WHERE a.job_id = j.id)
		 FROM jobs j
		 JOIN users u ON u.id = j.company_id
		 WHERE j.company_id = $1
		 ORDER BY j.created_at DESC`,
		companyID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]EmployerJobRow, 0)
	for rows.Next() {
		var item EmployerJobRow
		err := rows.Scan(
			&item.Job.ID, &item.Title, &item.Description, &item.Requirements,
			&item.Job.Location, &item.Category, &item.Job.Type, &item.CompanyID,
			&item.SalaryMin, &item.SalaryMax, &item.Job.IsClosed,
			&item.Job.CreatedAt, &item.UpdatedAt,
			&item.Company.ID, &item.Company.Name, &item.Company.CompanyName,
			&item.Company.CompanyLogo,
			&item.ApplicationCount,
		)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *PostgresJobRepository) Update(ctx context.Context, j job.Job) (job.Job, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE jobs SET
			title = $2, description = $3, requirements = $4, location = $5,
			category = $6, type = $7, salary_min = $8, salary_max = $9,
			updated_at = now()
		 WHERE id = $1
		 RETURNING id, title, description, requirements, location, category, type,
			company_id, salary_min, salary_max, is_closed, created_at, updated_at`,
		j.ID, j.Title, j.Description, j.Requirements, j.Location, j.Category,
		j.Type, j.SalaryMin, j.SalaryMax,
	)
	return scanJob(row)
}

func (r *PostgresJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (r *PostgresJobRepository) SetClosed(ctx context.Context, id uuid.UUID, closed bool) error {
	n, err := r.db.Exec(ctx,
		`UPDATE jobs SET is_closed = $2, updated_at = now() WHERE id = $1`,
		id, closed,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return job.ErrNotFound
	}
	return nil
}

func scanJob(row database.Row) (job.Job, error) {
	var j job.Job
	err := row.Scan(
		&j.ID, &j.Title, &j.Description, &j.Requirements, &j.Location, &j.Category,
		&j.Type, &j.CompanyID, &j.SalaryMin, &j.SalaryMax, &j.IsClosed,
		&j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func scanJobWithCompany(row database.Row, out *JobWithCompany) error {
	return row.Scan(
		&out.Job.ID, &out.Title, &out.Description, &out.Requirements,
		&out.Job.Location, &out.Category, &out.Job.Type, &out.CompanyID,
		&out.SalaryMin, &out.SalaryMax, &out.Job.IsClosed,
		&out.Job.CreatedAt, &out.UpdatedAt,
		&out.Company.ID, &out.Company.Name, &out.Company.CompanyName,
		&out.Company.CompanyLogo,
	)
}
