package repository

import (
	"context"
	"errors"

	"job-portal/internal/database"
	"job-portal/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var ErrEmailTaken = errors.New("email already taken")

type UserRepository interface {
	Create(ctx context.Context, u user.User) (user.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (user.User, error)
	GetByEmail(ctx context.Context, email string) (user.User, error)
	Update(ctx context.Context, u user.User) (user.User, error)
	ClearResume(ctx context.Context, id uuid.UUID) error
}

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

const userColumns = `id, name, email, password_hash, role, avatar, resume,
	company_name, company_description, company_logo, created_at, updated_at`

func (r *PostgresUserRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO users (id, name, email, password_hash, role, avatar, resume,
			company_name, company_description, company_logo)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		 RETURNING `+userColumns,
		u.ID, u.Name, u.Email, u.PasswordHash, u.Role, u.Avatar, u.Resume,
		u.CompanyName, u.CompanyDescription, u.CompanyLogo,
	)
	created, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err) {
			return user.User{}, ErrEmailTaken
		}
		return user.User{}, err
	}
	return created, nil
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *PostgresUserRepository) Update(ctx context.Context, u user.User) (user.User, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE users SET
			name = $2, avatar = $3, resume = $4,
			company_name = $5, company_description = $6, company_logo = $7,
			updated_at = now()
		 WHERE id = $1
		 RETURNING `+userColumns,
		u.ID, u.Name, u.Avatar, u.Resume,
		u.CompanyName, u.CompanyDescription, u.CompanyLogo,
	)
	return scanUser(row)
}

func (r *PostgresUserRepository) ClearResume(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `UPDATE users SET resume = '', updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return user.ErrNotFound
	}
	return nil
}

func scanUser(row database.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.Avatar, &u.Resume,
		&u.CompanyName, &u.CompanyDescription, &u.CompanyLogo, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

// isUniqueViolation reports whether err is a Postgres unique-index
// violation (SQLSTATE 23505). Uniqueness invariants live in the schema,
// not in check-then-act application code.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
