package usecase

import (
	"context"
	"errors"
	"strings"

	"job-portal/internal/domain/user"
	"job-portal/internal/pkg/jwt"
	"job-portal/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     user.Role
	Avatar   string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (user.User, string, error)
	Login(ctx context.Context, in LoginInput) (user.User, string, error)
	Me(ctx context.Context, id uuid.UUID) (user.User, error)
}

type Auth struct {
	users  repository.UserRepository
	tokens jwt.Service
}

func NewAuthUsecase(users repository.UserRepository, tokens jwt.Service) *Auth {
	return &Auth{users: users, tokens: tokens}
}

func (u *Auth) Register(ctx context.Context, in RegisterInput) (user.User, string, error) {
	email := normalizeEmail(in.Email)
	name := strings.TrimSpace(in.Name)
	if email == "" || name == "" {
		return user.User{}, "", ErrInvalidInput
	}
	if len(strings.TrimSpace(in.Password)) < 8 {
		return user.User{}, "", ErrInvalidInput
	}
	if !in.Role.Valid() {
		return user.User{}, "", ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, "", internalErr(err)
	}

	created, err := u.users.Create(ctx, user.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         in.Role,
		Avatar:       strings.TrimSpace(in.Avatar),
	})
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return user.User{}, "", ErrEmailAlreadyRegistered
		}
		return user.User{}, "", internalErr(err)
	}

	token, err := u.tokens.Generate(created.ID, created.Role)
	if err != nil {
		return user.User{}, "", internalErr(err)
	}

	return sanitizeUser(created), token, nil
}

func (u *Auth) Login(ctx context.Context, in LoginInput) (user.User, string, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return user.User{}, "", ErrInvalidCredentials
	}

	found, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, "", ErrInvalidCredentials
		}
		return user.User{}, "", internalErr(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(in.Password)); err != nil {
		return user.User{}, "", ErrInvalidCredentials
	}

	token, err := u.tokens.Generate(found.ID, found.Role)
	if err != nil {
		return user.User{}, "", internalErr(err)
	}

	return sanitizeUser(found), token, nil
}

func (u *Auth) Me(ctx context.Context, id uuid.UUID) (user.User, error) {
	found, err := u.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrNotFound
		}
		return user.User{}, internalErr(err)
	}
	return sanitizeUser(found), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
