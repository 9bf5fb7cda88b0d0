package usecase

import (
	"context"
	"errors"
	"strings"

	"job-portal/internal/domain/user"
	"job-portal/internal/repository"

	"github.com/google/uuid"
)

type UpdateProfileInput struct {
	Name   string
	Avatar string
	Resume string

	CompanyName        string
	CompanyDescription string
	CompanyLogo        string
}

// FileRemover deletes a previously uploaded file by its public URL or
// bare filename. Missing files are not an error.
type FileRemover interface {
	Remove(fileURL string) error
}

type UserUsecase interface {
	UpdateProfile(ctx context.Context, actor user.Actor, in UpdateProfileInput) (user.User, error)
	DeleteResume(ctx context.Context, actor user.Actor, resumeURL string) error
	PublicProfile(ctx context.Context, id uuid.UUID) (user.User, error)
}

type Users struct {
	users repository.UserRepository
	files FileRemover
}

func NewUserUsecase(users repository.UserRepository, files FileRemover) *Users {
	return &Users{users: users, files: files}
}

// UpdateProfile overwrites only the supplied fields; blank input keeps
// the stored value. Company fields are ignored for jobseekers.
func (u *Users) UpdateProfile(ctx context.Context, actor user.Actor, in UpdateProfileInput) (user.User, error) {
	current, err := u.users.GetByID(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrNotFound
		}
		return user.User{}, internalErr(err)
	}

	merge := func(next, prev string) string {
		if strings.TrimSpace(next) == "" {
			return prev
		}
		return next
	}

	current.Name = merge(in.Name, current.Name)
	current.Avatar = merge(in.Avatar, current.Avatar)
	current.Resume = merge(in.Resume, current.Resume)

	if current.Role == user.RoleEmployer {
		current.CompanyName = merge(in.CompanyName, current.CompanyName)
		current.CompanyDescription = merge(in.CompanyDescription, current.CompanyDescription)
		current.CompanyLogo = merge(in.CompanyLogo, current.CompanyLogo)
	}

	updated, err := u.users.Update(ctx, current)
	if err != nil {
		return user.User{}, internalErr(err)
	}
	return sanitizeUser(updated), nil
}

func (u *Users) DeleteResume(ctx context.Context, actor user.Actor, resumeURL string) error {
	if !actor.IsJobseeker() {
		return ErrForbidden
	}

	if u.files != nil && strings.TrimSpace(resumeURL) != "" {
		if err := u.files.Remove(resumeURL); err != nil {
			return internalErr(err)
		}
	}

	if err := u.users.ClearResume(ctx, actor.ID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return ErrNotFound
		}
		return internalErr(err)
	}
	return nil
}

func (u *Users) PublicProfile(ctx context.Context, id uuid.UUID) (user.User, error) {
	found, err := u.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrNotFound
		}
		return user.User{}, internalErr(err)
	}
	return sanitizeUser(found), nil
}
