package usecase

import (
	"context"
	"errors"
	"testing"

	"job-portal/internal/domain/application"
	"job-portal/internal/domain/job"
	"job-portal/internal/domain/user"
	"job-portal/internal/repository"

	"github.com/google/uuid"
)

func TestApply(t *testing.T) {
	jobs := newFakeJobRepo()
	users := newFakeUserRepo()
	apps := newFakeApplicationRepo()
	uc := NewApplicationUsecase(apps, jobs, users, nil)

	applicant := jobseeker()
	users.add(user.User{ID: applicant.ID, Role: user.RoleJobseeker, Resume: "/uploads/cv.pdf"})

	jobID := uuid.New()
	jobs.add(repository.JobWithCompany{Job: job.Job{
		ID: jobID, Title: "Backend Engineer", Category: "Engineering", CompanyID: uuid.New(),
	}})

	t.Run("employer forbidden", func(t *testing.T) {
		if _, err := uc.Apply(context.Background(), employer(), jobID); !errors.Is(err, ErrForbidden) {
			t.Fatalf("got %v, want ErrForbidden", err)
		}
	})

	t.Run("unknown job", func(t *testing.T) {
		if _, err := uc.Apply(context.Background(), applicant, uuid.New()); !errors.Is(err, ErrNotFound) {
			t.Fatalf("got %v, want ErrNotFound", err)
		}
	})

	t.Run("snapshots resume and category", func(t *testing.T) {
		created, err := uc.Apply(context.Background(), applicant, jobID)
		if err != nil {
			t.Fatalf("apply: %v", err)
		}
		if created.Resume != "/uploads/cv.pdf" {
			t.Fatalf("resume snapshot = %q", created.Resume)
		}
		if created.Application.Category != "Engineering" {
			t.Fatalf("category snapshot = %q", created.Application.Category)
		}
		if created.Status != application.StatusApplied {
			t.Fatalf("status = %q, want Applied", created.Status)
		}
	})

	t.Run("second apply conflicts", func(t *testing.T) {
		if _, err := uc.Apply(context.Background(), applicant, jobID); !errors.Is(err, ErrAlreadyApplied) {
			t.Fatalf("got %v, want ErrAlreadyApplied", err)
		}
	})
}

func TestListForJobOwnership(t *testing.T) {
	jobs := newFakeJobRepo()
	apps := newFakeApplicationRepo()
	uc := NewApplicationUsecase(apps, jobs, newFakeUserRepo(), nil)

	owner := employer()
	jobID := uuid.New()
	jobs.add(repository.JobWithCompany{Job: job.Job{ID: jobID, CompanyID: owner.ID}})
	apps.add(repository.ApplicationDetail{Application: application.Application{
		ID: uuid.New(), JobID: jobID, ApplicantID: uuid.New(),
	}})

	if _, err := uc.ListForJob(context.Background(), employer(), jobID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("got %v, want ErrForbidden", err)
	}

	rows, err := uc.ListForJob(context.Background(), owner, jobID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
}

func TestGetApplicationVisibility(t *testing.T) {
	apps := newFakeApplicationRepo()
	uc := NewApplicationUsecase(apps, newFakeJobRepo(), newFakeUserRepo(), nil)

	applicant := jobseeker()
	owner := employer()
	appID := uuid.New()
	apps.add(repository.ApplicationDetail{
		Application: application.Application{ID: appID, ApplicantID: applicant.ID},
		Job:         application.JobSummary{CompanyID: owner.ID},
	})

	if _, err := uc.Get(context.Background(), applicant, appID); err != nil {
		t.Fatalf("applicant blocked: %v", err)
	}
	if _, err := uc.Get(context.Background(), owner, appID); err != nil {
		t.Fatalf("job owner blocked: %v", err)
	}
	if _, err := uc.Get(context.Background(), jobseeker(), appID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("got %v, want ErrForbidden", err)
	}
	if _, err := uc.Get(context.Background(), applicant, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}

func TestUpdateStatus(t *testing.T) {
	apps := newFakeApplicationRepo()
	notifier := &fakeNotifier{}
	uc := NewApplicationUsecase(apps, newFakeJobRepo(), newFakeUserRepo(), notifier)

	applicantID := uuid.New()
	owner := employer()
	appID := uuid.New()
	apps.add(repository.ApplicationDetail{
		Application: application.Application{ID: appID, ApplicantID: applicantID, Status: application.StatusApplied},
		Job:         application.JobSummary{Title: "Backend Engineer", CompanyID: owner.ID},
	})

	t.Run("empty status", func(t *testing.T) {
		if _, err := uc.UpdateStatus(context.Background(), owner, appID, "  "); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("got %v, want ErrInvalidInput", err)
		}
	})

	t.Run("non-owner forbidden", func(t *testing.T) {
		if _, err := uc.UpdateStatus(context.Background(), employer(), appID, application.StatusHired); !errors.Is(err, ErrForbidden) {
			t.Fatalf("got %v, want ErrForbidden", err)
		}
	})

	t.Run("overwrite and notify", func(t *testing.T) {
		updated, err := uc.UpdateStatus(context.Background(), owner, appID, application.StatusHired)
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if updated.Status != application.StatusHired {
			t.Fatalf("status = %q", updated.Status)
		}
		if len(notifier.events) != 1 {
			t.Fatalf("got %d notifications, want 1", len(notifier.events))
		}
		ev := notifier.events[0]
		if ev.applicantID != applicantID || ev.applicationID != appID {
			t.Fatal("notification addressed wrongly")
		}
		if ev.jobTitle != "Backend Engineer" || ev.status != application.StatusHired {
			t.Fatalf("notification payload = %+v", ev)
		}
	})

	t.Run("backward move allowed", func(t *testing.T) {
		updated, err := uc.UpdateStatus(context.Background(), owner, appID, application.StatusApplied)
		if err != nil {
			t.Fatalf("update: %v", err)
		}
		if updated.Status != application.StatusApplied {
			t.Fatalf("status = %q", updated.Status)
		}
	})
}

func TestListMineRequiresJobseeker(t *testing.T) {
	uc := NewApplicationUsecase(newFakeApplicationRepo(), newFakeJobRepo(), newFakeUserRepo(), nil)
	if _, err := uc.ListMine(context.Background(), employer()); !errors.Is(err, ErrForbidden) {
		t.Fatalf("got %v, want ErrForbidden", err)
	}
}
