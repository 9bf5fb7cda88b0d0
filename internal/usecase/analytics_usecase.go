package usecase

import (
	"context"
	"math"
	"time"

	"job-portal/internal/domain/user"
	"job-portal/internal/repository"
)

type DashboardCounts struct {
	TotalActiveJobs int `json:"totalActiveJobs"`
	TotalApplicants int `json:"totalApplicants"`
	TotalHires      int `json:"totalHires"`
	TotalCompanies  int `json:"totalCompanies"`
}

type DashboardTrends struct {
	ActiveJobs int `json:"activeJobs"`
	Applicants int `json:"applicants"`
	Hires      int `json:"hires"`
	Companies  int `json:"companies"`
}

type Dashboard struct {
	Counts DashboardCounts `json:"counts"`
	Trends DashboardTrends `json:"trends"`
	Data   struct {
		RecentJobs         []repository.RecentJob         `json:"recentJobs"`
		RecentApplications []repository.RecentApplication `json:"recentApplicants"`
	} `json:"data"`
}

type AnalyticsUsecase interface {
	EmployerDashboard(ctx context.Context, actor user.Actor) (Dashboard, error)
}

type Analytics struct {
	repo repository.AnalyticsRepository
	now  func() time.Time
}

func NewAnalyticsUsecase(repo repository.AnalyticsRepository) *Analytics {
	return &Analytics{repo: repo, now: time.Now}
}

// Trend is the week-over-week percentage change, as a signed integer. A
// metric appearing from nothing reads as +100.
func Trend(current, previous int) int {
	if previous == 0 {
		if current > 0 {
			return 100
		}
		return 0
	}
	return int(math.Round(float64(current-previous) / float64(previous) * 100))
}

func (u *Analytics) EmployerDashboard(ctx context.Context, actor user.Actor) (Dashboard, error) {
	if !actor.IsEmployer() {
		return Dashboard{}, ErrForbidden
	}

	now := u.now().UTC()
	last7 := repository.Window{From: now.AddDate(0, 0, -7), To: now}
	prev7 := repository.Window{From: now.AddDate(0, 0, -14), To: now.AddDate(0, 0, -7)}

	var d Dashboard
	var err error

	if d.Counts.TotalActiveJobs, err = u.repo.CountActiveJobs(ctx, actor.ID); err != nil {
		return Dashboard{}, internalErr(err)
	}
	if d.Counts.TotalApplicants, err = u.repo.CountApplications(ctx, actor.ID); err != nil {
		return Dashboard{}, internalErr(err)
	}
	if d.Counts.TotalHires, err = u.repo.CountHires(ctx, actor.ID); err != nil {
		return Dashboard{}, internalErr(err)
	}
	if d.Counts.TotalCompanies, err = u.repo.CountCompanies(ctx); err != nil {
		return Dashboard{}, internalErr(err)
	}

	type metric struct {
		out     *int
		current func(repository.Window) (int, error)
	}
	metrics := []metric{
		{&d.Trends.ActiveJobs, func(w repository.Window) (int, error) {
			return u.repo.CountJobsCreated(ctx, actor.ID, w)
		}},
		{&d.Trends.Applicants, func(w repository.Window) (int, error) {
			return u.repo.CountApplicationsCreated(ctx, actor.ID, w)
		}},
		{&d.Trends.Hires, func(w repository.Window) (int, error) {
			return u.repo.CountHiresCreated(ctx, actor.ID, w)
		}},
		{&d.Trends.Companies, func(w repository.Window) (int, error) {
			return u.repo.CountCompaniesCreated(ctx, w)
		}},
	}

	for _, m := range metrics {
		current, err := m.current(last7)
		if err != nil {
			return Dashboard{}, internalErr(err)
		}
		previous, err := m.current(prev7)
		if err != nil {
			return Dashboard{}, internalErr(err)
		}
		*m.out = Trend(current, previous)
	}

	if d.Data.RecentJobs, err = u.repo.RecentJobs(ctx, actor.ID, 5); err != nil {
		return Dashboard{}, internalErr(err)
	}
	if d.Data.RecentApplications, err = u.repo.RecentApplications(ctx, actor.ID, 5); err != nil {
		return Dashboard{}, internalErr(err)
	}

	return d, nil
}
