package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"job-portal/internal/repository"

	"github.com/google/uuid"
)

func TestTrend(t *testing.T) {
	cases := []struct {
		current, previous, want int
	}{
		{0, 0, 0},
		{5, 0, 100},
		{0, 5, -100},
		{8, 4, 100},
		{3, 6, -50},
		{6, 4, 50},
		{1, 3, -67},
		{7, 3, 133},
	}
	for _, tc := range cases {
		if got := Trend(tc.current, tc.previous); got != tc.want {
			t.Errorf("Trend(%d, %d) = %d, want %d", tc.current, tc.previous, got, tc.want)
		}
	}
}

// fakeAnalyticsRepo answers window queries by comparing the window's end
// against a fixed clock: the window ending at "now" is the current week.
type fakeAnalyticsRepo struct {
	now time.Time

	activeJobs, applications, hires, companies int

	jobsByWeek      [2]int // [current, previous]
	appsByWeek      [2]int
	hiresByWeek     [2]int
	companiesByWeek [2]int

	recentJobs []repository.RecentJob
	recentApps []repository.RecentApplication
}

func (f *fakeAnalyticsRepo) week(w repository.Window) int {
	if w.To.Equal(f.now) {
		return 0
	}
	return 1
}

func (f *fakeAnalyticsRepo) CountActiveJobs(context.Context, uuid.UUID) (int, error) {
	return f.activeJobs, nil
}
func (f *fakeAnalyticsRepo) CountJobsCreated(_ context.Context, _ uuid.UUID, w repository.Window) (int, error) {
	return f.jobsByWeek[f.week(w)], nil
}
func (f *fakeAnalyticsRepo) CountApplications(context.Context, uuid.UUID) (int, error) {
	return f.applications, nil
}
func (f *fakeAnalyticsRepo) CountApplicationsCreated(_ context.Context, _ uuid.UUID, w repository.Window) (int, error) {
	return f.appsByWeek[f.week(w)], nil
}
func (f *fakeAnalyticsRepo) CountHires(context.Context, uuid.UUID) (int, error) {
	return f.hires, nil
}
func (f *fakeAnalyticsRepo) CountHiresCreated(_ context.Context, _ uuid.UUID, w repository.Window) (int, error) {
	return f.hiresByWeek[f.week(w)], nil
}
func (f *fakeAnalyticsRepo) CountCompanies(context.Context) (int, error) {
	return f.companies, nil
}
func (f *fakeAnalyticsRepo) CountCompaniesCreated(_ context.Context, w repository.Window) (int, error) {
	return f.companiesByWeek[f.week(w)], nil
}
func (f *fakeAnalyticsRepo) RecentJobs(context.Context, uuid.UUID, int) ([]repository.RecentJob, error) {
	return f.recentJobs, nil
}
func (f *fakeAnalyticsRepo) RecentApplications(context.Context, uuid.UUID, int) ([]repository.RecentApplication, error) {
	return f.recentApps, nil
}

func TestEmployerDashboard(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	repo := &fakeAnalyticsRepo{
		now:          now,
		activeJobs:   4,
		applications: 20,
		hires:        3,
		companies:    9,

		jobsByWeek:      [2]int{8, 4},
		appsByWeek:      [2]int{3, 6},
		hiresByWeek:     [2]int{5, 0},
		companiesByWeek: [2]int{0, 0},

		recentJobs: []repository.RecentJob{{Title: "Backend Engineer"}},
	}

	uc := &Analytics{repo: repo, now: func() time.Time { return now }}

	t.Run("jobseeker forbidden", func(t *testing.T) {
		if _, err := uc.EmployerDashboard(context.Background(), jobseeker()); !errors.Is(err, ErrForbidden) {
			t.Fatalf("got %v, want ErrForbidden", err)
		}
	})

	d, err := uc.EmployerDashboard(context.Background(), employer())
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}

	if d.Counts.TotalActiveJobs != 4 || d.Counts.TotalApplicants != 20 ||
		d.Counts.TotalHires != 3 || d.Counts.TotalCompanies != 9 {
		t.Fatalf("counts = %+v", d.Counts)
	}
	if d.Trends.ActiveJobs != 100 {
		t.Fatalf("jobs trend = %d, want 100", d.Trends.ActiveJobs)
	}
	if d.Trends.Applicants != -50 {
		t.Fatalf("applicants trend = %d, want -50", d.Trends.Applicants)
	}
	if d.Trends.Hires != 100 {
		t.Fatalf("hires trend = %d, want 100", d.Trends.Hires)
	}
	if d.Trends.Companies != 0 {
		t.Fatalf("companies trend = %d, want 0", d.Trends.Companies)
	}
	if len(d.Data.RecentJobs) != 1 {
		t.Fatalf("recent jobs = %d, want 1", len(d.Data.RecentJobs))
	}
}
