package usecase

import (
	"context"

	"job-portal/internal/domain/application"
	"job-portal/internal/domain/job"
	"job-portal/internal/domain/savedjob"
	"job-portal/internal/domain/user"
	"job-portal/internal/pkg/jwt"
	"job-portal/internal/repository"

	"github.com/google/uuid"
)

type fakeUserRepo struct {
	byID    map[uuid.UUID]user.User
	byEmail map[string]user.User

	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    map[uuid.UUID]user.User{},
		byEmail: map[string]user.User{},
	}
}

func (f *fakeUserRepo) add(u user.User) {
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
}

func (f *fakeUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	if f.createErr != nil {
		return user.User{}, f.createErr
	}
	if _, ok := f.byEmail[u.Email]; ok {
		return user.User{}, repository.ErrEmailTaken
	}
	f.add(u)
	return u, nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) Update(_ context.Context, u user.User) (user.User, error) {
	if _, ok := f.byID[u.ID]; !ok {
		return user.User{}, user.ErrNotFound
	}
	f.add(u)
	return u, nil
}

func (f *fakeUserRepo) ClearResume(_ context.Context, id uuid.UUID) error {
	u, ok := f.byID[id]
	if !ok {
		return user.ErrNotFound
	}
	u.Resume = ""
	f.add(u)
	return nil
}

type fakeJobRepo struct {
	jobs map[uuid.UUID]repository.JobWithCompany

	searchResults []repository.JobWithCompany
	lastFilter    job.Filter
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: map[uuid.UUID]repository.JobWithCompany{}}
}

func (f *fakeJobRepo) add(j repository.JobWithCompany) {
	f.jobs[j.Job.ID] = j
}

func (f *fakeJobRepo) Create(_ context.Context, j job.Job) (job.Job, error) {
	f.add(repository.JobWithCompany{Job: j})
	return j, nil
}

func (f *fakeJobRepo) GetByID(_ context.Context, id uuid.UUID) (repository.JobWithCompany, error) {
	j, ok := f.jobs[id]
	if !ok {
		return repository.JobWithCompany{}, job.ErrNotFound
	}
	return j, nil
}

func (f *fakeJobRepo) Search(_ context.Context, filter job.Filter) ([]repository.JobWithCompany, error) {
	f.lastFilter = filter
	return f.searchResults, nil
}

func (f *fakeJobRepo) ListByCompany(_ context.Context, companyID uuid.UUID) ([]repository.EmployerJobRow, error) {
	out := make([]repository.EmployerJobRow, 0)
	for _, j := range f.jobs {
		if j.CompanyID == companyID {
			out = append(out, repository.EmployerJobRow{JobWithCompany: j})
		}
	}
	return out, nil
}

func (f *fakeJobRepo) Update(_ context.Context, j job.Job) (job.Job, error) {
	existing, ok := f.jobs[j.ID]
	if !ok {
		return job.Job{}, job.ErrNotFound
	}
	existing.Job = j
	f.add(existing)
	return j, nil
}

func (f *fakeJobRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.jobs[id]; !ok {
		return job.ErrNotFound
	}
	delete(f.jobs, id)
	return nil
}

func (f *fakeJobRepo) SetClosed(_ context.Context, id uuid.UUID, closed bool) error {
	j, ok := f.jobs[id]
	if !ok {
		return job.ErrNotFound
	}
	j.IsClosed = closed
	f.add(j)
	return nil
}

type fakeSavedJobRepo struct {
	saved map[uuid.UUID]map[uuid.UUID]bool // jobseeker -> job ids
}

func newFakeSavedJobRepo() *fakeSavedJobRepo {
	return &fakeSavedJobRepo{saved: map[uuid.UUID]map[uuid.UUID]bool{}}
}

func (f *fakeSavedJobRepo) Save(_ context.Context, s savedjob.SavedJob) error {
	jobs := f.saved[s.JobseekerID]
	if jobs == nil {
		jobs = map[uuid.UUID]bool{}
		f.saved[s.JobseekerID] = jobs
	}
	if jobs[s.JobID] {
		return savedjob.ErrAlreadySaved
	}
	jobs[s.JobID] = true
	return nil
}

func (f *fakeSavedJobRepo) Delete(_ context.Context, jobseekerID, jobID uuid.UUID) error {
	jobs := f.saved[jobseekerID]
	if !jobs[jobID] {
		return savedjob.ErrNotFound
	}
	delete(jobs, jobID)
	return nil
}

func (f *fakeSavedJobRepo) ListByJobseeker(_ context.Context, jobseekerID uuid.UUID) ([]repository.SavedJobWithJob, error) {
	out := make([]repository.SavedJobWithJob, 0)
	for jobID := range f.saved[jobseekerID] {
		out = append(out, repository.SavedJobWithJob{
			SavedJob: savedjob.SavedJob{JobseekerID: jobseekerID, JobID: jobID},
		})
	}
	return out, nil
}

func (f *fakeSavedJobRepo) JobIDsByJobseeker(_ context.Context, jobseekerID uuid.UUID) (map[uuid.UUID]bool, error) {
	out := map[uuid.UUID]bool{}
	for jobID := range f.saved[jobseekerID] {
		out[jobID] = true
	}
	return out, nil
}

type fakeApplicationRepo struct {
	apps map[uuid.UUID]repository.ApplicationDetail
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{apps: map[uuid.UUID]repository.ApplicationDetail{}}
}

func (f *fakeApplicationRepo) add(d repository.ApplicationDetail) {
	f.apps[d.Application.ID] = d
}

func (f *fakeApplicationRepo) Create(_ context.Context, a application.Application) (repository.ApplicationDetail, error) {
	for _, existing := range f.apps {
		if existing.JobID == a.JobID && existing.ApplicantID == a.ApplicantID {
			return repository.ApplicationDetail{}, repository.ErrAlreadyApplied
		}
	}
	d := repository.ApplicationDetail{Application: a}
	f.add(d)
	return d, nil
}

func (f *fakeApplicationRepo) GetByID(_ context.Context, id uuid.UUID) (repository.ApplicationDetail, error) {
	d, ok := f.apps[id]
	if !ok {
		return repository.ApplicationDetail{}, application.ErrNotFound
	}
	return d, nil
}

func (f *fakeApplicationRepo) ListByApplicant(_ context.Context, applicantID uuid.UUID) ([]repository.ApplicationDetail, error) {
	out := make([]repository.ApplicationDetail, 0)
	for _, d := range f.apps {
		if d.ApplicantID == applicantID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) ListByJob(_ context.Context, jobID uuid.UUID) ([]repository.ApplicationDetail, error) {
	out := make([]repository.ApplicationDetail, 0)
	for _, d := range f.apps {
		if d.JobID == jobID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeApplicationRepo) UpdateStatus(_ context.Context, id uuid.UUID, status application.Status) error {
	d, ok := f.apps[id]
	if !ok {
		return application.ErrNotFound
	}
	d.Status = status
	f.add(d)
	return nil
}

func (f *fakeApplicationRepo) StatusesByApplicant(_ context.Context, applicantID uuid.UUID) (map[uuid.UUID]application.Status, error) {
	out := map[uuid.UUID]application.Status{}
	for _, d := range f.apps {
		if d.ApplicantID == applicantID {
			out[d.JobID] = d.Status
		}
	}
	return out, nil
}

type fakeTokens struct {
	token string
	err   error
}

func (f fakeTokens) Generate(uuid.UUID, user.Role) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if f.token == "" {
		return "token", nil
	}
	return f.token, nil
}

func (f fakeTokens) Validate(string) (jwt.Claims, error) {
	return jwt.Claims{}, f.err
}

type statusChange struct {
	applicantID   uuid.UUID
	applicationID uuid.UUID
	jobTitle      string
	status        application.Status
}

type fakeNotifier struct {
	events []statusChange
}

func (f *fakeNotifier) NotifyStatusChanged(applicantID, applicationID uuid.UUID, jobTitle string, status application.Status) {
	f.events = append(f.events, statusChange{
		applicantID:   applicantID,
		applicationID: applicationID,
		jobTitle:      jobTitle,
		status:        status,
	})
}
