package app

import (
	"context"
	"sync"
	"time"

	"skillbridge/internal/common"
	"skillbridge/internal/domain/catalog"
	"skillbridge/internal/domain/employer"
	"skillbridge/internal/domain/learner"
)

type fakeLearnerRepo struct {
	mu      sync.Mutex
	byEmail map[string]*learner.Learner
	// failSaves makes the next n Save calls lose the revision race.
	failSaves int
	saveCalls int
}

func newFakeLearnerRepo() *fakeLearnerRepo {
	return &fakeLearnerRepo{byEmail: make(map[string]*learner.Learner)}
}

func (r *fakeLearnerRepo) Create(ctx context.Context, l learner.Learner) (*learner.Learner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[l.Email]; ok {
		return nil, common.NewError(common.CodeDuplicate, "email already registered", nil)
	}
	now := time.Now().UTC()
	l.CreatedAt = now
	l.UpdatedAt = now
	l.Revision = 1
	stored := cloneLearner(l)
	r.byEmail[l.Email] = &stored
	result := cloneLearner(stored)
	return &result, nil
}

func (r *fakeLearnerRepo) GetByEmail(ctx context.Context, email string) (*learner.Learner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.byEmail[email]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "learner not found", nil)
	}
	result := cloneLearner(*stored)
	return &result, nil
}

func (r *fakeLearnerRepo) Save(ctx context.Context, l learner.Learner) (*learner.Learner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saveCalls++
	stored, ok := r.byEmail[l.Email]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "learner not found", nil)
	}
	if r.failSaves > 0 {
		r.failSaves--
		return nil, common.NewError(common.CodeConflict, "learner modified concurrently", nil)
	}
	if stored.Revision != l.Revision {
		return nil, common.NewError(common.CodeConflict, "learner modified concurrently", nil)
	}
	l.Revision++
	l.UpdatedAt = time.Now().UTC()
	updated := cloneLearner(l)
	r.byEmail[l.Email] = &updated
	result := cloneLearner(updated)
	return &result, nil
}

func (r *fakeLearnerRepo) SetProfileAssets(ctx context.Context, email, profilePic, profileLink string) (*learner.Learner, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.byEmail[email]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "learner not found", nil)
	}
	stored.ProfilePic = profilePic
	stored.ProfileLink = profileLink
	stored.UpdatedAt = time.Now().UTC()
	result := cloneLearner(*stored)
	return &result, nil
}

func cloneLearner(l learner.Learner) learner.Learner {
	l.Domains = append([]string(nil), l.Domains...)
	l.SoftSkills = append([]string(nil), l.SoftSkills...)
	l.Education = append([]learner.Education(nil), l.Education...)
	l.Skills = append([]learner.Skill(nil), l.Skills...)
	l.Certifications = append([]learner.Certification(nil), l.Certifications...)
	l.Languages = append([]learner.Language(nil), l.Languages...)
	l.Work = append([]learner.Work(nil), l.Work...)
	l.AppliedJobs = append([]learner.AppliedJob(nil), l.AppliedJobs...)
	return l
}

type fakeEmployerRepo struct {
	mu        sync.Mutex
	byEmail   map[string]*employer.Employer
	failSaves int
	saveCalls int
}

func newFakeEmployerRepo() *fakeEmployerRepo {
	return &fakeEmployerRepo{byEmail: make(map[string]*employer.Employer)}
}

func (r *fakeEmployerRepo) Create(ctx context.Context, e employer.Employer) (*employer.Employer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byEmail[e.Email]; ok {
		return nil, common.NewError(common.CodeDuplicate, "email already registered", nil)
	}
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now
	e.Revision = 1
	stored := cloneEmployer(e)
	r.byEmail[e.Email] = &stored
	result := cloneEmployer(stored)
	return &result, nil
}

func (r *fakeEmployerRepo) GetByEmail(ctx context.Context, email string) (*employer.Employer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.byEmail[email]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "employer not found", nil)
	}
	result := cloneEmployer(*stored)
	return &result, nil
}

func (r *fakeEmployerRepo) Save(ctx context.Context, e employer.Employer) (*employer.Employer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saveCalls++
	stored, ok := r.byEmail[e.Email]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "employer not found", nil)
	}
	if r.failSaves > 0 {
		r.failSaves--
		return nil, common.NewError(common.CodeConflict, "employer modified concurrently", nil)
	}
	if stored.Revision != e.Revision {
		return nil, common.NewError(common.CodeConflict, "employer modified concurrently", nil)
	}
	e.Revision++
	e.UpdatedAt = time.Now().UTC()
	updated := cloneEmployer(e)
	r.byEmail[e.Email] = &updated
	result := cloneEmployer(updated)
	return &result, nil
}

func cloneEmployer(e employer.Employer) employer.Employer {
	jobs := make([]employer.Job, len(e.Jobs))
	for i, job := range e.Jobs {
		job.Skills = append([]string(nil), job.Skills...)
		job.Applicants = append([]employer.Applicant(nil), job.Applicants...)
		jobs[i] = job
	}
	e.Jobs = jobs
	return e
}

type fakeSkillSetRepo struct {
	sets map[string]catalog.SkillSet
}

func (r *fakeSkillSetRepo) GetByJobTitle(ctx context.Context, jobTitle string) (*catalog.SkillSet, error) {
	set, ok := r.sets[jobTitle]
	if !ok {
		return nil, common.NewError(common.CodeNotFound, "skill set not found", nil)
	}
	return &set, nil
}

type fakeQuestionRepo struct {
	items []catalog.Question
}

func (r *fakeQuestionRepo) List(ctx context.Context, domain, skill string) ([]catalog.Question, error) {
	var matched []catalog.Question
	for _, item := range r.items {
		if domain != "" && item.Domain != domain {
			continue
		}
		if skill != "" && item.Skill != skill {
			continue
		}
		matched = append(matched, item)
	}
	return matched, nil
}

type nopLogger struct{}

func (nopLogger) Info(string)  {}
func (nopLogger) Error(string) {}
