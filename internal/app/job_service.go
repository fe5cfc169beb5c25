package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"skillbridge/internal/common"
	"skillbridge/internal/domain/employer"
	"skillbridge/internal/domain/learner"
	"skillbridge/internal/observability"
)

type JobService struct {
	employers   employer.Repository
	learners    learner.Repository
	logger      observability.Logger
	saveRetries int
}

func NewJobService(employers employer.Repository, learners learner.Repository, logger observability.Logger, saveRetries int) *JobService {
	if saveRetries < 1 {
		saveRetries = 1
	}
	return &JobService{employers: employers, learners: learners, logger: logger, saveRetries: saveRetries}
}

func (s *JobService) mutate(ctx context.Context, email string, apply func(*employer.Employer) error) (*employer.Employer, error) {
	var lastErr error
	for attempt := 0; attempt < s.saveRetries; attempt++ {
		current, err := s.employers.GetByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if err := apply(current); err != nil {
			return nil, err
		}
		saved, err := s.employers.Save(ctx, *current)
		if err == nil {
			return saved, nil
		}
		if !common.Is(err, common.CodeConflict) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

type JobInput struct {
	Title           string
	Description     string
	Skills          []string
	Qualification   string
	Experience      string
	Salary          string
	ApplicationLink string
	Status          string
}

func (s *JobService) PostJob(ctx context.Context, employerEmail string, in JobInput) (*employer.Job, error) {
	if in.Title == "" {
		return nil, common.NewValidationError("invalid job", map[string]string{"title": "title is required"})
	}
	if in.Description == "" {
		return nil, common.NewValidationError("invalid job", map[string]string{"description": "description is required"})
	}
	status, err := normalizeJobStatus(in.Status, employer.JobStatusActive)
	if err != nil {
		return nil, err
	}
	job := employer.Job{
		ID:              strconv.FormatInt(time.Now().UnixNano(), 10),
		Title:           in.Title,
		Description:     in.Description,
		Skills:          in.Skills,
		Qualification:   in.Qualification,
		Experience:      in.Experience,
		Salary:          in.Salary,
		ApplicationLink: in.ApplicationLink,
		Status:          status,
		PostedDate:      time.Now().UTC(),
	}
	if _, err := s.mutate(ctx, employerEmail, func(e *employer.Employer) error {
		e.Jobs = append(e.Jobs, job)
		return nil
	}); err != nil {
		return nil, err
	}
	s.logInfo(fmt.Sprintf("job posted employer=%s job_id=%s", employerEmail, job.ID))
	return &job, nil
}

func (s *JobService) ListJobs(ctx context.Context, employerEmail string) ([]employer.Job, error) {
	account, err := s.employers.GetByEmail(ctx, employerEmail)
	if err != nil {
		return nil, err
	}
	if account.Jobs == nil {
		return []employer.Job{}, nil
	}
	return account.Jobs, nil
}

// UpdateJob shallow-merges the non-zero fields of in over the stored job.
func (s *JobService) UpdateJob(ctx context.Context, employerEmail, jobID string, in JobInput) (*employer.Job, error) {
	var updated employer.Job
	_, err := s.mutate(ctx, employerEmail, func(e *employer.Employer) error {
		index := jobIndex(e.Jobs, jobID)
		if index < 0 {
			return common.NewError(common.CodeNotFound, "job not found", nil)
		}
		job := &e.Jobs[index]
		if in.Title != "" {
			job.Title = in.Title
		}
		if in.Description != "" {
			job.Description = in.Description
		}
		if in.Skills != nil {
			job.Skills = in.Skills
		}
		if in.Qualification != "" {
			job.Qualification = in.Qualification
		}
		if in.Experience != "" {
			job.Experience = in.Experience
		}
		if in.Salary != "" {
			job.Salary = in.Salary
		}
		if in.ApplicationLink != "" {
			job.ApplicationLink = in.ApplicationLink
		}
		if in.Status != "" {
			status, err := normalizeJobStatus(in.Status, job.Status)
			if err != nil {
				return err
			}
			job.Status = status
		}
		updated = *job
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (s *JobService) DeleteJob(ctx context.Context, employerEmail, jobID string) error {
	_, err := s.mutate(ctx, employerEmail, func(e *employer.Employer) error {
		index := jobIndex(e.Jobs, jobID)
		if index < 0 {
			return common.NewError(common.CodeNotFound, "job not found", nil)
		}
		e.Jobs = append(e.Jobs[:index], e.Jobs[index+1:]...)
		return nil
	})
	if err != nil {
		return err
	}
	s.logInfo(fmt.Sprintf("job deleted employer=%s job_id=%s", employerEmail, jobID))
	return nil
}

func (s *JobService) ListApplicants(ctx context.Context, employerEmail, jobID string) ([]employer.Applicant, error) {
	account, err := s.employers.GetByEmail(ctx, employerEmail)
	if err != nil {
		return nil, err
	}
	index := jobIndex(account.Jobs, jobID)
	if index < 0 {
		return nil, common.NewError(common.CodeNotFound, "job not found", nil)
	}
	if account.Jobs[index].Applicants == nil {
		return []employer.Applicant{}, nil
	}
	return account.Jobs[index].Applicants, nil
}

// Apply snapshots the learner's current skills into the job's applicant
// sequence and records the back-reference on the learner. The two saves
// are separate single-aggregate writes; a failure between them leaves the
// applicant recorded without the back-reference.
func (s *JobService) Apply(ctx context.Context, employerEmail, jobID, learnerEmail string) (*employer.Applicant, error) {
	candidate, err := s.learners.GetByEmail(ctx, learnerEmail)
	if err != nil {
		return nil, err
	}
	applicant := employer.Applicant{
		Name:        strings.TrimSpace(candidate.FirstName + " " + candidate.LastName),
		Email:       candidate.Email,
		ProfileLink: candidate.ProfileLink,
		Skills:      candidate.Skills,
		AppliedOn:   time.Now().UTC(),
		Status:      employer.ApplicantStatusPending,
	}
	if _, err := s.mutate(ctx, employerEmail, func(e *employer.Employer) error {
		index := jobIndex(e.Jobs, jobID)
		if index < 0 {
			return common.NewError(common.CodeNotFound, "job not found", nil)
		}
		job := &e.Jobs[index]
		if job.Status == employer.JobStatusClosed {
			return common.NewError(common.CodeValidation, "job is closed", nil)
		}
		for _, existing := range job.Applicants {
			if strings.EqualFold(existing.Email, applicant.Email) {
				return common.NewError(common.CodeConflict, "already applied", nil)
			}
		}
		job.Applicants = append(job.Applicants, applicant)
		return nil
	}); err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt < s.saveRetries; attempt++ {
		current, err := s.learners.GetByEmail(ctx, learnerEmail)
		if err != nil {
			return nil, err
		}
		already := false
		for _, ref := range current.AppliedJobs {
			if ref.JobID == jobID && strings.EqualFold(ref.EmployerEmail, employerEmail) {
				already = true
				break
			}
		}
		if already {
			lastErr = nil
			break
		}
		current.AppliedJobs = append(current.AppliedJobs, learner.AppliedJob{JobID: jobID, EmployerEmail: employerEmail})
		if _, err := s.learners.Save(ctx, *current); err == nil {
			lastErr = nil
			break
		} else if !common.Is(err, common.CodeConflict) {
			return nil, err
		} else {
			lastErr = err
		}
	}
	if lastErr != nil {
		return nil, lastErr
	}
	s.logInfo(fmt.Sprintf("application recorded employer=%s job_id=%s learner=%s", employerEmail, jobID, learnerEmail))
	return &applicant, nil
}

func jobIndex(jobs []employer.Job, jobID string) int {
	for i := range jobs {
		if jobs[i].ID == jobID {
			return i
		}
	}
	return -1
}

func normalizeJobStatus(value string, fallback employer.JobStatus) (employer.JobStatus, error) {
	normalized := employer.JobStatus(strings.ToLower(strings.TrimSpace(value)))
	if normalized == "" {
		return fallback, nil
	}
	switch normalized {
	case employer.JobStatusActive, employer.JobStatusClosed:
		return normalized, nil
	default:
		return "", common.NewValidationError("invalid job status", map[string]string{"status": "status must be active or closed"})
	}
}

func (s *JobService) logInfo(msg string) {
	if s.logger == nil {
		return
	}
	s.logger.Info(msg)
}
