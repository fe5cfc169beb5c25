package app

import (
	"context"
	"fmt"
	"strings"

	"skillbridge/internal/common"
	"skillbridge/internal/domain/learner"
	"skillbridge/internal/observability"
)

type Section string

const (
	SectionSkills         Section = "skills"
	SectionCertifications Section = "certifications"
	SectionEducation      Section = "education"
	SectionLanguages      Section = "languages"
	SectionWork           Section = "work"
)

type ProfileService struct {
	learners    learner.Repository
	logger      observability.Logger
	saveRetries int
}

func NewProfileService(learners learner.Repository, logger observability.Logger, saveRetries int) *ProfileService {
	if saveRetries < 1 {
		saveRetries = 1
	}
	return &ProfileService{learners: learners, logger: logger, saveRetries: saveRetries}
}

// mutate runs the fetch-mutate-save cycle against a learner aggregate. A
// save that loses the revision race is retried with a fresh read; the
// conflict surfaces only when every attempt loses.
func (s *ProfileService) mutate(ctx context.Context, email string, apply func(*learner.Learner) error) (*learner.Learner, error) {
	var lastErr error
	for attempt := 0; attempt < s.saveRetries; attempt++ {
		current, err := s.learners.GetByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if err := apply(current); err != nil {
			return nil, err
		}
		saved, err := s.learners.Save(ctx, *current)
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

func (s *ProfileService) Get(ctx context.Context, email string) (*learner.Learner, error) {
	return s.learners.GetByEmail(ctx, email)
}

type OnboardInput struct {
	ProfilePic string
	Sector     string
	Domains    []string
	Experience []learner.Work
	Academic   []learner.Education
	SoftSkills []string
}

// Onboard merges the onboarding payload over the stored profile. Empty
// strings and nil slices leave the stored value untouched, so a field set
// once cannot be cleared through this path. Known limitation; existing
// clients depend on it.
func (s *ProfileService) Onboard(ctx context.Context, email string, in OnboardInput) (*learner.Learner, error) {
	updated, err := s.mutate(ctx, email, func(l *learner.Learner) error {
		if in.ProfilePic != "" {
			l.ProfilePic = in.ProfilePic
		}
		if in.Sector != "" {
			l.Sector = in.Sector
		}
		if in.Domains != nil {
			l.Domains = in.Domains
		}
		if in.Experience != nil {
			l.Work = in.Experience
		}
		if in.Academic != nil {
			l.Education = in.Academic
		}
		if in.SoftSkills != nil {
			l.SoftSkills = in.SoftSkills
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logInfo(fmt.Sprintf("learner onboarded email=%s", email))
	return updated, nil
}

type ProfileUpdate struct {
	FirstName         string
	LastName          string
	Mobile            string
	DOB               string
	Gender            string
	Sector            string
	YearsOfExperience string
	About             string
	Domains           []string
	SoftSkills        []string
	Education         []learner.Education
	Languages         []learner.Language
	Work              []learner.Work
}

// Update applies a partial whole-profile PUT with the same merge
// semantics as Onboard.
func (s *ProfileService) Update(ctx context.Context, email string, in ProfileUpdate) (*learner.Learner, error) {
	return s.mutate(ctx, email, func(l *learner.Learner) error {
		if in.FirstName != "" {
			l.FirstName = in.FirstName
		}
		if in.LastName != "" {
			l.LastName = in.LastName
		}
		if in.Mobile != "" {
			l.Mobile = in.Mobile
		}
		if in.DOB != "" {
			l.DOB = in.DOB
		}
		if in.Gender != "" {
			l.Gender = in.Gender
		}
		if in.Sector != "" {
			l.Sector = in.Sector
		}
		if in.YearsOfExperience != "" {
			l.YearsOfExperience = in.YearsOfExperience
		}
		if in.About != "" {
			l.About = in.About
		}
		if in.Domains != nil {
			l.Domains = in.Domains
		}
		if in.SoftSkills != nil {
			l.SoftSkills = in.SoftSkills
		}
		if in.Education != nil {
			l.Education = in.Education
		}
		if in.Languages != nil {
			l.Languages = in.Languages
		}
		if in.Work != nil {
			l.Work = in.Work
		}
		return nil
	})
}

func (s *ProfileService) AddSkill(ctx context.Context, email string, skill learner.Skill) (*learner.Learner, error) {
	skill.Name = strings.TrimSpace(skill.Name)
	if skill.Name == "" {
		return nil, common.NewValidationError("invalid skill", map[string]string{"name": "name is required"})
	}
	if skill.Proficiency < 0 || skill.Proficiency > 100 {
		return nil, common.NewValidationError("invalid skill", map[string]string{"proficiency": "proficiency must be between 0 and 100"})
	}
	skill.Verified = false
	return s.mutate(ctx, email, func(l *learner.Learner) error {
		for _, existing := range l.Skills {
			if strings.EqualFold(existing.Name, skill.Name) {
				return common.NewError(common.CodeDuplicateSkill, "skill already exists", nil)
			}
		}
		l.Skills = append(l.Skills, skill)
		return nil
	})
}

func (s *ProfileService) VerifySkillAt(ctx context.Context, email string, index int) (*learner.Learner, error) {
	return s.mutate(ctx, email, func(l *learner.Learner) error {
		if index < 0 || index >= len(l.Skills) {
			return common.NewError(common.CodeNotFound, "skill not found", nil)
		}
		l.Skills[index].Verified = true
		return nil
	})
}

func (s *ProfileService) VerifySkillByName(ctx context.Context, email, name string) (*learner.Learner, error) {
	return s.mutate(ctx, email, func(l *learner.Learner) error {
		for i := range l.Skills {
			if strings.EqualFold(l.Skills[i].Name, name) {
				l.Skills[i].Verified = true
				return nil
			}
		}
		return common.NewError(common.CodeNotFound, "skill not found", nil)
	})
}

func (s *ProfileService) AddCertification(ctx context.Context, email string, cert learner.Certification) (*learner.Learner, error) {
	if cert.Title == "" {
		return nil, common.NewValidationError("invalid certification", map[string]string{"title": "title is required"})
	}
	return s.mutate(ctx, email, func(l *learner.Learner) error {
		l.Certifications = append(l.Certifications, cert)
		return nil
	})
}

func (s *ProfileService) AddEducation(ctx context.Context, email string, entry learner.Education) (*learner.Learner, error) {
	if entry.Institute == "" {
		return nil, common.NewValidationError("invalid education entry", map[string]string{"institute": "institute is required"})
	}
	return s.mutate(ctx, email, func(l *learner.Learner) error {
		l.Education = append(l.Education, entry)
		return nil
	})
}

func (s *ProfileService) AddLanguage(ctx context.Context, email string, lang learner.Language) (*learner.Learner, error) {
	if lang.Name == "" {
		return nil, common.NewValidationError("invalid language", map[string]string{"name": "name is required"})
	}
	return s.mutate(ctx, email, func(l *learner.Learner) error {
		l.Languages = append(l.Languages, lang)
		return nil
	})
}

func (s *ProfileService) AddWork(ctx context.Context, email string, work learner.Work) (*learner.Learner, error) {
	if work.Title == "" {
		return nil, common.NewValidationError("invalid work entry", map[string]string{"title": "title is required"})
	}
	return s.mutate(ctx, email, func(l *learner.Learner) error {
		l.Work = append(l.Work, work)
		return nil
	})
}

// RemoveFromSection removes a sub-entity by index. An index past the end
// of the sequence is rejected rather than silently ignored.
func (s *ProfileService) RemoveFromSection(ctx context.Context, email string, section Section, index int) (*learner.Learner, error) {
	return s.mutate(ctx, email, func(l *learner.Learner) error {
		switch section {
		case SectionSkills:
			if index < 0 || index >= len(l.Skills) {
				return errIndexOutOfRange(index)
			}
			l.Skills = append(l.Skills[:index], l.Skills[index+1:]...)
		case SectionCertifications:
			if index < 0 || index >= len(l.Certifications) {
				return errIndexOutOfRange(index)
			}
			l.Certifications = append(l.Certifications[:index], l.Certifications[index+1:]...)
		case SectionEducation:
			if index < 0 || index >= len(l.Education) {
				return errIndexOutOfRange(index)
			}
			l.Education = append(l.Education[:index], l.Education[index+1:]...)
		case SectionLanguages:
			if index < 0 || index >= len(l.Languages) {
				return errIndexOutOfRange(index)
			}
			l.Languages = append(l.Languages[:index], l.Languages[index+1:]...)
		case SectionWork:
			if index < 0 || index >= len(l.Work) {
				return errIndexOutOfRange(index)
			}
			l.Work = append(l.Work[:index], l.Work[index+1:]...)
		default:
			return common.NewValidationError("invalid section", map[string]string{"section": "unknown profile section"})
		}
		return nil
	})
}

// AttachProfileAssets is the atomic field-set path used after a profile
// picture upload. It does not participate in the revision cycle.
func (s *ProfileService) AttachProfileAssets(ctx context.Context, email, profilePic, profileLink string) (*learner.Learner, error) {
	return s.learners.SetProfileAssets(ctx, email, profilePic, profileLink)
}

func errIndexOutOfRange(index int) error {
	return common.NewError(common.CodeOutOfRange, fmt.Sprintf("index %d out of range", index), nil)
}

func (s *ProfileService) logInfo(msg string) {
	if s.logger == nil {
		return
	}
	s.logger.Info(msg)
}
