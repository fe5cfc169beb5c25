package app

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"skillbridge/internal/common"
	"skillbridge/internal/domain/employer"
	"skillbridge/internal/domain/learner"
	"skillbridge/internal/observability"
	"skillbridge/internal/security"
)

type Kind string

const (
	KindLearner  Kind = "learner"
	KindEmployer Kind = "employer"
)

const minBcryptCost = 10

type AuthService struct {
	learners   learner.Repository
	employers  employer.Repository
	identity   security.Provider
	logger     observability.Logger
	bcryptCost int
}

func NewAuthService(learners learner.Repository, employers employer.Repository, identity security.Provider, logger observability.Logger, bcryptCost int) *AuthService {
	if bcryptCost < minBcryptCost {
		bcryptCost = minBcryptCost
	}
	return &AuthService{
		learners:   learners,
		employers:  employers,
		identity:   identity,
		logger:     logger,
		bcryptCost: bcryptCost,
	}
}

type RegisterInput struct {
	FirstName   string
	LastName    string
	DOB         string
	Gender      string
	Email       string
	Password    string
	Mobile      string
	JobPosition string
	Company     string
}

func (s *AuthService) Register(ctx context.Context, kind Kind, in RegisterInput) error {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if err := validateRegistration(kind, in); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to hash password", err)
	}
	switch kind {
	case KindLearner:
		_, err = s.learners.Create(ctx, learner.Learner{
			Email:     in.Email,
			FirstName: in.FirstName,
			LastName:  in.LastName,
			Password:  string(hash),
			Mobile:    in.Mobile,
			DOB:       in.DOB,
			Gender:    in.Gender,
		})
	case KindEmployer:
		_, err = s.employers.Create(ctx, employer.Employer{
			Email:       in.Email,
			FirstName:   in.FirstName,
			LastName:    in.LastName,
			Password:    string(hash),
			DOB:         in.DOB,
			Gender:      in.Gender,
			JobPosition: in.JobPosition,
			Company:     in.Company,
		})
	default:
		return common.NewValidationError("invalid kind", map[string]string{"kind": "kind must be learner or employer"})
	}
	if err != nil {
		return err
	}
	s.logInfo(fmt.Sprintf("%s registered email=%s", kind, in.Email))
	return nil
}

func (s *AuthService) Login(ctx context.Context, kind Kind, email, password string) (*security.Credential, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, common.NewValidationError("invalid credentials", map[string]string{
			"email":    "email is required",
			"password": "password is required",
		})
	}
	var hash, name string
	switch kind {
	case KindLearner:
		account, err := s.learners.GetByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		hash = account.Password
		name = strings.TrimSpace(account.FirstName + " " + account.LastName)
	case KindEmployer:
		account, err := s.employers.GetByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		hash = account.Password
		name = strings.TrimSpace(account.FirstName + " " + account.LastName)
	default:
		return nil, common.NewValidationError("invalid kind", map[string]string{"kind": "kind must be learner or employer"})
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		s.logInfo(fmt.Sprintf("%s login failed email=%s", kind, email))
		return nil, common.NewError(common.CodeUnauthorized, "invalid email or password", nil)
	}
	credential, err := s.identity.Issue(string(kind), email, name)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to issue credential", err)
	}
	s.logInfo(fmt.Sprintf("%s logged in email=%s", kind, email))
	return &credential, nil
}

func validateRegistration(kind Kind, in RegisterInput) error {
	fields := map[string]string{}
	if in.FirstName == "" {
		fields["firstName"] = "firstName is required"
	}
	if in.LastName == "" {
		fields["lastName"] = "lastName is required"
	}
	if in.Email == "" {
		fields["email"] = "email is required"
	}
	if in.Password == "" {
		fields["password"] = "password is required"
	}
	switch kind {
	case KindLearner:
		if in.Mobile == "" {
			fields["mobile"] = "mobile is required"
		}
	case KindEmployer:
		if in.JobPosition == "" {
			fields["jobPosition"] = "jobPosition is required"
		}
		if in.Company == "" {
			fields["company"] = "company is required"
		}
	}
	if len(fields) > 0 {
		return common.NewValidationError("missing required fields", fields)
	}
	return nil
}

func (s *AuthService) logInfo(msg string) {
	if s.logger == nil {
		return
	}
	s.logger.Info(msg)
}
