package employer

import "context"

type Repository interface {
	Create(ctx context.Context, e Employer) (*Employer, error)
	GetByEmail(ctx context.Context, email string) (*Employer, error)
	// Save persists the whole aggregate. The stored revision must match
	// e.Revision or the save fails with CodeConflict.
	Save(ctx context.Context, e Employer) (*Employer, error)
}
