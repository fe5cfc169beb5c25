package learner

import "context"

type Repository interface {
	Create(ctx context.Context, l Learner) (*Learner, error)
	GetByEmail(ctx context.Context, email string) (*Learner, error)
	// Save persists the whole aggregate. The stored revision must match
	// l.Revision or the save fails with CodeConflict.
	Save(ctx context.Context, l Learner) (*Learner, error)
	// SetProfileAssets updates profilePic and profileLink atomically,
	// bypassing the revision cycle.
	SetProfileAssets(ctx context.Context, email, profilePic, profileLink string) (*Learner, error)
}
