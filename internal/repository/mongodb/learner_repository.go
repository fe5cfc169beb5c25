package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"skillbridge/internal/common"
	"skillbridge/internal/domain/learner"
)

type LearnerRepository struct {
	collection *mongo.Collection
}

func NewLearnerRepository(db *mongo.Database) *LearnerRepository {
	return &LearnerRepository{collection: db.Collection("learners")}
}

func (r *LearnerRepository) Create(ctx context.Context, l learner.Learner) (*learner.Learner, error) {
	now := time.Now().UTC()
	l.CreatedAt = now
	l.UpdatedAt = now
	l.Revision = 1
	if _, err := r.collection.InsertOne(ctx, l); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, common.NewError(common.CodeDuplicate, "email already registered", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to create learner", err)
	}
	return &l, nil
}

func (r *LearnerRepository) GetByEmail(ctx context.Context, email string) (*learner.Learner, error) {
	var l learner.Learner
	if err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&l); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.NewError(common.CodeNotFound, "learner not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load learner", err)
	}
	return &l, nil
}

func (r *LearnerRepository) Save(ctx context.Context, l learner.Learner) (*learner.Learner, error) {
	expected := l.Revision
	l.Revision = expected + 1
	l.UpdatedAt = time.Now().UTC()
	result, err := r.collection.ReplaceOne(ctx, bson.M{"email": l.Email, "revision": expected}, l)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to save learner", err)
	}
	if result.MatchedCount == 0 {
		return nil, r.saveMiss(ctx, l.Email)
	}
	return &l, nil
}

func (r *LearnerRepository) SetProfileAssets(ctx context.Context, email, profilePic, profileLink string) (*learner.Learner, error) {
	update := bson.M{"$set": bson.M{
		"profilePic":  profilePic,
		"profileLink": profileLink,
		"updatedAt":   time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var l learner.Learner
	if err := r.collection.FindOneAndUpdate(ctx, bson.M{"email": email}, update, opts).Decode(&l); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.NewError(common.CodeNotFound, "learner not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to update learner", err)
	}
	return &l, nil
}

// saveMiss distinguishes a stale revision from a missing aggregate.
func (r *LearnerRepository) saveMiss(ctx context.Context, email string) error {
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return common.NewError(common.CodeNotFound, "learner not found", err)
	}
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to save learner", err)
	}
	return common.NewError(common.CodeConflict, "learner modified concurrently", nil)
}
