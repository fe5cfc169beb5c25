package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"skillbridge/internal/common"
	"skillbridge/internal/domain/employer"
)

type EmployerRepository struct {
	collection *mongo.Collection
}

func NewEmployerRepository(db *mongo.Database) *EmployerRepository {
	return &EmployerRepository{collection: db.Collection("employers")}
}

func (r *EmployerRepository) Create(ctx context.Context, e employer.Employer) (*employer.Employer, error) {
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now
	e.Revision = 1
	if _, err := r.collection.InsertOne(ctx, e); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, common.NewError(common.CodeDuplicate, "email already registered", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to create employer", err)
	}
	return &e, nil
}

func (r *EmployerRepository) GetByEmail(ctx context.Context, email string) (*employer.Employer, error) {
	var e employer.Employer
	if err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&e); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.NewError(common.CodeNotFound, "employer not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load employer", err)
	}
	return &e, nil
}

func (r *EmployerRepository) Save(ctx context.Context, e employer.Employer) (*employer.Employer, error) {
	expected := e.Revision
	e.Revision = expected + 1
	e.UpdatedAt = time.Now().UTC()
	result, err := r.collection.ReplaceOne(ctx, bson.M{"email": e.Email, "revision": expected}, e)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to save employer", err)
	}
	if result.MatchedCount == 0 {
		return nil, r.saveMiss(ctx, e.Email)
	}
	return &e, nil
}

func (r *EmployerRepository) saveMiss(ctx context.Context, email string) error {
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return common.NewError(common.CodeNotFound, "employer not found", err)
	}
	if err != nil {
		return common.NewError(common.CodeInternal, "failed to save employer", err)
	}
	return common.NewError(common.CodeConflict, "employer modified concurrently", nil)
}
