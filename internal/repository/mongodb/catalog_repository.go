package mongodb

import (
	"context"
	"errors"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"skillbridge/internal/common"
	"skillbridge/internal/domain/catalog"
)

type SkillSetRepository struct {
	collection *mongo.Collection
}

func NewSkillSetRepository(db *mongo.Database) *SkillSetRepository {
	return &SkillSetRepository{collection: db.Collection("skillsets")}
}

func (r *SkillSetRepository) GetByJobTitle(ctx context.Context, jobTitle string) (*catalog.SkillSet, error) {
	var set catalog.SkillSet
	if err := r.collection.FindOne(ctx, jobTitleFilter(jobTitle)).Decode(&set); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, common.NewError(common.CodeNotFound, "skill set not found", err)
		}
		return nil, common.NewError(common.CodeInternal, "failed to load skill set", err)
	}
	return &set, nil
}

// jobTitleFilter matches the stored title case-insensitively. The title
// is quoted so metacharacters in names like "C++ Developer" or ".NET
// Developer" match literally.
func jobTitleFilter(jobTitle string) bson.M {
	return bson.M{"jobTitle": bson.M{"$regex": "^" + regexp.QuoteMeta(jobTitle) + "$", "$options": "i"}}
}

type QuestionRepository struct {
	collection *mongo.Collection
}

func NewQuestionRepository(db *mongo.Database) *QuestionRepository {
	return &QuestionRepository{collection: db.Collection("questions")}
}

func (r *QuestionRepository) List(ctx context.Context, domain, skill string) ([]catalog.Question, error) {
	filter := bson.M{}
	if domain != "" {
		filter["domain"] = domain
	}
	if skill != "" {
		filter["skill"] = skill
	}
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to list questions", err)
	}
	defer cursor.Close(ctx)
	var items []catalog.Question
	if err := cursor.All(ctx, &items); err != nil {
		return nil, common.NewError(common.CodeInternal, "failed to decode questions", err)
	}
	return items, nil
}
