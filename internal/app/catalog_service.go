package app

import (
	"context"

	"skillbridge/internal/domain/catalog"
)

type CatalogService struct {
	skillSets catalog.SkillSetRepository
	questions catalog.QuestionRepository
}

func NewCatalogService(skillSets catalog.SkillSetRepository, questions catalog.QuestionRepository) *CatalogService {
	return &CatalogService{skillSets: skillSets, questions: questions}
}

func (s *CatalogService) SkillsForJobTitle(ctx context.Context, jobTitle string) (*catalog.SkillSet, error) {
	return s.skillSets.GetByJobTitle(ctx, jobTitle)
}

// Questions returns verification questions with answers stripped so they
// never reach the client.
func (s *CatalogService) Questions(ctx context.Context, domain, skill string) ([]catalog.Question, error) {
	items, err := s.questions.List(ctx, domain, skill)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Answer = nil
	}
	if items == nil {
		items = []catalog.Question{}
	}
	return items, nil
}
