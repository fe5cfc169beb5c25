package catalog

import "context"

type QuestionType string

const (
	QuestionTypeMCQ       QuestionType = "mcq"
	QuestionTypeFillBlank QuestionType = "fill-blank"
)

// SkillSet maps a job title to the skills expected for that role.
type SkillSet struct {
	JobTitle string   `json:"jobTitle" bson:"jobTitle"`
	Skills   []string `json:"skills" bson:"skills"`
}

// Question is a skill-verification question. Answer may be an option
// index, a string, or a list of accepted strings depending on Type.
type Question struct {
	Domain   string       `json:"domain" bson:"domain"`
	Skill    string       `json:"skill" bson:"skill"`
	Question string       `json:"question" bson:"question"`
	Options  []string     `json:"options,omitempty" bson:"options,omitempty"`
	Answer   interface{}  `json:"answer,omitempty" bson:"answer,omitempty"`
	Type     QuestionType `json:"type" bson:"type"`
}

type SkillSetRepository interface {
	GetByJobTitle(ctx context.Context, jobTitle string) (*SkillSet, error)
}

type QuestionRepository interface {
	List(ctx context.Context, domain, skill string) ([]Question, error)
}
