package domain

import "time"

// Owner is the user who asked a question.
type Owner struct {
	DisplayName  string `json:"display_name" yaml:"display_name"`
	ProfileImage string `json:"profile_image,omitempty" yaml:"profile_image,omitempty"`
}

// Question is a single StackOverflow question as listed by the API.
// Fields are ordered to minimize memory padding.
type Question struct {
	LastActivity time.Time `json:"last_activity,omitempty" yaml:"last_activity,omitempty"`
	Owner        Owner     `json:"owner" yaml:"owner"`
	Title        string    `json:"title" yaml:"title"`
	Link         string    `json:"link,omitempty" yaml:"link,omitempty"`
	Tags         []string  `json:"tags,omitempty" yaml:"tags,omitempty"`
	ID           int64     `json:"id" yaml:"id"`
	Score        int       `json:"score" yaml:"score"`
	AnswerCount  int       `json:"answer_count" yaml:"answer_count"`
	IsAnswered   bool      `json:"is_answered" yaml:"is_answered"`
}

// QuestionDetails is a question together with its HTML body.
type QuestionDetails struct {
	Body string `json:"body" yaml:"body"`
	Question `yaml:",inline"`
}
