package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// Difficulty is the fixed difficulty enum for generated question sets.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty validates and normalizes a difficulty string.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(s), true
	}
	return "", false
}

// Question is a single multiple-choice question inside a question set.
type Question struct {
	ID           int      `json:"id"`
	Question     string   `json:"question"`
	Choices      []string `json:"choices"`
	CorrectIndex int      `json:"correct_index"`
	RelatedTopic []string `json:"related_topic"`
	Hint         string   `json:"hint"`
	Explanation  string   `json:"explanation"`
}

// QuestionSet is the document returned by the generation client. The
// persistence layer treats it as an opaque JSON blob; validation happens
// once, at the generation boundary.
type QuestionSet struct {
	Questions []Question `json:"questions"`
}

// Validate enforces the canonical schema shape: at least two choices per
// question and a correct_index referencing a valid choice.
func (qs *QuestionSet) Validate() error {
	if len(qs.Questions) == 0 {
		return NewInvalidInputError("question set contains no questions")
	}
	for i, q := range qs.Questions {
		if q.Question == "" {
			return NewInvalidInputError(fmt.Sprintf("question %d has empty text", i))
		}
		if len(q.Choices) < 2 {
			return NewInvalidInputError(fmt.Sprintf("question %d must have at least 2 choices, got %d", i, len(q.Choices)))
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Choices) {
			return NewInvalidInputError(fmt.Sprintf("question %d has correct_index %d out of range [0,%d)", i, q.CorrectIndex, len(q.Choices)))
		}
	}
	return nil
}

// QuizSession is one generated quiz attached to its owning user. Sessions
// are created exactly once per successful generation call and are immutable
// afterwards.
type QuizSession struct {
	ID            string
	UserID        string
	TopicName     string
	QuestionCount int
	Difficulty    Difficulty
	Questions     json.RawMessage
	CreatedAt     time.Time
}

func (s *QuizSession) Validate() error {
	if s.ID == "" {
		return NewInvalidInputError("session ID is required")
	}
	if s.UserID == "" {
		return NewInvalidInputError("owning user ID is required")
	}
	if s.TopicName == "" {
		return NewInvalidInputError("topic name is required")
	}
	if s.QuestionCount <= 0 {
		return NewInvalidInputError("question count must be positive")
	}
	if _, ok := ParseDifficulty(string(s.Difficulty)); !ok {
		return NewInvalidInputError(fmt.Sprintf("invalid difficulty: %s", s.Difficulty))
	}
	if len(s.Questions) == 0 {
		return NewInvalidInputError("question set document is required")
	}
	return nil
}
