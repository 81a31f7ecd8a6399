package models

import "time"

// QuizSession represents one generated quiz session row. The question set is
// persisted as an opaque JSON document in a CLOB column.
type QuizSession struct {
	ID            string    `db:"ID"`      // ULID
	UserID        string    `db:"USER_ID"` // Owning user
	TopicName     string    `db:"TOPIC_NAME"`
	QuestionCount int       `db:"QUESTION_COUNT"`
	Difficulty    string    `db:"DIFFICULTY"`
	Questions     string    `db:"QUESTIONS"` // JSON document, stored verbatim
	CreatedAt     time.Time `db:"CREATED_AT"`
}
