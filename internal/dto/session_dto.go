package dto

import "encoding/json"

// GenerateRequest is the request body for quiz generation. Field names match
// the frontend contract.
type GenerateRequest struct {
	TopicName       string `json:"topicName"`
	DifficultyLevel string `json:"difficultyLevel"`
	NoOfQuestions   int    `json:"noOfQuestions"`
}

// GenerateResponse returns only the identifier of the freshly created
// session; the question set is fetched separately.
type GenerateResponse struct {
	SessionID string `json:"sessionId"`
}

// QuizResponse returns the stored question-set document verbatim.
type QuizResponse struct {
	QuestionsSet json.RawMessage `json:"questionsSet"`
}
