package domain

import (
	"context"
	"encoding/json"
)

// GenerationResultKind tags the single typed variant decided at the
// generation call boundary.
type GenerationResultKind int

const (
	// GenerationParsed means the model returned a document matching the
	// canonical question-set schema.
	GenerationParsed GenerationResultKind = iota
	// GenerationRawText means the model returned text that could not be
	// parsed as a question set; Raw carries the payload for debugging.
	GenerationRawText
	// GenerationFailed means the invocation itself failed; Reason carries
	// the provider error message.
	GenerationFailed
)

// GenerationResult is the outcome of one model invocation. Exactly one of
// Document, Raw, or Reason is meaningful, selected by Kind. Callers must
// check Kind before trusting the payload.
type GenerationResult struct {
	Kind     GenerationResultKind
	Document json.RawMessage // Kind == GenerationParsed
	Raw      string          // Kind == GenerationRawText
	Reason   string          // Kind == GenerationFailed
}

// QuizGenerator produces a multiple-choice question set for a topic by
// invoking an external model. Invocation errors are folded into the result
// variant instead of being returned as Go errors.
type QuizGenerator interface {
	Generate(ctx context.Context, topic string, questionCount int, difficulty Difficulty) GenerationResult
}
