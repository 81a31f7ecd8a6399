package quizgen

import (
	"fmt"

	"quizforge/internal/domain"
)

// schemaVersion identifies the canonical question-set schema. Earlier
// iterations of this service carried two diverging schemas (one without
// hint/related_topic); v1 is the superset and the only one accepted.
const schemaVersion = "v1"

// QuestionSetSchema is the fixed JSON schema the model output must match.
// It is a static constant, never derived from request input.
const QuestionSetSchema = `{
  "type": "object",
  "properties": {
    "questions": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "id": {"type": "integer"},
          "question": {"type": "string"},
          "choices": {"type": "array", "items": {"type": "string"}, "minItems": 2},
          "correct_index": {"type": "integer", "minimum": 0},
          "related_topic": {"type": "array", "items": {"type": "string"}},
          "hint": {"type": "string"},
          "explanation": {"type": "string"}
        },
        "required": ["id", "question", "choices", "correct_index", "related_topic", "hint", "explanation"],
        "additionalProperties": false
      }
    }
  },
  "required": ["questions"],
  "additionalProperties": false
}`

const promptTemplate = `You are an expert exam-question generator.

Create exactly %d high-quality multiple-choice questions on the topic below:
Topic: %s
Difficulty level: %s

Your output MUST follow these rules EXACTLY:

1. Output ONLY valid JSON (no explanation, no markdown, no text before or after).
2. The JSON structure must match this schema (version %s):
%s

3. Question requirements:
- Must be clear, academically correct, and unambiguous.
- Must NOT include definitions or explanations inside the question text.
- Must NOT reveal clues that indicate the correct answer.

4. Choices requirements:
- Must be short, distinct, and mutually exclusive.
- Must NOT include hints, clues, or overlapping meanings.
- Must be similar in length to avoid revealing the correct choice.

5. Explanation requirements:
- Must be concise, factual, and directly reference why the correct answer is correct.
- Must NOT repeat the question.
- Must NOT mention distractors.

6. IDs:
- Generate integer ids starting at 1.

Return ONLY the JSON. Ensure it is syntactically valid.`

// BuildPrompt deterministically renders the generation instruction for the
// given parameters. Pure with respect to its inputs; performs no I/O.
func BuildPrompt(topic string, questionCount int, difficulty domain.Difficulty) string {
	return fmt.Sprintf(promptTemplate, questionCount, topic, difficulty, schemaVersion, QuestionSetSchema)
}
