package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"quizforge/internal/config"
	"quizforge/internal/domain"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"go.uber.org/zap"
)

// GeminiQuizGenerator implements domain.QuizGenerator on the langchaingo
// Google AI client in JSON mode.
type GeminiQuizGenerator struct {
	llm         llms.Model
	modelName   string
	temperature float64
	logger      *zap.Logger
}

// NewGeminiQuizGenerator creates the generation client. The API credential
// is mandatory: a missing key is a construction-time error, not a deferred
// request failure.
func NewGeminiQuizGenerator(ctx context.Context, llmCfg config.LLMConfig, logger *zap.Logger) (*GeminiQuizGenerator, error) {
	if llmCfg.GoogleAPIKey == "" {
		return nil, errors.New("GOOGLE_API_KEY is not configured")
	}

	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(llmCfg.GoogleAPIKey),
		googleai.WithDefaultModel(llmCfg.Model),
	)
	if err != nil {
		return nil, err
	}

	logger.Info("Initialized Gemini quiz generator", zap.String("model", llmCfg.Model))
	return &GeminiQuizGenerator{
		llm:         llm,
		modelName:   llmCfg.Model,
		temperature: llmCfg.Temperature,
		logger:      logger,
	}, nil
}

// Generate invokes the model once and folds every outcome into a
// GenerationResult. Invocation and parse failures never escape as Go
// errors; callers branch on the result kind.
func (g *GeminiQuizGenerator) Generate(ctx context.Context, topic string, questionCount int, difficulty domain.Difficulty) domain.GenerationResult {
	prompt := BuildPrompt(topic, questionCount, difficulty)

	g.logger.Debug("Invoking LLM for quiz generation",
		zap.String("topic", topic),
		zap.Int("question_count", questionCount),
		zap.String("difficulty", string(difficulty)),
	)

	response, err := llms.GenerateFromSinglePrompt(ctx, g.llm, prompt,
		llms.WithTemperature(g.temperature),
		llms.WithJSONMode(),
	)
	if err != nil {
		g.logger.Error("LLM invocation failed", zap.Error(err), zap.String("topic", topic))
		return domain.GenerationResult{Kind: domain.GenerationFailed, Reason: err.Error()}
	}

	return CoerceResponse(response)
}

// CoerceResponse decides the result variant once, at the call boundary:
// a payload parsing and validating as a question set becomes Parsed;
// anything else is kept as RawText for the caller to inspect.
func CoerceResponse(response string) domain.GenerationResult {
	cleaned := stripCodeFence(strings.TrimSpace(response))

	var qs domain.QuestionSet
	if err := json.Unmarshal([]byte(cleaned), &qs); err != nil {
		return domain.GenerationResult{Kind: domain.GenerationRawText, Raw: response}
	}
	if err := qs.Validate(); err != nil {
		return domain.GenerationResult{Kind: domain.GenerationRawText, Raw: response}
	}

	// Re-marshal the validated document so stored sessions carry exactly
	// the canonical field set.
	doc, err := json.Marshal(&qs)
	if err != nil {
		return domain.GenerationResult{Kind: domain.GenerationFailed, Reason: err.Error()}
	}
	return domain.GenerationResult{Kind: domain.GenerationParsed, Document: doc}
}

// stripCodeFence removes a surrounding markdown code fence, which some
// models emit even in JSON mode.
func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

var _ domain.QuizGenerator = (*GeminiQuizGenerator)(nil)
