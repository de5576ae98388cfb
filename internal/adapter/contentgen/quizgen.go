package contentgen

import (
	"context"
	"encoding/json"
	"fmt"

	"courseforge/internal/domain"
	"courseforge/internal/logger"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
)

// LLMQuizGenerator implements domain.QuizGenerator on top of a langchaingo
// model.
type LLMQuizGenerator struct {
	llm llms.Model
}

// NewLLMQuizGenerator creates a new instance of LLMQuizGenerator
func NewLLMQuizGenerator(llm llms.Model) domain.QuizGenerator {
	return &LLMQuizGenerator{llm: llm}
}

// MakeQuiz implements domain.QuizGenerator
func (g *LLMQuizGenerator) MakeQuiz(ctx context.Context, title, transcript string, count int) ([]domain.GeneratedQuestion, error) {
	prompt := fmt.Sprintf(`You are an expert quiz creator. Create %d challenging multiple-choice questions for the topic "%s" using the transcript below as context. For each question provide the correct answer and exactly three plausible but wrong options.

Respond with ONLY a JSON object of the form:
{
  "questions": [
    {"question": "...", "answer": "...", "option1": "...", "option2": "...", "option3": "..."}
  ]
}

Transcript:
%s`, count, title, transcript)

	raw, err := llms.GenerateFromSinglePrompt(ctx, g.llm, prompt, llms.WithTemperature(0.5))
	if err != nil {
		return nil, fmt.Errorf("quiz generation call failed: %w", err)
	}

	jsonStr, err := extractJSONObject(raw)
	if err != nil {
		logger.Get().Error("No JSON object in quiz response", zap.String("raw_response", raw))
		return nil, err
	}

	var parsed struct {
		Questions []domain.GeneratedQuestion `json:"questions"`
	}
	if err := json.Unmarshal([]byte(jsonStr), &parsed); err != nil {
		logger.Get().Error("Failed to unmarshal quiz",
			zap.Error(err),
			zap.String("json_string", jsonStr))
		return nil, fmt.Errorf("failed to parse quiz: %w", err)
	}

	questions := make([]domain.GeneratedQuestion, 0, len(parsed.Questions))
	for _, q := range parsed.Questions {
		if q.Question == "" || q.Answer == "" || q.Option1 == "" || q.Option2 == "" || q.Option3 == "" {
			logger.Get().Warn("Model generated incomplete question, skipping", zap.Any("question", q))
			continue
		}
		questions = append(questions, q)
	}

	if len(questions) == 0 {
		return nil, fmt.Errorf("model returned no usable questions")
	}

	return questions, nil
}
