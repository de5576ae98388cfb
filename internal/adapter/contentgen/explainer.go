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

// LLMContentExplainer implements domain.ContentExplainer on top of a
// langchaingo model.
type LLMContentExplainer struct {
	llm llms.Model
}

// NewLLMContentExplainer creates a new instance of LLMContentExplainer
func NewLLMContentExplainer(llm llms.Model) domain.ContentExplainer {
	return &LLMContentExplainer{llm: llm}
}

// Explain implements domain.ContentExplainer
func (e *LLMContentExplainer) Explain(ctx context.Context, title, transcript string) (*domain.Explanation, error) {
	prompt := fmt.Sprintf(`You are an educational content generator. Create learning material for the topic "%s" aligned with the transcript below. Produce two sections: "summary" (a broad overview of the topic) and "keyPoints" (specific concepts, details or applications). Each section is a list of entries; each entry has a title, an explanation and 2-5 flashcards with a question on the front and a detailed answer on the back.

Respond with ONLY a JSON object of the form:
{
  "summary": [
    {"title": "...", "explanation": "...", "flashcards": [{"front": "...", "back": "..."}]}
  ],
  "keyPoints": [
    {"title": "...", "explanation": "...", "flashcards": [{"front": "...", "back": "..."}]}
  ]
}

Transcript:
%s`, title, transcript)

	raw, err := llms.GenerateFromSinglePrompt(ctx, e.llm, prompt, llms.WithTemperature(0.3))
	if err != nil {
		return nil, fmt.Errorf("explanation call failed: %w", err)
	}

	jsonStr, err := extractJSONObject(raw)
	if err != nil {
		logger.Get().Error("No JSON object in explanation response", zap.String("raw_response", raw))
		return nil, err
	}

	var explanation domain.Explanation
	if err := json.Unmarshal([]byte(jsonStr), &explanation); err != nil {
		logger.Get().Error("Failed to unmarshal explanation",
			zap.Error(err),
			zap.String("json_string", jsonStr))
		return nil, fmt.Errorf("failed to parse explanation: %w", err)
	}

	if len(explanation.Summary) == 0 && len(explanation.KeyPoints) == 0 {
		return nil, fmt.Errorf("model returned an empty explanation")
	}

	return &explanation, nil
}
