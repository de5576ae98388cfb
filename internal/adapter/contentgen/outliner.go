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

// LLMCourseOutliner implements domain.CourseOutliner on top of a
// langchaingo model.
type LLMCourseOutliner struct {
	llm llms.Model
}

// NewLLMCourseOutliner creates a new instance of LLMCourseOutliner
func NewLLMCourseOutliner(llm llms.Model) domain.CourseOutliner {
	return &LLMCourseOutliner{llm: llm}
}

// OutlineCourse implements domain.CourseOutliner
func (o *LLMCourseOutliner) OutlineCourse(ctx context.Context, title string, unitCount int) ([]domain.ProposedUnit, error) {
	prompt := fmt.Sprintf(`You are an expert course creator. Create a course about "%s" consisting of exactly %d units. Each unit covers one coherent subtopic and contains 2-4 chapters.

Respond with ONLY a JSON array of units. Each unit is an object of the form:
{
  "title": "unit title",
  "chapters": [
    {"title": "chapter title", "video_search_query": "a youtube search query for an educational video covering the chapter"}
  ]
}`, title, unitCount)

	raw, err := llms.GenerateFromSinglePrompt(ctx, o.llm, prompt, llms.WithTemperature(0.7))
	if err != nil {
		return nil, fmt.Errorf("course outline call failed: %w", err)
	}

	jsonStr, err := extractJSONArray(raw)
	if err != nil {
		logger.Get().Error("No JSON array in course outline response", zap.String("raw_response", raw))
		return nil, err
	}

	var units []domain.ProposedUnit
	if err := json.Unmarshal([]byte(jsonStr), &units); err != nil {
		logger.Get().Error("Failed to unmarshal course outline",
			zap.Error(err),
			zap.String("json_string", jsonStr))
		return nil, fmt.Errorf("failed to parse course outline: %w", err)
	}

	if len(units) == 0 {
		return nil, fmt.Errorf("model returned an empty course outline")
	}

	return units, nil
}
