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

// LLMChapterProposer implements domain.ChapterProposer on top of a
// langchaingo model.
type LLMChapterProposer struct {
	llm llms.Model
}

// NewLLMChapterProposer creates a new instance of LLMChapterProposer
func NewLLMChapterProposer(llm llms.Model) domain.ChapterProposer {
	return &LLMChapterProposer{llm: llm}
}

const proposerSystemPrompt = `You are an expert course manager with years of experience crafting curricula for learners. Given a student's quiz results for one unit and the unit's existing chapters, design a better replacement chapter set that addresses the topics the student got wrong while keeping the unit comprehensive and well structured.

Respond with ONLY a JSON array. Each element must be an object of the form:
{
  "title": "chapter title",
  "video_search_query": "a youtube search query for an educational video covering the chapter"
}`

// ProposeChapters implements domain.ChapterProposer
func (p *LLMChapterProposer) ProposeChapters(ctx context.Context, quizSummary []domain.ChapterQuizSummary, existing []*domain.Chapter) ([]domain.ProposedChapter, error) {
	type existingChapter struct {
		Title            string `json:"title"`
		VideoSearchQuery string `json:"video_search_query"`
	}
	existingPayload := make([]existingChapter, 0, len(existing))
	for _, ch := range existing {
		existingPayload = append(existingPayload, existingChapter{
			Title:            ch.Name,
			VideoSearchQuery: ch.VideoSearchQuery,
		})
	}

	summaryJSON, err := json.Marshal(quizSummary)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal quiz summary: %w", err)
	}
	existingJSON, err := json.Marshal(existingPayload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal existing chapters: %w", err)
	}

	prompt := fmt.Sprintf(`%s

Quiz results:
%s

Existing chapters:
%s`, proposerSystemPrompt, summaryJSON, existingJSON)

	raw, err := llms.GenerateFromSinglePrompt(ctx, p.llm, prompt, llms.WithTemperature(0.7))
	if err != nil {
		return nil, fmt.Errorf("chapter proposal call failed: %w", err)
	}

	jsonStr, err := extractJSONArray(raw)
	if err != nil {
		logger.Get().Error("No JSON array in chapter proposal response", zap.String("raw_response", raw))
		return nil, err
	}

	var proposed []domain.ProposedChapter
	if err := json.Unmarshal([]byte(jsonStr), &proposed); err != nil {
		logger.Get().Error("Failed to unmarshal chapter proposal",
			zap.Error(err),
			zap.String("json_string", jsonStr))
		return nil, fmt.Errorf("failed to parse chapter proposal: %w", err)
	}

	if len(proposed) == 0 {
		return nil, fmt.Errorf("model returned an empty chapter proposal")
	}

	return proposed, nil
}
