package dto

import "courseforge/internal/domain"

// ChapterResultEntry is one chapter's outcome in a quiz submission
type ChapterResultEntry struct {
	ChapterName  string   `json:"chapter_name"`
	Score        int      `json:"score"`
	MaxScore     int      `json:"max_score"`
	WrongAnswers []string `json:"wrong_answers"`
}

// SubmitQuizResultsRequest records a user's attempt at a unit's quizzes
// @Description Request body for submitting quiz results for a unit
type SubmitQuizResultsRequest struct {
	UnitName       string               `json:"unit_name"`
	ChapterResults []ChapterResultEntry `json:"chapter_results"`
}

// Validate checks the submission for schema violations
func (r *SubmitQuizResultsRequest) Validate() error {
	if r.UnitName == "" {
		return domain.NewValidationError("unit_name is required")
	}
	if len(r.ChapterResults) == 0 {
		return domain.NewValidationError("chapter_results must not be empty")
	}
	for _, cr := range r.ChapterResults {
		if cr.ChapterName == "" {
			return domain.NewValidationError("chapter_name is required for every chapter result")
		}
		if cr.Score < 0 || cr.MaxScore < 0 {
			return domain.NewValidationError("scores must not be negative")
		}
	}
	return nil
}

// SubmitQuizResultsResponse acknowledges a stored submission
type SubmitQuizResultsResponse struct {
	Message string `json:"message"`
}

// AnalysisResponse wraps the performance analysis report
type AnalysisResponse struct {
	Analysis *domain.Analysis `json:"analysis"`
}
