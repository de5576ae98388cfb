package domain

import (
	"time"
)

// UnitQuizResult aggregates one user's attempt at a unit's quizzes.
// At most one row exists per (user, unit) pair.
type UnitQuizResult struct {
	ID        string
	UserID    string
	UnitID    string
	CreatedAt time.Time
	UpdatedAt time.Time
	ChapterResults []*ChapterQuizResult
}

// NewUnitQuizResult creates a new UnitQuizResult instance
func NewUnitQuizResult(userID, unitID string) *UnitQuizResult {
	now := time.Now()
	return &UnitQuizResult{
		UserID:    userID,
		UnitID:    unitID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate validates the unit quiz result
func (r *UnitQuizResult) Validate() error {
	if r.UserID == "" {
		return NewValidationError("quiz result user id is required")
	}
	if r.UnitID == "" {
		return NewValidationError("quiz result unit id is required")
	}
	return nil
}

// ChapterQuizResult holds the score and wrong-answer question texts for one
// chapter of a unit attempt. At most one row per (unit result, chapter).
type ChapterQuizResult struct {
	ID               string
	UnitQuizResultID string
	ChapterID        string
	ChapterName      string
	Score            int
	MaxScore         int
	WrongAnswers     []string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Validate validates the chapter quiz result
func (r *ChapterQuizResult) Validate() error {
	if r.ChapterID == "" {
		return NewValidationError("chapter quiz result chapter id is required")
	}
	if r.Score < 0 {
		return NewValidationError("chapter quiz result score must not be negative")
	}
	return nil
}

// ChapterQuizSummary is the per-chapter signal fed to chapter proposal.
// Raw question text is deliberately excluded to keep the prompt small.
type ChapterQuizSummary struct {
	ChapterID    string   `json:"chapter_id"`
	ChapterName  string   `json:"chapter_name"`
	Score        int      `json:"score"`
	WrongAnswers []string `json:"wrong_answers"`
}
