package models

import "time"

// UnitQuizResult row in the unit_quiz_results table. (user_id, unit_id) is
// unique.
type UnitQuizResult struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	UnitID    string    `db:"unit_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// ChapterQuizResult row in the chapter_quiz_results table.
// (unit_quiz_result_id, chapter_id) is unique.
type ChapterQuizResult struct {
	ID               string      `db:"id"`
	UnitQuizResultID string      `db:"unit_quiz_result_id"`
	ChapterID        string      `db:"chapter_id"`
	Score            int         `db:"score"`
	MaxScore         int         `db:"max_score"`
	WrongAnswers     StringSlice `db:"wrong_answers"`
	CreatedAt        time.Time   `db:"created_at"`
	UpdatedAt        time.Time   `db:"updated_at"`
}
