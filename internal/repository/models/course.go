package models

import (
	"database/sql"
	"time"
)

// Course row in the courses table
type Course struct {
	ID        string         `db:"id"`
	Name      string         `db:"name"`
	Image     sql.NullString `db:"image"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

// Unit row in the units table
type Unit struct {
	ID        string    `db:"id"`
	CourseID  string    `db:"course_id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Chapter row in the chapters table
type Chapter struct {
	ID               string         `db:"id"`
	UnitID           string         `db:"unit_id"`
	Name             string         `db:"name"`
	VideoID          sql.NullString `db:"video_id"`
	VideoSearchQuery string         `db:"video_search_query"`
	CreatedAt        time.Time      `db:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at"`
}

// Question row in the questions table. Options is the shuffled option list
// including the correct answer, serialized as JSON.
type Question struct {
	ID        string      `db:"id"`
	ChapterID string      `db:"chapter_id"`
	Question  string      `db:"question"`
	Answer    string      `db:"answer"`
	Options   StringSlice `db:"options"`
	CreatedAt time.Time   `db:"created_at"`
	UpdatedAt time.Time   `db:"updated_at"`
}

// ChapterContent row in the chapter_contents table, one per chapter.
type ChapterContent struct {
	ID        string       `db:"id"`
	ChapterID string       `db:"chapter_id"`
	Summary   SectionSlice `db:"summary"`
	KeyPoints SectionSlice `db:"key_points"`
	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt time.Time    `db:"updated_at"`
}
