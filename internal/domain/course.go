package domain

import (
	"time"
)

// Course represents a generated course. Unit order is the stored sequence.
type Course struct {
	ID        string
	Name      string
	Image     string
	CreatedAt time.Time
	UpdatedAt time.Time
	Units     []*Unit
}

// NewCourse creates a new Course instance
func NewCourse(name, image string) *Course {
	now := time.Now()
	return &Course{
		Name:      name,
		Image:     image,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate validates the course
func (c *Course) Validate() error {
	if c.Name == "" {
		return NewValidationError("course name is required")
	}
	return nil
}

// Unit represents a course subdivision containing an ordered set of chapters
type Unit struct {
	ID        string
	CourseID  string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
	Chapters  []*Chapter
}

// NewUnit creates a new Unit instance
func NewUnit(courseID, name string) *Unit {
	now := time.Now()
	return &Unit{
		CourseID:  courseID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate validates the unit
func (u *Unit) Validate() error {
	if u.CourseID == "" {
		return NewValidationError("unit course id is required")
	}
	if u.Name == "" {
		return NewValidationError("unit name is required")
	}
	return nil
}

// ChapterIDs returns the ids of the unit's current chapters.
func (u *Unit) ChapterIDs() []string {
	ids := make([]string, 0, len(u.Chapters))
	for _, ch := range u.Chapters {
		ids = append(ids, ch.ID)
	}
	return ids
}

// Chapter is the smallest content unit, tied to one external video reference.
type Chapter struct {
	ID               string
	UnitID           string
	Name             string
	VideoID          string
	VideoSearchQuery string
	CreatedAt        time.Time
	UpdatedAt        time.Time
	Questions        []*Question
	Content          *ChapterContent
}

// NewChapter creates a new Chapter instance
func NewChapter(unitID, name, videoSearchQuery string) *Chapter {
	now := time.Now()
	return &Chapter{
		UnitID:           unitID,
		Name:             name,
		VideoSearchQuery: videoSearchQuery,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// Validate validates the chapter
func (c *Chapter) Validate() error {
	if c.UnitID == "" {
		return NewValidationError("chapter unit id is required")
	}
	if c.Name == "" {
		return NewValidationError("chapter name is required")
	}
	if c.VideoSearchQuery == "" {
		return NewValidationError("chapter video search query is required")
	}
	return nil
}

// Question is a multiple-choice question owned by one chapter. Options
// contain the correct answer exactly once among the distractors.
type Question struct {
	ID        string
	ChapterID string
	Question  string
	Answer    string
	Options   []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate validates the question
func (q *Question) Validate() error {
	if q.ChapterID == "" {
		return NewValidationError("question chapter id is required")
	}
	if q.Question == "" {
		return NewValidationError("question text is required")
	}
	if q.Answer == "" {
		return NewValidationError("question answer is required")
	}
	answerCount := 0
	for _, opt := range q.Options {
		if opt == q.Answer {
			answerCount++
		}
	}
	if answerCount != 1 {
		return NewValidationError("question options must contain the answer exactly once")
	}
	return nil
}

// Flashcard is a front/back study card attached to a content section
type Flashcard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// ContentSection is one titled entry of a chapter's summary or key points
type ContentSection struct {
	Title       string      `json:"title"`
	Explanation string      `json:"explanation"`
	Flashcards  []Flashcard `json:"flashcards"`
}

// ChapterContent holds the structured summary/key-points payload for a
// chapter. Exactly one per chapter.
type ChapterContent struct {
	ID        string
	ChapterID string
	Summary   []ContentSection
	KeyPoints []ContentSection
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewChapterContent creates a new ChapterContent instance
func NewChapterContent(chapterID string, summary, keyPoints []ContentSection) *ChapterContent {
	now := time.Now()
	return &ChapterContent{
		ChapterID: chapterID,
		Summary:   summary,
		KeyPoints: keyPoints,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Validate validates the chapter content
func (c *ChapterContent) Validate() error {
	if c.ChapterID == "" {
		return NewValidationError("chapter content chapter id is required")
	}
	return nil
}
