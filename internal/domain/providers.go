package domain

import "context"

// ProposedChapter is a generation-provider output describing a chapter's
// title and video search query, not yet persisted.
type ProposedChapter struct {
	Title            string `json:"title"`
	VideoSearchQuery string `json:"video_search_query"`
}

// Validate validates a proposed chapter before any destructive step runs.
func (p *ProposedChapter) Validate() error {
	if p.Title == "" {
		return NewValidationError("proposed chapter title must not be empty")
	}
	if p.VideoSearchQuery == "" {
		return NewValidationError("proposed chapter video search query must not be empty")
	}
	return nil
}

// ProposedUnit is a course-outline output of the content generator.
type ProposedUnit struct {
	Title    string            `json:"title"`
	Chapters []ProposedChapter `json:"chapters"`
}

// GeneratedQuestion is a raw MCQ from the quiz generator: the correct
// answer plus three distractors, options not yet shuffled.
type GeneratedQuestion struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Option1  string `json:"option1"`
	Option2  string `json:"option2"`
	Option3  string `json:"option3"`
}

// Explanation is the structured output of the content explainer.
type Explanation struct {
	Summary   []ContentSection `json:"summary"`
	KeyPoints []ContentSection `json:"keyPoints"`
}

// ChapterProposer turns quiz performance plus the existing chapter set into
// a replacement chapter proposal.
type ChapterProposer interface {
	ProposeChapters(ctx context.Context, quizSummary []ChapterQuizSummary, existing []*Chapter) ([]ProposedChapter, error)
}

// CourseOutliner produces the initial unit/chapter outline for a new course.
type CourseOutliner interface {
	OutlineCourse(ctx context.Context, title string, unitCount int) ([]ProposedUnit, error)
}

// VideoResolver resolves a search query to an external video reference.
type VideoResolver interface {
	ResolveVideo(ctx context.Context, searchQuery string) (string, error)
}

// TranscriptFetcher fetches the transcript text for a video reference.
type TranscriptFetcher interface {
	FetchTranscript(ctx context.Context, videoID string) (string, error)
}

// ContentExplainer generates the summary/key-points/flashcards payload for
// a chapter from its transcript.
type ContentExplainer interface {
	Explain(ctx context.Context, title, transcript string) (*Explanation, error)
}

// QuizGenerator generates multiple-choice questions from a transcript.
type QuizGenerator interface {
	MakeQuiz(ctx context.Context, title, transcript string, count int) ([]GeneratedQuestion, error)
}
