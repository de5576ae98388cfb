package domain

import "context"

// TransactionManager runs a function inside a database transaction. The
// transaction travels in the context; repository methods called with that
// context join it.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// CourseRepository is the persistence port for the course hierarchy.
// Methods that take part in a chapter replacement must be called inside a
// TransactionManager scope so the delete-and-recreate is atomic.
type CourseRepository interface {
	CreateCourse(ctx context.Context, course *Course) error
	GetCourse(ctx context.Context, id string) (*Course, error)

	CreateUnit(ctx context.Context, unit *Unit) error
	// GetUnit returns the unit with its chapters, or nil when absent.
	GetUnit(ctx context.Context, id string) (*Unit, error)
	GetUnitByName(ctx context.Context, name string) (*Unit, error)
	// LockUnit acquires a row lock on the unit, serializing concurrent
	// chapter replacements for the same unit. Transaction scope only.
	LockUnit(ctx context.Context, id string) error

	CreateChapter(ctx context.Context, chapter *Chapter) error
	GetChapter(ctx context.Context, id string) (*Chapter, error)
	GetChapterByName(ctx context.Context, unitID, name string) (*Chapter, error)
	UpdateChapterVideo(ctx context.Context, chapterID, videoID string) error
	// DeleteChapterData removes content rows, question rows and chapter
	// rows for the given chapters, in that order. Transaction scope only.
	DeleteChapterData(ctx context.Context, chapterIDs []string) error

	CreateQuestions(ctx context.Context, chapterID string, questions []*Question) error
	DeleteQuestionsByChapter(ctx context.Context, chapterID string) error
	// UpsertChapterContent creates or replaces the single content row of a
	// chapter.
	UpsertChapterContent(ctx context.Context, content *ChapterContent) error
	GetChapterContent(ctx context.Context, chapterID string) (*ChapterContent, error)
}

// QuizResultRepository is the persistence port for per-user quiz results.
type QuizResultRepository interface {
	// GetUnitQuizResult returns the (user, unit) aggregate with its chapter
	// results, or nil when absent.
	GetUnitQuizResult(ctx context.Context, userID, unitID string) (*UnitQuizResult, error)
	// UpsertUnitQuizResult creates the (user, unit) row if absent and fills
	// in the id of the existing or created row.
	UpsertUnitQuizResult(ctx context.Context, result *UnitQuizResult) error
	// UpsertChapterQuizResult creates or replaces the row for the
	// (unit result, chapter) pair. Duplicate submissions never create
	// duplicate rows.
	UpsertChapterQuizResult(ctx context.Context, result *ChapterQuizResult) error
}
