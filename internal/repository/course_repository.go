package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"courseforge/internal/domain"
	"courseforge/internal/repository/models"
	"courseforge/internal/util"

	"github.com/jmoiron/sqlx"
)

// CourseDatabaseAdapter implements domain.CourseRepository using sqlx over
// Oracle. Every method goes through GetExecutor so it joins an active
// transaction when one is in the context.
type CourseDatabaseAdapter struct {
	db *sqlx.DB
}

// NewCourseDatabaseAdapter creates a new instance of CourseDatabaseAdapter
func NewCourseDatabaseAdapter(db *sqlx.DB) domain.CourseRepository {
	return &CourseDatabaseAdapter{db: db}
}

func toDomainCourse(m *models.Course) *domain.Course {
	return &domain.Course{
		ID:        m.ID,
		Name:      m.Name,
		Image:     m.Image.String,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toDomainUnit(m *models.Unit) *domain.Unit {
	return &domain.Unit{
		ID:        m.ID,
		CourseID:  m.CourseID,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toDomainChapter(m *models.Chapter) *domain.Chapter {
	return &domain.Chapter{
		ID:               m.ID,
		UnitID:           m.UnitID,
		Name:             m.Name,
		VideoID:          m.VideoID.String,
		VideoSearchQuery: m.VideoSearchQuery,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// CreateCourse implements domain.CourseRepository
func (a *CourseDatabaseAdapter) CreateCourse(ctx context.Context, course *domain.Course) error {
	executor := GetExecutor(ctx, a.db)

	course.ID = util.NewULID()
	course.CreatedAt = time.Now()
	course.UpdatedAt = course.CreatedAt

	query := `INSERT INTO courses (id, name, image, created_at, updated_at)
	VALUES (:1, :2, :3, :4, :5)`

	_, err := executor.ExecContext(ctx, query,
		course.ID,
		course.Name,
		util.StringToNullString(course.Image),
		course.CreatedAt,
		course.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create course: %w", err)
	}
	return nil
}

// GetCourse implements domain.CourseRepository. Units and their chapters
// are loaded in stored order.
func (a *CourseDatabaseAdapter) GetCourse(ctx context.Context, id string) (*domain.Course, error) {
	executor := GetExecutor(ctx, a.db)

	var modelCourse models.Course
	query := `SELECT
		id "id",
		name "name",
		image "image",
		created_at "created_at",
		updated_at "updated_at"
	FROM courses
	WHERE id = :1`

	err := executor.GetContext(ctx, &modelCourse, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get course by ID %s: %w", id, err)
	}
	course := toDomainCourse(&modelCourse)

	var modelUnits []models.Unit
	unitQuery := `SELECT
		id "id",
		course_id "course_id",
		name "name",
		created_at "created_at",
		updated_at "updated_at"
	FROM units
	WHERE course_id = :1
	ORDER BY created_at, id`

	if err := executor.SelectContext(ctx, &modelUnits, unitQuery, id); err != nil {
		return nil, fmt.Errorf("failed to get units for course %s: %w", id, err)
	}

	for i := range modelUnits {
		unit := toDomainUnit(&modelUnits[i])
		chapters, err := a.getChaptersByUnit(ctx, executor, unit.ID)
		if err != nil {
			return nil, err
		}
		unit.Chapters = chapters
		course.Units = append(course.Units, unit)
	}

	return course, nil
}

// CreateUnit implements domain.CourseRepository
func (a *CourseDatabaseAdapter) CreateUnit(ctx context.Context, unit *domain.Unit) error {
	executor := GetExecutor(ctx, a.db)

	unit.ID = util.NewULID()
	unit.CreatedAt = time.Now()
	unit.UpdatedAt = unit.CreatedAt

	query := `INSERT INTO units (id, course_id, name, created_at, updated_at)
	VALUES (:1, :2, :3, :4, :5)`

	_, err := executor.ExecContext(ctx, query,
		unit.ID,
		unit.CourseID,
		unit.Name,
		unit.CreatedAt,
		unit.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create unit: %w", err)
	}
	return nil
}

// GetUnit implements domain.CourseRepository. Returns nil when absent.
func (a *CourseDatabaseAdapter) GetUnit(ctx context.Context, id string) (*domain.Unit, error) {
	executor := GetExecutor(ctx, a.db)

	var modelUnit models.Unit
	query := `SELECT
		id "id",
		course_id "course_id",
		name "name",
		created_at "created_at",
		updated_at "updated_at"
	FROM units
	WHERE id = :1`

	err := executor.GetContext(ctx, &modelUnit, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get unit by ID %s: %w", id, err)
	}

	unit := toDomainUnit(&modelUnit)
	chapters, err := a.getChaptersByUnit(ctx, executor, unit.ID)
	if err != nil {
		return nil, err
	}
	unit.Chapters = chapters
	return unit, nil
}

// GetUnitByName implements domain.CourseRepository
func (a *CourseDatabaseAdapter) GetUnitByName(ctx context.Context, name string) (*domain.Unit, error) {
	executor := GetExecutor(ctx, a.db)

	var modelUnit models.Unit
	query := `SELECT
		id "id",
		course_id "course_id",
		name "name",
		created_at "created_at",
		updated_at "updated_at"
	FROM units
	WHERE name = :1
	FETCH FIRST 1 ROWS ONLY`

	err := executor.GetContext(ctx, &modelUnit, query, name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get unit by name %s: %w", name, err)
	}

	unit := toDomainUnit(&modelUnit)
	chapters, err := a.getChaptersByUnit(ctx, executor, unit.ID)
	if err != nil {
		return nil, err
	}
	unit.Chapters = chapters
	return unit, nil
}

// LockUnit acquires a row lock on the unit so concurrent chapter
// replacements for the same unit serialize. Must run inside a transaction.
func (a *CourseDatabaseAdapter) LockUnit(ctx context.Context, id string) error {
	executor := GetExecutor(ctx, a.db)

	var lockedID string
	query := `SELECT id "id" FROM units WHERE id = :1 FOR UPDATE`
	err := executor.GetContext(ctx, &lockedID, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.NewUnitNotFoundError(id)
		}
		return fmt.Errorf("failed to lock unit %s: %w", id, err)
	}
	return nil
}

func (a *CourseDatabaseAdapter) getChaptersByUnit(ctx context.Context, executor DBTX, unitID string) ([]*domain.Chapter, error) {
	var modelChapters []models.Chapter
	query := `SELECT
		id "id",
		unit_id "unit_id",
		name "name",
		video_id "video_id",
		video_search_query "video_search_query",
		created_at "created_at",
		updated_at "updated_at"
	FROM chapters
	WHERE unit_id = :1
	ORDER BY name`

	if err := executor.SelectContext(ctx, &modelChapters, query, unitID); err != nil {
		return nil, fmt.Errorf("failed to get chapters for unit %s: %w", unitID, err)
	}

	chapters := make([]*domain.Chapter, 0, len(modelChapters))
	for i := range modelChapters {
		chapters = append(chapters, toDomainChapter(&modelChapters[i]))
	}
	return chapters, nil
}

// CreateChapter implements domain.CourseRepository
func (a *CourseDatabaseAdapter) CreateChapter(ctx context.Context, chapter *domain.Chapter) error {
	executor := GetExecutor(ctx, a.db)

	chapter.ID = util.NewULID()
	chapter.CreatedAt = time.Now()
	chapter.UpdatedAt = chapter.CreatedAt

	query := `INSERT INTO chapters (id, unit_id, name, video_id, video_search_query, created_at, updated_at)
	VALUES (:1, :2, :3, :4, :5, :6, :7)`

	_, err := executor.ExecContext(ctx, query,
		chapter.ID,
		chapter.UnitID,
		chapter.Name,
		util.StringToNullString(chapter.VideoID),
		chapter.VideoSearchQuery,
		chapter.CreatedAt,
		chapter.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create chapter: %w", err)
	}
	return nil
}

// GetChapter implements domain.CourseRepository
func (a *CourseDatabaseAdapter) GetChapter(ctx context.Context, id string) (*domain.Chapter, error) {
	executor := GetExecutor(ctx, a.db)

	var modelChapter models.Chapter
	query := `SELECT
		id "id",
		unit_id "unit_id",
		name "name",
		video_id "video_id",
		video_search_query "video_search_query",
		created_at "created_at",
		updated_at "updated_at"
	FROM chapters
	WHERE id = :1`

	err := executor.GetContext(ctx, &modelChapter, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get chapter by ID %s: %w", id, err)
	}
	return toDomainChapter(&modelChapter), nil
}

// GetChapterByName implements domain.CourseRepository
func (a *CourseDatabaseAdapter) GetChapterByName(ctx context.Context, unitID, name string) (*domain.Chapter, error) {
	executor := GetExecutor(ctx, a.db)

	var modelChapter models.Chapter
	query := `SELECT
		id "id",
		unit_id "unit_id",
		name "name",
		video_id "video_id",
		video_search_query "video_search_query",
		created_at "created_at",
		updated_at "updated_at"
	FROM chapters
	WHERE unit_id = :1 AND name = :2
	FETCH FIRST 1 ROWS ONLY`

	err := executor.GetContext(ctx, &modelChapter, query, unitID, name)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get chapter %s in unit %s: %w", name, unitID, err)
	}
	return toDomainChapter(&modelChapter), nil
}

// UpdateChapterVideo implements domain.CourseRepository
func (a *CourseDatabaseAdapter) UpdateChapterVideo(ctx context.Context, chapterID, videoID string) error {
	executor := GetExecutor(ctx, a.db)

	query := `UPDATE chapters SET video_id = :1, updated_at = :2 WHERE id = :3`
	_, err := executor.ExecContext(ctx, query, videoID, time.Now(), chapterID)
	if err != nil {
		return fmt.Errorf("failed to update chapter video: %w", err)
	}
	return nil
}

// DeleteChapterData removes content rows, question rows and chapter rows
// for the given chapters, in that order. The three deletes must run inside
// one transaction; a chapter is never removed while its children remain.
func (a *CourseDatabaseAdapter) DeleteChapterData(ctx context.Context, chapterIDs []string) error {
	if len(chapterIDs) == 0 {
		return nil
	}
	executor := GetExecutor(ctx, a.db)

	placeholders := make([]string, len(chapterIDs))
	args := make([]interface{}, len(chapterIDs))
	for i, id := range chapterIDs {
		placeholders[i] = fmt.Sprintf(":%d", i+1)
		args[i] = id
	}
	in := strings.Join(placeholders, ", ")

	deletes := []string{
		`DELETE FROM chapter_contents WHERE chapter_id IN (` + in + `)`,
		`DELETE FROM questions WHERE chapter_id IN (` + in + `)`,
		`DELETE FROM chapters WHERE id IN (` + in + `)`,
	}
	for _, query := range deletes {
		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to delete chapter data: %w", err)
		}
	}
	return nil
}

// CreateQuestions bulk-inserts the questions of one chapter.
func (a *CourseDatabaseAdapter) CreateQuestions(ctx context.Context, chapterID string, questions []*domain.Question) error {
	executor := GetExecutor(ctx, a.db)

	query := `INSERT INTO questions (id, chapter_id, question, answer, options, created_at, updated_at)
	VALUES (:1, :2, :3, :4, :5, :6, :7)`

	now := time.Now()
	for _, q := range questions {
		q.ID = util.NewULID()
		q.ChapterID = chapterID
		q.CreatedAt = now
		q.UpdatedAt = now

		options := models.StringSlice(q.Options)
		optionsVal, err := options.Value()
		if err != nil {
			return fmt.Errorf("failed to serialize question options: %w", err)
		}

		if _, err := executor.ExecContext(ctx, query,
			q.ID,
			q.ChapterID,
			q.Question,
			q.Answer,
			optionsVal,
			q.CreatedAt,
			q.UpdatedAt,
		); err != nil {
			return fmt.Errorf("failed to create question: %w", err)
		}
	}
	return nil
}

// DeleteQuestionsByChapter implements domain.CourseRepository
func (a *CourseDatabaseAdapter) DeleteQuestionsByChapter(ctx context.Context, chapterID string) error {
	executor := GetExecutor(ctx, a.db)

	query := `DELETE FROM questions WHERE chapter_id = :1`
	if _, err := executor.ExecContext(ctx, query, chapterID); err != nil {
		return fmt.Errorf("failed to delete questions for chapter %s: %w", chapterID, err)
	}
	return nil
}

// UpsertChapterContent creates or replaces the single content row of a
// chapter. MERGE keeps the 1:1 invariant under repeated population.
func (a *CourseDatabaseAdapter) UpsertChapterContent(ctx context.Context, content *domain.ChapterContent) error {
	executor := GetExecutor(ctx, a.db)

	now := time.Now()
	summaryVal, err := models.SectionSlice(content.Summary).Value()
	if err != nil {
		return fmt.Errorf("failed to serialize chapter summary: %w", err)
	}
	keyPointsVal, err := models.SectionSlice(content.KeyPoints).Value()
	if err != nil {
		return fmt.Errorf("failed to serialize chapter key points: %w", err)
	}

	query := `MERGE INTO chapter_contents tgt
	USING (SELECT :1 chapter_id FROM dual) src
	ON (tgt.chapter_id = src.chapter_id)
	WHEN MATCHED THEN UPDATE SET
		tgt.summary = :2,
		tgt.key_points = :3,
		tgt.updated_at = :4
	WHEN NOT MATCHED THEN INSERT (id, chapter_id, summary, key_points, created_at, updated_at)
	VALUES (:5, :6, :7, :8, :9, :10)`

	id := util.NewULID()
	_, err = executor.ExecContext(ctx, query,
		content.ChapterID,
		summaryVal,
		keyPointsVal,
		now,
		id,
		content.ChapterID,
		summaryVal,
		keyPointsVal,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert chapter content: %w", err)
	}
	return nil
}

// GetChapterContent implements domain.CourseRepository. Returns nil when
// the chapter has not been populated yet.
func (a *CourseDatabaseAdapter) GetChapterContent(ctx context.Context, chapterID string) (*domain.ChapterContent, error) {
	executor := GetExecutor(ctx, a.db)

	var modelContent models.ChapterContent
	query := `SELECT
		id "id",
		chapter_id "chapter_id",
		summary "summary",
		key_points "key_points",
		created_at "created_at",
		updated_at "updated_at"
	FROM chapter_contents
	WHERE chapter_id = :1`

	err := executor.GetContext(ctx, &modelContent, query, chapterID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get content for chapter %s: %w", chapterID, err)
	}

	return &domain.ChapterContent{
		ID:        modelContent.ID,
		ChapterID: modelContent.ChapterID,
		Summary:   modelContent.Summary,
		KeyPoints: modelContent.KeyPoints,
		CreatedAt: modelContent.CreatedAt,
		UpdatedAt: modelContent.UpdatedAt,
	}, nil
}
