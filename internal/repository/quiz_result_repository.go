package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"courseforge/internal/domain"
	"courseforge/internal/repository/models"
	"courseforge/internal/util"

	"github.com/jmoiron/sqlx"
)

// QuizResultDatabaseAdapter implements domain.QuizResultRepository using
// sqlx over Oracle.
type QuizResultDatabaseAdapter struct {
	db *sqlx.DB
}

// NewQuizResultDatabaseAdapter creates a new instance of QuizResultDatabaseAdapter
func NewQuizResultDatabaseAdapter(db *sqlx.DB) domain.QuizResultRepository {
	return &QuizResultDatabaseAdapter{db: db}
}

// GetUnitQuizResult returns the (user, unit) aggregate with its chapter
// results, or nil when absent. Chapter names are joined in so callers can
// shape quiz summaries without extra reads.
func (a *QuizResultDatabaseAdapter) GetUnitQuizResult(ctx context.Context, userID, unitID string) (*domain.UnitQuizResult, error) {
	executor := GetExecutor(ctx, a.db)

	var modelResult models.UnitQuizResult
	query := `SELECT
		id "id",
		user_id "user_id",
		unit_id "unit_id",
		created_at "created_at",
		updated_at "updated_at"
	FROM unit_quiz_results
	WHERE user_id = :1 AND unit_id = :2`

	err := executor.GetContext(ctx, &modelResult, query, userID, unitID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get unit quiz result for user %s unit %s: %w", userID, unitID, err)
	}

	result := &domain.UnitQuizResult{
		ID:        modelResult.ID,
		UserID:    modelResult.UserID,
		UnitID:    modelResult.UnitID,
		CreatedAt: modelResult.CreatedAt,
		UpdatedAt: modelResult.UpdatedAt,
	}

	type chapterResultRow struct {
		models.ChapterQuizResult
		ChapterName string `db:"chapter_name"`
	}
	var rows []chapterResultRow
	chapterQuery := `SELECT
		r.id "id",
		r.unit_quiz_result_id "unit_quiz_result_id",
		r.chapter_id "chapter_id",
		r.score "score",
		r.max_score "max_score",
		r.wrong_answers "wrong_answers",
		r.created_at "created_at",
		r.updated_at "updated_at",
		c.name "chapter_name"
	FROM chapter_quiz_results r
	JOIN chapters c ON c.id = r.chapter_id
	WHERE r.unit_quiz_result_id = :1
	ORDER BY c.name`

	if err := executor.SelectContext(ctx, &rows, chapterQuery, result.ID); err != nil {
		return nil, fmt.Errorf("failed to get chapter quiz results for %s: %w", result.ID, err)
	}

	for i := range rows {
		row := &rows[i]
		result.ChapterResults = append(result.ChapterResults, &domain.ChapterQuizResult{
			ID:               row.ID,
			UnitQuizResultID: row.UnitQuizResultID,
			ChapterID:        row.ChapterID,
			ChapterName:      row.ChapterName,
			Score:            row.Score,
			MaxScore:         row.MaxScore,
			WrongAnswers:     row.WrongAnswers,
			CreatedAt:        row.CreatedAt,
			UpdatedAt:        row.UpdatedAt,
		})
	}

	return result, nil
}

// UpsertUnitQuizResult creates the (user, unit) row when absent. The unique
// constraint on (user_id, unit_id) guards against concurrent duplicates;
// the existing row's id is read back either way.
func (a *QuizResultDatabaseAdapter) UpsertUnitQuizResult(ctx context.Context, result *domain.UnitQuizResult) error {
	executor := GetExecutor(ctx, a.db)

	now := time.Now()
	newID := util.NewULID()

	query := `MERGE INTO unit_quiz_results tgt
	USING (SELECT :1 user_id, :2 unit_id FROM dual) src
	ON (tgt.user_id = src.user_id AND tgt.unit_id = src.unit_id)
	WHEN MATCHED THEN UPDATE SET tgt.updated_at = :3
	WHEN NOT MATCHED THEN INSERT (id, user_id, unit_id, created_at, updated_at)
	VALUES (:4, :5, :6, :7, :8)`

	_, err := executor.ExecContext(ctx, query,
		result.UserID,
		result.UnitID,
		now,
		newID,
		result.UserID,
		result.UnitID,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert unit quiz result: %w", err)
	}

	var id string
	idQuery := `SELECT id "id" FROM unit_quiz_results WHERE user_id = :1 AND unit_id = :2`
	if err := executor.GetContext(ctx, &id, idQuery, result.UserID, result.UnitID); err != nil {
		return fmt.Errorf("failed to read back unit quiz result id: %w", err)
	}
	result.ID = id
	return nil
}

// UpsertChapterQuizResult creates or replaces the row for the
// (unit result, chapter) pair. Re-submission overwrites score and wrong
// answers instead of adding a second row.
func (a *QuizResultDatabaseAdapter) UpsertChapterQuizResult(ctx context.Context, result *domain.ChapterQuizResult) error {
	executor := GetExecutor(ctx, a.db)

	now := time.Now()
	newID := util.NewULID()

	wrongAnswersVal, err := models.StringSlice(result.WrongAnswers).Value()
	if err != nil {
		return fmt.Errorf("failed to serialize wrong answers: %w", err)
	}

	query := `MERGE INTO chapter_quiz_results tgt
	USING (SELECT :1 unit_quiz_result_id, :2 chapter_id FROM dual) src
	ON (tgt.unit_quiz_result_id = src.unit_quiz_result_id AND tgt.chapter_id = src.chapter_id)
	WHEN MATCHED THEN UPDATE SET
		tgt.score = :3,
		tgt.max_score = :4,
		tgt.wrong_answers = :5,
		tgt.updated_at = :6
	WHEN NOT MATCHED THEN INSERT (id, unit_quiz_result_id, chapter_id, score, max_score, wrong_answers, created_at, updated_at)
	VALUES (:7, :8, :9, :10, :11, :12, :13, :14)`

	_, err = executor.ExecContext(ctx, query,
		result.UnitQuizResultID,
		result.ChapterID,
		result.Score,
		result.MaxScore,
		wrongAnswersVal,
		now,
		newID,
		result.UnitQuizResultID,
		result.ChapterID,
		result.Score,
		result.MaxScore,
		wrongAnswersVal,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert chapter quiz result: %w", err)
	}
	return nil
}
