package repository

import (
	"context"
	"testing"
	"time"

	"courseforge/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestGetUnitQuizResult(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuizResultDatabaseAdapter(db)

	now := time.Now()

	resultRows := sqlmock.NewRows([]string{"id", "user_id", "unit_id", "created_at", "updated_at"}).
		AddRow("uqr-1", "user-1", "unit-1", now, now)
	mock.ExpectQuery(`(?s)SELECT\s+id "id",.*FROM unit_quiz_results\s+WHERE user_id = :1 AND unit_id = :2`).
		WithArgs("user-1", "unit-1").WillReturnRows(resultRows)

	chapterRows := sqlmock.NewRows([]string{"id", "unit_quiz_result_id", "chapter_id", "score", "max_score", "wrong_answers", "created_at", "updated_at", "chapter_name"}).
		AddRow("cqr-1", "uqr-1", "ch-1", 2, 5, `["What is a nil channel?"]`, now, now, "Channels").
		AddRow("cqr-2", "uqr-1", "ch-2", 5, 5, nil, now, now, "Goroutines")
	mock.ExpectQuery(`(?s)SELECT\s+r\.id "id",.*FROM chapter_quiz_results r\s+JOIN chapters c ON c\.id = r\.chapter_id`).
		WithArgs("uqr-1").WillReturnRows(chapterRows)

	result, err := repo.GetUnitQuizResult(context.Background(), "user-1", "unit-1")

	assert.NoError(t, err)
	assert.Equal(t, "uqr-1", result.ID)
	assert.Len(t, result.ChapterResults, 2)
	assert.Equal(t, "Channels", result.ChapterResults[0].ChapterName)
	assert.Equal(t, []string{"What is a nil channel?"}, result.ChapterResults[0].WrongAnswers)
	assert.Empty(t, result.ChapterResults[1].WrongAnswers)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUnitQuizResult_NotFound(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuizResultDatabaseAdapter(db)

	mock.ExpectQuery(`(?s)SELECT\s+id "id",.*FROM unit_quiz_results\s+WHERE user_id = :1 AND unit_id = :2`).
		WithArgs("user-1", "unit-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "unit_id", "created_at", "updated_at"}))

	result, err := repo.GetUnitQuizResult(context.Background(), "user-1", "unit-1")

	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertUnitQuizResult_ReadsBackID(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuizResultDatabaseAdapter(db)

	mock.ExpectExec(`MERGE INTO unit_quiz_results tgt`).
		WithArgs("user-1", "unit-1", sqlmock.AnyArg(), sqlmock.AnyArg(), "user-1", "unit-1", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`SELECT id "id" FROM unit_quiz_results WHERE user_id = :1 AND unit_id = :2`).
		WithArgs("user-1", "unit-1").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("uqr-existing"))

	result := domain.NewUnitQuizResult("user-1", "unit-1")
	err := repo.UpsertUnitQuizResult(context.Background(), result)

	assert.NoError(t, err)
	assert.Equal(t, "uqr-existing", result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertChapterQuizResult(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewQuizResultDatabaseAdapter(db)

	mock.ExpectExec(`MERGE INTO chapter_quiz_results tgt`).
		WithArgs("uqr-1", "ch-1", 2, 5, `["q1"]`, sqlmock.AnyArg(),
			sqlmock.AnyArg(), "uqr-1", "ch-1", 2, 5, `["q1"]`, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpsertChapterQuizResult(context.Background(), &domain.ChapterQuizResult{
		UnitQuizResultID: "uqr-1",
		ChapterID:        "ch-1",
		Score:            2,
		MaxScore:         5,
		WrongAnswers:     []string{"q1"},
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
