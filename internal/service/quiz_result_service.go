package service

import (
	"context"

	"courseforge/internal/cache"
	"courseforge/internal/domain"
	"courseforge/internal/dto"
	"courseforge/internal/logger"

	"go.uber.org/zap"
)

// QuizResultService records per-user quiz outcomes for a unit.
type QuizResultService interface {
	SubmitQuizResults(ctx context.Context, userID string, req *dto.SubmitQuizResultsRequest) error
}

type quizResultService struct {
	courseRepo domain.CourseRepository
	resultRepo domain.QuizResultRepository
	txManager  domain.TransactionManager
	cache      domain.Cache
}

// NewQuizResultService creates a new instance of quizResultService
func NewQuizResultService(
	courseRepo domain.CourseRepository,
	resultRepo domain.QuizResultRepository,
	txManager domain.TransactionManager,
	cacheAdapter domain.Cache,
) QuizResultService {
	return &quizResultService{
		courseRepo: courseRepo,
		resultRepo: resultRepo,
		txManager:  txManager,
		cache:      cacheAdapter,
	}
}

// SubmitQuizResults upserts the (user, unit) aggregate and one row per
// chapter result. Every chapter name is resolved before any write, so a
// submission referencing an unknown chapter stores nothing. Resubmission
// replaces the previous rows rather than duplicating them.
func (s *quizResultService) SubmitQuizResults(ctx context.Context, userID string, req *dto.SubmitQuizResultsRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	unit, err := s.courseRepo.GetUnitByName(ctx, req.UnitName)
	if err != nil {
		return domain.NewInternalError("Failed to look up unit", err)
	}
	if unit == nil {
		return domain.NewUnitNotFoundError(req.UnitName)
	}

	chapterIDs := make([]string, len(req.ChapterResults))
	for i, cr := range req.ChapterResults {
		chapter, err := s.courseRepo.GetChapterByName(ctx, unit.ID, cr.ChapterName)
		if err != nil {
			return domain.NewInternalError("Failed to look up chapter", err)
		}
		if chapter == nil {
			return domain.NewChapterNotFoundError(cr.ChapterName)
		}
		chapterIDs[i] = chapter.ID
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		result := domain.NewUnitQuizResult(userID, unit.ID)
		if err := s.resultRepo.UpsertUnitQuizResult(txCtx, result); err != nil {
			return domain.NewInternalError("Failed to store unit quiz result", err)
		}

		for i, cr := range req.ChapterResults {
			chapterResult := &domain.ChapterQuizResult{
				UnitQuizResultID: result.ID,
				ChapterID:        chapterIDs[i],
				ChapterName:      cr.ChapterName,
				Score:            cr.Score,
				MaxScore:         cr.MaxScore,
				WrongAnswers:     cr.WrongAnswers,
			}
			if err := chapterResult.Validate(); err != nil {
				return err
			}
			if err := s.resultRepo.UpsertChapterQuizResult(txCtx, chapterResult); err != nil {
				return domain.NewInternalError("Failed to store chapter quiz result", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	// A fresh submission invalidates any cached analysis for the unit.
	if err := s.cache.Delete(ctx, cache.AnalysisKey(userID, unit.ID)); err != nil {
		logger.Get().Warn("Failed to invalidate analysis cache",
			zap.String("unit_id", unit.ID),
			zap.Error(err))
	}
	return nil
}
