package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"courseforge/internal/cache"
	"courseforge/internal/config"
	"courseforge/internal/domain"
	"courseforge/internal/logger"

	"go.uber.org/zap"
)

const (
	classificationStrength = "strength"
	classificationWeakness = "weakness"
	classificationNoData   = "insufficient data"
)

// AnalysisService classifies a user's quiz performance per chapter and
// decides whether the unit should be regenerated.
type AnalysisService interface {
	GetUnitAnalysis(ctx context.Context, unitID, userID string) (*domain.Analysis, error)
	Analyze(results domain.UnitResults) *domain.Analysis
}

type analysisService struct {
	courseRepo domain.CourseRepository
	resultRepo domain.QuizResultRepository
	cache      domain.Cache
	cfg        *config.Config
}

// NewAnalysisService creates a new instance of analysisService
func NewAnalysisService(
	courseRepo domain.CourseRepository,
	resultRepo domain.QuizResultRepository,
	cacheAdapter domain.Cache,
	cfg *config.Config,
) AnalysisService {
	return &analysisService{
		courseRepo: courseRepo,
		resultRepo: resultRepo,
		cache:      cacheAdapter,
		cfg:        cfg,
	}
}

// GetUnitAnalysis loads the stored quiz result for the unit and runs the
// analyzer over it. The report is cached per (user, unit) and invalidated
// whenever results are resubmitted or the unit is regenerated.
func (s *analysisService) GetUnitAnalysis(ctx context.Context, unitID, userID string) (*domain.Analysis, error) {
	key := cache.AnalysisKey(userID, unitID)
	if cached, err := s.cache.Get(ctx, key); err == nil {
		var analysis domain.Analysis
		if err := json.Unmarshal([]byte(cached), &analysis); err == nil {
			return &analysis, nil
		}
		logger.Get().Warn("Discarding undecodable cached analysis", zap.String("key", key))
	} else if !errors.Is(err, domain.ErrCacheMiss) {
		logger.Get().Warn("Analysis cache lookup failed", zap.Error(err))
	}

	unit, err := s.courseRepo.GetUnit(ctx, unitID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load unit", err)
	}
	if unit == nil {
		return nil, domain.NewUnitNotFoundError(unitID)
	}

	result, err := s.resultRepo.GetUnitQuizResult(ctx, userID, unitID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load quiz results", err)
	}
	if result == nil || len(result.ChapterResults) == 0 {
		return nil, domain.NewQuizResultNotFoundError(unitID)
	}

	input := domain.UnitResults{
		UnitID:   unitID,
		UnitName: unit.Name,
	}
	for _, cr := range result.ChapterResults {
		input.TotalScore += cr.Score
		input.MaxScore += cr.MaxScore
		input.ChapterScores = append(input.ChapterScores, domain.ChapterScore{
			ChapterID:    cr.ChapterID,
			ChapterName:  cr.ChapterName,
			Score:        cr.Score,
			MaxScore:     cr.MaxScore,
			WrongAnswers: cr.WrongAnswers,
		})
	}

	analysis := s.Analyze(input)

	if payload, err := json.Marshal(analysis); err == nil {
		if err := s.cache.Set(ctx, key, string(payload), s.cfg.Analysis.CacheTTL); err != nil {
			logger.Get().Warn("Failed to cache analysis", zap.Error(err))
		}
	}
	return analysis, nil
}

// Analyze is a pure function over the aggregated results. A chapter at or
// above the threshold is a strength, below it a weakness; a chapter with no
// scorable questions is classified as insufficient data and counted in
// neither list.
func (s *analysisService) Analyze(results domain.UnitResults) *domain.Analysis {
	threshold := s.cfg.Analysis.ThresholdPercent

	analysis := &domain.Analysis{
		UnitID:     results.UnitID,
		UnitName:   results.UnitName,
		Strengths:  []string{},
		Weaknesses: []string{},
		Breakdown:  make([]domain.ChapterBreakdown, 0, len(results.ChapterScores)),
	}

	for _, cs := range results.ChapterScores {
		breakdown := domain.ChapterBreakdown{
			ChapterID:   cs.ChapterID,
			ChapterName: cs.ChapterName,
			Score:       cs.Score,
			MaxScore:    cs.MaxScore,
		}
		switch {
		case cs.MaxScore == 0:
			breakdown.Classification = classificationNoData
		default:
			breakdown.Percentage = float64(cs.Score) / float64(cs.MaxScore) * 100
			if breakdown.Percentage >= threshold {
				breakdown.Classification = classificationStrength
				analysis.Strengths = append(analysis.Strengths, cs.ChapterName)
			} else {
				breakdown.Classification = classificationWeakness
				analysis.Weaknesses = append(analysis.Weaknesses, cs.ChapterName)
			}
		}
		analysis.Breakdown = append(analysis.Breakdown, breakdown)
	}

	analysis.Recommendation = s.recommend(results, threshold, len(analysis.Weaknesses))
	return analysis
}

func (s *analysisService) recommend(results domain.UnitResults, threshold float64, weaknesses int) domain.Recommendation {
	rec := domain.Recommendation{ThresholdPercent: threshold}
	if results.MaxScore == 0 {
		rec.Explanation = "No scorable questions were answered yet, so no recommendation can be made."
		return rec
	}

	overall := float64(results.TotalScore) / float64(results.MaxScore) * 100
	if overall < threshold {
		rec.Required = true
		rec.Explanation = fmt.Sprintf(
			"Overall score %.1f%% is below the %.1f%% threshold across %d weak chapters. Regenerating the unit is recommended.",
			overall, threshold, weaknesses)
	} else {
		rec.Explanation = fmt.Sprintf(
			"Overall score %.1f%% meets the %.1f%% threshold. The current chapter set remains a good fit.",
			overall, threshold)
	}
	return rec
}
