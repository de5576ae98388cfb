package service

import (
	"context"
	"errors"
	"fmt"

	"courseforge/internal/cache"
	"courseforge/internal/config"
	"courseforge/internal/domain"
	"courseforge/internal/logger"
	"courseforge/internal/util"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// RegenerationService drives the adaptive chapter-replacement pipeline for
// one unit: quiz performance in, a fully regenerated chapter set out.
type RegenerationService interface {
	RegenerateUnit(ctx context.Context, unitID, userID string) (*domain.Unit, error)
}

type regenerationService struct {
	courseRepo  domain.CourseRepository
	resultRepo  domain.QuizResultRepository
	txManager   domain.TransactionManager
	proposer    domain.ChapterProposer
	videos      domain.VideoResolver
	transcripts domain.TranscriptFetcher
	explainer   domain.ContentExplainer
	quizzes     domain.QuizGenerator
	cache       domain.Cache
	cfg         *config.Config
}

// NewRegenerationService creates a new instance of regenerationService
func NewRegenerationService(
	courseRepo domain.CourseRepository,
	resultRepo domain.QuizResultRepository,
	txManager domain.TransactionManager,
	proposer domain.ChapterProposer,
	videos domain.VideoResolver,
	transcripts domain.TranscriptFetcher,
	explainer domain.ContentExplainer,
	quizzes domain.QuizGenerator,
	cacheAdapter domain.Cache,
	cfg *config.Config,
) RegenerationService {
	return &regenerationService{
		courseRepo:  courseRepo,
		resultRepo:  resultRepo,
		txManager:   txManager,
		proposer:    proposer,
		videos:      videos,
		transcripts: transcripts,
		explainer:   explainer,
		quizzes:     quizzes,
		cache:       cacheAdapter,
		cfg:         cfg,
	}
}

// generatedChapter is one proposed chapter after its generation pipeline
// finished. Results are kept in proposal order so the final writes are
// deterministic regardless of completion order.
type generatedChapter struct {
	proposal  domain.ProposedChapter
	videoID   string
	questions []domain.GeneratedQuestion
	content   *domain.Explanation
}

// RegenerateUnit implements RegenerationService. Nothing is deleted until
// every proposed chapter has fully generated; the delete-and-recreate then
// runs as one transaction.
func (s *regenerationService) RegenerateUnit(ctx context.Context, unitID, userID string) (*domain.Unit, error) {
	unit, quizResult, err := s.loadInputs(ctx, unitID, userID)
	if err != nil {
		return nil, err
	}

	quizSummary := make([]domain.ChapterQuizSummary, 0, len(quizResult.ChapterResults))
	for _, cr := range quizResult.ChapterResults {
		quizSummary = append(quizSummary, domain.ChapterQuizSummary{
			ChapterID:    cr.ChapterID,
			ChapterName:  cr.ChapterName,
			Score:        cr.Score,
			WrongAnswers: cr.WrongAnswers,
		})
	}

	proposed, err := s.proposer.ProposeChapters(ctx, quizSummary, unit.Chapters)
	if err != nil {
		return nil, asProviderError("Chapter proposal failed", err)
	}
	for _, p := range proposed {
		if err := p.Validate(); err != nil {
			return nil, err
		}
	}

	logger.Get().Info("Chapter proposal accepted",
		zap.String("unit_id", unitID),
		zap.Int("proposed_chapters", len(proposed)))

	generated, err := s.generateChapters(ctx, proposed)
	if err != nil {
		return nil, err
	}

	if err := s.replaceChapters(ctx, unitID, generated); err != nil {
		return nil, err
	}

	if err := s.cache.Delete(ctx, cache.AnalysisKey(userID, unitID)); err != nil {
		logger.Get().Warn("Failed to invalidate analysis cache",
			zap.String("unit_id", unitID),
			zap.Error(err))
	}

	refreshed, err := s.courseRepo.GetUnit(ctx, unitID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to reload regenerated unit", err)
	}
	return refreshed, nil
}

// loadInputs fetches the unit and the user's quiz result concurrently; the
// two reads have no ordering dependency.
func (s *regenerationService) loadInputs(ctx context.Context, unitID, userID string) (*domain.Unit, *domain.UnitQuizResult, error) {
	var (
		unit       *domain.Unit
		quizResult *domain.UnitQuizResult
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		u, err := s.courseRepo.GetUnit(gctx, unitID)
		if err != nil {
			return domain.NewInternalError("Failed to load unit", err)
		}
		unit = u
		return nil
	})
	g.Go(func() error {
		r, err := s.resultRepo.GetUnitQuizResult(gctx, userID, unitID)
		if err != nil {
			return domain.NewInternalError("Failed to load quiz results", err)
		}
		quizResult = r
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	if unit == nil {
		return nil, nil, domain.NewUnitNotFoundError(unitID)
	}
	if quizResult == nil || len(quizResult.ChapterResults) == 0 {
		return nil, nil, domain.NewQuizResultNotFoundError(unitID)
	}
	return unit, quizResult, nil
}

// generateChapters runs the per-proposal pipelines concurrently. Each
// pipeline is strictly ordered (video, transcript, explanation, quiz);
// results land at their proposal index. A single pipeline failure aborts
// the whole regeneration so no partial unit is ever committed.
func (s *regenerationService) generateChapters(ctx context.Context, proposed []domain.ProposedChapter) ([]*generatedChapter, error) {
	results := make([]*generatedChapter, len(proposed))

	g, gctx := errgroup.WithContext(ctx)
	for i, p := range proposed {
		g.Go(func() error {
			gen, err := s.generateChapter(gctx, p)
			if err != nil {
				return err
			}
			results[i] = gen
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *regenerationService) generateChapter(ctx context.Context, proposal domain.ProposedChapter) (*generatedChapter, error) {
	videoID, err := s.videos.ResolveVideo(ctx, proposal.VideoSearchQuery)
	if err != nil {
		return nil, asProviderError("Video resolution failed for "+proposal.Title, err)
	}

	transcript, err := s.transcripts.FetchTranscript(ctx, videoID)
	if err != nil {
		return nil, asProviderError("Transcript fetch failed for "+proposal.Title, err)
	}
	transcript = util.TruncateWords(transcript, s.cfg.Generation.TranscriptMaxWords)

	content, err := s.explainer.Explain(ctx, proposal.Title, transcript)
	if err != nil {
		return nil, asProviderError("Explanation generation failed for "+proposal.Title, err)
	}

	questions, err := s.quizzes.MakeQuiz(ctx, proposal.Title, transcript, s.cfg.Generation.QuestionsPerChapter)
	if err != nil {
		return nil, asProviderError("Quiz generation failed for "+proposal.Title, err)
	}

	return &generatedChapter{
		proposal:  proposal,
		videoID:   videoID,
		questions: questions,
		content:   content,
	}, nil
}

// replaceChapters commits the destructive phase as one transaction: lock
// the unit, capture the deletion set under the lock, delete chapter-scoped
// rows, then create the replacements in proposal order.
func (s *regenerationService) replaceChapters(ctx context.Context, unitID string, generated []*generatedChapter) error {
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.courseRepo.LockUnit(txCtx, unitID); err != nil {
			return err
		}

		// The deletion set is re-read under the lock so a regeneration
		// that serialized behind another operates on the committed state.
		current, err := s.courseRepo.GetUnit(txCtx, unitID)
		if err != nil {
			return domain.NewInternalError("Failed to read chapters for deletion", err)
		}
		if current == nil {
			return domain.NewUnitNotFoundError(unitID)
		}

		if err := s.courseRepo.DeleteChapterData(txCtx, current.ChapterIDs()); err != nil {
			return domain.NewInternalError("Failed to delete previous chapters", err)
		}

		for _, gen := range generated {
			chapter := domain.NewChapter(unitID, gen.proposal.Title, gen.proposal.VideoSearchQuery)
			chapter.VideoID = gen.videoID
			if err := chapter.Validate(); err != nil {
				return err
			}
			if err := s.courseRepo.CreateChapter(txCtx, chapter); err != nil {
				return domain.NewInternalError("Failed to create chapter", err)
			}

			questions, err := buildQuestions(chapter.ID, gen.questions, s.cfg.Generation.OptionsPerQuestion)
			if err != nil {
				return err
			}
			if err := s.courseRepo.CreateQuestions(txCtx, chapter.ID, questions); err != nil {
				return domain.NewInternalError("Failed to create questions", err)
			}

			content := domain.NewChapterContent(chapter.ID, gen.content.Summary, gen.content.KeyPoints)
			if err := s.courseRepo.UpsertChapterContent(txCtx, content); err != nil {
				return domain.NewInternalError("Failed to store chapter content", err)
			}
		}
		return nil
	})
	if err != nil {
		if de, ok := err.(*domain.DomainError); ok {
			return de
		}
		// Rollback or commit itself failed; the chapter set can no longer
		// be assumed to be in either the old or the new state.
		logger.Get().Error("Chapter replacement did not complete atomically",
			zap.String("unit_id", unitID),
			zap.Error(err))
		return domain.NewConsistencyError(unitID, err)
	}
	return nil
}

// buildQuestions turns raw generated questions into persistable ones, the
// correct answer shuffled in among the distractors. optionCount is the
// configured options-per-question policy; a question whose option set does
// not match it is rejected before anything is stored.
func buildQuestions(chapterID string, generated []domain.GeneratedQuestion, optionCount int) ([]*domain.Question, error) {
	questions := make([]*domain.Question, 0, len(generated))
	for _, g := range generated {
		options := util.ShuffleStrings([]string{g.Answer, g.Option1, g.Option2, g.Option3})
		if len(options) != optionCount {
			return nil, domain.NewValidationError(
				fmt.Sprintf("question has %d options, policy requires %d", len(options), optionCount))
		}
		q := &domain.Question{
			ChapterID: chapterID,
			Question:  g.Question,
			Answer:    g.Answer,
			Options:   options,
		}
		if err := q.Validate(); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// asProviderError classifies failures coming back from a capability
// provider. A plain not-found (no video or transcript for the query) still
// means generation could not complete, so it surfaces as a provider
// failure; domain errors with a more specific code keep it.
func asProviderError(message string, err error) error {
	var de *domain.DomainError
	if errors.As(err, &de) && de.Code != domain.CodeNotFound {
		return de
	}
	return domain.NewProviderError(message, err)
}
