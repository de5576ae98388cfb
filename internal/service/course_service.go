package service

import (
	"context"

	"courseforge/internal/config"
	"courseforge/internal/domain"
	"courseforge/internal/dto"
	"courseforge/internal/logger"
	"courseforge/internal/util"

	"go.uber.org/zap"
)

// CourseService creates courses from a topic and populates individual
// chapters with video, content and quiz data.
type CourseService interface {
	CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*domain.Course, error)
	GetCourse(ctx context.Context, courseID string) (*domain.Course, error)
	PopulateChapter(ctx context.Context, chapterID string) error
	GetChapterContent(ctx context.Context, chapterID string) (*dto.ChapterContentResponse, error)
}

type courseService struct {
	courseRepo  domain.CourseRepository
	txManager   domain.TransactionManager
	outliner    domain.CourseOutliner
	videos      domain.VideoResolver
	transcripts domain.TranscriptFetcher
	explainer   domain.ContentExplainer
	quizzes     domain.QuizGenerator
	cfg         *config.Config
}

// NewCourseService creates a new instance of courseService
func NewCourseService(
	courseRepo domain.CourseRepository,
	txManager domain.TransactionManager,
	outliner domain.CourseOutliner,
	videos domain.VideoResolver,
	transcripts domain.TranscriptFetcher,
	explainer domain.ContentExplainer,
	quizzes domain.QuizGenerator,
	cfg *config.Config,
) CourseService {
	return &courseService{
		courseRepo:  courseRepo,
		txManager:   txManager,
		outliner:    outliner,
		videos:      videos,
		transcripts: transcripts,
		explainer:   explainer,
		quizzes:     quizzes,
		cfg:         cfg,
	}
}

// CreateCourse asks the outliner for a unit/chapter skeleton on the given
// topic and persists the whole tree in one transaction. Chapters start
// unpopulated; PopulateChapter fills them on demand.
func (s *courseService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*domain.Course, error) {
	if req.Title == "" {
		return nil, domain.NewValidationError("title is required")
	}
	unitCount := req.UnitCount
	if unitCount <= 0 {
		unitCount = s.cfg.Generation.DefaultUnitCount
	}

	outline, err := s.outliner.OutlineCourse(ctx, req.Title, unitCount)
	if err != nil {
		return nil, asProviderError("Course outline generation failed", err)
	}
	if len(outline) == 0 {
		return nil, domain.NewProviderError("Course outline generation returned no units", nil)
	}
	for _, unit := range outline {
		if unit.Title == "" {
			return nil, domain.NewValidationError("outlined unit title must not be empty")
		}
		for _, ch := range unit.Chapters {
			if err := ch.Validate(); err != nil {
				return nil, err
			}
		}
	}

	course := domain.NewCourse(req.Title, "")
	if err := course.Validate(); err != nil {
		return nil, err
	}

	err = s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.courseRepo.CreateCourse(txCtx, course); err != nil {
			return domain.NewInternalError("Failed to create course", err)
		}
		for _, proposedUnit := range outline {
			unit := domain.NewUnit(course.ID, proposedUnit.Title)
			if err := s.courseRepo.CreateUnit(txCtx, unit); err != nil {
				return domain.NewInternalError("Failed to create unit", err)
			}
			for _, proposedChapter := range proposedUnit.Chapters {
				chapter := domain.NewChapter(unit.ID, proposedChapter.Title, proposedChapter.VideoSearchQuery)
				if err := s.courseRepo.CreateChapter(txCtx, chapter); err != nil {
					return domain.NewInternalError("Failed to create chapter", err)
				}
				unit.Chapters = append(unit.Chapters, chapter)
			}
			course.Units = append(course.Units, unit)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Get().Info("Course created",
		zap.String("course_id", course.ID),
		zap.Int("units", len(course.Units)))
	return course, nil
}

// GetCourse returns the course with its full unit/chapter tree.
func (s *courseService) GetCourse(ctx context.Context, courseID string) (*domain.Course, error) {
	course, err := s.courseRepo.GetCourse(ctx, courseID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load course", err)
	}
	if course == nil {
		return nil, domain.NewNotFoundError("course not found: " + courseID)
	}
	return course, nil
}

// PopulateChapter runs the full generation pipeline for one chapter and
// stores the outcome transactionally. Re-population replaces the chapter's
// previous questions and content.
func (s *courseService) PopulateChapter(ctx context.Context, chapterID string) error {
	chapter, err := s.courseRepo.GetChapter(ctx, chapterID)
	if err != nil {
		return domain.NewInternalError("Failed to load chapter", err)
	}
	if chapter == nil {
		return domain.NewChapterNotFoundError(chapterID)
	}

	videoID, err := s.videos.ResolveVideo(ctx, chapter.VideoSearchQuery)
	if err != nil {
		return asProviderError("Video resolution failed for "+chapter.Name, err)
	}

	transcript, err := s.transcripts.FetchTranscript(ctx, videoID)
	if err != nil {
		return asProviderError("Transcript fetch failed for "+chapter.Name, err)
	}
	transcript = util.TruncateWords(transcript, s.cfg.Generation.TranscriptMaxWords)

	explanation, err := s.explainer.Explain(ctx, chapter.Name, transcript)
	if err != nil {
		return asProviderError("Explanation generation failed for "+chapter.Name, err)
	}

	generated, err := s.quizzes.MakeQuiz(ctx, chapter.Name, transcript, s.cfg.Generation.QuestionsPerChapter)
	if err != nil {
		return asProviderError("Quiz generation failed for "+chapter.Name, err)
	}
	questions, err := buildQuestions(chapter.ID, generated, s.cfg.Generation.OptionsPerQuestion)
	if err != nil {
		return err
	}

	return s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.courseRepo.DeleteQuestionsByChapter(txCtx, chapter.ID); err != nil {
			return domain.NewInternalError("Failed to clear previous questions", err)
		}
		if err := s.courseRepo.CreateQuestions(txCtx, chapter.ID, questions); err != nil {
			return domain.NewInternalError("Failed to create questions", err)
		}
		content := domain.NewChapterContent(chapter.ID, explanation.Summary, explanation.KeyPoints)
		if err := s.courseRepo.UpsertChapterContent(txCtx, content); err != nil {
			return domain.NewInternalError("Failed to store chapter content", err)
		}
		if err := s.courseRepo.UpdateChapterVideo(txCtx, chapter.ID, videoID); err != nil {
			return domain.NewInternalError("Failed to record chapter video", err)
		}
		return nil
	})
}

// GetChapterContent returns the chapter's stored content, with empty
// sections when the chapter has not been populated yet.
func (s *courseService) GetChapterContent(ctx context.Context, chapterID string) (*dto.ChapterContentResponse, error) {
	chapter, err := s.courseRepo.GetChapter(ctx, chapterID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load chapter", err)
	}
	if chapter == nil {
		return nil, domain.NewChapterNotFoundError(chapterID)
	}

	resp := &dto.ChapterContentResponse{
		ChapterName: chapter.Name,
		Summary:     []domain.ContentSection{},
		KeyPoints:   []domain.ContentSection{},
	}

	content, err := s.courseRepo.GetChapterContent(ctx, chapterID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load chapter content", err)
	}
	if content != nil {
		if content.Summary != nil {
			resp.Summary = content.Summary
		}
		if content.KeyPoints != nil {
			resp.KeyPoints = content.KeyPoints
		}
	}
	return resp, nil
}
