package service

import (
	"context"
	"time"

	"courseforge/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockCourseRepository ---
type MockCourseRepository struct {
	mock.Mock
}

func (m *MockCourseRepository) CreateCourse(ctx context.Context, course *domain.Course) error {
	args := m.Called(ctx, course)
	return args.Error(0)
}

func (m *MockCourseRepository) GetCourse(ctx context.Context, id string) (*domain.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Course), args.Error(1)
}

func (m *MockCourseRepository) CreateUnit(ctx context.Context, unit *domain.Unit) error {
	args := m.Called(ctx, unit)
	return args.Error(0)
}

func (m *MockCourseRepository) GetUnit(ctx context.Context, id string) (*domain.Unit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Unit), args.Error(1)
}

func (m *MockCourseRepository) GetUnitByName(ctx context.Context, name string) (*domain.Unit, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Unit), args.Error(1)
}

func (m *MockCourseRepository) LockUnit(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCourseRepository) CreateChapter(ctx context.Context, chapter *domain.Chapter) error {
	args := m.Called(ctx, chapter)
	return args.Error(0)
}

func (m *MockCourseRepository) GetChapter(ctx context.Context, id string) (*domain.Chapter, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Chapter), args.Error(1)
}

func (m *MockCourseRepository) GetChapterByName(ctx context.Context, unitID, name string) (*domain.Chapter, error) {
	args := m.Called(ctx, unitID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Chapter), args.Error(1)
}

func (m *MockCourseRepository) UpdateChapterVideo(ctx context.Context, chapterID, videoID string) error {
	args := m.Called(ctx, chapterID, videoID)
	return args.Error(0)
}

func (m *MockCourseRepository) DeleteChapterData(ctx context.Context, chapterIDs []string) error {
	args := m.Called(ctx, chapterIDs)
	return args.Error(0)
}

func (m *MockCourseRepository) CreateQuestions(ctx context.Context, chapterID string, questions []*domain.Question) error {
	args := m.Called(ctx, chapterID, questions)
	return args.Error(0)
}

func (m *MockCourseRepository) DeleteQuestionsByChapter(ctx context.Context, chapterID string) error {
	args := m.Called(ctx, chapterID)
	return args.Error(0)
}

func (m *MockCourseRepository) UpsertChapterContent(ctx context.Context, content *domain.ChapterContent) error {
	args := m.Called(ctx, content)
	return args.Error(0)
}

func (m *MockCourseRepository) GetChapterContent(ctx context.Context, chapterID string) (*domain.ChapterContent, error) {
	args := m.Called(ctx, chapterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChapterContent), args.Error(1)
}

// --- MockQuizResultRepository ---
type MockQuizResultRepository struct {
	mock.Mock
}

func (m *MockQuizResultRepository) GetUnitQuizResult(ctx context.Context, userID, unitID string) (*domain.UnitQuizResult, error) {
	args := m.Called(ctx, userID, unitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UnitQuizResult), args.Error(1)
}

func (m *MockQuizResultRepository) UpsertUnitQuizResult(ctx context.Context, result *domain.UnitQuizResult) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

func (m *MockQuizResultRepository) UpsertChapterQuizResult(ctx context.Context, result *domain.ChapterQuizResult) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

// --- MockTransactionManager ---
// WithTransaction runs the given function inline so repository expectations
// inside the transaction can be asserted like any other call.
type MockTransactionManager struct {
	mock.Mock
	CommitErr error
}

func (m *MockTransactionManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.Called(ctx)
	if err := fn(ctx); err != nil {
		return err
	}
	return m.CommitErr
}

// --- MockChapterProposer ---
type MockChapterProposer struct {
	mock.Mock
}

func (m *MockChapterProposer) ProposeChapters(ctx context.Context, quizSummary []domain.ChapterQuizSummary, existing []*domain.Chapter) ([]domain.ProposedChapter, error) {
	args := m.Called(ctx, quizSummary, existing)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProposedChapter), args.Error(1)
}

// --- MockCourseOutliner ---
type MockCourseOutliner struct {
	mock.Mock
}

func (m *MockCourseOutliner) OutlineCourse(ctx context.Context, title string, unitCount int) ([]domain.ProposedUnit, error) {
	args := m.Called(ctx, title, unitCount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProposedUnit), args.Error(1)
}

// --- MockVideoResolver ---
type MockVideoResolver struct {
	mock.Mock
}

func (m *MockVideoResolver) ResolveVideo(ctx context.Context, searchQuery string) (string, error) {
	args := m.Called(ctx, searchQuery)
	return args.String(0), args.Error(1)
}

// --- MockTranscriptFetcher ---
type MockTranscriptFetcher struct {
	mock.Mock
}

func (m *MockTranscriptFetcher) FetchTranscript(ctx context.Context, videoID string) (string, error) {
	args := m.Called(ctx, videoID)
	return args.String(0), args.Error(1)
}

// --- MockContentExplainer ---
type MockContentExplainer struct {
	mock.Mock
}

func (m *MockContentExplainer) Explain(ctx context.Context, title, transcript string) (*domain.Explanation, error) {
	args := m.Called(ctx, title, transcript)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Explanation), args.Error(1)
}

// --- MockQuizGenerator ---
type MockQuizGenerator struct {
	mock.Mock
}

func (m *MockQuizGenerator) MakeQuiz(ctx context.Context, title, transcript string, count int) ([]domain.GeneratedQuestion, error) {
	args := m.Called(ctx, title, transcript, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GeneratedQuestion), args.Error(1)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
