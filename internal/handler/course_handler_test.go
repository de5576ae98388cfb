package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"courseforge/internal/domain"
	"courseforge/internal/dto"
	"courseforge/internal/handler"
	"courseforge/internal/middleware"
)

// Manual stub for the handler's service dependency.
type stubCourseService struct {
	CreateCourseFunc func(ctx context.Context, req *dto.CreateCourseRequest) (*domain.Course, error)
}

func (s *stubCourseService) CreateCourse(ctx context.Context, req *dto.CreateCourseRequest) (*domain.Course, error) {
	if s.CreateCourseFunc != nil {
		return s.CreateCourseFunc(ctx, req)
	}
	panic("CreateCourseFunc not set on stub")
}

func (s *stubCourseService) GetCourse(ctx context.Context, courseID string) (*domain.Course, error) {
	panic("not implemented in stub")
}

func (s *stubCourseService) PopulateChapter(ctx context.Context, chapterID string) error {
	panic("not implemented in stub")
}

func (s *stubCourseService) GetChapterContent(ctx context.Context, chapterID string) (*dto.ChapterContentResponse, error) {
	panic("not implemented in stub")
}

func TestCreateCourse_ReturnsCourseID(t *testing.T) {
	svc := &stubCourseService{
		CreateCourseFunc: func(ctx context.Context, req *dto.CreateCourseRequest) (*domain.Course, error) {
			assert.Equal(t, "Go Concurrency", req.Title)
			return &domain.Course{ID: "course-1", Name: req.Title}, nil
		},
	}

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Post("/courses", handler.NewCourseHandler(svc).CreateCourse)

	req := httptest.NewRequest("POST", "/courses", strings.NewReader(`{"title": "Go Concurrency"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)

	var parsed dto.CreateCourseResponse
	assert.NoError(t, json.Unmarshal(body, &parsed))
	assert.Equal(t, "course-1", parsed.CourseID)
}

func TestCreateCourse_InvalidBody(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	app.Post("/courses", handler.NewCourseHandler(&stubCourseService{}).CreateCourse)

	req := httptest.NewRequest("POST", "/courses", strings.NewReader(`{not json`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
