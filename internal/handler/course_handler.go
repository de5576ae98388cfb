package handler

import (
	"courseforge/internal/domain"
	"courseforge/internal/dto"
	"courseforge/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CourseHandler handles course and chapter HTTP requests
type CourseHandler struct {
	service service.CourseService
}

// NewCourseHandler creates a new CourseHandler instance
func NewCourseHandler(service service.CourseService) *CourseHandler {
	return &CourseHandler{
		service: service,
	}
}

// CreateCourse godoc
// @Summary Create a course
// @Description Generates a course outline for the given topic and persists the unit/chapter skeleton
// @Tags courses
// @Accept json
// @Produce json
// @Param request body dto.CreateCourseRequest true "Course topic"
// @Success 201 {object} dto.CreateCourseResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /courses [post]
func (h *CourseHandler) CreateCourse(c *fiber.Ctx) error {
	var req dto.CreateCourseRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}

	course, err := h.service.CreateCourse(c.Context(), &req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(dto.CreateCourseResponse{CourseID: course.ID})
}

// GetCourse godoc
// @Summary Get a course
// @Description Returns the course with its full unit and chapter tree
// @Tags courses
// @Produce json
// @Param courseId path string true "Course ID"
// @Success 200 {object} dto.CourseResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /courses/{courseId} [get]
func (h *CourseHandler) GetCourse(c *fiber.Ctx) error {
	courseID := c.Params("courseId")
	if courseID == "" {
		return domain.NewInvalidInputError("courseId is required")
	}

	course, err := h.service.GetCourse(c.Context(), courseID)
	if err != nil {
		return err
	}

	return c.JSON(dto.ToCourseResponse(course))
}

// GetChapterContent godoc
// @Summary Get chapter content
// @Description Returns the chapter's summary and key points, empty when the chapter is not populated yet
// @Tags chapters
// @Produce json
// @Param chapterId path string true "Chapter ID"
// @Success 200 {object} dto.ChapterContentResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /chapters/{chapterId}/content [get]
func (h *CourseHandler) GetChapterContent(c *fiber.Ctx) error {
	chapterID := c.Params("chapterId")
	if chapterID == "" {
		return domain.NewInvalidInputError("chapterId is required")
	}

	content, err := h.service.GetChapterContent(c.Context(), chapterID)
	if err != nil {
		return err
	}

	return c.JSON(content)
}

// PopulateChapter godoc
// @Summary Populate a chapter
// @Description Resolves the chapter's video and generates its content and quiz questions
// @Tags chapters
// @Produce json
// @Param chapterId path string true "Chapter ID"
// @Success 200 {object} dto.PopulateChapterResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /chapters/{chapterId}/populate [post]
func (h *CourseHandler) PopulateChapter(c *fiber.Ctx) error {
	chapterID := c.Params("chapterId")
	if chapterID == "" {
		return domain.NewInvalidInputError("chapterId is required")
	}

	if err := h.service.PopulateChapter(c.Context(), chapterID); err != nil {
		return err
	}

	return c.JSON(dto.PopulateChapterResponse{Success: true})
}
