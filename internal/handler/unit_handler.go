package handler

import (
	"courseforge/internal/domain"
	"courseforge/internal/dto"
	"courseforge/internal/logger"
	"courseforge/internal/middleware"
	"courseforge/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// UnitHandler handles unit-level HTTP requests: quiz result submission,
// performance analysis and adaptive regeneration.
type UnitHandler struct {
	regeneration service.RegenerationService
	analysis     service.AnalysisService
	quizResults  service.QuizResultService
}

// NewUnitHandler creates a new UnitHandler instance
func NewUnitHandler(
	regeneration service.RegenerationService,
	analysis service.AnalysisService,
	quizResults service.QuizResultService,
) *UnitHandler {
	return &UnitHandler{
		regeneration: regeneration,
		analysis:     analysis,
		quizResults:  quizResults,
	}
}

func userIDFromLocals(c *fiber.Ctx) (string, error) {
	userID, ok := c.Locals(middleware.UserIDKey).(string)
	if !ok || userID == "" {
		return "", domain.NewUnauthorizedError("User identity missing from request context")
	}
	return userID, nil
}

// RegenerateUnit godoc
// @Summary Regenerate a unit's chapters
// @Description Replaces the unit's chapters with a new set tailored to the caller's quiz performance
// @Tags units
// @Produce json
// @Param unitId path string true "Unit ID"
// @Success 200 {object} dto.RegenerateUnitResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /units/{unitId}/regenerate [post]
func (h *UnitHandler) RegenerateUnit(c *fiber.Ctx) error {
	unitID := c.Params("unitId")
	if unitID == "" {
		return domain.NewInvalidInputError("unitId is required")
	}
	userID, err := userIDFromLocals(c)
	if err != nil {
		return err
	}

	unit, err := h.regeneration.RegenerateUnit(c.Context(), unitID, userID)
	if err != nil {
		return err
	}

	logger.Get().Info("Unit regenerated",
		zap.String("unit_id", unitID),
		zap.Int("chapters", len(unit.Chapters)),
	)

	return c.JSON(dto.RegenerateUnitResponse{
		Message: "Unit regenerated",
		Unit:    dto.ToUnitResponse(unit),
	})
}

// GetUnitAnalysis godoc
// @Summary Analyze quiz performance for a unit
// @Description Classifies each chapter as strength or weakness and recommends whether to regenerate
// @Tags units
// @Produce json
// @Param unitId path string true "Unit ID"
// @Success 200 {object} dto.AnalysisResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /units/{unitId}/analysis [get]
func (h *UnitHandler) GetUnitAnalysis(c *fiber.Ctx) error {
	unitID := c.Params("unitId")
	if unitID == "" {
		return domain.NewInvalidInputError("unitId is required")
	}
	userID, err := userIDFromLocals(c)
	if err != nil {
		return err
	}

	analysis, err := h.analysis.GetUnitAnalysis(c.Context(), unitID, userID)
	if err != nil {
		return err
	}

	return c.JSON(dto.AnalysisResponse{Analysis: analysis})
}

// SubmitQuizResults godoc
// @Summary Submit quiz results
// @Description Stores the caller's per-chapter quiz scores for a unit, replacing any previous submission
// @Tags quiz-results
// @Accept json
// @Produce json
// @Param request body dto.SubmitQuizResultsRequest true "Quiz results"
// @Success 200 {object} dto.SubmitQuizResultsResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Security BearerAuth
// @Router /quiz-results [post]
func (h *UnitHandler) SubmitQuizResults(c *fiber.Ctx) error {
	var req dto.SubmitQuizResultsRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	userID, err := userIDFromLocals(c)
	if err != nil {
		return err
	}

	if err := h.quizResults.SubmitQuizResults(c.Context(), userID, &req); err != nil {
		return err
	}

	return c.JSON(dto.SubmitQuizResultsResponse{Message: "Quiz results recorded"})
}
