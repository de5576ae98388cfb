package middleware_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"courseforge/internal/domain"
	"courseforge/internal/middleware"
)

func errorApp(handlerErr error) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
	})
	app.Get("/fail", func(c *fiber.Ctx) error {
		return handlerErr
	})
	return app
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "Unit Not Found",
			err:            domain.NewUnitNotFoundError("unit-1"),
			expectedStatus: fiber.StatusNotFound,
			expectedCode:   string(domain.CodeUnitNotFound),
		},
		{
			name:           "Quiz Result Not Found",
			err:            domain.NewQuizResultNotFoundError("unit-1"),
			expectedStatus: fiber.StatusNotFound,
			expectedCode:   string(domain.CodeQuizResultNotFound),
		},
		{
			name:           "Validation",
			err:            domain.NewValidationError("title cannot be empty"),
			expectedStatus: fiber.StatusBadRequest,
			expectedCode:   string(domain.CodeValidation),
		},
		{
			name:           "Unauthorized",
			err:            domain.NewUnauthorizedError("missing user"),
			expectedStatus: fiber.StatusUnauthorized,
			expectedCode:   string(domain.CodeUnauthorized),
		},
		{
			name:           "Provider Failure",
			err:            domain.NewProviderError("chapter proposal failed", errors.New("timeout")),
			expectedStatus: fiber.StatusServiceUnavailable,
			expectedCode:   string(domain.CodeProviderError),
		},
		{
			name:           "Consistency Violation",
			err:            domain.NewConsistencyError("unit-1", errors.New("commit failed")),
			expectedStatus: fiber.StatusInternalServerError,
			expectedCode:   string(domain.CodeConsistencyError),
		},
		{
			name:           "Fiber Error Passthrough",
			err:            fiber.ErrMethodNotAllowed,
			expectedStatus: fiber.StatusMethodNotAllowed,
			expectedCode:   "HTTP_ERROR",
		},
		{
			name:           "Unknown Error",
			err:            errors.New("something broke"),
			expectedStatus: fiber.StatusInternalServerError,
			expectedCode:   string(domain.CodeInternal),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := errorApp(tt.err)

			resp, err := app.Test(httptest.NewRequest("GET", "/fail", nil))
			assert.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			body, err := io.ReadAll(resp.Body)
			assert.NoError(t, err)

			var parsed middleware.ErrorResponse
			assert.NoError(t, json.Unmarshal(body, &parsed))
			assert.Equal(t, tt.expectedCode, parsed.Code)
			assert.Equal(t, tt.expectedStatus, parsed.Status)
		})
	}
}
