package middleware_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"courseforge/internal/middleware"
)

const testSecret = "test-secret"

func signedToken(t *testing.T, secret string, claims jwt.RegisteredClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func protectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", middleware.Protected(testSecret), func(c *fiber.Ctx) error {
		userID, _ := c.Locals(middleware.UserIDKey).(string)
		return c.JSON(fiber.Map{"user_id": userID})
	})
	return app
}

func TestProtected(t *testing.T) {
	validClaims := jwt.RegisteredClaims{
		Subject:   "user-123",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
	}

	tests := []struct {
		name           string
		authHeader     string
		expectedStatus int
		expectedCode   string
		expectedUserID string
	}{
		{
			name:           "Valid Token",
			authHeader:     "Bearer " + signedToken(t, testSecret, validClaims),
			expectedStatus: fiber.StatusOK,
			expectedUserID: "user-123",
		},
		{
			name:           "Missing Header",
			authHeader:     "",
			expectedStatus: fiber.StatusUnauthorized,
			expectedCode:   "MISSING_AUTH_HEADER",
		},
		{
			name:           "Wrong Scheme",
			authHeader:     "Basic dXNlcjpwYXNz",
			expectedStatus: fiber.StatusUnauthorized,
			expectedCode:   "INVALID_AUTH_SCHEME",
		},
		{
			name:           "Wrong Secret",
			authHeader:     "Bearer " + signedToken(t, "other-secret", validClaims),
			expectedStatus: fiber.StatusUnauthorized,
			expectedCode:   "INVALID_TOKEN",
		},
		{
			name: "Expired Token",
			authHeader: "Bearer " + signedToken(t, testSecret, jwt.RegisteredClaims{
				Subject:   "user-123",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-1 * time.Hour)),
			}),
			expectedStatus: fiber.StatusUnauthorized,
			expectedCode:   "INVALID_TOKEN",
		},
		{
			name: "Missing Subject",
			authHeader: "Bearer " + signedToken(t, testSecret, jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
			}),
			expectedStatus: fiber.StatusUnauthorized,
			expectedCode:   "INVALID_TOKEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := protectedApp()

			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set(middleware.AuthorizationHeader, tt.authHeader)
			}

			resp, err := app.Test(req)
			assert.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.expectedStatus, resp.StatusCode)

			body, err := io.ReadAll(resp.Body)
			assert.NoError(t, err)

			if tt.expectedStatus == fiber.StatusOK {
				var parsed map[string]string
				assert.NoError(t, json.Unmarshal(body, &parsed))
				assert.Equal(t, tt.expectedUserID, parsed["user_id"])
			} else {
				var parsed middleware.ErrorResponse
				assert.NoError(t, json.Unmarshal(body, &parsed))
				assert.Equal(t, tt.expectedCode, parsed.Code)
			}
		})
	}
}
