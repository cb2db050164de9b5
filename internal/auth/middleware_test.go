package auth

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/employee-service/internal/domain"
	apperrors "github.com/spec-kit/employee-service/pkg/util"
)

func newTestApp(tokens *TokenManager) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var domainErr *apperrors.DomainError
			if errors.As(err, &domainErr) {
				return c.Status(domainErr.HTTPStatus).JSON(fiber.Map{"code": domainErr.Code})
			}
			return c.SendStatus(http.StatusInternalServerError)
		},
	})

	mw := NewMiddleware(tokens)
	app.Get("/admin-only", mw.Handle, RequireRole(domain.RoleAdmin), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})
	app.Get("/manager-only", mw.Handle, RequireRole(domain.RoleManager), func(c *fiber.Ctx) error {
		return c.SendStatus(http.StatusOK)
	})
	app.Get("/whoami", mw.Handle, RequireAuthenticated(), func(c *fiber.Ctx) error {
		identity, ok := IdentityFromContext(c)
		if !ok {
			return c.SendStatus(http.StatusInternalServerError)
		}
		return c.JSON(fiber.Map{"username": identity.Username, "user_id": identity.UserID})
	})
	return app
}

func issueToken(t *testing.T, tokens *TokenManager, username string, userID int64, role domain.Role) string {
	t.Helper()
	token, _, err := tokens.GenerateToken(username, userID, role)
	require.NoError(t, err)
	return token
}

func TestMiddlewareRejectsMissingHeader(t *testing.T) {
	app := newTestApp(NewTokenManager("unit-test-secret", 20))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/whoami", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareRejectsMalformedHeader(t *testing.T) {
	tokens := NewTokenManager("unit-test-secret", 20)
	app := newTestApp(tokens)
	token := issueToken(t, tokens, "alice", 1, domain.RoleAdmin)

	for _, header := range []string{"Basic " + token, token, "Bearer"} {
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", header)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "header %q", header)
	}
}

func TestMiddlewareRejectsInvalidToken(t *testing.T) {
	app := newTestApp(NewTokenManager("unit-test-secret", 20))

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestMiddlewareAcceptsValidToken(t *testing.T) {
	tokens := NewTokenManager("unit-test-secret", 20)
	app := newTestApp(tokens)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, tokens, "alice", 1, domain.RoleAdmin))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRequireRoleIsExactMatch(t *testing.T) {
	tokens := NewTokenManager("unit-test-secret", 20)
	app := newTestApp(tokens)

	cases := []struct {
		name       string
		role       domain.Role
		path       string
		wantStatus int
	}{
		{"admin on admin route", domain.RoleAdmin, "/admin-only", http.StatusOK},
		{"manager on manager route", domain.RoleManager, "/manager-only", http.StatusOK},
		{"admin does not satisfy manager", domain.RoleAdmin, "/manager-only", http.StatusForbidden},
		{"manager does not satisfy admin", domain.RoleManager, "/admin-only", http.StatusForbidden},
		{"employee denied on admin route", domain.RoleEmployee, "/admin-only", http.StatusForbidden},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.path, nil)
			req.Header.Set("Authorization", "Bearer "+issueToken(t, tokens, "caller", 9, tc.role))

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.wantStatus, resp.StatusCode)
		})
	}
}
