package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"nexora-hcm/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, sub interface{}, role models.UserRole, secret string) string {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  sub,
		"role": string(role),
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.Nil(t, err)
	return signed
}

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Use(AuthorizationWithSecret(testSecret))
	app.Get("/whoami", func(ctx *fiber.Ctx) error {
		return ctx.SendString(GetUserID(ctx) + ":" + string(GetRole(ctx)))
	})
	app.Get("/admin-only", RoleRequired(models.UserRoleAdmin), func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusOK)
	})
	app.Get("/dashboard", DashboardEntry("/dashboard"))
	app.Get("/dashboard/admin", DashboardRedirect("/dashboard", models.UserRoleAdmin), func(ctx *fiber.Ctx) error {
		return ctx.SendString("admin")
	})
	app.Get("/dashboard/employee", DashboardRedirect("/dashboard", models.UserRoleEmployee), func(ctx *fiber.Ctx) error {
		return ctx.SendString("employee")
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, path, token string) (int, string) {
	req := httptest.NewRequest(fiber.MethodGet, path, nil)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req)
	require.Nil(t, err)
	return resp.StatusCode, resp.Header.Get(fiber.HeaderLocation)
}

func TestAuthorization(t *testing.T) {
	app := newTestApp()

	t.Run(`missing or foreign token`, func(t *testing.T) {
		status, _ := doRequest(t, app, "/whoami", "")
		require.Equal(t, fiber.StatusUnauthorized, status)
		status, _ = doRequest(t, app, "/whoami", signToken(t, "1", models.UserRoleAdmin, "other-secret"))
		require.Equal(t, fiber.StatusUnauthorized, status)
	})

	t.Run(`claims`, func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodGet, "/whoami", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+signToken(t, 42, models.UserRoleEmployee, testSecret))
		resp, err := app.Test(req)
		require.Nil(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		body := make([]byte, 64)
		n, _ := resp.Body.Read(body)
		require.Equal(t, "42:EMPLOYEE", string(body[:n]))
	})

	t.Run(`role required`, func(t *testing.T) {
		status, _ := doRequest(t, app, "/admin-only", signToken(t, "1", models.UserRoleEmployee, testSecret))
		require.Equal(t, fiber.StatusForbidden, status)
		status, _ = doRequest(t, app, "/admin-only", signToken(t, "1", models.UserRoleAdmin, testSecret))
		require.Equal(t, fiber.StatusOK, status)
	})
}

func TestDashboardRouting(t *testing.T) {
	app := newTestApp()
	admin := signToken(t, "1", models.UserRoleAdmin, testSecret)
	employee := signToken(t, "2", models.UserRoleEmployee, testSecret)

	t.Run(`entry redirects by role`, func(t *testing.T) {
		status, location := doRequest(t, app, "/dashboard", admin)
		require.Equal(t, fiber.StatusFound, status)
		require.Equal(t, "/dashboard/admin", location)

		status, location = doRequest(t, app, "/dashboard", employee)
		require.Equal(t, fiber.StatusFound, status)
		require.Equal(t, "/dashboard/employee", location)
	})

	t.Run(`foreign dashboard redirects to own`, func(t *testing.T) {
		status, location := doRequest(t, app, "/dashboard/admin", employee)
		require.Equal(t, fiber.StatusFound, status)
		require.Equal(t, "/dashboard/employee", location)

		status, location = doRequest(t, app, "/dashboard/employee", admin)
		require.Equal(t, fiber.StatusFound, status)
		require.Equal(t, "/dashboard/admin", location)

		status, _ = doRequest(t, app, "/dashboard/admin", admin)
		require.Equal(t, fiber.StatusOK, status)
	})

	t.Run(`unknown role`, func(t *testing.T) {
		status, _ := doRequest(t, app, "/dashboard", signToken(t, "3", "GUEST", testSecret))
		require.Equal(t, fiber.StatusForbidden, status)
	})
}
