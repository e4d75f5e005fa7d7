package auth

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

const testSecret = "unit-test-secret"

func signedToken(t *testing.T) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  "6f1c2a34-0000-4000-8000-000000000001",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	s, err := tok.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func authApp(checker func(string) (bool, error)) *fiber.App {
	app := fiber.New()
	app.Use(AuthJWT(AuthJWTOpts{Secret: testSecret, BlacklistChecker: checker}))
	app.Get("/me", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	return app
}

func request(t *testing.T, app *fiber.App, bearer string) int {
	t.Helper()
	req := httptest.NewRequest("GET", "/me", nil)
	if bearer != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+bearer)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp.StatusCode
}

func TestAuthJWTBlacklist(t *testing.T) {
	token := signedToken(t)

	cases := []struct {
		name    string
		checker func(string) (bool, error)
		want    int
	}{
		{
			name:    "clean token passes",
			checker: func(string) (bool, error) { return false, nil },
			want:    fiber.StatusOK,
		},
		{
			name:    "revoked token rejected",
			checker: func(string) (bool, error) { return true, nil },
			want:    fiber.StatusUnauthorized,
		},
		{
			name:    "checker outage fails closed",
			checker: func(string) (bool, error) { return false, errors.New("store down") },
			want:    fiber.StatusServiceUnavailable,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := request(t, authApp(tc.checker), token); got != tc.want {
				t.Fatalf("status = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestAuthJWTRejectsGarbage(t *testing.T) {
	app := authApp(nil)
	if got := request(t, app, ""); got != fiber.StatusUnauthorized {
		t.Fatalf("no token: status = %d, want 401", got)
	}
	if got := request(t, app, "not-a-jwt"); got != fiber.StatusUnauthorized {
		t.Fatalf("malformed token: status = %d, want 401", got)
	}
}
