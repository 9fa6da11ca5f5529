package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestLoginReturnsUserAndSetsCookie(t *testing.T) {
	app, _ := newTestApp(t)

	response := performJSON(t, app, http.MethodPost, "/api/auth/login", fiber.Map{
		"email":    "user@company.com",
		"password": "password123",
	}, "")

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	if responseCookieValue(response.Cookies(), authCookieName) == "" {
		t.Fatal("expected auth cookie in login response")
	}

	var payload struct {
		User struct {
			Email string `json:"email"`
			Name  string `json:"name"`
			Role  string `json:"role"`
		} `json:"user"`
		Token string `json:"token"`
	}
	decodeJSONBody(t, response, &payload)

	if payload.User.Email != "user@company.com" || payload.User.Name != "John Doe" {
		t.Fatalf("unexpected user in login response: %+v", payload.User)
	}
	if payload.User.Role != "user" {
		t.Fatalf("expected role user, got %q", payload.User.Role)
	}
	if payload.Token == "" {
		t.Fatal("expected session token in login response")
	}
}

func TestLoginDoesNotExposePasswordHash(t *testing.T) {
	app, _ := newTestApp(t)

	response := performJSON(t, app, http.MethodPost, "/api/auth/login", fiber.Map{
		"email":    "user@company.com",
		"password": "password123",
	}, "")

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	var raw map[string]any
	decodeJSONBody(t, response, &raw)
	user, ok := raw["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user object, got %T", raw["user"])
	}
	for key := range user {
		if strings.Contains(key, "password") {
			t.Fatalf("login response leaks field %q", key)
		}
	}
}

func TestLoginAcceptsUnnormalizedEmail(t *testing.T) {
	app, _ := newTestApp(t)

	cookie := loginAs(t, app, "  USER@Company.COM  ", "password123")
	if cookie == "" {
		t.Fatal("expected login with unnormalized email to succeed")
	}
}

func TestLoginRejectsBadRequests(t *testing.T) {
	app, _ := newTestApp(t)

	tests := []struct {
		name       string
		email      string
		password   string
		wantStatus int
	}{
		{name: "wrong password", email: "user@company.com", password: "nope", wantStatus: http.StatusUnauthorized},
		{name: "unknown email", email: "ghost@company.com", password: "password123", wantStatus: http.StatusUnauthorized},
		{name: "missing email", email: "", password: "password123", wantStatus: http.StatusBadRequest},
		{name: "missing password", email: "user@company.com", password: "", wantStatus: http.StatusBadRequest},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			response := performJSON(t, app, http.MethodPost, "/api/auth/login", fiber.Map{
				"email":    test.email,
				"password": test.password,
			}, "")
			defer response.Body.Close()

			if response.StatusCode != test.wantStatus {
				t.Fatalf("expected status %d, got %d", test.wantStatus, response.StatusCode)
			}
		})
	}
}

func TestLoginIssuesDistinctTokens(t *testing.T) {
	app, _ := newTestApp(t)

	first := loginAs(t, app, "user@company.com", "password123")
	second := loginAs(t, app, "user@company.com", "password123")

	if first == second {
		t.Fatal("expected back-to-back logins to issue distinct tokens")
	}
}

func TestMeRequiresAuthentication(t *testing.T) {
	app, _ := newTestApp(t)

	response := performJSON(t, app, http.MethodGet, "/api/auth/me", nil, "")
	defer response.Body.Close()
	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without cookie, got %d", response.StatusCode)
	}

	cookie := loginAs(t, app, "admin@company.com", "admin123")
	authed := performJSON(t, app, http.MethodGet, "/api/auth/me", nil, cookie)
	if authed.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200 with cookie, got %d", authed.StatusCode)
	}

	var payload struct {
		User struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}
	decodeJSONBody(t, authed, &payload)
	if payload.User.Email != "admin@company.com" || payload.User.Role != "admin" {
		t.Fatalf("unexpected identity: %+v", payload.User)
	}
}

func TestMeRejectsTamperedToken(t *testing.T) {
	app, _ := newTestApp(t)

	cookie := loginAs(t, app, "user@company.com", "password123")
	tampered := cookie + "xx"

	response := performJSON(t, app, http.MethodGet, "/api/auth/me", nil, tampered)
	defer response.Body.Close()
	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected status 401 for tampered token, got %d", response.StatusCode)
	}
}

func TestLogoutClearsCookieAndIsIdempotent(t *testing.T) {
	app, _ := newTestApp(t)

	cookie := loginAs(t, app, "user@company.com", "password123")

	response := performJSON(t, app, http.MethodPost, "/api/auth/logout", nil, cookie)
	defer response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	var cleared *http.Cookie
	for _, candidate := range response.Cookies() {
		if candidate.Name == authCookieName {
			cleared = candidate
		}
	}
	if cleared == nil {
		t.Fatal("expected logout to rewrite the auth cookie")
	}
	if cleared.Value != "" {
		t.Fatalf("expected cleared cookie value, got %q", cleared.Value)
	}

	again := performJSON(t, app, http.MethodPost, "/api/auth/logout", nil, "")
	defer again.Body.Close()
	if again.StatusCode != http.StatusOK {
		t.Fatalf("expected logout without session to succeed, got %d", again.StatusCode)
	}
}
