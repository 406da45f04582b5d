package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rafaeldias2025/oficial-27/internal/db"
	"github.com/rafaeldias2025/oficial-27/internal/i18n"
	"gorm.io/gorm"
)

const testSecretKey = "0123456789abcdef0123456789abcdef"

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	database := openTestDatabase(t)
	return newTestAppOn(t, database, time.UTC), database
}

func newTestAppOn(t *testing.T, database *gorm.DB, location *time.Location) *fiber.App {
	t.Helper()

	handler := newTestHandlerOn(t, database, location)
	app := fiber.New()
	app.Use(handler.LanguageMiddleware)
	RegisterRoutes(app, handler)
	app.Use(handler.NotFound)
	return app
}

func newTestHandler(t *testing.T) (*Handler, *gorm.DB) {
	t.Helper()

	database := openTestDatabase(t)
	return newTestHandlerOn(t, database, time.UTC), database
}

func openTestDatabase(t *testing.T) *gorm.DB {
	t.Helper()

	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "sonhos-api-test.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return database
}

func newTestHandlerOn(t *testing.T, database *gorm.DB, location *time.Location) *Handler {
	t.Helper()

	i18nManager, err := i18n.NewEmbeddedManager(i18n.LangPT)
	if err != nil {
		t.Fatalf("init i18n: %v", err)
	}

	handler, err := NewHandler(database, testSecretKey, location, i18nManager, HandlerOptions{RankingWindowDays: 7})
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}
	return handler
}

func doJSON(t *testing.T, app *fiber.App, method string, path string, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("encode request body: %v", err)
		}
		reader = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, reader)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	t.Cleanup(func() {
		_ = response.Body.Close()
	})
	return response
}

func decodeBody(t *testing.T, response *http.Response, target any) {
	t.Helper()
	if err := json.NewDecoder(response.Body).Decode(target); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func readAPIError(t *testing.T, response *http.Response) errorResponse {
	t.Helper()
	payload := errorResponse{}
	decodeBody(t, response, &payload)
	return payload
}

func expectStatus(t *testing.T, response *http.Response, want int) {
	t.Helper()
	if response.StatusCode != want {
		body, _ := io.ReadAll(response.Body)
		t.Fatalf("expected status %d, got %d: %s", want, response.StatusCode, string(body))
	}
}

func registerUser(t *testing.T, app *fiber.App, email string, name string) sessionResponse {
	t.Helper()

	response := doJSON(t, app, http.MethodPost, "/api/auth/register", "", registerInput{
		Email:    email,
		Password: "Senha123",
		Name:     name,
	})
	expectStatus(t, response, http.StatusCreated)

	session := sessionResponse{}
	decodeBody(t, response, &session)
	if session.Token == "" {
		t.Fatal("expected session token in register response")
	}
	return session
}

func responseCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, cookie := range cookies {
		if cookie != nil && cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func todayKey() string {
	return time.Now().UTC().Format("2006-01-02")
}
