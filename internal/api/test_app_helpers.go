package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/cyra-health/cyra/internal/chat"
	"github.com/cyra-health/cyra/internal/db"
	"github.com/cyra-health/cyra/internal/services"
)

func newTestApp(t *testing.T) (*fiber.App, *Handler) {
	t.Helper()
	return newTestAppWithAssistant(t, nil)
}

func newTestAppWithAssistant(t *testing.T, assistant *chat.Client) (*fiber.App, *Handler) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "cyra-test.db")
	database, err := db.OpenSQLite(databasePath)
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

	handler := NewHandler(Config{
		Database:    database,
		Secret:      "test-secret-key",
		UploadDir:   filepath.Join(t.TempDir(), "uploads"),
		Assistant:   assistant,
		PhotoRandom: services.SeededRandomSource(42),
	})

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	RegisterRoutes(app, handler)
	return app, handler
}

func jsonRequest(t *testing.T, method string, path string, token string, payload any) *http.Request {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal request payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request, err := http.NewRequest(method, path, body)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}
	return request
}

func decodeJSONBody(t *testing.T, response *http.Response, target any) {
	t.Helper()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		t.Fatalf("decode response body %q: %v", raw, err)
	}
}

func readAPIError(t *testing.T, response *http.Response) string {
	t.Helper()

	payload := map[string]string{}
	decodeJSONBody(t, response, &payload)
	return payload["error"]
}

// registerTestUser creates an account through the public API and returns the
// issued bearer token.
func registerTestUser(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	request := jsonRequest(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email":    email,
		"password": "Sufficient1pass",
	})
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("register request: %v", err)
	}
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("register returned status %d", response.StatusCode)
	}

	var payload struct {
		Token string `json:"token"`
	}
	decodeJSONBody(t, response, &payload)
	if payload.Token == "" {
		t.Fatal("register returned an empty token")
	}
	return payload.Token
}

func mustSucceed(t *testing.T, app *fiber.App, request *http.Request, wantStatus int) *http.Response {
	t.Helper()

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", request.Method, request.URL.Path, err)
	}
	if response.StatusCode != wantStatus {
		t.Fatalf("%s %s returned status %d, want %d", request.Method, request.URL.Path, response.StatusCode, wantStatus)
	}
	return response
}
