package api

import (
	"net/http"
	"testing"
)

func TestRegisterLoginAndProfileFlow(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "flow@example.com")

	response := mustSucceed(t, app, jsonRequest(t, http.MethodGet, "/api/profile", token, nil), http.StatusOK)
	var profile userView
	decodeJSONBody(t, response, &profile)
	if profile.Email != "flow@example.com" {
		t.Fatalf("unexpected profile email %q", profile.Email)
	}

	response = mustSucceed(t, app, jsonRequest(t, http.MethodPut, "/api/profile", token, map[string]any{
		"height_cm":               170.0,
		"family_history_diabetes": true,
	}), http.StatusOK)
	decodeJSONBody(t, response, &profile)
	if profile.HeightCM != 170 || !profile.FamilyHistoryDiabetes {
		t.Fatalf("profile update not applied: %+v", profile)
	}

	response = mustSucceed(t, app, jsonRequest(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "Flow@Example.com",
		"password": "Sufficient1pass",
	}), http.StatusOK)
	var login struct {
		Token string   `json:"token"`
		User  userView `json:"user"`
	}
	decodeJSONBody(t, response, &login)
	if login.Token == "" {
		t.Fatal("login returned an empty token")
	}
	if login.User.HeightCM != 170 {
		t.Fatalf("login returned stale profile: %+v", login.User)
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	registerTestUser(t, app, "dup@example.com")

	response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email":    "dup@example.com",
		"password": "Sufficient1pass",
	}), -1)
	if err != nil {
		t.Fatalf("register request: %v", err)
	}
	if response.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d", response.StatusCode)
	}
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/register", "", map[string]any{
		"email":    "weak@example.com",
		"password": "short",
	}), -1)
	if err != nil {
		t.Fatalf("register request: %v", err)
	}
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for weak password, got %d", response.StatusCode)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	registerTestUser(t, app, "locked@example.com")

	response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "locked@example.com",
		"password": "Wrong1password",
	}), -1)
	if err != nil {
		t.Fatalf("login request: %v", err)
	}
	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong password, got %d", response.StatusCode)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)

	paths := []string{"/api/profile", "/api/cycles", "/api/predictions/next", "/api/risk/history"}
	for _, path := range paths {
		response, err := app.Test(jsonRequest(t, http.MethodGet, path, "", nil), -1)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		if response.StatusCode != http.StatusUnauthorized {
			t.Fatalf("GET %s without token returned %d, want 401", path, response.StatusCode)
		}
	}

	response, err := app.Test(jsonRequest(t, http.MethodGet, "/api/profile", "not-a-jwt", nil), -1)
	if err != nil {
		t.Fatalf("GET /api/profile: %v", err)
	}
	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("garbage token returned %d, want 401", response.StatusCode)
	}
}

func TestChangePasswordFlow(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "rotate@example.com")

	response, err := app.Test(jsonRequest(t, http.MethodPost, "/api/settings/change-password", token, map[string]any{
		"current_password": "Wrong1password",
		"new_password":     "Another1pass",
	}), -1)
	if err != nil {
		t.Fatalf("change password request: %v", err)
	}
	if response.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong current password, got %d", response.StatusCode)
	}

	mustSucceed(t, app, jsonRequest(t, http.MethodPost, "/api/settings/change-password", token, map[string]any{
		"current_password": "Sufficient1pass",
		"new_password":     "Another1pass",
	}), http.StatusOK)

	mustSucceed(t, app, jsonRequest(t, http.MethodPost, "/api/auth/login", "", map[string]any{
		"email":    "rotate@example.com",
		"password": "Another1pass",
	}), http.StatusOK)
}
