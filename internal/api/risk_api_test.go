package api

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func logTestSymptom(t *testing.T, app *fiber.App, token string, date string, symptomType string) {
	t.Helper()
	mustSucceed(t, app, jsonRequest(t, http.MethodPost, "/api/symptoms", token, map[string]any{
		"date":         date,
		"symptom_type": symptomType,
		"severity":     5,
	}), http.StatusCreated)
}

func TestRiskAssessmentPersistsExplainableReport(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "risk@example.com")

	mustSucceed(t, app, jsonRequest(t, http.MethodPut, "/api/profile", token, map[string]any{
		"height_cm":               165.0,
		"family_history_diabetes": true,
	}), http.StatusOK)

	today := time.Now().UTC().Format("2006-01-02")
	logTestSymptom(t, app, token, today, "acne")
	logTestSymptom(t, app, token, today, "hair_loss")

	response := mustSucceed(t, app, jsonRequest(t, http.MethodPost, "/api/risk/assess", token, nil), http.StatusCreated)
	var report riskReportView
	decodeJSONBody(t, response, &report)

	if report.Score != 25 {
		t.Fatalf("expected score 25 (symptom pair + family history), got %d with reasons %v", report.Score, report.Reasons)
	}
	if report.RiskLevel != "LOW" {
		t.Fatalf("expected LOW risk level, got %s", report.RiskLevel)
	}
	if len(report.Reasons) != 2 {
		t.Fatalf("expected 2 reasons, got %v", report.Reasons)
	}
	if !strings.Contains(report.Reasons[0], "acne and hair_loss") {
		t.Fatalf("expected symptom pair reason first, got %v", report.Reasons)
	}
	if !strings.Contains(report.Reasons[1], "family history") {
		t.Fatalf("expected family history reason second, got %v", report.Reasons)
	}

	response = mustSucceed(t, app, jsonRequest(t, http.MethodGet, "/api/risk/latest", token, nil), http.StatusOK)
	var latest riskReportView
	decodeJSONBody(t, response, &latest)
	if latest.ID != report.ID || latest.Score != report.Score {
		t.Fatalf("latest report mismatch: %+v vs %+v", latest, report)
	}

	mustSucceed(t, app, jsonRequest(t, http.MethodPost, "/api/risk/assess", token, nil), http.StatusCreated)
	response = mustSucceed(t, app, jsonRequest(t, http.MethodGet, "/api/risk/history", token, nil), http.StatusOK)
	var history struct {
		Reports []riskReportView `json:"reports"`
	}
	decodeJSONBody(t, response, &history)
	if len(history.Reports) != 2 {
		t.Fatalf("expected 2 stored reports, got %d", len(history.Reports))
	}
}

func TestRiskLatestWithoutReports(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "norisk@example.com")

	response, err := app.Test(jsonRequest(t, http.MethodGet, "/api/risk/latest", token, nil), -1)
	if err != nil {
		t.Fatalf("risk latest request: %v", err)
	}
	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 without reports, got %d", response.StatusCode)
	}
}
