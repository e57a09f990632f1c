package api

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func photoUploadRequest(t *testing.T, token string, fileName string, image []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("photo", fileName)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(image); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	request, err := http.NewRequest(http.MethodPost, "/api/photos", &body)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	request.Header.Set("Content-Type", writer.FormDataContentType())
	request.Header.Set("Authorization", "Bearer "+token)
	return request
}

func testImageBytes(size int, step byte) []byte {
	image := make([]byte, size)
	for index := range image {
		image[index] = byte(index) * step
	}
	return image
}

func uploadTestPhoto(t *testing.T, app *fiber.App, token string, image []byte) photoView {
	t.Helper()

	response := mustSucceed(t, app, photoUploadRequest(t, token, "face.jpg", image), http.StatusCreated)
	var payload struct {
		Photo photoView `json:"photo"`
	}
	decodeJSONBody(t, response, &payload)
	return payload.Photo
}

func TestPhotoUploadStoresFileAndFeatures(t *testing.T) {
	t.Parallel()

	app, handler := newTestApp(t)
	token := registerTestUser(t, app, "photo@example.com")

	photo := uploadTestPhoto(t, app, token, testImageBytes(1500, 3))

	if photo.AcneCount < 0 {
		t.Fatalf("negative acne count: %d", photo.AcneCount)
	}
	if photo.AcneSeverity < 0 || photo.AcneSeverity > 10 {
		t.Fatalf("acne severity out of range: %v", photo.AcneSeverity)
	}
	if photo.SkinTexture < 3 || photo.SkinTexture > 10 {
		t.Fatalf("skin texture out of range: %v", photo.SkinTexture)
	}
	if photo.Confidence < 0.70 || photo.Confidence > 0.85 {
		t.Fatalf("confidence out of range: %v", photo.Confidence)
	}

	entries, err := os.ReadDir(handler.uploadDir)
	if err != nil {
		t.Fatalf("read upload dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 stored file, got %d", len(entries))
	}
	if filepath.Ext(entries[0].Name()) != ".jpg" {
		t.Fatalf("stored file lost its extension: %s", entries[0].Name())
	}
}

func TestPhotoTrendRequiresTwoPhotos(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "trend@example.com")

	response, err := app.Test(jsonRequest(t, http.MethodGet, "/api/photos/trend", token, nil), -1)
	if err != nil {
		t.Fatalf("trend request: %v", err)
	}
	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 with no photos, got %d", response.StatusCode)
	}

	uploadTestPhoto(t, app, token, testImageBytes(1200, 5))
	uploadTestPhoto(t, app, token, testImageBytes(2000, 7))

	response = mustSucceed(t, app, jsonRequest(t, http.MethodGet, "/api/photos/trend", token, nil), http.StatusOK)
	var trend struct {
		AcneTrend    string `json:"acne_trend"`
		OverallTrend string `json:"overall_trend"`
	}
	decodeJSONBody(t, response, &trend)

	valid := map[string]bool{"increasing": true, "decreasing": true, "stable": true}
	if !valid[trend.AcneTrend] {
		t.Fatalf("unexpected acne trend %q", trend.AcneTrend)
	}
	if !valid[trend.OverallTrend] {
		t.Fatalf("unexpected overall trend %q", trend.OverallTrend)
	}

	response = mustSucceed(t, app, jsonRequest(t, http.MethodGet, "/api/photos", token, nil), http.StatusOK)
	var listing struct {
		Photos []photoView `json:"photos"`
	}
	decodeJSONBody(t, response, &listing)
	if len(listing.Photos) != 2 {
		t.Fatalf("expected 2 photos, got %d", len(listing.Photos))
	}
}

func TestPhotoUploadRejectsBadInput(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	token := registerTestUser(t, app, "badphoto@example.com")

	response, err := app.Test(photoUploadRequest(t, token, "notes.txt", testImageBytes(100, 1)), -1)
	if err != nil {
		t.Fatalf("upload request: %v", err)
	}
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for unsupported extension, got %d", response.StatusCode)
	}

	response, err = app.Test(jsonRequest(t, http.MethodPost, "/api/photos", token, nil), -1)
	if err != nil {
		t.Fatalf("upload request: %v", err)
	}
	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing file, got %d", response.StatusCode)
	}
}
