package api

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/cyra-health/cyra/internal/models"
	"github.com/cyra-health/cyra/internal/services"
)

const (
	photoHistoryLimit = 30
	maxPhotoBytes     = 10 << 20
)

var allowedPhotoExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

type photoView struct {
	ID              uint    `json:"id"`
	CreatedAt       string  `json:"created_at"`
	AcneCount       int     `json:"acne_count"`
	AcneSeverity    float64 `json:"acne_severity"`
	FacialHairScore float64 `json:"facial_hair_score"`
	SkinTexture     float64 `json:"skin_texture"`
	Confidence      float64 `json:"confidence"`
}

func viewForPhoto(entry models.PhotoLog) photoView {
	return photoView{
		ID:              entry.ID,
		CreatedAt:       entry.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		AcneCount:       entry.AcneCount,
		AcneSeverity:    entry.AcneSeverity,
		FacialHairScore: entry.FacialHairScore,
		SkinTexture:     entry.SkinTexture,
		Confidence:      entry.Confidence,
	}
}

// UploadPhoto stores the image under a generated name, analyzes it and
// persists the extracted feature vector alongside.
func (handler *Handler) UploadPhoto(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "photo file is required")
	}
	if fileHeader.Size > maxPhotoBytes {
		return apiError(c, fiber.StatusRequestEntityTooLarge, "photo exceeds the 10MB limit")
	}

	extension := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedPhotoExtensions[extension] {
		return apiError(c, fiber.StatusBadRequest, "photo must be a jpg, jpeg, png or webp file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "failed to read photo")
	}
	defer file.Close()

	image, err := io.ReadAll(io.LimitReader(file, maxPhotoBytes+1))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "failed to read photo")
	}
	if len(image) > maxPhotoBytes {
		return apiError(c, fiber.StatusRequestEntityTooLarge, "photo exceeds the 10MB limit")
	}

	features := services.AnalyzePhoto(image, handler.photoRandom)
	if features == nil {
		return apiError(c, fiber.StatusBadRequest, "photo is empty")
	}

	fileName := uuid.NewString() + extension
	if err := os.MkdirAll(handler.uploadDir, 0o755); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to store photo")
	}
	if err := os.WriteFile(filepath.Join(handler.uploadDir, fileName), image, 0o644); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to store photo")
	}

	entry := models.PhotoLog{
		UserID:          user.ID,
		FileName:        fileName,
		AcneCount:       features.AcneCount,
		AcneSeverity:    features.AcneSeverity,
		FacialHairScore: features.FacialHairScore,
		SkinTexture:     features.SkinTexture,
		Confidence:      features.Confidence,
	}
	if err := handler.repositories.Photos.Create(&entry); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to store photo")
	}

	trend, err := handler.photoService.LatestTrend(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to compute trend")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"photo": viewForPhoto(entry),
		"trend": trend,
	})
}

func (handler *Handler) ListPhotos(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	photos, err := handler.repositories.Photos.ListRecentByUser(user.ID, photoHistoryLimit)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load photos")
	}

	views := make([]photoView, 0, len(photos))
	for _, entry := range photos {
		views = append(views, viewForPhoto(entry))
	}
	return c.JSON(fiber.Map{"photos": views})
}

func (handler *Handler) GetPhotoTrend(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	trend, err := handler.photoService.LatestTrend(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to compute trend")
	}
	if trend == nil {
		return apiError(c, fiber.StatusNotFound, "at least two photos are required for a trend")
	}
	return c.JSON(trend)
}
