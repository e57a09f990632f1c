package api

import (
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/cyra-health/cyra/internal/chat"
	"github.com/cyra-health/cyra/internal/db"
	"github.com/cyra-health/cyra/internal/services"
)

const authTokenTTL = 7 * 24 * time.Hour

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	uploadDir    string
	assistant    *chat.Client
	photoRandom  services.RandomSource
	validate     *validator.Validate
	loginLimiter *attemptLimiter

	repositories *db.Repositories
	authService  *services.AuthService
	predictions  *services.PredictionService
	photoService *services.PhotoService
	riskService  *services.RiskService
}

type Config struct {
	Database  *gorm.DB
	Secret    string
	Location  *time.Location
	UploadDir string
	Assistant *chat.Client

	// PhotoRandom overrides the analyzer randomness; nil means system
	// randomness.
	PhotoRandom services.RandomSource
}

func NewHandler(config Config) *Handler {
	location := config.Location
	if location == nil {
		location = time.UTC
	}
	photoRandom := config.PhotoRandom
	if photoRandom == nil {
		photoRandom = services.SystemRandomSource()
	}

	handler := &Handler{
		db:           config.Database,
		secretKey:    []byte(config.Secret),
		location:     location,
		uploadDir:    config.UploadDir,
		assistant:    config.Assistant,
		photoRandom:  photoRandom,
		validate:     validator.New(),
		loginLimiter: newAttemptLimiter(),
	}
	return handler.withDependencies()
}

func (handler *Handler) withDependencies() *Handler {
	handler.repositories = db.NewRepositories(handler.db)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.predictions = services.NewPredictionService(handler.repositories.Cycles, handler.repositories.Symptoms)
	handler.photoService = services.NewPhotoService(handler.repositories.Photos)
	handler.riskService = services.NewRiskService(
		handler.repositories.Cycles,
		handler.repositories.Symptoms,
		handler.repositories.Weights,
		handler.photoService,
	)
	return handler
}

func (handler *Handler) now() time.Time {
	return time.Now().In(handler.location)
}
