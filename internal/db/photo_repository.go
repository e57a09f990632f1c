package db

import (
	"github.com/cyra-health/cyra/internal/models"
	"gorm.io/gorm"
)

type PhotoRepository struct {
	database *gorm.DB
}

func NewPhotoRepository(database *gorm.DB) *PhotoRepository {
	return &PhotoRepository{database: database}
}

func (repo *PhotoRepository) ListRecentByUser(userID uint, limit int) ([]models.PhotoLog, error) {
	photos := make([]models.PhotoLog, 0, limit)
	query := repo.database.Where("user_id = ?", userID).Order("created_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&photos).Error; err != nil {
		return nil, err
	}
	return photos, nil
}

func (repo *PhotoRepository) Create(photo *models.PhotoLog) error {
	return repo.database.Create(photo).Error
}
