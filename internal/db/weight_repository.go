package db

import (
	"github.com/cyra-health/cyra/internal/models"
	"gorm.io/gorm"
)

type WeightRepository struct {
	database *gorm.DB
}

func NewWeightRepository(database *gorm.DB) *WeightRepository {
	return &WeightRepository{database: database}
}

func (repo *WeightRepository) ListRecentByUser(userID uint, limit int) ([]models.WeightEntry, error) {
	entries := make([]models.WeightEntry, 0, limit)
	query := repo.database.Where("user_id = ?", userID).Order("date DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *WeightRepository) Create(entry *models.WeightEntry) error {
	return repo.database.Create(entry).Error
}
