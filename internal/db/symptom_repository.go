package db

import (
	"time"

	"github.com/cyra-health/cyra/internal/models"
	"gorm.io/gorm"
)

type SymptomRepository struct {
	database *gorm.DB
}

func NewSymptomRepository(database *gorm.DB) *SymptomRepository {
	return &SymptomRepository{database: database}
}

func (repo *SymptomRepository) ListByUser(userID uint) ([]models.SymptomRecord, error) {
	symptoms := make([]models.SymptomRecord, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&symptoms).Error; err != nil {
		return nil, err
	}
	return symptoms, nil
}

func (repo *SymptomRepository) ListByUserSince(userID uint, since time.Time) ([]models.SymptomRecord, error) {
	symptoms := make([]models.SymptomRecord, 0)
	if err := repo.database.
		Where("user_id = ? AND date >= ?", userID, since).
		Order("date DESC, id DESC").
		Find(&symptoms).Error; err != nil {
		return nil, err
	}
	return symptoms, nil
}

func (repo *SymptomRepository) Create(symptom *models.SymptomRecord) error {
	return repo.database.Create(symptom).Error
}

func (repo *SymptomRepository) DeleteByIDForUser(symptomID uint, userID uint) (bool, error) {
	result := repo.database.Where("id = ? AND user_id = ?", symptomID, userID).Delete(&models.SymptomRecord{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
