package db

import (
	"github.com/cyra-health/cyra/internal/models"
	"gorm.io/gorm"
)

type CycleRepository struct {
	database *gorm.DB
}

func NewCycleRepository(database *gorm.DB) *CycleRepository {
	return &CycleRepository{database: database}
}

func (repo *CycleRepository) ListByUser(userID uint) ([]models.CycleRecord, error) {
	cycles := make([]models.CycleRecord, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("start_date DESC, id DESC").
		Find(&cycles).Error; err != nil {
		return nil, err
	}
	return cycles, nil
}

func (repo *CycleRepository) FindByIDForUser(cycleID uint, userID uint) (models.CycleRecord, error) {
	var cycle models.CycleRecord
	if err := repo.database.
		Where("id = ? AND user_id = ?", cycleID, userID).
		First(&cycle).Error; err != nil {
		return models.CycleRecord{}, err
	}
	return cycle, nil
}

func (repo *CycleRepository) Create(cycle *models.CycleRecord) error {
	return repo.database.Create(cycle).Error
}

func (repo *CycleRepository) Save(cycle *models.CycleRecord) error {
	return repo.database.Save(cycle).Error
}

func (repo *CycleRepository) DeleteByIDForUser(cycleID uint, userID uint) (bool, error) {
	result := repo.database.Where("id = ? AND user_id = ?", cycleID, userID).Delete(&models.CycleRecord{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
