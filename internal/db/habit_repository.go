package db

import (
	"time"

	"github.com/cyra-health/cyra/internal/models"
	"gorm.io/gorm"
)

type HabitRepository struct {
	database *gorm.DB
}

func NewHabitRepository(database *gorm.DB) *HabitRepository {
	return &HabitRepository{database: database}
}

func (repo *HabitRepository) ListByUser(userID uint) ([]models.HabitLog, error) {
	logs := make([]models.HabitLog, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

// Upsert keeps one log per (user, habit, day), replacing the completed flag
// on conflict.
func (repo *HabitRepository) Upsert(entry *models.HabitLog) error {
	var existing models.HabitLog
	result := repo.database.
		Where("user_id = ? AND habit_type = ? AND date = ?", entry.UserID, entry.HabitType, entry.Date).
		Limit(1).
		Find(&existing)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repo.database.Create(entry).Error
	}

	existing.Completed = entry.Completed
	existing.UpdatedAt = time.Now()
	if err := repo.database.Save(&existing).Error; err != nil {
		return err
	}
	*entry = existing
	return nil
}
