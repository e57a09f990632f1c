package db

import (
	"github.com/cyra-health/cyra/internal/models"
	"gorm.io/gorm"
)

type ChatRepository struct {
	database *gorm.DB
}

func NewChatRepository(database *gorm.DB) *ChatRepository {
	return &ChatRepository{database: database}
}

func (repo *ChatRepository) ListByUser(userID uint, limit int) ([]models.ChatMessage, error) {
	messages := make([]models.ChatMessage, 0)
	query := repo.database.Where("user_id = ?", userID).Order("created_at ASC, id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}

func (repo *ChatRepository) Create(message *models.ChatMessage) error {
	return repo.database.Create(message).Error
}
