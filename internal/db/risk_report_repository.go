package db

import (
	"github.com/cyra-health/cyra/internal/models"
	"gorm.io/gorm"
)

type RiskReportRepository struct {
	database *gorm.DB
}

func NewRiskReportRepository(database *gorm.DB) *RiskReportRepository {
	return &RiskReportRepository{database: database}
}

func (repo *RiskReportRepository) ListByUser(userID uint, limit int) ([]models.RiskReport, error) {
	reports := make([]models.RiskReport, 0)
	query := repo.database.Where("user_id = ?", userID).Order("calculated_at DESC, id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&reports).Error; err != nil {
		return nil, err
	}
	return reports, nil
}

func (repo *RiskReportRepository) Create(report *models.RiskReport) error {
	return repo.database.Create(report).Error
}
