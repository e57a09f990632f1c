package models

import "time"

const (
	SymptomAcne     = "acne"
	SymptomHairLoss = "hair_loss"
)

type SymptomRecord struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"not null;index"`
	Date        time.Time `gorm:"type:date;not null;index"`
	SymptomType string    `gorm:"not null"`
	Severity    int       `gorm:"not null;default:0"`
	CreatedAt   time.Time
}
