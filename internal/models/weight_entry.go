package models

import "time"

type WeightEntry struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index"`
	Date      time.Time `gorm:"type:date;not null"`
	WeightKG  float64   `gorm:"not null"`
	CreatedAt time.Time
}
