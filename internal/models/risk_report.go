package models

import "time"

type RiskReport struct {
	ID           uint      `gorm:"primaryKey"`
	UserID       uint      `gorm:"not null;index"`
	Score        int       `gorm:"not null"`
	RiskLevel    string    `gorm:"not null"`
	Reasons      []string  `gorm:"serializer:json"`
	CalculatedAt time.Time `gorm:"not null"`
}
