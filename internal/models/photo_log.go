package models

import "time"

type PhotoLog struct {
	ID              uint    `gorm:"primaryKey"`
	UserID          uint    `gorm:"not null;index"`
	FileName        string  `gorm:"not null"`
	AcneCount       int     `gorm:"not null;default:0"`
	AcneSeverity    float64 `gorm:"not null;default:0"`
	FacialHairScore float64 `gorm:"not null;default:0"`
	SkinTexture     float64 `gorm:"not null;default:0"`
	Confidence      float64 `gorm:"not null;default:0"`
	CreatedAt       time.Time
}
