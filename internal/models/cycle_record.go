package models

import "time"

const (
	FlowNone   = "none"
	FlowLight  = "light"
	FlowMedium = "medium"
	FlowHeavy  = "heavy"
)

const (
	MinPainLevel = 0
	MaxPainLevel = 10
)

type CycleRecord struct {
	ID            uint       `gorm:"primaryKey"`
	UserID        uint       `gorm:"not null;index"`
	StartDate     time.Time  `gorm:"type:date;not null;index"`
	EndDate       *time.Time `gorm:"type:date"`
	PainLevel     *int
	FlowIntensity string `gorm:"not null;default:none"`
	Notes         string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
