package models

import "time"

type HabitLog struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;uniqueIndex:uidx_user_habit_date"`
	HabitType string    `gorm:"not null;uniqueIndex:uidx_user_habit_date"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:uidx_user_habit_date"`
	Completed bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
