package db

import "gorm.io/gorm"

type Repositories struct {
	Users    *UserRepository
	Cycles   *CycleRepository
	Symptoms *SymptomRepository
	Habits   *HabitRepository
	Photos   *PhotoRepository
	Weights  *WeightRepository
	Risks    *RiskReportRepository
	Chats    *ChatRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(database),
		Cycles:   NewCycleRepository(database),
		Symptoms: NewSymptomRepository(database),
		Habits:   NewHabitRepository(database),
		Photos:   NewPhotoRepository(database),
		Weights:  NewWeightRepository(database),
		Risks:    NewRiskReportRepository(database),
		Chats:    NewChatRepository(database),
	}
}
