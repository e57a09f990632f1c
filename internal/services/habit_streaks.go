package services

import (
	"time"

	"github.com/cyra-health/cyra/internal/models"
)

// HabitStreaks counts, per habit type, the run of consecutive completed days
// ending today. A habit without a completion today has streak zero even if
// it was completed yesterday.
func HabitStreaks(logs []models.HabitLog, now time.Time) map[string]int {
	completedDays := make(map[string]map[string]bool)
	for _, entry := range logs {
		if !entry.Completed {
			continue
		}
		day := dateOnly(entry.Date).Format("2006-01-02")
		byDay := completedDays[entry.HabitType]
		if byDay == nil {
			byDay = make(map[string]bool)
			completedDays[entry.HabitType] = byDay
		}
		byDay[day] = true
	}

	today := dateOnly(now)
	streaks := make(map[string]int, len(completedDays))
	for habitType, byDay := range completedDays {
		streak := 0
		for day := today; byDay[day.Format("2006-01-02")]; day = day.AddDate(0, 0, -1) {
			streak++
		}
		streaks[habitType] = streak
	}
	return streaks
}
