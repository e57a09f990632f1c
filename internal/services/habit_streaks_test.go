package services

import (
	"testing"
	"time"

	"github.com/cyra-health/cyra/internal/models"
)

func habitLog(t *testing.T, habitType string, day string, completed bool) models.HabitLog {
	t.Helper()
	return models.HabitLog{HabitType: habitType, Date: mustParseDay(t, day), Completed: completed}
}

func TestHabitStreaks(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 6, 10, 15, 30, 0, 0, time.UTC)

	cases := []struct {
		name string
		logs []models.HabitLog
		want map[string]int
	}{
		{
			name: "three consecutive days",
			logs: []models.HabitLog{
				habitLog(t, "water", "2026-06-10", true),
				habitLog(t, "water", "2026-06-09", true),
				habitLog(t, "water", "2026-06-08", true),
				habitLog(t, "water", "2026-06-06", true),
			},
			want: map[string]int{"water": 3},
		},
		{
			name: "gap yesterday resets to one",
			logs: []models.HabitLog{
				habitLog(t, "water", "2026-06-10", true),
				habitLog(t, "water", "2026-06-08", true),
			},
			want: map[string]int{"water": 1},
		},
		{
			name: "no completion today means zero",
			logs: []models.HabitLog{
				habitLog(t, "water", "2026-06-09", true),
				habitLog(t, "water", "2026-06-08", true),
			},
			want: map[string]int{"water": 0},
		},
		{
			name: "incomplete logs are ignored",
			logs: []models.HabitLog{
				habitLog(t, "water", "2026-06-10", true),
				habitLog(t, "water", "2026-06-09", false),
				habitLog(t, "water", "2026-06-08", true),
			},
			want: map[string]int{"water": 1},
		},
		{
			name: "streaks are independent per habit",
			logs: []models.HabitLog{
				habitLog(t, "water", "2026-06-10", true),
				habitLog(t, "water", "2026-06-09", true),
				habitLog(t, "exercise", "2026-06-10", true),
				habitLog(t, "sleep", "2026-06-09", true),
			},
			want: map[string]int{"water": 2, "exercise": 1, "sleep": 0},
		},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			got := HabitStreaks(testCase.logs, now)
			if len(got) != len(testCase.want) {
				t.Fatalf("expected streaks %v, got %v", testCase.want, got)
			}
			for habitType, want := range testCase.want {
				if got[habitType] != want {
					t.Fatalf("expected %s streak %d, got %d", habitType, want, got[habitType])
				}
			}
		})
	}
}

func TestHabitStreaks_EmptyLog(t *testing.T) {
	t.Parallel()

	got := HabitStreaks(nil, time.Now())
	if len(got) != 0 {
		t.Fatalf("expected empty map, got %v", got)
	}
}
