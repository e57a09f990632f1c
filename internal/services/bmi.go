package services

import (
	"math"

	"github.com/cyra-health/cyra/internal/models"
)

// bmiTrendDeltaKG is the minimum weight movement between the two most recent
// entries before the trend stops reading as stable.
const bmiTrendDeltaKG = 0.5

// BMIFromWeight computes body mass index from kilograms and centimeters,
// rounded to one decimal. Zero when either measurement is missing.
func BMIFromWeight(weightKG float64, heightCM float64) float64 {
	if weightKG <= 0 || heightCM <= 0 {
		return 0
	}
	heightM := heightCM / 100
	return math.Round(weightKG/(heightM*heightM)*10) / 10
}

// BMITrendFromEntries expects weight entries ordered most recent first and
// classifies the movement between the two latest measurements.
func BMITrendFromEntries(entries []models.WeightEntry) string {
	if len(entries) < 2 {
		return BMITrendStable
	}

	delta := entries[0].WeightKG - entries[1].WeightKG
	switch {
	case delta > bmiTrendDeltaKG:
		return BMITrendIncreasing
	case delta < -bmiTrendDeltaKG:
		return BMITrendDecreasing
	default:
		return BMITrendStable
	}
}
