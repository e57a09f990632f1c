package services

import (
	"fmt"

	"github.com/cyra-health/cyra/internal/models"
)

const frequentSymptomThreshold = 3

// GetCycleInsights derives short advisory strings from a prediction and the
// user's symptom log. At most one pattern insight and one symptom-frequency
// insight are emitted.
func GetCycleInsights(prediction Prediction, symptoms []models.SymptomRecord) []string {
	insights := make([]string, 0, 2)

	switch prediction.Pattern {
	case PatternRegular:
		insights = append(insights, "Your cycles are regular. Keep logging to maintain prediction accuracy.")
	case PatternIrregular:
		insights = append(insights, "Your cycles show notable variation. Consider discussing this with a healthcare provider.")
	}

	if symptomType, count := mostFrequentSymptomType(symptoms); count >= frequentSymptomThreshold {
		insights = append(insights, fmt.Sprintf(
			"%s appears frequently in your log (%d times). Tracking when it occurs in your cycle may reveal a pattern.",
			symptomType, count))
	}

	return insights
}

// mostFrequentSymptomType ties break in favor of the type encountered first
// while counting.
func mostFrequentSymptomType(symptoms []models.SymptomRecord) (string, int) {
	counts := make(map[string]int, len(symptoms))
	order := make([]string, 0, len(symptoms))
	for _, symptom := range symptoms {
		if counts[symptom.SymptomType] == 0 {
			order = append(order, symptom.SymptomType)
		}
		counts[symptom.SymptomType]++
	}

	bestType := ""
	bestCount := 0
	for _, symptomType := range order {
		if counts[symptomType] > bestCount {
			bestType = symptomType
			bestCount = counts[symptomType]
		}
	}
	return bestType, bestCount
}
