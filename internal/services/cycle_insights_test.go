package services

import (
	"strings"
	"testing"

	"github.com/cyra-health/cyra/internal/models"
)

func symptomsOf(t *testing.T, day string, symptomTypes ...string) []models.SymptomRecord {
	t.Helper()

	date := mustParseDay(t, day)
	records := make([]models.SymptomRecord, 0, len(symptomTypes))
	for _, symptomType := range symptomTypes {
		records = append(records, models.SymptomRecord{Date: date, SymptomType: symptomType, Severity: 5})
	}
	return records
}

func TestGetCycleInsights_PatternAdvisories(t *testing.T) {
	t.Parallel()

	regular := GetCycleInsights(Prediction{Pattern: PatternRegular}, nil)
	if len(regular) != 1 || !strings.Contains(regular[0], "regular") {
		t.Fatalf("expected one regular-pattern insight, got %v", regular)
	}

	irregular := GetCycleInsights(Prediction{Pattern: PatternIrregular}, nil)
	if len(irregular) != 1 || !strings.Contains(irregular[0], "healthcare provider") {
		t.Fatalf("expected one irregular-pattern insight, got %v", irregular)
	}

	if insights := GetCycleInsights(Prediction{Pattern: PatternFairlyRegular}, nil); len(insights) != 0 {
		t.Fatalf("expected no insights for fairly_regular, got %v", insights)
	}
}

func TestGetCycleInsights_FrequentSymptom(t *testing.T) {
	t.Parallel()

	symptoms := symptomsOf(t, "2026-05-01",
		"headache", "cramps", "headache", "bloating", "headache")
	insights := GetCycleInsights(Prediction{Pattern: PatternFairlyRegular}, symptoms)
	if len(insights) != 1 {
		t.Fatalf("expected one frequency insight, got %v", insights)
	}
	if !strings.Contains(insights[0], "headache") || !strings.Contains(insights[0], "3 times") {
		t.Fatalf("expected insight naming headache with count 3, got %q", insights[0])
	}
}

func TestGetCycleInsights_FrequencyBelowThreshold(t *testing.T) {
	t.Parallel()

	symptoms := symptomsOf(t, "2026-05-01", "headache", "headache", "cramps")
	if insights := GetCycleInsights(Prediction{Pattern: PatternFairlyRegular}, symptoms); len(insights) != 0 {
		t.Fatalf("expected no insight for count below 3, got %v", insights)
	}
}

func TestGetCycleInsights_TieBrokenByFirstEncountered(t *testing.T) {
	t.Parallel()

	symptoms := symptomsOf(t, "2026-05-01",
		"cramps", "headache", "cramps", "headache", "cramps", "headache")
	insights := GetCycleInsights(Prediction{Pattern: PatternFairlyRegular}, symptoms)
	if len(insights) != 1 || !strings.Contains(insights[0], "cramps") {
		t.Fatalf("expected tie to resolve to cramps, got %v", insights)
	}
}
