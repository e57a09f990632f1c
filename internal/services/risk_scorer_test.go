package services

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestCalculateRiskScore_RubricCase(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	input := RiskInput{
		AvgCycleLength:    intPtr(50),
		SymptomTypes:      []string{"acne", "hair_loss", "bloating", "fatigue"},
		PainSpikeDetected: true,
	}

	result, err := CalculateRiskScore(input, now)
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}

	if result.Score != 70 {
		t.Fatalf("expected score 70 (30+15+10+15), got %d", result.Score)
	}
	if result.RiskLevel != RiskLevelHigh {
		t.Fatalf("expected HIGH, got %s", result.RiskLevel)
	}
	if !result.CalculatedAt.Equal(now) {
		t.Fatalf("expected calculatedAt %s, got %s", now, result.CalculatedAt)
	}

	if len(result.Reasons) != 4 {
		t.Fatalf("expected exactly 4 reasons, got %v", result.Reasons)
	}
	ordered := []string{"irregular cycles", "acne and hair_loss", "4 distinct symptom", "pain levels spiking"}
	for i, fragment := range ordered {
		if !strings.Contains(result.Reasons[i], fragment) {
			t.Fatalf("expected reason %d to contain %q, got %q", i, fragment, result.Reasons[i])
		}
	}
}

func TestCalculateRiskScore_ScoreClamped(t *testing.T) {
	t.Parallel()

	input := RiskInput{
		AvgCycleLength:        intPtr(50),
		SymptomTypes:          []string{"acne", "hair_loss", "bloating", "fatigue"},
		PainSpikeDetected:     true,
		CurrentBMI:            27,
		BMITrend:              BMITrendIncreasing,
		FamilyHistoryDiabetes: true,
		Photo:                 &PhotoContribution{Score: 40, Reasons: []string{"photo analysis indicates severe acne"}},
	}

	result, err := CalculateRiskScore(input, time.Now())
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if result.Score != 100 {
		t.Fatalf("expected clamped score 100, got %d", result.Score)
	}
	if result.RiskLevel != RiskLevelHigh {
		t.Fatalf("expected HIGH, got %s", result.RiskLevel)
	}
}

func TestCalculateRiskScore_FactorExclusivity(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		input     RiskInput
		wantScore int
	}{
		{name: "slightly irregular tier", input: RiskInput{AvgCycleLength: intPtr(40)}, wantScore: 20},
		{name: "normal cycle length", input: RiskInput{AvgCycleLength: intPtr(28)}, wantScore: 0},
		{name: "bmi rising above 25", input: RiskInput{CurrentBMI: 26, BMITrend: BMITrendIncreasing}, wantScore: 20},
		{name: "bmi above 30 without rise", input: RiskInput{CurrentBMI: 32, BMITrend: BMITrendStable}, wantScore: 15},
		{name: "bmi rising above 30 fires only one", input: RiskInput{CurrentBMI: 32, BMITrend: BMITrendIncreasing}, wantScore: 20},
		{name: "high average pain without spike", input: RiskInput{AvgPainLevel: 8}, wantScore: 10},
		{name: "spike shadows average pain", input: RiskInput{AvgPainLevel: 8, PainSpikeDetected: true}, wantScore: 15},
		{name: "duplicate symptom types counted once", input: RiskInput{SymptomTypes: []string{"acne", "acne", "acne", "acne"}}, wantScore: 0},
		{name: "family history", input: RiskInput{FamilyHistoryDiabetes: true}, wantScore: 10},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			result, err := CalculateRiskScore(testCase.input, time.Now())
			if err != nil {
				t.Fatalf("calculate: %v", err)
			}
			if result.Score != testCase.wantScore {
				t.Fatalf("expected score %d, got %d (reasons %v)", testCase.wantScore, result.Score, result.Reasons)
			}
		})
	}
}

func TestCalculateRiskScore_NoReasonForZeroFactor(t *testing.T) {
	t.Parallel()

	result, err := CalculateRiskScore(RiskInput{FamilyHistoryDiabetes: true}, time.Now())
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if len(result.Reasons) != 1 {
		t.Fatalf("expected a single reason, got %v", result.Reasons)
	}
	if result.RiskLevel != RiskLevelLow {
		t.Fatalf("expected LOW for score %d, got %s", result.Score, result.RiskLevel)
	}
}

func TestCalculateRiskScore_InvalidInput(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input RiskInput
	}{
		{name: "pain out of range", input: RiskInput{AvgPainLevel: 11}},
		{name: "negative bmi", input: RiskInput{CurrentBMI: -1}},
		{name: "non-positive cycle length", input: RiskInput{AvgCycleLength: intPtr(0)}},
		{name: "unknown bmi trend", input: RiskInput{BMITrend: "sideways"}},
		{name: "photo contribution out of range", input: RiskInput{Photo: &PhotoContribution{Score: 41}}},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			if _, err := CalculateRiskScore(testCase.input, time.Now()); !errors.Is(err, ErrInvalidRiskInput) {
				t.Fatalf("expected ErrInvalidRiskInput, got %v", err)
			}
		})
	}
}

func TestCalculateRiskScore_PhotoContributionAppendedLast(t *testing.T) {
	t.Parallel()

	input := RiskInput{
		FamilyHistoryDiabetes: true,
		Photo:                 &PhotoContribution{Score: 15, Reasons: []string{"photo analysis indicates severe acne"}},
	}

	result, err := CalculateRiskScore(input, time.Now())
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	if result.Score != 25 {
		t.Fatalf("expected score 25, got %d", result.Score)
	}
	if len(result.Reasons) != 2 || !strings.Contains(result.Reasons[1], "photo analysis") {
		t.Fatalf("expected photo reason appended last, got %v", result.Reasons)
	}
}
