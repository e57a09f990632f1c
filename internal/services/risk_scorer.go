package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/cyra-health/cyra/internal/models"
)

const (
	RiskLevelLow      = "LOW"
	RiskLevelModerate = "MODERATE"
	RiskLevelHigh     = "HIGH"
)

const (
	BMITrendIncreasing = "increasing"
	BMITrendDecreasing = "decreasing"
	BMITrendStable     = "stable"
)

const (
	maxRiskScore            = 100
	moderateRiskThreshold   = 30
	highRiskThreshold       = 60
	symptomVarietyThreshold = 4
)

var ErrInvalidRiskInput = errors.New("invalid risk input")

// PhotoContribution is the bounded score PhotoRiskScore produced from the
// user's latest photo, folded into the assessment when photo data exists.
type PhotoContribution struct {
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
}

type RiskInput struct {
	AvgCycleLength        *int
	SymptomTypes          []string
	PainSpikeDetected     bool
	AvgPainLevel          float64
	CurrentBMI            float64
	BMITrend              string
	FamilyHistoryDiabetes bool
	Photo                 *PhotoContribution
}

// RiskResult is the explainable assessment outcome. Reasons follow the fixed
// factor-evaluation order; callers and stored reports rely on it.
type RiskResult struct {
	Score        int       `json:"score"`
	RiskLevel    string    `json:"risk_level"`
	Reasons      []string  `json:"reasons"`
	CalculatedAt time.Time `json:"calculated_at"`
}

type riskFactor func(input RiskInput) (int, string)

// riskFactors is evaluated strictly in order; reordering entries changes the
// documented reason sequence of every stored report.
var riskFactors = []riskFactor{
	cycleLengthFactor,
	bmiFactor,
	symptomPairFactor,
	symptomVarietyFactor,
	painFactor,
	familyHistoryFactor,
}

// CalculateRiskScore folds the ordered factor rubric over the input and
// appends the optional photo contribution last. A factor that contributes
// zero points never adds a reason.
func CalculateRiskScore(input RiskInput, now time.Time) (RiskResult, error) {
	if err := validateRiskInput(input); err != nil {
		return RiskResult{}, err
	}

	score := 0
	reasons := make([]string, 0, len(riskFactors)+1)
	for _, factor := range riskFactors {
		points, reason := factor(input)
		if points <= 0 {
			continue
		}
		score += points
		reasons = append(reasons, reason)
	}

	if input.Photo != nil && input.Photo.Score > 0 {
		score += input.Photo.Score
		reasons = append(reasons, input.Photo.Reasons...)
	}

	if score > maxRiskScore {
		score = maxRiskScore
	}

	return RiskResult{
		Score:        score,
		RiskLevel:    riskLevelForScore(score),
		Reasons:      reasons,
		CalculatedAt: now,
	}, nil
}

func validateRiskInput(input RiskInput) error {
	if input.AvgPainLevel < 0 || input.AvgPainLevel > 10 {
		return fmt.Errorf("%w: average pain level %.1f out of range", ErrInvalidRiskInput, input.AvgPainLevel)
	}
	if input.CurrentBMI < 0 {
		return fmt.Errorf("%w: BMI must not be negative", ErrInvalidRiskInput)
	}
	if input.AvgCycleLength != nil && *input.AvgCycleLength <= 0 {
		return fmt.Errorf("%w: average cycle length %d out of range", ErrInvalidRiskInput, *input.AvgCycleLength)
	}
	switch input.BMITrend {
	case "", BMITrendIncreasing, BMITrendDecreasing, BMITrendStable:
	default:
		return fmt.Errorf("%w: unknown BMI trend %q", ErrInvalidRiskInput, input.BMITrend)
	}
	if input.Photo != nil && (input.Photo.Score < 0 || input.Photo.Score > maxPhotoRiskScore) {
		return fmt.Errorf("%w: photo contribution %d out of range", ErrInvalidRiskInput, input.Photo.Score)
	}
	return nil
}

func riskLevelForScore(score int) string {
	switch {
	case score < moderateRiskThreshold:
		return RiskLevelLow
	case score < highRiskThreshold:
		return RiskLevelModerate
	default:
		return RiskLevelHigh
	}
}

func cycleLengthFactor(input RiskInput) (int, string) {
	if input.AvgCycleLength == nil {
		return 0, ""
	}
	length := *input.AvgCycleLength
	switch {
	case length > 45:
		return 30, fmt.Sprintf("irregular cycles: average length %d days exceeds 45", length)
	case length >= 35:
		return 20, fmt.Sprintf("slightly irregular cycles: average length %d days (35-45 range)", length)
	default:
		return 0, ""
	}
}

func bmiFactor(input RiskInput) (int, string) {
	if input.BMITrend == BMITrendIncreasing && input.CurrentBMI > 25 {
		return 20, fmt.Sprintf("BMI %.1f is above 25 and trending upward", input.CurrentBMI)
	}
	if input.CurrentBMI > 30 {
		return 15, fmt.Sprintf("BMI %.1f is above 30", input.CurrentBMI)
	}
	return 0, ""
}

func symptomPairFactor(input RiskInput) (int, string) {
	distinct := distinctSymptomTypes(input.SymptomTypes)
	if distinct[models.SymptomAcne] && distinct[models.SymptomHairLoss] {
		return 15, "acne and hair_loss reported together"
	}
	return 0, ""
}

func symptomVarietyFactor(input RiskInput) (int, string) {
	count := len(distinctSymptomTypes(input.SymptomTypes))
	if count >= symptomVarietyThreshold {
		return 10, fmt.Sprintf("%d distinct symptom types logged", count)
	}
	return 0, ""
}

func painFactor(input RiskInput) (int, string) {
	if input.PainSpikeDetected {
		return 15, "pain levels spiking across recent cycles"
	}
	if input.AvgPainLevel > 7 {
		return 10, fmt.Sprintf("average pain level %.1f is above 7", input.AvgPainLevel)
	}
	return 0, ""
}

func familyHistoryFactor(input RiskInput) (int, string) {
	if input.FamilyHistoryDiabetes {
		return 10, "family history of diabetes"
	}
	return 0, ""
}

func distinctSymptomTypes(symptomTypes []string) map[string]bool {
	distinct := make(map[string]bool, len(symptomTypes))
	for _, symptomType := range symptomTypes {
		if symptomType == "" {
			continue
		}
		distinct[symptomType] = true
	}
	return distinct
}
