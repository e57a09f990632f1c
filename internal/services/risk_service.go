package services

import (
	"time"

	"github.com/cyra-health/cyra/internal/models"
)

// symptomLookbackDays bounds how far back symptom records feed the risk
// rubric; stale symptoms say little about the current state.
const symptomLookbackDays = 90

type RiskCycleReader interface {
	ListByUser(userID uint) ([]models.CycleRecord, error)
}

type RiskSymptomReader interface {
	ListByUserSince(userID uint, since time.Time) ([]models.SymptomRecord, error)
}

type RiskWeightReader interface {
	ListRecentByUser(userID uint, limit int) ([]models.WeightEntry, error)
}

// RiskService assembles the heterogeneous risk input from stored records and
// hands it to the pure scoring engine.
type RiskService struct {
	cycles   RiskCycleReader
	symptoms RiskSymptomReader
	weights  RiskWeightReader
	photos   *PhotoService
}

func NewRiskService(cycles RiskCycleReader, symptoms RiskSymptomReader, weights RiskWeightReader, photos *PhotoService) *RiskService {
	return &RiskService{cycles: cycles, symptoms: symptoms, weights: weights, photos: photos}
}

func (service *RiskService) BuildAssessment(user *models.User, now time.Time) (RiskResult, error) {
	cycles, err := service.cycles.ListByUser(user.ID)
	if err != nil {
		return RiskResult{}, err
	}

	since := dateOnly(now).AddDate(0, 0, -symptomLookbackDays)
	symptoms, err := service.symptoms.ListByUserSince(user.ID, since)
	if err != nil {
		return RiskResult{}, err
	}
	symptomTypes := make([]string, 0, len(symptoms))
	for _, symptom := range symptoms {
		symptomTypes = append(symptomTypes, symptom.SymptomType)
	}

	weightEntries, err := service.weights.ListRecentByUser(user.ID, 2)
	if err != nil {
		return RiskResult{}, err
	}
	currentBMI := 0.0
	if len(weightEntries) > 0 {
		currentBMI = BMIFromWeight(weightEntries[0].WeightKG, user.HeightCM)
	}

	photo, err := service.photos.LatestContribution(user.ID)
	if err != nil {
		return RiskResult{}, err
	}

	input := RiskInput{
		AvgCycleLength:        AverageCycleLength(cycles),
		SymptomTypes:          symptomTypes,
		PainSpikeDetected:     DetectPainSpike(cycles),
		AvgPainLevel:          AveragePainLevel(cycles),
		CurrentBMI:            currentBMI,
		BMITrend:              BMITrendFromEntries(weightEntries),
		FamilyHistoryDiabetes: user.FamilyHistoryDiabetes,
		Photo:                 photo,
	}
	return CalculateRiskScore(input, now)
}
