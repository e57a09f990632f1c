package services

import (
	"github.com/cyra-health/cyra/internal/models"
)

type PredictionCycleReader interface {
	ListByUser(userID uint) ([]models.CycleRecord, error)
}

type PredictionSymptomReader interface {
	ListByUser(userID uint) ([]models.SymptomRecord, error)
}

// PredictionService fetches a user's history and runs the forecast engine
// over it. All computation stays in the pure engine functions.
type PredictionService struct {
	cycles   PredictionCycleReader
	symptoms PredictionSymptomReader
}

func NewPredictionService(cycles PredictionCycleReader, symptoms PredictionSymptomReader) *PredictionService {
	return &PredictionService{cycles: cycles, symptoms: symptoms}
}

func (service *PredictionService) BuildPrediction(userID uint) (Prediction, error) {
	cycles, err := service.cycles.ListByUser(userID)
	if err != nil {
		return Prediction{}, err
	}
	return PredictNextCycle(cycles)
}

func (service *PredictionService) BuildInsights(userID uint) (Prediction, []string, error) {
	prediction, err := service.BuildPrediction(userID)
	if err != nil {
		return Prediction{}, nil, err
	}

	symptoms, err := service.symptoms.ListByUser(userID)
	if err != nil {
		return Prediction{}, nil, err
	}
	return prediction, GetCycleInsights(prediction, symptoms), nil
}
