package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/cyra-health/cyra/internal/models"
)

const (
	PatternVeryRegular           = "very_regular"
	PatternRegular               = "regular"
	PatternFairlyRegular         = "fairly_regular"
	PatternSomewhatIrregular     = "somewhat_irregular"
	PatternIrregular             = "irregular"
	PatternInsufficientData      = "insufficient_data"
	PatternInsufficientValidData = "insufficient_valid_data"
)

const (
	ConfidenceVeryHigh = "very_high"
	ConfidenceHigh     = "high"
	ConfidenceMedium   = "medium"
	ConfidenceLow      = "low"
	ConfidenceVeryLow  = "very_low"
)

const (
	// Physiologically plausible cycle range in days; gaps outside it are
	// treated as logging artifacts, not cycles.
	minPlausibleGapDays = 21
	maxPlausibleGapDays = 45

	// Each older gap weighs 0.85 of the one after it.
	gapRecencyDecay = 0.85

	madRejectionFactor = 2.0
	pmsWindowLeadDays  = 4
	minCyclesForForecast = 3
)

var ErrInvalidCycleRecord = errors.New("invalid cycle record")

// Prediction is the forecast for the next cycle. Date and length fields stay
// nil when history is too thin to forecast from.
type Prediction struct {
	NextCycleDate       *time.Time `json:"next_cycle_date"`
	PMSWindowStart      *time.Time `json:"pms_window_start"`
	AvgCycleLength      *int       `json:"avg_cycle_length"`
	StdDeviation        *float64   `json:"std_deviation"`
	Pattern             string     `json:"pattern"`
	Confidence          string     `json:"confidence"`
	BasedOnCycles       int        `json:"based_on_cycles"`
	TotalCyclesAnalyzed int        `json:"total_cycles_analyzed"`
	OutliersRemoved     int        `json:"outliers_removed"`
}

// PredictNextCycle forecasts the next cycle start from logged cycle records.
// The pipeline: sort descending, keep the recent window, filter gaps to the
// plausible range, reject outliers by median absolute deviation, then
// extrapolate from a recency-weighted mean gap. Records with a zero start
// date or an out-of-range pain level fail fast.
func PredictNextCycle(cycles []models.CycleRecord) (Prediction, error) {
	if err := validateCycleRecords(cycles); err != nil {
		return Prediction{}, err
	}

	if len(cycles) < minCyclesForForecast {
		return Prediction{Pattern: PatternInsufficientData, Confidence: ConfidenceLow}, nil
	}

	sorted := sortCyclesByStartDescending(cycles)
	if len(sorted) > recentCycleWindow {
		sorted = sorted[:recentCycleWindow]
	}

	valid := make([]float64, 0, len(sorted)-1)
	for _, gap := range startGapsInDays(sorted) {
		if gap >= minPlausibleGapDays && gap <= maxPlausibleGapDays {
			valid = append(valid, gap)
		}
	}
	if len(valid) < 2 {
		return Prediction{
			Pattern:             PatternInsufficientValidData,
			Confidence:          ConfidenceLow,
			TotalCyclesAnalyzed: len(valid),
		}, nil
	}

	surviving, outliersRemoved := rejectGapOutliers(valid)

	weightedMean := weightedRecencyMean(surviving)
	sigma := stdDeviationFloats(surviving)
	pattern, confidence := classifyRegularity(sigma, len(surviving))

	avgLength := int(math.Round(weightedMean))
	nextCycleDate := dateOnly(sorted[0].StartDate).AddDate(0, 0, avgLength)
	pmsWindowStart := nextCycleDate.AddDate(0, 0, -pmsWindowLeadDays)
	roundedSigma := math.Round(sigma*10) / 10

	return Prediction{
		NextCycleDate:       &nextCycleDate,
		PMSWindowStart:      &pmsWindowStart,
		AvgCycleLength:      &avgLength,
		StdDeviation:        &roundedSigma,
		Pattern:             pattern,
		Confidence:          confidence,
		BasedOnCycles:       len(surviving),
		TotalCyclesAnalyzed: len(valid),
		OutliersRemoved:     outliersRemoved,
	}, nil
}

func validateCycleRecords(cycles []models.CycleRecord) error {
	for _, cycle := range cycles {
		if cycle.StartDate.IsZero() {
			return fmt.Errorf("%w: missing start date", ErrInvalidCycleRecord)
		}
		if cycle.PainLevel != nil && (*cycle.PainLevel < models.MinPainLevel || *cycle.PainLevel > models.MaxPainLevel) {
			return fmt.Errorf("%w: pain level %d out of range", ErrInvalidCycleRecord, *cycle.PainLevel)
		}
	}
	return nil
}

// rejectGapOutliers drops gaps deviating from the median by more than twice
// the median absolute deviation. A zero MAD skips rejection entirely so that
// identical gaps are never discarded. The median itself always survives, so
// the result is never empty.
func rejectGapOutliers(gaps []float64) ([]float64, int) {
	med := medianFloats(gaps)

	deviations := make([]float64, 0, len(gaps))
	for _, gap := range gaps {
		deviations = append(deviations, math.Abs(gap-med))
	}
	mad := medianFloats(deviations)
	if mad == 0 {
		return gaps, 0
	}

	kept := make([]float64, 0, len(gaps))
	for _, gap := range gaps {
		if math.Abs(gap-med) <= madRejectionFactor*mad {
			kept = append(kept, gap)
		}
	}
	return kept, len(gaps) - len(kept)
}

// weightedRecencyMean expects gaps ordered most recent first and weighs the
// i-th gap by gapRecencyDecay^i before normalizing.
func weightedRecencyMean(gaps []float64) float64 {
	var weightedSum, totalWeight float64
	weight := 1.0
	for _, gap := range gaps {
		weightedSum += gap * weight
		totalWeight += weight
		weight *= gapRecencyDecay
	}
	if totalWeight == 0 {
		return 0
	}
	return weightedSum / totalWeight
}

func classifyRegularity(sigma float64, gapCount int) (string, string) {
	switch {
	case sigma < 2 && gapCount >= 5:
		return PatternVeryRegular, ConfidenceVeryHigh
	case sigma < 3 && gapCount >= 4:
		return PatternRegular, ConfidenceHigh
	case sigma < 5:
		return PatternFairlyRegular, ConfidenceMedium
	case sigma < 8:
		return PatternSomewhatIrregular, ConfidenceLow
	default:
		return PatternIrregular, ConfidenceVeryLow
	}
}
