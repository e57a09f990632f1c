package services

import (
	"math"
	"sort"

	"github.com/cyra-health/cyra/internal/models"
)

// recentCycleWindow bounds how much history the statistics look at; older
// cycles stop reflecting the user's current hormonal state.
const recentCycleWindow = 6

const painSpikeThreshold = 3.0

// AverageCycleLength returns the rounded mean gap in days between the most
// recent cycle starts. Fewer than two cycles yield nil rather than an error:
// sparse history is an expected steady state for new users.
func AverageCycleLength(cycles []models.CycleRecord) *int {
	if len(cycles) < 2 {
		return nil
	}

	sorted := sortCyclesByStartDescending(cycles)
	if len(sorted) > recentCycleWindow {
		sorted = sorted[:recentCycleWindow]
	}

	gaps := startGapsInDays(sorted)
	if len(gaps) == 0 {
		return nil
	}

	average := int(math.Round(meanFloats(gaps)))
	return &average
}

// DetectPainSpike compares average pain in the three most recent cycles
// against the preceding group. A missing pain level counts as zero.
func DetectPainSpike(cycles []models.CycleRecord) bool {
	if len(cycles) < 3 {
		return false
	}

	sorted := sortCyclesByStartDescending(cycles)
	recent := sorted[:3]
	older := sorted[3:]
	if len(older) == 0 {
		return false
	}
	if len(older) > 3 {
		older = older[:3]
	}

	return meanPainLevel(recent)-meanPainLevel(older) >= painSpikeThreshold
}

// AveragePainLevel returns the mean of the recorded pain levels among the
// most recent cycles, skipping cycles without one. Zero when nothing is
// recorded.
func AveragePainLevel(cycles []models.CycleRecord) float64 {
	sorted := sortCyclesByStartDescending(cycles)
	if len(sorted) > recentCycleWindow {
		sorted = sorted[:recentCycleWindow]
	}

	var total float64
	count := 0
	for _, cycle := range sorted {
		if cycle.PainLevel == nil {
			continue
		}
		total += float64(*cycle.PainLevel)
		count++
	}
	if count == 0 {
		return 0
	}
	return total / float64(count)
}

func sortCyclesByStartDescending(cycles []models.CycleRecord) []models.CycleRecord {
	sorted := make([]models.CycleRecord, 0, len(cycles))
	sorted = append(sorted, cycles...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartDate.After(sorted[j].StartDate)
	})
	return sorted
}

// startGapsInDays expects cycles sorted by start date descending and returns
// the day-gaps between consecutive starts, most recent gap first.
func startGapsInDays(sorted []models.CycleRecord) []float64 {
	if len(sorted) < 2 {
		return nil
	}

	gaps := make([]float64, 0, len(sorted)-1)
	for i := 0; i+1 < len(sorted); i++ {
		gaps = append(gaps, float64(daysBetween(sorted[i+1].StartDate, sorted[i].StartDate)))
	}
	return gaps
}

func meanPainLevel(cycles []models.CycleRecord) float64 {
	if len(cycles) == 0 {
		return 0
	}

	var total float64
	for _, cycle := range cycles {
		if cycle.PainLevel != nil {
			total += float64(*cycle.PainLevel)
		}
	}
	return total / float64(len(cycles))
}

func meanFloats(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var total float64
	for _, value := range values {
		total += value
	}
	return total / float64(len(values))
}

func medianFloats(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sorted := make([]float64, 0, len(values))
	sorted = append(sorted, values...)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

func stdDeviationFloats(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	mean := meanFloats(values)
	var sumSquares float64
	for _, value := range values {
		delta := value - mean
		sumSquares += delta * delta
	}
	return math.Sqrt(sumSquares / float64(len(values)))
}
