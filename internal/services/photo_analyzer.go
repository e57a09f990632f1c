package services

import (
	"math"
	"math/rand"
	"sync"
)

// The photo "analysis" is a deterministic heuristic placeholder, not a
// vision model. It derives a stable seed from the image bytes and layers a
// small bounded jitter on top, so repeated uploads of the same image land in
// the same neighborhood.

const (
	TrendIncreasing = "increasing"
	TrendDecreasing = "decreasing"
	TrendWorsening  = "worsening"
	TrendImproving  = "improving"
	TrendStable     = "stable"
)

const (
	maxPhotoRiskScore = 40

	photoSeedByteStride = 10
	photoSeedByteLimit  = 1000

	acneCountDeltaThreshold = 2.0
	scoreDeltaThreshold     = 1.0
	overallSignalThreshold  = 3.0
)

// RandomSource supplies the jitter for photo feature extraction. Injected so
// tests can pin it.
type RandomSource interface {
	Float64() float64
}

type systemRandom struct{}

func (systemRandom) Float64() float64 { return rand.Float64() }

// SystemRandomSource returns the process-wide randomness source.
func SystemRandomSource() RandomSource { return systemRandom{} }

type seededRandom struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (source *seededRandom) Float64() float64 {
	source.mu.Lock()
	defer source.mu.Unlock()
	return source.rng.Float64()
}

// SeededRandomSource returns a deterministic source for tests.
func SeededRandomSource(seed int64) RandomSource {
	return &seededRandom{rng: rand.New(rand.NewSource(seed))}
}

type PhotoFeatures struct {
	AcneCount       int     `json:"acne_count"`
	AcneSeverity    float64 `json:"acne_severity"`
	FacialHairScore float64 `json:"facial_hair_score"`
	SkinTexture     float64 `json:"skin_texture"`
	Confidence      float64 `json:"confidence"`
}

type PhotoTrend struct {
	AcneTrend         string `json:"acne_trend"`
	AcneSeverityTrend string `json:"acne_severity_trend"`
	FacialHairTrend   string `json:"facial_hair_trend"`
	SkinTextureTrend  string `json:"skin_texture_trend"`
	OverallTrend      string `json:"overall_trend"`
}

// AnalyzePhoto derives a feature vector from image bytes. Empty input yields
// nil: "no photo" is an expected silent case, not an error.
func AnalyzePhoto(image []byte, rng RandomSource) *PhotoFeatures {
	if len(image) == 0 {
		return nil
	}
	if rng == nil {
		rng = SystemRandomSource()
	}

	seed := photoSeed(image)

	acneCount := int(math.Floor(rng.Float64()*8 + seed/15))
	if acneCount < 0 {
		acneCount = 0
	}
	acneSeverity := roundTo1(clampFloat(seed/14+jitter(rng, 1), 0, 10))
	facialHairScore := roundTo1(clampFloat(seed/20+jitter(rng, 0.75), 0, 10))
	skinTexture := roundTo1(clampFloat(10-seed/12+jitter(rng, 0.5), 3, 10))
	confidence := roundTo2(clampFloat(0.70+rng.Float64()*0.15, 0, 1))

	return &PhotoFeatures{
		AcneCount:       acneCount,
		AcneSeverity:    acneSeverity,
		FacialHairScore: facialHairScore,
		SkinTexture:     skinTexture,
		Confidence:      confidence,
	}
}

// photoSeed sums every 10th byte over the first 1000 bytes and reduces the
// sum to a 0-100 scale.
func photoSeed(image []byte) float64 {
	limit := len(image)
	if limit > photoSeedByteLimit {
		limit = photoSeedByteLimit
	}

	sum := 0
	for i := 0; i < limit; i += photoSeedByteStride {
		sum += int(image[i])
	}
	return float64(sum%1000) / 10
}

// ComparePhotoFeatures classifies the per-field movement between two feature
// vectors. Skin texture is inverted: a higher value is healthier, so an
// increase reads as improving.
func ComparePhotoFeatures(previous, current *PhotoFeatures) *PhotoTrend {
	if previous == nil || current == nil {
		return nil
	}

	acneCountDelta := float64(current.AcneCount - previous.AcneCount)
	severityDelta := current.AcneSeverity - previous.AcneSeverity
	hairDelta := current.FacialHairScore - previous.FacialHairScore
	textureDelta := current.SkinTexture - previous.SkinTexture

	trend := &PhotoTrend{
		AcneTrend:         classifyDelta(acneCountDelta, acneCountDeltaThreshold, TrendIncreasing, TrendDecreasing),
		AcneSeverityTrend: classifyDelta(severityDelta, scoreDeltaThreshold, TrendWorsening, TrendImproving),
		FacialHairTrend:   classifyDelta(hairDelta, scoreDeltaThreshold, TrendIncreasing, TrendDecreasing),
		SkinTextureTrend:  classifyDelta(textureDelta, scoreDeltaThreshold, TrendImproving, TrendWorsening),
		OverallTrend:      TrendStable,
	}

	overallSignal := severityDelta + hairDelta - textureDelta
	if overallSignal > overallSignalThreshold {
		trend.OverallTrend = TrendWorsening
	} else if overallSignal < -overallSignalThreshold {
		trend.OverallTrend = TrendImproving
	}
	return trend
}

// PhotoRiskScore converts a feature vector and optional trend into a bounded
// risk contribution. Tiers within a feature are mutually exclusive.
func PhotoRiskScore(features *PhotoFeatures, trend *PhotoTrend) (int, []string) {
	if features == nil {
		return 0, nil
	}

	score := 0
	reasons := make([]string, 0, 4)

	switch {
	case features.AcneSeverity > 7:
		score += 15
		reasons = append(reasons, "photo analysis indicates severe acne")
	case features.AcneSeverity > 4:
		score += 10
		reasons = append(reasons, "photo analysis indicates moderate acne")
	case features.AcneSeverity > 2:
		score += 5
		reasons = append(reasons, "photo analysis indicates mild acne")
	}

	switch {
	case features.FacialHairScore > 7:
		score += 15
		reasons = append(reasons, "photo analysis indicates pronounced facial hair growth")
	case features.FacialHairScore > 4:
		score += 10
		reasons = append(reasons, "photo analysis indicates elevated facial hair growth")
	}

	if features.SkinTexture < 4 {
		score += 5
		reasons = append(reasons, "photo analysis indicates degraded skin texture")
	}

	if trend != nil {
		if trend.AcneTrend == TrendIncreasing && trend.FacialHairTrend == TrendIncreasing {
			score += 5
			reasons = append(reasons, "acne and facial hair both increasing across photos")
		} else if trend.AcneTrend == TrendIncreasing || trend.FacialHairTrend == TrendIncreasing {
			score += 3
			reasons = append(reasons, "photo trend shows increasing skin or hair symptoms")
		}
	}

	if score > maxPhotoRiskScore {
		score = maxPhotoRiskScore
	}
	return score, reasons
}

func classifyDelta(delta, threshold float64, above, below string) string {
	if delta > threshold {
		return above
	}
	if delta < -threshold {
		return below
	}
	return TrendStable
}

func jitter(rng RandomSource, bound float64) float64 {
	return (rng.Float64()*2 - 1) * bound
}

func clampFloat(value, low, high float64) float64 {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}

func roundTo1(value float64) float64 {
	return math.Round(value*10) / 10
}

func roundTo2(value float64) float64 {
	return math.Round(value*100) / 100
}
