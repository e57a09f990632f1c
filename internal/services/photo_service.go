package services

import (
	"github.com/cyra-health/cyra/internal/models"
)

type PhotoLogReader interface {
	ListRecentByUser(userID uint, limit int) ([]models.PhotoLog, error)
}

// PhotoService projects stored photo logs back into engine feature vectors
// for trend and risk computation.
type PhotoService struct {
	photos PhotoLogReader
}

func NewPhotoService(photos PhotoLogReader) *PhotoService {
	return &PhotoService{photos: photos}
}

func PhotoFeaturesFromLog(entry models.PhotoLog) *PhotoFeatures {
	return &PhotoFeatures{
		AcneCount:       entry.AcneCount,
		AcneSeverity:    entry.AcneSeverity,
		FacialHairScore: entry.FacialHairScore,
		SkinTexture:     entry.SkinTexture,
		Confidence:      entry.Confidence,
	}
}

// LatestTrend compares the two most recent photos. Nil when fewer than two
// photos exist.
func (service *PhotoService) LatestTrend(userID uint) (*PhotoTrend, error) {
	recent, err := service.photos.ListRecentByUser(userID, 2)
	if err != nil {
		return nil, err
	}
	if len(recent) < 2 {
		return nil, nil
	}

	current := PhotoFeaturesFromLog(recent[0])
	previous := PhotoFeaturesFromLog(recent[1])
	return ComparePhotoFeatures(previous, current), nil
}

// LatestContribution builds the optional photo factor for risk scoring from
// the newest photo plus the trend against the one before it. Nil when the
// user has no photos.
func (service *PhotoService) LatestContribution(userID uint) (*PhotoContribution, error) {
	recent, err := service.photos.ListRecentByUser(userID, 2)
	if err != nil {
		return nil, err
	}
	if len(recent) == 0 {
		return nil, nil
	}

	features := PhotoFeaturesFromLog(recent[0])
	var trend *PhotoTrend
	if len(recent) >= 2 {
		trend = ComparePhotoFeatures(PhotoFeaturesFromLog(recent[1]), features)
	}

	score, reasons := PhotoRiskScore(features, trend)
	return &PhotoContribution{Score: score, Reasons: reasons}, nil
}
