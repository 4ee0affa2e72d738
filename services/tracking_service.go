package services

import (
	"errors"
	"hash/fnv"
	"strings"
	"time"

	"swift-courier/models"
)

var ErrEmptyTrackingCode = errors.New("tracking code is required")

var trackingStages = []string{
	"Label created",
	"Picked up",
	"In transit",
	"Out for delivery",
	"Delivered",
}

type TrackingService struct{}

func NewTrackingService() *TrackingService {
	return &TrackingService{}
}

// Track simulates carrier tracking. The stage is derived from a hash of the
// normalized code, so the same code always reports the same state.
func (s *TrackingService) Track(code string) (*models.TrackingInfo, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return nil, ErrEmptyTrackingCode
	}

	h := fnv.New32a()
	h.Write([]byte(normalized))
	stage := int(h.Sum32() % uint32(len(trackingStages)))

	steps := make([]models.TrackingStep, len(trackingStages))
	for i, label := range trackingStages {
		steps[i] = models.TrackingStep{
			Label:   label,
			Done:    i <= stage,
			Current: i == stage,
		}
	}

	info := &models.TrackingInfo{
		Code:     normalized,
		Status:   trackingStages[stage],
		Progress: stage * 100 / (len(trackingStages) - 1),
		Steps:    steps,
	}

	if stage < len(trackingStages)-1 {
		daysLeft := len(trackingStages) - 1 - stage
		info.EstimatedDelivery = time.Now().AddDate(0, 0, daysLeft).Format("2006-01-02")
	}

	return info, nil
}
