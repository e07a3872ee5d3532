package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vitalsync/fitclient/internal/client/api"
	"github.com/vitalsync/fitclient/internal/client/models"
)

// AnalyticsService covers the analytics backend.
type AnalyticsService struct {
	api *api.Client
}

func NewAnalyticsService(c *api.Client) *AnalyticsService {
	return &AnalyticsService{api: c}
}

// StrengthProgress returns the user's per-exercise strength series. Cached.
func (s *AnalyticsService) StrengthProgress(ctx context.Context) ([]models.StrengthProgress, error) {
	userID, err := s.api.UserID(ctx)
	if err != nil {
		return nil, err
	}
	d := api.Descriptor{
		Method:    http.MethodGet,
		Path:      "/api/analytics/strength-progress/" + userID,
		Cacheable: true,
	}
	var progress []models.StrengthProgress
	if err := s.api.DoJSON(ctx, d, &progress); err != nil {
		return nil, err
	}
	return progress, nil
}

// LogEvent ships a usage event. Callers typically ignore everything but the
// error; the backend returns no meaningful body.
func (s *AnalyticsService) LogEvent(ctx context.Context, event models.AnalyticsEvent) error {
	if err := validate.Struct(event); err != nil {
		return fmt.Errorf("invalid analytics event: %w", err)
	}
	d := api.Descriptor{
		Method: http.MethodPost,
		Path:   "/api/analytics/events",
		Body:   event,
	}
	return s.api.DoJSON(ctx, d, nil)
}
