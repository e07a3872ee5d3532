package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/vitalsync/fitclient/internal/client/api"
	"github.com/vitalsync/fitclient/internal/client/models"
)

// NutritionService covers the nutrition backend. Its paths embed the user
// identifier, which is derived from the stored credential; when no identity
// is available every method fails with api.ErrIdentityUnavailable.
type NutritionService struct {
	api *api.Client
}

func NewNutritionService(c *api.Client) *NutritionService {
	return &NutritionService{api: c}
}

// MealsByDate lists meals logged on the given date (YYYY-MM-DD). Cached.
func (s *NutritionService) MealsByDate(ctx context.Context, date string) ([]models.Meal, error) {
	userID, err := s.api.UserID(ctx)
	if err != nil {
		return nil, err
	}
	d := api.Descriptor{
		Method:    http.MethodGet,
		Path:      fmt.Sprintf("/api/nutrition/users/%s/meals/date/%s", userID, date),
		Cacheable: true,
	}
	var meals []models.Meal
	if err := s.api.DoJSON(ctx, d, &meals); err != nil {
		return nil, err
	}
	return meals, nil
}

// LogMeal records a meal.
func (s *NutritionService) LogMeal(ctx context.Context, meal models.MealLog) (*models.Meal, error) {
	if err := validate.Struct(meal); err != nil {
		return nil, fmt.Errorf("invalid meal: %w", err)
	}
	userID, err := s.api.UserID(ctx)
	if err != nil {
		return nil, err
	}
	d := api.Descriptor{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("/api/nutrition/users/%s/meals", userID),
		Body:   meal,
	}
	var created models.Meal
	if err := s.api.DoJSON(ctx, d, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Stats returns the per-day nutrition aggregate. Cached.
func (s *NutritionService) Stats(ctx context.Context, date string) (*models.NutritionStats, error) {
	userID, err := s.api.UserID(ctx)
	if err != nil {
		return nil, err
	}
	d := api.Descriptor{
		Method:    http.MethodGet,
		Path:      fmt.Sprintf("/api/nutrition/users/%s/stats", userID),
		Query:     url.Values{"date": {date}},
		Cacheable: true,
	}
	var stats models.NutritionStats
	if err := s.api.DoJSON(ctx, d, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// WaterIntake returns the day's hydration total. Not cached: the figure
// changes with every log and staleness here is user-visible.
func (s *NutritionService) WaterIntake(ctx context.Context, date string) (*models.WaterIntake, error) {
	userID, err := s.api.UserID(ctx)
	if err != nil {
		return nil, err
	}
	d := api.Descriptor{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/api/nutrition/users/%s/water", userID),
		Query:  url.Values{"date": {date}},
	}
	var intake models.WaterIntake
	if err := s.api.DoJSON(ctx, d, &intake); err != nil {
		return nil, err
	}
	return &intake, nil
}

// LogWater adds to the day's intake and returns the new total.
func (s *NutritionService) LogWater(ctx context.Context, entry models.WaterLog) (*models.WaterIntake, error) {
	if err := validate.Struct(entry); err != nil {
		return nil, fmt.Errorf("invalid water entry: %w", err)
	}
	userID, err := s.api.UserID(ctx)
	if err != nil {
		return nil, err
	}
	d := api.Descriptor{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("/api/nutrition/users/%s/water", userID),
		Body:   entry,
	}
	var intake models.WaterIntake
	if err := s.api.DoJSON(ctx, d, &intake); err != nil {
		return nil, err
	}
	return &intake, nil
}
