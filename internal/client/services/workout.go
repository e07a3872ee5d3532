package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vitalsync/fitclient/internal/client/api"
	"github.com/vitalsync/fitclient/internal/client/models"
)

// WorkoutService covers the workouts backend.
type WorkoutService struct {
	api *api.Client
}

func NewWorkoutService(c *api.Client) *WorkoutService {
	return &WorkoutService{api: c}
}

// Plans lists available workout plans. Cached.
func (s *WorkoutService) Plans(ctx context.Context) ([]models.WorkoutPlan, error) {
	d := api.Descriptor{
		Method:    http.MethodGet,
		Path:      "/api/workouts/plans",
		Cacheable: true,
	}
	var plans []models.WorkoutPlan
	if err := s.api.DoJSON(ctx, d, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

// Plan fetches one plan by ID. Cached.
func (s *WorkoutService) Plan(ctx context.Context, id string) (*models.WorkoutPlan, error) {
	d := api.Descriptor{
		Method:    http.MethodGet,
		Path:      "/api/workouts/plans/" + id,
		Cacheable: true,
	}
	var plan models.WorkoutPlan
	if err := s.api.DoJSON(ctx, d, &plan); err != nil {
		return nil, err
	}
	return &plan, nil
}

// Sessions lists the user's workout sessions. Cached.
func (s *WorkoutService) Sessions(ctx context.Context) ([]models.WorkoutSession, error) {
	d := api.Descriptor{
		Method:    http.MethodGet,
		Path:      "/api/workouts/sessions",
		Cacheable: true,
	}
	var sessions []models.WorkoutSession
	if err := s.api.DoJSON(ctx, d, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

// StartSession begins a new session, optionally from a plan.
func (s *WorkoutService) StartSession(ctx context.Context, start models.SessionStart) (*models.WorkoutSession, error) {
	d := api.Descriptor{
		Method: http.MethodPost,
		Path:   "/api/workouts/sessions",
		Body:   start,
	}
	var session models.WorkoutSession
	if err := s.api.DoJSON(ctx, d, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// CompleteSession records the results of a finished session.
func (s *WorkoutService) CompleteSession(ctx context.Context, id string, completion models.SessionCompletion) (*models.WorkoutSession, error) {
	if err := validate.Struct(completion); err != nil {
		return nil, fmt.Errorf("invalid session completion: %w", err)
	}
	d := api.Descriptor{
		Method: http.MethodPost,
		Path:   "/api/workouts/sessions/" + id + "/complete",
		Body:   completion,
	}
	var session models.WorkoutSession
	if err := s.api.DoJSON(ctx, d, &session); err != nil {
		return nil, err
	}
	return &session, nil
}
