package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/vitalsync/fitclient/internal/client/api"
	"github.com/vitalsync/fitclient/internal/client/models"
)

// ProfileService covers the user-profiles backend.
type ProfileService struct {
	api *api.Client
}

func NewProfileService(c *api.Client) *ProfileService {
	return &ProfileService{api: c}
}

// Get returns the current user's profile. Cached.
func (s *ProfileService) Get(ctx context.Context) (*models.Profile, error) {
	d := api.Descriptor{
		Method:    http.MethodGet,
		Path:      "/api/user-profiles/profile",
		Cacheable: true,
	}
	var p models.Profile
	if err := s.api.DoJSON(ctx, d, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Update writes the mutable profile fields and returns the updated profile.
func (s *ProfileService) Update(ctx context.Context, update models.ProfileUpdate) (*models.Profile, error) {
	d := api.Descriptor{
		Method: http.MethodPut,
		Path:   "/api/user-profiles/profile",
		Body:   update,
	}
	var p models.Profile
	if err := s.api.DoJSON(ctx, d, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// RegisterDeviceToken transports a push-notification device token to the
// backend. Delivery plumbing is an external collaborator's concern.
func (s *ProfileService) RegisterDeviceToken(ctx context.Context, reg models.DeviceTokenRegistration) error {
	if err := validate.Struct(reg); err != nil {
		return fmt.Errorf("invalid device token registration: %w", err)
	}
	d := api.Descriptor{
		Method: http.MethodPost,
		Path:   "/api/user-profiles/device-token",
		Body:   reg,
	}
	return s.api.DoJSON(ctx, d, nil)
}
