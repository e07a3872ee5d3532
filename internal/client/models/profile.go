// Package models defines the payload types exchanged with the backend
// services. Fields mirror the wire JSON; validation tags apply only to
// outbound payloads the client constructs itself.
package models

import "time"

// Profile is the user profile as served by the user-profiles service.
type Profile struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName,omitempty"`
	AvatarURL   string    `json:"avatarUrl,omitempty"`
	HeightCm    float64   `json:"heightCm,omitempty"`
	WeightKg    float64   `json:"weightKg,omitempty"`
	Goals       []string  `json:"goals,omitempty"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProfileUpdate carries the mutable subset of Profile.
type ProfileUpdate struct {
	DisplayName string   `json:"displayName,omitempty"`
	AvatarURL   string   `json:"avatarUrl,omitempty"`
	HeightCm    float64  `json:"heightCm,omitempty"`
	WeightKg    float64  `json:"weightKg,omitempty"`
	Goals       []string `json:"goals,omitempty"`
}

// DeviceTokenRegistration registers a push-notification device token. The
// client only transports this call; delivery is an external concern.
type DeviceTokenRegistration struct {
	Token    string `json:"token" validate:"required"`
	Platform string `json:"platform" validate:"required,oneof=ios android web"`
}
