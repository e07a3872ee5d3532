package models

import "time"

// ProgressPoint is one sample in a strength-progress series.
type ProgressPoint struct {
	Date        string  `json:"date"`
	MaxWeightKg float64 `json:"maxWeightKg"`
	VolumeKg    float64 `json:"volumeKg,omitempty"`
}

// StrengthProgress is a per-exercise series of progress points.
type StrengthProgress struct {
	Exercise string          `json:"exercise"`
	Points   []ProgressPoint `json:"points"`
}

// AnalyticsEvent is a fire-and-forget usage event.
type AnalyticsEvent struct {
	Name       string         `json:"name" validate:"required"`
	Properties map[string]any `json:"properties,omitempty"`
	OccurredAt time.Time      `json:"occurredAt,omitempty"`
}
