// Package demo provides the pass-through interceptor used by offline and
// demo builds. When active it short-circuits the request client and answers
// from canned, shape-matching fixtures after an artificial delay, so UI code
// exercised in demo mode experiences realistic latency. It never touches the
// network.
package demo

import (
	"context"
	"strings"
	"time"

	"github.com/vitalsync/fitclient/internal/client/api"
)

// DefaultDelay approximates a decent mobile connection.
const DefaultDelay = 300 * time.Millisecond

type Interceptor struct {
	enabled bool
	delay   time.Duration
}

// New builds an active interceptor answering after the given delay. Pass
// DefaultDelay for realistic latency or zero for instant responses in tests.
func New(delay time.Duration) *Interceptor {
	if delay < 0 {
		delay = 0
	}
	return &Interceptor{enabled: true, delay: delay}
}

// SetEnabled toggles interception. Selected once per client instance at
// construction in practice; exposed for tests.
func (i *Interceptor) SetEnabled(enabled bool) { i.enabled = enabled }

func (i *Interceptor) ShouldIntercept() bool { return i.enabled }

// Mock returns the fixture matching the descriptor's path prefix. Unknown
// paths yield an empty object so callers decoding into a struct see zero
// values rather than an error.
func (i *Interceptor) Mock(ctx context.Context, d api.Descriptor) ([]byte, error) {
	if i.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(i.delay):
		}
	}

	switch {
	case strings.HasPrefix(d.Path, "/api/workouts/plans"):
		return workoutPlansFixture()
	case strings.HasPrefix(d.Path, "/api/workouts/sessions"):
		return workoutSessionsFixture()
	case strings.HasPrefix(d.Path, "/api/user-profiles/profile"):
		return profileFixture()
	case strings.HasPrefix(d.Path, "/api/ai/chat"):
		return chatFixture()
	case strings.HasPrefix(d.Path, "/api/ai/conversations"):
		return conversationsFixture()
	case strings.Contains(d.Path, "/water"):
		return waterIntakeFixture()
	case strings.Contains(d.Path, "/stats"):
		return nutritionStatsFixture()
	case strings.HasPrefix(d.Path, "/api/nutrition/"):
		return mealsFixture()
	case strings.HasPrefix(d.Path, "/api/analytics/strength-progress"):
		return strengthProgressFixture()
	default:
		return []byte(`{}`), nil
	}
}
