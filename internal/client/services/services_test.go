package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalsync/fitclient/internal/client/api"
	"github.com/vitalsync/fitclient/internal/client/models"
	"github.com/vitalsync/fitclient/internal/client/tokenstore"
)

// testBackend records the last request and answers with a fixed payload.
type testBackend struct {
	srv *httptest.Server

	lastMethod string
	lastPath   string
	lastQuery  string
	lastBody   []byte

	status  int
	payload string
}

func newTestBackend(t *testing.T, payload string) *testBackend {
	t.Helper()
	b := &testBackend{status: http.StatusOK, payload: payload}
	b.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.lastMethod = r.Method
		b.lastPath = r.URL.Path
		b.lastQuery = r.URL.RawQuery
		b.lastBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(b.status)
		w.Write([]byte(b.payload))
	}))
	t.Cleanup(b.srv.Close)
	return b
}

func clientFor(t *testing.T, b *testBackend, sub string) *api.Client {
	t.Helper()
	store := tokenstore.NewMemoryStore()
	if sub != "" {
		tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": sub})
		signed, err := tok.SignedString([]byte("test-secret"))
		require.NoError(t, err)
		require.NoError(t, tokenstore.SaveCredential(context.Background(), store, tokenstore.Credential{IDToken: signed}))
	}
	return api.New(api.Options{BaseURL: b.srv.URL, AIFallbackURL: b.srv.URL, Store: store})
}

func TestProfileService_Get(t *testing.T) {
	b := newTestBackend(t, `{"id":"u1","username":"lena","email":"l@example.com","updatedAt":"2026-08-01T10:00:00Z"}`)
	svc := NewProfileService(clientFor(t, b, "u1"))

	p, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, b.lastMethod)
	assert.Equal(t, "/api/user-profiles/profile", b.lastPath)
	assert.Equal(t, "lena", p.Username)
}

func TestProfileService_RegisterDeviceToken(t *testing.T) {
	b := newTestBackend(t, `{}`)
	svc := NewProfileService(clientFor(t, b, "u1"))

	t.Run("valid", func(t *testing.T) {
		err := svc.RegisterDeviceToken(context.Background(), models.DeviceTokenRegistration{Token: "fcm-abc", Platform: "android"})
		require.NoError(t, err)
		assert.Equal(t, "/api/user-profiles/device-token", b.lastPath)

		var sent map[string]string
		require.NoError(t, json.Unmarshal(b.lastBody, &sent))
		assert.Equal(t, "fcm-abc", sent["token"])
		assert.Equal(t, "android", sent["platform"])
	})

	t.Run("rejects unknown platform before sending", func(t *testing.T) {
		b.lastPath = ""
		err := svc.RegisterDeviceToken(context.Background(), models.DeviceTokenRegistration{Token: "x", Platform: "blackberry"})
		require.Error(t, err)
		assert.Empty(t, b.lastPath, "validation failure must not reach the network")
	})

	t.Run("rejects empty token", func(t *testing.T) {
		err := svc.RegisterDeviceToken(context.Background(), models.DeviceTokenRegistration{Platform: "ios"})
		require.Error(t, err)
	})
}

func TestWorkoutService_Paths(t *testing.T) {
	b := newTestBackend(t, `[]`)
	svc := NewWorkoutService(clientFor(t, b, "u1"))
	ctx := context.Background()

	_, err := svc.Plans(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/api/workouts/plans", b.lastPath)

	_, err = svc.Sessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/api/workouts/sessions", b.lastPath)

	b.payload = `{"id":"s1","startedAt":"2026-08-01T10:00:00Z"}`
	session, err := svc.StartSession(ctx, models.SessionStart{PlanID: "p1"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, b.lastMethod)
	assert.Equal(t, "/api/workouts/sessions", b.lastPath)
	assert.Equal(t, "s1", session.ID)

	_, err = svc.CompleteSession(ctx, "s1", models.SessionCompletion{DurationMin: 45})
	require.NoError(t, err)
	assert.Equal(t, "/api/workouts/sessions/s1/complete", b.lastPath)
}

func TestWorkoutService_CompleteSessionRejectsNegativeDuration(t *testing.T) {
	b := newTestBackend(t, `{}`)
	svc := NewWorkoutService(clientFor(t, b, "u1"))

	_, err := svc.CompleteSession(context.Background(), "s1", models.SessionCompletion{DurationMin: -5})
	require.Error(t, err)
}

func TestNutritionService_UserScopedPaths(t *testing.T) {
	b := newTestBackend(t, `[]`)
	svc := NewNutritionService(clientFor(t, b, "user-42"))
	ctx := context.Background()

	_, err := svc.MealsByDate(ctx, "2026-08-30")
	require.NoError(t, err)
	assert.Equal(t, "/api/nutrition/users/user-42/meals/date/2026-08-30", b.lastPath)

	b.payload = `{"date":"2026-08-30","totalCalories":1800,"proteinG":120,"carbsG":150,"fatG":60,"waterMl":1500}`
	stats, err := svc.Stats(ctx, "2026-08-30")
	require.NoError(t, err)
	assert.Equal(t, "/api/nutrition/users/user-42/stats", b.lastPath)
	assert.Equal(t, "date=2026-08-30", b.lastQuery)
	assert.Equal(t, 1800, stats.TotalCalories)

	b.payload = `{"date":"2026-08-30","totalMl":750}`
	intake, err := svc.LogWater(ctx, models.WaterLog{AmountMl: 250})
	require.NoError(t, err)
	assert.Equal(t, "/api/nutrition/users/user-42/water", b.lastPath)
	assert.Equal(t, 750, intake.TotalMl)
}

func TestNutritionService_NoIdentity(t *testing.T) {
	b := newTestBackend(t, `[]`)
	svc := NewNutritionService(clientFor(t, b, ""))

	_, err := svc.MealsByDate(context.Background(), "2026-08-30")
	assert.ErrorIs(t, err, api.ErrIdentityUnavailable)
	assert.Empty(t, b.lastPath, "no request may be issued without an identity")
}

func TestAnalyticsService(t *testing.T) {
	b := newTestBackend(t, `[{"exercise":"squat","points":[]}]`)
	svc := NewAnalyticsService(clientFor(t, b, "user-42"))
	ctx := context.Background()

	progress, err := svc.StrengthProgress(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/api/analytics/strength-progress/user-42", b.lastPath)
	require.Len(t, progress, 1)
	assert.Equal(t, "squat", progress[0].Exercise)

	b.payload = `{}`
	err = svc.LogEvent(ctx, models.AnalyticsEvent{Name: "workout_completed"})
	require.NoError(t, err)
	assert.Equal(t, "/api/analytics/events", b.lastPath)

	err = svc.LogEvent(ctx, models.AnalyticsEvent{})
	require.Error(t, err, "event name is required")
}

func TestAIService(t *testing.T) {
	b := newTestBackend(t, `{"conversationId":"c1","reply":"keep going"}`)
	svc := NewAIService(clientFor(t, b, "user-42"))
	ctx := context.Background()

	resp, err := svc.SendMessage(ctx, models.ChatRequest{Message: "how was my week?"})
	require.NoError(t, err)
	assert.Equal(t, "/api/ai/chat", b.lastPath)
	assert.Equal(t, "c1", resp.ConversationID)

	// Threading the opaque conversation ID through the next turn.
	_, err = svc.SendMessage(ctx, models.ChatRequest{ConversationID: "c1", Message: "and today?"})
	require.NoError(t, err)
	var sent map[string]string
	require.NoError(t, json.Unmarshal(b.lastBody, &sent))
	assert.Equal(t, "c1", sent["conversationId"])

	_, err = svc.SendMessage(ctx, models.ChatRequest{})
	require.Error(t, err, "empty message must fail validation")

	b.payload = `[]`
	_, err = svc.Conversations(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/api/ai/conversations", b.lastPath)

	b.payload = `{"id":"c1","messages":[]}`
	detail, err := svc.Conversation(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "/api/ai/conversations/c1", b.lastPath)
	assert.Equal(t, "c1", detail.ID)

	b.payload = `{}`
	require.NoError(t, svc.DeleteConversation(ctx, "c1"))
	assert.Equal(t, http.MethodDelete, b.lastMethod)
}
