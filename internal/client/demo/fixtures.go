package demo

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/vitalsync/fitclient/internal/client/models"
)

// Fixture IDs are minted once per process so repeated demo calls return
// stable references the UI can navigate between.
var (
	planID         = uuid.NewString()
	sessionID      = uuid.NewString()
	conversationID = uuid.NewString()
)

func workoutPlansFixture() ([]byte, error) {
	return json.Marshal([]models.WorkoutPlan{
		{
			ID:          planID,
			Name:        "Full Body Foundations",
			Description: "Three weekly sessions covering every major muscle group.",
			Level:       "beginner",
			DaysPerWeek: 3,
			Exercises: []models.Exercise{
				{Name: "Goblet Squat", Sets: 3, Reps: 10, WeightKg: 16},
				{Name: "Push-up", Sets: 3, Reps: 12},
				{Name: "Bent-over Row", Sets: 3, Reps: 10, WeightKg: 30},
			},
		},
	})
}

func workoutSessionsFixture() ([]byte, error) {
	started := time.Now().Add(-26 * time.Hour)
	completed := started.Add(48 * time.Minute)
	return json.Marshal([]models.WorkoutSession{
		{
			ID:             sessionID,
			PlanID:         planID,
			StartedAt:      started,
			CompletedAt:    &completed,
			DurationMin:    48,
			CaloriesBurned: 410,
			Exercises: []models.Exercise{
				{Name: "Goblet Squat", Sets: 3, Reps: 10, WeightKg: 16},
			},
		},
	})
}

func profileFixture() ([]byte, error) {
	return json.Marshal(models.Profile{
		ID:          uuid.NewString(),
		Username:    "demo",
		Email:       "demo@vitalsync.app",
		DisplayName: "Demo Athlete",
		HeightCm:    175,
		WeightKg:    72,
		Goals:       []string{"strength", "consistency"},
		UpdatedAt:   time.Now(),
	})
}

func mealsFixture() ([]byte, error) {
	return json.Marshal([]models.Meal{
		{ID: uuid.NewString(), Name: "Oatmeal with berries", Calories: 420, ProteinG: 14, CarbsG: 68, FatG: 9, EatenAt: time.Now().Add(-5 * time.Hour)},
		{ID: uuid.NewString(), Name: "Chicken rice bowl", Calories: 650, ProteinG: 45, CarbsG: 70, FatG: 18, EatenAt: time.Now().Add(-1 * time.Hour)},
	})
}

func nutritionStatsFixture() ([]byte, error) {
	return json.Marshal(models.NutritionStats{
		Date:          time.Now().Format("2006-01-02"),
		TotalCalories: 1870,
		ProteinG:      112,
		CarbsG:        190,
		FatG:          54,
		WaterMl:       1250,
	})
}

func waterIntakeFixture() ([]byte, error) {
	return json.Marshal(models.WaterIntake{
		Date:    time.Now().Format("2006-01-02"),
		TotalMl: 1250,
		GoalMl:  2500,
	})
}

func strengthProgressFixture() ([]byte, error) {
	return json.Marshal([]models.StrengthProgress{
		{
			Exercise: "Goblet Squat",
			Points: []models.ProgressPoint{
				{Date: "2026-08-02", MaxWeightKg: 12, VolumeKg: 1080},
				{Date: "2026-08-16", MaxWeightKg: 14, VolumeKg: 1260},
				{Date: "2026-08-30", MaxWeightKg: 16, VolumeKg: 1440},
			},
		},
	})
}

func chatFixture() ([]byte, error) {
	return json.Marshal(models.ChatResponse{
		ConversationID: conversationID,
		Reply:          "Nice consistency this week: three sessions done. Tomorrow is a good day for legs; keep the squat at 16 kg and focus on depth.",
	})
}

func conversationsFixture() ([]byte, error) {
	return json.Marshal([]models.Conversation{
		{ID: conversationID, Title: "Weekly check-in", UpdatedAt: time.Now().Add(-2 * time.Hour)},
	})
}
