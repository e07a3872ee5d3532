package models

import "time"

// Meal is one logged meal.
type Meal struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Calories int       `json:"calories"`
	ProteinG float64   `json:"proteinG,omitempty"`
	CarbsG   float64   `json:"carbsG,omitempty"`
	FatG     float64   `json:"fatG,omitempty"`
	EatenAt  time.Time `json:"eatenAt"`
}

// MealLog creates a meal entry.
type MealLog struct {
	Name     string    `json:"name" validate:"required"`
	Calories int       `json:"calories" validate:"gte=0"`
	ProteinG float64   `json:"proteinG,omitempty"`
	CarbsG   float64   `json:"carbsG,omitempty"`
	FatG     float64   `json:"fatG,omitempty"`
	EatenAt  time.Time `json:"eatenAt,omitempty"`
}

// NutritionStats is the per-day aggregate the nutrition service computes.
type NutritionStats struct {
	Date          string  `json:"date"`
	TotalCalories int     `json:"totalCalories"`
	ProteinG      float64 `json:"proteinG"`
	CarbsG        float64 `json:"carbsG"`
	FatG          float64 `json:"fatG"`
	WaterMl       int     `json:"waterMl"`
}

// WaterIntake tracks hydration against a daily goal.
type WaterIntake struct {
	Date    string `json:"date"`
	TotalMl int    `json:"totalMl"`
	GoalMl  int    `json:"goalMl,omitempty"`
}

// WaterLog adds to the day's intake.
type WaterLog struct {
	AmountMl int `json:"amountMl" validate:"gt=0"`
}
