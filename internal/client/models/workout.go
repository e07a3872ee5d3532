package models

import "time"

// Exercise is one prescribed or performed movement within a plan or session.
type Exercise struct {
	Name     string  `json:"name"`
	Sets     int     `json:"sets"`
	Reps     int     `json:"reps"`
	WeightKg float64 `json:"weightKg,omitempty"`
}

// WorkoutPlan is a reusable training template.
type WorkoutPlan struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Level       string     `json:"level,omitempty"`
	DaysPerWeek int        `json:"daysPerWeek,omitempty"`
	Exercises   []Exercise `json:"exercises,omitempty"`
}

// WorkoutSession is a single execution of a plan (or an ad-hoc workout).
type WorkoutSession struct {
	ID             string     `json:"id"`
	PlanID         string     `json:"planId,omitempty"`
	StartedAt      time.Time  `json:"startedAt"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
	DurationMin    int        `json:"durationMin,omitempty"`
	CaloriesBurned int        `json:"caloriesBurned,omitempty"`
	Exercises      []Exercise `json:"exercises,omitempty"`
}

// SessionStart begins a session, optionally bound to a plan.
type SessionStart struct {
	PlanID string `json:"planId,omitempty"`
}

// SessionCompletion closes out a session with its recorded results.
type SessionCompletion struct {
	DurationMin    int        `json:"durationMin" validate:"gte=0"`
	CaloriesBurned int        `json:"caloriesBurned,omitempty"`
	Exercises      []Exercise `json:"exercises,omitempty"`
}
