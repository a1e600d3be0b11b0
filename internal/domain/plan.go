package domain

import (
	"time"
)

// PlanType distinguishes the two kinds of generated plans.
type PlanType string

// Define constants for plan types
const (
	PlanTypeWorkout PlanType = "workout"
	PlanTypeDiet    PlanType = "diet"
)

// IsValidPlanType reports whether t is one of the two plan kinds.
func IsValidPlanType(t PlanType) bool {
	return t == PlanTypeWorkout || t == PlanTypeDiet
}

// SavedPlan is a frozen snapshot of a generated coaching result. Content is
// never edited after save, only deleted by ID.
type SavedPlan struct {
	ID        string    `json:"id"`
	Type      PlanType  `json:"type"`
	Title     string    `json:"title"`
	Content   string    `json:"content"` // Line-oriented markup, see internal/planmark.
	CreatedAt time.Time `json:"createdAt"`
}

// PlanTitle builds the conventional "<Kind> Plan - <date>" label used when a
// generated plan is saved.
func PlanTitle(t PlanType, at time.Time) string {
	kind := "Workout"
	if t == PlanTypeDiet {
		kind = "Diet"
	}
	return kind + " Plan - " + at.Format("1/2/2006")
}
