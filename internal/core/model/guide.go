package model

import (
	"fmt"
	"strings"
	"time"
)

// MaxGuideDays bounds the length of a generated learning guide.
const MaxGuideDays = 365

// DailyPlan is one day of a learning guide.
type DailyPlan struct {
	ID          string   `json:"_id"`
	Day         int      `json:"day"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Resources   []string `json:"resources"`
}

// LearningGuide is an AI-generated study plan for a topic.
type LearningGuide struct {
	ID           string      `json:"_id"`
	UserID       string      `json:"userId"`
	Topic        string      `json:"topic"`
	DurationDays int         `json:"durationDays"`
	DailyPlan    []DailyPlan `json:"dailyPlan"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

// CreateGuideInput asks the backend to generate a guide.
type CreateGuideInput struct {
	Topic        string `json:"topic"`
	DurationDays int    `json:"durationDays"`
}

// Validate checks the guide form.
func (input CreateGuideInput) Validate() error {
	if strings.TrimSpace(input.Topic) == "" {
		return invalid("topic is required")
	}
	if input.DurationDays < 1 || input.DurationDays > MaxGuideDays {
		return invalid(fmt.Sprintf("duration must be between 1 and %d days", MaxGuideDays))
	}
	return nil
}
