package model

import (
	"strings"
	"time"
)

// Task is a to-do item.
type Task struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Completed   bool      `json:"completed"`
	UserID      string    `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateTaskInput creates a task.
type CreateTaskInput struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   bool    `json:"completed"`
}

// Validate checks the task form.
func (input CreateTaskInput) Validate() error {
	if strings.TrimSpace(input.Title) == "" {
		return invalid("title is required")
	}
	return nil
}

// UpdateTaskInput is a partial update; nil fields are not sent.
type UpdateTaskInput struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

// Validate rejects empty updates and blank titles.
func (input UpdateTaskInput) Validate() error {
	if input.Title == nil && input.Description == nil && input.Completed == nil {
		return invalid("nothing to update")
	}
	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		return invalid("title cannot be blank")
	}
	return nil
}

// CountTasks returns total, completed and pending counts.
func CountTasks(tasks []Task) (total, completed, pending int) {
	for _, task := range tasks {
		if task.Completed {
			completed++
		}
	}
	return len(tasks), completed, len(tasks) - completed
}
