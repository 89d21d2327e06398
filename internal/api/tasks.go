package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"studydesk/internal/core/model"
)

// CreateTask adds a task.
func (client *Client) CreateTask(ctx context.Context, input model.CreateTaskInput) (*model.Task, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	var task model.Task
	if err := client.sendJSON(ctx, http.MethodPost, "/tasks/", input, &task, TagTask, TagUser); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return &task, nil
}

// ListTasks returns every task of the signed-in user.
func (client *Client) ListTasks(ctx context.Context) ([]model.Task, error) {
	var tasks []model.Task
	if err := client.getJSON(ctx, TagTask, "/tasks/", &tasks); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// GetTask returns one task.
func (client *Client) GetTask(ctx context.Context, id string) (*model.Task, error) {
	if id == "" {
		return nil, fmt.Errorf("get task: %w", errEmptyID)
	}
	var task model.Task
	if err := client.getJSON(ctx, TagTask, "/tasks/"+url.PathEscape(id), &task); err != nil {
		return nil, fmt.Errorf("get task %s: %w", id, err)
	}
	return &task, nil
}

// UpdateTask applies a partial update.
func (client *Client) UpdateTask(ctx context.Context, id string, input model.UpdateTaskInput) (*model.Task, error) {
	if id == "" {
		return nil, fmt.Errorf("update task: %w", errEmptyID)
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}
	var task model.Task
	if err := client.sendJSON(ctx, http.MethodPatch, "/tasks/"+url.PathEscape(id), input, &task, TagTask, TagUser); err != nil {
		return nil, fmt.Errorf("update task %s: %w", id, err)
	}
	return &task, nil
}

// DeleteTask removes a task.
func (client *Client) DeleteTask(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("delete task: %w", errEmptyID)
	}
	if err := client.sendJSON(ctx, http.MethodDelete, "/tasks/"+url.PathEscape(id), nil, nil, TagTask, TagUser); err != nil {
		return fmt.Errorf("delete task %s: %w", id, err)
	}
	return nil
}
