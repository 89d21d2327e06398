package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"studydesk/internal/core/model"
)

// CreateGuide asks the backend to generate a learning guide. Generation
// can take a while; callers should allow a generous context deadline.
func (client *Client) CreateGuide(ctx context.Context, input model.CreateGuideInput) (*model.LearningGuide, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	var guide model.LearningGuide
	if err := client.sendJSON(ctx, http.MethodPost, "/ai/", input, &guide, TagAILearning, TagUser); err != nil {
		return nil, fmt.Errorf("create guide: %w", err)
	}
	return &guide, nil
}

// ListGuides returns the user's learning guides.
func (client *Client) ListGuides(ctx context.Context) ([]model.LearningGuide, error) {
	var guides []model.LearningGuide
	if err := client.getJSON(ctx, TagAILearning, "/ai/", &guides); err != nil {
		return nil, fmt.Errorf("list guides: %w", err)
	}
	return guides, nil
}

// GetGuide returns one guide with its daily plan.
func (client *Client) GetGuide(ctx context.Context, id string) (*model.LearningGuide, error) {
	if id == "" {
		return nil, fmt.Errorf("get guide: %w", errEmptyID)
	}
	var guide model.LearningGuide
	if err := client.getJSON(ctx, TagAILearning, "/ai/"+url.PathEscape(id), &guide); err != nil {
		return nil, fmt.Errorf("get guide %s: %w", id, err)
	}
	return &guide, nil
}

// DeleteGuide removes a guide.
func (client *Client) DeleteGuide(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("delete guide: %w", errEmptyID)
	}
	if err := client.sendJSON(ctx, http.MethodDelete, "/ai/"+url.PathEscape(id), nil, nil, TagAILearning, TagUser); err != nil {
		return fmt.Errorf("delete guide %s: %w", id, err)
	}
	return nil
}
