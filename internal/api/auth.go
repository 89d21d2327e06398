package api

import (
	"context"
	"fmt"
	"net/http"

	"studydesk/internal/core/model"
)

// Login signs in with email and password. The session cookie lands in the jar.
func (client *Client) Login(ctx context.Context, input model.LoginInput) (*model.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	var user model.User
	if err := client.sendJSON(ctx, http.MethodPost, "/auth/login", input, &user, TagUser); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return &user, nil
}

// Register creates a local account. It does not sign in.
func (client *Client) Register(ctx context.Context, input model.RegisterInput) (*model.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	var user model.User
	if err := client.sendJSON(ctx, http.MethodPost, "/auth/register", input, &user); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	return &user, nil
}

// GoogleLogin exchanges an OAuth authorization code for a session.
func (client *Client) GoogleLogin(ctx context.Context, code string) (*model.User, error) {
	if code == "" {
		return nil, fmt.Errorf("google login: %w: authorization code is required", model.ErrValidation)
	}
	body := struct {
		Code string `json:"code"`
	}{Code: code}
	var user model.User
	if err := client.sendJSON(ctx, http.MethodPost, "/auth/google-login", body, &user, TagUser); err != nil {
		return nil, fmt.Errorf("google login: %w", err)
	}
	return &user, nil
}

// CurrentUser returns the signed-in account.
func (client *Client) CurrentUser(ctx context.Context) (*model.User, error) {
	var user model.User
	if err := client.getJSON(ctx, TagUser, "/auth/current-user", &user); err != nil {
		return nil, fmt.Errorf("current user: %w", err)
	}
	return &user, nil
}

// Logout ends the session on the backend and drops local cookies.
func (client *Client) Logout(ctx context.Context) (string, error) {
	var body struct {
		Message string `json:"message"`
	}
	err := client.sendJSON(ctx, http.MethodPost, "/auth/logout", nil, &body, TagUser)
	client.ResetSession()
	if err != nil {
		return "", fmt.Errorf("logout: %w", err)
	}
	return body.Message, nil
}

// UpdateProfile changes name or email.
func (client *Client) UpdateProfile(ctx context.Context, input model.ProfileUpdate) (*model.User, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	var user model.User
	if err := client.sendJSON(ctx, http.MethodPatch, "/auth/update-profile", input, &user, TagUser); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return &user, nil
}

// Stats returns the dashboard aggregates.
func (client *Client) Stats(ctx context.Context) (model.Stats, error) {
	var stats model.Stats
	if err := client.getJSON(ctx, TagUser, "/auth/stats", &stats); err != nil {
		return model.Stats{}, fmt.Errorf("stats: %w", err)
	}
	return stats, nil
}

// ResetPassword sets a new password for an account.
func (client *Client) ResetPassword(ctx context.Context, input model.ResetPasswordInput) error {
	if err := input.Validate(); err != nil {
		return err
	}
	if err := client.sendJSON(ctx, http.MethodPost, "/auth/reset-password", input, nil); err != nil {
		return fmt.Errorf("reset password: %w", err)
	}
	return nil
}
