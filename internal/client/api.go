package client

import (
	"context"
	"net/http"

	"creativehub/internal/domain/entity"
	"creativehub/internal/usecase"
)

const settingsModulesPath = "/api/settings/modules"

// Login exchanges credentials for a token and stores it in the session.
func (c *Client) Login(ctx context.Context, email, password string) (*usecase.AuthOutput, error) {
	var out usecase.AuthOutput
	input := usecase.LoginInput{Email: email, Password: password}
	if err := c.Do(ctx, http.MethodPost, "/api/auth/login", nil, input, &out); err != nil {
		return nil, err
	}
	if c.session != nil {
		if err := c.session.Set(out.Token); err != nil {
			return nil, err
		}
	}

	return &out, nil
}

// Logout forgets the session token. The API keeps no server-side session.
func (c *Client) Logout() error {
	if c.session == nil {
		return nil
	}

	return c.session.Clear()
}

// Me returns the signed-in user.
func (c *Client) Me(ctx context.Context) (*entity.User, error) {
	var user entity.User
	if err := c.Do(ctx, http.MethodGet, "/api/auth/me", nil, nil, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// FeatureFlags fetches the platform module map.
func (c *Client) FeatureFlags(ctx context.Context) (entity.FeatureFlags, error) {
	var flags entity.FeatureFlags
	if err := c.Do(ctx, http.MethodGet, settingsModulesPath, nil, nil, &flags); err != nil {
		return nil, err
	}

	return flags, nil
}

// SaveFeatureFlags replaces the whole module map with one PATCH.
func (c *Client) SaveFeatureFlags(ctx context.Context, flags entity.FeatureFlags) (entity.FeatureFlags, error) {
	var saved entity.FeatureFlags
	if err := c.Do(ctx, http.MethodPatch, settingsModulesPath, nil, flags, &saved); err != nil {
		return nil, err
	}

	return saved, nil
}
