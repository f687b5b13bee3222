package api

import (
	"context"
	"fmt"
)

// Login exchanges credentials for a token and the account it belongs to.
// Backend errors come back with the server's own message so the login screen
// can show it inline.
func (c *Client) Login(ctx context.Context, creds Credentials) (*LoginResponse, error) {
	resp, err := c.doRequest(ctx, "POST", "/auth/login", creds)
	if err != nil {
		return nil, err
	}

	var loginResp LoginResponse
	if err := parseResponse(resp, &loginResp); err != nil {
		return nil, err
	}

	return &loginResp, nil
}

// Profile retrieves the account behind the current token.
func (c *Client) Profile(ctx context.Context) (*User, error) {
	resp, err := c.doRequest(ctx, "GET", "/auth/profile", nil)
	if err != nil {
		return nil, err
	}

	var out struct {
		User User `json:"user"`
	}
	if err := parseResponse(resp, &out); err != nil {
		return nil, err
	}

	return &out.User, nil
}

// UpdateProfile replaces the profile fields and returns the server-confirmed
// user.
func (c *Client) UpdateProfile(ctx context.Context, update ProfileUpdate) (*User, error) {
	resp, err := c.doRequest(ctx, "PUT", "/auth/profile", update)
	if err != nil {
		return nil, err
	}

	var out struct {
		User User `json:"user"`
	}
	if err := parseResponse(resp, &out); err != nil {
		return nil, err
	}

	return &out.User, nil
}

// SetAvatar updates only the avatar. A nil value sends an explicit JSON null,
// which the backend treats as photo removal.
func (c *Client) SetAvatar(ctx context.Context, avatarURL *string) (*User, error) {
	body := struct {
		AvatarURL *string `json:"avatarUrl"`
	}{AvatarURL: avatarURL}

	resp, err := c.doRequest(ctx, "PUT", "/auth/profile", body)
	if err != nil {
		return nil, err
	}

	var out struct {
		User User `json:"user"`
	}
	if err := parseResponse(resp, &out); err != nil {
		return nil, err
	}

	return &out.User, nil
}

// ChangePassword rotates the current account's password.
func (c *Client) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	body := struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}{currentPassword, newPassword}

	resp, err := c.doRequest(ctx, "PUT", "/auth/profile/password", body)
	if err != nil {
		return err
	}

	return parseResponse(resp, nil)
}

// ListUsers retrieves every account in the workspace. Admin only.
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	resp, err := c.doRequest(ctx, "GET", "/auth/users", nil)
	if err != nil {
		return nil, err
	}

	var out struct {
		Users []User `json:"users"`
	}
	if err := parseResponse(resp, &out); err != nil {
		return nil, err
	}

	return out.Users, nil
}

// Register creates a new account. Admin only.
func (c *Client) Register(ctx context.Context, user NewUser) (*User, error) {
	resp, err := c.doRequest(ctx, "POST", "/auth/register", user)
	if err != nil {
		return nil, err
	}

	var out struct {
		User User `json:"user"`
	}
	if err := parseResponse(resp, &out); err != nil {
		return nil, err
	}

	return &out.User, nil
}

// UpdateUser modifies an existing account. Admin only.
func (c *Client) UpdateUser(ctx context.Context, id string, update UserUpdate) (*User, error) {
	resp, err := c.doRequest(ctx, "PUT", fmt.Sprintf("/auth/users/%s", id), update)
	if err != nil {
		return nil, err
	}

	var out struct {
		User User `json:"user"`
	}
	if err := parseResponse(resp, &out); err != nil {
		return nil, err
	}

	return &out.User, nil
}

// DeleteUser removes an account. Admin only.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	resp, err := c.doRequest(ctx, "DELETE", fmt.Sprintf("/auth/users/%s", id), nil)
	if err != nil {
		return err
	}

	return parseResponse(resp, nil)
}
