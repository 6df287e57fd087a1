package client

import (
	"context"
	"net/http"

	"stickynotes/dto"
)

func (c *Client) Register(ctx context.Context, username, password string) (*dto.UserResponse, error) {
	var user dto.UserResponse
	req := dto.RegisterRequest{Username: username, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/user/register/", "", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login exchanges credentials for an access/refresh token pair.
func (c *Client) Login(ctx context.Context, username, password string) (*dto.TokenPair, error) {
	var pair dto.TokenPair
	req := dto.TokenRequest{Username: username, Password: password}
	if err := c.do(ctx, http.MethodPost, "/api/token/", "", req, &pair); err != nil {
		return nil, err
	}
	return &pair, nil
}

// Refresh returns a new access token for the given refresh token.
func (c *Client) Refresh(ctx context.Context, refresh string) (string, error) {
	var out dto.AccessToken
	if err := c.do(ctx, http.MethodPost, "/api/token/refresh/", "", dto.RefreshRequest{Refresh: refresh}, &out); err != nil {
		return "", err
	}
	return out.Access, nil
}

// Logout blacklists the refresh token. The access token, when still held, is
// sent along so the server revokes it too.
func (c *Client) Logout(ctx context.Context, refresh string) error {
	access := ""
	if c.tokens != nil {
		access = c.tokens.AccessToken()
	}
	return c.do(ctx, http.MethodPost, "/api/token/blacklist/", access, dto.RefreshRequest{Refresh: refresh}, nil)
}
