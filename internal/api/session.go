package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Tokens is where a Session reads and rotates its tokens.
type Tokens interface {
	AccessToken(ctx context.Context) (string, error)
	RefreshToken(ctx context.Context) (string, error)
	Save(ctx context.Context, access, refresh string) error
}

// Session binds the client to one user's tokens.
type Session struct {
	c      *Client
	tokens Tokens
}

func (c *Client) Session(tokens Tokens) *Session {
	return &Session{c: c, tokens: tokens}
}

type tokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// RefreshTokens trades the stored refresh token for a new pair and saves it.
func (s *Session) RefreshTokens(ctx context.Context) (string, error) {
	refresh, err := s.tokens.RefreshToken(ctx)
	if err != nil {
		return "", err
	}
	if refresh == "" {
		return "", ErrNoRefresh
	}
	var out tokenResponse
	if err := s.c.do(ctx, http.MethodPost, "/auth/token", "", map[string]string{"token": refresh}, &out); err != nil {
		return "", fmt.Errorf("refresh token: %w", err)
	}
	if err := s.tokens.Save(ctx, out.AccessToken, out.RefreshToken); err != nil {
		return "", fmt.Errorf("save refreshed tokens: %w", err)
	}
	return out.AccessToken, nil
}

// authorized makes an authenticated call. A missing access token (its cookie
// lapsed) is renewed up front; an expired one is refreshed and the call is
// retried once.
func (s *Session) authorized(ctx context.Context, method, path string, body, out any) error {
	access, err := s.tokens.AccessToken(ctx)
	if err != nil {
		return err
	}
	if access == "" {
		access, err = s.RefreshTokens(ctx)
		if errors.Is(err, ErrNoRefresh) {
			return s.c.do(ctx, method, path, "", body, out)
		}
		if err != nil {
			return err
		}
		return s.c.do(ctx, method, path, access, body, out)
	}
	err = s.c.do(ctx, method, path, access, body, out)
	if !errors.Is(err, ErrJWTExpired) {
		return err
	}
	access, err = s.RefreshTokens(ctx)
	if err != nil {
		return err
	}
	return s.c.do(ctx, method, path, access, body, out)
}
