package api

import (
	"context"
	"net/http"

	"github.com/slavinskiyboris/stellar-burgers/internal/burgers"
)

type authResponse struct {
	tokenResponse
	User burgers.User `json:"user"`
}

func (r authResponse) credentials() burgers.Credentials {
	return burgers.Credentials{User: r.User, AccessToken: r.AccessToken, RefreshToken: r.RefreshToken}
}

type userResponse struct {
	User burgers.User `json:"user"`
}

func (s *Session) Register(ctx context.Context, data burgers.RegisterData) (burgers.Credentials, error) {
	var out authResponse
	if err := s.c.do(ctx, http.MethodPost, "/auth/register", "", data, &out); err != nil {
		return burgers.Credentials{}, err
	}
	return out.credentials(), nil
}

func (s *Session) Login(ctx context.Context, data burgers.LoginData) (burgers.Credentials, error) {
	var out authResponse
	if err := s.c.do(ctx, http.MethodPost, "/auth/login", "", data, &out); err != nil {
		return burgers.Credentials{}, err
	}
	return out.credentials(), nil
}

func (s *Session) Logout(ctx context.Context, refreshToken string) error {
	return s.c.do(ctx, http.MethodPost, "/auth/logout", "", map[string]string{"token": refreshToken}, nil)
}

func (s *Session) CurrentUser(ctx context.Context) (burgers.User, error) {
	var out userResponse
	if err := s.authorized(ctx, http.MethodGet, "/auth/user", nil, &out); err != nil {
		return burgers.User{}, err
	}
	return out.User, nil
}

func (s *Session) UpdateUser(ctx context.Context, patch burgers.ProfilePatch) (burgers.User, error) {
	var out userResponse
	if err := s.authorized(ctx, http.MethodPatch, "/auth/user", patch, &out); err != nil {
		return burgers.User{}, err
	}
	return out.User, nil
}

func (s *Session) ForgotPassword(ctx context.Context, email string) error {
	return s.c.do(ctx, http.MethodPost, "/password-reset", "", map[string]string{"email": email}, nil)
}

// ResetPassword sets a new password using the code mailed by ForgotPassword.
func (s *Session) ResetPassword(ctx context.Context, password, code string) error {
	return s.c.do(ctx, http.MethodPost, "/password-reset/reset", "", map[string]string{"password": password, "token": code}, nil)
}
