package session

import (
	"context"
	"errors"
	"fmt"
)

// AccessStore holds access tokens by session id.
type AccessStore interface {
	Get(ctx context.Context, sid string) (string, error)
	Set(ctx context.Context, sid, token string) error
	Delete(ctx context.Context, sid string) error
}

// RefreshStore holds refresh tokens by session id.
type RefreshStore interface {
	Get(ctx context.Context, sid string) (string, error)
	Put(ctx context.Context, sid, token string) error
	Delete(ctx context.Context, sid string) error
}

type Manager struct {
	access  AccessStore
	refresh RefreshStore
}

func NewManager(access AccessStore, refresh RefreshStore) *Manager {
	return &Manager{access: access, refresh: refresh}
}

// For returns the token pair of one session.
func (m *Manager) For(sid string) *Tokens {
	return &Tokens{sid: sid, m: m}
}

type Tokens struct {
	sid string
	m   *Manager
}

func (t *Tokens) AccessToken(ctx context.Context) (string, error) {
	return t.m.access.Get(ctx, t.sid)
}

func (t *Tokens) RefreshToken(ctx context.Context) (string, error) {
	return t.m.refresh.Get(ctx, t.sid)
}

func (t *Tokens) Save(ctx context.Context, access, refresh string) error {
	if err := t.m.access.Set(ctx, t.sid, access); err != nil {
		return fmt.Errorf("save access token: %w", err)
	}
	if err := t.m.refresh.Put(ctx, t.sid, refresh); err != nil {
		return fmt.Errorf("save refresh token: %w", err)
	}
	return nil
}

// Clear drops both tokens, attempting each even if the other fails.
func (t *Tokens) Clear(ctx context.Context) error {
	return errors.Join(
		t.m.access.Delete(ctx, t.sid),
		t.m.refresh.Delete(ctx, t.sid),
	)
}
