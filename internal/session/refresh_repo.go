package session

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RefreshRepo is the durable home of refresh tokens, one per session.
type RefreshRepo struct{ DB *pgxpool.Pool }

func (r *RefreshRepo) Get(ctx context.Context, sid string) (string, error) {
	var tok string
	err := r.DB.QueryRow(ctx, `SELECT token FROM session_refresh_tokens WHERE session_id=$1`, sid).Scan(&tok)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	return tok, err
}

func (r *RefreshRepo) Put(ctx context.Context, sid, token string) error {
	_, err := r.DB.Exec(ctx, `
		INSERT INTO session_refresh_tokens(session_id, token, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (session_id) DO UPDATE SET token=EXCLUDED.token, updated_at=now()
	`, sid, token)
	return err
}

func (r *RefreshRepo) Delete(ctx context.Context, sid string) error {
	_, err := r.DB.Exec(ctx, `DELETE FROM session_refresh_tokens WHERE session_id=$1`, sid)
	return err
}
