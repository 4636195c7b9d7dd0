package orderlog

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Entry struct {
	EventID     string    `json:"event_id"`
	OrderNumber int       `json:"number"`
	OrderName   string    `json:"name"`
	SessionID   string    `json:"-"`
	UserEmail   string    `json:"user_email,omitempty"`
	Ingredients []string  `json:"ingredients"`
	TotalPrice  int       `json:"total_price"`
	PlacedAt    time.Time `json:"placed_at"`
}

type Repo struct{ DB *pgxpool.Pool }

// Insert is idempotent on event id.
func (r *Repo) Insert(ctx context.Context, e Entry) error {
	_, err := r.DB.Exec(ctx, `
		INSERT INTO placed_orders(event_id, order_number, order_name, session_id, user_email, ingredients, total_price, placed_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		ON CONFLICT (event_id) DO NOTHING
	`, e.EventID, e.OrderNumber, e.OrderName, e.SessionID, e.UserEmail, e.Ingredients, e.TotalPrice, e.PlacedAt)
	return err
}

func (r *Repo) BySession(ctx context.Context, sessionID string, limit int) ([]Entry, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT event_id::text, order_number, order_name, session_id, user_email, ingredients, total_price, placed_at
		FROM placed_orders WHERE session_id=$1 ORDER BY placed_at DESC LIMIT $2`, sessionID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.EventID, &e.OrderNumber, &e.OrderName, &e.SessionID, &e.UserEmail, &e.Ingredients, &e.TotalPrice, &e.PlacedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
