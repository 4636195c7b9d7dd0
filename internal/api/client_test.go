package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/slavinskiyboris/stellar-burgers/internal/burgers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memTokens struct {
	mu              sync.Mutex
	access, refresh string
}

func (m *memTokens) AccessToken(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.access, nil
}

func (m *memTokens) RefreshToken(context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.refresh, nil
}

func (m *memTokens) Save(_ context.Context, access, refresh string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.access, m.refresh = access, refresh
	return nil
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func newTestSession(t *testing.T, h http.Handler, tokens *memTokens) *Session {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, srv.Client()).Session(tokens)
}

func TestIngredients(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ingredients", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"data": []map[string]any{
				{"_id": "643d69a5c3f7b9001cfa093c", "name": "Craterbun N-200i", "type": "bun", "price": 1255, "calories": 420},
			},
		})
	})
	s := newTestSession(t, mux, &memTokens{})

	items, err := s.Ingredients(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, burgers.TypeBun, items[0].Type)
	assert.Equal(t, 1255, items[0].Price)
	assert.Equal(t, 420, items[0].Calories)
}

func TestUnsuccessfulResponse(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "email or password are incorrect"})
	})
	s := newTestSession(t, mux, &memTokens{})

	_, err := s.Login(context.Background(), burgers.LoginData{Email: "a@b.c", Password: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsuccessful)
	assert.NotErrorIs(t, err, ErrJWTExpired)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
}

func TestLoginReturnsCredentials(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body burgers.LoginData
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ann@example.com", body.Email)
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true, "accessToken": "Bearer a1", "refreshToken": "r1",
			"user": map[string]string{"name": "Ann", "email": "ann@example.com"},
		})
	})
	s := newTestSession(t, mux, &memTokens{})

	cred, err := s.Login(context.Background(), burgers.LoginData{Email: "ann@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "Bearer a1", cred.AccessToken)
	assert.Equal(t, "r1", cred.RefreshToken)
	assert.Equal(t, "Ann", cred.User.Name)
}

func TestExpiredTokenIsRefreshedAndRetried(t *testing.T) {
	var userCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("GET /auth/user", func(w http.ResponseWriter, r *http.Request) {
		userCalls.Add(1)
		if r.Header.Get("Authorization") != "Bearer fresh" {
			writeJSON(w, http.StatusForbidden, map[string]any{"success": false, "message": "jwt expired"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "user": map[string]string{"name": "Ann", "email": "ann@example.com"}})
	})
	mux.HandleFunc("POST /auth/token", func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"token":"old-refresh"}`, string(b))
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "accessToken": "Bearer fresh", "refreshToken": "new-refresh"})
	})
	tokens := &memTokens{access: "Bearer stale", refresh: "old-refresh"}
	s := newTestSession(t, mux, tokens)

	u, err := s.CurrentUser(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ann", u.Name)
	assert.Equal(t, int32(2), userCalls.Load())
	assert.Equal(t, "Bearer fresh", tokens.access)
	assert.Equal(t, "new-refresh", tokens.refresh)
}

func TestMissingAccessTokenIsRenewed(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /orders", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer fresh", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "orders": []any{}, "total": 0, "totalToday": 0})
	})
	mux.HandleFunc("POST /auth/token", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "accessToken": "Bearer fresh", "refreshToken": "r2"})
	})
	s := newTestSession(t, mux, &memTokens{refresh: "r1"})

	orders, err := s.PersonalOrders(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestRefreshWithoutToken(t *testing.T) {
	s := newTestSession(t, http.NewServeMux(), &memTokens{})
	_, err := s.RefreshTokens(context.Background())
	assert.ErrorIs(t, err, ErrNoRefresh)
}

func TestFeedAndOrderByNumber(t *testing.T) {
	order := map[string]any{
		"_id": "o1", "number": 1234, "name": "Space burger", "status": "done",
		"createdAt": "2024-05-01T10:00:00.000Z", "updatedAt": "2024-05-01T10:00:01.000Z",
		"ingredients": []string{"a", "b", "a"},
	}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /orders/all", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "orders": []any{order}, "total": 9000, "totalToday": 120})
	})
	mux.HandleFunc("GET /orders/1234", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "orders": []any{order}})
	})
	mux.HandleFunc("GET /orders/5", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "orders": []any{}})
	})
	s := newTestSession(t, mux, &memTokens{})
	ctx := context.Background()

	feed, err := s.Feed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 9000, feed.Total)
	assert.Equal(t, 120, feed.TotalToday)
	require.Len(t, feed.Orders, 1)
	assert.Equal(t, []string{"a", "b", "a"}, feed.Orders[0].Ingredients)
	assert.Equal(t, burgers.StatusDone, feed.Orders[0].Status)
	assert.False(t, feed.Orders[0].CreatedAt.IsZero())
	assert.Zero(t, feed.Orders[0].TotalPrice)

	o, err := s.OrderByNumber(ctx, 1234)
	require.NoError(t, err)
	assert.Equal(t, "Space burger", o.Name)

	_, err = s.OrderByNumber(ctx, 5)
	assert.ErrorIs(t, err, ErrOrderAbsent)
}

func TestSubmitOrderAcceptsIngredientObjects(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /orders", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer a1", r.Header.Get("Authorization"))
		var body struct {
			Ingredients []string `json:"ingredients"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []string{"bun", "main", "bun"}, body.Ingredients)

		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"name":    "Fluorescent burger",
			"order": map[string]any{
				"_id": "x", "number": 55001, "status": "done", "price": 25,
				"createdAt":   "2024-05-01T10:00:00.000Z",
				"ingredients": []map[string]any{{"_id": "bun", "price": 10}, {"_id": "main", "price": 5}, {"_id": "bun", "price": 10}},
			},
		})
	})
	s := newTestSession(t, mux, &memTokens{access: "Bearer a1", refresh: "r1"})

	o, err := s.SubmitOrder(context.Background(), []string{"bun", "main", "bun"})
	require.NoError(t, err)
	assert.Equal(t, 55001, o.Number)
	assert.Equal(t, "Fluorescent burger", o.Name)
	assert.Equal(t, []string{"bun", "main", "bun"}, o.Ingredients)
	assert.Equal(t, 25, o.TotalPrice)
}

func TestLogoutSendsRefreshToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/logout", func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"token":"r1"}`, string(b))
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "Successful logout"})
	})
	s := newTestSession(t, mux, &memTokens{})
	require.NoError(t, s.Logout(context.Background(), "r1"))
}
