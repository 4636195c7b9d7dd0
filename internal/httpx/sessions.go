package httpx

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/slavinskiyboris/stellar-burgers/internal/store"
)

// StoreFactory builds the store of a new session.
type StoreFactory func(sid string) *store.Store

type session struct {
	id    string
	store *store.Store
	// submit is held for the whole order submission.
	submit   sync.Mutex
	lastSeen time.Time
}

// Registry keeps one store per browser session.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*session
	build    StoreFactory
	now      func() time.Time
}

func NewRegistry(build StoreFactory) *Registry {
	return &Registry{sessions: make(map[string]*session), build: build, now: time.Now}
}

func (g *Registry) get(sid string) *session {
	g.mu.Lock()
	defer g.mu.Unlock()
	s, ok := g.sessions[sid]
	if !ok {
		s = &session{id: sid, store: g.build(sid)}
		g.sessions[sid] = s
	}
	s.lastSeen = g.now()
	return s
}

// Sweep drops sessions idle for longer than idle. Tokens survive in their
// stores, so a returning session is rebuilt and re-checks auth.
func (g *Registry) Sweep(idle time.Duration) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	cutoff := g.now().Add(-idle)
	n := 0
	for sid, s := range g.sessions {
		if s.lastSeen.Before(cutoff) {
			delete(g.sessions, sid)
			n++
		}
	}
	return n
}

// Len reports the number of live sessions.
func (g *Registry) Len() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.sessions)
}

type ctxKey struct{}

// Middleware binds the request to its session, issuing a cookie on first
// contact, and resolves the auth check once per store.
func (g *Registry) Middleware(cookie string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sid string
			if c, err := r.Cookie(cookie); err == nil {
				if _, err := uuid.Parse(c.Value); err == nil {
					sid = c.Value
				}
			}
			if sid == "" {
				sid = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     cookie,
					Value:    sid,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
			s := g.get(sid)
			if !store.IsAuthChecked(s.store.State()) {
				s.store.CheckAuth(r.Context())
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKey{}, s)))
		})
	}
}

func sessionFrom(r *http.Request) *session {
	s, _ := r.Context().Value(ctxKey{}).(*session)
	return s
}
