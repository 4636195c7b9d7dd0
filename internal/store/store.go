package store

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/slavinskiyboris/stellar-burgers/internal/burgers"
)

type IngredientSource interface {
	Ingredients(ctx context.Context) ([]burgers.Ingredient, error)
}

type AuthSource interface {
	Register(ctx context.Context, data burgers.RegisterData) (burgers.Credentials, error)
	Login(ctx context.Context, data burgers.LoginData) (burgers.Credentials, error)
	Logout(ctx context.Context, refreshToken string) error
	CurrentUser(ctx context.Context) (burgers.User, error)
	UpdateUser(ctx context.Context, patch burgers.ProfilePatch) (burgers.User, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, password, code string) error
}

type OrderSource interface {
	Feed(ctx context.Context) (burgers.Feed, error)
	PersonalOrders(ctx context.Context) ([]burgers.Order, error)
	SubmitOrder(ctx context.Context, ingredientIDs []string) (burgers.Order, error)
	OrderByNumber(ctx context.Context, number int) (burgers.Order, error)
}

// Sources groups the remote collaborators of a store.
type Sources interface {
	IngredientSource
	AuthSource
	OrderSource
}

// Tokens persists the session tokens of the store's user.
type Tokens interface {
	AccessToken(ctx context.Context) (string, error)
	RefreshToken(ctx context.Context) (string, error)
	Save(ctx context.Context, access, refresh string) error
	Clear(ctx context.Context) error
}

// Store holds the state of one session. Dispatches are serialised; async
// commands run outside the lock and dispatch their outcome when they settle,
// so the last settled request wins.
type Store struct {
	mu     sync.Mutex
	state  State
	src    Sources
	tokens Tokens
	newID  func() string
}

func New(src Sources, tokens Tokens) *Store {
	return &Store{
		state:  Initial(),
		src:    src,
		tokens: tokens,
		newID:  uuid.NewString,
	}
}

// State returns a snapshot. Reducers are copy-on-write so the snapshot stays
// valid after later dispatches.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Store) Dispatch(a Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, a)
	return s.state
}
