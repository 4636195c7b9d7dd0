package store

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/slavinskiyboris/stellar-burgers/internal/burgers"
)

var ErrNoBun = errors.New("cart has no bun")

// run drives one async action through its lifecycle. The remote call is
// detached from ctx cancellation: once issued, its outcome always lands in
// the store. The returned error is informational, the state already holds
// the failure.
func run[T any](ctx context.Context, s *Store, name string, call func(context.Context) (T, error), settle func(Phase, T) Action) (T, error) {
	var zero T
	s.Dispatch(settle(Pending, zero))

	v, err := call(context.WithoutCancel(ctx))
	if err != nil {
		log.Printf("%s: %v", name, err)
		s.Dispatch(settle(Rejected, zero))
		return zero, fmt.Errorf("%s: %w", name, err)
	}
	s.Dispatch(settle(Fulfilled, v))
	return v, nil
}

func (s *Store) LoadIngredients(ctx context.Context) error {
	_, err := run(ctx, s, "load ingredients", s.src.Ingredients,
		func(p Phase, items []burgers.Ingredient) Action { return IngredientsLoaded{Phase: p, Items: items} })
	return err
}

func (s *Store) Register(ctx context.Context, data burgers.RegisterData) error {
	_, err := run(ctx, s, "register",
		func(ctx context.Context) (burgers.User, error) {
			cred, err := s.src.Register(ctx, data)
			if err != nil {
				return burgers.User{}, err
			}
			return cred.User, s.tokens.Save(ctx, cred.AccessToken, cred.RefreshToken)
		},
		func(p Phase, u burgers.User) Action { return Registered{Phase: p, User: u} })
	return err
}

func (s *Store) Login(ctx context.Context, data burgers.LoginData) error {
	_, err := run(ctx, s, "login",
		func(ctx context.Context) (burgers.User, error) {
			cred, err := s.src.Login(ctx, data)
			if err != nil {
				return burgers.User{}, err
			}
			return cred.User, s.tokens.Save(ctx, cred.AccessToken, cred.RefreshToken)
		},
		func(p Phase, u burgers.User) Action { return LoggedIn{Phase: p, User: u} })
	return err
}

func (s *Store) LoadUser(ctx context.Context) error {
	_, err := run(ctx, s, "load user", s.src.CurrentUser,
		func(p Phase, u burgers.User) Action { return UserLoaded{Phase: p, User: u} })
	return err
}

// Logout ends the remote session and drops both persisted tokens.
func (s *Store) Logout(ctx context.Context) error {
	_, err := run(ctx, s, "logout",
		func(ctx context.Context) (struct{}, error) {
			refresh, err := s.tokens.RefreshToken(ctx)
			if err != nil {
				return struct{}{}, err
			}
			if err := s.src.Logout(ctx, refresh); err != nil {
				return struct{}{}, err
			}
			return struct{}{}, s.tokens.Clear(ctx)
		},
		func(p Phase, _ struct{}) Action { return LoggedOut{Phase: p} })
	return err
}

func (s *Store) UpdateProfile(ctx context.Context, patch burgers.ProfilePatch) error {
	_, err := run(ctx, s, "update profile",
		func(ctx context.Context) (burgers.User, error) { return s.src.UpdateUser(ctx, patch) },
		func(p Phase, u burgers.User) Action { return ProfileUpdated{Phase: p, User: u} })
	return err
}

func (s *Store) RequestPasswordReset(ctx context.Context, email string) error {
	_, err := run(ctx, s, "password reset",
		func(ctx context.Context) (struct{}, error) { return struct{}{}, s.src.ForgotPassword(ctx, email) },
		func(p Phase, _ struct{}) Action { return PasswordResetRequested{Phase: p} })
	return err
}

func (s *Store) ResetPassword(ctx context.Context, password, code string) error {
	_, err := run(ctx, s, "reset password",
		func(ctx context.Context) (struct{}, error) { return struct{}{}, s.src.ResetPassword(ctx, password, code) },
		func(p Phase, _ struct{}) Action { return PasswordReset{Phase: p} })
	return err
}

// CheckAuth resolves whether the session has a user. With a stored access
// token the user is loaded first and the check completes once that load
// settles, whatever its outcome.
func (s *Store) CheckAuth(ctx context.Context) {
	token, err := s.tokens.AccessToken(ctx)
	if err != nil {
		log.Printf("check auth: read access token: %v", err)
	}
	if token != "" {
		_ = s.LoadUser(ctx)
	}
	s.Dispatch(AuthChecked{})
}

func (s *Store) LoadFeed(ctx context.Context) error {
	_, err := run(ctx, s, "load feed", s.src.Feed,
		func(p Phase, f burgers.Feed) Action { return FeedLoaded{Phase: p, Feed: f} })
	return err
}

func (s *Store) LoadPersonalOrders(ctx context.Context) error {
	_, err := run(ctx, s, "load personal orders", s.src.PersonalOrders,
		func(p Phase, orders []burgers.Order) Action { return PersonalOrdersLoaded{Phase: p, Orders: orders} })
	return err
}

// SubmitOrder places the current cart and empties it on success. The cart
// returned is the one whose ids were sent, whatever changed meanwhile. It
// does not guard against a submission already in flight; callers check
// OrderRequestInFlight.
func (s *Store) SubmitOrder(ctx context.Context) (burgers.Order, burgers.Cart, error) {
	cart := s.State().Constructor
	if cart.Bun == nil {
		return burgers.Order{}, burgers.Cart{}, ErrNoBun
	}
	ids := cart.IngredientIDs()

	o, err := run(ctx, s, "submit order",
		func(ctx context.Context) (burgers.Order, error) { return s.src.SubmitOrder(ctx, ids) },
		func(p Phase, o burgers.Order) Action { return OrderSubmitted{Phase: p, Order: o} })
	if err != nil {
		return burgers.Order{}, burgers.Cart{}, err
	}
	s.Dispatch(ConstructorCleared{})
	return o, cart, nil
}

func (s *Store) LoadOrder(ctx context.Context, number int) (burgers.Order, error) {
	return run(ctx, s, "load order",
		func(ctx context.Context) (burgers.Order, error) { return s.src.OrderByNumber(ctx, number) },
		func(p Phase, o burgers.Order) Action { return OrderDetailsLoaded{Phase: p, Order: o} })
}

// AddIngredient places ing in the cart under a fresh instance id.
func (s *Store) AddIngredient(ing burgers.Ingredient) burgers.CartIngredient {
	item := burgers.CartIngredient{Ingredient: ing, InstanceID: s.newID()}
	s.Dispatch(IngredientAdded{Item: item})
	return item
}

func (s *Store) RemoveIngredient(instanceID string) {
	s.Dispatch(IngredientRemoved{InstanceID: instanceID})
}

func (s *Store) MoveIngredient(index, move int) {
	s.Dispatch(IngredientMoved{Index: index, Move: move})
}

func (s *Store) ClearConstructor() {
	s.Dispatch(ConstructorCleared{})
}

func (s *Store) ResetOrderData() {
	s.Dispatch(OrderDataReset{})
}
