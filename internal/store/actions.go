package store

import (
	"slices"

	"github.com/slavinskiyboris/stellar-burgers/internal/burgers"
)

// Action is a state transition. Reducers never mutate memory reachable from
// the previous state: slices are cloned before being changed and pointers
// are replaced, not written through.
type Action interface {
	reduce(s *State)
}

// Reduce returns the state after applying a.
func Reduce(s State, a Action) State {
	a.reduce(&s)
	return s
}

// ---- catalog ----

type IngredientsLoaded struct {
	Phase Phase
	Items []burgers.Ingredient
}

func (a IngredientsLoaded) reduce(s *State) {
	st := &s.Ingredients
	switch a.Phase {
	case Pending:
		st.Loading, st.Error = true, ""
	case Fulfilled:
		st.Loading = false
		st.Items = a.Items
	case Rejected:
		st.Loading = false
		st.Error = ErrMsgIngredients
	}
}

// ---- constructor ----

type IngredientAdded struct {
	Item burgers.CartIngredient
}

func (a IngredientAdded) reduce(s *State) {
	item := a.Item
	if item.Type == burgers.TypeBun {
		s.Constructor.Bun = &item
		return
	}
	s.Constructor.Fillings = append(slices.Clip(s.Constructor.Fillings), item)
}

type IngredientRemoved struct {
	InstanceID string
}

func (a IngredientRemoved) reduce(s *State) {
	s.Constructor.Fillings = slices.DeleteFunc(slices.Clone(s.Constructor.Fillings), func(c burgers.CartIngredient) bool {
		return c.InstanceID == a.InstanceID
	})
}

// IngredientMoved swaps the filling at Index with the one at Index-Move.
// Out of range moves are ignored.
type IngredientMoved struct {
	Index int
	Move  int
}

func (a IngredientMoved) reduce(s *State) {
	n := len(s.Constructor.Fillings)
	to := a.Index - a.Move
	if a.Index < 0 || a.Index >= n || to < 0 || to >= n || to == a.Index {
		return
	}
	f := slices.Clone(s.Constructor.Fillings)
	f[a.Index], f[to] = f[to], f[a.Index]
	s.Constructor.Fillings = f
}

type ConstructorCleared struct{}

func (ConstructorCleared) reduce(s *State) {
	s.Constructor = burgers.Cart{}
}

// ---- auth ----

type Registered struct {
	Phase Phase
	User  burgers.User
}

func (a Registered) reduce(s *State) {
	reduceSignIn(s, a.Phase, a.User, ErrMsgRegister)
}

type LoggedIn struct {
	Phase Phase
	User  burgers.User
}

func (a LoggedIn) reduce(s *State) {
	reduceSignIn(s, a.Phase, a.User, ErrMsgLogin)
}

type UserLoaded struct {
	Phase Phase
	User  burgers.User
}

func (a UserLoaded) reduce(s *State) {
	reduceSignIn(s, a.Phase, a.User, ErrMsgLoadUser)
}

// register, login and user load share one shape: the auth check is reopened
// while the request runs and closed when it settles.
func reduceSignIn(s *State, p Phase, u burgers.User, msg string) {
	st := &s.Auth
	switch p {
	case Pending:
		st.AuthChecked = false
		st.Loading, st.Error = true, ""
	case Fulfilled:
		if st.User != nil && st.User.Email != u.Email {
			dropUserOrders(&s.Orders)
		}
		st.AuthChecked = true
		st.Loading = false
		st.User = &u
	case Rejected:
		st.AuthChecked = true
		st.Loading = false
		st.Error = msg
	}
}

type LoggedOut struct {
	Phase Phase
}

func (a LoggedOut) reduce(s *State) {
	st := &s.Auth
	switch a.Phase {
	case Pending:
		st.Loading, st.Error = true, ""
	case Fulfilled:
		st.Loading = false
		st.User = nil
		dropUserOrders(&s.Orders)
	case Rejected:
		st.Loading = false
		st.Error = ErrMsgLogout
	}
}

// dropUserOrders forgets everything loaded on behalf of the signed-in user.
// The public feed is kept.
func dropUserOrders(st *OrdersState) {
	st.Personal = nil
	st.Details = nil
	st.Placed = nil
}

type ProfileUpdated struct {
	Phase Phase
	User  burgers.User
}

func (a ProfileUpdated) reduce(s *State) {
	st := &s.Auth
	switch a.Phase {
	case Pending:
		st.Loading, st.Error = true, ""
	case Fulfilled:
		st.Loading = false
		st.User = &a.User
	case Rejected:
		st.Loading = false
		st.Error = ErrMsgUpdateUser
	}
}

type PasswordResetRequested struct {
	Phase Phase
}

func (a PasswordResetRequested) reduce(s *State) {
	st := &s.Auth
	switch a.Phase {
	case Pending:
		st.Loading, st.Error = true, ""
		st.ResetRequested = false
	case Fulfilled:
		st.Loading = false
		st.ResetRequested = true
	case Rejected:
		st.Loading = false
		st.Error = ErrMsgPasswordReset
	}
}

// PasswordReset confirms a new password with the mailed code.
type PasswordReset struct {
	Phase Phase
}

func (a PasswordReset) reduce(s *State) {
	st := &s.Auth
	switch a.Phase {
	case Pending:
		st.Loading, st.Error = true, ""
	case Fulfilled:
		st.Loading = false
		st.ResetRequested = false
	case Rejected:
		st.Loading = false
		st.Error = ErrMsgNewPassword
	}
}

type AuthChecked struct{}

func (AuthChecked) reduce(s *State) {
	s.Auth.AuthChecked = true
}

// ---- orders ----

type FeedLoaded struct {
	Phase Phase
	Feed  burgers.Feed
}

func (a FeedLoaded) reduce(s *State) {
	st := &s.Orders
	switch a.Phase {
	case Pending:
		st.Loading, st.Error = true, ""
	case Fulfilled:
		st.Loading = false
		st.Feed = a.Feed.Orders
		st.Total = a.Feed.Total
		st.TotalToday = a.Feed.TotalToday
	case Rejected:
		st.Loading = false
		st.Error = ErrMsgOrders
	}
}

type PersonalOrdersLoaded struct {
	Phase  Phase
	Orders []burgers.Order
}

func (a PersonalOrdersLoaded) reduce(s *State) {
	st := &s.Orders
	switch a.Phase {
	case Pending:
		st.Loading, st.Error = true, ""
	case Fulfilled:
		st.Loading = false
		st.Personal = a.Orders
	case Rejected:
		st.Loading = false
		st.Error = ErrMsgOrders
	}
}

type OrderSubmitted struct {
	Phase Phase
	Order burgers.Order
}

func (a OrderSubmitted) reduce(s *State) {
	st := &s.Orders
	switch a.Phase {
	case Pending:
		st.OrderRequest, st.Error = true, ""
	case Fulfilled:
		st.OrderRequest = false
		st.Placed = &a.Order
	case Rejected:
		st.OrderRequest = false
		st.Error = ErrMsgSubmitOrder
	}
}

type OrderDetailsLoaded struct {
	Phase Phase
	Order burgers.Order
}

func (a OrderDetailsLoaded) reduce(s *State) {
	st := &s.Orders
	switch a.Phase {
	case Pending:
		st.OrderRequest, st.Error = true, ""
	case Fulfilled:
		st.OrderRequest = false
		st.Details = &a.Order
	case Rejected:
		st.OrderRequest = false
		st.Error = ErrMsgOrderDetails
	}
}

// OrderDataReset drops the placed order once it has been shown.
type OrderDataReset struct{}

func (OrderDataReset) reduce(s *State) {
	s.Orders.Placed = nil
	s.Orders.OrderRequest = false
}
