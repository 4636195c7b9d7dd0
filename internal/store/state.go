package store

import "github.com/slavinskiyboris/stellar-burgers/internal/burgers"

// Phase is where an async action is in its lifecycle.
type Phase int

const (
	Pending Phase = iota + 1
	Fulfilled
	Rejected
)

func (p Phase) String() string {
	switch p {
	case Pending:
		return "pending"
	case Fulfilled:
		return "fulfilled"
	case Rejected:
		return "rejected"
	default:
		return "unknown"
	}
}

const (
	ErrMsgIngredients   = "failed to load ingredients"
	ErrMsgRegister      = "failed to register user"
	ErrMsgLogin         = "failed to log in"
	ErrMsgLoadUser      = "failed to load user data"
	ErrMsgLogout        = "failed to log out"
	ErrMsgUpdateUser    = "failed to update user"
	ErrMsgPasswordReset = "failed to request password reset"
	ErrMsgNewPassword   = "failed to reset password"
	ErrMsgOrders        = "failed to load orders"
	ErrMsgSubmitOrder   = "failed to submit order"
	ErrMsgOrderDetails  = "failed to load order"
)

type State struct {
	Ingredients IngredientsState `json:"ingredients"`
	Constructor burgers.Cart     `json:"constructor"`
	Auth        AuthState        `json:"auth"`
	Orders      OrdersState      `json:"orders"`
}

type IngredientsState struct {
	Items   []burgers.Ingredient `json:"ingredients"`
	Loading bool                 `json:"isLoading"`
	Error   string               `json:"error,omitempty"`
}

type AuthState struct {
	User           *burgers.User `json:"user"`
	AuthChecked    bool          `json:"isAuthChecked"`
	Loading        bool          `json:"isLoading"`
	ResetRequested bool          `json:"resetRequested"`
	Error          string        `json:"error,omitempty"`
}

type OrdersState struct {
	Feed       []burgers.Order `json:"orders"`
	Total      int             `json:"total"`
	TotalToday int             `json:"totalToday"`
	Personal   []burgers.Order `json:"userOrders"`
	// Placed is the order returned by the last submission.
	Placed *burgers.Order `json:"orderRequestData"`
	// Details is the order last resolved by number.
	Details *burgers.Order `json:"orderInfo"`
	Loading bool           `json:"isLoading"`
	// OrderRequest is set while a submission or a by-number fetch is in flight.
	OrderRequest bool   `json:"orderRequest"`
	Error        string `json:"error,omitempty"`
}

// Initial state: the catalog starts loading, as the app fetches it on start.
func Initial() State {
	return State{Ingredients: IngredientsState{Loading: true}}
}
