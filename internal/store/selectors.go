package store

import "github.com/slavinskiyboris/stellar-burgers/internal/burgers"

func Ingredients(s State) []burgers.Ingredient { return s.Ingredients.Items }

func IngredientsLoading(s State) bool { return s.Ingredients.Loading }

func IngredientByID(s State, id string) (burgers.Ingredient, bool) {
	return burgers.FindIngredient(s.Ingredients.Items, id)
}

func Constructor(s State) burgers.Cart { return s.Constructor }

func ConstructorPrice(s State) int { return s.Constructor.Price() }

func User(s State) *burgers.User { return s.Auth.User }

func IsAuthChecked(s State) bool { return s.Auth.AuthChecked }

func FeedOrders(s State) []burgers.Order { return s.Orders.Feed }

func PersonalOrders(s State) []burgers.Order { return s.Orders.Personal }

func PlacedOrder(s State) *burgers.Order { return s.Orders.Placed }

func OrderDetails(s State) *burgers.Order { return s.Orders.Details }

func OrderRequestInFlight(s State) bool { return s.Orders.OrderRequest }

// FeedBoard is the summary shown next to the public feed.
type FeedBoard struct {
	Total      int   `json:"total"`
	TotalToday int   `json:"totalToday"`
	Ready      []int `json:"ready"`
	Pending    []int `json:"pending"`
}

func Board(s State) FeedBoard {
	return FeedBoard{
		Total:      s.Orders.Total,
		TotalToday: s.Orders.TotalToday,
		Ready:      burgers.NumbersByStatus(s.Orders.Feed, burgers.StatusDone),
		Pending:    burgers.NumbersByStatus(s.Orders.Feed, burgers.StatusPending),
	}
}
