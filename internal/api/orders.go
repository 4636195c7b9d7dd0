package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/slavinskiyboris/stellar-burgers/internal/burgers"
)

// idList decodes order ingredients given either as ids or as full
// ingredient objects; the submit endpoint answers with the latter.
type idList []string

func (l *idList) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		r = bytes.TrimSpace(r)
		if len(r) > 0 && r[0] == '{' {
			var obj struct {
				ID string `json:"_id"`
			}
			if err := json.Unmarshal(r, &obj); err != nil {
				return err
			}
			out = append(out, obj.ID)
			continue
		}
		var id string
		if err := json.Unmarshal(r, &id); err != nil {
			return fmt.Errorf("ingredient entry %s: %w", r, err)
		}
		out = append(out, id)
	}
	*l = out
	return nil
}

type wireOrder struct {
	burgers.Order
	Ingredients idList `json:"ingredients"`
	// the submit endpoint names the total "price"
	Price       int    `json:"price"`
}

func (w wireOrder) order() burgers.Order {
	o := w.Order
	o.Ingredients = []string(w.Ingredients)
	if o.TotalPrice == 0 {
		o.TotalPrice = w.Price
	}
	return o
}

func toOrders(ws []wireOrder) []burgers.Order {
	out := make([]burgers.Order, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.order())
	}
	return out
}

type feedResponse struct {
	Orders     []wireOrder `json:"orders"`
	Total      int         `json:"total"`
	TotalToday int         `json:"totalToday"`
}

func (c *Client) Feed(ctx context.Context) (burgers.Feed, error) {
	var out feedResponse
	if err := c.do(ctx, http.MethodGet, "/orders/all", "", nil, &out); err != nil {
		return burgers.Feed{}, err
	}
	return burgers.Feed{Orders: toOrders(out.Orders), Total: out.Total, TotalToday: out.TotalToday}, nil
}

// OrderByNumber returns the first order the API lists for number.
func (c *Client) OrderByNumber(ctx context.Context, number int) (burgers.Order, error) {
	var out struct {
		Orders []wireOrder `json:"orders"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/orders/%d", number), "", nil, &out); err != nil {
		return burgers.Order{}, err
	}
	if len(out.Orders) == 0 {
		return burgers.Order{}, fmt.Errorf("order %d: %w", number, ErrOrderAbsent)
	}
	return out.Orders[0].order(), nil
}

func (s *Session) Feed(ctx context.Context) (burgers.Feed, error) {
	return s.c.Feed(ctx)
}

func (s *Session) OrderByNumber(ctx context.Context, number int) (burgers.Order, error) {
	return s.c.OrderByNumber(ctx, number)
}

func (s *Session) PersonalOrders(ctx context.Context) ([]burgers.Order, error) {
	var out feedResponse
	if err := s.authorized(ctx, http.MethodGet, "/orders", nil, &out); err != nil {
		return nil, err
	}
	return toOrders(out.Orders), nil
}

func (s *Session) SubmitOrder(ctx context.Context, ingredientIDs []string) (burgers.Order, error) {
	var out struct {
		Name  string    `json:"name"`
		Order wireOrder `json:"order"`
	}
	body := map[string][]string{"ingredients": ingredientIDs}
	if err := s.authorized(ctx, http.MethodPost, "/orders", body, &out); err != nil {
		return burgers.Order{}, err
	}
	o := out.Order.order()
	if o.Name == "" {
		o.Name = out.Name
	}
	return o, nil
}
