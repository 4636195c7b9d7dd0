package api

import (
	"context"
	"net/http"

	"github.com/slavinskiyboris/stellar-burgers/internal/burgers"
)

func (c *Client) Ingredients(ctx context.Context) ([]burgers.Ingredient, error) {
	var out struct {
		Data []burgers.Ingredient `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/ingredients", "", nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (s *Session) Ingredients(ctx context.Context) ([]burgers.Ingredient, error) {
	return s.c.Ingredients(ctx)
}
