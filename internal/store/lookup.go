package store

import (
	"context"

	"github.com/slavinskiyboris/stellar-burgers/internal/burgers"
)

// LookupOrder resolves an order by number. The list already in the store is
// searched first, personal orders when private, the public feed otherwise;
// only on a miss is the order fetched remotely. Loaded lists are never
// invalidated within a session.
func (s *Store) LookupOrder(ctx context.Context, number int, private bool) (burgers.Order, error) {
	st := s.State()
	list := st.Orders.Feed
	if private {
		list = st.Orders.Personal
	}
	if o, ok := burgers.FindOrder(list, number); ok {
		s.Dispatch(OrderDetailsLoaded{Phase: Fulfilled, Order: o})
		return o, nil
	}
	return s.LoadOrder(ctx, number)
}

// OrderInfo looks the order up and joins it with the catalog. ok is false
// while either side is not ready yet.
func (s *Store) OrderInfo(ctx context.Context, number int, private bool) (burgers.OrderInfo, bool, error) {
	o, err := s.LookupOrder(ctx, number, private)
	if err != nil {
		return burgers.OrderInfo{}, false, err
	}
	info, ok := burgers.Aggregate(o, Ingredients(s.State()))
	return info, ok, nil
}
