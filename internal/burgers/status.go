package burgers

type OrderStatus string

const (
	StatusCreated OrderStatus = "created"
	StatusPending OrderStatus = "pending"
	StatusDone    OrderStatus = "done"
)

// FeedBoardLimit caps the ready/pending number lists shown on the feed board.
const FeedBoardLimit = 20

// NumbersByStatus returns numbers of orders with the given status, in feed
// order, at most FeedBoardLimit of them.
func NumbersByStatus(orders []Order, status OrderStatus) []int {
	out := make([]int, 0, FeedBoardLimit)
	for _, o := range orders {
		if o.Status != status {
			continue
		}
		out = append(out, o.Number)
		if len(out) == FeedBoardLimit {
			break
		}
	}
	return out
}

func FindOrder(orders []Order, number int) (Order, bool) {
	for _, o := range orders {
		if o.Number == number {
			return o, true
		}
	}
	return Order{}, false
}
