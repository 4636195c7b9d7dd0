package burgers

import (
	"log"
	"time"
)

type IngredientCount struct {
	Ingredient
	Count int `json:"count"`
}

// OrderInfo is an order joined with the catalog.
type OrderInfo struct {
	Order
	IngredientsInfo map[string]IngredientCount `json:"ingredientsInfo"`
	// Sequence holds ids of IngredientsInfo in first-seen order.
	Sequence []string  `json:"sequence"`
	Date     time.Time `json:"date"`
	Total    int       `json:"total"`
}

// Aggregate counts each catalog ingredient referenced by the order and sums
// their prices. Unknown and empty ids are skipped. ok is false while the
// data is not ready to be shown: empty catalog, missing createdAt, no ids,
// or no id resolved.
func Aggregate(o Order, catalog []Ingredient) (info OrderInfo, ok bool) {
	if len(catalog) == 0 || o.CreatedAt.IsZero() || len(o.Ingredients) == 0 {
		return OrderInfo{}, false
	}
	byID := NewCatalog(catalog)

	counts := make(map[string]IngredientCount, len(o.Ingredients))
	seq := make([]string, 0, len(o.Ingredients))
	for i, id := range o.Ingredients {
		if id == "" {
			log.Printf("aggregate: order %d has empty ingredient id at %d", o.Number, i)
			continue
		}
		if c, seen := counts[id]; seen {
			c.Count++
			counts[id] = c
			continue
		}
		ing, found := byID[id]
		if !found {
			log.Printf("aggregate: order %d references unknown ingredient %q", o.Number, id)
			continue
		}
		counts[id] = IngredientCount{Ingredient: ing, Count: 1}
		seq = append(seq, id)
	}
	if len(counts) == 0 {
		return OrderInfo{}, false
	}

	total := 0
	for _, c := range counts {
		total += c.Price * c.Count
	}
	return OrderInfo{
		Order:           o,
		IngredientsInfo: counts,
		Sequence:        seq,
		Date:            o.CreatedAt,
		Total:           total,
	}, true
}
