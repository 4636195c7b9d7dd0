package burgers

// Price of a cart: the bun fills both the top and bottom slot.
func (c Cart) Price() int {
	total := 0
	if c.Bun != nil {
		total += c.Bun.Price * 2
	}
	for _, f := range c.Fillings {
		total += f.Price
	}
	return total
}

// Counts returns how many times each ingredient id sits in the cart.
func (c Cart) Counts() map[string]int {
	out := make(map[string]int, len(c.Fillings)+1)
	if c.Bun != nil {
		out[c.Bun.ID] = 2
	}
	for _, f := range c.Fillings {
		out[f.ID]++
	}
	return out
}

// IngredientIDs is the id sequence sent on submission: bun, fillings, bun.
func (c Cart) IngredientIDs() []string {
	ids := make([]string, 0, len(c.Fillings)+2)
	if c.Bun != nil {
		ids = append(ids, c.Bun.ID)
	}
	for _, f := range c.Fillings {
		ids = append(ids, f.ID)
	}
	if c.Bun != nil {
		ids = append(ids, c.Bun.ID)
	}
	return ids
}
