package burgers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func cartItem(id string, t IngredientType, price int, instance string) CartIngredient {
	return CartIngredient{Ingredient: Ingredient{ID: id, Type: t, Price: price}, InstanceID: instance}
}

func TestCartPrice(t *testing.T) {
	bun := cartItem("bun", TypeBun, 1255, "b1")

	tests := []struct {
		name string
		cart Cart
		want int
	}{
		{"empty", Cart{}, 0},
		{"bun only", Cart{Bun: &bun}, 2510},
		{"fillings only", Cart{Fillings: []CartIngredient{
			cartItem("sauce", TypeSauce, 90, "s1"),
			cartItem("main", TypeMain, 424, "m1"),
		}}, 514},
		{"bun and repeated filling", Cart{Bun: &bun, Fillings: []CartIngredient{
			cartItem("main", TypeMain, 424, "m1"),
			cartItem("main", TypeMain, 424, "m2"),
		}}, 2510 + 848},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cart.Price())
		})
	}
}

func TestCartCountsAndIDs(t *testing.T) {
	bun := cartItem("bun", TypeBun, 10, "b1")
	c := Cart{Bun: &bun, Fillings: []CartIngredient{
		cartItem("main", TypeMain, 5, "m1"),
		cartItem("sauce", TypeSauce, 1, "s1"),
		cartItem("main", TypeMain, 5, "m2"),
	}}

	assert.Equal(t, map[string]int{"bun": 2, "main": 2, "sauce": 1}, c.Counts())
	assert.Equal(t, []string{"bun", "main", "sauce", "main", "bun"}, c.IngredientIDs())
	assert.Empty(t, Cart{}.IngredientIDs())
}
