package burgers

import "time"

type IngredientType string

const (
	TypeBun   IngredientType = "bun"
	TypeSauce IngredientType = "sauce"
	TypeMain  IngredientType = "main"
)

type Ingredient struct {
	ID            string         `json:"_id"`
	Name          string         `json:"name"`
	Type          IngredientType `json:"type"`
	Proteins      int            `json:"proteins"`
	Fat           int            `json:"fat"`
	Carbohydrates int            `json:"carbohydrates"`
	Calories      int            `json:"calories"`
	Price         int            `json:"price"`
	Image         string         `json:"image"`
	ImageMobile   string         `json:"image_mobile"`
	ImageLarge    string         `json:"image_large"`
}

// CartIngredient is one placement of an ingredient in the cart. The same
// ingredient can be placed several times, InstanceID tells them apart.
type CartIngredient struct {
	Ingredient
	InstanceID string `json:"id"`
}

type Cart struct {
	Bun      *CartIngredient  `json:"bun"`
	Fillings []CartIngredient `json:"ingredients"`
}

type Order struct {
	ID          string      `json:"_id"`
	Number      int         `json:"number"`
	Name        string      `json:"name"`
	Status      OrderStatus `json:"status"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
	Ingredients []string    `json:"ingredients"`
	// TotalPrice is assigned by the server on submission; feed entries
	// leave it zero.
	TotalPrice  int         `json:"totalPrice,omitempty"`
}

type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Catalog indexes ingredients by id.
type Catalog map[string]Ingredient

func NewCatalog(items []Ingredient) Catalog {
	c := make(Catalog, len(items))
	for _, it := range items {
		c[it.ID] = it
	}
	return c
}

func FindIngredient(items []Ingredient, id string) (Ingredient, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return Ingredient{}, false
}
