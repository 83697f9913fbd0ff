package domain

import "time"

// ShoppingItem represents a single entry on the shopping list
type ShoppingItem struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Note      string    `json:"note,omitempty"`
	RecipeID  string    `json:"recipe_id,omitempty"` // set when added from a recipe's missing ingredients
	Purchased bool      `json:"purchased"`
	AddedDate time.Time `json:"added_date"`
}
