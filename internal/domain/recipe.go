package domain

import "encoding/json"

// IngredientList holds a recipe's free-text ingredient strings.
// Catalog data is scraped and occasionally malformed: a null list decodes
// as empty, and non-string entries coerce to "" instead of failing the
// whole recipe. An empty string is never a staple and never matches.
type IngredientList []string

// UnmarshalJSON implements tolerant decoding for ingredient arrays
func (l *IngredientList) UnmarshalJSON(data []byte) error {
	var raw []interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		// null or a non-array value: treat as no ingredients
		*l = nil
		return nil
	}
	out := make(IngredientList, len(raw))
	for i, v := range raw {
		if s, ok := v.(string); ok {
			out[i] = s
		}
	}
	*l = out
	return nil
}

// Recipe represents a single catalog recipe.
// Treated as immutable for the duration of one matching pass.
type Recipe struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Description      string         `json:"description,omitempty"`
	Ingredients      IngredientList `json:"ingredients"`
	Instructions     []string       `json:"instructions,omitempty"`
	PrepTimeMinutes  int            `json:"prep_time,omitempty"`
	CookTimeMinutes  int            `json:"cook_time,omitempty"`
	TotalTimeMinutes int            `json:"total_time"`
	Servings         int            `json:"servings,omitempty"`
	Difficulty       string         `json:"difficulty,omitempty"`
	Cuisine          string         `json:"cuisine,omitempty"`
	Tags             []string       `json:"tags,omitempty"`
}
