package domain

// RecipeReadiness is the per-recipe result of one matching pass.
// MainIngredients and OptionalIngredients partition the recipe's
// ingredient list exhaustively and in order; HasMain runs parallel to
// MainIngredients. Ready holds exactly when MissingMainCount is zero.
type RecipeReadiness struct {
	MainIngredients     []string `json:"main_ingredients"`
	OptionalIngredients []string `json:"optional_ingredients"`
	HasMain             []bool   `json:"has_main"`
	MissingMainCount    int      `json:"missing_main_count"`
	TotalMainCount      int      `json:"total_main_count"`
	Ready               bool     `json:"ready"`
}

// MissingMain returns the main ingredients that are not currently available,
// preserving recipe order
func (r RecipeReadiness) MissingMain() []string {
	var missing []string
	for i, ing := range r.MainIngredients {
		if i < len(r.HasMain) && !r.HasMain[i] {
			missing = append(missing, ing)
		}
	}
	return missing
}

// BrowseMode selects how suggested recipes are filtered and ordered
type BrowseMode string

const (
	// ModeLightning keeps quick recipes with at least one matched main ingredient
	ModeLightning BrowseMode = "lightning"
	// ModeExplore ranks the full catalog by readiness
	ModeExplore BrowseMode = "explore"
)

// IsValidBrowseMode checks if a mode string is valid (empty string is valid = explore)
func IsValidBrowseMode(mode string) bool {
	if mode == "" {
		return true
	}
	m := BrowseMode(mode)
	return m == ModeLightning || m == ModeExplore
}
