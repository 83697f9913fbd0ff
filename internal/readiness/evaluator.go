package readiness

import (
	"github.com/Ezio016/MyFridge/internal/domain"
)

// Evaluate produces the readiness record for one recipe against the
// matcher's inventory snapshot. It is a pure function: evaluating the
// same pair twice yields identical records, and performs no I/O.
//
// Ingredients are partitioned into main (non-staple) and optional
// (staple) lists, preserving relative order. Only main ingredients are
// matched; staples are assumed available and never reported missing. A
// recipe with no main ingredients - including an empty or missing
// ingredient list - is trivially ready.
func Evaluate(m *Matcher, recipe domain.Recipe) domain.RecipeReadiness {
	result := domain.RecipeReadiness{
		MainIngredients:     []string{},
		OptionalIngredients: []string{},
		HasMain:             []bool{},
	}

	for _, ingredient := range recipe.Ingredients {
		if m.classifier.IsStaple(ingredient) {
			result.OptionalIngredients = append(result.OptionalIngredients, ingredient)
			continue
		}

		result.MainIngredients = append(result.MainIngredients, ingredient)
		available := m.Available(ingredient)
		result.HasMain = append(result.HasMain, available)
		if !available {
			result.MissingMainCount++
		}
	}

	result.TotalMainCount = len(result.MainIngredients)
	result.Ready = result.MissingMainCount == 0
	return result
}
