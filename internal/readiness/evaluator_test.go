package readiness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ezio016/MyFridge/internal/domain"
)

func TestEvaluatePartition(t *testing.T) {
	classifier := testClassifier(t)
	m := NewMatcher(classifier, []string{"chicken breast", "tomatoes"})

	recipe := domain.Recipe{
		ID:   "test",
		Name: "Test Recipe",
		Ingredients: domain.IngredientList{
			"chicken breast", "salt", "tomatoes", "olive oil", "basil",
		},
	}

	result := Evaluate(m, recipe)

	// Staples go to optional, everything else to main, order preserved
	assert.Equal(t, []string{"chicken breast", "tomatoes", "basil"}, result.MainIngredients)
	assert.Equal(t, []string{"salt", "olive oil"}, result.OptionalIngredients)
	assert.Equal(t, []bool{true, true, false}, result.HasMain)

	// Partition is exhaustive
	assert.Equal(t, len(recipe.Ingredients), len(result.MainIngredients)+len(result.OptionalIngredients))
	assert.Len(t, result.HasMain, len(result.MainIngredients))

	assert.Equal(t, 1, result.MissingMainCount)
	assert.Equal(t, 3, result.TotalMainCount)
	assert.False(t, result.Ready)
	assert.Equal(t, []string{"basil"}, result.MissingMain())
}

func TestEvaluateReady(t *testing.T) {
	classifier := testClassifier(t)
	m := NewMatcher(classifier, []string{"eggs", "tomatoes", "scallions"})

	recipe := domain.Recipe{
		ID:          "tomato-eggs",
		Ingredients: domain.IngredientList{"eggs", "tomatoes", "butter", "salt", "scallions"},
	}

	result := Evaluate(m, recipe)
	assert.True(t, result.Ready)
	assert.Zero(t, result.MissingMainCount)
	assert.Empty(t, result.MissingMain())
}

func TestEvaluateSpecialtyNotAssumed(t *testing.T) {
	classifier := testClassifier(t)
	m := NewMatcher(classifier, []string{"milk"})

	// "chickpea flour" contains the staple token "flour" but the
	// specialty keyword keeps it a main ingredient, and it is not
	// stocked.
	recipe := domain.Recipe{
		ID:          "socca",
		Ingredients: domain.IngredientList{"chickpea flour", "water", "salt"},
	}

	result := Evaluate(m, recipe)
	assert.Equal(t, []string{"chickpea flour"}, result.MainIngredients)
	assert.Equal(t, []string{"water", "salt"}, result.OptionalIngredients)
	assert.False(t, result.Ready)
	assert.Equal(t, []string{"chickpea flour"}, result.MissingMain())
}

func TestEvaluateNoMainIngredients(t *testing.T) {
	classifier := testClassifier(t)
	m := NewMatcher(classifier, nil)

	tests := []struct {
		name   string
		recipe domain.Recipe
	}{
		{"all staples", domain.Recipe{Ingredients: domain.IngredientList{"salt", "pepper", "oil"}}},
		{"empty list", domain.Recipe{Ingredients: domain.IngredientList{}}},
		{"nil list", domain.Recipe{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Evaluate(m, tt.recipe)
			assert.True(t, result.Ready)
			assert.Zero(t, result.MissingMainCount)
			assert.Zero(t, result.TotalMainCount)
			assert.NotNil(t, result.MainIngredients)
			assert.NotNil(t, result.HasMain)
		})
	}
}

func TestEvaluatePure(t *testing.T) {
	classifier := testClassifier(t)
	m := NewMatcher(classifier, []string{"chicken breast"})
	recipe := domain.Recipe{
		Ingredients: domain.IngredientList{"chicken breast", "salt", "basil"},
	}

	first := Evaluate(m, recipe)
	second := Evaluate(m, recipe)
	assert.Equal(t, first, second)
}

func TestEvaluateMonotonicity(t *testing.T) {
	classifier := testClassifier(t)
	recipe := domain.Recipe{
		Ingredients: domain.IngredientList{"chicken breast", "tomatoes", "basil", "salt"},
	}

	// Growing the inventory never increases the missing count
	inventories := [][]string{
		{},
		{"chicken breast"},
		{"chicken breast", "tomatoes"},
		{"chicken breast", "tomatoes", "basil"},
	}

	prev := -1
	for _, names := range inventories {
		result := Evaluate(NewMatcher(classifier, names), recipe)
		if prev >= 0 {
			require.LessOrEqual(t, result.MissingMainCount, prev)
		}
		prev = result.MissingMainCount
	}
	assert.Zero(t, prev)
}

func TestEvaluateEmptyIngredientCountsAsMissing(t *testing.T) {
	classifier := testClassifier(t)
	m := NewMatcher(classifier, []string{"milk"})

	// A blank entry from malformed catalog data is a main ingredient
	// that can never match
	recipe := domain.Recipe{
		Ingredients: domain.IngredientList{"milk", ""},
	}

	result := Evaluate(m, recipe)
	assert.Equal(t, []string{"milk", ""}, result.MainIngredients)
	assert.Equal(t, []bool{true, false}, result.HasMain)
	assert.False(t, result.Ready)
}
