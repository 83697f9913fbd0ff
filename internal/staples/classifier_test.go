package staples

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Version: "1.0",
		Specialty: []string{
			"chickpea", "almond", "heavy cream", "parmesan", "coconut milk",
		},
		Staples: []string{
			"salt", "pepper", "water", "oil", "olive oil", "butter",
			"sugar", "flour", "all-purpose flour", "garlic", "onion",
			"soy sauce", "vinegar",
		},
	}
}

func TestNewClassifier(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		c, err := NewClassifier(testConfig())
		require.NoError(t, err)
		assert.NotNil(t, c)
	})

	t.Run("nil config", func(t *testing.T) {
		c, err := NewClassifier(nil)
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.Nil(t, c)
	})
}

func TestClassifierIsStaple(t *testing.T) {
	c, err := NewClassifier(testConfig())
	require.NoError(t, err)

	tests := []struct {
		name       string
		ingredient string
		want       bool
	}{
		{"exact staple", "salt", true},
		{"staple with qualifier", "sea salt", true},
		{"ingredient contained in staple token", "oil", true},
		{"olive oil variant", "extra virgin olive oil", true},
		{"case and whitespace normalized", "  Olive Oil  ", true},
		{"plain flour", "flour", true},
		{"specialty overrides staple token", "chickpea flour", false},
		{"specialty dairy", "heavy cream", false},
		{"specialty with qualifier", "grated parmesan", false},
		{"specialty liquid containing staple-ish word", "coconut milk", false},
		{"non-staple main ingredient", "chicken breast", false},
		{"empty string", "", false},
		{"whitespace only", "   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.IsStaple(tt.ingredient))
		})
	}
}

func TestClassifierCacheStability(t *testing.T) {
	c, err := NewClassifier(testConfig())
	require.NoError(t, err)

	// Repeated classification must agree with the first answer
	for i := 0; i < 3; i++ {
		assert.True(t, c.IsStaple("sea salt"))
		assert.False(t, c.IsStaple("chickpea flour"))
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "olive oil", Normalize("  Olive Oil "))
	assert.Equal(t, "", Normalize("   "))
	assert.Equal(t, "salt", Normalize("SALT"))
}
