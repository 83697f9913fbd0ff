package recipes

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/Ezio016/MyFridge/internal/domain"
)

// Sentinel errors for the catalog loader
var (
	ErrInvalidConfig     = errors.New("invalid configuration")
	ErrDuplicateRecipeID = errors.New("duplicate recipe id")
)

// Config represents the JSON configuration for the recipe catalog
type Config struct {
	Version     string          `json:"version"`
	Description string          `json:"description"`
	Recipes     []domain.Recipe `json:"recipes"`
}

// Loader handles loading and validating the recipe catalog
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
}

type catalogLoader struct{}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &catalogLoader{}
}

// Load reads and parses a recipe catalog JSON file
func (l *catalogLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file: %w", err)
	}

	return &config, nil
}

// Validate checks the catalog configuration for errors. Ingredient
// entries are deliberately not validated: the engine tolerates malformed
// ingredient data at evaluation time.
func (l *catalogLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if len(config.Recipes) == 0 {
		return fmt.Errorf("%w: no recipes defined", ErrInvalidConfig)
	}

	ids := make(map[string]bool, len(config.Recipes))
	for i, recipe := range config.Recipes {
		if recipe.ID == "" {
			return fmt.Errorf("%w: recipe at index %d has empty id", ErrInvalidConfig, i)
		}
		if ids[recipe.ID] {
			return fmt.Errorf("%w: '%s'", ErrDuplicateRecipeID, recipe.ID)
		}
		ids[recipe.ID] = true

		if recipe.Name == "" {
			return fmt.Errorf("%w: recipe '%s' has empty name", ErrInvalidConfig, recipe.ID)
		}
		if recipe.TotalTimeMinutes < 0 {
			return fmt.Errorf("%w: recipe '%s' has negative total_time", ErrInvalidConfig, recipe.ID)
		}
	}

	return nil
}
