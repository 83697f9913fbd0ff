package staples

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Sentinel errors for the vocabulary loader
var (
	ErrInvalidConfig  = errors.New("invalid configuration")
	ErrDuplicateToken = errors.New("duplicate vocabulary token")
)

// Config represents the JSON configuration for the staple vocabulary.
// The token lists are hand-tuned data, not code: swapping the file swaps
// the classification policy without a rebuild.
type Config struct {
	Version     string `json:"version"`
	Description string `json:"description"`

	// Specialty phrases are checked first: a match means the ingredient
	// defines the recipe and is never treated as a staple, even when it
	// contains a staple token ("chickpea flour" vs "flour").
	Specialty []string `json:"specialty"`

	// Staples are ingredients assumed always present in a kitchen
	Staples []string `json:"staples"`
}

// Loader handles loading and validating the vocabulary configuration
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
}

type vocabLoader struct{}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &vocabLoader{}
}

// Load reads and parses a staple vocabulary JSON file
func (l *vocabLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary file: %w", err)
	}

	return &config, nil
}

// Validate checks the vocabulary configuration for errors
func (l *vocabLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	if len(config.Staples) == 0 {
		return fmt.Errorf("%w: no staple tokens defined", ErrInvalidConfig)
	}

	if err := validateTokens("specialty", config.Specialty); err != nil {
		return err
	}
	return validateTokens("staples", config.Staples)
}

func validateTokens(list string, tokens []string) error {
	seen := make(map[string]bool, len(tokens))
	for i, token := range tokens {
		norm := Normalize(token)
		if norm == "" {
			return fmt.Errorf("%w: %s token at index %d is empty", ErrInvalidConfig, list, i)
		}
		if seen[norm] {
			return fmt.Errorf("%w: '%s' in %s", ErrDuplicateToken, norm, list)
		}
		seen[norm] = true
	}
	return nil
}

// Normalize lower-cases and trims an ingredient string. All vocabulary
// and inventory comparisons happen on normalized text.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
