package staples

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize bounds the classification memo cache. Classification is
// a pure function of the vocabulary, so cached results never go stale
// while the classifier lives.
const DefaultCacheSize = 2048

// Classifier decides whether an ingredient string denotes a pantry staple.
// It is safe for concurrent use.
type Classifier struct {
	specialty []string
	staples   []string
	cache     *lru.Cache[string, bool]
}

// NewClassifier creates a Classifier from a validated vocabulary config.
// Tokens are normalized once up front.
func NewClassifier(config *Config) (*Classifier, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is nil", ErrInvalidConfig)
	}

	cache, err := lru.New[string, bool](DefaultCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create classification cache: %w", err)
	}

	c := &Classifier{
		specialty: make([]string, 0, len(config.Specialty)),
		staples:   make([]string, 0, len(config.Staples)),
		cache:     cache,
	}
	for _, token := range config.Specialty {
		c.specialty = append(c.specialty, Normalize(token))
	}
	for _, token := range config.Staples {
		c.staples = append(c.staples, Normalize(token))
	}
	return c, nil
}

// IsStaple reports whether the ingredient text denotes a pantry staple.
// Empty text (after trimming) is never a staple. Specialty phrases are
// checked before staple tokens and short-circuit to false.
func (c *Classifier) IsStaple(ingredient string) bool {
	norm := Normalize(ingredient)
	if norm == "" {
		return false
	}

	if cached, ok := c.cache.Get(norm); ok {
		return cached
	}

	result := c.classify(norm)
	c.cache.Add(norm, result)
	return result
}

func (c *Classifier) classify(norm string) bool {
	for _, keyword := range c.specialty {
		if strings.Contains(norm, keyword) {
			return false
		}
	}

	for _, token := range c.staples {
		// "sea salt" contains "salt"; "oil" is contained in "olive oil".
		// Both directions count as a staple match.
		if strings.Contains(norm, token) || strings.Contains(token, norm) {
			return true
		}
	}

	return false
}
