package readiness

import (
	"strings"

	"github.com/Ezio016/MyFridge/internal/staples"
)

// minMatchTokenLength suppresses stop-word false positives: shared tokens
// of length 2 or less ("de", "of") never count as a match.
const minMatchTokenLength = 3

// Matcher resolves whether a recipe ingredient is satisfied by one
// inventory snapshot. Matching is existence-only: quantities and
// duplicate inventory entries do not affect the result. A Matcher is
// immutable after construction and safe for concurrent use.
type Matcher struct {
	classifier *staples.Classifier
	exact      map[string]bool
	names      []string
}

// NewMatcher builds a Matcher over a snapshot of inventory item names.
// Names are normalized once; empty names are dropped.
func NewMatcher(classifier *staples.Classifier, inventoryNames []string) *Matcher {
	m := &Matcher{
		classifier: classifier,
		exact:      make(map[string]bool, len(inventoryNames)),
		names:      make([]string, 0, len(inventoryNames)),
	}
	for _, name := range inventoryNames {
		norm := staples.Normalize(name)
		if norm == "" {
			continue
		}
		if !m.exact[norm] {
			m.exact[norm] = true
			m.names = append(m.names, norm)
		}
	}
	return m
}

// Available reports whether the ingredient is currently available.
// Staples are always available. Non-staples match by exact name, by a
// shared whitespace token longer than two characters, or by substring
// containment in either direction.
func (m *Matcher) Available(ingredient string) bool {
	norm := staples.Normalize(ingredient)
	if norm == "" {
		return false
	}

	if m.classifier.IsStaple(norm) {
		return true
	}

	if m.exact[norm] {
		return true
	}

	ingredientTokens := strings.Fields(norm)
	for _, name := range m.names {
		if shareSignificantToken(ingredientTokens, strings.Fields(name)) {
			return true
		}
	}

	for _, name := range m.names {
		if strings.Contains(norm, name) || strings.Contains(name, norm) {
			return true
		}
	}

	return false
}

func shareSignificantToken(a, b []string) bool {
	for _, tokenA := range a {
		if len(tokenA) < minMatchTokenLength {
			continue
		}
		for _, tokenB := range b {
			if tokenA == tokenB {
				return true
			}
		}
	}
	return false
}
