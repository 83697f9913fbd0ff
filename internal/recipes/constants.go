package recipes

const (
	// DefaultRandomCount is how many recipes Random returns when the
	// caller does not ask for a specific count.
	DefaultRandomCount = 3

	// DefaultQuickMaxTime is the total-time cutoff for quick recipes.
	DefaultQuickMaxTime = 30

	// DefaultResultLimit caps list-style catalog queries.
	DefaultResultLimit = 10
)
