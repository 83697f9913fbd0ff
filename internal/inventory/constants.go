package inventory

// List paging limits
const (
	DefaultListLimit = 100
	MaxListLimit     = 100
)

// DefaultUnit is applied when a created item carries no unit
const DefaultUnit = "pieces"
