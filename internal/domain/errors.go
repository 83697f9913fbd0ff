package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Inventory errors
	ErrMsgItemNotFound    = "item not found"
	ErrMsgInvalidLocation = "invalid location"
	ErrMsgInvalidCategory = "invalid category"

	// Recipe errors
	ErrMsgRecipeNotFound = "recipe not found"

	// Shopping errors
	ErrMsgShoppingItemNotFound = "shopping item not found"

	// Chef errors
	ErrMsgChefUnavailable = "chef upstream unavailable"

	// Input errors
	ErrMsgInvalidInput = "invalid input"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Inventory errors
	ErrItemNotFound    = errors.New(ErrMsgItemNotFound)
	ErrInvalidLocation = errors.New(ErrMsgInvalidLocation)
	ErrInvalidCategory = errors.New(ErrMsgInvalidCategory)

	// Recipe errors
	ErrRecipeNotFound = errors.New(ErrMsgRecipeNotFound)

	// Shopping errors
	ErrShoppingItemNotFound = errors.New(ErrMsgShoppingItemNotFound)

	// Chef errors
	ErrChefUnavailable = errors.New(ErrMsgChefUnavailable)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// Database/System errors
	ErrDatabaseError = errors.New(ErrMsgDatabaseError)
)
