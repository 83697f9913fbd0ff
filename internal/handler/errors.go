package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Path/query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidItemID     = "Invalid item id"

	// Inventory operation error messages
	ErrMsgListItemsFailed   = "Failed to list items"
	ErrMsgGetItemFailed     = "Failed to get item"
	ErrMsgCreateItemFailed  = "Failed to add item"
	ErrMsgUpdateItemFailed  = "Failed to update item"
	ErrMsgDeleteItemFailed  = "Failed to delete item"
	ErrMsgSearchItemsFailed = "Failed to search items"
	ErrMsgExpiringFailed    = "Failed to get expiring items"
	ErrMsgSummaryFailed     = "Failed to build inventory summary"

	// Recipe operation error messages
	ErrMsgListRecipesFailed = "Failed to list recipes"
	ErrMsgGetRecipeFailed   = "Failed to get recipe"
	ErrMsgEvaluateFailed    = "Failed to evaluate recipe"
	ErrMsgSuggestFailed     = "Failed to compute suggestions"
	ErrMsgInvalidBrowseMode = "Invalid browse mode"

	// Shopping list error messages
	ErrMsgShoppingListFailed = "Failed to get shopping list"
	ErrMsgAddToListFailed    = "Failed to add to shopping list"
	ErrMsgUpdateEntryFailed  = "Failed to update shopping list entry"
	ErrMsgRemoveEntryFailed  = "Failed to remove shopping list entry"
	ErrMsgClearListFailed    = "Failed to clear purchased entries"
	ErrMsgQueueMissingFailed = "Failed to queue missing ingredients"

	// Chef error messages
	ErrMsgAskChefFailed = "Failed to ask the chef"
)
