package domain

// ItemSummary is a condensed view of one inventory item used in the
// inventory summary and the chef context
type ItemSummary struct {
	Name            string   `json:"name"`
	Quantity        string   `json:"quantity"`
	Location        Location `json:"location"`
	Category        Category `json:"category"`
	ExpiryStatus    string   `json:"expiry_status"`
	DaysUntilExpiry *int     `json:"days_until_expiry,omitempty"`
}

// InventorySummary aggregates the inventory for display and AI context
type InventorySummary struct {
	TotalItems   int                        `json:"total_items"`
	Items        []ItemSummary              `json:"items"`
	ExpiringSoon []ItemSummary              `json:"expiring_soon"`
	ByLocation   map[Location][]ItemSummary `json:"by_location"`
}
