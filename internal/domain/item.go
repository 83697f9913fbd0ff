package domain

import "time"

// Location is the storage location of an inventory item
type Location string

const (
	LocationFridge  Location = "fridge"
	LocationFreezer Location = "freezer"
	LocationPantry  Location = "pantry"
)

// IsValidLocation checks if a location string is valid (empty string is valid = default)
func IsValidLocation(location string) bool {
	if location == "" {
		return true
	}
	l := Location(location)
	return l == LocationFridge || l == LocationFreezer || l == LocationPantry
}

// Category groups inventory items for display and summaries
type Category string

const (
	CategoryDairy     Category = "dairy"
	CategoryMeat      Category = "meat"
	CategorySeafood   Category = "seafood"
	CategoryVegetable Category = "vegetable"
	CategoryFruit     Category = "fruit"
	CategoryGrain     Category = "grain"
	CategoryBeverage  Category = "beverage"
	CategoryCondiment Category = "condiment"
	CategorySnack     Category = "snack"
	CategoryLeftover  Category = "leftover"
	CategoryOther     Category = "other"
)

// Expiry status values derived from an item's expiration date
const (
	ExpiryStatusFresh        = "fresh"
	ExpiryStatusExpiringSoon = "expiring_soon"
	ExpiryStatusExpired      = "expired"
	ExpiryStatusUnknown      = "unknown"
)

// ExpiringSoonWindowDays is the default window for the expiring_soon status
const ExpiringSoonWindowDays = 3

// InventoryItem represents a single item stored in the fridge/freezer/pantry.
// Identity is the name, compared case-insensitively.
type InventoryItem struct {
	ID             int        `json:"id"`
	Name           string     `json:"name"`
	Quantity       float64    `json:"quantity"`
	Unit           string     `json:"unit"`
	Location       Location   `json:"location"`
	Category       Category   `json:"category"`
	ExpirationDate *time.Time `json:"expiration_date,omitempty"`
	Notes          string     `json:"notes,omitempty"`
	AddedDate      time.Time  `json:"added_date"`
}

// DaysUntilExpiry returns whole days between now and the expiration date.
// The second return value is false when no expiration date is set.
func (i *InventoryItem) DaysUntilExpiry(now time.Time) (int, bool) {
	if i.ExpirationDate == nil {
		return 0, false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	exp := *i.ExpirationDate
	expDay := time.Date(exp.Year(), exp.Month(), exp.Day(), 0, 0, 0, 0, now.Location())
	return int(expDay.Sub(today).Hours() / 24), true
}

// ExpiryStatus returns fresh, expiring_soon, expired or unknown
func (i *InventoryItem) ExpiryStatus(now time.Time) string {
	days, ok := i.DaysUntilExpiry(now)
	if !ok {
		return ExpiryStatusUnknown
	}
	if days < 0 {
		return ExpiryStatusExpired
	}
	if days <= ExpiringSoonWindowDays {
		return ExpiryStatusExpiringSoon
	}
	return ExpiryStatusFresh
}
