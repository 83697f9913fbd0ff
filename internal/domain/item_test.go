package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysUntilExpiry(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	t.Run("No expiration date", func(t *testing.T) {
		item := InventoryItem{Name: "rice"}
		_, ok := item.DaysUntilExpiry(now)
		assert.False(t, ok)
	})

	t.Run("Whole days ignore time of day", func(t *testing.T) {
		// Expires early tomorrow morning, still one whole day away
		exp := time.Date(2025, 6, 16, 2, 0, 0, 0, time.UTC)
		item := InventoryItem{Name: "milk", ExpirationDate: &exp}

		days, ok := item.DaysUntilExpiry(now)
		assert.True(t, ok)
		assert.Equal(t, 1, days)
	})

	t.Run("Past date is negative", func(t *testing.T) {
		exp := time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC)
		item := InventoryItem{Name: "yogurt", ExpirationDate: &exp}

		days, ok := item.DaysUntilExpiry(now)
		assert.True(t, ok)
		assert.Equal(t, -2, days)
	})
}

func TestExpiryStatus(t *testing.T) {
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	date := func(daysFromNow int) *time.Time {
		d := now.AddDate(0, 0, daysFromNow)
		return &d
	}

	tests := []struct {
		name     string
		item     InventoryItem
		expected string
	}{
		{"No date", InventoryItem{Name: "salt"}, ExpiryStatusUnknown},
		{"Expired yesterday", InventoryItem{Name: "yogurt", ExpirationDate: date(-1)}, ExpiryStatusExpired},
		{"Expires today", InventoryItem{Name: "milk", ExpirationDate: date(0)}, ExpiryStatusExpiringSoon},
		{"Window boundary", InventoryItem{Name: "cream", ExpirationDate: date(ExpiringSoonWindowDays)}, ExpiryStatusExpiringSoon},
		{"Past the window", InventoryItem{Name: "eggs", ExpirationDate: date(ExpiringSoonWindowDays + 1)}, ExpiryStatusFresh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.item.ExpiryStatus(now))
		})
	}
}

func TestIsValidLocation(t *testing.T) {
	assert.True(t, IsValidLocation(""))
	assert.True(t, IsValidLocation("fridge"))
	assert.True(t, IsValidLocation("freezer"))
	assert.True(t, IsValidLocation("pantry"))
	assert.False(t, IsValidLocation("garage"))
	assert.False(t, IsValidLocation("Fridge"))
}
