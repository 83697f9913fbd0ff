//go:build staging

package staging

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
)

func TestHealthEndpoints(t *testing.T) {
	t.Run("Healthz", func(t *testing.T) {
		resp, body := makeRequest(t, "GET", "/healthz", nil)

		if resp.StatusCode != http.StatusOK {
			t.Errorf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
		}

		var health map[string]interface{}
		if err := json.Unmarshal(body, &health); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if health["status"] != "ok" {
			t.Errorf("Expected status ok, got %v", health["status"])
		}
	})

	t.Run("Readyz", func(t *testing.T) {
		resp, body := makeRequest(t, "GET", "/readyz", nil)

		if resp.StatusCode != http.StatusOK {
			t.Errorf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
		}
	})

	t.Run("Version", func(t *testing.T) {
		resp, _ := makeRequest(t, "GET", "/version", nil)

		if resp.StatusCode != http.StatusOK {
			t.Errorf("Expected status 200, got %d", resp.StatusCode)
		}
	})
}

func TestRecipeEndpoints(t *testing.T) {
	t.Run("Catalog", func(t *testing.T) {
		resp, body := makeRequest(t, "GET", "/api/v1/recipes", nil)

		if resp.StatusCode != http.StatusOK {
			t.Errorf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
		}

		var list struct {
			Recipes []struct {
				ID   string `json:"id"`
				Name string `json:"name"`
			} `json:"recipes"`
			Count int `json:"count"`
		}
		if err := json.Unmarshal(body, &list); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if list.Count == 0 {
			t.Error("Expected a non-empty recipe catalog")
		}
		for _, r := range list.Recipes {
			if r.ID == "" || r.Name == "" {
				t.Errorf("Recipe with empty id or name: %+v", r)
			}
		}
	})

	t.Run("Suggest explore", func(t *testing.T) {
		resp, body := makeRequest(t, "GET", "/api/v1/recipes/suggest?mode=explore", nil)

		if resp.StatusCode != http.StatusOK {
			t.Errorf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
		}

		var page struct {
			Mode       string `json:"mode"`
			Page       int    `json:"page"`
			TotalPages int    `json:"total_pages"`
		}
		if err := json.Unmarshal(body, &page); err != nil {
			t.Fatalf("Failed to unmarshal response: %v", err)
		}
		if page.Mode != "explore" {
			t.Errorf("Expected explore mode, got %s", page.Mode)
		}
		if page.Page != 1 {
			t.Errorf("Expected first page, got %d", page.Page)
		}
	})

	t.Run("Suggest rejects bad mode", func(t *testing.T) {
		resp, _ := makeRequest(t, "GET", "/api/v1/recipes/suggest?mode=turbo", nil)

		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", resp.StatusCode)
		}
	})
}

func TestInventoryLifecycle(t *testing.T) {
	// Add an item
	createBody := map[string]interface{}{
		"name":     "staging smoke milk",
		"quantity": 1,
		"unit":     "liters",
		"location": "fridge",
		"category": "dairy",
	}
	resp, body := makeRequest(t, "POST", "/api/v1/inventory", createBody)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d. Body: %s", resp.StatusCode, string(body))
	}

	var created struct {
		ID int `json:"id"`
	}
	if err := json.Unmarshal(body, &created); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("Expected a non-zero item id")
	}

	// It shows up in search
	resp, body = makeRequest(t, "GET", "/api/v1/inventory/search?q=staging+smoke", nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200, got %d. Body: %s", resp.StatusCode, string(body))
	}

	// Clean up
	resp, body = makeRequest(t, "DELETE", fmt.Sprintf("/api/v1/inventory/%d", created.ID), nil)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status 200 on delete, got %d. Body: %s", resp.StatusCode, string(body))
	}
}
