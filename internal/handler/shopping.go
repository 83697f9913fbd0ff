package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Ezio016/MyFridge/internal/domain"
	"github.com/Ezio016/MyFridge/internal/logger"
	"github.com/Ezio016/MyFridge/internal/shopping"
)

type AddShoppingItemRequest struct {
	Name string `json:"name" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Note string `json:"note" validate:"omitempty,max=255"`
}

type SetPurchasedRequest struct {
	Purchased bool `json:"purchased"`
}

type ShoppingListResponse struct {
	Items []domain.ShoppingItem `json:"items"`
	Count int                   `json:"count"`
}

type ClearPurchasedResponse struct {
	Removed int `json:"removed"`
}

type QueueMissingResponse struct {
	Added []domain.ShoppingItem `json:"added"`
	Count int                   `json:"count"`
}

// HandleShoppingList returns the shopping list, open entries first
// @Summary Get shopping list
// @Tags shopping
// @Produce json
// @Success 200 {object} ShoppingListResponse
// @Failure 500 {object} ErrorResponse
// @Router /shopping [get]
func HandleShoppingList(svc shopping.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			respondServiceError(w, r, "Get shopping list", err)
			return
		}

		respondJSON(w, http.StatusOK, ShoppingListResponse{Items: items, Count: len(items)})
	}
}

// HandleAddShoppingItem queues an item on the shopping list
// @Summary Add shopping list entry
// @Tags shopping
// @Accept json
// @Produce json
// @Param request body AddShoppingItemRequest true "Entry details"
// @Success 201 {object} domain.ShoppingItem
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /shopping [post]
func HandleAddShoppingItem(svc shopping.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddShoppingItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Add shopping item"); err != nil {
			return
		}

		item, err := svc.Add(r.Context(), req.Name, req.Note)
		if err != nil {
			respondServiceError(w, r, "Add shopping item", err)
			return
		}

		respondJSON(w, http.StatusCreated, item)
	}
}

// HandleSetPurchased marks an entry purchased or un-purchased
// @Summary Set purchased state
// @Tags shopping
// @Accept json
// @Produce json
// @Param id path int true "Entry ID"
// @Param request body SetPurchasedRequest true "Purchased state"
// @Success 200 {object} domain.ShoppingItem
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /shopping/{id} [patch]
func HandleSetPurchased(svc shopping.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetIntURLParam(r, w, "id")
		if !ok {
			return
		}

		var req SetPurchasedRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Set purchased"); err != nil {
			return
		}

		item, err := svc.SetPurchased(r.Context(), id, req.Purchased)
		if err != nil {
			respondServiceError(w, r, "Set purchased", err)
			return
		}

		respondJSON(w, http.StatusOK, item)
	}
}

// HandleRemoveShoppingItem removes a shopping list entry
// @Summary Remove shopping list entry
// @Tags shopping
// @Produce json
// @Param id path int true "Entry ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /shopping/{id} [delete]
func HandleRemoveShoppingItem(svc shopping.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetIntURLParam(r, w, "id")
		if !ok {
			return
		}

		if err := svc.Remove(r.Context(), id); err != nil {
			respondServiceError(w, r, "Remove shopping item", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Entry removed"})
	}
}

// HandleClearPurchased removes all purchased entries
// @Summary Clear purchased entries
// @Tags shopping
// @Produce json
// @Success 200 {object} ClearPurchasedResponse
// @Failure 500 {object} ErrorResponse
// @Router /shopping/purchased [delete]
func HandleClearPurchased(svc shopping.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		removed, err := svc.ClearPurchased(r.Context())
		if err != nil {
			respondServiceError(w, r, "Clear purchased", err)
			return
		}

		log.Info("Purchased entries cleared", "removed", removed)
		respondJSON(w, http.StatusOK, ClearPurchasedResponse{Removed: removed})
	}
}

// HandleQueueMissingIngredients queues a recipe's missing main
// ingredients on the shopping list
// @Summary Queue missing ingredients
// @Description Evaluate a recipe against the inventory and add every missing main ingredient to the shopping list. Ingredients already queued are skipped.
// @Tags shopping
// @Produce json
// @Param id path string true "Recipe ID"
// @Success 201 {object} QueueMissingResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /shopping/from-recipe/{id} [post]
func HandleQueueMissingIngredients(svc shopping.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipeID := chi.URLParam(r, "id")

		added, err := svc.AddMissingFromRecipe(r.Context(), recipeID)
		if err != nil {
			respondServiceError(w, r, "Queue missing ingredients", err)
			return
		}

		respondJSON(w, http.StatusCreated, QueueMissingResponse{Added: added, Count: len(added)})
	}
}
