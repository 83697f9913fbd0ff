package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/Ezio016/MyFridge/internal/domain"
	"github.com/Ezio016/MyFridge/internal/inventory"
	"github.com/Ezio016/MyFridge/internal/logger"
	"github.com/Ezio016/MyFridge/internal/metrics"
)

// expirationDateLayout is the wire format for expiration dates
const expirationDateLayout = "2006-01-02"

type CreateItemRequest struct {
	Name           string  `json:"name" validate:"required,max=100,excludesall=\x00\n\r\t"`
	Quantity       float64 `json:"quantity" validate:"omitempty,gt=0"`
	Unit           string  `json:"unit" validate:"omitempty,max=30"`
	Location       string  `json:"location" validate:"omitempty,location"`
	Category       string  `json:"category" validate:"omitempty,category"`
	ExpirationDate string  `json:"expiration_date" validate:"omitempty,datetime=2006-01-02"`
	Notes          string  `json:"notes" validate:"omitempty,max=255"`
}

type UpdateItemRequest struct {
	Name           *string  `json:"name" validate:"omitempty,max=100,excludesall=\x00\n\r\t"`
	Quantity       *float64 `json:"quantity" validate:"omitempty,gt=0"`
	Unit           *string  `json:"unit" validate:"omitempty,max=30"`
	Location       *string  `json:"location" validate:"omitempty,location"`
	Category       *string  `json:"category" validate:"omitempty,category"`
	ExpirationDate *string  `json:"expiration_date" validate:"omitempty,datetime=2006-01-02"`
	Notes          *string  `json:"notes" validate:"omitempty,max=255"`
}

type ItemListResponse struct {
	Items []domain.InventoryItem `json:"items"`
	Count int                    `json:"count"`
}

// HandleListItems lists inventory items with offset/limit pagination
// @Summary List inventory items
// @Description List inventory items, newest first
// @Tags inventory
// @Produce json
// @Param offset query int false "Pagination offset"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} ItemListResponse
// @Failure 500 {object} ErrorResponse
// @Router /inventory [get]
func HandleListItems(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		offset := GetOptionalIntParam(r, "offset", 0)
		limit := GetOptionalIntParam(r, "limit", inventory.DefaultListLimit)

		items, err := svc.List(r.Context(), offset, limit)
		if err != nil {
			respondServiceError(w, r, "List items", err)
			return
		}

		respondJSON(w, http.StatusOK, ItemListResponse{Items: items, Count: len(items)})
	}
}

// HandleGetItem returns a single inventory item by id
// @Summary Get inventory item
// @Tags inventory
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} domain.InventoryItem
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /inventory/{id} [get]
func HandleGetItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetIntURLParam(r, w, "id")
		if !ok {
			return
		}

		item, err := svc.Get(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "Get item", err)
			return
		}

		respondJSON(w, http.StatusOK, item)
	}
}

// HandleCreateItem adds an item to the inventory
// @Summary Add inventory item
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body CreateItemRequest true "Item details"
// @Success 201 {object} domain.InventoryItem
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /inventory [post]
func HandleCreateItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req CreateItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Create item"); err != nil {
			return
		}

		item := &domain.InventoryItem{
			Name:     req.Name,
			Quantity: req.Quantity,
			Unit:     req.Unit,
			Location: domain.Location(strings.ToLower(req.Location)),
			Category: domain.Category(strings.ToLower(req.Category)),
			Notes:    req.Notes,
		}
		if req.ExpirationDate != "" {
			t, err := time.Parse(expirationDateLayout, req.ExpirationDate)
			if err != nil {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
				return
			}
			item.ExpirationDate = &t
		}

		created, err := svc.Create(r.Context(), item)
		if err != nil {
			respondServiceError(w, r, "Create item", err)
			return
		}

		metrics.InventoryItemsAdded.WithLabelValues(string(created.Location)).Inc()
		log.Info("Item added", "id", created.ID, "name", created.Name, "location", created.Location)

		respondJSON(w, http.StatusCreated, created)
	}
}

// HandleUpdateItem partially updates an inventory item
// @Summary Update inventory item
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path int true "Item ID"
// @Param request body UpdateItemRequest true "Fields to update"
// @Success 200 {object} domain.InventoryItem
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /inventory/{id} [patch]
func HandleUpdateItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetIntURLParam(r, w, "id")
		if !ok {
			return
		}

		var req UpdateItemRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Update item"); err != nil {
			return
		}

		params := inventory.UpdateParams{
			Name:     req.Name,
			Quantity: req.Quantity,
			Unit:     req.Unit,
			Notes:    req.Notes,
		}
		if req.Location != nil {
			loc := domain.Location(strings.ToLower(*req.Location))
			params.Location = &loc
		}
		if req.Category != nil {
			cat := domain.Category(strings.ToLower(*req.Category))
			params.Category = &cat
		}
		if req.ExpirationDate != nil {
			t, err := time.Parse(expirationDateLayout, *req.ExpirationDate)
			if err != nil {
				respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
				return
			}
			params.ExpirationDate = &t
		}

		updated, err := svc.Update(r.Context(), id, params)
		if err != nil {
			respondServiceError(w, r, "Update item", err)
			return
		}

		respondJSON(w, http.StatusOK, updated)
	}
}

// HandleDeleteItem removes an inventory item
// @Summary Delete inventory item
// @Tags inventory
// @Produce json
// @Param id path int true "Item ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /inventory/{id} [delete]
func HandleDeleteItem(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := GetIntURLParam(r, w, "id")
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			respondServiceError(w, r, "Delete item", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: "Item deleted"})
	}
}

// HandleSearchItems searches the inventory by name
// @Summary Search inventory
// @Tags inventory
// @Produce json
// @Param q query string true "Search query"
// @Success 200 {object} ItemListResponse
// @Failure 400 {object} ErrorResponse
// @Router /inventory/search [get]
func HandleSearchItems(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query, ok := GetQueryParam(r, w, "q")
		if !ok {
			return
		}

		items, err := svc.Search(r.Context(), query)
		if err != nil {
			respondServiceError(w, r, "Search items", err)
			return
		}

		respondJSON(w, http.StatusOK, ItemListResponse{Items: items, Count: len(items)})
	}
}

// HandleExpiringItems lists items that expire within the given window
// @Summary List expiring items
// @Tags inventory
// @Produce json
// @Param days query int false "Window in days (default 3)"
// @Success 200 {object} ItemListResponse
// @Router /inventory/expiring [get]
func HandleExpiringItems(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		days := GetOptionalIntParam(r, "days", domain.ExpiringSoonWindowDays)

		items, err := svc.Expiring(r.Context(), days)
		if err != nil {
			respondServiceError(w, r, "List expiring items", err)
			return
		}

		respondJSON(w, http.StatusOK, ItemListResponse{Items: items, Count: len(items)})
	}
}

// HandleExpiredItems lists items past their expiration date
// @Summary List expired items
// @Tags inventory
// @Produce json
// @Success 200 {object} ItemListResponse
// @Router /inventory/expired [get]
func HandleExpiredItems(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Expired(r.Context())
		if err != nil {
			respondServiceError(w, r, "List expired items", err)
			return
		}

		respondJSON(w, http.StatusOK, ItemListResponse{Items: items, Count: len(items)})
	}
}

// HandleInventorySummary returns the aggregated inventory view
// @Summary Inventory summary
// @Tags inventory
// @Produce json
// @Success 200 {object} domain.InventorySummary
// @Failure 500 {object} ErrorResponse
// @Router /inventory/summary [get]
func HandleInventorySummary(svc inventory.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := svc.Summary(r.Context())
		if err != nil {
			respondServiceError(w, r, "Inventory summary", err)
			return
		}

		respondJSON(w, http.StatusOK, summary)
	}
}
