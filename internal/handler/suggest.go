package handler

import (
	"net/http"
	"strings"

	"github.com/Ezio016/MyFridge/internal/domain"
	"github.com/Ezio016/MyFridge/internal/readiness"
	"github.com/Ezio016/MyFridge/internal/recipes"
)

// HandleSuggest serves readiness-ranked recipe suggestions
// @Summary Suggest recipes
// @Description Rank the catalog against the current inventory. Lightning mode keeps fast recipes with at least one matched main ingredient; explore mode orders by readiness.
// @Tags recipes
// @Produce json
// @Param mode query string false "Browse mode: lightning or explore (default explore)"
// @Param max_time query int false "Lightning total-time threshold in minutes (default 15)"
// @Param expiring_only query bool false "Only recipes using soon-to-expire items"
// @Param page query int false "1-indexed page (default 1)"
// @Param page_size query int false "Page size (default 12)"
// @Success 200 {object} readiness.Page
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /recipes/suggest [get]
func HandleSuggest(svc recipes.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mode := strings.ToLower(r.URL.Query().Get("mode"))
		if !domain.IsValidBrowseMode(mode) {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidBrowseMode)
			return
		}

		params := recipes.SuggestParams{
			Mode:         domain.BrowseMode(mode),
			MaxTime:      GetOptionalIntParam(r, "max_time", 0),
			ExpiringOnly: GetOptionalBoolParam(r, "expiring_only", false),
			PageSize:     GetOptionalIntParam(r, "page_size", readiness.DefaultPageSize),
			Page:         GetOptionalIntParam(r, "page", 1),
		}

		page, err := svc.Suggest(r.Context(), params)
		if err != nil {
			respondServiceError(w, r, "Suggest recipes", err)
			return
		}

		respondJSON(w, http.StatusOK, page)
	}
}
