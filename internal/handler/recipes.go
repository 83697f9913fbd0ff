package handler

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Ezio016/MyFridge/internal/domain"
	"github.com/Ezio016/MyFridge/internal/recipes"
)

type RecipeListResponse struct {
	Recipes []domain.Recipe `json:"recipes"`
	Count   int             `json:"count"`
}

// HandleListRecipes returns the full recipe catalog
// @Summary List recipes
// @Tags recipes
// @Produce json
// @Success 200 {object} RecipeListResponse
// @Router /recipes [get]
func HandleListRecipes(svc recipes.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		all := svc.GetAll(r.Context())
		respondJSON(w, http.StatusOK, RecipeListResponse{Recipes: all, Count: len(all)})
	}
}

// HandleGetRecipe returns a single recipe by id
// @Summary Get recipe
// @Tags recipes
// @Produce json
// @Param id path string true "Recipe ID"
// @Success 200 {object} domain.Recipe
// @Failure 404 {object} ErrorResponse
// @Router /recipes/{id} [get]
func HandleGetRecipe(svc recipes.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		recipe, err := svc.GetByID(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "Get recipe", err)
			return
		}

		respondJSON(w, http.StatusOK, recipe)
	}
}

// HandleRandomRecipes returns a random selection from the catalog
// @Summary Random recipes
// @Tags recipes
// @Produce json
// @Param count query int false "Number of recipes (default 3)"
// @Success 200 {object} RecipeListResponse
// @Router /recipes/random [get]
func HandleRandomRecipes(svc recipes.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count := GetOptionalIntParam(r, "count", recipes.DefaultRandomCount)
		picked := svc.Random(r.Context(), count)
		respondJSON(w, http.StatusOK, RecipeListResponse{Recipes: picked, Count: len(picked)})
	}
}

// HandleQuickRecipes returns recipes under a total-time cutoff
// @Summary Quick recipes
// @Tags recipes
// @Produce json
// @Param max_time query int false "Total time cutoff in minutes (default 30)"
// @Param limit query int false "Max results (default 10)"
// @Success 200 {object} RecipeListResponse
// @Router /recipes/quick [get]
func HandleQuickRecipes(svc recipes.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		maxTime := GetOptionalIntParam(r, "max_time", recipes.DefaultQuickMaxTime)
		limit := GetOptionalIntParam(r, "limit", recipes.DefaultResultLimit)
		quick := svc.Quick(r.Context(), maxTime, limit)
		respondJSON(w, http.StatusOK, RecipeListResponse{Recipes: quick, Count: len(quick)})
	}
}

// HandleSearchRecipes filters the catalog by query, tags, time, cuisine
// and difficulty
// @Summary Search recipes
// @Tags recipes
// @Produce json
// @Param q query string false "Text query over name, description and ingredients"
// @Param tags query string false "Comma-separated tags, any may match"
// @Param max_time query int false "Total time cutoff in minutes"
// @Param cuisine query string false "Cuisine filter"
// @Param difficulty query string false "Difficulty filter"
// @Success 200 {object} RecipeListResponse
// @Router /recipes/search [get]
func HandleSearchRecipes(svc recipes.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params := recipes.SearchParams{
			Query:      r.URL.Query().Get("q"),
			MaxTime:    GetOptionalIntParam(r, "max_time", 0),
			Cuisine:    r.URL.Query().Get("cuisine"),
			Difficulty: r.URL.Query().Get("difficulty"),
		}
		if tags := r.URL.Query().Get("tags"); tags != "" {
			params.Tags = strings.Split(tags, ",")
		}

		found := svc.Search(r.Context(), params)
		respondJSON(w, http.StatusOK, RecipeListResponse{Recipes: found, Count: len(found)})
	}
}

// HandleRecipesByTag returns recipes carrying the given tag
// @Summary Recipes by tag
// @Tags recipes
// @Produce json
// @Param tag query string true "Tag to match"
// @Param limit query int false "Max results (default 10)"
// @Success 200 {object} RecipeListResponse
// @Failure 400 {object} ErrorResponse
// @Router /recipes/by-tag [get]
func HandleRecipesByTag(svc recipes.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tag, ok := GetQueryParam(r, w, "tag")
		if !ok {
			return
		}
		limit := GetOptionalIntParam(r, "limit", recipes.DefaultResultLimit)

		found := svc.ByTag(r.Context(), tag, limit)
		respondJSON(w, http.StatusOK, RecipeListResponse{Recipes: found, Count: len(found)})
	}
}

// HandleRecipesByIngredients finds recipes using the given ingredients
// @Summary Recipes by ingredients
// @Tags recipes
// @Produce json
// @Param ingredients query string true "Comma-separated ingredient names"
// @Param limit query int false "Max results (default 10)"
// @Success 200 {object} RecipeListResponse
// @Failure 400 {object} ErrorResponse
// @Router /recipes/by-ingredients [get]
func HandleRecipesByIngredients(svc recipes.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw, ok := GetQueryParam(r, w, "ingredients")
		if !ok {
			return
		}
		limit := GetOptionalIntParam(r, "limit", recipes.DefaultResultLimit)

		found := svc.ByIngredients(r.Context(), strings.Split(raw, ","), limit)
		respondJSON(w, http.StatusOK, RecipeListResponse{Recipes: found, Count: len(found)})
	}
}

// HandleEvaluateRecipe reports readiness of one recipe against the
// current inventory
// @Summary Evaluate recipe readiness
// @Tags recipes
// @Produce json
// @Param id path string true "Recipe ID"
// @Success 200 {object} domain.RecipeReadiness
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /recipes/{id}/readiness [get]
func HandleEvaluateRecipe(svc recipes.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		result, err := svc.Evaluate(r.Context(), id)
		if err != nil {
			respondServiceError(w, r, "Evaluate recipe", err)
			return
		}

		respondJSON(w, http.StatusOK, result)
	}
}
