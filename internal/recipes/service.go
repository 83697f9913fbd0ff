package recipes

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/Ezio016/MyFridge/internal/domain"
	"github.com/Ezio016/MyFridge/internal/inventory"
	"github.com/Ezio016/MyFridge/internal/logger"
	"github.com/Ezio016/MyFridge/internal/metrics"
	"github.com/Ezio016/MyFridge/internal/readiness"
	"github.com/Ezio016/MyFridge/internal/staples"
)

// SnapshotProvider supplies the current inventory view used for
// readiness suggestions.
type SnapshotProvider interface {
	Snapshot(ctx context.Context) (*inventory.Snapshot, error)
}

// SearchParams holds the optional filters for catalog search
type SearchParams struct {
	Query      string
	Tags       []string
	MaxTime    int
	Cuisine    string
	Difficulty string
}

// SuggestParams holds the knobs for readiness-ranked suggestions
type SuggestParams struct {
	Mode         domain.BrowseMode
	MaxTime      int
	ExpiringOnly bool
	PageSize     int
	Page         int
}

// Service provides recipe catalog operations
type Service interface {
	GetAll(ctx context.Context) []domain.Recipe
	GetByID(ctx context.Context, id string) (*domain.Recipe, error)
	Random(ctx context.Context, count int) []domain.Recipe
	Quick(ctx context.Context, maxTime, limit int) []domain.Recipe
	Search(ctx context.Context, params SearchParams) []domain.Recipe
	ByTag(ctx context.Context, tag string, limit int) []domain.Recipe
	ByIngredients(ctx context.Context, ingredients []string, limit int) []domain.Recipe
	Evaluate(ctx context.Context, recipeID string) (*domain.RecipeReadiness, error)
	Suggest(ctx context.Context, params SuggestParams) (*readiness.Page, error)
}

type service struct {
	catalog    []domain.Recipe
	byID       map[string]int
	classifier *staples.Classifier
	snapshots  SnapshotProvider
}

// NewService creates a new recipe service backed by a validated catalog.
// Catalog order is preserved for deterministic ranking.
func NewService(config *Config, classifier *staples.Classifier, snapshots SnapshotProvider) Service {
	byID := make(map[string]int, len(config.Recipes))
	for i, recipe := range config.Recipes {
		byID[recipe.ID] = i
	}
	return &service{
		catalog:    config.Recipes,
		byID:       byID,
		classifier: classifier,
		snapshots:  snapshots,
	}
}

func (s *service) GetAll(_ context.Context) []domain.Recipe {
	out := make([]domain.Recipe, len(s.catalog))
	copy(out, s.catalog)
	return out
}

func (s *service) GetByID(_ context.Context, id string) (*domain.Recipe, error) {
	i, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("%s '%s': %w", domain.ErrMsgRecipeNotFound, id, domain.ErrRecipeNotFound)
	}
	recipe := s.catalog[i]
	return &recipe, nil
}

func (s *service) Random(_ context.Context, count int) []domain.Recipe {
	if count <= 0 {
		count = DefaultRandomCount
	}
	out := make([]domain.Recipe, len(s.catalog))
	copy(out, s.catalog)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	if count < len(out) {
		out = out[:count]
	}
	return out
}

func (s *service) Quick(_ context.Context, maxTime, limit int) []domain.Recipe {
	if maxTime <= 0 {
		maxTime = DefaultQuickMaxTime
	}
	if limit <= 0 {
		limit = DefaultResultLimit
	}
	out := make([]domain.Recipe, 0)
	for _, recipe := range s.catalog {
		if recipe.TotalTimeMinutes <= maxTime {
			out = append(out, recipe)
		}
	}
	// Sample rather than always serving the catalog-order prefix.
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	if limit < len(out) {
		out = out[:limit]
	}
	return out
}

func (s *service) Search(_ context.Context, params SearchParams) []domain.Recipe {
	query := staples.Normalize(params.Query)
	cuisine := staples.Normalize(params.Cuisine)
	difficulty := staples.Normalize(params.Difficulty)

	out := make([]domain.Recipe, 0)
	for _, recipe := range s.catalog {
		if query != "" && !matchesQuery(recipe, query) {
			continue
		}
		if params.MaxTime > 0 && recipe.TotalTimeMinutes > params.MaxTime {
			continue
		}
		if cuisine != "" && staples.Normalize(recipe.Cuisine) != cuisine {
			continue
		}
		if difficulty != "" && staples.Normalize(recipe.Difficulty) != difficulty {
			continue
		}
		if len(params.Tags) > 0 && !hasAnyTag(recipe, params.Tags) {
			continue
		}
		out = append(out, recipe)
	}
	return out
}

func (s *service) ByTag(_ context.Context, tag string, limit int) []domain.Recipe {
	if limit <= 0 {
		limit = DefaultResultLimit
	}
	want := staples.Normalize(tag)
	out := make([]domain.Recipe, 0)
	for _, recipe := range s.catalog {
		for _, t := range recipe.Tags {
			if staples.Normalize(t) == want {
				out = append(out, recipe)
				break
			}
		}
		if len(out) == limit {
			break
		}
	}
	return out
}

// ByIngredients scores each recipe by how many of the given ingredients
// appear somewhere in its ingredient list, and returns the best matches.
func (s *service) ByIngredients(_ context.Context, ingredients []string, limit int) []domain.Recipe {
	if limit <= 0 {
		limit = DefaultResultLimit
	}

	type scored struct {
		recipe  domain.Recipe
		matches int
	}

	candidates := make([]scored, 0)
	for _, recipe := range s.catalog {
		haystack := staples.Normalize(strings.Join(recipe.Ingredients, " "))
		matches := 0
		for _, ing := range ingredients {
			needle := staples.Normalize(ing)
			if needle != "" && strings.Contains(haystack, needle) {
				matches++
			}
		}
		if matches > 0 {
			candidates = append(candidates, scored{recipe: recipe, matches: matches})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].matches > candidates[j].matches
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	out := make([]domain.Recipe, len(candidates))
	for i, c := range candidates {
		out[i] = c.recipe
	}
	return out
}

// Evaluate computes readiness for a single recipe against the current
// inventory.
func (s *service) Evaluate(ctx context.Context, recipeID string) (*domain.RecipeReadiness, error) {
	recipe, err := s.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	snap, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory snapshot: %w", err)
	}

	matcher := readiness.NewMatcher(s.classifier, snap.Names)
	result := readiness.Evaluate(matcher, *recipe)
	metrics.RecipesEvaluated.Inc()
	return &result, nil
}

// Suggest evaluates the whole catalog against the current inventory and
// returns a ranked, paginated readiness view.
func (s *service) Suggest(ctx context.Context, params SuggestParams) (*readiness.Page, error) {
	log := logger.FromContext(ctx)

	snap, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load inventory snapshot: %w", err)
	}

	matcher := readiness.NewMatcher(s.classifier, snap.Names)
	candidates := make([]readiness.Candidate, 0, len(s.catalog))
	for _, recipe := range s.catalog {
		result := readiness.Evaluate(matcher, recipe)
		candidates = append(candidates, readiness.Candidate{
			Recipe:       recipe,
			Readiness:    result,
			UsesExpiring: usesExpiring(result, snap),
		})
	}
	metrics.RecipesEvaluated.Add(float64(len(s.catalog)))

	page := readiness.Rank(candidates, readiness.Options{
		Mode:           params.Mode,
		MaxTimeMinutes: params.MaxTime,
		ExpiringOnly:   params.ExpiringOnly,
		PageSize:       params.PageSize,
		Page:           params.Page,
	})
	metrics.SuggestionsServed.WithLabelValues(string(page.Mode)).Inc()

	log.Debug("suggestions computed",
		"mode", page.Mode,
		"total_matching", page.TotalMatching,
		"ready_count", page.ReadyCount,
		"page", page.Page)

	return &page, nil
}

// usesExpiring reports whether any matched main ingredient is covered by
// an expiring inventory item.
func usesExpiring(result domain.RecipeReadiness, snap *inventory.Snapshot) bool {
	for i, ing := range result.MainIngredients {
		if result.HasMain[i] && snap.ExpiringAvailable(ing) {
			return true
		}
	}
	return false
}

func matchesQuery(recipe domain.Recipe, query string) bool {
	if strings.Contains(staples.Normalize(recipe.Name), query) {
		return true
	}
	if strings.Contains(staples.Normalize(recipe.Description), query) {
		return true
	}
	for _, ing := range recipe.Ingredients {
		if strings.Contains(staples.Normalize(ing), query) {
			return true
		}
	}
	return false
}

// hasAnyTag matches when the recipe carries at least one of the
// requested tags.
func hasAnyTag(recipe domain.Recipe, tags []string) bool {
	have := make(map[string]bool, len(recipe.Tags))
	for _, t := range recipe.Tags {
		have[staples.Normalize(t)] = true
	}
	for _, t := range tags {
		if have[staples.Normalize(t)] {
			return true
		}
	}
	return false
}
