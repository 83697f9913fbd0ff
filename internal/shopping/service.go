package shopping

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Ezio016/MyFridge/internal/domain"
	"github.com/Ezio016/MyFridge/internal/logger"
	"github.com/Ezio016/MyFridge/internal/metrics"
)

// Repository defines the data access contract for shopping list items
type Repository interface {
	List(ctx context.Context) ([]domain.ShoppingItem, error)
	GetOpenByName(ctx context.Context, name string) (*domain.ShoppingItem, error)
	Insert(ctx context.Context, item *domain.ShoppingItem) (int, error)
	SetPurchased(ctx context.Context, id int, purchased bool) error
	GetByID(ctx context.Context, id int) (*domain.ShoppingItem, error)
	Delete(ctx context.Context, id int) error
	DeletePurchased(ctx context.Context) (int, error)
}

// RecipeSource supplies recipe data for queueing missing ingredients
type RecipeSource interface {
	GetByID(ctx context.Context, id string) (*domain.Recipe, error)
	Evaluate(ctx context.Context, recipeID string) (*domain.RecipeReadiness, error)
}

// Service provides shopping list operations
type Service interface {
	List(ctx context.Context) ([]domain.ShoppingItem, error)
	Add(ctx context.Context, name, note string) (*domain.ShoppingItem, error)
	SetPurchased(ctx context.Context, id int, purchased bool) (*domain.ShoppingItem, error)
	Remove(ctx context.Context, id int) error
	ClearPurchased(ctx context.Context) (int, error)
	AddMissingFromRecipe(ctx context.Context, recipeID string) ([]domain.ShoppingItem, error)
}

type service struct {
	repo    Repository
	recipes RecipeSource
	now     func() time.Time
}

// NewService creates a new shopping list service
func NewService(repo Repository, recipes RecipeSource) Service {
	return &service{
		repo:    repo,
		recipes: recipes,
		now:     time.Now,
	}
}

func (s *service) List(ctx context.Context) ([]domain.ShoppingItem, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list shopping items: %w", err)
	}
	return items, nil
}

// Add queues an item on the shopping list. Adding a name that already
// has an open (unpurchased) entry returns the existing entry.
func (s *service) Add(ctx context.Context, name, note string) (*domain.ShoppingItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%s: name is required", domain.ErrMsgInvalidInput)
	}

	item := &domain.ShoppingItem{
		Name:      name,
		Note:      strings.TrimSpace(note),
		AddedDate: s.now(),
	}

	id, err := s.repo.Insert(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("failed to add shopping item: %w", err)
	}
	if id == 0 {
		// Open entry with this name already exists
		return s.repo.GetOpenByName(ctx, name)
	}

	metrics.ShoppingItemsQueued.Inc()
	item.ID = id
	return item, nil
}

func (s *service) SetPurchased(ctx context.Context, id int, purchased bool) (*domain.ShoppingItem, error) {
	if err := s.repo.SetPurchased(ctx, id, purchased); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) Remove(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) ClearPurchased(ctx context.Context) (int, error) {
	removed, err := s.repo.DeletePurchased(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to clear purchased items: %w", err)
	}
	return removed, nil
}

// AddMissingFromRecipe evaluates a recipe against the current inventory
// and queues every missing main ingredient. Ingredients that already
// have an open entry are skipped, so the call is idempotent.
func (s *service) AddMissingFromRecipe(ctx context.Context, recipeID string) ([]domain.ShoppingItem, error) {
	log := logger.FromContext(ctx)

	recipe, err := s.recipes.GetByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	result, err := s.recipes.Evaluate(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	added := make([]domain.ShoppingItem, 0)
	for _, ingredient := range result.MissingMain() {
		item := &domain.ShoppingItem{
			Name:      ingredient,
			Note:      fmt.Sprintf("for %s", recipe.Name),
			RecipeID:  recipe.ID,
			AddedDate: s.now(),
		}
		id, err := s.repo.Insert(ctx, item)
		if err != nil {
			return nil, fmt.Errorf("failed to queue ingredient '%s': %w", ingredient, err)
		}
		if id == 0 {
			continue
		}
		metrics.ShoppingItemsQueued.Inc()
		item.ID = id
		added = append(added, *item)
	}

	log.Info("queued missing ingredients",
		"recipe_id", recipe.ID,
		"missing", result.MissingMainCount,
		"added", len(added))

	return added, nil
}
