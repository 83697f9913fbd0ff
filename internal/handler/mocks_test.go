package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Ezio016/MyFridge/internal/chef"
	"github.com/Ezio016/MyFridge/internal/domain"
	"github.com/Ezio016/MyFridge/internal/inventory"
	"github.com/Ezio016/MyFridge/internal/readiness"
	"github.com/Ezio016/MyFridge/internal/recipes"
	"github.com/Ezio016/MyFridge/internal/shopping"
)

// Compile-time checks that the mocks satisfy the service interfaces
var (
	_ inventory.Service = (*MockInventoryService)(nil)
	_ recipes.Service   = (*MockRecipeService)(nil)
	_ shopping.Service  = (*MockShoppingService)(nil)
	_ chef.Service      = (*MockChefService)(nil)
)

// MockInventoryService
type MockInventoryService struct {
	mock.Mock
}

func (m *MockInventoryService) List(ctx context.Context, offset, limit int) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryService) Get(ctx context.Context, id int) (*domain.InventoryItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryService) Create(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryService) Update(ctx context.Context, id int, params inventory.UpdateParams) (*domain.InventoryItem, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryService) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInventoryService) Search(ctx context.Context, query string) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryService) Expiring(ctx context.Context, days int) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryService) Expired(ctx context.Context) ([]domain.InventoryItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}

func (m *MockInventoryService) Summary(ctx context.Context) (*domain.InventorySummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventorySummary), args.Error(1)
}

func (m *MockInventoryService) Snapshot(ctx context.Context) (*inventory.Snapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Snapshot), args.Error(1)
}

// MockRecipeService
type MockRecipeService struct {
	mock.Mock
}

func (m *MockRecipeService) GetAll(ctx context.Context) []domain.Recipe {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Recipe)
}

func (m *MockRecipeService) GetByID(ctx context.Context, id string) (*domain.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recipe), args.Error(1)
}

func (m *MockRecipeService) Random(ctx context.Context, count int) []domain.Recipe {
	args := m.Called(ctx, count)
	return args.Get(0).([]domain.Recipe)
}

func (m *MockRecipeService) Quick(ctx context.Context, maxTime, limit int) []domain.Recipe {
	args := m.Called(ctx, maxTime, limit)
	return args.Get(0).([]domain.Recipe)
}

func (m *MockRecipeService) Search(ctx context.Context, params recipes.SearchParams) []domain.Recipe {
	args := m.Called(ctx, params)
	return args.Get(0).([]domain.Recipe)
}

func (m *MockRecipeService) ByTag(ctx context.Context, tag string, limit int) []domain.Recipe {
	args := m.Called(ctx, tag, limit)
	return args.Get(0).([]domain.Recipe)
}

func (m *MockRecipeService) ByIngredients(ctx context.Context, ingredients []string, limit int) []domain.Recipe {
	args := m.Called(ctx, ingredients, limit)
	return args.Get(0).([]domain.Recipe)
}

func (m *MockRecipeService) Evaluate(ctx context.Context, recipeID string) (*domain.RecipeReadiness, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecipeReadiness), args.Error(1)
}

func (m *MockRecipeService) Suggest(ctx context.Context, params recipes.SuggestParams) (*readiness.Page, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*readiness.Page), args.Error(1)
}

// MockShoppingService
type MockShoppingService struct {
	mock.Mock
}

func (m *MockShoppingService) List(ctx context.Context) ([]domain.ShoppingItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShoppingItem), args.Error(1)
}

func (m *MockShoppingService) Add(ctx context.Context, name, note string) (*domain.ShoppingItem, error) {
	args := m.Called(ctx, name, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShoppingItem), args.Error(1)
}

func (m *MockShoppingService) SetPurchased(ctx context.Context, id int, purchased bool) (*domain.ShoppingItem, error) {
	args := m.Called(ctx, id, purchased)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShoppingItem), args.Error(1)
}

func (m *MockShoppingService) Remove(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockShoppingService) ClearPurchased(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockShoppingService) AddMissingFromRecipe(ctx context.Context, recipeID string) ([]domain.ShoppingItem, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShoppingItem), args.Error(1)
}

// MockChefService
type MockChefService struct {
	mock.Mock
}

func (m *MockChefService) Ask(ctx context.Context, question string) (*chef.Reply, error) {
	args := m.Called(ctx, question)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*chef.Reply), args.Error(1)
}
