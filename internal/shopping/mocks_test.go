package shopping

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Ezio016/MyFridge/internal/domain"
)

// MockRepository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]domain.ShoppingItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShoppingItem), args.Error(1)
}

func (m *MockRepository) GetOpenByName(ctx context.Context, name string) (*domain.ShoppingItem, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShoppingItem), args.Error(1)
}

func (m *MockRepository) Insert(ctx context.Context, item *domain.ShoppingItem) (int, error) {
	args := m.Called(ctx, item)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) SetPurchased(ctx context.Context, id int, purchased bool) error {
	args := m.Called(ctx, id, purchased)
	return args.Error(0)
}

func (m *MockRepository) GetByID(ctx context.Context, id int) (*domain.ShoppingItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShoppingItem), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) DeletePurchased(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MockRecipeSource
type MockRecipeSource struct {
	mock.Mock
}

func (m *MockRecipeSource) GetByID(ctx context.Context, id string) (*domain.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Recipe), args.Error(1)
}

func (m *MockRecipeSource) Evaluate(ctx context.Context, recipeID string) (*domain.RecipeReadiness, error) {
	args := m.Called(ctx, recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecipeReadiness), args.Error(1)
}
