package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Ezio016/MyFridge/internal/domain"
	"github.com/Ezio016/MyFridge/internal/logger"
	"github.com/Ezio016/MyFridge/internal/staples"
)

// Repository defines the interface for inventory data access
type Repository interface {
	List(ctx context.Context, offset, limit int) ([]domain.InventoryItem, error)
	GetAll(ctx context.Context) ([]domain.InventoryItem, error)
	GetByID(ctx context.Context, id int) (*domain.InventoryItem, error)
	Insert(ctx context.Context, item *domain.InventoryItem) (int, error)
	Update(ctx context.Context, id int, item *domain.InventoryItem) error
	Delete(ctx context.Context, id int) error
	SearchByName(ctx context.Context, q string) ([]domain.InventoryItem, error)
	GetExpiringWithin(ctx context.Context, days int) ([]domain.InventoryItem, error)
	GetExpired(ctx context.Context) ([]domain.InventoryItem, error)
}

// UpdateParams holds the optional fields of a partial inventory update.
// Nil fields keep their stored value.
type UpdateParams struct {
	Name           *string
	Quantity       *float64
	Unit           *string
	Location       *domain.Location
	Category       *domain.Category
	ExpirationDate *time.Time
	Notes          *string
}

// Snapshot is an immutable view of the inventory handed to the matching
// engine. Names feed the matcher; ExpiringNames lets callers flag which
// recipes use soon-to-expire items.
type Snapshot struct {
	Names         []string
	ExpiringNames []string
}

// ExpiringAvailable reports whether any expiring item name would satisfy
// the given ingredient text (normalized substring check, either way)
func (s *Snapshot) ExpiringAvailable(ingredient string) bool {
	norm := staples.Normalize(ingredient)
	if norm == "" {
		return false
	}
	for _, name := range s.ExpiringNames {
		n := staples.Normalize(name)
		if n == "" {
			continue
		}
		if strings.Contains(norm, n) || strings.Contains(n, norm) {
			return true
		}
	}
	return false
}

// Service defines the interface for inventory operations
type Service interface {
	List(ctx context.Context, offset, limit int) ([]domain.InventoryItem, error)
	Get(ctx context.Context, id int) (*domain.InventoryItem, error)
	Create(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error)
	Update(ctx context.Context, id int, params UpdateParams) (*domain.InventoryItem, error)
	Delete(ctx context.Context, id int) error
	Search(ctx context.Context, query string) ([]domain.InventoryItem, error)
	Expiring(ctx context.Context, days int) ([]domain.InventoryItem, error)
	Expired(ctx context.Context) ([]domain.InventoryItem, error)
	Summary(ctx context.Context) (*domain.InventorySummary, error)
	Snapshot(ctx context.Context) (*Snapshot, error)
}

type service struct {
	repo             Repository
	expiringSoonDays int
	now              func() time.Time
}

// NewService creates a new inventory service
func NewService(repo Repository, expiringSoonDays int) Service {
	if expiringSoonDays <= 0 {
		expiringSoonDays = domain.ExpiringSoonWindowDays
	}
	return &service{
		repo:             repo,
		expiringSoonDays: expiringSoonDays,
		now:              time.Now,
	}
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.InventoryItem, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > MaxListLimit {
		limit = DefaultListLimit
	}
	items, err := s.repo.List(ctx, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	return items, nil
}

func (s *service) Get(ctx context.Context, id int) (*domain.InventoryItem, error) {
	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	return item, nil
}

func (s *service) Create(ctx context.Context, item *domain.InventoryItem) (*domain.InventoryItem, error) {
	log := logger.FromContext(ctx)

	applyDefaults(item)
	if err := validateItem(item); err != nil {
		return nil, err
	}

	id, err := s.repo.Insert(ctx, item)
	if err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	created, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load created item: %w", err)
	}

	log.Info("Inventory item created", "id", id, "name", created.Name, "location", created.Location)
	return created, nil
}

func (s *service) Update(ctx context.Context, id int, params UpdateParams) (*domain.InventoryItem, error) {
	log := logger.FromContext(ctx)

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	applyUpdate(item, params)
	if err := validateItem(item); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, item); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	log.Info("Inventory item updated", "id", id, "name", item.Name)
	return item, nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	log := logger.FromContext(ctx)

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	log.Info("Inventory item deleted", "id", id)
	return nil
}

func (s *service) Search(ctx context.Context, query string) ([]domain.InventoryItem, error) {
	items, err := s.repo.SearchByName(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to search items: %w", err)
	}
	return items, nil
}

func (s *service) Expiring(ctx context.Context, days int) ([]domain.InventoryItem, error) {
	if days <= 0 {
		days = s.expiringSoonDays
	}
	items, err := s.repo.GetExpiringWithin(ctx, days)
	if err != nil {
		return nil, fmt.Errorf("failed to get expiring items: %w", err)
	}
	return items, nil
}

func (s *service) Expired(ctx context.Context) ([]domain.InventoryItem, error) {
	items, err := s.repo.GetExpired(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get expired items: %w", err)
	}
	return items, nil
}

// Summary aggregates the inventory for display and for the chef context
func (s *service) Summary(ctx context.Context) (*domain.InventorySummary, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize inventory: %w", err)
	}

	now := s.now()
	summary := &domain.InventorySummary{
		TotalItems: len(items),
		Items:      make([]domain.ItemSummary, 0, len(items)),
		ByLocation: map[domain.Location][]domain.ItemSummary{
			domain.LocationFridge:  {},
			domain.LocationFreezer: {},
			domain.LocationPantry:  {},
		},
	}

	for i := range items {
		item := &items[i]
		entry := domain.ItemSummary{
			Name:         item.Name,
			Quantity:     fmt.Sprintf("%g %s", item.Quantity, item.Unit),
			Location:     item.Location,
			Category:     item.Category,
			ExpiryStatus: item.ExpiryStatus(now),
		}
		if days, ok := item.DaysUntilExpiry(now); ok {
			entry.DaysUntilExpiry = &days
		}

		summary.Items = append(summary.Items, entry)
		if entry.ExpiryStatus == domain.ExpiryStatusExpiringSoon {
			summary.ExpiringSoon = append(summary.ExpiringSoon, entry)
		}
		if _, ok := summary.ByLocation[item.Location]; ok {
			summary.ByLocation[item.Location] = append(summary.ByLocation[item.Location], entry)
		}
	}

	return summary, nil
}

// Snapshot reads the full inventory once and extracts the name views the
// matching engine and suggestion layer consume
func (s *service) Snapshot(ctx context.Context) (*Snapshot, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot inventory: %w", err)
	}

	now := s.now()
	snapshot := &Snapshot{
		Names: make([]string, 0, len(items)),
	}
	for i := range items {
		snapshot.Names = append(snapshot.Names, items[i].Name)
		if items[i].ExpiryStatus(now) == domain.ExpiryStatusExpiringSoon {
			snapshot.ExpiringNames = append(snapshot.ExpiringNames, items[i].Name)
		}
	}
	return snapshot, nil
}

func applyDefaults(item *domain.InventoryItem) {
	item.Name = strings.TrimSpace(item.Name)
	if item.Quantity == 0 {
		item.Quantity = 1
	}
	if item.Unit == "" {
		item.Unit = DefaultUnit
	}
	if item.Location == "" {
		item.Location = domain.LocationFridge
	}
	if item.Category == "" {
		item.Category = domain.CategoryOther
	}
}

func applyUpdate(item *domain.InventoryItem, params UpdateParams) {
	if params.Name != nil {
		item.Name = *params.Name
	}
	if params.Quantity != nil {
		item.Quantity = *params.Quantity
	}
	if params.Unit != nil {
		item.Unit = *params.Unit
	}
	if params.Location != nil {
		item.Location = *params.Location
	}
	if params.Category != nil {
		item.Category = *params.Category
	}
	if params.ExpirationDate != nil {
		item.ExpirationDate = params.ExpirationDate
	}
	if params.Notes != nil {
		item.Notes = *params.Notes
	}
}

func validateItem(item *domain.InventoryItem) error {
	if item.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if !domain.IsValidLocation(string(item.Location)) {
		return fmt.Errorf("%w: %s", domain.ErrInvalidLocation, item.Location)
	}
	if !isValidCategory(item.Category) {
		return fmt.Errorf("%w: %s", domain.ErrInvalidCategory, item.Category)
	}
	if item.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", domain.ErrInvalidInput)
	}
	return nil
}

func isValidCategory(c domain.Category) bool {
	switch c {
	case domain.CategoryDairy, domain.CategoryMeat, domain.CategorySeafood,
		domain.CategoryVegetable, domain.CategoryFruit, domain.CategoryGrain,
		domain.CategoryBeverage, domain.CategoryCondiment, domain.CategorySnack,
		domain.CategoryLeftover, domain.CategoryOther:
		return true
	}
	return false
}
