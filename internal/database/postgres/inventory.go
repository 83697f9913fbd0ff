package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ezio016/MyFridge/internal/domain"
)

// InventoryRepository implements the inventory repository for PostgreSQL
type InventoryRepository struct {
	db *pgxpool.Pool
}

// NewInventoryRepository creates a new InventoryRepository
func NewInventoryRepository(db *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{db: db}
}

const inventoryColumns = `item_id, name, quantity, unit, location, category, expiration_date, notes, added_date`

func scanInventoryItem(row pgx.Row) (*domain.InventoryItem, error) {
	var item domain.InventoryItem
	var notes *string
	err := row.Scan(
		&item.ID,
		&item.Name,
		&item.Quantity,
		&item.Unit,
		&item.Location,
		&item.Category,
		&item.ExpirationDate,
		&notes,
		&item.AddedDate,
	)
	if err != nil {
		return nil, err
	}
	if notes != nil {
		item.Notes = *notes
	}
	return &item, nil
}

func collectInventoryItems(rows pgx.Rows) ([]domain.InventoryItem, error) {
	defer rows.Close()

	var items []domain.InventoryItem
	for rows.Next() {
		item, err := scanInventoryItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan inventory item: %w", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read inventory rows: %w", err)
	}
	return items, nil
}

// List returns inventory items ordered by insertion, with offset/limit paging
func (r *InventoryRepository) List(ctx context.Context, offset, limit int) ([]domain.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items ORDER BY item_id OFFSET $1 LIMIT $2`
	rows, err := r.db.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory items: %w", err)
	}
	return collectInventoryItems(rows)
}

// GetAll returns the complete inventory snapshot
func (r *InventoryRepository) GetAll(ctx context.Context) ([]domain.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items ORDER BY item_id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get inventory items: %w", err)
	}
	return collectInventoryItems(rows)
}

// GetByID returns a single inventory item
func (r *InventoryRepository) GetByID(ctx context.Context, id int) (*domain.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE item_id = $1`
	item, err := scanInventoryItem(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to get inventory item: %w", err)
	}
	return item, nil
}

// Insert adds a new inventory item and returns its ID
func (r *InventoryRepository) Insert(ctx context.Context, item *domain.InventoryItem) (int, error) {
	query := `
		INSERT INTO inventory_items (name, quantity, unit, location, category, expiration_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''))
		RETURNING item_id
	`
	var id int
	err := r.db.QueryRow(ctx, query,
		item.Name, item.Quantity, item.Unit, item.Location, item.Category, item.ExpirationDate, item.Notes,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert inventory item: %w", err)
	}
	return id, nil
}

// Update replaces the stored fields for an existing item
func (r *InventoryRepository) Update(ctx context.Context, id int, item *domain.InventoryItem) error {
	query := `
		UPDATE inventory_items
		SET name = $1, quantity = $2, unit = $3, location = $4, category = $5,
		    expiration_date = $6, notes = NULLIF($7, '')
		WHERE item_id = $8
	`
	tag, err := r.db.Exec(ctx, query,
		item.Name, item.Quantity, item.Unit, item.Location, item.Category, item.ExpirationDate, item.Notes, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update inventory item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// Delete removes an inventory item
func (r *InventoryRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM inventory_items WHERE item_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete inventory item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

// SearchByName returns items whose name contains the query, case-insensitively
func (r *InventoryRepository) SearchByName(ctx context.Context, q string) ([]domain.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_items WHERE name ILIKE '%' || $1 || '%' ORDER BY item_id`
	rows, err := r.db.Query(ctx, query, q)
	if err != nil {
		return nil, fmt.Errorf("failed to search inventory items: %w", err)
	}
	return collectInventoryItems(rows)
}

// GetExpiringWithin returns unexpired items whose expiration date falls inside the window
func (r *InventoryRepository) GetExpiringWithin(ctx context.Context, days int) ([]domain.InventoryItem, error) {
	query := `
		SELECT ` + inventoryColumns + `
		FROM inventory_items
		WHERE expiration_date IS NOT NULL
		  AND expiration_date >= CURRENT_DATE
		  AND expiration_date <= CURRENT_DATE + $1 * INTERVAL '1 day'
		ORDER BY expiration_date
	`
	rows, err := r.db.Query(ctx, query, days)
	if err != nil {
		return nil, fmt.Errorf("failed to get expiring items: %w", err)
	}
	return collectInventoryItems(rows)
}

// GetExpired returns items whose expiration date has passed
func (r *InventoryRepository) GetExpired(ctx context.Context) ([]domain.InventoryItem, error) {
	query := `
		SELECT ` + inventoryColumns + `
		FROM inventory_items
		WHERE expiration_date IS NOT NULL AND expiration_date < CURRENT_DATE
		ORDER BY expiration_date
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get expired items: %w", err)
	}
	return collectInventoryItems(rows)
}
