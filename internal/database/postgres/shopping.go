package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ezio016/MyFridge/internal/domain"
)

// ShoppingRepository implements the shopping list repository for PostgreSQL
type ShoppingRepository struct {
	db *pgxpool.Pool
}

// NewShoppingRepository creates a new ShoppingRepository
func NewShoppingRepository(db *pgxpool.Pool) *ShoppingRepository {
	return &ShoppingRepository{db: db}
}

const shoppingColumns = `shopping_item_id, name, note, recipe_id, purchased, added_date`

func scanShoppingItem(row pgx.Row) (*domain.ShoppingItem, error) {
	var item domain.ShoppingItem
	var note, recipeID *string
	err := row.Scan(&item.ID, &item.Name, &note, &recipeID, &item.Purchased, &item.AddedDate)
	if err != nil {
		return nil, err
	}
	if note != nil {
		item.Note = *note
	}
	if recipeID != nil {
		item.RecipeID = *recipeID
	}
	return &item, nil
}

// List returns the full shopping list, unpurchased entries first
func (r *ShoppingRepository) List(ctx context.Context) ([]domain.ShoppingItem, error) {
	query := `SELECT ` + shoppingColumns + ` FROM shopping_items ORDER BY purchased, shopping_item_id`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list shopping items: %w", err)
	}
	defer rows.Close()

	var items []domain.ShoppingItem
	for rows.Next() {
		item, err := scanShoppingItem(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan shopping item: %w", err)
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read shopping rows: %w", err)
	}
	return items, nil
}

// GetOpenByName returns the unpurchased entry with the given name, if any
func (r *ShoppingRepository) GetOpenByName(ctx context.Context, name string) (*domain.ShoppingItem, error) {
	query := `SELECT ` + shoppingColumns + ` FROM shopping_items WHERE LOWER(name) = LOWER($1) AND NOT purchased`
	item, err := scanShoppingItem(r.db.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrShoppingItemNotFound
		}
		return nil, fmt.Errorf("failed to get shopping item: %w", err)
	}
	return item, nil
}

// Insert adds a new entry to the shopping list and returns its ID.
// The partial unique index keeps one open entry per ingredient name; a
// conflicting insert is reported as already present via zero ID.
func (r *ShoppingRepository) Insert(ctx context.Context, item *domain.ShoppingItem) (int, error) {
	query := `
		INSERT INTO shopping_items (name, note, recipe_id)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''))
		ON CONFLICT (LOWER(name)) WHERE NOT purchased DO NOTHING
		RETURNING shopping_item_id
	`
	var id int
	err := r.db.QueryRow(ctx, query, item.Name, item.Note, item.RecipeID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Already on the list and not yet purchased
			return 0, nil
		}
		return 0, fmt.Errorf("failed to insert shopping item: %w", err)
	}
	return id, nil
}

// SetPurchased marks an entry purchased or un-purchased
func (r *ShoppingRepository) SetPurchased(ctx context.Context, id int, purchased bool) error {
	tag, err := r.db.Exec(ctx, `UPDATE shopping_items SET purchased = $1 WHERE shopping_item_id = $2`, purchased, id)
	if err != nil {
		return fmt.Errorf("failed to update shopping item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrShoppingItemNotFound
	}
	return nil
}

// GetByID returns a single shopping list entry
func (r *ShoppingRepository) GetByID(ctx context.Context, id int) (*domain.ShoppingItem, error) {
	query := `SELECT ` + shoppingColumns + ` FROM shopping_items WHERE shopping_item_id = $1`
	item, err := scanShoppingItem(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrShoppingItemNotFound
		}
		return nil, fmt.Errorf("failed to get shopping item: %w", err)
	}
	return item, nil
}

// Delete removes an entry from the shopping list
func (r *ShoppingRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM shopping_items WHERE shopping_item_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete shopping item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrShoppingItemNotFound
	}
	return nil
}

// DeletePurchased clears all purchased entries and returns how many were removed
func (r *ShoppingRepository) DeletePurchased(ctx context.Context) (int, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM shopping_items WHERE purchased`)
	if err != nil {
		return 0, fmt.Errorf("failed to clear purchased items: %w", err)
	}
	return int(tag.RowsAffected()), nil
}
