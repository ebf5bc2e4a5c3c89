package catalog

import (
	"context"
	"fmt"

	"restaurant-pos/db"
	"restaurant-pos/models"
)

// LoadPostgres reads the menu from the menu_items table. Called once
// at process start; the result is frozen into a Catalog like any other
// source.
func LoadPostgres(ctx context.Context) (*Catalog, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT id, name, price, category, description, available
		FROM menu_items
		ORDER BY sort_order, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query menu_items: %w", err)
	}
	defer rows.Close()

	var items []models.MenuItem
	for rows.Next() {
		var it models.MenuItem
		var cat string
		if err := rows.Scan(&it.ID, &it.Name, &it.Price, &cat, &it.Description, &it.Available); err != nil {
			return nil, err
		}
		it.Category = models.Category(cat)
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return New(items), nil
}

// Seed creates the menu_items table if needed and upserts the embedded
// default menu into it. Used by the `seed` subcommand.
func Seed(ctx context.Context) (int, error) {
	_, err := db.Pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS menu_items (
			id          text PRIMARY KEY,
			name        text NOT NULL,
			price       double precision NOT NULL CHECK (price >= 0),
			category    text NOT NULL,
			description text NOT NULL DEFAULT '',
			available   boolean NOT NULL DEFAULT true,
			sort_order  int NOT NULL DEFAULT 0
		)`,
	)
	if err != nil {
		return 0, fmt.Errorf("create menu_items: %w", err)
	}

	items := Default().Items()
	for i, it := range items {
		_, err := db.Pool.Exec(ctx, `
			INSERT INTO menu_items (id, name, price, category, description, available, sort_order)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (id) DO UPDATE SET
				name = $2,
				price = $3,
				category = $4,
				description = $5,
				available = $6,
				sort_order = $7`,
			it.ID, it.Name, it.Price, string(it.Category), it.Description, it.Available, i,
		)
		if err != nil {
			return 0, fmt.Errorf("seed item %s: %w", it.ID, err)
		}
	}
	return len(items), nil
}
