package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"cafepos/internal/datasource"
)

const productColumns = `id, name, price, description, prep_time, image_url, store_id, category_id, created_at, updated_at`

func scanProducts(rows *sql.Rows) ([]datasource.ProductDTO, error) {
	defer rows.Close()
	var out []datasource.ProductDTO
	for rows.Next() {
		var p datasource.ProductDTO
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.PrepTime, &p.ImageURL,
			&p.StoreID, &p.CategoryID, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, translate("scan product", err)
		}
		out = append(out, p)
	}
	return out, translate("load products", rows.Err())
}

func (s *Store) findCategory(ctx context.Context, op, where string, args ...any) (datasource.CategoryDTO, error) {
	var c datasource.CategoryDTO
	err := s.db.QueryRowContext(ctx, `SELECT id, name, store_id, created_at, updated_at FROM categories `+where, args...).
		Scan(&c.ID, &c.Name, &c.StoreID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return datasource.CategoryDTO{}, translate(op, err)
	}
	rows, err := s.db.QueryContext(ctx, `SELECT `+productColumns+` FROM products WHERE category_id = $1 ORDER BY created_at, id`, c.ID)
	if err != nil {
		return datasource.CategoryDTO{}, translate("load products", err)
	}
	if c.Products, err = scanProducts(rows); err != nil {
		return datasource.CategoryDTO{}, err
	}
	return c, nil
}

func (s *Store) FindCategoryByID(ctx context.Context, id string) (datasource.CategoryDTO, error) {
	return s.findCategory(ctx, "find category by id", `WHERE id = $1`, id)
}

func (s *Store) FindCategoryByNameAndStoreID(ctx context.Context, name, storeID string) (datasource.CategoryDTO, error) {
	return s.findCategory(ctx, "find category by name", `WHERE name = $1 AND store_id = $2`, name, storeID)
}

func (s *Store) SaveCategory(ctx context.Context, c datasource.CategoryDTO) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO categories (id, name, store_id, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				updated_at = EXCLUDED.updated_at
		`, c.ID, c.Name, c.StoreID, c.CreatedAt, c.UpdatedAt)
		if err != nil {
			return translate("save category", err)
		}
		keep := make([]string, 0, len(c.Products))
		for _, p := range c.Products {
			keep = append(keep, p.ID)
		}
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM products WHERE category_id = $1 AND NOT (id = ANY($2))`, c.ID, pq.Array(keep)); err != nil {
			return translate("prune products", err)
		}
		for _, p := range c.Products {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO products (`+productColumns+`)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
				ON CONFLICT (id) DO UPDATE SET
					name = EXCLUDED.name,
					price = EXCLUDED.price,
					description = EXCLUDED.description,
					prep_time = EXCLUDED.prep_time,
					image_url = EXCLUDED.image_url,
					category_id = EXCLUDED.category_id,
					updated_at = EXCLUDED.updated_at
			`, p.ID, p.Name, p.Price, p.Description, p.PrepTime, p.ImageURL, p.StoreID, c.ID, p.CreatedAt, p.UpdatedAt)
			if err != nil {
				return translate("save product", err)
			}
		}
		return nil
	})
}

func (s *Store) FindProductsByID(ctx context.Context, ids []string) ([]datasource.ProductDTO, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = ANY($1) ORDER BY created_at, id`, pq.Array(ids))
	if err != nil {
		return nil, translate("find products", err)
	}
	return scanProducts(rows)
}
