package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"cafepos/internal/datasource"
	"cafepos/pkg/platform/sentinel"
)

const orderColumns = `id, customer_id, store_id, totem_id, status, total_price, created_at, updated_at`

func scanOrder(row interface{ Scan(...any) error }) (datasource.OrderDTO, error) {
	var (
		o                   datasource.OrderDTO
		customerID, totemID sql.NullString
	)
	err := row.Scan(&o.ID, &customerID, &o.StoreID, &totemID, &o.Status, &o.TotalPrice, &o.CreatedAt, &o.UpdatedAt)
	o.CustomerID = customerID.String
	o.TotemID = totemID.String
	return o, err
}

func loadItems(ctx context.Context, q queryer, orderID string) ([]datasource.OrderItemDTO, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, order_id, product_id, unit_price, quantity, subtotal, created_at
		FROM order_items WHERE order_id = $1 ORDER BY created_at, id
	`, orderID)
	if err != nil {
		return nil, translate("load order items", err)
	}
	defer rows.Close()
	var items []datasource.OrderItemDTO
	for rows.Next() {
		var it datasource.OrderItemDTO
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.UnitPrice, &it.Quantity, &it.Subtotal, &it.CreatedAt); err != nil {
			return nil, translate("scan order item", err)
		}
		items = append(items, it)
	}
	return items, translate("load order items", rows.Err())
}

func (s *Store) SaveOrder(ctx context.Context, o datasource.OrderDTO) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO orders (`+orderColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (id) DO UPDATE SET
				status = EXCLUDED.status,
				total_price = EXCLUDED.total_price,
				updated_at = EXCLUDED.updated_at
		`, o.ID, nullString(o.CustomerID), o.StoreID, nullString(o.TotemID), o.Status, o.TotalPrice, o.CreatedAt, o.UpdatedAt)
		if err != nil {
			return translate("save order", err)
		}
		keep := make([]string, 0, len(o.OrderItems))
		for _, it := range o.OrderItems {
			keep = append(keep, it.ID)
		}
		if _, err := tx.ExecContext(ctx,
			`DELETE FROM order_items WHERE order_id = $1 AND NOT (id = ANY($2))`, o.ID, pq.Array(keep)); err != nil {
			return translate("prune order items", err)
		}
		for _, it := range o.OrderItems {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO order_items (id, order_id, product_id, unit_price, quantity, subtotal, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
				ON CONFLICT (id) DO NOTHING
			`, it.ID, o.ID, it.ProductID, it.UnitPrice, it.Quantity, it.Subtotal, it.CreatedAt)
			if err != nil {
				return translate("save order item", err)
			}
		}
		return nil
	})
}

func (s *Store) FindOrderByID(ctx context.Context, id string) (datasource.OrderDTO, error) {
	o, err := scanOrder(s.db.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil {
		return datasource.OrderDTO{}, translate("find order by id", err)
	}
	if o.OrderItems, err = loadItems(ctx, s.db, o.ID); err != nil {
		return datasource.OrderDTO{}, err
	}
	return o, nil
}

func (s *Store) FindByOrderItemID(ctx context.Context, itemID string) (datasource.OrderItemDTO, error) {
	var it datasource.OrderItemDTO
	err := s.db.QueryRowContext(ctx, `
		SELECT id, order_id, product_id, unit_price, quantity, subtotal, created_at
		FROM order_items WHERE id = $1
	`, itemID).Scan(&it.ID, &it.OrderID, &it.ProductID, &it.UnitPrice, &it.Quantity, &it.Subtotal, &it.CreatedAt)
	if err != nil {
		return datasource.OrderItemDTO{}, translate("find order item", err)
	}
	return it, nil
}

func (s *Store) DeleteOrder(ctx context.Context, id string) error {
	return s.deleteOne(ctx, "delete order", `DELETE FROM orders WHERE id = $1`, id)
}

func (s *Store) DeleteOrderItem(ctx context.Context, itemID string) error {
	return s.deleteOne(ctx, "delete order item", `DELETE FROM order_items WHERE id = $1`, itemID)
}

func (s *Store) deleteOne(ctx context.Context, op, query, id string) error {
	res, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return translate(op, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *Store) GetAllOrders(ctx context.Context, query datasource.OrderQuery) (datasource.Page[datasource.OrderDTO], error) {
	p := query.Pagination.Normalize()
	status := nullString(query.Status)

	var total int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM orders
		WHERE store_id = $1 AND ($2::text IS NULL OR status = $2)
	`, query.StoreID, status).Scan(&total)
	if err != nil {
		return datasource.Page[datasource.OrderDTO]{}, translate("count orders", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT `+orderColumns+` FROM orders
		WHERE store_id = $1 AND ($2::text IS NULL OR status = $2)
		ORDER BY created_at, id
		LIMIT $3 OFFSET $4
	`, query.StoreID, status, p.Limit, p.Offset())
	if err != nil {
		return datasource.Page[datasource.OrderDTO]{}, translate("list orders", err)
	}
	var orders []datasource.OrderDTO
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			rows.Close()
			return datasource.Page[datasource.OrderDTO]{}, translate("scan order", err)
		}
		orders = append(orders, o)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return datasource.Page[datasource.OrderDTO]{}, translate("list orders", err)
	}

	for i := range orders {
		if orders[i].OrderItems, err = loadItems(ctx, s.db, orders[i].ID); err != nil {
			return datasource.Page[datasource.OrderDTO]{}, err
		}
	}
	return datasource.Page[datasource.OrderDTO]{Items: orders, Total: total, Page: p.Page, Limit: p.Limit}, nil
}
