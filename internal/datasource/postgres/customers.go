package postgres

import (
	"context"
	"fmt"
	"strings"

	"cafepos/internal/datasource"
)

const customerColumns = `id, cpf, name, email, created_at, updated_at`

func scanCustomer(row interface{ Scan(...any) error }) (datasource.CustomerDTO, error) {
	var c datasource.CustomerDTO
	err := row.Scan(&c.ID, &c.CPF, &c.Name, &c.Email, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (s *Store) findCustomer(ctx context.Context, op, column, value string) (datasource.CustomerDTO, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+customerColumns+` FROM customers WHERE `+column+` = $1`, value)
	c, err := scanCustomer(row)
	if err != nil {
		return datasource.CustomerDTO{}, translate(op, err)
	}
	return c, nil
}

func (s *Store) FindCustomerByID(ctx context.Context, id string) (datasource.CustomerDTO, error) {
	return s.findCustomer(ctx, "find customer by id", "id", id)
}

func (s *Store) FindCustomerByCPF(ctx context.Context, cpf string) (datasource.CustomerDTO, error) {
	return s.findCustomer(ctx, "find customer by cpf", "cpf", cpf)
}

func (s *Store) FindCustomerByEmail(ctx context.Context, email string) (datasource.CustomerDTO, error) {
	return s.findCustomer(ctx, "find customer by email", "email", email)
}

func (s *Store) SaveCustomer(ctx context.Context, c datasource.CustomerDTO) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO customers (id, cpf, name, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			cpf = EXCLUDED.cpf,
			name = EXCLUDED.name,
			email = EXCLUDED.email,
			updated_at = EXCLUDED.updated_at
	`, c.ID, c.CPF, c.Name, c.Email, c.CreatedAt, c.UpdatedAt)
	return translate("save customer", err)
}

func (s *Store) FindAllCustomers(ctx context.Context, pagination datasource.Pagination, filters datasource.CustomerFilters) (datasource.Page[datasource.CustomerDTO], error) {
	p := pagination.Normalize()
	var (
		where []string
		args  []any
	)
	if name := strings.TrimSpace(filters.Name); name != "" {
		args = append(args, "%"+name+"%")
		where = append(where, fmt.Sprintf("name ILIKE $%d", len(args)))
	}
	if filters.Email != "" {
		args = append(args, filters.Email)
		where = append(where, fmt.Sprintf("email = $%d", len(args)))
	}
	if filters.CPF != "" {
		args = append(args, filters.CPF)
		where = append(where, fmt.Sprintf("cpf = $%d", len(args)))
	}
	clause := ""
	if len(where) > 0 {
		clause = " WHERE " + strings.Join(where, " AND ")
	}

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM customers`+clause, args...).Scan(&total); err != nil {
		return datasource.Page[datasource.CustomerDTO]{}, translate("count customers", err)
	}

	args = append(args, p.Limit, p.Offset())
	query := fmt.Sprintf(`SELECT %s FROM customers%s ORDER BY created_at, id LIMIT $%d OFFSET $%d`,
		customerColumns, clause, len(args)-1, len(args))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return datasource.Page[datasource.CustomerDTO]{}, translate("list customers", err)
	}
	defer rows.Close()

	page := datasource.Page[datasource.CustomerDTO]{Total: total, Page: p.Page, Limit: p.Limit}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return datasource.Page[datasource.CustomerDTO]{}, translate("scan customer", err)
		}
		page.Items = append(page.Items, c)
	}
	if err := rows.Err(); err != nil {
		return datasource.Page[datasource.CustomerDTO]{}, translate("list customers", err)
	}
	return page, nil
}
