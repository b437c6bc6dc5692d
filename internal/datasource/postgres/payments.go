package postgres

import (
	"context"

	"cafepos/internal/datasource"
)

const paymentColumns = `id, order_id, store_id, payment_type, status, total, external_id, qr_code, platform, created_at, updated_at`

func scanPayment(row interface{ Scan(...any) error }) (datasource.PaymentDTO, error) {
	var p datasource.PaymentDTO
	err := row.Scan(&p.ID, &p.OrderID, &p.StoreID, &p.PaymentType, &p.Status, &p.Total,
		&p.ExternalID, &p.QRCode, &p.Platform, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (s *Store) SavePayment(ctx context.Context, p datasource.PaymentDTO) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO payments (`+paymentColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			status = EXCLUDED.status,
			external_id = EXCLUDED.external_id,
			qr_code = EXCLUDED.qr_code,
			platform = EXCLUDED.platform,
			updated_at = EXCLUDED.updated_at
	`, p.ID, p.OrderID, p.StoreID, p.PaymentType, p.Status, p.Total,
		p.ExternalID, p.QRCode, p.Platform, p.CreatedAt, p.UpdatedAt)
	return translate("save payment", err)
}

func (s *Store) FindPaymentByID(ctx context.Context, id string) (datasource.PaymentDTO, error) {
	p, err := scanPayment(s.db.QueryRowContext(ctx, `SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id))
	if err != nil {
		return datasource.PaymentDTO{}, translate("find payment by id", err)
	}
	return p, nil
}

func (s *Store) FindPaymentByOrderID(ctx context.Context, orderID string) (datasource.PaymentDTO, error) {
	p, err := scanPayment(s.db.QueryRowContext(ctx, `
		SELECT `+paymentColumns+` FROM payments
		WHERE order_id = $1 ORDER BY created_at DESC, id DESC LIMIT 1
	`, orderID))
	if err != nil {
		return datasource.PaymentDTO{}, translate("find payment by order", err)
	}
	return p, nil
}
