package postgres

import (
	"context"
	"database/sql"

	"cafepos/internal/datasource"
)

const storeColumns = `s.id, s.name, s.fantasy_name, s.email, s.cnpj, s.phone, s.salt, s.password_hash, s.created_at`

func (s *Store) findStore(ctx context.Context, op, where string, arg string) (datasource.StoreDTO, error) {
	var st datasource.StoreDTO
	err := s.db.QueryRowContext(ctx, `SELECT `+storeColumns+` FROM stores s `+where, arg).Scan(
		&st.ID, &st.Name, &st.FantasyName, &st.Email, &st.CNPJ, &st.Phone, &st.Salt, &st.PasswordHash, &st.CreatedAt,
	)
	if err != nil {
		return datasource.StoreDTO{}, translate(op, err)
	}
	totems, err := loadTotems(ctx, s.db, st.ID)
	if err != nil {
		return datasource.StoreDTO{}, err
	}
	st.Totems = totems
	return st, nil
}

func loadTotems(ctx context.Context, q queryer, storeID string) ([]datasource.TotemDTO, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, name, token_access, store_id, created_at
		FROM totems WHERE store_id = $1 ORDER BY created_at, id
	`, storeID)
	if err != nil {
		return nil, translate("load totems", err)
	}
	defer rows.Close()
	var totems []datasource.TotemDTO
	for rows.Next() {
		var t datasource.TotemDTO
		if err := rows.Scan(&t.ID, &t.Name, &t.TokenAccess, &t.StoreID, &t.CreatedAt); err != nil {
			return nil, translate("scan totem", err)
		}
		totems = append(totems, t)
	}
	return totems, translate("load totems", rows.Err())
}

func (s *Store) FindStoreByID(ctx context.Context, id string) (datasource.StoreDTO, error) {
	return s.findStore(ctx, "find store by id", `WHERE s.id = $1`, id)
}

func (s *Store) FindStoreByEmail(ctx context.Context, email string) (datasource.StoreDTO, error) {
	return s.findStore(ctx, "find store by email", `WHERE s.email = $1`, email)
}

func (s *Store) FindStoreByCNPJ(ctx context.Context, cnpj string) (datasource.StoreDTO, error) {
	return s.findStore(ctx, "find store by cnpj", `WHERE s.cnpj = $1`, cnpj)
}

func (s *Store) FindStoreByName(ctx context.Context, name string) (datasource.StoreDTO, error) {
	return s.findStore(ctx, "find store by name", `WHERE s.name = $1`, name)
}

func (s *Store) FindStoreByTotemAccessToken(ctx context.Context, token string) (datasource.StoreDTO, error) {
	return s.findStore(ctx, "find store by totem token",
		`JOIN totems t ON t.store_id = s.id WHERE t.token_access = $1`, token)
}

func (s *Store) SaveStore(ctx context.Context, st datasource.StoreDTO) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO stores (id, name, fantasy_name, email, cnpj, phone, salt, password_hash, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				fantasy_name = EXCLUDED.fantasy_name,
				email = EXCLUDED.email,
				cnpj = EXCLUDED.cnpj,
				phone = EXCLUDED.phone,
				salt = EXCLUDED.salt,
				password_hash = EXCLUDED.password_hash
		`, st.ID, st.Name, st.FantasyName, st.Email, st.CNPJ, st.Phone, st.Salt, st.PasswordHash, st.CreatedAt)
		if err != nil {
			return translate("save store", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM totems WHERE store_id = $1`, st.ID); err != nil {
			return translate("replace totems", err)
		}
		for _, t := range st.Totems {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO totems (id, name, token_access, store_id, created_at)
				VALUES ($1, $2, $3, $4, $5)
			`, t.ID, t.Name, t.TokenAccess, st.ID, t.CreatedAt)
			if err != nil {
				return translate("save totem", err)
			}
		}
		return nil
	})
}
