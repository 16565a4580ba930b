package postgres

import (
	"context"
	"fmt"

	"github.com/rekon-id/rekon/extractor/common"
)

// GetOrCreateAccount finds an existing account by number or creates a
// new one. Descriptive fields are refreshed from the statement only
// when the statement resolved them, so a later parse with a weaker
// header never blanks stored values.
func (db *DB) GetOrCreateAccount(ctx context.Context, md common.Metadata) (string, error) {
	var id string

	err := db.Pool.QueryRow(ctx, `
		SELECT id FROM accounts WHERE account_no = $1
	`, md.AccountNo).Scan(&id)

	if err == nil {
		_, err = db.Pool.Exec(ctx, `
			UPDATE accounts
			SET business_unit = CASE WHEN $1::text != '' THEN $1 ELSE business_unit END,
			    product_name = CASE WHEN $2::text != '' THEN $2 ELSE product_name END,
			    valuta = CASE WHEN $3::text != '' THEN $3 ELSE valuta END,
			    unit_address = CASE WHEN $4::text != '' THEN $4 ELSE unit_address END,
			    updated_at = NOW()
			WHERE id = $5
		`, md.BusinessUnit, md.ProductName, md.Valuta, md.UnitAddress, id)
		if err != nil {
			return "", fmt.Errorf("failed to update account: %w", err)
		}
		return id, nil
	}

	err = db.Pool.QueryRow(ctx, `
		INSERT INTO accounts (account_no, business_unit, product_name, valuta, unit_address)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, md.AccountNo, md.BusinessUnit, md.ProductName, md.Valuta, md.UnitAddress).Scan(&id)

	if err != nil {
		return "", fmt.Errorf("failed to create account: %w", err)
	}

	return id, nil
}
