package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/rekon-id/rekon/extractor/common"
)

// StatementExists checks for an existing statement by natural key.
func (db *DB) StatementExists(ctx context.Context, accountID, transactionPeriod string) (bool, string, error) {
	var id string
	err := db.Pool.QueryRow(ctx, `
		SELECT id FROM statements
		WHERE account_id = $1 AND transaction_period = $2
	`, accountID, transactionPeriod).Scan(&id)

	if err != nil {
		if err == pgx.ErrNoRows {
			return false, "", nil
		}
		return false, "", fmt.Errorf("failed to check statement: %w", err)
	}

	return true, id, nil
}

// CreateStatement inserts a new statement row. The verification block is
// optional; a nil verification leaves its columns at defaults.
func (db *DB) CreateStatement(ctx context.Context, accountID, source string, md common.Metadata, v *common.Verification) (string, error) {
	var (
		calculatedDebit, calculatedCredit *decimal.Decimal
		status, message                   string
	)
	if v != nil {
		calculatedDebit = &v.TotalDebitCalculated
		calculatedCredit = &v.TotalCreditCalculated
		status = v.Status
		message = v.Message
	}

	var id string
	err := db.Pool.QueryRow(ctx, `
		INSERT INTO statements (
			account_id, source, statement_date, transaction_period,
			opening_balance, closing_balance, total_debit, total_credit,
			calculated_debit, calculated_credit,
			verification_status, verification_message
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`,
		accountID, source, md.StatementDate, md.TransactionPeriod,
		numericOrNil(md.OpeningBalance), numericOrNil(md.ClosingBalance),
		numericOrNil(md.TotalDebit), numericOrNil(md.TotalCredit),
		calculatedDebit, calculatedCredit,
		status, message,
	).Scan(&id)

	if err != nil {
		return "", fmt.Errorf("failed to create statement: %w", err)
	}

	return id, nil
}

// DeleteStatement removes a statement and its transactions (cascade)
func (db *DB) DeleteStatement(ctx context.Context, statementID string) error {
	_, err := db.Pool.Exec(ctx, `DELETE FROM statements WHERE id = $1`, statementID)
	if err != nil {
		return fmt.Errorf("failed to delete statement: %w", err)
	}
	return nil
}

// numericOrNil maps an unresolved field to SQL NULL instead of zero.
func numericOrNil(raw string) *decimal.Decimal {
	if raw == "" {
		return nil
	}
	d := common.ResolveAmount(raw)
	return &d
}
