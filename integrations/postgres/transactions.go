package postgres

import (
	"context"
	"fmt"

	"github.com/rekon-id/rekon/extractor/common"
)

// InsertTransactions stores a statement's rows in scan order. Sequence
// numbers start at 1 and the unique key on (statement_id, sequence)
// rejects accidental re-inserts.
func (db *DB) InsertTransactions(ctx context.Context, statementID string, transactions []common.Transaction) error {
	for i, txn := range transactions {
		_, err := db.Pool.Exec(ctx, `
			INSERT INTO transactions (
				statement_id, sequence, posted_at, description, user_id,
				debit, credit, balance
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`,
			statementID, i+1, txn.Date, txn.Description, txn.User,
			numericOrNil(txn.Debit), numericOrNil(txn.Credit), numericOrNil(txn.Balance),
		)
		if err != nil {
			return fmt.Errorf("failed to insert transaction %d: %w", i+1, err)
		}
	}
	return nil
}
