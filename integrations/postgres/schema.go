package postgres

import (
	"context"
	"fmt"
)

const ddl = `
-- Accounts table
CREATE TABLE IF NOT EXISTS accounts (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    account_no VARCHAR(50) NOT NULL,
    business_unit VARCHAR(255) DEFAULT '',
    product_name VARCHAR(255) DEFAULT '',
    valuta VARCHAR(10) DEFAULT '',
    unit_address TEXT DEFAULT '',
    created_at TIMESTAMPTZ DEFAULT NOW(),
    updated_at TIMESTAMPTZ DEFAULT NOW(),

    UNIQUE(account_no)
);

-- Statements table with natural key (account_id, transaction_period)
CREATE TABLE IF NOT EXISTS statements (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    account_id UUID NOT NULL REFERENCES accounts(id) ON DELETE CASCADE,
    source VARCHAR(255) NOT NULL,
    statement_date VARCHAR(100) DEFAULT '',
    transaction_period VARCHAR(100) NOT NULL,
    opening_balance NUMERIC(18,2),
    closing_balance NUMERIC(18,2),
    total_debit NUMERIC(18,2),
    total_credit NUMERIC(18,2),
    calculated_debit NUMERIC(18,2),
    calculated_credit NUMERIC(18,2),
    verification_status VARCHAR(20) DEFAULT '',
    verification_message TEXT DEFAULT '',
    created_at TIMESTAMPTZ DEFAULT NOW(),

    -- Natural key for deduplication
    UNIQUE(account_id, transaction_period)
);

-- Transactions table
CREATE TABLE IF NOT EXISTS transactions (
    id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
    statement_id UUID NOT NULL REFERENCES statements(id) ON DELETE CASCADE,
    sequence INTEGER NOT NULL,
    posted_at VARCHAR(50) NOT NULL,
    description TEXT,
    user_id VARCHAR(50) DEFAULT '',
    debit NUMERIC(18,2),
    credit NUMERIC(18,2),
    balance NUMERIC(18,2),
    created_at TIMESTAMPTZ DEFAULT NOW(),

    -- Prevent duplicate transactions within a statement
    UNIQUE(statement_id, sequence)
);

-- Indexes for common queries
CREATE INDEX IF NOT EXISTS idx_statements_account_id ON statements(account_id);
CREATE INDEX IF NOT EXISTS idx_transactions_statement_id ON transactions(statement_id);
CREATE INDEX IF NOT EXISTS idx_transactions_user_id ON transactions(user_id) WHERE user_id != '';
`

// EnsureSchema creates tables if they don't exist
func (db *DB) EnsureSchema(ctx context.Context) error {
	_, err := db.Pool.Exec(ctx, ddl)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
