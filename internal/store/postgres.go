package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore persists summaries and ledger entries in PostgreSQL. Create
// runs the paired write inside one database transaction, locking the summary
// row so concurrent writers to the same account serialize.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore constructs a Postgres-backed store.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// Read fetches the summary row for an account. A missing row is reported as
// nil without an error.
func (s *PostgresStore) Read(ctx context.Context, accountNumber int64) (*SummaryRecord, error) {
	const query = `SELECT account_number, balance, currency
        FROM account_summaries WHERE account_number = $1`
	var rec SummaryRecord
	if err := s.db.QueryRow(ctx, query, accountNumber).Scan(&rec.AccountNumber, &rec.Balance, &rec.Currency); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("read summary %d: %w", accountNumber, err)
	}
	return &rec, nil
}

// Create appends the ledger entry and upserts the account summary in a single
// transaction.
func (s *PostgresStore) Create(ctx context.Context, entry TransactionRecord, summary SummaryRecord) error {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin paired write: %w", err)
	}
	defer tx.Rollback(ctx) // nolint:errcheck

	var locked int64
	err = tx.QueryRow(ctx, `SELECT account_number FROM account_summaries
        WHERE account_number = $1 FOR UPDATE`, summary.AccountNumber).Scan(&locked)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("lock summary %d: %w", summary.AccountNumber, err)
	}

	if _, err := tx.Exec(ctx, `INSERT INTO account_transactions
        (id, account_number, amount, transaction_type, balance, date, description)
        VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		entry.ID, entry.AccountNumber, entry.Amount, entry.Type, entry.Balance,
		entry.Date.UTC(), entry.Description); err != nil {
		return fmt.Errorf("insert ledger entry: %w", err)
	}

	if _, err := tx.Exec(ctx, `INSERT INTO account_summaries (account_number, balance, currency, updated_at)
        VALUES ($1, $2, $3, now())
        ON CONFLICT (account_number)
        DO UPDATE SET balance = EXCLUDED.balance, currency = EXCLUDED.currency, updated_at = now()`,
		summary.AccountNumber, summary.Balance, summary.Currency); err != nil {
		return fmt.Errorf("update summary %d: %w", summary.AccountNumber, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit paired write: %w", err)
	}
	return nil
}

// Get returns the account's entries within the inclusive date range, oldest
// first.
func (s *PostgresStore) Get(ctx context.Context, accountNumber int64, start, end time.Time) ([]TransactionRecord, error) {
	const query = `SELECT id, account_number, amount, transaction_type, balance, date, description
        FROM account_transactions
        WHERE account_number = $1 AND date >= $2 AND date <= $3
        ORDER BY date ASC`
	rows, err := s.db.Query(ctx, query, accountNumber, start.UTC(), end.UTC())
	if err != nil {
		return nil, fmt.Errorf("query entries for %d: %w", accountNumber, err)
	}
	defer rows.Close()

	var records []TransactionRecord
	for rows.Next() {
		var rec TransactionRecord
		if err := rows.Scan(&rec.ID, &rec.AccountNumber, &rec.Amount, &rec.Type,
			&rec.Balance, &rec.Date, &rec.Description); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return records, nil
}
