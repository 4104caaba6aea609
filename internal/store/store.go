package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SummaryRecord is the raw storage shape of an account summary.
type SummaryRecord struct {
	AccountNumber int64
	Balance       decimal.Decimal
	Currency      string
}

// TransactionRecord is the raw storage shape of one ledger entry. It carries
// no currency; statement assembly reattaches the account's currency.
type TransactionRecord struct {
	ID            uuid.UUID
	AccountNumber int64
	Amount        decimal.Decimal
	Type          string
	Balance       decimal.Decimal
	Date          time.Time
	Description   string
}

// SummaryStore reads account summaries. Read returns nil with no error when
// the account has no summary.
type SummaryStore interface {
	Read(ctx context.Context, accountNumber int64) (*SummaryRecord, error)
}

// TransactionStore persists and queries ledger entries. Create appends a new
// entry and writes the updated summary atomically: both succeed or neither
// does. Get returns the account's entries inside the inclusive date range,
// ascending by date.
type TransactionStore interface {
	Create(ctx context.Context, entry TransactionRecord, summary SummaryRecord) error
	Get(ctx context.Context, accountNumber int64, start, end time.Time) ([]TransactionRecord, error)
}

// Store combines both contracts; every backend implements it whole so the
// paired write and the summary read see the same data.
type Store interface {
	SummaryStore
	TransactionStore
}
