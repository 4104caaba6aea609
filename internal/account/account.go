package account

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bankcore/bankcore/internal/money"
)

// TransactionType distinguishes the two ledger entry kinds.
type TransactionType string

const (
	Deposit    TransactionType = "deposit"
	Withdrawal TransactionType = "withdrawal"
)

// ParseTransactionType converts a stored type tag back into a TransactionType.
func ParseTransactionType(tag string) (TransactionType, error) {
	switch TransactionType(tag) {
	case Deposit:
		return Deposit, nil
	case Withdrawal:
		return Withdrawal, nil
	default:
		return "", fmt.Errorf("unknown transaction type %q", tag)
	}
}

// Summary is the current balance snapshot for one account. It is loaded fresh
// at the start of every operation and never held across operations.
type Summary struct {
	AccountNumber int64
	Balance       money.Money
}

// Transaction is a single ledger entry describing a requested deposit or
// withdrawal. Type and CurrentBalance are set by the orchestrator when the
// operation is applied; CurrentBalance is the balance before this entry's
// effect and never changes after creation.
type Transaction struct {
	AccountNumber  int64
	Amount         decimal.Decimal
	Type           TransactionType
	CurrentBalance money.Money
	Date           time.Time
	Description    string
}

// StatementDate is the inclusive date range of a statement query.
type StatementDate struct {
	Start time.Time
	End   time.Time
}

// StatementTransaction is one line of a statement: a stored ledger entry with
// the account's currency reattached to its raw amount and balance fields.
type StatementTransaction struct {
	Type        TransactionType
	Date        time.Time
	Description string
	Amount      money.Money
	Balance     money.Money
}

// Statement is the read-only view of an account's activity over a date range,
// ordered ascending by entry date.
type Statement struct {
	AccountNumber int64
	Currency      string
	Period        StatementDate
	Transactions  []StatementTransaction
}
