package store

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/bankcore/bankcore/internal/account"
	"github.com/bankcore/bankcore/internal/money"
)

// SummaryFromRecord converts a raw summary row into the domain shape.
func SummaryFromRecord(rec SummaryRecord) account.Summary {
	return account.Summary{
		AccountNumber: rec.AccountNumber,
		Balance:       money.New(rec.Balance, rec.Currency),
	}
}

// SummaryToRecord converts a domain summary into its storage shape.
func SummaryToRecord(s account.Summary) SummaryRecord {
	return SummaryRecord{
		AccountNumber: s.AccountNumber,
		Balance:       s.Balance.Amount,
		Currency:      s.Balance.Currency,
	}
}

// TransactionToRecord converts a ledger entry into its storage shape,
// assigning a fresh row identifier. The entry's currency is deliberately not
// stored; only the account summary carries it.
func TransactionToRecord(tx account.Transaction) TransactionRecord {
	return TransactionRecord{
		ID:            uuid.New(),
		AccountNumber: tx.AccountNumber,
		Amount:        tx.Amount,
		Type:          string(tx.Type),
		Balance:       tx.CurrentBalance.Amount,
		Date:          tx.Date,
		Description:   tx.Description,
	}
}

// StatementLineFromRecord projects a raw entry into a statement line,
// reattaching the given currency to the stored amount and balance.
func StatementLineFromRecord(rec TransactionRecord, currency string) (account.StatementTransaction, error) {
	kind, err := account.ParseTransactionType(rec.Type)
	if err != nil {
		return account.StatementTransaction{}, fmt.Errorf("entry %s: %w", rec.ID, err)
	}
	return account.StatementTransaction{
		Type:        kind,
		Date:        rec.Date,
		Description: rec.Description,
		Amount:      money.New(rec.Amount, currency),
		Balance:     money.New(rec.Balance, currency),
	}, nil
}
