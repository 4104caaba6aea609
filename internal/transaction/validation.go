package transaction

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/bankcore/bankcore/internal/account"
)

// validateAccount checks that a summary was loaded for the requested account
// and that it actually belongs to it.
func validateAccount(accountNumber int64, summary *account.Summary) error {
	if summary == nil {
		return fmt.Errorf("account %d: %w", accountNumber, account.ErrAccountNotFound)
	}
	if summary.AccountNumber != accountNumber {
		return fmt.Errorf("requested %d, loaded %d: %w",
			accountNumber, summary.AccountNumber, account.ErrAccountMismatch)
	}
	return nil
}

// validateTransaction gates a proposed ledger entry against the account's
// current summary. The funds check applies to withdrawals only.
func validateTransaction(tx *account.Transaction, summary *account.Summary) error {
	if tx == nil {
		return account.ErrNilTransaction
	}
	if tx.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("amount %s: %w", tx.Amount, account.ErrInvalidAmount)
	}
	if tx.Type == account.Withdrawal && summary.Balance.LessThan(tx.Amount) {
		return fmt.Errorf("balance %s, requested %s: %w",
			summary.Balance, tx.Amount, account.ErrInsufficientFunds)
	}
	return nil
}
