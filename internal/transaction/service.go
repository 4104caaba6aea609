package transaction

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bankcore/bankcore/internal/account"
	"github.com/bankcore/bankcore/internal/money"
	"github.com/bankcore/bankcore/internal/notification"
	"github.com/bankcore/bankcore/internal/store"
)

// Service orchestrates balance reads, deposits, withdrawals and statement
// assembly over the backing store. Each operation re-reads the account
// summary, validates before touching anything, and submits the ledger entry
// together with the updated summary as one atomic write.
type Service struct {
	store    store.Store
	notifier notification.Notifier
	logger   *slog.Logger
}

// NewService builds the transaction service.
func NewService(st store.Store, notifier notification.Notifier, logger *slog.Logger) *Service {
	return &Service{store: st, notifier: notifier, logger: logger}
}

// Result describes an applied ledger entry plus the balance that resulted
// from it.
type Result struct {
	AccountNumber  int64
	Type           account.TransactionType
	Amount         decimal.Decimal
	CurrentBalance money.Money
	Date           time.Time
	Description    string
	Balance        money.Money
}

// Balance returns the account's current balance.
func (s *Service) Balance(ctx context.Context, accountNumber int64) (money.Money, error) {
	summary, err := s.loadSummary(ctx, accountNumber)
	if err != nil {
		return money.Money{}, err
	}
	return summary.Balance, nil
}

// Deposit applies a deposit entry and returns the resulting balance.
func (s *Service) Deposit(ctx context.Context, tx *account.Transaction) (Result, error) {
	return s.apply(ctx, tx, account.Deposit)
}

// Withdraw applies a withdrawal entry, failing when the balance does not
// cover the requested amount.
func (s *Service) Withdraw(ctx context.Context, tx *account.Transaction) (Result, error) {
	return s.apply(ctx, tx, account.Withdrawal)
}

func (s *Service) apply(ctx context.Context, tx *account.Transaction, kind account.TransactionType) (Result, error) {
	if tx == nil {
		return Result{}, account.ErrNilTransaction
	}

	s.logger.Info("transaction started",
		"type", string(kind), "account", tx.AccountNumber, "amount", tx.Amount.String())

	summary, err := s.loadSummary(ctx, tx.AccountNumber)
	if err != nil {
		return Result{}, err
	}

	tx.Type = kind
	if err := validateTransaction(tx, summary); err != nil {
		return Result{}, err
	}

	// The entry keeps the balance as it was before this transaction.
	tx.CurrentBalance = summary.Balance
	if tx.Date.IsZero() {
		tx.Date = time.Now().UTC()
	}

	updated := *summary
	if kind == account.Withdrawal {
		updated.Balance = summary.Balance.Sub(tx.Amount)
	} else {
		updated.Balance = summary.Balance.Add(tx.Amount)
	}

	if err := s.store.Create(ctx, store.TransactionToRecord(*tx), store.SummaryToRecord(updated)); err != nil {
		return Result{}, fmt.Errorf("paired write for account %d: %w", tx.AccountNumber, err)
	}

	fresh, err := s.loadSummary(ctx, tx.AccountNumber)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		AccountNumber:  tx.AccountNumber,
		Type:           tx.Type,
		Amount:         tx.Amount,
		CurrentBalance: tx.CurrentBalance,
		Date:           tx.Date,
		Description:    tx.Description,
		Balance:        fresh.Balance,
	}

	s.logger.Info("transaction completed",
		"type", string(kind), "account", tx.AccountNumber, "balance", result.Balance.String())

	if s.notifier != nil {
		msg := notification.Message{
			Kind:          notificationKind(kind),
			AccountNumber: tx.AccountNumber,
			Body:          fmt.Sprintf("%s of %s applied", kind, money.New(tx.Amount, fresh.Balance.Currency)),
		}
		if err := s.notifier.Send(ctx, msg); err != nil {
			s.logger.Warn("notify failed", "account", tx.AccountNumber, "error", err)
		}
	}

	return result, nil
}

// Statement assembles the account's activity inside the date range, ordered
// ascending by date, with the account's current currency attached to every
// line.
func (s *Service) Statement(ctx context.Context, accountNumber int64, period account.StatementDate) (account.Statement, error) {
	summary, err := s.loadSummary(ctx, accountNumber)
	if err != nil {
		return account.Statement{}, err
	}

	records, err := s.store.Get(ctx, accountNumber, period.Start, period.End)
	if err != nil {
		return account.Statement{}, fmt.Errorf("load entries for account %d: %w", accountNumber, err)
	}

	currency := summary.Balance.Currency
	lines := make([]account.StatementTransaction, 0, len(records))
	for _, rec := range records {
		line, err := store.StatementLineFromRecord(rec, currency)
		if err != nil {
			return account.Statement{}, err
		}
		lines = append(lines, line)
	}

	return account.Statement{
		AccountNumber: accountNumber,
		Currency:      currency,
		Period:        period,
		Transactions:  lines,
	}, nil
}

// loadSummary reads and validates the account summary; absence surfaces as
// account.ErrAccountNotFound.
func (s *Service) loadSummary(ctx context.Context, accountNumber int64) (*account.Summary, error) {
	rec, err := s.store.Read(ctx, accountNumber)
	if err != nil {
		return nil, fmt.Errorf("load summary for account %d: %w", accountNumber, err)
	}

	var summary *account.Summary
	if rec != nil {
		loaded := store.SummaryFromRecord(*rec)
		summary = &loaded
	}
	if err := validateAccount(accountNumber, summary); err != nil {
		return nil, err
	}
	return summary, nil
}

func notificationKind(kind account.TransactionType) string {
	if kind == account.Withdrawal {
		return notification.KindWithdrawal
	}
	return notification.KindDeposit
}
