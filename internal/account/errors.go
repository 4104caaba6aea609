package account

import "errors"

var (
	// ErrNilTransaction indicates a required transaction argument was absent.
	ErrNilTransaction = errors.New("transaction is required")

	// ErrAccountNotFound indicates no summary exists for the requested account number.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountMismatch indicates the loaded summary belongs to a different account
	// than the one requested.
	ErrAccountMismatch = errors.New("account number mismatch")

	// ErrInvalidAmount indicates a transaction amount that is zero or negative.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInsufficientFunds occurs when a withdrawal exceeds the account's balance.
	ErrInsufficientFunds = errors.New("insufficient funds")
)
