package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money pairs a decimal amount with the currency it is denominated in.
// Values are immutable; every operation returns a new Money and leaves the
// receiver untouched.
//
// Arithmetic and comparisons between two Money values look only at the
// amounts. Callers must ensure both operands share a currency; no conversion
// or mismatch check is performed here.
type Money struct {
	Amount   decimal.Decimal
	Currency string
}

// New builds a Money from an amount and currency code.
func New(amount decimal.Decimal, currency string) Money {
	return Money{Amount: amount, Currency: currency}
}

// FromString parses an amount string into a Money with the given currency.
func FromString(amount, currency string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("parse amount %q: %w", amount, err)
	}
	return Money{Amount: d, Currency: currency}, nil
}

// ToAmount rebinds the value to a new amount, keeping the currency.
func (m Money) ToAmount(amount decimal.Decimal) Money {
	return Money{Amount: amount, Currency: m.Currency}
}

// Add returns a new Money increased by the given amount.
func (m Money) Add(amount decimal.Decimal) Money {
	return m.ToAmount(m.Amount.Add(amount))
}

// Sub returns a new Money decreased by the given amount.
func (m Money) Sub(amount decimal.Decimal) Money {
	return m.ToAmount(m.Amount.Sub(amount))
}

// AddMoney adds the other value's amount.
func (m Money) AddMoney(other Money) Money {
	return m.Add(other.Amount)
}

// SubMoney subtracts the other value's amount.
func (m Money) SubMoney(other Money) Money {
	return m.Sub(other.Amount)
}

// LessThan reports whether the amount is strictly below the given amount.
func (m Money) LessThan(amount decimal.Decimal) bool {
	return m.Amount.LessThan(amount)
}

// LessThanOrEqual reports whether the amount is at most the given amount.
func (m Money) LessThanOrEqual(amount decimal.Decimal) bool {
	return m.Amount.LessThanOrEqual(amount)
}

// GreaterThan reports whether the amount is strictly above the given amount.
func (m Money) GreaterThan(amount decimal.Decimal) bool {
	return m.Amount.GreaterThan(amount)
}

// GreaterThanOrEqual reports whether the amount is at least the given amount.
func (m Money) GreaterThanOrEqual(amount decimal.Decimal) bool {
	return m.Amount.GreaterThanOrEqual(amount)
}

// LessThanMoney compares against another Money by amount only.
func (m Money) LessThanMoney(other Money) bool {
	return m.LessThan(other.Amount)
}

// LessThanOrEqualMoney compares against another Money by amount only.
func (m Money) LessThanOrEqualMoney(other Money) bool {
	return m.LessThanOrEqual(other.Amount)
}

// GreaterThanMoney compares against another Money by amount only.
func (m Money) GreaterThanMoney(other Money) bool {
	return m.GreaterThan(other.Amount)
}

// GreaterThanOrEqualMoney compares against another Money by amount only.
func (m Money) GreaterThanOrEqualMoney(other Money) bool {
	return m.GreaterThanOrEqual(other.Amount)
}

// Equal reports whether both amount and currency match.
func (m Money) Equal(other Money) bool {
	return m.Currency == other.Currency && m.Amount.Equal(other.Amount)
}

// String renders the value as "<amount> <currency>".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Amount.String(), m.Currency)
}
