package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestAddSubRoundTrip(t *testing.T) {
	m := New(decimal.RequireFromString("100.10"), "USD")
	d := decimal.RequireFromString("0.33")

	got := m.Add(d).Sub(d)
	if !got.Equal(m) {
		t.Fatalf("expected %s after round trip, got %s", m, got)
	}
	if !m.Amount.Equal(decimal.RequireFromString("100.10")) {
		t.Fatalf("receiver mutated: %s", m)
	}
}

func TestToAmountKeepsCurrency(t *testing.T) {
	m := New(decimal.NewFromInt(50), "EUR")
	rebound := m.ToAmount(decimal.NewFromInt(75))
	if rebound.Currency != "EUR" {
		t.Fatalf("expected EUR, got %s", rebound.Currency)
	}
	if !rebound.Amount.Equal(decimal.NewFromInt(75)) {
		t.Fatalf("expected amount 75, got %s", rebound.Amount)
	}
}

func TestMoneyArithmeticDelegates(t *testing.T) {
	a := New(decimal.NewFromInt(100), "USD")
	b := New(decimal.NewFromInt(40), "USD")

	if got := a.AddMoney(b); !got.Amount.Equal(decimal.NewFromInt(140)) {
		t.Fatalf("add: expected 140, got %s", got.Amount)
	}
	if got := a.SubMoney(b); !got.Amount.Equal(decimal.NewFromInt(60)) {
		t.Fatalf("sub: expected 60, got %s", got.Amount)
	}
}

func TestOrderingIgnoresCurrencyTag(t *testing.T) {
	usd := New(decimal.NewFromInt(10), "USD")
	eur := New(decimal.NewFromInt(20), "EUR")

	if !usd.LessThanMoney(eur) {
		t.Fatalf("expected %s < %s", usd, eur)
	}
	if !eur.GreaterThanMoney(usd) {
		t.Fatalf("expected %s > %s", eur, usd)
	}
	if !usd.LessThanOrEqualMoney(usd) {
		t.Fatalf("expected %s <= itself", usd)
	}
	if !usd.GreaterThanOrEqual(decimal.NewFromInt(10)) {
		t.Fatalf("expected %s >= 10", usd)
	}
	if usd.LessThan(decimal.NewFromInt(10)) {
		t.Fatalf("%s is not < 10", usd)
	}
}

func TestFromString(t *testing.T) {
	m, err := FromString("42.50", "XAF")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !m.Amount.Equal(decimal.RequireFromString("42.50")) || m.Currency != "XAF" {
		t.Fatalf("unexpected value %s", m)
	}

	if _, err := FromString("not-a-number", "XAF"); err == nil {
		t.Fatal("expected parse error")
	}
}
