package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func entryAt(account int64, date time.Time, amount string) TransactionRecord {
	return TransactionRecord{
		ID:            uuid.New(),
		AccountNumber: account,
		Amount:        decimal.RequireFromString(amount),
		Type:          "deposit",
		Balance:       decimal.Zero,
		Date:          date,
		Description:   "test entry",
	}
}

func TestMemoryCreateUpdatesBoth(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()
	now := time.Now().UTC()

	err := s.Create(ctx, entryAt(1001, now, "50"), SummaryRecord{
		AccountNumber: 1001,
		Balance:       decimal.NewFromInt(150),
		Currency:      "USD",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	summary, err := s.Read(ctx, 1001)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if summary == nil || !summary.Balance.Equal(decimal.NewFromInt(150)) {
		t.Fatalf("expected summary balance 150, got %+v", summary)
	}

	records, err := s.Get(ctx, 1001, now.Add(-time.Hour), now.Add(time.Hour))
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(records))
	}
}

func TestMemoryReadAbsent(t *testing.T) {
	s := NewMemory()
	summary, err := s.Read(context.Background(), 9999)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if summary != nil {
		t.Fatalf("expected absent summary, got %+v", summary)
	}
}

func TestMemoryGetFiltersAndSorts(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	summary := SummaryRecord{AccountNumber: 1001, Balance: decimal.Zero, Currency: "USD"}

	// Inserted newest first to exercise the sort.
	for _, offset := range []time.Duration{48 * time.Hour, 0, 24 * time.Hour, 30 * 24 * time.Hour} {
		if err := s.Create(ctx, entryAt(1001, base.Add(offset), "10"), summary); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	records, err := s.Get(ctx, 1001, base, base.Add(72*time.Hour))
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 entries in range, got %d", len(records))
	}
	for i := 1; i < len(records); i++ {
		if records[i].Date.Before(records[i-1].Date) {
			t.Fatalf("entries out of order: %s before %s", records[i].Date, records[i-1].Date)
		}
	}
}
