package store

import (
	"context"
	"sort"
	"sync"
	"time"
)

type memoryStore struct {
	mu        sync.RWMutex
	summaries map[int64]SummaryRecord
	entries   map[int64][]TransactionRecord
}

// NewMemory creates a concurrency-safe in-memory store useful for unit tests
// and for running without a database in development.
func NewMemory() Store {
	return &memoryStore{
		summaries: make(map[int64]SummaryRecord),
		entries:   make(map[int64][]TransactionRecord),
	}
}

func (s *memoryStore) Read(_ context.Context, accountNumber int64) (*SummaryRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.summaries[accountNumber]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (s *memoryStore) Create(_ context.Context, entry TransactionRecord, summary SummaryRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[entry.AccountNumber] = append(s.entries[entry.AccountNumber], entry)
	s.summaries[summary.AccountNumber] = summary
	return nil
}

func (s *memoryStore) Get(_ context.Context, accountNumber int64, start, end time.Time) ([]TransactionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var records []TransactionRecord
	for _, rec := range s.entries[accountNumber] {
		if rec.Date.Before(start) || rec.Date.After(end) {
			continue
		}
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})
	return records, nil
}
