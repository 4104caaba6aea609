package store

// SeedSummary is a test helper that plants a summary row when using the
// in-memory store.
func SeedSummary(s Store, rec SummaryRecord) {
	if mem, ok := s.(*memoryStore); ok {
		mem.mu.Lock()
		defer mem.mu.Unlock()
		mem.summaries[rec.AccountNumber] = rec
	}
}
