package search

import (
	"time"

	"github.com/momotrack/backend/internal/models"
)

// HashIndex maps id to record once at build time, then answers queries in
// O(1) on average at the cost of O(n) extra space.
type HashIndex struct {
	records []models.TransactionRecord
	byID    map[int]*models.TransactionRecord
}

func NewHashIndex(records []models.TransactionRecord) *HashIndex {
	idx := &HashIndex{
		records: snapshot(records),
		byID:    make(map[int]*models.TransactionRecord, len(records)),
	}
	for i := range idx.records {
		idx.byID[idx.records[i].ID] = &idx.records[i]
	}
	return idx
}

func (s *HashIndex) Name() string { return "hash" }

func (s *HashIndex) Lookup(id int) (*models.TransactionRecord, time.Duration) {
	start := time.Now()
	rec := s.byID[id]
	return rec, time.Since(start)
}
