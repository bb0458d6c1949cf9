package search

import (
	"time"

	"github.com/momotrack/backend/internal/models"
)

// LinearScan walks the collection in order until the id matches.
// O(n) time per query, no extra space beyond the snapshot.
type LinearScan struct {
	records []models.TransactionRecord
}

func NewLinearScan(records []models.TransactionRecord) *LinearScan {
	return &LinearScan{records: snapshot(records)}
}

func (s *LinearScan) Name() string { return "linear" }

func (s *LinearScan) Lookup(id int) (*models.TransactionRecord, time.Duration) {
	start := time.Now()
	for i := range s.records {
		if s.records[i].ID == id {
			return &s.records[i], time.Since(start)
		}
	}
	return nil, time.Since(start)
}
