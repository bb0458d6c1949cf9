// Package search implements the three record-lookup strategies compared by
// the benchmark harness: linear scan, hash index and sorted-array binary
// search. Every strategy snapshots the collection at construction time and
// treats it as read-only afterwards, so concurrent lookups need no locking.
package search

import (
	"time"

	"github.com/momotrack/backend/internal/models"
)

// Strategy answers "does a record with this id exist, and what is it".
// Lookup reports the wall-clock duration of that single query alongside the
// result; a nil record means not found. All strategies built from the same
// collection must agree on every query.
type Strategy interface {
	Name() string
	Lookup(id int) (*models.TransactionRecord, time.Duration)
}

func snapshot(records []models.TransactionRecord) []models.TransactionRecord {
	out := make([]models.TransactionRecord, len(records))
	copy(out, records)
	return out
}
