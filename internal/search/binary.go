package search

import (
	"sort"
	"time"

	"github.com/momotrack/backend/internal/models"
)

// SortedIndex keeps its own copy of the collection sorted ascending by id
// (O(n log n) once) and answers queries by binary search in O(log n).
type SortedIndex struct {
	records []models.TransactionRecord
}

func NewSortedIndex(records []models.TransactionRecord) *SortedIndex {
	sorted := snapshot(records)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	return &SortedIndex{records: sorted}
}

func (s *SortedIndex) Name() string { return "binary" }

func (s *SortedIndex) Lookup(id int) (*models.TransactionRecord, time.Duration) {
	start := time.Now()

	left, right := 0, len(s.records)-1
	for left <= right {
		mid := (left + right) / 2
		switch {
		case s.records[mid].ID == id:
			return &s.records[mid], time.Since(start)
		case s.records[mid].ID < id:
			left = mid + 1
		default:
			right = mid - 1
		}
	}
	return nil, time.Since(start)
}
