// Package store holds the in-memory record collection served by the HTTP
// API. It owns all mutation; the parser, search and bench packages only ever
// see snapshots.
package store

import (
	"sync"

	"github.com/momotrack/backend/internal/models"
)

// MemoryStore keeps records in insertion order and continues the ingestion
// id sequence for records created through the API. Deleted ids are not
// reused. Safe for concurrent use.
type MemoryStore struct {
	mu      sync.RWMutex
	records []models.TransactionRecord
	nextID  int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

// Seed replaces the store contents with an ingested batch and picks up the
// id sequence after the highest ingested id.
func (s *MemoryStore) Seed(records []models.TransactionRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = make([]models.TransactionRecord, len(records))
	copy(s.records, records)

	s.nextID = 1
	for _, rec := range records {
		if rec.ID >= s.nextID {
			s.nextID = rec.ID + 1
		}
	}
}

// List returns records in order, optionally filtered by transaction type.
func (s *MemoryStore) List(typeFilter models.TransactionType) []models.TransactionRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.TransactionRecord, 0, len(s.records))
	for _, rec := range s.records {
		if typeFilter != "" && rec.Type != typeFilter {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func (s *MemoryStore) Get(id int) (models.TransactionRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, rec := range s.records {
		if rec.ID == id {
			return rec, true
		}
	}
	return models.TransactionRecord{}, false
}

// Create assigns the next sequential id and appends the record.
func (s *MemoryStore) Create(rec models.TransactionRecord) models.TransactionRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec.ID = s.nextID
	s.nextID++
	s.records = append(s.records, rec)
	return rec
}

// Update replaces every field of an existing record except its id.
func (s *MemoryStore) Update(id int, rec models.TransactionRecord) (models.TransactionRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID == id {
			rec.ID = id
			s.records[i] = rec
			return rec, true
		}
	}
	return models.TransactionRecord{}, false
}

func (s *MemoryStore) Delete(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return true
		}
	}
	return false
}

// Snapshot copies the current collection for read-only consumers such as the
// benchmark harness.
func (s *MemoryStore) Snapshot() []models.TransactionRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.TransactionRecord, len(s.records))
	copy(out, s.records)
	return out
}

func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
