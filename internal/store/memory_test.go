package store

import (
	"testing"

	"github.com/momotrack/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func seeded(t *testing.T) *MemoryStore {
	t.Helper()
	s := NewMemoryStore()
	s.Seed([]models.TransactionRecord{
		{ID: 1, Type: models.TypeReceived, RawMessage: "a"},
		{ID: 2, Type: models.TypePayment, RawMessage: "b"},
		{ID: 3, Type: models.TypeReceived, RawMessage: "c"},
	})
	return s
}

func TestMemoryStore_SeedAndList(t *testing.T) {
	s := seeded(t)

	t.Run("list keeps order", func(t *testing.T) {
		records := s.List("")
		assert.Len(t, records, 3)
		assert.Equal(t, []int{records[0].ID, records[1].ID, records[2].ID}, []int{1, 2, 3})
	})

	t.Run("type filter", func(t *testing.T) {
		received := s.List(models.TypeReceived)
		assert.Len(t, received, 2)
		for _, rec := range received {
			assert.Equal(t, models.TypeReceived, rec.Type)
		}
	})

	t.Run("reseeding replaces everything", func(t *testing.T) {
		s := seeded(t)
		s.Seed([]models.TransactionRecord{{ID: 10, Type: models.TypeDeposit}})
		assert.Equal(t, 1, s.Len())

		created := s.Create(models.TransactionRecord{Type: models.TypeUnknown, RawMessage: "x"})
		assert.Equal(t, 11, created.ID)
	})
}

func TestMemoryStore_CRUD(t *testing.T) {
	t.Run("get", func(t *testing.T) {
		s := seeded(t)
		rec, ok := s.Get(2)
		assert.True(t, ok)
		assert.Equal(t, "b", rec.RawMessage)

		_, ok = s.Get(99)
		assert.False(t, ok)
	})

	t.Run("create continues the sequence", func(t *testing.T) {
		s := seeded(t)
		created := s.Create(models.TransactionRecord{Type: models.TypeAirtime, RawMessage: "d"})
		assert.Equal(t, 4, created.ID)
		assert.Equal(t, 4, s.Len())
	})

	t.Run("update preserves the id", func(t *testing.T) {
		s := seeded(t)
		updated, ok := s.Update(2, models.TransactionRecord{ID: 999, Type: models.TypeTransfer, RawMessage: "b2"})
		assert.True(t, ok)
		assert.Equal(t, 2, updated.ID)

		rec, _ := s.Get(2)
		assert.Equal(t, models.TypeTransfer, rec.Type)
		assert.Equal(t, "b2", rec.RawMessage)

		_, ok = s.Update(99, models.TransactionRecord{})
		assert.False(t, ok)
	})

	t.Run("deleted ids are not reused", func(t *testing.T) {
		s := seeded(t)
		assert.True(t, s.Delete(3))
		assert.False(t, s.Delete(3))
		assert.Equal(t, 2, s.Len())

		created := s.Create(models.TransactionRecord{Type: models.TypeUnknown})
		assert.Equal(t, 4, created.ID)
	})
}

func TestMemoryStore_Snapshot(t *testing.T) {
	s := seeded(t)
	snap := s.Snapshot()
	assert.Len(t, snap, 3)

	// The snapshot is detached from the live collection.
	snap[0].RawMessage = "mutated"
	rec, _ := s.Get(1)
	assert.Equal(t, "a", rec.RawMessage)

	s.Delete(1)
	assert.Len(t, snap, 3)
}
