package services

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/momotrack/backend/internal/models"
	"github.com/momotrack/backend/internal/store"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newTransactionRouter(t *testing.T) (*chi.Mux, *store.MemoryStore) {
	t.Helper()

	st := store.NewMemoryStore()
	st.Seed([]models.TransactionRecord{
		{ID: 1, Type: models.TypeReceived, RawMessage: "You have received 2,000 RWF from Jane Doe (*********013)."},
		{ID: 2, Type: models.TypePayment, RawMessage: "Your payment of 600 RWF to Grocer 12845 completed."},
	})

	service := NewTransactionService(st, zerolog.Nop())

	r := chi.NewRouter()
	r.Get("/transactions", service.ListTransactions)
	r.Get("/transactions/stats", service.GetStats)
	r.Get("/transactions/{id}", service.GetTransaction)
	r.Post("/transactions", service.CreateTransaction)
	r.Put("/transactions/{id}", service.UpdateTransaction)
	r.Delete("/transactions/{id}", service.DeleteTransaction)
	return r, st
}

func TestTransactionService_ListTransactions(t *testing.T) {
	r, _ := newTransactionRouter(t)

	t.Run("lists all records", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/transactions", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var records []models.TransactionRecord
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
		assert.Len(t, records, 2)
	})

	t.Run("type filter", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/transactions?type=payment", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var records []models.TransactionRecord
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &records))
		assert.Len(t, records, 1)
		assert.Equal(t, models.TypePayment, records[0].Type)
	})

	t.Run("unknown type filter rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/transactions?type=bogus", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTransactionService_GetTransaction(t *testing.T) {
	r, _ := newTransactionRouter(t)

	t.Run("found", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/transactions/1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var rec models.TransactionRecord
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
		assert.Equal(t, 1, rec.ID)
		assert.Equal(t, models.TypeReceived, rec.Type)
	})

	t.Run("not found", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/transactions/99", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/transactions/abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTransactionService_CreateTransaction(t *testing.T) {
	r, st := newTransactionRouter(t)

	t.Run("assigns the next id", func(t *testing.T) {
		body := `{"type":"deposit","amount":40000,"recipient":"Bank Account","raw_message":"A bank deposit of 40,000 RWF"}`
		req := httptest.NewRequest("POST", "/transactions", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		var rec models.TransactionRecord
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &rec))
		assert.Equal(t, 3, rec.ID)
		assert.Equal(t, 3, st.Len())
	})

	t.Run("invalid body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/transactions", bytes.NewBufferString("not json"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("validation failure", func(t *testing.T) {
		body := `{"type":"withdrawal","raw_message":"x"}`
		req := httptest.NewRequest("POST", "/transactions", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp ErrorResponse
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Contains(t, resp.Details, "Type")
	})

	t.Run("negative amount rejected", func(t *testing.T) {
		body := `{"type":"payment","amount":-5,"raw_message":"x"}`
		req := httptest.NewRequest("POST", "/transactions", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown fields rejected", func(t *testing.T) {
		body := `{"type":"payment","raw_message":"x","surprise":true}`
		req := httptest.NewRequest("POST", "/transactions", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTransactionService_UpdateTransaction(t *testing.T) {
	r, st := newTransactionRouter(t)

	t.Run("replaces fields, keeps id", func(t *testing.T) {
		body := `{"type":"transfer","recipient":"Samuel Carter","raw_message":"10,000 RWF transferred"}`
		req := httptest.NewRequest("PUT", "/transactions/2", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		rec, ok := st.Get(2)
		assert.True(t, ok)
		assert.Equal(t, models.TypeTransfer, rec.Type)
	})

	t.Run("not found", func(t *testing.T) {
		body := `{"type":"transfer","raw_message":"x"}`
		req := httptest.NewRequest("PUT", "/transactions/99", bytes.NewBufferString(body))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTransactionService_DeleteTransaction(t *testing.T) {
	r, st := newTransactionRouter(t)

	t.Run("deletes", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/transactions/1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, st.Len())
	})

	t.Run("already gone", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/transactions/1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTransactionService_GetStats(t *testing.T) {
	r, _ := newTransactionRouter(t)

	req := httptest.NewRequest("GET", "/transactions/stats", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var stats map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, float64(2), stats["total_records"])
}
