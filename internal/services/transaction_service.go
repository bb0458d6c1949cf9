package services

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/momotrack/backend/internal/models"
	"github.com/momotrack/backend/internal/parser"
	"github.com/momotrack/backend/internal/store"
	"github.com/rs/zerolog"
)

// TransactionService serves the parsed record collection over HTTP. All
// mutation happens in the store; parsing and search never see these changes
// except through explicit snapshots.
type TransactionService struct {
	store     *store.MemoryStore
	validator *ValidationHelper
	log       zerolog.Logger
}

// TransactionRequest is the payload for creating or replacing a record.
// The id is never client-supplied; it comes from the store's sequence.
type TransactionRequest struct {
	TransactionID *string `json:"transaction_id" validate:"omitempty,numeric"`
	Type          string  `json:"type" validate:"required,oneof=received payment airtime transfer deposit unknown"`
	Amount        *int64  `json:"amount" validate:"omitempty,gte=0"`
	Sender        *string `json:"sender"`
	Recipient     *string `json:"recipient"`
	PhoneNumber   *string `json:"phone_number"`
	Fee           *int64  `json:"fee" validate:"omitempty,gte=0"`
	NewBalance    *int64  `json:"new_balance" validate:"omitempty,gte=0"`
	Timestamp     string  `json:"timestamp"`
	ReadableDate  string  `json:"readable_date"`
	RawMessage    string  `json:"raw_message" validate:"required"`
}

func NewTransactionService(st *store.MemoryStore, log zerolog.Logger) *TransactionService {
	return &TransactionService{
		store:     st,
		validator: NewValidationHelper(),
		log:       log,
	}
}

func (ts *TransactionService) record(req TransactionRequest) models.TransactionRecord {
	return models.TransactionRecord{
		TransactionID: req.TransactionID,
		Type:          models.TransactionType(req.Type),
		Amount:        req.Amount,
		Sender:        req.Sender,
		Recipient:     req.Recipient,
		PhoneNumber:   req.PhoneNumber,
		Fee:           req.Fee,
		NewBalance:    req.NewBalance,
		Timestamp:     req.Timestamp,
		ReadableDate:  req.ReadableDate,
		RawMessage:    req.RawMessage,
	}
}

func (ts *TransactionService) decodeRequest(w http.ResponseWriter, r *http.Request) (TransactionRequest, bool) {
	var req TransactionRequest

	maxBytes := 1_048_576 // 1 MB
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return req, false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		SendErrorResponse(w, "Request body must only contain a single JSON object", http.StatusBadRequest, nil)
		return req, false
	}
	if err := ts.validator.ValidateStruct(&req); err != nil {
		SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return req, false
	}
	return req, true
}

func recordID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id < 1 {
		SendErrorResponse(w, "Invalid transaction id", http.StatusBadRequest, nil)
		return 0, false
	}
	return id, true
}

// ListTransactions returns the collection in ingestion order
// @Summary List transactions
// @Description List all parsed transactions, optionally filtered by type
// @Tags transactions
// @Produce json
// @Param type query string false "Transaction type filter" Enums(received, payment, airtime, transfer, deposit, unknown)
// @Success 200 {array} models.TransactionRecord
// @Failure 400 {object} ErrorResponse
// @Router /transactions [get]
func (ts *TransactionService) ListTransactions(w http.ResponseWriter, r *http.Request) {
	typeFilter := models.TransactionType(r.URL.Query().Get("type"))
	if typeFilter != "" && !typeFilter.Valid() {
		SendErrorResponse(w, "Unknown transaction type", http.StatusBadRequest, nil)
		return
	}

	records := ts.store.List(typeFilter)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(records)
}

// GetTransaction returns a single record by id
// @Summary Get one transaction
// @Tags transactions
// @Produce json
// @Param id path int true "Record id"
// @Success 200 {object} models.TransactionRecord
// @Failure 404 {object} ErrorResponse
// @Router /transactions/{id} [get]
func (ts *TransactionService) GetTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := recordID(w, r)
	if !ok {
		return
	}

	rec, found := ts.store.Get(id)
	if !found {
		SendErrorResponse(w, "Transaction not found", http.StatusNotFound, nil)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rec)
}

// CreateTransaction appends a record with the next sequential id
// @Summary Create a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body TransactionRequest true "Transaction data"
// @Success 201 {object} models.TransactionRecord
// @Failure 400 {object} ErrorResponse
// @Router /transactions [post]
func (ts *TransactionService) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	req, ok := ts.decodeRequest(w, r)
	if !ok {
		return
	}

	rec := ts.store.Create(ts.record(req))
	ts.log.Info().Int("id", rec.ID).Str("type", string(rec.Type)).Msg("transaction created")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(rec)
}

// UpdateTransaction replaces an existing record
// @Summary Update a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path int true "Record id"
// @Param transaction body TransactionRequest true "Transaction data"
// @Success 200 {object} models.TransactionRecord
// @Failure 404 {object} ErrorResponse
// @Router /transactions/{id} [put]
func (ts *TransactionService) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := recordID(w, r)
	if !ok {
		return
	}
	req, ok := ts.decodeRequest(w, r)
	if !ok {
		return
	}

	rec, found := ts.store.Update(id, ts.record(req))
	if !found {
		SendErrorResponse(w, "Transaction not found", http.StatusNotFound, nil)
		return
	}
	ts.log.Info().Int("id", id).Msg("transaction updated")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rec)
}

// DeleteTransaction removes a record
// @Summary Delete a transaction
// @Tags transactions
// @Produce json
// @Param id path int true "Record id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} ErrorResponse
// @Router /transactions/{id} [delete]
func (ts *TransactionService) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, ok := recordID(w, r)
	if !ok {
		return
	}

	if !ts.store.Delete(id) {
		SendErrorResponse(w, "Transaction not found", http.StatusNotFound, nil)
		return
	}
	ts.log.Info().Int("id", id).Msg("transaction deleted")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Transaction deleted"})
}

// GetStats returns batch summary statistics
// @Summary Transaction statistics
// @Tags transactions
// @Produce json
// @Success 200 {object} parser.Summary
// @Router /transactions/stats [get]
func (ts *TransactionService) GetStats(w http.ResponseWriter, r *http.Request) {
	summary := parser.Summarize(ts.store.Snapshot())
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}
