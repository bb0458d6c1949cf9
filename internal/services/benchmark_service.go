package services

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/momotrack/backend/internal/bench"
	"github.com/momotrack/backend/internal/config"
	"github.com/momotrack/backend/internal/store"
	"github.com/rs/zerolog"
)

// BenchmarkService runs the search-strategy comparison over a snapshot of
// the current store contents.
type BenchmarkService struct {
	store     *store.MemoryStore
	cfg       *config.BenchConfig
	validator *ValidationHelper
	log       zerolog.Logger
}

// BenchmarkRequest optionally names the query ids to run. When empty, the
// default query set for the current collection size is used.
type BenchmarkRequest struct {
	QueryIDs []int `json:"query_ids" validate:"omitempty,dive,gte=1"`
}

func NewBenchmarkService(st *store.MemoryStore, cfg *config.BenchConfig, log zerolog.Logger) *BenchmarkService {
	return &BenchmarkService{
		store:     st,
		cfg:       cfg,
		validator: NewValidationHelper(),
		log:       log,
	}
}

// RunBenchmark compares the lookup strategies
// @Summary Run the search benchmark
// @Description Runs linear scan, hash index and binary search over the current collection and reports per-strategy timings
// @Tags benchmarks
// @Accept json
// @Produce json
// @Param request body BenchmarkRequest false "Query ids (defaults derived from collection size)"
// @Success 200 {object} bench.Report
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /benchmarks/run [post]
func (bs *BenchmarkService) RunBenchmark(w http.ResponseWriter, r *http.Request) {
	var req BenchmarkRequest

	maxBytes := 1_048_576 // 1 MB
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil && err != io.EOF {
		SendErrorResponse(w, "Invalid request body", http.StatusBadRequest, nil)
		return
	}
	if err := bs.validator.ValidateStruct(&req); err != nil {
		SendErrorResponse(w, "Validation failed", http.StatusBadRequest, err)
		return
	}
	if len(req.QueryIDs) > bs.cfg.MaxQueryIDs {
		SendErrorResponse(w, "Too many query ids", http.StatusBadRequest, nil)
		return
	}

	records := bs.store.Snapshot()
	queryIDs := req.QueryIDs
	if len(queryIDs) == 0 {
		queryIDs = bench.DefaultQueryIDs(len(records))
	}

	report, err := bench.Run(records, queryIDs)
	if err != nil {
		if errors.Is(err, bench.ErrEmptyDataset) {
			SendErrorResponse(w, "No transactions loaded", http.StatusConflict, nil)
			return
		}
		bs.log.Error().Err(err).Msg("benchmark run failed")
		SendErrorResponse(w, "Benchmark failed", http.StatusInternalServerError, nil)
		return
	}

	bs.log.Info().
		Str("run_id", report.RunID).
		Int("dataset", report.DatasetSize).
		Int("queries", len(report.Queries)).
		Msg("benchmark completed")

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}
