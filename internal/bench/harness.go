// Package bench compares the lookup strategies over one ingested collection:
// every strategy answers the same queries in the same order, per-query
// durations are recorded, and the strategies must agree on every result.
package bench

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/momotrack/backend/internal/models"
	"github.com/momotrack/backend/internal/search"
)

// AbsentProbeID is appended to the default query set to exercise the
// not-found path. It sits far above any realistic batch size.
const AbsentProbeID = 99999

var (
	ErrEmptyDataset = errors.New("bench: no records to search")
	ErrNoQueries    = errors.New("bench: no query ids")
)

// Run builds all three strategies from the collection and drives them over
// the query ids in order. It fails if the strategies ever disagree on a
// query, which would mean a lookup bug rather than a timing artifact.
func Run(records []models.TransactionRecord, queryIDs []int) (*Report, error) {
	if len(records) == 0 {
		return nil, ErrEmptyDataset
	}
	if len(queryIDs) == 0 {
		return nil, ErrNoQueries
	}

	strategies := []search.Strategy{
		search.NewLinearScan(records),
		search.NewHashIndex(records),
		search.NewSortedIndex(records),
	}

	report := &Report{
		RunID:           uuid.New().String(),
		DatasetSize:     len(records),
		Queries:         append([]int(nil), queryIDs...),
		Trace:           make([]QueryResult, 0, len(queryIDs)*len(strategies)),
		SpeedupVsLinear: make(map[string]float64),
	}

	stats := make([]StrategyStats, len(strategies))
	for i, s := range strategies {
		stats[i].Strategy = s.Name()
	}

	for _, queryID := range queryIDs {
		baselineFound := false
		baselineRecordID := 0

		for i, s := range strategies {
			rec, elapsed := s.Lookup(queryID)
			found := rec != nil

			stats[i].TotalDuration += elapsed
			if found {
				stats[i].Hits++
			}
			report.Trace = append(report.Trace, QueryResult{
				Strategy: s.Name(),
				QueryID:  queryID,
				Found:    found,
				Duration: elapsed,
			})

			if i == 0 {
				baselineFound = found
				if found {
					baselineRecordID = rec.ID
				}
				continue
			}
			if found != baselineFound || (found && rec.ID != baselineRecordID) {
				return nil, fmt.Errorf("bench: strategy %s disagrees with %s on query %d",
					s.Name(), strategies[0].Name(), queryID)
			}
		}
	}

	for i := range stats {
		stats[i].AverageDuration = stats[i].TotalDuration / time.Duration(len(queryIDs))
	}
	report.Strategies = stats

	linearAvg := stats[0].AverageDuration
	for _, s := range stats[1:] {
		if s.AverageDuration > 0 {
			report.SpeedupVsLinear[s.Strategy] = float64(linearAvg) / float64(s.AverageDuration)
		}
	}

	return report, nil
}

// DefaultQueryIDs builds a representative query set: the first 20 ids, then
// for large datasets the middle, near-end and last ids, and finally one id
// guaranteed to be absent.
func DefaultQueryIDs(datasetSize int) []int {
	ids := make([]int, 0, 24)
	for id := 1; id <= datasetSize && id <= 20; id++ {
		ids = append(ids, id)
	}
	if datasetSize > 100 {
		ids = append(ids, datasetSize/2, datasetSize-10, datasetSize)
	}
	return append(ids, AbsentProbeID)
}
