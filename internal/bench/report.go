package bench

import "time"

// StrategyStats aggregates one strategy over a full benchmark run.
type StrategyStats struct {
	Strategy        string        `json:"strategy"`
	TotalDuration   time.Duration `json:"total_duration_ns"`
	AverageDuration time.Duration `json:"average_duration_ns"`
	Hits            int           `json:"hits"`
}

// QueryResult is one strategy's answer to one query.
type QueryResult struct {
	Strategy string        `json:"strategy"`
	QueryID  int           `json:"query_id"`
	Found    bool          `json:"found"`
	Duration time.Duration `json:"duration_ns"`
}

// Report is the full outcome of a benchmark run. SpeedupVsLinear maps each
// non-linear strategy to linear-average ÷ its-average; entries are omitted
// when a strategy's average rounds to zero.
type Report struct {
	RunID           string             `json:"run_id"`
	DatasetSize     int                `json:"dataset_size"`
	Queries         []int              `json:"queries"`
	Strategies      []StrategyStats    `json:"strategies"`
	Trace           []QueryResult      `json:"trace"`
	SpeedupVsLinear map[string]float64 `json:"speedup_vs_linear"`
}

// Stats returns the aggregate for a named strategy, or false if the run did
// not include it.
func (r *Report) Stats(strategy string) (StrategyStats, bool) {
	for _, s := range r.Strategies {
		if s.Strategy == strategy {
			return s, true
		}
	}
	return StrategyStats{}, false
}
