package parser

import "github.com/momotrack/backend/internal/models"

// Summary aggregates a batch for reporting: per-type counts plus amount and
// fee totals over the records that carried those fields.
type Summary struct {
	TotalRecords int                            `json:"total_records"`
	TypeCounts   map[models.TransactionType]int `json:"type_counts"`
	TotalAmount  int64                          `json:"total_amount"`
	TotalFees    int64                          `json:"total_fees"`
}

// Summarize computes batch statistics. Records without an amount or fee
// contribute to counts only.
func Summarize(records []models.TransactionRecord) Summary {
	s := Summary{
		TotalRecords: len(records),
		TypeCounts:   make(map[models.TransactionType]int),
	}
	for _, rec := range records {
		s.TypeCounts[rec.Type]++
		if rec.Amount != nil {
			s.TotalAmount += *rec.Amount
		}
		if rec.Fee != nil {
			s.TotalFees += *rec.Fee
		}
	}
	return s
}
