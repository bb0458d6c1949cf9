package parser

import (
	"github.com/momotrack/backend/internal/models"
	"github.com/rs/zerolog"
)

// BatchResult is the outcome of one ingestion run: the parsed records in
// source order plus the number of entries skipped for having no body.
type BatchResult struct {
	Records []models.TransactionRecord `json:"records"`
	Skipped int                        `json:"skipped"`
}

// Ingestor converts raw source entries into transaction records. The id
// counter lives inside a single Ingest call, so batches are independent and
// there is no process-wide state.
type Ingestor struct {
	log zerolog.Logger
}

func NewIngestor(log zerolog.Logger) *Ingestor {
	return &Ingestor{log: log}
}

// Ingest walks the entries in order, assigning 1-based sequential ids to
// every entry that has a body. Entries without a body are counted as skipped.
// Nothing is reordered or deduplicated, and a field whose pattern is absent
// is simply left unset.
func (ing *Ingestor) Ingest(entries []models.SourceEntry) BatchResult {
	records := make([]models.TransactionRecord, 0, len(entries))
	skipped := 0
	nextID := 1

	for _, entry := range entries {
		if entry.Body == "" {
			skipped++
			continue
		}

		frag := ParseBody(entry.Body)
		records = append(records, models.TransactionRecord{
			ID:            nextID,
			TransactionID: frag.TransactionID,
			Type:          frag.Type,
			Amount:        frag.Amount,
			Sender:        frag.Sender,
			Recipient:     frag.Recipient,
			PhoneNumber:   frag.PhoneNumber,
			Fee:           frag.Fee,
			NewBalance:    frag.NewBalance,
			Timestamp:     entry.Date,
			ReadableDate:  entry.ReadableDate,
			RawMessage:    entry.Body,
		})
		nextID++
	}

	ing.log.Info().
		Int("records", len(records)).
		Int("skipped", skipped).
		Msg("ingested sms batch")

	return BatchResult{Records: records, Skipped: skipped}
}

// IngestFile loads a backup file and ingests it in one step. The only error
// it can return wraps ErrSourceUnreadable.
func (ing *Ingestor) IngestFile(path string) (BatchResult, error) {
	entries, err := LoadBackup(path)
	if err != nil {
		return BatchResult{}, err
	}
	return ing.Ingest(entries), nil
}
