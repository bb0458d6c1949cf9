package models

// SourceEntry is one raw message from an SMS backup, before parsing.
// Date and ReadableDate are passed through exactly as the source supplied them.
type SourceEntry struct {
	Body         string `json:"body"`
	Date         string `json:"date"`
	ReadableDate string `json:"readable_date"`
}
