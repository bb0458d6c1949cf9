package parser

import (
	"encoding/xml"
	"errors"
	"fmt"
	"os"

	"github.com/momotrack/backend/internal/models"
)

// ErrSourceUnreadable marks the one fatal ingestion failure: the backup file
// could not be read or is not valid XML. Per-message problems never produce it.
var ErrSourceUnreadable = errors.New("sms backup unreadable")

// smsBackup mirrors the <smses> root of an Android SMS backup export.
type smsBackup struct {
	XMLName  xml.Name     `xml:"smses"`
	Count    string       `xml:"count,attr"`
	Messages []smsMessage `xml:"sms"`
}

type smsMessage struct {
	Body         string `xml:"body,attr"`
	Date         string `xml:"date,attr"`
	ReadableDate string `xml:"readable_date,attr"`
}

// LoadBackup reads an SMS backup XML file and returns its messages as source
// entries in document order. Errors wrap ErrSourceUnreadable.
func LoadBackup(path string) ([]models.SourceEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnreadable, err)
	}

	var backup smsBackup
	if err := xml.Unmarshal(data, &backup); err != nil {
		return nil, fmt.Errorf("%w: invalid xml: %v", ErrSourceUnreadable, err)
	}

	entries := make([]models.SourceEntry, 0, len(backup.Messages))
	for _, msg := range backup.Messages {
		entries = append(entries, models.SourceEntry{
			Body:         msg.Body,
			Date:         msg.Date,
			ReadableDate: msg.ReadableDate,
		})
	}
	return entries, nil
}
