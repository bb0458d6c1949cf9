package models

// TransactionType classifies a mobile-money SMS notification.
type TransactionType string

const (
	TypeReceived TransactionType = "received"
	TypePayment  TransactionType = "payment"
	TypeAirtime  TransactionType = "airtime"
	TypeTransfer TransactionType = "transfer"
	TypeDeposit  TransactionType = "deposit"
	TypeUnknown  TransactionType = "unknown"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	switch t {
	case TypeReceived, TypePayment, TypeAirtime, TypeTransfer, TypeDeposit, TypeUnknown:
		return true
	}
	return false
}

// TransactionRecord is one parsed mobile-money notification. ID is assigned
// sequentially during ingestion and is unique within a batch. Optional fields
// are nil when the matching pattern was absent from the message body.
// RawMessage keeps the untouched source text and is never rewritten.
type TransactionRecord struct {
	ID            int             `json:"id"`
	TransactionID *string         `json:"transaction_id"` // provider-side id, digits only
	Type          TransactionType `json:"type"`
	Amount        *int64          `json:"amount"` // RWF, thousands separators stripped
	Sender        *string         `json:"sender"`
	Recipient     *string         `json:"recipient"`
	PhoneNumber   *string         `json:"phone_number"` // partially masked, e.g. *********013
	Fee           *int64          `json:"fee"`
	NewBalance    *int64          `json:"new_balance"`
	Timestamp     string          `json:"timestamp"` // opaque source timestamp
	ReadableDate  string          `json:"readable_date"`
	RawMessage    string          `json:"raw_message"`
}
