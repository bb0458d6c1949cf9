// Package parser turns free-text mobile-money SMS notifications into
// structured transaction records.
package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/momotrack/backend/internal/models"
)

var (
	reTxID        = regexp.MustCompile(`TxId:?\s*(\d+)`)
	reFinTxID     = regexp.MustCompile(`Financial Transaction Id:\s*(\d+)`)
	reAmount      = regexp.MustCompile(`(\d+(?:,\d+)*)\s*RWF`)
	reFee         = regexp.MustCompile(`(?i)Fee was:?\s*(\d+(?:,\d+)*)\s*RWF`)
	reNewBalance  = regexp.MustCompile(`(?i)new balance\s*:?\s*(\d+(?:,\d+)*)\s*RWF`)
	reSender      = regexp.MustCompile(`from\s+([A-Za-z\s]+)\s*\(`)
	reMaskedPhone = regexp.MustCompile(`\(\*+(\d+)\)`)
	reRecipient   = regexp.MustCompile(`to\s+([A-Za-z\s]+)\s+\d+`)
	reTransfer    = regexp.MustCompile(`transferred to\s+([A-Za-z\s]+)\s*\((\d+)\)`)
)

// phoneMask replaces the redacted leading digits of a phone number.
const phoneMask = "*********"

// Fragment holds everything ParseBody can recover from one message body:
// the transaction type plus every optional field. A nil field means the
// matching pattern was absent, which is never an error.
type Fragment struct {
	Type          models.TransactionType
	TransactionID *string
	Amount        *int64
	Sender        *string
	Recipient     *string
	PhoneNumber   *string
	Fee           *int64
	NewBalance    *int64
}

// classificationRule pairs a keyword with the extraction that branch implies.
// Rules are evaluated top to bottom against the lowercased body and the first
// hit wins, so priority stays auditable in one place. Sender/recipient/phone
// extraction depend on which branch fired, which is why classification and
// field extraction run as a single pass.
type classificationRule struct {
	keyword string
	apply   func(body string, frag *Fragment)
}

var classificationRules = []classificationRule{
	{keyword: "received", apply: applyReceived},
	{keyword: "payment", apply: applyPayment},
	{keyword: "transferred to", apply: applyTransfer},
	{keyword: "deposit", apply: applyDeposit},
}

// ParseBody classifies a message body and extracts its fields in one pass.
// It never fails: unparseable input comes back as TypeUnknown with every
// optional field unset.
func ParseBody(body string) Fragment {
	frag := Fragment{Type: models.TypeUnknown}

	// Two provider id labels exist in the wild. They are tried in this
	// order and the second overwrites the first when both are present.
	if m := reTxID.FindStringSubmatch(body); m != nil {
		frag.TransactionID = optString(m[1])
	}
	if m := reFinTxID.FindStringSubmatch(body); m != nil {
		frag.TransactionID = optString(m[1])
	}

	if m := reAmount.FindStringSubmatch(body); m != nil {
		frag.Amount = parseQuantity(m[1])
	}

	lower := strings.ToLower(body)
	for _, rule := range classificationRules {
		if strings.Contains(lower, rule.keyword) {
			rule.apply(body, &frag)
			break
		}
	}

	if m := reFee.FindStringSubmatch(body); m != nil {
		frag.Fee = parseQuantity(m[1])
	}
	if m := reNewBalance.FindStringSubmatch(body); m != nil {
		frag.NewBalance = parseQuantity(m[1])
	}

	return frag
}

// applyReceived handles bodies like
// "You have received 2,000 RWF from Jane Doe (*********013)."
func applyReceived(body string, frag *Fragment) {
	frag.Type = models.TypeReceived
	if m := reSender.FindStringSubmatch(body); m != nil {
		frag.Sender = optString(strings.TrimSpace(m[1]))
	}
	if m := reMaskedPhone.FindStringSubmatch(body); m != nil {
		frag.PhoneNumber = optString(phoneMask + m[1])
	}
}

// applyPayment handles merchant payments and airtime purchases, e.g.
// "Your payment of 1,000 RWF to Airtime with token ..." or
// "Your payment of 600 RWF to Samuel Carter 95464 has been completed."
func applyPayment(body string, frag *Fragment) {
	if strings.Contains(strings.ToLower(body), "airtime") {
		frag.Type = models.TypeAirtime
		frag.Recipient = optString("Airtime")
		return
	}
	frag.Type = models.TypePayment
	if m := reRecipient.FindStringSubmatch(body); m != nil {
		frag.Recipient = optString(strings.TrimSpace(m[1]))
	}
}

// applyTransfer handles bodies like
// "10,000 RWF transferred to Samuel Carter (250791666666) from 36521838 ..."
// where one pattern captures both the recipient and their phone number.
func applyTransfer(body string, frag *Fragment) {
	frag.Type = models.TypeTransfer
	if m := reTransfer.FindStringSubmatch(body); m != nil {
		frag.Recipient = optString(strings.TrimSpace(m[1]))
		frag.PhoneNumber = optString(m[2])
	}
}

func applyDeposit(body string, frag *Fragment) {
	frag.Type = models.TypeDeposit
	frag.Recipient = optString("Bank Account")
}

// parseQuantity converts an RWF quantity with optional thousands separators
// ("12,500") into an integer. Returns nil on anything unparseable.
func parseQuantity(s string) *int64 {
	n, err := strconv.ParseInt(strings.ReplaceAll(s, ",", ""), 10, 64)
	if err != nil || n < 0 {
		return nil
	}
	return &n
}

func optString(s string) *string {
	return &s
}
