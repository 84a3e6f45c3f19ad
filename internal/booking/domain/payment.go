package domain

import (
	"encoding/json"
	"log/slog"
)

// Redacted is the fixed placeholder every textual rendering of a payment
// token produces.
const Redacted = "<SECRET>"

// PaymentInfo is an opaque, write-only payment capture token. Any token is
// accepted on input; validating the capture is the payment provider's job.
//
// The token never appears in human-readable or serialized output: String,
// GoString, LogValue and MarshalJSON all emit the Redacted placeholder
// regardless of content. There is deliberately no accessor for the raw token.
type PaymentInfo struct {
	token string
}

// NewPaymentInfo wraps a capture token. Never fails; the token is opaque.
func NewPaymentInfo(token string) PaymentInfo {
	return PaymentInfo{token: token}
}

// IsZero returns true if this is the zero value.
func (p PaymentInfo) IsZero() bool {
	return p.token == ""
}

// String renders the fixed redaction placeholder, never the token.
func (p PaymentInfo) String() string {
	return Redacted
}

// GoString keeps %#v output redacted as well.
func (p PaymentInfo) GoString() string {
	return "domain.PaymentInfo(" + Redacted + ")"
}

// LogValue keeps structured log output redacted.
func (p PaymentInfo) LogValue() slog.Value {
	return slog.StringValue(Redacted)
}

// MarshalJSON emits the redaction placeholder. Re-serializing a draft for
// display or persistence therefore redacts the token too.
func (p PaymentInfo) MarshalJSON() ([]byte, error) {
	return json.Marshal(Redacted)
}

// UnmarshalJSON accepts any string as a capture token.
func (p *PaymentInfo) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = NewPaymentInfo(raw)
	return nil
}
