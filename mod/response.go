package mod

import (
	"encoding/json"
	"time"

	"git.thinkinpower.net/cardsrv/conf"
)

// ErrorResponse is the failure envelope shared by every endpoint.
type ErrorResponse struct {
	Success    bool   `json:"success"`
	Error      string `json:"error"`
	CardNumber string `json:"card_number,omitempty"` //masked, only on Luhn failures
	Timestamp  string `json:"timestamp"`
}

// NewError builds a failure envelope with the current timestamp.
func NewError(msg string) ErrorResponse {
	return ErrorResponse{Success: false, Error: msg, Timestamp: Timestamp()}
}

// StripeResponse is the full validation + lookup + charge envelope.
type StripeResponse struct {
	Success        bool             `json:"success"`
	CardValidation ValidationResult `json:"card_validation"`
	BinLookup      BinLookup        `json:"bin_lookup"`
	StripeCharge   SimulatedCharge  `json:"stripe_charge"`
	Timestamp      string           `json:"timestamp"`
}

// ValidateResponse is the validation-only envelope. IsValid carries the raw
// Luhn outcome; a failed check is still a successful response here.
type ValidateResponse struct {
	Success    bool      `json:"success"`
	CardNumber string    `json:"card_number"`
	IsValid    bool      `json:"is_valid"`
	CardType   CardBrand `json:"card_type"`
	CardLength int       `json:"card_length"`
	Timestamp  string    `json:"timestamp"`
}

// BinResponse is the lookup-only envelope; Data is the raw upstream payload.
type BinResponse struct {
	Success   bool            `json:"success"`
	Bin       string          `json:"bin"`
	Data      json.RawMessage `json:"data"`
	Timestamp string          `json:"timestamp"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Timestamp string `json:"timestamp"`
}

// Timestamp returns the ISO-8601 timestamp carried by every response.
func Timestamp() string {
	return time.Now().Format(conf.DateTimePattern)
}
