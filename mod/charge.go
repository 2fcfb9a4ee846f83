package mod

// SimulatedCharge resembles a payment-processor charge object. Entirely
// fabricated: no real charge is ever created.
type SimulatedCharge struct {
	ID             string        `json:"id"`
	Object         string        `json:"object"`
	Amount         int64         `json:"amount"` //minor currency units
	AmountCaptured int64         `json:"amount_captured"`
	AmountRefunded int64         `json:"amount_refunded"`
	Currency       string        `json:"currency"`
	Status         string        `json:"status"`
	Description    string        `json:"description"`
	Created        string        `json:"created"`
	PaymentMethod  PaymentMethod `json:"payment_method"`
	ReceiptURL     string        `json:"receipt_url"`
	Outcome        ChargeOutcome `json:"outcome"`
}

type PaymentMethod struct {
	ID     string      `json:"id"`
	Object string      `json:"object"`
	Type   string      `json:"type"`
	Card   CardSummary `json:"card"`
}

type CardSummary struct {
	Brand       string `json:"brand"`
	Last4       string `json:"last4"`
	ExpMonth    int    `json:"exp_month"`
	ExpYear     int    `json:"exp_year"`
	Fingerprint string `json:"fingerprint"`
}

type ChargeOutcome struct {
	NetworkStatus string  `json:"network_status"`
	Reason        *string `json:"reason"` //always null for simulated charges
	RiskLevel     string  `json:"risk_level"`
	RiskScore     int     `json:"risk_score"`
	SellerMessage string  `json:"seller_message"`
	Type          string  `json:"type"`
}
