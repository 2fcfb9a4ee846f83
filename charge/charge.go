// Package charge fabricates payment-processor charge records. Nothing here
// touches a real payment network.
package charge

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"git.thinkinpower.net/cardsrv/conf"
	"git.thinkinpower.net/cardsrv/mod"
)

// Simulator builds simulated charges from the static amount and currency in
// the process configuration. Identifiers are derived from the wall clock;
// everything else is canned.
type Simulator struct {
	amount   decimal.Decimal
	currency string
}

func NewSimulator(cfg *conf.Config) *Simulator {
	return &Simulator{amount: cfg.ChargeAmount, currency: cfg.Currency}
}

// Simulate synthesizes a charge record for a normalized card number. The
// cardholder name is accepted for API compatibility but not echoed into the
// record.
func (s *Simulator) Simulate(cardNumber, cardHolderName string, brand mod.CardBrand) mod.SimulatedCharge {
	now := time.Now()
	stamp := now.Format(conf.DateTimePatternCompact)

	last4 := cardNumber
	if len(cardNumber) > 4 {
		last4 = cardNumber[len(cardNumber)-4:]
	}
	minorUnits := s.amount.Mul(decimal.NewFromInt(100)).IntPart()

	return mod.SimulatedCharge{
		ID:             fmt.Sprintf("ch_%s", stamp),
		Object:         "charge",
		Amount:         minorUnits,
		AmountCaptured: minorUnits,
		AmountRefunded: 0,
		Currency:       strings.ToLower(s.currency),
		Status:         "succeeded",
		Description:    fmt.Sprintf("Test charge for %s", brand),
		Created:        now.Format(conf.DateTimePattern),
		PaymentMethod: mod.PaymentMethod{
			ID:     fmt.Sprintf("pm_%s", stamp),
			Object: "payment_method",
			Type:   "card",
			Card: mod.CardSummary{
				Brand:       strings.ToLower(string(brand)),
				Last4:       last4,
				ExpMonth:    12,
				ExpYear:     2029,
				Fingerprint: fmt.Sprintf("fp_%s", last4),
			},
		},
		ReceiptURL: fmt.Sprintf("https://receipts.stripe.com/r/test_%s", stamp),
		Outcome: mod.ChargeOutcome{
			NetworkStatus: "approved_by_network",
			RiskLevel:     "normal",
			RiskScore:     32,
			SellerMessage: "Payment complete.",
			Type:          "authorized",
		},
	}
}
