package conf

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Config holds the process-wide settings read from the environment. Built
// once in main and passed to components; never mutated afterwards.
type Config struct {
	//base URL of the external BIN lookup service, no trailing slash
	BinlistURL string
	//amount of every simulated charge, in major currency units
	ChargeAmount decimal.Decimal
	//ISO currency code of the simulated charge
	Currency string
	//listen port of the http server
	Port int
	//run mode, one of dev|test|release
	Mode string
}

// Load builds the configuration from environment variables, falling back to
// defaults where a variable is unset or empty.
func Load() (*Config, error) {
	rawAmount := getEnv("STRIPE_CHARGE_AMOUNT", "2.00")
	amount, err := decimal.NewFromString(rawAmount)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid STRIPE_CHARGE_AMOUNT %q", rawAmount)
	}

	rawPort := getEnv("PORT", "8080")
	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid PORT %q", rawPort)
	}

	return &Config{
		BinlistURL:   strings.TrimSuffix(getEnv("BINLIST_API_URL", "https://lookup.binlist.net"), "/"),
		ChargeAmount: amount,
		Currency:     getEnv("STRIPE_CURRENCY", "USD"),
		Port:         port,
		Mode:         getEnv("RUN_MODE", RunModeDev),
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
