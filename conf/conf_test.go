package conf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BINLIST_API_URL", "")
	t.Setenv("STRIPE_CHARGE_AMOUNT", "")
	t.Setenv("STRIPE_CURRENCY", "")
	t.Setenv("PORT", "")
	t.Setenv("RUN_MODE", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://lookup.binlist.net", cfg.BinlistURL)
	assert.Equal(t, "2.00", cfg.ChargeAmount.StringFixed(2))
	assert.Equal(t, "USD", cfg.Currency)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, RunModeDev, cfg.Mode)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("BINLIST_API_URL", "http://localhost:9999/")
	t.Setenv("STRIPE_CHARGE_AMOUNT", "10.50")
	t.Setenv("STRIPE_CURRENCY", "EUR")
	t.Setenv("PORT", "3000")
	t.Setenv("RUN_MODE", RunModeRelease)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9999", cfg.BinlistURL, "trailing slash is trimmed")
	assert.Equal(t, "10.50", cfg.ChargeAmount.StringFixed(2))
	assert.Equal(t, "EUR", cfg.Currency)
	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, RunModeRelease, cfg.Mode)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("STRIPE_CHARGE_AMOUNT", "two dollars")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("STRIPE_CHARGE_AMOUNT", "2.00")
	t.Setenv("PORT", "not-a-port")
	_, err = Load()
	assert.Error(t, err)
}
