package config_test

import (
	"testing"
	"time"

	"github.com/SergeyBogomolovv/storefront-checkout/internal/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	conf := config.New()

	assert.Equal(t, config.StorageMemory, conf.Sandbox.Storage)
	assert.Equal(t, 300*time.Millisecond, conf.Client.DebounceDelay)
	assert.Equal(t, int64(3500), conf.Client.FreeShippingThreshold)
	assert.True(t, conf.Client.TaxRate.Equal(decimal.RequireFromString("0.24")))
	assert.False(t, conf.Kafka.Enabled)

	require.NoError(t, conf.ValidateSandbox())
	require.NoError(t, conf.ValidateClient())
}

func TestNew_FromEnv(t *testing.T) {
	t.Setenv("CHECKOUT_QUOTE_DEBOUNCE", "50ms")
	t.Setenv("CHECKOUT_TAX_RATE", "0.13")
	t.Setenv("CHECKOUT_FREE_SHIPPING_THRESHOLD", "5000")
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("CHECKOUT_SUBMIT_ATTEMPTS", "not-a-number")

	conf := config.New()

	assert.Equal(t, 50*time.Millisecond, conf.Client.DebounceDelay)
	assert.True(t, conf.Client.TaxRate.Equal(decimal.RequireFromString("0.13")))
	assert.Equal(t, int64(5000), conf.Client.FreeShippingThreshold)
	assert.True(t, conf.Kafka.Enabled)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, conf.Kafka.Brokers)
	assert.Equal(t, 3, conf.Client.SubmitAttempts)
	require.NoError(t, conf.ValidateSandbox())
}

func TestValidate_Errors(t *testing.T) {
	testCases := []struct {
		name     string
		mutate   func(c *config.Config)
		validate func(c config.Config) error
	}{
		{
			name:     "unknown env",
			mutate:   func(c *config.Config) { c.Env = "dev" },
			validate: config.Config.ValidateSandbox,
		},
		{
			name:     "unknown storage",
			mutate:   func(c *config.Config) { c.Sandbox.Storage = "redis" },
			validate: config.Config.ValidateSandbox,
		},
		{
			name:     "postgres storage without credentials",
			mutate:   func(c *config.Config) { c.Sandbox.Storage = config.StoragePostgres },
			validate: config.Config.ValidateSandbox,
		},
		{
			name:     "kafka enabled without topic",
			mutate:   func(c *config.Config) { c.Kafka.Enabled = true; c.Kafka.Topic = "" },
			validate: config.Config.ValidateSandbox,
		},
		{
			name:     "client base url missing",
			mutate:   func(c *config.Config) { c.Client.BaseURL = "" },
			validate: config.Config.ValidateClient,
		},
		{
			name:     "client tax rate out of range",
			mutate:   func(c *config.Config) { c.Client.TaxRate = decimal.NewFromInt(2) },
			validate: config.Config.ValidateClient,
		},
		{
			name:     "zero debounce",
			mutate:   func(c *config.Config) { c.Client.DebounceDelay = 0 },
			validate: config.Config.ValidateClient,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			conf := config.New()
			tc.mutate(&conf)
			assert.Error(t, tc.validate(conf))
		})
	}
}
