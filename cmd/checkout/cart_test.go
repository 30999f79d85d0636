package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCart(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cart.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadCart(t *testing.T) {
	lines, thresholds, err := loadCart("cart.example.yaml")
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, int64(1250), lines[0].UnitPrice)
	assert.Equal(t, map[int64]int64{20: 800}, thresholds)
}

func TestLoadCart_Errors(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{
			name: "bad price",
			body: "items:\n  - product_id: 1\n    unit_price: abc\n    quantity: 1\n",
		},
		{
			name: "zero quantity",
			body: "items:\n  - product_id: 1\n    unit_price: \"1.00\"\n    quantity: 0\n",
		},
		{
			name: "bad producer threshold",
			body: "items:\n  - product_id: 1\n    unit_price: \"1.00\"\n    quantity: 1\nproducers:\n  - producer_id: 2\n    free_shipping_threshold: lots\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := loadCart(writeCart(t, tc.body))
			assert.Error(t, err)
		})
	}
}
