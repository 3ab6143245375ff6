package market

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitRoyalty(t *testing.T) {
	tests := []struct {
		name     string
		payment  string
		percent  uint
		royalty  string
		proceeds string
	}{
		{"zero percent", "1000", 0, "0", "1000"},
		{"full royalty", "1000", 100, "1000", "0"},
		{"even split", "1000", 10, "100", "900"},
		{"truncates toward zero", "99", 10, "9", "90"},
		{"tiny payment", "1", 50, "0", "1"},
		{"unit sale", "1000000000000000000", 10, "100000000000000000", "900000000000000000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payment, ok := new(big.Int).SetString(tt.payment, 10)
			require.True(t, ok)

			royalty, proceeds := splitRoyalty(payment, tt.percent)
			assert.Equal(t, tt.royalty, royalty.String())
			assert.Equal(t, tt.proceeds, proceeds.String())
		})
	}
}

func TestSplitRoyalty_AlwaysSumsToPayment(t *testing.T) {
	payment := big.NewInt(12345678901)
	for percent := uint(0); percent <= 100; percent++ {
		royalty, proceeds := splitRoyalty(payment, percent)
		assert.Equal(t, payment.String(), new(big.Int).Add(royalty, proceeds).String())
	}
}

func TestParseAmount(t *testing.T) {
	assert.Equal(t, "0", parseAmount("").String())
	assert.Equal(t, "0", parseAmount("garbage").String())
	assert.Equal(t, "500", parseAmount("500").String())
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0", formatAmount(nil))
	assert.Equal(t, "42", formatAmount(big.NewInt(42)))
}
