package mathutil

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToWei(t *testing.T) {
	tests := []struct {
		amount   string
		expected string
	}{
		{"0", "0"},
		{"1", "1000000000000000000"},
		{"1.5", "1500000000000000000"},
		{"0.000000000000000001", "1"},
		{"20.5", "20500000000000000000"},
		// more than 18 fractional digits are truncated, not rounded
		{"1.0000000000000000019", "1000000000000000001"},
		{"0.9999999999999999999", "999999999999999999"},
	}
	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			wei, err := ToWei(tt.amount)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, wei.String())
		})
	}
}

func TestToBaseUnits(t *testing.T) {
	units, err := ToBaseUnits("12.34", 6)
	require.NoError(t, err)
	assert.Equal(t, "12340000", units.String())

	units, err = ToBaseUnits("5", 0)
	require.NoError(t, err)
	assert.Equal(t, "5", units.String())

	units, err = ToBaseUnits("0.123456789", 6)
	require.NoError(t, err)
	assert.Equal(t, "123456", units.String())
}

func TestFailingToBaseUnits(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		decimals int
		err      error
	}{
		{"empty", "", 18, ErrInvalidAmount},
		{"not a number", "one", 18, ErrInvalidAmount},
		{"negative", "-1", 18, ErrInvalidAmount},
		{"two dots", "1.2.3", 18, ErrInvalidAmount},
		{"negative decimals", "1", -1, ErrInvalidDecimals},
		{"too many decimals", "1", 78, ErrInvalidDecimals},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToBaseUnits(tt.amount, tt.decimals)
			assert.Equal(t, tt.err, err)
		})
	}
}

func TestFromBaseUnits(t *testing.T) {
	wei, _ := new(big.Int).SetString("1500000000000000000", 10)
	assert.Equal(t, "1.5", FromBaseUnits(wei, 18))
	assert.Equal(t, "0", FromBaseUnits(nil, 18))
	assert.Equal(t, "42", FromBaseUnits(big.NewInt(42), 0))
}
