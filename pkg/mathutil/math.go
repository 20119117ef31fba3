package mathutil

import (
	"errors"
	"math/big"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount is returned when an amount string is not a
	// non-negative decimal number.
	ErrInvalidAmount = errors.New("amount must be a non-negative decimal number")
	// ErrInvalidDecimals ...
	ErrInvalidDecimals = errors.New("decimals must be in range [0, 77]")
)

// EtherDecimals is the number of decimals of the native unit, 1 ether is
// 10^18 wei.
const EtherDecimals = 18

// maxDecimals bounds token precision, 10^77 is the last power of ten below
// 2^256.
const maxDecimals = 77

// ToWei converts an amount of ether expressed as a decimal string to wei as
// an exact integer. The fractional part beyond 18 digits is truncated, never
// rounded, so the conversion is deterministic and float-free.
func ToWei(amount string) (*big.Int, error) {
	return ToBaseUnits(amount, EtherDecimals)
}

// ToBaseUnits converts a decimal string amount of a token with the given
// number of decimals to its integer base units.
func ToBaseUnits(amount string, decimals int) (*big.Int, error) {
	if decimals < 0 || decimals > maxDecimals {
		return nil, ErrInvalidDecimals
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, ErrInvalidAmount
	}
	if d.IsNegative() {
		return nil, ErrInvalidAmount
	}
	return d.Shift(int32(decimals)).Truncate(0).BigInt(), nil
}

// FromBaseUnits renders an integer amount of base units as a decimal string
// with the given number of decimals. Used for display only, the signing path
// never converts back.
func FromBaseUnits(amount *big.Int, decimals int) string {
	if amount == nil {
		return "0"
	}
	return decimal.NewFromBigInt(amount, -int32(decimals)).String()
}
