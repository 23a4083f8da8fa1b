package decode

import (
	"math/big"
	"strconv"

	"go.dedis.ch/sssrecover/types"
)

const (
	// MinBase is the smallest supported base.
	MinBase = 2
	// MaxBase is the largest supported base, digits 0-9 then a-z.
	MaxBase = 36
)

// Convert decodes a digit string in the given base into an exact integer.
// Letters are case-insensitive. Signs and separators are not digits.
func Convert(value string, base int) (*big.Int, error) {
	if base < MinBase || base > MaxBase {
		return nil, &types.InvalidBaseError{Base: strconv.Itoa(base)}
	}
	if value == "" {
		return nil, types.ErrEmptyValue
	}

	b := big.NewInt(int64(base))
	d := new(big.Int)
	result := new(big.Int)
	for _, c := range value {
		v, ok := digitValue(c)
		if !ok || v >= base {
			return nil, &types.InvalidDigitError{Char: c, Base: base}
		}
		result.Mul(result, b)
		result.Add(result, d.SetInt64(int64(v)))
	}

	return result, nil
}

// digitValue maps 0-9, a-z and A-Z to 0..35.
func digitValue(c rune) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10, true
	default:
		return 0, false
	}
}
