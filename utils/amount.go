// Package utils
package utils

import (
	"errors"
	"math/big"
	"strconv"
)

var ErrInvalidAmount = errors.New("invalid amount string")

func StrToUint64(data string) uint64 {
	i, _ := strconv.ParseUint(data, 10, 64)
	return i
}

// ParseAmount converts a decimal base-unit string into a big.Int.
// Negative amounts are rejected, every amount in the system is a fund
// balance or a price.
func ParseAmount(data string) (*big.Int, error) {
	amount, ok := new(big.Int).SetString(data, 10)
	if !ok {
		return nil, ErrInvalidAmount
	}
	if amount.Sign() < 0 {
		return nil, ErrInvalidAmount
	}
	return amount, nil
}

// FormatAmount renders a big.Int as the decimal string stored in db
// documents and API payloads. Nil renders as "0".
func FormatAmount(amount *big.Int) string {
	if amount == nil {
		return "0"
	}
	return amount.String()
}
