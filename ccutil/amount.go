// Package ccutil provides coin-denominated amount types, mirroring the
// shape of the upstream btcutil package this repo was forked from.
package ccutil

import (
	"errors"
	"math"
	"strconv"
)

// AmountUnit describes a method of converting an Amount to something other
// than the base unit of a coin. The value of the AmountUnit is the exponent
// component of the decadic multiple to convert from an amount counted in
// coins to an amount counted in units.
type AmountUnit int

// These constants define various units used when describing a monetary
// amount.
const (
	AmountMegaCCoin  AmountUnit = 6
	AmountKiloCCoin  AmountUnit = 3
	AmountCCoin      AmountUnit = 0
	AmountMilliCCoin AmountUnit = -3
	AmountMicroCCoin AmountUnit = -6
	AmountSatoshi    AmountUnit = -8
)

// String returns the unit as a string. For recognized units, a short
// abbreviation is returned; for all unrecognized units, a generic helper
// string is returned.
func (u AmountUnit) String() string {
	switch u {
	case AmountMegaCCoin:
		return "MCC"
	case AmountKiloCCoin:
		return "kCC"
	case AmountCCoin:
		return "CC"
	case AmountMilliCCoin:
		return "mCC"
	case AmountMicroCCoin:
		return "µCC"
	case AmountSatoshi:
		return "Satoshi"
	default:
		return "1e" + strconv.FormatInt(int64(u), 10) + " CC"
	}
}

// SatoshiPerCoin is the number of satoshis in one coin.
const SatoshiPerCoin = 1e8

// MaxSatoshi is the maximum transaction amount allowed in satoshis, per
// the MAX_MONEY consensus rule.
const MaxSatoshi = 115_000_000 * SatoshiPerCoin

// Amount represents the base coin monetary unit (colloquially referred to
// as a "satoshi"). A single Amount is equal to 1e-8 of a coin.
type Amount int64

// round converts a floating point number, which may or may not be
// representing an amount in coins, to the Amount (satoshi) type by rounding
// to the nearest satoshi.
func round(f float64) Amount {
	if f < 0 {
		return Amount(f - 0.5)
	}
	return Amount(f + 0.5)
}

// NewAmount creates an Amount from a floating point value representing an
// amount of coins. NewAmount errors if f is NaN or +-Infinity, but does not
// check that the amount is within the total amount of coins producible.
func NewAmount(f float64) (Amount, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, errors.New("invalid coin amount")
	}
	return round(f * SatoshiPerCoin), nil
}

// ToUnit converts a monetary amount counted in coin base units to a
// floating point value representing an amount of coins.
func (a Amount) ToUnit(u AmountUnit) float64 {
	return float64(a) / math.Pow10(int(u+8))
}

// ToCCoin is the equivalent of calling ToUnit with AmountCCoin.
func (a Amount) ToCCoin() float64 {
	return a.ToUnit(AmountCCoin)
}

// MulF64 multiplies an Amount by a floating point value, rounding the
// result to the nearest satoshi.
func (a Amount) MulF64(f float64) Amount {
	return round(float64(a) * f)
}
