// Package money converts decimal major-unit currency amounts to the integer
// minor units payment providers bill in (paise, cents) and back.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// exponents maps ISO 4217 currency codes to the number of minor-unit digits.
// Currencies not listed use the common exponent of 2.
var exponents = map[string]int32{
	// Zero-decimal currencies.
	"BIF": 0,
	"CLP": 0,
	"DJF": 0,
	"GNF": 0,
	"JPY": 0,
	"KMF": 0,
	"KRW": 0,
	"MGA": 0,
	"PYG": 0,
	"RWF": 0,
	"UGX": 0,
	"VND": 0,
	"VUV": 0,
	"XAF": 0,
	"XOF": 0,
	"XPF": 0,

	// Three-decimal currencies.
	"BHD": 3,
	"IQD": 3,
	"JOD": 3,
	"KWD": 3,
	"LYD": 3,
	"OMR": 3,
	"TND": 3,
}

const defaultExponent int32 = 2

// Exponent returns the number of minor-unit digits for the given currency.
// The lookup is case-insensitive; unknown currencies report the default of 2.
func Exponent(currency string) int32 {
	if exp, ok := exponents[strings.ToUpper(currency)]; ok {
		return exp
	}
	return defaultExponent
}

// MinorUnits converts a major-unit decimal amount into the currency's
// smallest integer unit (150.00 INR -> 15000 paise). It fails when the
// amount carries more fractional digits than the currency supports, so a
// sub-minor-unit amount is never silently truncated.
func MinorUnits(amount decimal.Decimal, currency string) (int64, error) {
	shifted := amount.Shift(Exponent(currency))
	if !shifted.IsInteger() {
		return 0, fmt.Errorf("amount %s has more precision than %s allows", amount, strings.ToUpper(currency))
	}
	if !shifted.BigInt().IsInt64() {
		return 0, fmt.Errorf("amount %s overflows minor units of %s", amount, strings.ToUpper(currency))
	}
	return shifted.IntPart(), nil
}

// MajorUnits converts an integer minor-unit amount back into the decimal
// major-unit representation (15000 paise -> 150.00 INR).
func MajorUnits(minor int64, currency string) decimal.Decimal {
	return decimal.New(minor, -Exponent(currency))
}
