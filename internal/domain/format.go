package domain

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// FormatSize renders a byte count as kilobytes with one decimal, e.g. "1167.6 kB".
func FormatSize(bytes int64) string {
	return ToFixed(float64(bytes)/BytesPerKilobyte, SizeDecimals) + " kB"
}

// FormatPercent renders a 0..1 fraction as a percentage without truncation.
func FormatPercent(fraction float64) string {
	return FormatNumber(fraction*100) + "%"
}

// FormatEnergy renders the energy per page load.
func FormatEnergy(energy float64) string {
	return FormatNumber(energy) + " kW_g"
}

// FormatGrams renders a co2 mass with four decimals.
func FormatGrams(grams float64) string {
	return ToFixed(grams, GramsDecimals) + " g"
}

// FormatNumber renders v with the shortest decimal form that round-trips,
// switching to exponent notation below 1e-6 and from 1e21 upwards.
func FormatNumber(v float64) string {
	abs := math.Abs(v)
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) || (abs >= 1e-6 && abs < 1e21) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	s := strconv.FormatFloat(v, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + sign + digits
}

// ToFixed formats v with a fixed number of decimals. Exact halfway values
// round away from zero.
func ToFixed(v float64, decimals int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	if decimals < 0 {
		decimals = 0
	}

	r := new(big.Rat).SetFloat64(v)
	neg := r.Sign() < 0
	r.Abs(r)

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	r.Mul(r, new(big.Rat).SetInt(scale))
	r.Add(r, big.NewRat(1, 2))
	n := new(big.Int).Quo(r.Num(), r.Denom())

	s := n.String()
	if decimals > 0 {
		if len(s) <= decimals {
			s = strings.Repeat("0", decimals-len(s)+1) + s
		}
		s = s[:len(s)-decimals] + "." + s[len(s)-decimals:]
	}
	if neg {
		s = "-" + s
	}
	return s
}

func formatUint(v uint64) string {
	return strconv.FormatUint(v, 10)
}
