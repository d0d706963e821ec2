// Package numfmt renders arbitrary-precision decimals as human-readable
// strings: plain decimal text, USD currency text, and thousands-separated
// text with a caller-chosen number of fractional digits.
//
// All functions are pure and total. Rounding is always round-half-to-even
// (banker's rounding) at the requested digit, applied to the decimal value
// itself — output never passes through a binary float, so values too large
// or too precise for float64 format exactly.
package numfmt

import (
	"fmt"
	"strings"

	"github.com/govalues/money"
	"github.com/shopspring/decimal"
)

// StringOrEmpty returns the canonical decimal rendering of nd, or the empty
// string when nd holds no value. The stored scale is preserved: a value
// parsed from "1.20" renders as "1.20", not "1.2".
func StringOrEmpty(nd decimal.NullDecimal) string {
	if !nd.Valid {
		return ""
	}
	// Decimal.String trims trailing fractional zeros, losing the scale.
	if exp := nd.Decimal.Exponent(); exp < 0 {
		return nd.Decimal.StringFixed(-exp)
	}
	return nd.Decimal.String()
}

// Currency rounds v to cents using round-half-to-even and renders it as USD,
// e.g. "$1,234.56" or "-$1,234.56".
//
// The rounded value is validated through the currency library before
// rendering. If it is rejected (USD amounts are capped at 17 integral
// digits), Currency does not fail; it returns a parenthesized diagnostic of
// the form "(<rounded-value> <error>)".
func Currency(v decimal.Decimal) string {
	s := v.RoundBank(2).StringFixed(2)
	if _, err := money.ParseAmount("USD", s); err != nil {
		return fmt.Sprintf("(%s %v)", s, err)
	}

	mag, neg := strings.CutPrefix(s, "-")
	whole, cents, _ := strings.Cut(mag, ".")

	var b strings.Builder
	b.Grow(len(s) + len(mag)/3 + 2)
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	b.WriteString(groupThousands(whole))
	b.WriteByte('.')
	b.WriteString(cents)
	return b.String()
}

// Separated rounds v to dp fractional digits using round-half-to-even and
// renders it with the integral part grouped in thousands, e.g.
// Separated(-123456.126, 2) == "-123,456.13".
//
// The sign comes from v before rounding, but a magnitude that rounds to zero
// renders without one ("-0" never appears). When dp is 0 no decimal point is
// emitted; dp beyond v's scale zero-pads; a negative dp is treated as 0.
func Separated(v decimal.Decimal, dp int32) string {
	if dp < 0 {
		dp = 0
	}
	mag := v.Abs().RoundBank(dp)
	s := mag.StringFixed(dp)
	whole, frac, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	b.Grow(len(s) + len(whole)/3 + 1)
	if v.IsNegative() && !mag.IsZero() {
		b.WriteByte('-')
	}
	b.WriteString(groupThousands(whole))
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

// Percentage rounds v to 2 fractional digits using round-half-to-even and
// appends a percent sign, e.g. "12.35%".
func Percentage(v decimal.Decimal) string {
	return v.RoundBank(2).StringFixed(2) + "%"
}
