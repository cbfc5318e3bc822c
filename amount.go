package travel

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// numericPrefix matches the longest leading decimal literal of a string.
var numericPrefix = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// maxExactExponent bounds the decimal exponent of amounts summed exactly.
// Wider amounts are summed as floats.
const maxExactExponent = 64

// ParseAmount reads the amount typed for an expense.
//
// It is as lenient as a form field can be: leading spaces are ignored and the
// longest numeric prefix is used ("12abc" is 12). Anything without a numeric
// prefix, like "" or "abc", is 0 and never an error. Amounts too large for a
// float64 are +Inf or -Inf.
func ParseAmount(s string) float64 {
	f, _, _ := parseAmount(s)
	return f
}

// parseAmount returns the amount as a float, and as a decimal when exact is
// true.
func parseAmount(s string) (f float64, d decimal.Decimal, exact bool) {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	m := numericPrefix.FindString(s)
	if m == "" {
		return 0, decimal.Zero, true
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		Log.WithField("amount", s).Debugf("unreadable amount: %v", err)
		return 0, decimal.Zero, true
	}
	if err != nil {
		// f is +-Inf on overflow and 0 on underflow.
		return f, decimal.Zero, false
	}
	d, err = decimal.NewFromString(m)
	if err != nil {
		return f, decimal.Zero, false
	}
	if e := d.Exponent(); e > maxExactExponent || e < -maxExactExponent {
		return f, decimal.Zero, false
	}
	return f, d, true
}
