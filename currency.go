package travel

import (
	"fmt"
	"math"
	"strings"

	"github.com/Rhymond/go-money"
)

// Currency is one of the supported currency codes.
type Currency string

const (
	TWD Currency = "TWD" // TWD is the base unit every rate is expressed in.
	JPY Currency = "JPY"
	KRW Currency = "KRW"
	EUR Currency = "EUR"
)

// Base is the currency all rates are relative to.
const Base = TWD

// Currencies lists the supported currencies in display order.
var Currencies = []Currency{TWD, JPY, KRW, EUR}

// ParseCurrency parses a supported currency code, case insensitive.
func ParseCurrency(s string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrCurrency, s)
	}
	return c, nil
}

// Valid reports whether c is one of the supported codes.
func (c Currency) Valid() bool {
	switch c {
	case TWD, JPY, KRW, EUR:
		return true
	}
	return false
}

func (c Currency) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrCurrency, string(c))
	}
	return []byte(c), nil
}

func (c *Currency) UnmarshalText(text []byte) error {
	v, err := ParseCurrency(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Symbol returns the display symbol of the currency.
func (c Currency) Symbol() string {
	if c == TWD {
		// the island dollar is simply written "$" locally.
		return "$"
	}
	// to get a never nil currency I need to call the Money constructor
	return money.New(0, string(c)).Currency().Grapheme
}

// FormatAmount formats an already rounded amount with the currency symbol and
// thousand separators, e.g. "¥1,234". Infinite and NaN values, that a zero
// rate can produce, are printed as they are.
func FormatAmount(v float64, c Currency) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return fmt.Sprintf("%s%v", c.Symbol(), v)
	}
	f := money.NewFormatter(0, ".", ",", c.Symbol(), "$1")
	return f.Format(int64(v))
}
