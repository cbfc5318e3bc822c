package travel

import (
	"fmt"
	"maps"
	"math"

	"github.com/shopspring/decimal"
)

// Rates maps each supported currency to its value in the base unit
// (1 JPY = 0.21 TWD). The base rate is always 1.
//
// Rates are edited by hand and are not validated: a zero or negative rate is
// accepted and leads to infinite or meaningless totals.
type Rates map[Currency]float64

// DefaultRates returns the rate table used when none was ever saved.
func DefaultRates() Rates {
	return Rates{TWD: 1, JPY: 0.21, KRW: 0.023, EUR: 34.5}
}

// Clone returns a copy of r.
func (r Rates) Clone() Rates { return maps.Clone(r) }

// Rate returns the rate of currency c.
func (r Rates) Rate(c Currency) float64 {
	if c == Base {
		return 1
	}
	return r[c]
}

// Set overwrites the rate of currency c, without any validation of v.
func (r Rates) Set(c Currency, v float64) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %q", ErrCurrency, string(c))
	}
	if c == Base {
		return ErrBaseRate
	}
	r[c] = v
	return nil
}

// complete fills in the missing currencies from the defaults and forces the base rate.
func (r Rates) complete() {
	def := DefaultRates()
	for _, c := range Currencies {
		if _, ok := r[c]; !ok {
			Log.WithField("currency", c).Info("missing rate, using default")
			r[c] = def[c]
		}
	}
	if r[Base] != 1 {
		Log.WithField("rate", r[Base]).Warn("base rate is not 1, resetting it")
		r[Base] = 1
	}
}

// Convert converts amount from one currency to another.
func (r Rates) Convert(amount float64, from, to Currency) float64 {
	return amount * r.Rate(from) / r.Rate(to)
}

// Sum returns the unrounded value of all expenses expressed in the display currency.
//
// Amounts are summed exactly in base units; only the final division by the
// display rate is a float operation, so that a zero display rate gives +Inf,
// -Inf or NaN instead of failing. Amounts or rates that have no exact decimal
// form, like 1e999999999 or an infinite rate, are added as floats.
func (r Rates) Sum(expenses []Expense, display Currency) float64 {
	base := decimal.Zero
	var inexact float64
	for _, e := range expenses {
		rate := r.Rate(e.Currency)
		f, amount, exact := parseAmount(e.Amount)
		if exact && !math.IsInf(rate, 0) && !math.IsNaN(rate) {
			base = base.Add(amount.Mul(decimal.NewFromFloat(rate)))
			continue
		}
		inexact += f * rate
	}
	return (base.InexactFloat64() + inexact) / r.Rate(display)
}

// Total is the Sum rounded to the nearest integer, halves rounded up, the way
// it is displayed.
func (r Rates) Total(expenses []Expense, display Currency) float64 {
	return math.Floor(r.Sum(expenses, display) + 0.5)
}
