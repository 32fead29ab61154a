package compound

import (
	"github.com/shopspring/decimal"
)

// GrowthSeries is the uniform output shape of every dataset: calendar
// years and the growth factor an initial unit of 1 has reached by the
// end of each of them.
//
// Both slices always have the same length. When non-empty, Dates[0] is
// a synthetic anchor year (one before the first rated year) paired with
// the initial factor 1.0.
type GrowthSeries struct {
	Dates  []int     `json:"dates"`
	Values []float64 `json:"values"`
}

// NewGrowthSeries compounds per-year percentage rates into a growth
// series: values[0] = 1.0 and values[i] = values[i-1] * (1 + rate/100).
//
// The chain is computed exactly in decimal. Rounding to 4 decimal
// places happens once, on the finished chain, never between steps.
func NewGrowthSeries(rates []AnnualRate) GrowthSeries {
	s := GrowthSeries{Dates: []int{}, Values: []float64{}}
	if len(rates) == 0 {
		return s
	}

	one := decimal.NewFromInt(1)
	factors := make([]decimal.Decimal, 0, len(rates)+1)
	acc := one
	factors = append(factors, acc)
	for _, r := range rates {
		// Shift(-2) divides by 100 exactly.
		acc = acc.Mul(one.Add(decimal.NewFromFloat(float64(r.Rate)).Shift(-2)))
		factors = append(factors, acc)
	}

	s.Dates = append(s.Dates, rates[0].Year-1)
	for _, r := range rates {
		s.Dates = append(s.Dates, r.Year)
	}
	for _, f := range factors {
		s.Values = append(s.Values, f.Round(4).InexactFloat64())
	}
	return s
}

// IsEmpty returns true when the series holds no year at all.
func (s GrowthSeries) IsEmpty() bool { return len(s.Dates) == 0 }

// Growth returns the overall growth over the series as a percentage,
// e.g. a series ending at 2.5 has grown by 150%.
func (s GrowthSeries) Growth() Percent {
	if len(s.Values) == 0 {
		return 0
	}
	return Percent((s.Values[len(s.Values)-1] - 1) * 100)
}

// Projection applies the growth factors to an initial investment and
// returns its value at the end of each year of the series.
func (s GrowthSeries) Projection(initial Money) []Money {
	values := make([]Money, 0, len(s.Values))
	for _, f := range s.Values {
		values = append(values, initial.Mul(f))
	}
	return values
}
