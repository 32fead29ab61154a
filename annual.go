package compound

import (
	"fmt"

	"github.com/etnz/compound/date"
)

// AnnualRate is the percentage change attributed to one calendar year.
type AnnualRate struct {
	Year int
	Rate Percent
}

// AnnualReturns reduces a daily price history to one rate per calendar
// year: (last price of the year - first price) / first price, in percent.
//
// "First" and "last" are the earliest and latest observations the year
// actually has, so a partial year (a fetch window starting mid-year)
// still yields a rate. Years with a single observation, or a zero first
// price, cannot produce a meaningful rate and are skipped. The
// resulting rates are in ascending year order, the order the history
// iterates in.
func AnnualReturns(prices *date.History[float64]) ([]AnnualRate, error) {
	var (
		rates       []AnnualRate
		year, count int
		first, last float64
	)
	flush := func() {
		if count < 2 || first == 0 {
			return
		}
		rates = append(rates, AnnualRate{Year: year, Rate: Percent((last - first) / first * 100)})
	}
	for on, price := range prices.Values() {
		if count == 0 || on.Year() != year {
			flush()
			year, first, last, count = on.Year(), price, price, 1
			continue
		}
		last = price
		count++
	}
	flush()

	if len(rates) == 0 {
		return nil, fmt.Errorf("%w: no year with at least two prices", ErrInsufficientData)
	}
	return rates, nil
}

// YearOverYear reduces an index history (typically monthly values) to
// the year-over-year change of its annual means, in percent.
//
// The first year present in the history only serves as the baseline of
// the next one, so callers wanting rates over a given horizon must
// fetch one extra year of lookback. Consecutive here means consecutive
// in the history: if a whole year is missing from the input, the rate
// of the next one is computed against the last year seen.
func YearOverYear(index *date.History[float64]) ([]AnnualRate, error) {
	// annual means, in ascending year order
	var (
		years  []int
		sums   []float64
		counts []int
	)
	for on, v := range index.Values() {
		if y := on.Year(); len(years) == 0 || years[len(years)-1] != y {
			years, sums, counts = append(years, y), append(sums, v), append(counts, 1)
		} else {
			sums[len(sums)-1] += v
			counts[len(counts)-1]++
		}
	}

	if len(years) < 2 {
		return nil, fmt.Errorf("%w: need two years of index values, got %d", ErrInsufficientData, len(years))
	}

	rates := make([]AnnualRate, 0, len(years)-1)
	for i := 1; i < len(years); i++ {
		prev := sums[i-1] / float64(counts[i-1])
		curr := sums[i] / float64(counts[i])
		if prev == 0 {
			return nil, fmt.Errorf("%w: mean index for %d is zero", ErrZeroBaseline, years[i-1])
		}
		rates = append(rates, AnnualRate{Year: years[i], Rate: Percent((curr - prev) / prev * 100)})
	}
	return rates, nil
}
