package compound

import (
	"github.com/etnz/compound/date"
	"github.com/etnz/compound/fred"
	"github.com/etnz/compound/yahoo"
)

// RateSource produces one percentage rate per calendar year over a
// lookback horizon. Live providers and static Tables implement it
// alike, so the caller never knows which one it reads.
type RateSource interface {
	AnnualRates(years int) ([]AnnualRate, error)
}

// equitySource derives annual returns from a daily price series.
type equitySource struct {
	client *yahoo.Client
	symbol string
}

func (s *equitySource) AnnualRates(years int) ([]AnnualRate, error) {
	prices, err := s.client.Daily(s.symbol, date.LastYears(Today(), years))
	if err != nil {
		return nil, err
	}
	return AnnualReturns(prices)
}

// macroSource derives year-over-year rates from a monthly index series.
type macroSource struct {
	client *fred.Client
	series string
}

func (s *macroSource) AnnualRates(years int) ([]AnnualRate, error) {
	// One extra year of lookback: the first fetched year only serves as
	// the baseline of the next one.
	r := date.LastYears(Today(), years)
	r.From = r.From.Add(-365)

	index, err := s.client.Observations(s.series, r)
	if err != nil {
		return nil, err
	}
	return YearOverYear(index)
}
