package compound

// Table is a static year-to-rate table compiled into the program. It
// implements RateSource so a dataset can read it exactly the way it
// reads a live provider.
type Table map[int]Percent

// AnnualRates returns the table's rates for the calendar years within
// [current year - years, current year], in ascending year order. Years
// the table does not cover are simply absent from the result. It never
// fails.
func (t Table) AnnualRates(years int) ([]AnnualRate, error) {
	current := Today().Year()
	return t.between(current-years, current), nil
}

func (t Table) between(first, last int) []AnnualRate {
	var rates []AnnualRate
	for year := first; year <= last; year++ {
		if rate, ok := t[year]; ok {
			rates = append(rates, AnnualRate{Year: year, Rate: rate})
		}
	}
	return rates
}

// SampleStockReturns holds well-known S&P 500 annual returns, served
// for every equity dataset when its provider is unreachable.
var SampleStockReturns = Table{
	2024: 24.2,
	2023: 26.3,
	2022: -18.1,
	2021: 28.7,
	2020: 18.4,
	2019: 31.5,
	2018: -4.4,
	2017: 21.8,
	2016: 12.0,
	2015: 1.4,
	2014: 13.7,
	2013: 32.4,
	2012: 16.0,
	2011: 2.1,
	2010: 15.1,
	2009: 26.5,
	2008: -37.0,
	2007: 5.5,
	2006: 15.8,
	2005: 4.9,
	2004: 10.9,
	2003: 28.7,
}

// SampleInflationRates holds well-known US CPI annual inflation rates,
// served when FRED is unreachable or no API key is configured.
var SampleInflationRates = Table{
	2024: 3.4, 2023: 4.1, 2022: 8.0, 2021: 4.7, 2020: 1.2,
	2019: 1.8, 2018: 2.4, 2017: 2.1, 2016: 1.3, 2015: 0.1,
	2014: 1.6, 2013: 1.5, 2012: 2.1, 2011: 3.2, 2010: 1.6,
	2009: -0.4, 2008: 3.8, 2007: 2.8, 2006: 3.2, 2005: 3.4,
	2004: 2.7, 2003: 2.3, 2002: 1.6, 2001: 2.8, 2000: 3.4,
}
