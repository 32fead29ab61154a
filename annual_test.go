package compound

import (
	"errors"
	"testing"

	"github.com/etnz/compound/date"
)

func TestAnnualReturns(t *testing.T) {
	prices := new(date.History[float64])
	// 2020 goes from 100 to 110, 2021 from 110 down to 99.
	prices.Append(date.New(2020, 1, 2), 100)
	prices.Append(date.New(2020, 6, 15), 104)
	prices.Append(date.New(2020, 12, 30), 110)
	prices.Append(date.New(2021, 1, 4), 110)
	prices.Append(date.New(2021, 12, 29), 99)

	rates, err := AnnualReturns(prices)
	if err != nil {
		t.Fatalf("AnnualReturns() failed: %v", err)
	}

	want := []AnnualRate{{Year: 2020, Rate: 10}, {Year: 2021, Rate: -10}}
	if len(rates) != len(want) {
		t.Fatalf("got %d rates, want %d", len(rates), len(want))
	}
	for i := range want {
		if rates[i].Year != want[i].Year {
			t.Errorf("rates[%d].Year = %d want %d", i, rates[i].Year, want[i].Year)
		}
		if !rates[i].Rate.Equal(want[i].Rate) {
			t.Errorf("rates[%d].Rate = %v want %v", i, rates[i].Rate, want[i].Rate)
		}
	}
}

func TestAnnualReturns_skipsUnusableYears(t *testing.T) {
	prices := new(date.History[float64])
	// 2019 has a single observation, 2020 opens at zero: neither can
	// produce a rate.
	prices.Append(date.New(2019, 12, 30), 95)
	prices.Append(date.New(2020, 1, 2), 0)
	prices.Append(date.New(2020, 12, 30), 50)
	prices.Append(date.New(2021, 1, 4), 100)
	prices.Append(date.New(2021, 12, 29), 150)

	rates, err := AnnualReturns(prices)
	if err != nil {
		t.Fatalf("AnnualReturns() failed: %v", err)
	}
	if len(rates) != 1 || rates[0].Year != 2021 {
		t.Fatalf("got rates %v, want the single 2021 rate", rates)
	}
	if !rates[0].Rate.Equal(50) {
		t.Errorf("rates[0].Rate = %v want 50%%", rates[0].Rate)
	}
}

func TestAnnualReturns_insufficientData(t *testing.T) {
	testCases := []struct {
		name   string
		prices func() *date.History[float64]
	}{
		{
			name:   "empty history",
			prices: func() *date.History[float64] { return new(date.History[float64]) },
		},
		{
			name: "single observations only",
			prices: func() *date.History[float64] {
				h := new(date.History[float64])
				h.Append(date.New(2020, 6, 15), 100)
				h.Append(date.New(2021, 6, 15), 110)
				return h
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := AnnualReturns(tc.prices())
			if !errors.Is(err, ErrInsufficientData) {
				t.Errorf("AnnualReturns() error = %v, want ErrInsufficientData", err)
			}
		})
	}
}

func TestYearOverYear(t *testing.T) {
	index := new(date.History[float64])
	// 2019 mean is 101, 2020 mean is 105.
	index.Append(date.New(2019, 1, 1), 100)
	index.Append(date.New(2019, 7, 1), 102)
	index.Append(date.New(2020, 1, 1), 104)
	index.Append(date.New(2020, 7, 1), 106)

	rates, err := YearOverYear(index)
	if err != nil {
		t.Fatalf("YearOverYear() failed: %v", err)
	}
	if len(rates) != 1 {
		t.Fatalf("got %d rates, want 1", len(rates))
	}
	if rates[0].Year != 2020 {
		t.Errorf("rates[0].Year = %d want 2020", rates[0].Year)
	}
	if want := Percent((105.0 - 101.0) / 101.0 * 100); !rates[0].Rate.Equal(want) {
		t.Errorf("rates[0].Rate = %v want %v", rates[0].Rate, want)
	}
}

func TestYearOverYear_gapYear(t *testing.T) {
	index := new(date.History[float64])
	// 2019 is absent: the 2020 rate is computed against 2018, the last
	// year seen.
	index.Append(date.New(2018, 6, 1), 100)
	index.Append(date.New(2020, 6, 1), 110)

	rates, err := YearOverYear(index)
	if err != nil {
		t.Fatalf("YearOverYear() failed: %v", err)
	}
	if len(rates) != 1 || rates[0].Year != 2020 {
		t.Fatalf("got rates %v, want the single 2020 rate", rates)
	}
	if !rates[0].Rate.Equal(10) {
		t.Errorf("rates[0].Rate = %v want 10%%", rates[0].Rate)
	}
}

func TestYearOverYear_errors(t *testing.T) {
	single := new(date.History[float64])
	single.Append(date.New(2020, 1, 1), 100)
	single.Append(date.New(2020, 7, 1), 102)

	if _, err := YearOverYear(single); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("YearOverYear(one year) error = %v, want ErrInsufficientData", err)
	}

	zero := new(date.History[float64])
	zero.Append(date.New(2019, 1, 1), 0)
	zero.Append(date.New(2020, 1, 1), 105)

	if _, err := YearOverYear(zero); !errors.Is(err, ErrZeroBaseline) {
		t.Errorf("YearOverYear(zero baseline) error = %v, want ErrZeroBaseline", err)
	}
}
