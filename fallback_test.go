package compound

import (
	"slices"
	"testing"
)

func TestTableAnnualRates(t *testing.T) {
	t.Setenv("COMPOUND_TESTING_NOW", "2024-06-15 12:00:00")

	rates, err := SampleStockReturns.AnnualRates(5)
	if err != nil {
		t.Fatalf("AnnualRates() failed: %v", err)
	}

	wantYears := []int{2019, 2020, 2021, 2022, 2023, 2024}
	if len(rates) != len(wantYears) {
		t.Fatalf("got %d rates, want %d", len(rates), len(wantYears))
	}
	for i, year := range wantYears {
		if rates[i].Year != year {
			t.Errorf("rates[%d].Year = %d want %d", i, rates[i].Year, year)
		}
		if !rates[i].Rate.Equal(SampleStockReturns[year]) {
			t.Errorf("rates[%d].Rate = %v want %v", i, rates[i].Rate, SampleStockReturns[year])
		}
	}
}

func TestTableAnnualRates_clipsToCoverage(t *testing.T) {
	t.Setenv("COMPOUND_TESTING_NOW", "2024-06-15 12:00:00")

	// The table starts in 2003, so a 50 year window only yields 22 rates.
	rates, err := SampleStockReturns.AnnualRates(50)
	if err != nil {
		t.Fatalf("AnnualRates() failed: %v", err)
	}
	if len(rates) != 22 {
		t.Fatalf("got %d rates, want 22", len(rates))
	}
	if rates[0].Year != 2003 || rates[len(rates)-1].Year != 2024 {
		t.Errorf("rates span %d-%d, want 2003-2024", rates[0].Year, rates[len(rates)-1].Year)
	}
}

func TestTableAnnualRates_outsideCoverage(t *testing.T) {
	table := Table{1980: 5}
	if rates := table.between(1990, 2000); len(rates) != 0 {
		t.Errorf("between(1990, 2000) = %v, want none", rates)
	}
}

// TestFallbackSeries pins the exact series the stock table produces for
// a 5 year window ending in 2024.
func TestFallbackSeries(t *testing.T) {
	t.Setenv("COMPOUND_TESTING_NOW", "2024-06-15 12:00:00")

	rates, err := SampleStockReturns.AnnualRates(5)
	if err != nil {
		t.Fatalf("AnnualRates() failed: %v", err)
	}
	got := NewGrowthSeries(rates)

	wantDates := []int{2018, 2019, 2020, 2021, 2022, 2023, 2024}
	wantValues := []float64{1, 1.315, 1.557, 2.0038, 1.6411, 2.0727, 2.5743}
	if !slices.Equal(got.Dates, wantDates) {
		t.Errorf("Dates = %v want %v", got.Dates, wantDates)
	}
	if !slices.Equal(got.Values, wantValues) {
		t.Errorf("Values = %v want %v", got.Values, wantValues)
	}
}

func TestFallbackInflationSeries(t *testing.T) {
	t.Setenv("COMPOUND_TESTING_NOW", "2024-06-15 12:00:00")

	rates, err := SampleInflationRates.AnnualRates(3)
	if err != nil {
		t.Fatalf("AnnualRates() failed: %v", err)
	}
	got := NewGrowthSeries(rates)

	wantDates := []int{2020, 2021, 2022, 2023, 2024}
	wantValues := []float64{1, 1.047, 1.1308, 1.1771, 1.2171}
	if !slices.Equal(got.Dates, wantDates) {
		t.Errorf("Dates = %v want %v", got.Dates, wantDates)
	}
	if !slices.Equal(got.Values, wantValues) {
		t.Errorf("Values = %v want %v", got.Values, wantValues)
	}
}
