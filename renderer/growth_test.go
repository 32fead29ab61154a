package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/compound"
)

func TestGrowthMarkdown(t *testing.T) {
	s := compound.GrowthSeries{
		Dates:  []int{2019, 2020, 2021},
		Values: []float64{1, 1.1, 0.99},
	}

	got := GrowthMarkdown("S&P 500", s, compound.M(10000, "USD"))

	for _, want := range []string{
		"# S&P 500",
		"Year",
		"Value of $10,000.00",
		"2019",
		"1.1000",
		"0.9900",
		"$11,000.00",
		"$9,900.00",
		"Overall growth: -1.00% over 2 years.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("GrowthMarkdown() misses %q in:\n%s", want, got)
		}
	}
}

func TestGrowthMarkdown_withoutInitial(t *testing.T) {
	s := compound.GrowthSeries{Dates: []int{2019, 2020}, Values: []float64{1, 1.1}}

	got := GrowthMarkdown("S&P 500", s, compound.Money{})
	if strings.Contains(got, "Value of") {
		t.Errorf("GrowthMarkdown() should not project without an initial amount:\n%s", got)
	}
	if !strings.Contains(got, "Overall growth: +10.00% over 1 years.") {
		t.Errorf("GrowthMarkdown() misses the overall growth line:\n%s", got)
	}
}

func TestGrowthMarkdown_empty(t *testing.T) {
	got := GrowthMarkdown("S&P 500", compound.GrowthSeries{}, compound.Money{})
	if !strings.Contains(got, "No data available.") {
		t.Errorf("GrowthMarkdown() of an empty series should say so:\n%s", got)
	}
}

func TestDatasetsMarkdown(t *testing.T) {
	datasets := map[string]compound.GrowthSeries{
		"sp500":     {Dates: []int{2019, 2020}, Values: []float64{1, 1.1}},
		"inflation": {Dates: []int{2018, 2019, 2020}, Values: []float64{1, 1.02, 1.05}},
	}

	got := DatasetsMarkdown(datasets)

	for _, want := range []string{
		"# Compound Growth",
		"S&P 500",
		"Inflation",
		"2018",
		"2020",
		"1.0500",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("DatasetsMarkdown() misses %q in:\n%s", want, got)
		}
	}
	// The equity series has no 2018 value, the row still exists for the
	// inflation one.
	if !strings.Contains(got, "1.0200") {
		t.Errorf("DatasetsMarkdown() misses the 2019 inflation value:\n%s", got)
	}
}
