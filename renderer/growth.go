package renderer

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"

	"github.com/etnz/compound"
	md "github.com/nao1215/markdown"
)

// GrowthMarkdown renders a growth series as a markdown table, one row
// per year. When initial is a non-zero amount a third column projects
// it through the series.
func GrowthMarkdown(title string, s compound.GrowthSeries, initial compound.Money) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	if s.IsEmpty() {
		doc.PlainText("No data available.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Year", "Growth"},
		Rows:   [][]string{},
	}

	var projection []compound.Money
	if !initial.IsZero() {
		table.Alignment = append(table.Alignment, md.AlignRight)
		table.Header = append(table.Header, fmt.Sprintf("Value of %s", initial))
		projection = s.Projection(initial)
	}

	for i, year := range s.Dates {
		row := []string{
			strconv.Itoa(year),
			fmt.Sprintf("%.4f", s.Values[i]),
		}
		if projection != nil {
			row = append(row, projection[i].String())
		}
		table.Rows = append(table.Rows, row)
	}
	doc.Table(table)

	doc.PlainText(fmt.Sprintf("Overall growth: %s over %d years.", s.Growth().SignedString(), len(s.Dates)-1))

	return doc.String()
}

// datasetColumns fixes the column order and headers of the combined
// table.
var datasetColumns = []struct {
	key    string
	header string
}{
	{"sp500", "S&P 500"},
	{"us_total_market", "US Total Market"},
	{"global_market", "Global Market"},
	{"inflation", "Inflation"},
}

// DatasetsMarkdown renders every dataset in a single table, one column
// per dataset, on the union of their years. A dataset without a value
// for a year leaves the cell empty.
func DatasetsMarkdown(datasets map[string]compound.GrowthSeries) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Compound Growth")

	byYear := make(map[string]map[int]float64, len(datasets))
	seen := make(map[int]bool)
	for key, s := range datasets {
		values := make(map[int]float64, len(s.Dates))
		for i, year := range s.Dates {
			values[year] = s.Values[i]
			seen[year] = true
		}
		byYear[key] = values
	}
	years := make([]int, 0, len(seen))
	for year := range seen {
		years = append(years, year)
	}
	sort.Ints(years)

	if len(years) == 0 {
		doc.PlainText("No data available.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft},
		Header:    []string{"Year"},
		Rows:      [][]string{},
	}
	for _, col := range datasetColumns {
		if _, ok := datasets[col.key]; !ok {
			continue
		}
		table.Alignment = append(table.Alignment, md.AlignRight)
		table.Header = append(table.Header, col.header)
	}

	for _, year := range years {
		row := []string{strconv.Itoa(year)}
		for _, col := range datasetColumns {
			if _, ok := datasets[col.key]; !ok {
				continue
			}
			if value, ok := byYear[col.key][year]; ok {
				row = append(row, fmt.Sprintf("%.4f", value))
			} else {
				row = append(row, "")
			}
		}
		table.Rows = append(table.Rows, row)
	}
	doc.Table(table)

	return doc.String()
}
