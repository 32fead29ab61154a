package renderer

import (
	"bytes"
	"strconv"

	"github.com/etnz/compound"
	md "github.com/nao1215/markdown"
)

// RatesMarkdown renders annual percentage rates as a markdown table,
// one row per year.
func RatesMarkdown(title string, rates []compound.AnnualRate) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	if len(rates) == 0 {
		doc.PlainText("No data available.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Year", "Rate"},
		Rows:   [][]string{},
	}
	for _, r := range rates {
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(r.Year),
			r.Rate.SignedString(),
		})
	}
	doc.Table(table)

	return doc.String()
}
