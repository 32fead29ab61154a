// Package yahoo fetches historical daily prices from the Yahoo Finance
// chart API.
package yahoo

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/compound/date"
)

// DefaultURL is the public chart API endpoint.
const DefaultURL = "https://query1.finance.yahoo.com"

// Client queries the Yahoo Finance chart API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a Client on the given endpoint. An empty baseURL
// means the public one, a nil client means http.DefaultClient.
func NewClient(baseURL string, client *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{baseURL: baseURL, http: client}
}

// Daily returns the daily closing prices of a symbol over a date range.
func (c *Client) Daily(symbol string, r date.Range) (*date.History[float64], error) {
	// https://query1.finance.yahoo.com/v8/finance/chart/%5EGSPC?period1=1577836800&period2=1580515200&interval=1d
	// {
	//   "chart": {
	//     "result": [
	//       {
	//         "meta": { "currency": "USD", "symbol": "^GSPC", ... },
	//         "timestamp": [ 1577977800, 1578064200 ],
	//         "indicators": {
	//           "quote": [ { "close": [ 3257.85, 3234.85 ], "open": [...], ... } ],
	//           "adjclose": [ { "adjclose": [ 3257.85, 3234.85 ] } ]
	//         }
	//       }
	//     ],
	//     "error": null
	//   }
	// }
	addr := fmt.Sprintf("%s/v8/finance/chart/%s?period1=%d&period2=%d&interval=1d",
		c.baseURL, url.PathEscape(symbol), r.From.Unix(), r.To.Unix())

	var jobj any
	if err := jwget(c.http, addr, &jobj); err != nil {
		return nil, fmt.Errorf("cannot fetch chart for %q: %w", symbol, err)
	}
	return parseChart(symbol, jobj)
}

// parseChart extracts the daily close series from a decoded chart
// payload.
func parseChart(symbol string, jobj any) (*date.History[float64], error) {
	// A rejected symbol still comes back with status 200, the error is
	// in the payload.
	if jdesc, err := jsonpath.Get("$.chart.error.description", jobj); err == nil {
		if desc, ok := jdesc.(string); ok && desc != "" {
			return nil, fmt.Errorf("chart API error for %q: %s", symbol, desc)
		}
	}

	jstamps, err := jsonpath.Get("$.chart.result[0].timestamp", jobj)
	if err != nil {
		return nil, fmt.Errorf("no timestamps in chart for %q: %w", symbol, err)
	}
	// Prefer the split and dividend adjusted closes, fall back to the
	// raw quote closes when the payload does not carry them.
	jcloses, err := jsonpath.Get("$.chart.result[0].indicators.adjclose[0].adjclose", jobj)
	if err != nil {
		jcloses, err = jsonpath.Get("$.chart.result[0].indicators.quote[0].close", jobj)
	}
	if err != nil {
		return nil, fmt.Errorf("no closing prices in chart for %q: %w", symbol, err)
	}

	stamps, ok := jstamps.([]any)
	if !ok {
		return nil, fmt.Errorf("timestamps in chart for %q are not a list but %T", symbol, jstamps)
	}
	closes, ok := jcloses.([]any)
	if !ok {
		return nil, fmt.Errorf("closing prices in chart for %q are not a list but %T", symbol, jcloses)
	}
	if len(stamps) != len(closes) {
		return nil, fmt.Errorf("chart for %q has %d timestamps but %d closing prices", symbol, len(stamps), len(closes))
	}

	prices := new(date.History[float64])
	for i, jstamp := range stamps {
		stamp, ok := jstamp.(float64)
		if !ok {
			return nil, fmt.Errorf("timestamp %v in chart for %q is not a number but %T", jstamp, symbol, jstamp)
		}
		price, ok := closes[i].(float64)
		if !ok {
			// null closes happen on half-open trading days, skip them
			continue
		}
		prices.Append(date.FromUnix(int64(stamp)), price)
	}
	return prices, nil
}
