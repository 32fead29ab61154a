// Package fred fetches macroeconomic series observations from the FRED
// API (Federal Reserve Economic Data, api.stlouisfed.org).
package fred

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/etnz/compound/date"
	"github.com/shopspring/decimal"
)

// DefaultURL is the public FRED API endpoint.
const DefaultURL = "https://api.stlouisfed.org"

// Client queries the FRED series observations API. Every request is
// credentialed by an API key.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient returns a Client on the given endpoint. An empty baseURL
// means the public one, a nil client means http.DefaultClient.
func NewClient(baseURL, apiKey string, client *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultURL
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &Client{baseURL: baseURL, apiKey: apiKey, http: client}
}

// Observations returns the values of a series over a date range, one
// per observation period (monthly for CPI series).
func (c *Client) Observations(series string, r date.Range) (*date.History[float64], error) {
	// https://api.stlouisfed.org/fred/series/observations?series_id=CPIAUCSL&api_key=...&file_type=json
	// {
	//   "realtime_start": "2025-01-02",
	//   "realtime_end": "2025-01-02",
	//   "observation_start": "2024-01-01",
	//   "observation_end": "2024-12-31",
	//   "units": "lin",
	//   ...
	//   "observations": [
	//     { "realtime_start": "2025-01-02", "realtime_end": "2025-01-02",
	//       "date": "2024-01-01", "value": "308.417" },
	//     { "realtime_start": "2025-01-02", "realtime_end": "2025-01-02",
	//       "date": "2024-02-01", "value": "310.326" },
	//     ...
	//   ]
	// }
	addr := fmt.Sprintf("%s/fred/series/observations?series_id=%s&api_key=%s&file_type=json&observation_start=%s&observation_end=%s",
		c.baseURL, url.QueryEscape(series), url.QueryEscape(c.apiKey), r.From, r.To)

	resp, err := c.http.Get(addr)
	if err != nil {
		return nil, fmt.Errorf("failed to download series %s from FRED: %w", series, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("failed to download series %s from FRED: received status %s", series, resp.Status)
	}

	values, err := parseObservations(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("invalid FRED payload for series %s: %w", series, err)
	}
	return values, nil
}

// parseObservations reads the FRED observations JSON format from an
// io.Reader.
func parseObservations(r io.Reader) (*date.History[float64], error) {
	var payload struct {
		Observations []struct {
			Date  date.Date `json:"date"`
			Value string    `json:"value"`
		} `json:"observations"`
	}
	if err := json.NewDecoder(r).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode observations: %w", err)
	}

	values := new(date.History[float64])
	for _, obs := range payload.Observations {
		if obs.Value == "." {
			// FRED reports a missing value as "."
			continue
		}
		v, err := decimal.NewFromString(obs.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to parse value %q for date %q: %w", obs.Value, obs.Date, err)
		}
		values.Append(obs.Date, v.InexactFloat64())
	}
	return values, nil
}
