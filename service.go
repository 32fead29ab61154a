package compound

import (
	"log"
	"sync"

	"github.com/etnz/compound/fred"
	"github.com/etnz/compound/yahoo"
)

// DefaultYears is the lookback horizon used when the caller passes a
// non-positive number of years.
const DefaultYears = 20

// Symbols and series identifiers behind each dataset.
const (
	// SP500Symbol is the S&P 500 index on Yahoo Finance.
	SP500Symbol = "^GSPC"
	// USTotalMarketSymbol proxies the US total stock market (VTI ETF).
	USTotalMarketSymbol = "VTI"
	// GlobalMarketSymbol proxies the global stock market (VT ETF).
	GlobalMarketSymbol = "VT"
	// CPISeries is the FRED series id of the Consumer Price Index for
	// All Urban Consumers.
	CPISeries = "CPIAUCSL"
)

// Service serves the four datasets. Its methods never fail: any error
// on the live path is logged with the dataset label and the static
// table is served instead, so a caller always receives a well-formed
// (possibly empty) GrowthSeries.
type Service struct {
	yahoo   *yahoo.Client
	fred    *fred.Client
	fredKey string
}

// NewService creates a Service from the given configuration.
func NewService(cfg Config) *Service {
	client := newDailyCachingClient()
	client.Timeout = cfg.Timeout
	return &Service{
		yahoo:   yahoo.NewClient(cfg.YahooURL, client),
		fred:    fred.NewClient(cfg.FredURL, cfg.FredAPIKey, client),
		fredKey: cfg.FredAPIKey,
	}
}

// SP500 returns the compounded growth of the S&P 500 index over the
// last years.
func (s *Service) SP500(years int) GrowthSeries {
	return s.equity(SP500Symbol, "S&P 500", years)
}

// USTotalMarket returns the compounded growth of the US total stock
// market over the last years.
func (s *Service) USTotalMarket(years int) GrowthSeries {
	return s.equity(USTotalMarketSymbol, "US Total Market", years)
}

// GlobalMarket returns the compounded growth of the global stock market
// over the last years.
func (s *Service) GlobalMarket(years int) GrowthSeries {
	return s.equity(GlobalMarketSymbol, "Global Market", years)
}

func (s *Service) equity(symbol, label string, years int) GrowthSeries {
	return s.dataset(&equitySource{client: s.yahoo, symbol: symbol}, SampleStockReturns, label, years)
}

// Inflation returns the compounded CPI-based inflation over the last
// years. Without a FRED API key it serves the static table directly,
// that is an expected configuration, not a failure.
func (s *Service) Inflation(years int) GrowthSeries {
	if years <= 0 {
		years = DefaultYears
	}
	if s.fredKey == "" {
		log.Println("FRED API key not set. Using fallback inflation data.")
		rates, _ := SampleInflationRates.AnnualRates(years)
		return NewGrowthSeries(rates)
	}
	return s.dataset(&macroSource{client: s.fred, series: CPISeries}, SampleInflationRates, "FRED", years)
}

// dataset runs the live source and degrades to the fallback one on any
// error. The error never reaches the caller.
func (s *Service) dataset(live, fallback RateSource, label string, years int) GrowthSeries {
	if years <= 0 {
		years = DefaultYears
	}
	rates, err := live.AnnualRates(years)
	if err != nil {
		log.Printf("Error fetching %s data: %v", label, err)
		rates, _ = fallback.AnnualRates(years)
	}
	return NewGrowthSeries(rates)
}

// Datasets fetches all four datasets concurrently and returns them
// keyed by name: "sp500", "us_total_market", "global_market" and
// "inflation". One dataset falling back does not affect the others.
func (s *Service) Datasets(years int) map[string]GrowthSeries {
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		result = make(map[string]GrowthSeries, 4)
	)
	fetch := func(name string, dataset func(int) GrowthSeries) {
		defer wg.Done()
		series := dataset(years)
		mu.Lock()
		result[name] = series
		mu.Unlock()
	}
	wg.Add(4)
	go fetch("sp500", s.SP500)
	go fetch("us_total_market", s.USTotalMarket)
	go fetch("global_market", s.GlobalMarket)
	go fetch("inflation", s.Inflation)
	wg.Wait()
	return result
}
