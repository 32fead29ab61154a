package compound

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds everything the live fetch path needs. It is read once at
// startup and passed to NewService; a Service never mutates it.
type Config struct {
	// FredAPIKey authenticates against the FRED observations API. When
	// empty the inflation dataset skips the live fetch entirely and
	// serves the static table. Get a free key at
	// https://fred.stlouisfed.org/docs/api/api_key.html
	FredAPIKey string `envconfig:"FRED_API_KEY"`

	// YahooURL and FredURL are the provider endpoints. Overriding them
	// is only useful to point a test at a local server.
	YahooURL string `envconfig:"COMPOUND_YAHOO_URL" default:"https://query1.finance.yahoo.com"`
	FredURL  string `envconfig:"COMPOUND_FRED_URL" default:"https://api.stlouisfed.org"`

	// Timeout bounds every provider request.
	Timeout time.Duration `envconfig:"COMPOUND_HTTP_TIMEOUT" default:"30s"`
}

// FromEnv returns the configuration read from the environment.
func FromEnv() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
