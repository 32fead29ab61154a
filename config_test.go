package compound

import (
	"testing"
	"time"
)

func TestFromEnv(t *testing.T) {
	t.Setenv("FRED_API_KEY", "secret")
	t.Setenv("COMPOUND_YAHOO_URL", "http://localhost:9999")
	t.Setenv("COMPOUND_HTTP_TIMEOUT", "3s")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv() failed: %v", err)
	}
	if cfg.FredAPIKey != "secret" {
		t.Errorf("FredAPIKey = %q want %q", cfg.FredAPIKey, "secret")
	}
	if cfg.YahooURL != "http://localhost:9999" {
		t.Errorf("YahooURL = %q want %q", cfg.YahooURL, "http://localhost:9999")
	}
	if cfg.Timeout != 3*time.Second {
		t.Errorf("Timeout = %v want %v", cfg.Timeout, 3*time.Second)
	}
	if cfg.FredURL != "https://api.stlouisfed.org" {
		t.Errorf("FredURL = %q, want the default endpoint", cfg.FredURL)
	}
}

func TestFromEnv_badTimeout(t *testing.T) {
	t.Setenv("COMPOUND_HTTP_TIMEOUT", "not a duration")
	if _, err := FromEnv(); err == nil {
		t.Errorf("FromEnv() should fail on an unparsable timeout")
	}
}
