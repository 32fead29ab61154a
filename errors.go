package compound

import "errors"

// Errors reported by the aggregation functions. They end a live fetch
// the same way a transport error does: the caller logs them and serves
// the static table instead.
var (
	// ErrInsufficientData is returned when a fetched series has no year
	// with enough observations to compute a rate.
	ErrInsufficientData = errors.New("insufficient data to compute an annual rate")

	// ErrZeroBaseline is returned when a year-over-year rate would
	// divide by a zero prior-year mean.
	ErrZeroBaseline = errors.New("zero baseline in year-over-year rate")
)
