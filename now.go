package compound

import (
	"os"
	"time"

	"github.com/etnz/compound/date"
)

// Now is the current time used to bound fetch windows and to filter the
// static tables.
// it has to be overridable so that tests can pin it to a stable date.
func Now() time.Time {
	if os.Getenv("COMPOUND_TESTING_NOW") != "" {
		t, err := time.Parse("2006-01-02 15:04:05", os.Getenv("COMPOUND_TESTING_NOW"))
		if err != nil {
			panic(err)
		}
		return t
	}
	return time.Now()
}

// Today returns the current date, honoring the testing override.
func Today() date.Date { return date.New(Now().Date()) }
