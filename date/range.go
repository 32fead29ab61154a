package date

// Range represents a range of dates, boundaries included.
type Range struct{ From, To Date }

// NewRange creates a new date range. If 'from' is after 'to', they are swapped.
func NewRange(from, to Date) Range {
	if from.After(to) {
		from, to = to, from
	}
	return Range{From: from, To: to}
}

// LastYears returns the range covering the given number of years back from 'to'.
//
// The window is a plain 365-day year multiple, the way data providers
// expect it, not a calendar-exact one.
func LastYears(to Date, years int) Range {
	return NewRange(to.Add(-years*365), to)
}

// Contains return true date is included in the range (boundaries included)
func (r Range) Contains(date Date) bool { return (!date.Before(r.From) && !date.After(r.To)) }

func (r Range) String() string { return r.From.String() + ".." + r.To.String() }
