package bizday

import "time"

// DateOf collapses a timestamp to its calendar date: midnight UTC of the
// year/month/day it carries. Combining a period with a finer-grained
// timestamp deliberately narrows it to a date; the time of day never
// survives the operation.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AddToDate advances t by the period's signed magnitude under the period's
// calendar and returns the resulting date (midnight UTC). Addition of a date
// and a period is commutative by definition.
//
// A zero-magnitude period still consults the calendar: if t falls on a
// weekend or holiday the roll-forward convention applies, so the result can
// differ from t.
func (p Period) AddToDate(t time.Time) time.Time {
	return p.cal.AdvanceBusinessDays(DateOf(t), p.days)
}

// SubFromDate walks the period's magnitude backward from t. It is exactly
// AddToDate of the negated period.
func (p Period) SubFromDate(t time.Time) time.Time {
	return p.Neg().AddToDate(t)
}

// ApplyToDates applies the period as an atomic scalar to every date in the
// slice. The period participates as a single unit; it is never iterated
// element-wise against the dates.
func (p Period) ApplyToDates(dates []time.Time) []time.Time {
	out := make([]time.Time, len(dates))
	for i, d := range dates {
		out[i] = p.AddToDate(d)
	}
	return out
}
