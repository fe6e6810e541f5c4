// Package bizday implements an immutable business-day period value: a signed
// count of business days tagged with the holiday calendar it is measured
// against, plus the arithmetic and comparison algebra over that value and the
// bridge that applies a period to a calendar date.
//
// The package does not decide what counts as a holiday. That is the job of
// the Calendar collaborator; bizday only requires the single date primitive
// AdvanceBusinessDays and a value-comparable instance key.
package bizday

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
	"time"
)

// Calendar is an opaque handle for one configured holiday calendar instance.
//
// Two handles identify the same calendar iff their keys are equal. Two
// instances of the same kind configured with different parameters (for
// example region variants) carry different keys and are distinct calendars.
type Calendar interface {
	// Name returns the calendar's short display name (e.g. "USNYSE").
	Name() string

	// Key uniquely identifies this configured instance. Handle equality is
	// key equality, never kind equality.
	Key() string

	// AdvanceBusinessDays walks n business days from anchor; negative n
	// walks backward. An anchor that is not itself a business day is first
	// rolled forward to the nearest business day, so n == 0 still
	// normalizes the anchor instead of being a no-op.
	AdvanceBusinessDays(anchor time.Time, n int64) time.Time
}

// Resolver resolves a calendar short name into a handle. The calendar
// registry satisfies this interface.
type Resolver interface {
	Resolve(name string) (Calendar, error)
}

// Period is an immutable signed count of business days on a specific
// calendar. The zero value is not usable; construct periods with New,
// NewFromName, Parse or ParseFromName. Every operation returns a new value,
// so a Period is safe to share between goroutines.
type Period struct {
	days int64
	cal  Calendar
}

// New builds a period of days business days on the given calendar.
func New(days int64, cal Calendar) Period {
	return Period{days: days, cal: cal}
}

// NewFromName builds a period on the calendar registered under name,
// resolving it through r. It fails with ErrUnknownCalendar when the name
// does not resolve.
func NewFromName(days int64, name string, r Resolver) (Period, error) {
	cal, err := r.Resolve(name)
	if err != nil {
		return Period{}, err
	}
	return Period{days: days, cal: cal}, nil
}

// Parse builds a period from a textual magnitude on the given calendar.
// It fails with ErrInvalidMagnitude when text is not a signed integer.
func Parse(text string, cal Calendar) (Period, error) {
	days, err := parseMagnitude(text)
	if err != nil {
		return Period{}, err
	}
	return Period{days: days, cal: cal}, nil
}

// ParseFromName combines Parse and NewFromName: both the magnitude text and
// the calendar name are validated, the magnitude first.
func ParseFromName(text, name string, r Resolver) (Period, error) {
	days, err := parseMagnitude(text)
	if err != nil {
		return Period{}, err
	}
	return NewFromName(days, name, r)
}

func parseMagnitude(text string) (int64, error) {
	days, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer business-day count", ErrInvalidMagnitude, text)
	}
	return days, nil
}

// Days returns the signed business-day count.
func (p Period) Days() int64 { return p.days }

// Calendar returns the calendar handle the period is measured against.
func (p Period) Calendar() Calendar { return p.cal }

// Equal reports whether p and q have equal magnitudes and equal calendar
// handles. Same-kind calendars with different keys are not equal.
func (p Period) Equal(q Period) bool {
	return p.days == q.days && calendarKey(p.cal) == calendarKey(q.cal)
}

// Hash returns a hash combining the calendar key and the magnitude. Equal
// periods hash identically, so the hash is suitable for set and map
// membership.
func (p Period) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(calendarKey(p.cal)))
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(p.days))
	_, _ = h.Write(buf[:])
	return h.Sum64()
}

// Compare orders p against q by magnitude. It returns -1, 0 or +1, and fails
// with ErrCalendarMismatch when the calendars differ.
func (p Period) Compare(q Period) (int, error) {
	if err := p.requireSameCalendar(q); err != nil {
		return 0, err
	}
	switch {
	case p.days < q.days:
		return -1, nil
	case p.days > q.days:
		return 1, nil
	default:
		return 0, nil
	}
}

// String renders the compact form, e.g. "BusinessDayPeriod(5, USNYSE)".
func (p Period) String() string {
	return fmt.Sprintf("BusinessDayPeriod(%d, %s)", p.days, calendarName(p.cal))
}

// Describe renders the descriptive form, e.g. "5 business days (USNYSE)".
// The unit is singular only when the magnitude is 1 or -1.
func (p Period) Describe() string {
	unit := "business days"
	if p.days == 1 || p.days == -1 {
		unit = "business day"
	}
	return fmt.Sprintf("%d %s (%s)", p.days, unit, calendarName(p.cal))
}

// requireSameCalendar is the guard applied by every binary operation.
func (p Period) requireSameCalendar(q Period) error {
	if calendarKey(p.cal) != calendarKey(q.cal) {
		return fmt.Errorf("%w: %s vs %s", ErrCalendarMismatch, calendarName(p.cal), calendarName(q.cal))
	}
	return nil
}

func calendarKey(c Calendar) string {
	if c == nil {
		return ""
	}
	return c.Key()
}

func calendarName(c Calendar) string {
	if c == nil {
		return "<nil>"
	}
	return c.Name()
}
