// Package calendar implements holiday calendars and the registry that
// resolves their short names. It is the collaborator behind the bizday
// period algebra: each HolidayCalendar is one configured instance (a handle
// compared by instance key, not by kind) and provides the business-day walk
// the period type delegates to.
package calendar

import (
	"time"

	"github.com/google/uuid"

	"github.com/guttosm/bizdays/internal/bizday"
)

// HolidayCalendar is one configured holiday calendar instance.
//
// Every instance carries a unique key, so two calendars built from the same
// rule set are still distinct handles. Saturdays and Sundays are always
// non-business days; the holiday predicate adds calendar-specific closures.
type HolidayCalendar struct {
	name        string
	description string
	key         string
	isHoliday   func(time.Time) bool
}

func newCalendar(name, description string, isHoliday func(time.Time) bool) *HolidayCalendar {
	return &HolidayCalendar{
		name:        name,
		description: description,
		key:         name + "/" + uuid.NewString(),
		isHoliday:   isHoliday,
	}
}

// NewListCalendar builds a calendar whose holidays are exactly the given
// dates (weekends are skipped regardless). This is how DB-defined custom
// calendars are registered.
func NewListCalendar(name, description string, holidays []time.Time) *HolidayCalendar {
	set := make(map[string]struct{}, len(holidays))
	for _, h := range holidays {
		set[bizday.DateOf(h).Format("2006-01-02")] = struct{}{}
	}
	return newCalendar(name, description, func(d time.Time) bool {
		_, ok := set[d.Format("2006-01-02")]
		return ok
	})
}

// Name returns the calendar's short display name.
func (c *HolidayCalendar) Name() string { return c.name }

// Description returns a one-line human description of the calendar.
func (c *HolidayCalendar) Description() string { return c.description }

// Key returns the unique instance key. Handle equality is key equality.
func (c *HolidayCalendar) Key() string { return c.key }

// IsBusinessDay reports whether t's calendar date is neither a weekend day
// nor a holiday under this calendar.
func (c *HolidayCalendar) IsBusinessDay(t time.Time) bool {
	d := bizday.DateOf(t)
	if wd := d.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return false
	}
	return !c.isHoliday(d)
}

// AdvanceBusinessDays walks n business days from anchor, negative n walking
// backward. The anchor is collapsed to its calendar date and, when it is not
// itself a business day, first rolled forward to the nearest business day;
// n == 0 therefore still normalizes the anchor.
func (c *HolidayCalendar) AdvanceBusinessDays(anchor time.Time, n int64) time.Time {
	d := bizday.DateOf(anchor)
	for !c.IsBusinessDay(d) {
		d = d.AddDate(0, 0, 1)
	}
	step := 1
	if n < 0 {
		step, n = -1, -n
	}
	for ; n > 0; n-- {
		d = d.AddDate(0, 0, step)
		for !c.IsBusinessDay(d) {
			d = d.AddDate(0, 0, step)
		}
	}
	return d
}
