package calendar

import (
	"time"

	cal "github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/aa"
	"github.com/rickar/cal/v2/us"
)

// newUSNYSE builds the New York Stock Exchange trading calendar.
//
// The NYSE observes the US federal set minus Columbus Day and Veterans Day,
// plus Good Friday. Closures that fall on a weekend are observed on the
// nearest weekday, which the rickar/cal rules already encode.
func newUSNYSE() *HolidayCalendar {
	c := cal.NewBusinessCalendar()
	c.AddHoliday(
		us.NewYear,
		us.MlkDay,
		us.PresidentsDay,
		aa.GoodFriday,
		us.MemorialDay,
		us.Juneteenth,
		us.IndependenceDay,
		us.LaborDay,
		us.ThanksgivingDay,
		us.ChristmasDay,
	)
	return newCalendar("USNYSE", "New York Stock Exchange trading days", func(d time.Time) bool {
		actual, observed, _ := c.IsHoliday(d)
		return actual || observed
	})
}
