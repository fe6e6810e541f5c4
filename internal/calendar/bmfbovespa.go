package calendar

import (
	"time"

	"github.com/guttosm/bizdays/internal/bizday"
)

// newBMFBovespa builds the B3 (Brasil, Bolsa, Balcão) exchange calendar:
// Brazilian national fixed holidays plus the Easter-derived movable ones the
// exchange closes for. B3 does not shift holidays that fall on a weekend.
func newBMFBovespa() *HolidayCalendar {
	return newCalendar("BMFBOVESPA", "B3 exchange (São Paulo) trading days", isB3Holiday)
}

// fixed national holidays, keyed by MM-DD
var b3FixedHolidays = map[string]struct{}{
	"01-01": {}, // New Year
	"04-21": {}, // Tiradentes
	"05-01": {}, // Labor Day
	"09-07": {}, // Independence Day
	"10-12": {}, // Our Lady Aparecida
	"11-02": {}, // All Souls' Day
	"11-15": {}, // Republic Proclamation
	"12-25": {}, // Christmas
}

func isB3Holiday(d time.Time) bool {
	if _, ok := b3FixedHolidays[d.Format("01-02")]; ok {
		return true
	}

	// Movable holidays, all offsets from Easter Sunday: Carnival Monday and
	// Tuesday (-48/-47), Good Friday (-2), Corpus Christi (+60).
	easter := easterSunday(d.Year())
	for _, offset := range []int{-48, -47, -2, 60} {
		if d.Equal(easter.AddDate(0, 0, offset)) {
			return true
		}
	}
	return false
}

// easterSunday returns Easter Sunday for a year using the
// Meeus/Jones/Butcher algorithm.
func easterSunday(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return bizday.DateOf(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC))
}
