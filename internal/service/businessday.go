package service

import (
	"context"
	"fmt"
	"time"

	"github.com/guttosm/bizdays/internal/bizday"
	"github.com/guttosm/bizdays/internal/calendar"
	"github.com/guttosm/bizdays/internal/domain/models"
)

// BusinessDayService defines business logic for business-day queries.
type BusinessDayService interface {
	// Advance walks days business days from anchor under the named calendar.
	Advance(ctx context.Context, calendarName string, anchor time.Time, days int64) (time.Time, error)
	// Count returns the number of business days in the inclusive date range
	// [from, to] under the named calendar.
	Count(ctx context.Context, calendarName string, from, to time.Time) (int, error)
	// Calendars lists the registered calendars.
	Calendars(ctx context.Context) []models.CalendarInfo
}

type businessDayService struct {
	registry *calendar.Registry
}

func NewBusinessDayService(registry *calendar.Registry) BusinessDayService {
	return &businessDayService{registry: registry}
}

func (s *businessDayService) Advance(_ context.Context, calendarName string, anchor time.Time, days int64) (time.Time, error) {
	p, err := bizday.NewFromName(days, calendarName, s.registry)
	if err != nil {
		return time.Time{}, err
	}
	return p.AddToDate(anchor), nil
}

func (s *businessDayService) Count(_ context.Context, calendarName string, from, to time.Time) (int, error) {
	c, ok := s.registry.Get(calendarName)
	if !ok {
		return 0, fmt.Errorf("%w: %q", bizday.ErrUnknownCalendar, calendarName)
	}

	count := 0
	for d := bizday.DateOf(from); !d.After(bizday.DateOf(to)); d = d.AddDate(0, 0, 1) {
		if c.IsBusinessDay(d) {
			count++
		}
	}
	return count, nil
}

func (s *businessDayService) Calendars(_ context.Context) []models.CalendarInfo {
	all := s.registry.All()
	out := make([]models.CalendarInfo, 0, len(all))
	for _, c := range all {
		out = append(out, models.CalendarInfo{Name: c.Name(), Description: c.Description()})
	}
	return out
}
