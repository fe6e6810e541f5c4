package calendar

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/guttosm/bizdays/internal/bizday"
)

// Registry maps short names to calendar instances. It is safe for
// concurrent use; registration replaces any previous calendar under the
// same name with a fresh handle.
type Registry struct {
	mu   sync.RWMutex
	cals map[string]*HolidayCalendar
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{cals: make(map[string]*HolidayCalendar)}
}

// DefaultRegistry returns a registry with the built-in calendars:
// USNYSE, BMFBOVESPA and WeekendsOnly.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(newUSNYSE())
	r.Register(newBMFBovespa())
	r.Register(newWeekendsOnly())
	return r
}

// Register adds c under its own name.
func (r *Registry) Register(c *HolidayCalendar) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cals[c.name] = c
}

// Resolve returns the calendar registered under name as a bizday handle.
// It satisfies bizday.Resolver and fails with bizday.ErrUnknownCalendar for
// unregistered names.
func (r *Registry) Resolve(name string) (bizday.Calendar, error) {
	c, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", bizday.ErrUnknownCalendar, name)
	}
	return c, nil
}

// Get returns the concrete calendar registered under name.
func (r *Registry) Get(name string) (*HolidayCalendar, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.cals[name]
	return c, ok
}

// All returns the registered calendars sorted by name.
func (r *Registry) All() []*HolidayCalendar {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*HolidayCalendar, 0, len(r.cals))
	for _, c := range r.cals {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

func newWeekendsOnly() *HolidayCalendar {
	return newCalendar("WeekendsOnly", "Monday to Friday, no holidays", func(time.Time) bool { return false })
}
