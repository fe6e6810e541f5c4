package bizday

import (
	"errors"
	"testing"
	"time"
)

// weekdayCal is a test calendar that treats every Monday-Friday as a
// business day and carries an explicit instance key.
type weekdayCal struct {
	name string
	key  string
}

func (c weekdayCal) Name() string { return c.name }
func (c weekdayCal) Key() string  { return c.key }

func (c weekdayCal) AdvanceBusinessDays(anchor time.Time, n int64) time.Time {
	d := DateOf(anchor)
	isBusiness := func(t time.Time) bool {
		wd := t.Weekday()
		return wd != time.Saturday && wd != time.Sunday
	}
	for !isBusiness(d) {
		d = d.AddDate(0, 0, 1)
	}
	step := 1
	if n < 0 {
		step, n = -1, -n
	}
	for ; n > 0; n-- {
		d = d.AddDate(0, 0, step)
		for !isBusiness(d) {
			d = d.AddDate(0, 0, step)
		}
	}
	return d
}

// fakeResolver maps names to calendars for constructor tests.
type fakeResolver map[string]Calendar

func (r fakeResolver) Resolve(name string) (Calendar, error) {
	if c, ok := r[name]; ok {
		return c, nil
	}
	return nil, ErrUnknownCalendar
}

var (
	calA = weekdayCal{name: "TESTA", key: "testa-1"}
	calB = weekdayCal{name: "TESTB", key: "testb-1"}
)

func TestNew_Accessors(t *testing.T) {
	p := New(5, calA)
	if p.Days() != 5 {
		t.Fatalf("Days()=%d, want 5", p.Days())
	}
	if p.Calendar().Key() != calA.Key() {
		t.Fatalf("Calendar()=%v, want %v", p.Calendar(), calA)
	}
}

func TestNewFromName(t *testing.T) {
	r := fakeResolver{"TESTA": calA}

	p, err := NewFromName(-3, "TESTA", r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Days() != -3 || p.Calendar().Name() != "TESTA" {
		t.Fatalf("unexpected period: %v", p)
	}

	_, err = NewFromName(1, "NOPE", r)
	if !errors.Is(err, ErrUnknownCalendar) {
		t.Fatalf("expected ErrUnknownCalendar, got %v", err)
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		name    string
		text    string
		want    int64
		wantErr bool
	}{
		{name: "positive", text: "5", want: 5},
		{name: "negative", text: "-12", want: -12},
		{name: "zero", text: "0", want: 0},
		{name: "padded", text: "  7 ", want: 7},
		{name: "float", text: "1.5", wantErr: true},
		{name: "words", text: "three", wantErr: true},
		{name: "empty", text: "", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := Parse(tc.text, calA)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidMagnitude) {
					t.Fatalf("expected ErrInvalidMagnitude, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Days() != tc.want {
				t.Fatalf("Days()=%d, want %d", p.Days(), tc.want)
			}
		})
	}
}

func TestParseFromName(t *testing.T) {
	r := fakeResolver{"TESTA": calA}

	if _, err := ParseFromName("x", "TESTA", r); !errors.Is(err, ErrInvalidMagnitude) {
		t.Fatalf("expected ErrInvalidMagnitude, got %v", err)
	}
	if _, err := ParseFromName("3", "NOPE", r); !errors.Is(err, ErrUnknownCalendar) {
		t.Fatalf("expected ErrUnknownCalendar, got %v", err)
	}
	p, err := ParseFromName("3", "TESTA", r)
	if err != nil || p.Days() != 3 {
		t.Fatalf("unexpected: p=%v err=%v", p, err)
	}
}

func TestEqual(t *testing.T) {
	cases := []struct {
		name string
		a, b Period
		want bool
	}{
		{name: "reflexive", a: New(5, calA), b: New(5, calA), want: true},
		{name: "different magnitude", a: New(5, calA), b: New(6, calA), want: false},
		{name: "different calendar", a: New(5, calA), b: New(5, calB), want: false},
		{name: "same kind different instance", a: New(5, weekdayCal{name: "TESTA", key: "testa-1"}), b: New(5, weekdayCal{name: "TESTA", key: "testa-2"}), want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Equal(tc.b); got != tc.want {
				t.Fatalf("Equal=%v, want %v", got, tc.want)
			}
		})
	}
}

func TestHash(t *testing.T) {
	a := New(5, calA)
	b := New(5, weekdayCal{name: "other display name", key: "testa-1"})
	if a.Hash() != b.Hash() {
		t.Fatalf("equal periods must hash identically")
	}
	if a.Hash() == New(6, calA).Hash() {
		t.Fatalf("hash should depend on magnitude")
	}
	if a.Hash() == New(5, calB).Hash() {
		t.Fatalf("hash should depend on calendar key")
	}
}

func TestCompare(t *testing.T) {
	cases := []struct {
		name string
		a, b int64
		want int
	}{
		{name: "less", a: 1, b: 2, want: -1},
		{name: "equal", a: 3, b: 3, want: 0},
		{name: "greater", a: 4, b: -4, want: 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := New(tc.a, calA).Compare(New(tc.b, calA))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("Compare=%d, want %d", got, tc.want)
			}
		})
	}

	if _, err := New(1, calA).Compare(New(1, calB)); !errors.Is(err, ErrCalendarMismatch) {
		t.Fatalf("expected ErrCalendarMismatch, got %v", err)
	}
}

func TestString(t *testing.T) {
	if got := New(5, calA).String(); got != "BusinessDayPeriod(5, TESTA)" {
		t.Fatalf("String()=%q", got)
	}
	if got := New(-2, calB).String(); got != "BusinessDayPeriod(-2, TESTB)" {
		t.Fatalf("String()=%q", got)
	}
}

func TestDescribe(t *testing.T) {
	cases := []struct {
		days int64
		want string
	}{
		{days: 1, want: "1 business day (TESTA)"},
		{days: -1, want: "-1 business day (TESTA)"},
		{days: 0, want: "0 business days (TESTA)"},
		{days: 5, want: "5 business days (TESTA)"},
		{days: -10, want: "-10 business days (TESTA)"},
	}
	for _, tc := range cases {
		if got := New(tc.days, calA).Describe(); got != tc.want {
			t.Fatalf("Describe(%d)=%q, want %q", tc.days, got, tc.want)
		}
	}
}
