package bizday

import (
	"fmt"
	"math"
)

// RoundingMode selects how integer division rounds a non-exact quotient.
type RoundingMode int

const (
	// RoundTrunc rounds toward zero (the convention of Go's / operator).
	RoundTrunc RoundingMode = iota
	// RoundFloor rounds toward negative infinity.
	RoundFloor
	// RoundCeil rounds toward positive infinity.
	RoundCeil
)

// Add returns p + q. Fails with ErrCalendarMismatch when the calendars differ.
func (p Period) Add(q Period) (Period, error) {
	if err := p.requireSameCalendar(q); err != nil {
		return Period{}, err
	}
	return Period{days: p.days + q.days, cal: p.cal}, nil
}

// Sub returns p - q. Fails with ErrCalendarMismatch when the calendars differ.
func (p Period) Sub(q Period) (Period, error) {
	if err := p.requireSameCalendar(q); err != nil {
		return Period{}, err
	}
	return Period{days: p.days - q.days, cal: p.cal}, nil
}

// Mod returns p modulo q with the result taking the sign of the divisor
// (floored modulo): -10 mod 3 is 2, and 10 mod -3 is -2.
func (p Period) Mod(q Period) (Period, error) {
	if err := p.requireSameCalendar(q); err != nil {
		return Period{}, err
	}
	if q.days == 0 {
		return Period{}, fmt.Errorf("%w: %s mod zero period", ErrDivisionByZero, p)
	}
	return Period{days: floorMod(p.days, q.days), cal: p.cal}, nil
}

// Rem returns the remainder of p / q with the result taking the sign of the
// dividend (truncated remainder): -10 rem 3 is -1.
func (p Period) Rem(q Period) (Period, error) {
	if err := p.requireSameCalendar(q); err != nil {
		return Period{}, err
	}
	if q.days == 0 {
		return Period{}, fmt.Errorf("%w: %s rem zero period", ErrDivisionByZero, p)
	}
	return Period{days: p.days % q.days, cal: p.cal}, nil
}

// GCD returns the greatest common divisor of the two magnitudes as a
// non-negative period on the shared calendar. GCD of two zero periods is the
// zero period.
func (p Period) GCD(q Period) (Period, error) {
	if err := p.requireSameCalendar(q); err != nil {
		return Period{}, err
	}
	return Period{days: gcd(p.days, q.days), cal: p.cal}, nil
}

// LCM returns the least common multiple of the two magnitudes as a
// non-negative period on the shared calendar. LCM is zero when either
// magnitude is zero.
func (p Period) LCM(q Period) (Period, error) {
	if err := p.requireSameCalendar(q); err != nil {
		return Period{}, err
	}
	if p.days == 0 || q.days == 0 {
		return Period{days: 0, cal: p.cal}, nil
	}
	g := gcd(p.days, q.days)
	l := abs64(p.days/g) * abs64(q.days)
	return Period{days: l, cal: p.cal}, nil
}

// GCDX returns the extended gcd of p and q: the gcd as a period plus the two
// Bézout coefficients u and v satisfying p*u + q*v == gcd. The coefficients
// are plain integers, not periods.
func (p Period) GCDX(q Period) (Period, int64, int64, error) {
	if err := p.requireSameCalendar(q); err != nil {
		return Period{}, 0, 0, err
	}
	g, u, v := gcdx(p.days, q.days)
	return Period{days: g, cal: p.cal}, u, v, nil
}

// Neg returns the period with negated magnitude on the same calendar.
func (p Period) Neg() Period {
	return Period{days: -p.days, cal: p.cal}
}

// Abs returns the period with absolute magnitude on the same calendar.
func (p Period) Abs() Period {
	return Period{days: abs64(p.days), cal: p.cal}
}

// Zero returns the zero-magnitude period on p's calendar. The type has no
// calendar-free default, so zero construction always needs a calendar source.
func (p Period) Zero() Period {
	return Period{days: 0, cal: p.cal}
}

// Sign returns -1, 0 or +1 as a plain integer.
func (p Period) Sign() int {
	switch {
	case p.days < 0:
		return -1
	case p.days > 0:
		return 1
	default:
		return 0
	}
}

// IsZero reports whether the magnitude is zero.
func (p Period) IsZero() bool { return p.days == 0 }

// MulScalar returns p scaled by f. The scaled magnitude must be an exact
// representable integer; otherwise the call fails with ErrInexactResult.
// The multiplicative identity of a period is the plain scalar 1, not a
// one-business-day period.
func (p Period) MulScalar(f float64) (Period, error) {
	r := float64(p.days) * f
	if !isExactInt64(r) {
		return Period{}, fmt.Errorf("%w: %d * %v is not an integer business-day count", ErrInexactResult, p.days, f)
	}
	return Period{days: int64(r), cal: p.cal}, nil
}

// DivScalar returns p divided by f. The quotient must be an exact integer;
// a non-integer quotient fails with ErrInexactResult instead of being
// truncated. Use Div for explicit rounding.
func (p Period) DivScalar(f float64) (Period, error) {
	if f == 0 {
		return Period{}, fmt.Errorf("%w: %s / 0", ErrDivisionByZero, p)
	}
	r := float64(p.days) / f
	if !isExactInt64(r) {
		return Period{}, fmt.Errorf("%w: %d / %v is not an integer business-day count", ErrInexactResult, p.days, f)
	}
	return Period{days: int64(r), cal: p.cal}, nil
}

// Div returns p divided by the integer n, rounded per mode.
func (p Period) Div(n int64, mode RoundingMode) (Period, error) {
	if n == 0 {
		return Period{}, fmt.Errorf("%w: %s div 0", ErrDivisionByZero, p)
	}
	return Period{days: divRound(p.days, n, mode), cal: p.cal}, nil
}

// DivPeriod returns p divided by q, rounded per mode, as a period on the
// shared calendar. Fails with ErrCalendarMismatch when the calendars differ.
func (p Period) DivPeriod(q Period, mode RoundingMode) (Period, error) {
	if err := p.requireSameCalendar(q); err != nil {
		return Period{}, err
	}
	if q.days == 0 {
		return Period{}, fmt.Errorf("%w: %s div zero period", ErrDivisionByZero, p)
	}
	return Period{days: divRound(p.days, q.days, mode), cal: p.cal}, nil
}

// Ratio returns the plain real-number ratio of the two magnitudes. Ratios of
// two like-dimensioned quantities are dimensionless, so this is the one
// operator whose result is not a period.
func (p Period) Ratio(q Period) (float64, error) {
	if err := p.requireSameCalendar(q); err != nil {
		return 0, err
	}
	if q.days == 0 {
		return 0, fmt.Errorf("%w: %s / zero period", ErrDivisionByZero, p)
	}
	return float64(p.days) / float64(q.days), nil
}

func abs64(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

// floorMod returns a mod b with the sign of b.
func floorMod(a, b int64) int64 {
	return ((a % b) + b) % b
}

func divRound(a, b int64, mode RoundingMode) int64 {
	q := a / b
	if a%b == 0 {
		return q
	}
	sameSign := (a < 0) == (b < 0)
	switch mode {
	case RoundFloor:
		if !sameSign {
			q--
		}
	case RoundCeil:
		if sameSign {
			q++
		}
	}
	return q
}

func gcd(a, b int64) int64 {
	a, b = abs64(a), abs64(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// gcdx is the iterative extended Euclidean algorithm. The returned gcd is
// non-negative and a*u + b*v == g holds for any signs of a and b.
func gcdx(a, b int64) (g, u, v int64) {
	oldR, r := a, b
	oldS, s := int64(1), int64(0)
	oldT, t := int64(0), int64(1)
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
		oldT, t = t, oldT-q*t
	}
	if oldR < 0 {
		oldR, oldS, oldT = -oldR, -oldS, -oldT
	}
	return oldR, oldS, oldT
}

// isExactInt64 reports whether f is an integer value representable as int64.
func isExactInt64(f float64) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return false
	}
	return f >= math.MinInt64 && f < math.MaxInt64
}
