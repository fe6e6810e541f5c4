package bizday

import (
	"errors"
	"math"
	"testing"
)

func TestAddSub(t *testing.T) {
	p := New(7, calA)
	q := New(-3, calA)

	sum, err := p.Add(q)
	if err != nil || sum.Days() != 4 {
		t.Fatalf("Add: got %v err=%v", sum, err)
	}

	// Commutativity
	sum2, _ := q.Add(p)
	if !sum.Equal(sum2) {
		t.Fatalf("p+q != q+p: %v vs %v", sum, sum2)
	}

	// (p - q) + q == p
	diff, err := p.Sub(q)
	if err != nil || diff.Days() != 10 {
		t.Fatalf("Sub: got %v err=%v", diff, err)
	}
	back, _ := diff.Add(q)
	if !back.Equal(p) {
		t.Fatalf("(p-q)+q=%v, want %v", back, p)
	}
}

func TestModRem_SignConventions(t *testing.T) {
	cases := []struct {
		name     string
		a, b     int64
		wantMod  int64
		wantRem  int64
	}{
		{name: "both positive", a: 10, b: 3, wantMod: 1, wantRem: 1},
		{name: "negative dividend", a: -10, b: 3, wantMod: 2, wantRem: -1},
		{name: "negative divisor", a: 10, b: -3, wantMod: -2, wantRem: 1},
		{name: "both negative", a: -10, b: -3, wantMod: -1, wantRem: -1},
		{name: "exact", a: 9, b: 3, wantMod: 0, wantRem: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, q := New(tc.a, calA), New(tc.b, calA)
			m, err := p.Mod(q)
			if err != nil || m.Days() != tc.wantMod {
				t.Fatalf("Mod: got %v err=%v, want %d", m, err, tc.wantMod)
			}
			r, err := p.Rem(q)
			if err != nil || r.Days() != tc.wantRem {
				t.Fatalf("Rem: got %v err=%v, want %d", r, err, tc.wantRem)
			}
		})
	}

	if _, err := New(1, calA).Mod(New(0, calA)); !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("Mod by zero: %v", err)
	}
	if _, err := New(1, calA).Rem(New(0, calA)); !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("Rem by zero: %v", err)
	}
}

func TestGCD_LCM(t *testing.T) {
	cases := []struct {
		name    string
		a, b    int64
		wantGCD int64
		wantLCM int64
	}{
		{name: "simple", a: 10, b: 4, wantGCD: 2, wantLCM: 20},
		{name: "negatives", a: -10, b: 4, wantGCD: 2, wantLCM: 20},
		{name: "coprime", a: 3, b: 7, wantGCD: 1, wantLCM: 21},
		{name: "one zero", a: 0, b: 5, wantGCD: 5, wantLCM: 0},
		{name: "both zero", a: 0, b: 0, wantGCD: 0, wantLCM: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, q := New(tc.a, calA), New(tc.b, calA)
			g, err := p.GCD(q)
			if err != nil || g.Days() != tc.wantGCD {
				t.Fatalf("GCD: got %v err=%v, want %d", g, err, tc.wantGCD)
			}
			l, err := p.LCM(q)
			if err != nil || l.Days() != tc.wantLCM {
				t.Fatalf("LCM: got %v err=%v, want %d", l, err, tc.wantLCM)
			}
		})
	}
}

func TestGCDX(t *testing.T) {
	g, u, v, err := New(10, calA).GCDX(New(4, calA))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.Days() != 2 || u != 1 || v != -2 {
		t.Fatalf("GCDX(10,4)=(%d,%d,%d), want (2,1,-2)", g.Days(), u, v)
	}

	// Bézout identity must hold for arbitrary sign combinations.
	pairs := [][2]int64{{10, 4}, {-10, 4}, {10, -4}, {-10, -4}, {0, 6}, {6, 0}}
	for _, pr := range pairs {
		g, u, v, err := New(pr[0], calA).GCDX(New(pr[1], calA))
		if err != nil {
			t.Fatalf("gcdx(%d,%d): %v", pr[0], pr[1], err)
		}
		if g.Days() < 0 {
			t.Fatalf("gcdx(%d,%d): negative gcd %d", pr[0], pr[1], g.Days())
		}
		if pr[0]*u+pr[1]*v != g.Days() {
			t.Fatalf("gcdx(%d,%d): %d*%d + %d*%d != %d", pr[0], pr[1], pr[0], u, pr[1], v, g.Days())
		}
	}
}

func TestUnaryHelpers(t *testing.T) {
	p := New(-10, calA)

	if n := p.Neg(); n.Days() != 10 || n.Calendar().Key() != calA.Key() {
		t.Fatalf("Neg: %v", n)
	}
	if !p.Neg().Neg().Equal(p) {
		t.Fatalf("-(-p) != p")
	}
	if a := p.Abs(); a.Days() != 10 {
		t.Fatalf("Abs: %v", a)
	}
	z := p.Zero()
	if !z.IsZero() || z.Calendar().Key() != calA.Key() {
		t.Fatalf("Zero: %v", z)
	}
	if p.Sign() != -1 || z.Sign() != 0 || p.Abs().Sign() != 1 {
		t.Fatalf("Sign: %d %d %d", p.Sign(), z.Sign(), p.Abs().Sign())
	}
}

func TestMulScalar(t *testing.T) {
	cases := []struct {
		name    string
		days    int64
		f       float64
		want    int64
		wantErr bool
	}{
		{name: "integer scale", days: 4, f: 3, want: 12},
		{name: "exact fraction", days: 4, f: 2.5, want: 10},
		{name: "negative", days: -4, f: 2, want: -8},
		{name: "inexact", days: 3, f: 2.5, wantErr: true},
		{name: "nan", days: 3, f: math.NaN(), wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := New(tc.days, calA).MulScalar(tc.f)
			if tc.wantErr {
				if !errors.Is(err, ErrInexactResult) {
					t.Fatalf("expected ErrInexactResult, got %v", err)
				}
				return
			}
			if err != nil || got.Days() != tc.want {
				t.Fatalf("MulScalar: got %v err=%v, want %d", got, err, tc.want)
			}
		})
	}
}

func TestDivScalar(t *testing.T) {
	cases := []struct {
		name    string
		days    int64
		f       float64
		want    int64
		wantErr error
	}{
		{name: "exact", days: 10, f: 2, want: 5},
		{name: "exact negative", days: -10, f: 2, want: -5},
		{name: "exact fractional divisor", days: 5, f: 0.5, want: 10},
		{name: "inexact", days: 10, f: 3, wantErr: ErrInexactResult},
		{name: "zero divisor", days: 10, f: 0, wantErr: ErrDivisionByZero},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := New(tc.days, calA).DivScalar(tc.f)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil || got.Days() != tc.want {
				t.Fatalf("DivScalar: got %v err=%v, want %d", got, err, tc.want)
			}
		})
	}
}

func TestDiv_RoundingModes(t *testing.T) {
	cases := []struct {
		name string
		a, b int64
		mode RoundingMode
		want int64
	}{
		{name: "trunc positive", a: 10, b: 3, mode: RoundTrunc, want: 3},
		{name: "trunc negative", a: -10, b: 3, mode: RoundTrunc, want: -3},
		{name: "floor positive", a: 10, b: 3, mode: RoundFloor, want: 3},
		{name: "floor negative", a: -10, b: 3, mode: RoundFloor, want: -4},
		{name: "ceil positive", a: 10, b: 3, mode: RoundCeil, want: 4},
		{name: "ceil negative", a: -10, b: 3, mode: RoundCeil, want: -3},
		{name: "exact ignores mode", a: 9, b: 3, mode: RoundCeil, want: 3},
		{name: "negative divisor floor", a: 10, b: -3, mode: RoundFloor, want: -4},
		{name: "negative divisor ceil", a: 10, b: -3, mode: RoundCeil, want: -3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := New(tc.a, calA).Div(tc.b, tc.mode)
			if err != nil || got.Days() != tc.want {
				t.Fatalf("Div: got %v err=%v, want %d", got, err, tc.want)
			}

			// Same semantics when the divisor is a period.
			gotP, err := New(tc.a, calA).DivPeriod(New(tc.b, calA), tc.mode)
			if err != nil || gotP.Days() != tc.want {
				t.Fatalf("DivPeriod: got %v err=%v, want %d", gotP, err, tc.want)
			}
		})
	}

	if _, err := New(1, calA).Div(0, RoundTrunc); !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("Div by zero: %v", err)
	}
	if _, err := New(1, calA).DivPeriod(New(0, calA), RoundTrunc); !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("DivPeriod by zero: %v", err)
	}
}

func TestRatio(t *testing.T) {
	r, err := New(10, calA).Ratio(New(4, calA))
	if err != nil || r != 2.5 {
		t.Fatalf("Ratio: got %v err=%v, want 2.5", r, err)
	}
	if _, err := New(10, calA).Ratio(New(0, calA)); !errors.Is(err, ErrDivisionByZero) {
		t.Fatalf("Ratio by zero: %v", err)
	}
}

// TestCalendarMismatch verifies that every binary operation refuses operands
// carrying different calendar handles.
func TestCalendarMismatch(t *testing.T) {
	p := New(10, calA)
	q := New(3, calB)

	ops := map[string]func() error{
		"add": func() error { _, err := p.Add(q); return err },
		"sub": func() error { _, err := p.Sub(q); return err },
		"mod": func() error { _, err := p.Mod(q); return err },
		"rem": func() error { _, err := p.Rem(q); return err },
		"gcd": func() error { _, err := p.GCD(q); return err },
		"lcm": func() error { _, err := p.LCM(q); return err },
		"gcdx": func() error {
			_, _, _, err := p.GCDX(q)
			return err
		},
		"compare": func() error { _, err := p.Compare(q); return err },
		"div":     func() error { _, err := p.DivPeriod(q, RoundTrunc); return err },
		"ratio":   func() error { _, err := p.Ratio(q); return err },
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			if err := op(); !errors.Is(err, ErrCalendarMismatch) {
				t.Fatalf("expected ErrCalendarMismatch, got %v", err)
			}
		})
	}

	// A same-kind calendar with a different instance key is still a mismatch.
	other := weekdayCal{name: "TESTA", key: "testa-2"}
	if _, err := p.Add(New(3, other)); !errors.Is(err, ErrCalendarMismatch) {
		t.Fatalf("same-kind different-instance must mismatch, got %v", err)
	}
}
