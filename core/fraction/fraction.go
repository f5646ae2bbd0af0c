/*
Package fraction implements exact rational arithmetic for musical ticks.

Durations of notes are summed up over the course of a voice. Tuplets introduce
denominators other than 1 (a triplet eighth is 4096/3 ticks at a resolution of
16384 ticks per whole note), and summing these as floats would drift. Fractions
keep numerator and denominator as integers and do not round until Value() is
called.

Addition deliberately does not reduce its result: the denominator of a sum is
the least common multiple of the operand denominators. A running tick cursor
therefore keeps the finest subdivision it has seen, which is what voices use
to report their resolution multiplier.

_________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fraction

import (
	"fmt"

	"github.com/npillmayer/notensatz/core"
)

// Fraction is a rational number num/den with den > 0.
type Fraction struct {
	Num int64
	Den int64
}

// Zero is 0/1.
var Zero = Fraction{0, 1}

// New creates a fraction. A zero denominator is rejected, a negative one is
// normalized into the numerator.
func New(num, den int64) (Fraction, error) {
	if den == 0 {
		return Zero, core.Error(core.EINVALID, "fraction %d/%d has zero denominator", num, den)
	}
	if den < 0 {
		num, den = -num, -den
	}
	return Fraction{Num: num, Den: den}, nil
}

// Must is like New, but panics on a zero denominator.
func Must(num, den int64) Fraction {
	f, err := New(num, den)
	if err != nil {
		panic(err)
	}
	return f
}

// Int creates n/1.
func Int(n int64) Fraction {
	return Fraction{Num: n, Den: 1}
}

// GCD returns the greatest common divisor of a and b, always >= 0.
func GCD(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of a and b.
// LCM(0, x) is 0.
func LCM(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	l := a / GCD(a, b) * b
	if l < 0 {
		return -l
	}
	return l
}

// LCMM returns the least common multiple of all arguments.
func LCMM(args ...int64) int64 {
	if len(args) == 0 {
		return 0
	}
	l := args[0]
	for _, n := range args[1:] {
		l = LCM(l, n)
	}
	return l
}

func (f Fraction) den() int64 {
	if f.Den == 0 { // the zero value of Fraction is treated as 0/1
		return 1
	}
	return f.Den
}

// Add returns f+g. The denominator of the result is LCM(f.Den, g.Den),
// the result is not simplified.
func (f Fraction) Add(g Fraction) Fraction {
	l := LCM(f.den(), g.den())
	return Fraction{
		Num: f.Num*(l/f.den()) + g.Num*(l/g.den()),
		Den: l,
	}
}

// Mul returns f*g, simplified.
func (f Fraction) Mul(g Fraction) Fraction {
	return Fraction{Num: f.Num * g.Num, Den: f.den() * g.den()}.Simplify()
}

// MulInt returns f*n/d, simplified. d must not be 0.
func (f Fraction) MulInt(n, d int64) Fraction {
	return f.Mul(Must(n, d))
}

// Clone returns a copy of f. Fractions are values; Clone exists for
// readability at call sites which mutate a running sum.
func (f Fraction) Clone() Fraction {
	return Fraction{Num: f.Num, Den: f.den()}
}

// Simplify returns f reduced to lowest terms.
func (f Fraction) Simplify() Fraction {
	d := f.den()
	g := GCD(f.Num, d)
	if g == 0 || g == 1 {
		return Fraction{Num: f.Num, Den: d}
	}
	return Fraction{Num: f.Num / g, Den: d / g}
}

// Scaled returns f*m as an integer if f*m is integral.
func (f Fraction) Scaled(m int64) (int64, bool) {
	n := f.Num * m
	if n%f.den() != 0 {
		return n / f.den(), false
	}
	return n / f.den(), true
}

// Cmp compares f and g by value and returns -1, 0 or +1.
func (f Fraction) Cmp(g Fraction) int {
	a, b := f.Num*g.den(), g.Num*f.den()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Equals is true if f and g denote the same rational number.
func (f Fraction) Equals(g Fraction) bool { return f.Cmp(g) == 0 }

// LessThan is f < g.
func (f Fraction) LessThan(g Fraction) bool { return f.Cmp(g) < 0 }

// LessThanEquals is f <= g.
func (f Fraction) LessThanEquals(g Fraction) bool { return f.Cmp(g) <= 0 }

// GreaterThan is f > g.
func (f Fraction) GreaterThan(g Fraction) bool { return f.Cmp(g) > 0 }

// GreaterThanEquals is f >= g.
func (f Fraction) GreaterThanEquals(g Fraction) bool { return f.Cmp(g) >= 0 }

// IsZero is true for 0/d.
func (f Fraction) IsZero() bool { return f.Num == 0 }

// Value returns f as a float. This is the only place where rounding happens.
func (f Fraction) Value() float64 {
	return float64(f.Num) / float64(f.den())
}

// String returns "num/den", unsimplified.
func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.Num, f.den())
}
