// Package gf implements arithmetic over Galois fields GF(2^m) for
// 3 <= m <= 12, built as polynomials over GF(2) modulo a fixed
// primitive polynomial. Generalizes the single fixed-order field used
// by the teacher's r900/gf package to the full range of field sizes
// the BCH and Reed-Solomon codecs need.
package gf

import "github.com/pkg/errors"

// ErrDivideByZero and ErrInvalidParameters are the sentinel errors
// this package returns; the root ecc package re-exports them so
// errors.Is works the same way whether a caller imports gf directly
// or goes through a codec.
var (
	ErrDivideByZero      = errors.New("gf: divide by zero")
	ErrInvalidParameters = errors.New("gf: invalid parameters")
)

// Element is a member of GF(2^m), represented as an unsigned integer
// in [0, 2^m). byte (the teacher's representation) only covers m<=8;
// m goes up to 12 here, so Element is widened to uint16.
type Element uint16

// MinM and MaxM bound the field extensions this package supports
// (spec §6 "Field size limits").
const (
	MinM = 3
	MaxM = 12
)

// Field is an immutable GF(2^m) configuration: the primitive
// polynomial used to build it and the log/exp tables every arithmetic
// operation consults. The zero Field is not usable; build one with
// New.
type Field struct {
	m     int
	poly  Element
	order Element // 2^m - 1, the multiplicative group's order

	exp []Element // exp[i] = alpha^i for i in [0, order)
	log []Element // log[exp[i]] = i; log[0] is unused, conventionally 0
}

// DefaultPrimitivePoly returns the default primitive polynomial for
// field extension m, per spec §6's table. ok is false for m outside
// that table (field sizes this library doesn't ship a default for,
// though New still accepts an explicit polynomial for any m in
// [MinM, MaxM]).
func DefaultPrimitivePoly(m int) (poly Element, ok bool) {
	switch m {
	case 3:
		return 0x0B, true
	case 4:
		return 0x13, true
	case 5:
		return 0x25, true
	case 6:
		return 0x43, true
	case 7:
		return 0x89, true
	case 8:
		return 0x11D, true
	case 9:
		return 0x211, true
	case 10:
		return 0x409, true
	case 11:
		return 0x805, true
	case 12:
		return 0x1053, true
	default:
		return 0, false
	}
}

// New builds the field GF(2^m) from the given primitive polynomial
// (coefficient bitmask, highest-degree term included). It fails with
// ErrInvalidParameters-wrapping errors if m is out of range or poly
// isn't actually primitive of degree m, i.e. alpha=2 doesn't have
// multiplicative order 2^m-1 under it.
func New(m int, poly Element) (*Field, error) {
	if m < MinM || m > MaxM {
		return nil, errors.Wrapf(ErrInvalidParameters, "gf: m=%d out of supported range [%d,%d]", m, MinM, MaxM)
	}

	degreeBit := Element(1) << uint(m)
	if poly < degreeBit || poly >= degreeBit<<1 {
		return nil, errors.Wrapf(ErrInvalidParameters, "gf: poly=%#x is not degree %d", poly, m)
	}

	order := degreeBit - 1

	f := &Field{
		m:     m,
		poly:  poly,
		order: order,
		exp:   make([]Element, order),
		log:   make([]Element, order+1),
	}

	// Table construction per spec §4.F: start with v=1, exp[0]=1; for
	// i=1..2^m-1, shift v left by one, XOR with the primitive
	// polynomial whenever the bit at position m is set, and assign
	// exp[i mod order] = v.
	v := Element(1)
	f.exp[0] = 1
	for i := 1; i <= int(order); i++ {
		v <<= 1
		if v&degreeBit != 0 {
			v ^= poly
		}
		f.exp[i%int(order)] = v
	}

	// A non-primitive polynomial produces a shorter cycle, so exp[0..order)
	// won't be a bijection onto [1,order]; detect that before building log.
	seen := make([]bool, order+1)
	for _, e := range f.exp {
		if e == 0 || seen[e] {
			return nil, errors.Wrapf(ErrInvalidParameters, "gf: poly=%#x is not primitive of degree %d", poly, m)
		}
		seen[e] = true
	}

	for i := 0; i < int(order); i++ {
		f.log[f.exp[i]] = Element(i)
	}

	return f, nil
}

// M returns the field's extension degree.
func (f *Field) M() int { return f.m }

// Order returns 2^m - 1, the order of the field's multiplicative group.
func (f *Field) Order() Element { return f.order }

// Poly returns the primitive polynomial the field was built from.
func (f *Field) Poly() Element { return f.poly }

// Add returns a XOR b: addition and subtraction coincide in
// characteristic two.
func (f *Field) Add(a, b Element) Element { return a ^ b }

// Mul returns a*b, total over the whole field: zero if either operand
// is zero, else exp[(log[a]+log[b]) mod order].
func (f *Field) Mul(a, b Element) Element {
	if a == 0 || b == 0 {
		return 0
	}
	return f.exp[(int(f.log[a])+int(f.log[b]))%int(f.order)]
}

// Div returns a/b. It fails with ErrDivideByZero when b is zero.
func (f *Field) Div(a, b Element) (Element, error) {
	if b == 0 {
		return 0, errors.Wrap(ErrDivideByZero, "gf: Div")
	}
	if a == 0 {
		return 0, nil
	}
	diff := (int(f.log[a]) - int(f.log[b]) + int(f.order)) % int(f.order)
	return f.exp[diff], nil
}

// Inv returns the multiplicative inverse of a. It fails with
// ErrDivideByZero when a is zero.
func (f *Field) Inv(a Element) (Element, error) {
	if a == 0 {
		return 0, errors.Wrap(ErrDivideByZero, "gf: Inv")
	}
	return f.exp[(int(f.order)-int(f.log[a]))%int(f.order)], nil
}

// Pow returns a^e, total: pow(0,0)=1, pow(0,e>0)=0.
func (f *Field) Pow(a Element, e int) Element {
	if a == 0 {
		if e == 0 {
			return 1
		}
		return 0
	}
	em := e % int(f.order)
	if em < 0 {
		em += int(f.order)
	}
	exponent := (int(f.log[a]) * em) % int(f.order)
	return f.exp[exponent]
}

// Log returns the discrete logarithm of a with base alpha=2. Callers
// must never invoke Log(0); by convention it returns 0 rather than
// panicking, matching the "log[0] is undefined and by convention
// zero" invariant in spec §3.
func (f *Field) Log(a Element) Element {
	return f.log[a]
}

// Exp returns alpha^i, treating i as conceptually periodic modulo
// order.
func (f *Field) Exp(i int) Element {
	im := i % int(f.order)
	if im < 0 {
		im += int(f.order)
	}
	return f.exp[im]
}

// IsPrimitive reports whether x's multiplicative order equals
// 2^m-1, i.e. whether x itself could serve as the field's generator.
func (f *Field) IsPrimitive(x Element) bool {
	if x == 0 {
		return false
	}
	return gcd(int(f.log[x]), int(f.order)) == 1
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
