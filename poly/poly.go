// Package poly implements polynomial algebra over a gf.Field: the
// shared arithmetic BCH and Reed-Solomon generator-polynomial
// construction, Berlekamp-Massey, Chien search and Forney correction
// are all built from.
package poly

import "github.com/bemasher/go-ecc/gf"

// Poly is a polynomial with coefficients in a gf.Field, coefficient 0
// being the constant term. Every Poly returned by a function in this
// package is normalised (spec §3): either the single coefficient [0]
// or a slice whose last entry is nonzero. Mixing Polys built from
// different Fields is a programming error, same as in the spec's
// data model.
type Poly struct {
	field *gf.Field
	coef  []gf.Element
}

// New builds a normalised Poly over field from coeffs, coefficient 0
// first. The input slice is copied; the caller's slice is never
// aliased or mutated.
func New(field *gf.Field, coeffs []gf.Element) Poly {
	c := make([]gf.Element, len(coeffs))
	copy(c, coeffs)
	return normalize(field, c)
}

// Zero returns the zero polynomial over field.
func Zero(field *gf.Field) Poly {
	return Poly{field: field, coef: []gf.Element{0}}
}

// One returns the constant polynomial 1 over field.
func One(field *gf.Field) Poly {
	return Poly{field: field, coef: []gf.Element{1}}
}

func normalize(field *gf.Field, c []gf.Element) Poly {
	for len(c) > 1 && c[len(c)-1] == 0 {
		c = c[:len(c)-1]
	}
	if len(c) == 0 {
		c = []gf.Element{0}
	}
	return Poly{field: field, coef: c}
}

// Field returns the field this polynomial's arithmetic runs over.
func (p Poly) Field() *gf.Field { return p.field }

// Degree is len(coefficients)-1 for a normalised nonzero polynomial;
// the zero polynomial conventionally has degree 0 (use IsZero to
// distinguish it from the constant polynomial 1).
func (p Poly) Degree() int {
	return len(p.coef) - 1
}

// At returns the coefficient at index i, or 0 if i is out of range.
func (p Poly) At(i int) gf.Element {
	if i < 0 || i >= len(p.coef) {
		return 0
	}
	return p.coef[i]
}

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool {
	return len(p.coef) == 1 && p.coef[0] == 0
}

// Coeffs returns a copy of p's coefficients, constant term first.
func (p Poly) Coeffs() []gf.Element {
	c := make([]gf.Element, len(p.coef))
	copy(c, p.coef)
	return c
}

// Add returns p+q (coefficient-wise field addition, i.e. XOR).
func (p Poly) Add(q Poly) Poly {
	n := len(p.coef)
	if len(q.coef) > n {
		n = len(q.coef)
	}
	c := make([]gf.Element, n)
	for i := 0; i < n; i++ {
		c[i] = p.field.Add(p.At(i), q.At(i))
	}
	return normalize(p.field, c)
}

// Mul returns p*q via schoolbook convolution.
func (p Poly) Mul(q Poly) Poly {
	if p.IsZero() || q.IsZero() {
		return Zero(p.field)
	}
	c := make([]gf.Element, len(p.coef)+len(q.coef)-1)
	for i, a := range p.coef {
		if a == 0 {
			continue
		}
		for j, b := range q.coef {
			if b == 0 {
				continue
			}
			c[i+j] = p.field.Add(c[i+j], p.field.Mul(a, b))
		}
	}
	return normalize(p.field, c)
}

// ScaleX returns p * x^shift, i.e. p with its coefficients shifted up
// by shift positions (zero-filled below).
func (p Poly) ScaleX(shift int) Poly {
	if p.IsZero() || shift == 0 {
		return p
	}
	c := make([]gf.Element, len(p.coef)+shift)
	copy(c[shift:], p.coef)
	return normalize(p.field, c)
}

// Truncate returns p mod x^degree, i.e. p with every coefficient at
// index >= degree dropped. Used by the Reed-Solomon Forney step to
// truncate the error evaluator to degree < 2t (spec §9 design note 3).
func (p Poly) Truncate(degree int) Poly {
	if degree >= len(p.coef) {
		return p
	}
	if degree <= 0 {
		return Zero(p.field)
	}
	c := make([]gf.Element, degree)
	copy(c, p.coef[:degree])
	return normalize(p.field, c)
}

// Eval evaluates p at x via Horner's method, high coefficient to low.
func (p Poly) Eval(x gf.Element) gf.Element {
	result := p.coef[len(p.coef)-1]
	for i := len(p.coef) - 2; i >= 0; i-- {
		result = p.field.Add(p.field.Mul(result, x), p.coef[i])
	}
	return result
}

// DivMod returns (quotient, remainder) such that
// quotient*divisor + remainder == p and deg(remainder) < deg(divisor).
// It fails if divisor is the zero polynomial.
func (p Poly) DivMod(divisor Poly) (quotient, remainder Poly, err error) {
	if divisor.IsZero() {
		return Poly{}, Poly{}, gf.ErrDivideByZero
	}

	remCoef := p.Coeffs()
	divDeg := divisor.Degree()
	divLead := divisor.coef[divDeg]

	quotDeg := len(remCoef) - 1 - divDeg
	var quotCoef []gf.Element
	if quotDeg >= 0 {
		quotCoef = make([]gf.Element, quotDeg+1)
	}

	for deg := len(remCoef) - 1; deg >= divDeg; deg-- {
		lead := remCoef[deg]
		if lead == 0 {
			continue
		}
		factor, ferr := p.field.Div(lead, divLead)
		if ferr != nil {
			return Poly{}, Poly{}, ferr
		}
		shift := deg - divDeg
		if shift < len(quotCoef) {
			quotCoef[shift] = factor
		}
		for i := 0; i <= divDeg; i++ {
			remCoef[shift+i] = p.field.Add(remCoef[shift+i], p.field.Mul(factor, divisor.coef[i]))
		}
	}

	quotient = normalize(p.field, quotCoef)
	remainder = normalize(p.field, remCoef[:min(divDeg, len(remCoef))])
	return quotient, remainder, nil
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Derivative returns the formal derivative of p. In characteristic
// two, d/dx of sum(c_i x^i) keeps only the odd-index terms (each
// surviving term's coefficient is unchanged since i*c_i = c_i for odd
// i mod 2 in GF(2) scalars, and even-i terms vanish): term c_i x^i
// contributes c_i x^(i-1), so coefficient c_i lands at index i-1, not
// at a tightly packed position — per spec §4.R's description of
// Lambda-prime for Forney.
func (p Poly) Derivative() Poly {
	deg := p.Degree()
	if deg < 1 {
		return Zero(p.field)
	}
	c := make([]gf.Element, deg)
	for i := 1; i <= deg; i += 2 {
		c[i-1] = p.At(i)
	}
	return normalize(p.field, c)
}
