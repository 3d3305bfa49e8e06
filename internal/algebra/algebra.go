// Package algebra holds the Berlekamp-Massey and Chien-search routines
// shared by the bch and rs packages: the syndrome-domain machinery
// spec.md calls out as the actual hard part of this library, common to
// both codecs and kept in one place rather than duplicated per codec.
package algebra

import (
	"github.com/bemasher/go-ecc/gf"
	"github.com/bemasher/go-ecc/poly"
)

// BerlekampMassey computes the error-locator polynomial Lambda(x) from
// a sequence of syndromes S_1..S_d, syndromes[0] holding S_1. It is the
// standard iterative LFSR-synthesis formulation (Massey 1969): at each
// step it measures the discrepancy of the current locator against the
// next syndrome and, only when that discrepancy is nonzero and the
// current locator can't already explain it, updates the locator using
// the best prior correction polynomial B.
func BerlekampMassey(field *gf.Field, syndromes []gf.Element) poly.Poly {
	c := poly.One(field)
	b := poly.One(field)
	l := 0
	m := 1
	lastDiscrepancy := gf.Element(1)

	for n := 0; n < len(syndromes); n++ {
		delta := syndromes[n]
		for i := 1; i <= l; i++ {
			delta = field.Add(delta, field.Mul(c.At(i), syndromes[n-i]))
		}

		if delta == 0 {
			m++
			continue
		}

		t := c
		coef, _ := field.Div(delta, lastDiscrepancy)
		c = c.Add(scale(field, b, coef).ScaleX(m))

		if 2*l <= n {
			l = n + 1 - l
			b = t
			lastDiscrepancy = delta
			m = 1
		} else {
			m++
		}
	}

	return c
}

func scale(field *gf.Field, p poly.Poly, c gf.Element) poly.Poly {
	coeffs := p.Coeffs()
	out := make([]gf.Element, len(coeffs))
	for i, v := range coeffs {
		out[i] = field.Mul(v, c)
	}
	return poly.New(field, out)
}

// ChienSearch evaluates locator at alpha^-p for every codeword position
// p in [0,n) and returns the positions where it has a root, i.e. the
// error locations. Direct evaluation rather than the classic
// register-based Chien search; n is small enough in this library's
// supported field sizes (at most 4095) that the difference is not
// worth the added bookkeeping.
func ChienSearch(field *gf.Field, locator poly.Poly, n int) []int {
	var positions []int
	for p := 0; p < n; p++ {
		inv, err := field.Inv(field.Exp(p))
		if err != nil {
			continue
		}
		if locator.Eval(inv) == 0 {
			positions = append(positions, p)
		}
	}
	return positions
}
