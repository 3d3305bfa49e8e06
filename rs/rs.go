// Package rs implements narrow-sense Reed-Solomon codes over GF(2^m):
// systematic [data|parity] layout over m-bit symbols, syndrome/
// Berlekamp-Massey/Chien/Forney decoding. Grounded in the shared
// algebra package's Berlekamp-Massey routine (the same synthesis used
// by bch), with its own Chien/Forney stage since RS must recover error
// magnitudes that binary BCH never needs.
package rs

import (
	ecc "github.com/bemasher/go-ecc"
	"github.com/bemasher/go-ecc/gf"
	"github.com/bemasher/go-ecc/internal/algebra"
	"github.com/bemasher/go-ecc/poly"
	pkgerrors "github.com/pkg/errors"
)

// RS is a narrow-sense Reed-Solomon (n,k) codec over GF(2^m) symbols.
type RS struct {
	field   *gf.Field
	n, k, t int
	genPoly poly.Poly
}

// New builds a Reed-Solomon codec over GF(2^m) with n symbols per
// codeword and k data symbols. primPoly is optional; when omitted,
// gf.DefaultPrimitivePoly(m) is used.
func New(n, k, m int, primPoly ...gf.Element) (*RS, error) {
	if k <= 0 || k >= n {
		return nil, pkgerrors.Wrapf(ecc.ErrInvalidParameters, "rs: invalid (n=%d,k=%d)", n, k)
	}

	var p gf.Element
	if len(primPoly) > 0 {
		p = primPoly[0]
	} else {
		var ok bool
		p, ok = gf.DefaultPrimitivePoly(m)
		if !ok {
			return nil, pkgerrors.Wrapf(ecc.ErrInvalidParameters, "rs: no default primitive polynomial for m=%d", m)
		}
	}

	field, err := gf.New(m, p)
	if err != nil {
		return nil, err
	}

	if n > int(field.Order()) {
		return nil, pkgerrors.Wrapf(ecc.ErrInvalidParameters, "rs: n=%d exceeds field order %d", n, field.Order())
	}

	parityLen := n - k
	gen := poly.One(field)
	for i := 1; i <= parityLen; i++ {
		root := field.Exp(i)
		factor := poly.New(field, []gf.Element{root, 1})
		gen = gen.Mul(factor)
	}

	ecc.Logger().WithField("n", n).WithField("k", k).WithField("m", m).Debug("rs: constructed")

	return &RS{field: field, n: n, k: k, t: parityLen / 2, genPoly: gen}, nil
}

// N, K, ParityLen, MinDistance, ErrorCapacity and Rate are the
// construction-time constants every codec exposes per spec.md §4.X.
func (r *RS) N() int             { return r.n }
func (r *RS) K() int             { return r.k }
func (r *RS) ParityLen() int     { return r.n - r.k }
func (r *RS) MinDistance() int   { return r.n - r.k + 1 }
func (r *RS) ErrorCapacity() int { return r.t }
func (r *RS) Rate() float64      { return float64(r.k) / float64(r.n) }

// Encode packs k field-element symbols (each in [0, 2^m)) into a
// systematic codeword [data | parity].
func (r *RS) Encode(data []byte) ([]byte, error) {
	if len(data) != r.k {
		return nil, pkgerrors.Wrapf(ecc.ErrLengthMismatch, "rs: Encode wants %d symbols, got %d", r.k, len(data))
	}

	parityLen := r.n - r.k
	msgCoef := make([]gf.Element, r.k)
	for i, d := range data {
		msgCoef[i] = gf.Element(d)
	}
	shifted := poly.New(r.field, msgCoef).ScaleX(parityLen)

	_, rem, err := shifted.DivMod(r.genPoly)
	if err != nil {
		return nil, err
	}

	code := make([]byte, r.n)
	copy(code, data)
	for j := 0; j < parityLen; j++ {
		code[r.k+j] = byte(rem.At(j))
	}

	return code, nil
}

func (r *RS) extract(code []byte) []byte {
	data := make([]byte, r.k)
	copy(data, code[:r.k])
	return data
}

// Decode computes 2t syndromes, runs Berlekamp-Massey for the error
// locator, Chien search for error positions, and Forney's algorithm for
// error magnitudes, per spec.md §4.R steps 1-6. The error evaluator
// Omega is explicitly truncated to degree < 2t before being evaluated:
// the source this was distilled from computes S(x)*Lambda(x) without
// truncating, which (for t>1) lets high-order terms of that product
// leak into the Forney numerator and corrupt the magnitude; see design
// notes for the worked failure case.
func (r *RS) Decode(received []byte) (ecc.Result, error) {
	if len(received) != r.n {
		return ecc.Result{}, pkgerrors.Wrapf(ecc.ErrLengthMismatch, "rs: Decode wants %d symbols, got %d", r.n, len(received))
	}

	coef := make([]gf.Element, r.n)
	for i, s := range received {
		coef[i] = gf.Element(s)
	}
	recvPoly := poly.New(r.field, coef)

	twoT := 2 * r.t
	syndromes := make([]gf.Element, twoT)
	allZero := true
	for j := range syndromes {
		syndromes[j] = recvPoly.Eval(r.field.Exp(j + 1))
		if syndromes[j] != 0 {
			allZero = false
		}
	}

	if allZero {
		return ecc.Result{Data: r.extract(received), Success: true}, nil
	}

	locator := algebra.BerlekampMassey(r.field, syndromes)

	type locatedError struct {
		position int
		xInv     gf.Element
	}
	var located []locatedError
	for i := 0; i < r.n; i++ {
		// Locator position i carries codeword weight alpha^i (Encode
		// writes symbol i as the coefficient of x^i), so its locator
		// value is X_i = alpha^i and the corresponding root of Lambda
		// is at x = X_i^-1 = alpha^-i.
		xInv, err := r.field.Inv(r.field.Exp(i))
		if err != nil {
			continue
		}
		if locator.Eval(xInv) == 0 {
			located = append(located, locatedError{position: i, xInv: xInv})
		}
	}

	if len(located) != locator.Degree() || len(located) > r.t {
		ecc.Logger().WithField("errors_found", len(located)).Warn("rs: uncorrectable, too many errors")
		return ecc.Result{Data: r.extract(received), Success: false}, nil
	}

	syndromePoly := poly.New(r.field, syndromes)
	omega := syndromePoly.Mul(locator).Truncate(twoT)
	lambdaPrime := locator.Derivative()

	corrected := make([]byte, r.n)
	copy(corrected, received)
	positions := make([]int, 0, len(located))

	for _, le := range located {
		denom := lambdaPrime.Eval(le.xInv)
		if denom == 0 {
			ecc.Logger().WithField("position", le.position).Warn("rs: uncorrectable, zero Forney denominator")
			return ecc.Result{Data: r.extract(received), Success: false}, nil
		}
		num := omega.Eval(le.xInv)
		magnitude, err := r.field.Div(num, denom)
		if err != nil {
			return ecc.Result{}, err
		}
		corrected[le.position] = byte(r.field.Add(gf.Element(corrected[le.position]), magnitude))
		positions = append(positions, le.position)
	}

	return ecc.Result{
		Data:            r.extract(corrected),
		Success:         true,
		ErrorsCorrected: len(positions),
		ErrorPositions:  positions,
	}, nil
}
