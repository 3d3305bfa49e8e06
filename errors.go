// Package ecc implements a library of block error-correcting codes:
// Hamming (with SECDED), binary BCH, and Reed-Solomon, all built on a
// shared GF(2^m) arithmetic kernel and polynomial algebra.
package ecc

import (
	"errors"

	"github.com/bemasher/go-ecc/gf"
)

// Sentinel errors returned by codec constructors and the encode/decode
// paths. Decoder logical failure (too many errors to correct) is not an
// error: it is reported via Result.Success.
//
// ErrInvalidParameters and ErrDivideByZero are the same sentinel
// values gf returns, so errors.Is matches regardless of whether a
// caller goes through a codec or uses gf directly.
var (
	// ErrInvalidParameters is returned by a codec constructor when the
	// requested geometry is illegal: n/k/m/t out of range, or a
	// supplied primitive polynomial that isn't actually primitive.
	ErrInvalidParameters = gf.ErrInvalidParameters

	// ErrDivideByZero is returned by field division/inversion of zero.
	// It should never surface from normal codec encode/decode flow;
	// seeing it escape a codec method indicates a programming error.
	ErrDivideByZero = gf.ErrDivideByZero

	// ErrLengthMismatch is returned by Encode/Decode and their batch
	// forms when an input's length doesn't match the codec's expected
	// data or code length.
	ErrLengthMismatch = errors.New("ecc: length mismatch")
)
