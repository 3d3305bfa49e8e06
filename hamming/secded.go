package hamming

import (
	pkgerrors "github.com/pkg/errors"

	ecc "github.com/bemasher/go-ecc"
)

// SECDEDStatus distinguishes the three outcomes a SECDED decode can
// report, per spec §4.H's base-syndrome/overall-parity table (both of
// the table's single-error rows report SingleErrorCorrected).
type SECDEDStatus int

const (
	NoError SECDEDStatus = iota
	SingleErrorCorrected
	DoubleErrorDetected
)

// SECDED wraps a base Hamming(n,k) code with one overall parity bit,
// producing an (n+1,k) single-error-correcting, double-error-detecting
// code (spec §4.H "SECDED extension").
type SECDED struct {
	base *Hamming
}

// NewSECDED builds the SECDED extension of Hamming(n,k).
func NewSECDED(n, k int) (*SECDED, error) {
	base, err := New(n, k)
	if err != nil {
		return nil, err
	}
	return &SECDED{base: base}, nil
}

func (s *SECDED) N() int             { return s.base.n + 1 }
func (s *SECDED) K() int             { return s.base.k }
func (s *SECDED) ParityLen() int     { return s.base.r + 1 }
func (s *SECDED) MinDistance() int   { return 4 }
func (s *SECDED) ErrorCapacity() int { return 1 }
func (s *SECDED) Rate() float64      { return float64(s.base.k) / float64(s.base.n+1) }

// Encode appends an overall parity bit (even parity over the base
// codeword) to the base Hamming(n,k) codeword.
func (s *SECDED) Encode(data []byte) ([]byte, error) {
	base, err := s.base.Encode(data)
	if err != nil {
		return nil, err
	}
	code := make([]byte, len(base)+1)
	copy(code, base)

	var parity byte
	for _, b := range base {
		parity ^= b
	}
	code[len(base)] = parity

	return code, nil
}

// SECDEDResult is the tagged SECDED decode record: unlike the base
// Hamming.Decode's ecc.Result, it distinguishes "no error" from
// "corrected" from "detected but uncorrectable" (spec §4.H).
type SECDEDResult struct {
	Data          []byte
	Status        SECDEDStatus
	ErrorPosition int // 0-based into the (n+1)-bit codeword; -1 if none
}

// Decode implements the joint base-syndrome / overall-parity table
// from spec §4.H.
func (s *SECDED) Decode(received []byte) (SECDEDResult, error) {
	n := s.base.n
	if len(received) != n+1 {
		return SECDEDResult{}, pkgerrors.Wrapf(ecc.ErrLengthMismatch, "secded: Decode wants %d bits, got %d", n+1, len(received))
	}

	base := received[:n]
	overallBit := received[n]

	var parity byte
	for _, b := range base {
		parity ^= b
	}
	overallOdd := parity^overallBit != 0

	baseSyndrome := s.base.Syndrome(base)

	switch {
	case baseSyndrome == 0 && !overallOdd:
		return SECDEDResult{Data: s.base.extract(base), Status: NoError, ErrorPosition: -1}, nil

	case baseSyndrome == 0 && overallOdd:
		return SECDEDResult{Data: s.base.extract(base), Status: SingleErrorCorrected, ErrorPosition: n}, nil

	case baseSyndrome != 0 && overallOdd:
		pos := s.base.syndrome[baseSyndrome]
		corrected := make([]byte, n)
		copy(corrected, base)
		corrected[pos] ^= 1
		return SECDEDResult{
			Data:          s.base.extract(corrected),
			Status:        SingleErrorCorrected,
			ErrorPosition: pos,
		}, nil

	default: // baseSyndrome != 0 && !overallOdd
		return SECDEDResult{Status: DoubleErrorDetected, ErrorPosition: -1}, nil
	}
}
