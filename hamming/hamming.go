// Package hamming implements systematic (n,k) single-error-correcting
// Hamming codes with syndrome lookup decoding, plus a SECDED extension
// (spec §4.H).
package hamming

import (
	"math/bits"

	pkgerrors "github.com/pkg/errors"

	ecc "github.com/bemasher/go-ecc"
)

// Hamming is a systematic (n,k) Hamming code, n = 2^r-1, r = n-k >= 2,
// minimum distance 3. Bits are packed one bit per byte, matching the
// teacher's convention of carrying one symbol per byte through the
// decode pipeline (see bch.BCH.Encode's bit-string input).
type Hamming struct {
	n, k, r int

	// dataCol[i] and parityCol[j] are the distinct nonzero r-bit
	// parity-check-matrix column values assigned to data position i
	// and parity position j. See buildColumns for why these can't
	// just be (position+1): spec §9 open question 2 flags that the
	// naive assignment collides.
	dataCol   []int
	parityCol []int

	// syndrome[v] is the codeword position whose column equals v, or
	// n if no position has that column (uncorrectable syndrome).
	syndrome []int
}

// New builds a Hamming(n,k) codec. n must equal 2^r-1 for some r>=2
// with r = n-k.
func New(n, k int) (*Hamming, error) {
	r := n - k
	if r < 2 || k < 1 || n != (1<<uint(r))-1 {
		return nil, pkgerrors.Wrapf(ecc.ErrInvalidParameters, "hamming: invalid (n=%d,k=%d)", n, k)
	}

	h := &Hamming{n: n, k: k, r: r}
	h.buildColumns()
	h.buildSyndromeTable()

	ecc.Logger().WithField("n", n).WithField("k", k).WithField("r", r).Debug("hamming: constructed")

	return h, nil
}

// buildColumns assigns parity-check-matrix columns so that every one
// of the n columns is distinct and nonzero, the actual invariant a
// Hamming code's single-error-correction property depends on.
//
// The literal reading of spec §4.H's P[i][j] = bit j of (i+1) makes
// data column i equal the integer i+1 and parity column j equal 2^j;
// those two sets always overlap (column 1 is both data position 0 and
// parity position 0, for any k), which breaks correction for exactly
// the colliding positions. This resolves spec §9 open
// question 2 by keeping the columns' *meaning* (low bits identify the
// position) while assigning data positions the non-power-of-two
// values in [1,n] in order and parity positions the power-of-two
// values 1,2,4,...,2^(r-1) — the two sets partition [1,n] exactly
// because there are precisely r powers of two below 2^r and n-r = k
// of everything else.
func (h *Hamming) buildColumns() {
	h.dataCol = make([]int, h.k)
	h.parityCol = make([]int, h.r)

	for j := 0; j < h.r; j++ {
		h.parityCol[j] = 1 << uint(j)
	}

	di := 0
	for v := 1; v <= h.n && di < h.k; v++ {
		if bits.OnesCount(uint(v)) == 1 {
			continue
		}
		h.dataCol[di] = v
		di++
	}
}

func (h *Hamming) buildSyndromeTable() {
	h.syndrome = make([]int, 1<<uint(h.r))
	for i := range h.syndrome {
		h.syndrome[i] = h.n
	}
	for i, v := range h.dataCol {
		h.syndrome[v] = i
	}
	for j, v := range h.parityCol {
		h.syndrome[v] = h.k + j
	}
}

func (h *Hamming) column(pos int) int {
	if pos < h.k {
		return h.dataCol[pos]
	}
	return h.parityCol[pos-h.k]
}

// N, K, ParityLen, MinDistance, ErrorCapacity and Rate are the
// compile/construction-time constants spec §4.X requires every codec
// to expose.
func (h *Hamming) N() int             { return h.n }
func (h *Hamming) K() int             { return h.k }
func (h *Hamming) ParityLen() int     { return h.r }
func (h *Hamming) MinDistance() int   { return 3 }
func (h *Hamming) ErrorCapacity() int { return 1 }
func (h *Hamming) Rate() float64      { return float64(h.k) / float64(h.n) }

// Encode packs data (k bits, one per byte, 0 or 1) into a systematic
// codeword: [data | parity].
func (h *Hamming) Encode(data []byte) ([]byte, error) {
	if len(data) != h.k {
		return nil, pkgerrors.Wrapf(ecc.ErrLengthMismatch, "hamming: Encode wants %d bits, got %d", h.k, len(data))
	}

	code := make([]byte, h.n)
	copy(code, data)

	for j := 0; j < h.r; j++ {
		var parity byte
		for i, v := range h.dataCol {
			if v&(1<<uint(j)) != 0 {
				parity ^= data[i]
			}
		}
		code[h.k+j] = parity
	}

	return code, nil
}

// Syndrome computes the parity-check-matrix syndrome of a received
// (n-bit) word: zero iff the word is a codeword.
func (h *Hamming) Syndrome(received []byte) int {
	syn := 0
	for pos, bit := range received {
		if bit != 0 {
			syn ^= h.column(pos)
		}
	}
	return syn
}

func (h *Hamming) extract(code []byte) []byte {
	data := make([]byte, h.k)
	copy(data, code[:h.k])
	return data
}

// Decode computes the syndrome and, if nonzero, looks up and corrects
// a single-bit error. A syndrome with no matching position reports
// Success=false with the uncorrected systematic extraction; since the
// n columns cover every nonzero r-bit value, a codec built by New never
// reaches that branch, and a word with two or more errors is corrected
// at whichever single position its syndrome names.
func (h *Hamming) Decode(received []byte) (ecc.Result, error) {
	if len(received) != h.n {
		return ecc.Result{}, pkgerrors.Wrapf(ecc.ErrLengthMismatch, "hamming: Decode wants %d bits, got %d", h.n, len(received))
	}

	syn := h.Syndrome(received)
	if syn == 0 {
		return ecc.Result{Data: h.extract(received), Success: true}, nil
	}

	pos := h.syndrome[syn]
	if pos >= h.n {
		ecc.Logger().WithField("syndrome", syn).Warn("hamming: uncorrectable syndrome")
		return ecc.Result{Data: h.extract(received), Success: false}, nil
	}

	corrected := make([]byte, h.n)
	copy(corrected, received)
	corrected[pos] ^= 1

	return ecc.Result{
		Data:            h.extract(corrected),
		Success:         true,
		ErrorsCorrected: 1,
		ErrorPositions:  []int{pos},
	}, nil
}
