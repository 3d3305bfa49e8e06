package hamming

import (
	"math/rand"
	"testing"

	"pgregory.net/rapid"
)

func mustHamming(t *testing.T, n, k int) *Hamming {
	t.Helper()
	h, err := New(n, k)
	if err != nil {
		t.Fatalf("New(%d,%d): %v", n, k, err)
	}
	return h
}

func flip(code []byte, pos int) []byte {
	out := make([]byte, len(code))
	copy(out, code)
	out[pos] ^= 1
	return out
}

// TestHamming74 pins spec §8 scenario 1: Hamming(7,4), data=1011, every
// single-bit flip corrects back to the original data.
func TestHamming74(t *testing.T) {
	h := mustHamming(t, 7, 4)
	data := []byte{1, 0, 1, 1}

	code, err := h.Encode(data)
	if err != nil {
		t.Fatal(err)
	}

	for p := 0; p < h.N(); p++ {
		res, err := h.Decode(flip(code, p))
		if err != nil {
			t.Fatalf("pos %d: %v", p, err)
		}
		if !res.Success {
			t.Fatalf("pos %d: decode failed", p)
		}
		if res.ErrorsCorrected != 1 || len(res.ErrorPositions) != 1 || res.ErrorPositions[0] != p {
			t.Fatalf("pos %d: wrong correction record %+v", p, res)
		}
		for i, b := range data {
			if res.Data[i] != b {
				t.Fatalf("pos %d: data mismatch, got %v want %v", p, res.Data, data)
			}
		}
	}
}

// TestHamming1511FlipBit5 pins spec §8 scenario 2.
func TestHamming1511FlipBit5(t *testing.T) {
	h := mustHamming(t, 15, 11)
	data := []byte{1, 0, 1, 1, 0, 1, 0, 0, 1, 0, 1}

	code, err := h.Encode(data)
	if err != nil {
		t.Fatal(err)
	}

	res, err := h.Decode(flip(code, 5))
	if err != nil {
		t.Fatal(err)
	}
	if !res.Success || len(res.ErrorPositions) != 1 || res.ErrorPositions[0] != 5 {
		t.Fatalf("unexpected result %+v", res)
	}
	for i, b := range data {
		if res.Data[i] != b {
			t.Fatalf("data mismatch at %d: got %v want %v", i, res.Data, data)
		}
	}
}

// TestSystematicLayout checks encode(d)[0..k] = d (spec §4 systematic property).
func TestSystematicLayout(t *testing.T) {
	h := mustHamming(t, 15, 11)
	data := []byte{1, 1, 0, 0, 1, 0, 1, 1, 0, 0, 1}
	code, err := h.Encode(data)
	if err != nil {
		t.Fatal(err)
	}
	for i, b := range data {
		if code[i] != b {
			t.Fatalf("systematic layout violated at %d", i)
		}
	}
}

// TestColumnsDistinct verifies the buildColumns fix: every codeword
// position has a distinct nonzero column, the invariant the naive
// (position+1) assignment breaks for every k.
func TestColumnsDistinct(t *testing.T) {
	h := mustHamming(t, 15, 11)
	seen := make(map[int]bool)
	for pos := 0; pos < h.N(); pos++ {
		c := h.column(pos)
		if c == 0 {
			t.Fatalf("position %d has zero column", pos)
		}
		if seen[c] {
			t.Fatalf("position %d collides with an earlier column %d", pos, c)
		}
		seen[c] = true
	}
}

func TestErrorCapacityAndRate(t *testing.T) {
	h := mustHamming(t, 15, 11)
	if h.MinDistance() != 3 || h.ErrorCapacity() != 1 {
		t.Fatalf("unexpected distance/capacity: %d/%d", h.MinDistance(), h.ErrorCapacity())
	}
	if h.Rate() != float64(11)/15 {
		t.Fatalf("unexpected rate %v", h.Rate())
	}
}

func TestNewRejectsBadParameters(t *testing.T) {
	if _, err := New(8, 4); err == nil {
		t.Fatal("expected error: n != 2^r-1")
	}
	if _, err := New(3, 3); err == nil {
		t.Fatal("expected error: r < 2")
	}
}

func TestLengthMismatch(t *testing.T) {
	h := mustHamming(t, 7, 4)
	if _, err := h.Encode([]byte{1, 0, 1}); err == nil {
		t.Fatal("expected length mismatch error")
	}
	if _, err := h.Decode([]byte{1, 0, 1}); err == nil {
		t.Fatal("expected length mismatch error")
	}
}

// TestRoundTripRandom uses rapid to range over several (n,k) shapes and
// single-bit error positions, generalizing the two pinned scenarios.
func TestRoundTripRandom(t *testing.T) {
	shapes := [][2]int{{7, 4}, {15, 11}, {31, 26}}

	rapid.Check(t, func(rt *rapid.T) {
		shape := rapid.SampledFrom(shapes).Draw(rt, "shape")
		h := mustHamming(t, shape[0], shape[1])

		rnd := rand.New(rand.NewSource(int64(rapid.IntRange(0, 1<<30).Draw(rt, "seed"))))
		data := make([]byte, h.K())
		for i := range data {
			data[i] = byte(rnd.Intn(2))
		}

		code, err := h.Encode(data)
		if err != nil {
			rt.Fatal(err)
		}

		pos := rapid.IntRange(0, h.N()-1).Draw(rt, "pos")
		res, err := h.Decode(flip(code, pos))
		if err != nil {
			rt.Fatal(err)
		}
		if !res.Success || res.ErrorPositions[0] != pos {
			rt.Fatalf("shape %v pos %d: unexpected result %+v", shape, pos, res)
		}
		for i, b := range data {
			if res.Data[i] != b {
				rt.Fatalf("shape %v pos %d: data mismatch", shape, pos)
			}
		}
	})
}
