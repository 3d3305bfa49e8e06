package rs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustRS(t *testing.T, n, k, m int) *RS {
	t.Helper()
	r, err := New(n, k, m)
	require.NoError(t, err)
	return r
}

// flip corrupts each listed symbol by XORing it with the all-ones m-bit
// symbol of r's field, so the corrupted word stays within [0, 2^m).
func flip(r *RS, code []byte, positions ...int) []byte {
	mask := byte(r.field.Order())
	out := make([]byte, len(code))
	copy(out, code)
	for _, p := range positions {
		out[p] ^= mask
	}
	return out
}

// TestRS255223ElevenErrors pins spec §8 scenario 5: RS(255,223) over
// GF(2^8), data = 0..222, eleven byte errors at positions 0,10,...,100,
// all within the t=16 capacity.
func TestRS255223ElevenErrors(t *testing.T) {
	r := mustRS(t, 255, 223, 8)
	require.Equal(t, 16, r.ErrorCapacity())

	data := make([]byte, 223)
	for i := range data {
		data[i] = byte(i)
	}

	code, err := r.Encode(data)
	require.NoError(t, err)

	positions := make([]int, 0, 11)
	for p := 0; p <= 100; p += 10 {
		positions = append(positions, p)
	}
	require.Len(t, positions, 11)

	res, err := r.Decode(flip(r, code, positions...))
	require.NoError(t, err)
	require.True(t, res.Success)
	require.Equal(t, 11, res.ErrorsCorrected)
	require.Equal(t, data, res.Data)
}

// TestRS255223BeyondCapacity continues scenario 5: six more byte errors
// (seventeen total) exceed the sixteen-symbol capacity and must report
// failure rather than a silently wrong correction.
func TestRS255223BeyondCapacity(t *testing.T) {
	r := mustRS(t, 255, 223, 8)

	data := make([]byte, 223)
	for i := range data {
		data[i] = byte(i)
	}

	code, err := r.Encode(data)
	require.NoError(t, err)

	positions := make([]int, 0, 17)
	for p := 0; p <= 100; p += 10 {
		positions = append(positions, p)
	}
	for p := 110; p < 110+6; p++ {
		positions = append(positions, p)
	}
	require.Len(t, positions, 17)

	res, err := r.Decode(flip(r, code, positions...))
	require.NoError(t, err)
	require.False(t, res.Success)
}

func TestRSSystematicLayout(t *testing.T) {
	r := mustRS(t, 15, 9, 4)
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9}
	code, err := r.Encode(data)
	require.NoError(t, err)
	require.Equal(t, data, code[:len(data)])
}

func TestRSZeroErrors(t *testing.T) {
	r := mustRS(t, 15, 9, 4)
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9}
	code, err := r.Encode(data)
	require.NoError(t, err)

	res, err := r.Decode(code)
	require.NoError(t, err)
	require.True(t, res.Success)
	require.Equal(t, 0, res.ErrorsCorrected)
	require.Equal(t, data, res.Data)
}

func TestRSSingleErrorCorrection(t *testing.T) {
	r := mustRS(t, 15, 9, 4)
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9}
	code, err := r.Encode(data)
	require.NoError(t, err)

	for p := 0; p < r.N(); p++ {
		res, err := r.Decode(flip(r, code, p))
		require.NoError(t, err)
		require.Truef(t, res.Success, "position %d", p)
		require.Equal(t, data, res.Data, "position %d", p)
	}
}

func TestRSLengthMismatch(t *testing.T) {
	r := mustRS(t, 15, 9, 4)
	_, err := r.Encode([]byte{1, 2, 3})
	require.Error(t, err)
	_, err = r.Decode([]byte{1, 2, 3})
	require.Error(t, err)
}

func TestNewRejectsBadParameters(t *testing.T) {
	_, err := New(15, 15, 4)
	require.Error(t, err)
	_, err = New(15, 0, 4)
	require.Error(t, err)
	_, err = New(100, 50, 4)
	require.Error(t, err)
}
