package ecc

import "github.com/pkg/errors"

// EncodeAll runs Encode over a batch of data words (spec §4.X "batch
// overloads for sequences of data words"). It stops and returns the
// first error encountered, wrapped with the index that failed.
func EncodeAll(c Codec, words [][]byte) ([][]byte, error) {
	out := make([][]byte, len(words))
	for i, w := range words {
		cw, err := c.Encode(w)
		if err != nil {
			return nil, errors.Wrapf(err, "ecc: encode word %d", i)
		}
		out[i] = cw
	}
	return out, nil
}

// DecodeAll runs Decode over a batch of received words. Unlike
// EncodeAll, a length mismatch on one word does not abort the batch:
// spec §7 treats decoder uncorrectability as data, not an exception,
// and a malformed single word in a batch is the same kind of
// per-item failure, so DecodeAll sets that item's Result to
// Success=false (Data holding the word as received) and continues with
// the rest. The first such error, wrapped with its index, is returned.
func DecodeAll(c Codec, words [][]byte) ([]Result, error) {
	out := make([]Result, len(words))
	var firstErr error
	for i, w := range words {
		r, err := c.Decode(w)
		if err != nil {
			if firstErr == nil {
				firstErr = errors.Wrapf(err, "ecc: decode word %d", i)
			}
			out[i] = Result{Data: w, Success: false}
			continue
		}
		out[i] = r
	}
	return out, firstErr
}
