package ecc

// Result is the tagged decode record shared by all three codecs (spec
// §3 "Decode result"). Success is false when the received word carries
// more errors than the code can correct; Data then holds a naive
// systematic extraction and must not be trusted.
type Result struct {
	Data            []byte
	Success         bool
	ErrorsCorrected int
	ErrorPositions  []int
}

// Codec is the uniform shape exposed by Hamming, BCH and Reed-Solomon
// (spec §4.X). Batch helpers built on top of it live in codec.go.
type Codec interface {
	N() int
	K() int
	ParityLen() int
	MinDistance() int
	ErrorCapacity() int
	Rate() float64

	Encode(data []byte) ([]byte, error)
	Decode(received []byte) (Result, error)
}
