package face

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// EncodingSize is the dimensionality of the embeddings produced by the
// face-recognition service.
const EncodingSize = 128

// Tolerance is the maximum distance between two encodings that still counts
// as the same person.
const Tolerance = 0.6

// ErrBadEncoding is returned when stored encoding bytes don't decode to
// exactly EncodingSize float64 values.
var ErrBadEncoding = errors.New("malformed face encoding")

// Encoding is a face embedding of EncodingSize float64 values.
type Encoding []float64

// Encoder extracts face encodings from an image. An empty result means no
// face was detected; when several faces are present the first encoding is
// used by callers.
type Encoder interface {
	Encode(ctx context.Context, image []byte) ([]Encoding, error)
}

// MarshalBinary serializes the encoding as EncodingSize little-endian
// float64 values. The byte order is fixed so the stored blob stays readable
// regardless of what wrote it.
func (e Encoding) MarshalBinary() ([]byte, error) {
	if len(e) != EncodingSize {
		return nil, fmt.Errorf("%w: %d values", ErrBadEncoding, len(e))
	}
	buf := make([]byte, 8*EncodingSize)
	for i, v := range e {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(v))
	}
	return buf, nil
}

// UnmarshalBinary decodes an encoding previously written by MarshalBinary.
func UnmarshalBinary(b []byte) (Encoding, error) {
	if len(b) != 8*EncodingSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrBadEncoding, len(b))
	}
	e := make(Encoding, EncodingSize)
	for i := range e {
		e[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[i*8:]))
	}
	return e, nil
}

// Distance returns the Euclidean distance between two encodings.
func Distance(a, b Encoding) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// Match reports whether two encodings are within tolerance of each other.
func Match(a, b Encoding, tolerance float64) bool {
	if len(a) != len(b) {
		return false
	}
	return Distance(a, b) <= tolerance
}
