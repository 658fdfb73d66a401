// Package vector implements the packed-nibble encoding of F16 vectors
// (spec.md §3, VectorCodec §4.2): byte k holds element 2k in its low
// nibble and element 2k+1 in its high nibble, with the trailing high
// nibble zero when the length is odd.
package vector

import (
	"errors"
	"fmt"

	"mayo-go/field16"
)

// ErrDecode is returned when an encoded buffer does not match the
// declared length (the DecodeError kind of spec.md §7).
var ErrDecode = errors.New("vector: length mismatch")

// EncodedLen returns ceil(n/2), the byte length of an encoded length-n vector.
func EncodedLen(n int) int { return (n + 1) / 2 }

// Encode packs x into ceil(len(x)/2) bytes.
func Encode(x []field16.Elem) []byte {
	out := make([]byte, EncodedLen(len(x)))
	for i, v := range x {
		if i%2 == 0 {
			out[i/2] |= v & 0xF
		} else {
			out[i/2] |= (v & 0xF) << 4
		}
	}
	return out
}

// Decode unpacks n elements from buf, which must have exactly
// EncodedLen(n) bytes. The high nibble of the trailing byte is ignored
// when n is odd.
func Decode(n int, buf []byte) ([]field16.Elem, error) {
	want := EncodedLen(n)
	if len(buf) != want {
		return nil, fmt.Errorf("%w: got %d bytes, want %d for n=%d", ErrDecode, len(buf), want, n)
	}
	out := make([]field16.Elem, n)
	for i := 0; i < n; i++ {
		b := buf[i/2]
		if i%2 == 0 {
			out[i] = b & 0xF
		} else {
			out[i] = (b >> 4) & 0xF
		}
	}
	return out, nil
}
