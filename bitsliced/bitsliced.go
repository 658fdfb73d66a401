// Package bitsliced implements the bit-sliced encoding of a sequence of m
// F16 matrices (spec.md §3 "Bit-sliced sequence of m matrices", §4.4
// BitslicedCodec): for every matrix cell the m parallel nibbles are
// emitted bit-plane by bit-plane rather than nibble by nibble, so that m
// matrices packed together look like m/2 interleaved bytes per cell.
//
// The byte-level packing technique (walking a bit position, computing
// byte/shift, and OR-ing partial bytes together) is grounded on
// DECS/packing.go's PackUintMatrix family, specialized here from an
// arbitrary bit-width integer packer down to single-bit, per-bit-plane
// packing of nibbles.
package bitsliced

import (
	"errors"
	"fmt"

	"mayo-go/field16"
	"mayo-go/matrix"
)

// ErrDecode is returned when an encoded buffer does not match the
// declared length for the given (r, c, m, triangular) shape.
var ErrDecode = errors.New("bitsliced: length mismatch")

// ErrBadM is returned when m is not a multiple of 8, which every
// standardized MAYO parameter set satisfies (spec.md §3).
var ErrBadM = errors.New("bitsliced: m must be a multiple of 8")

// cellCount returns the number of (i,j) cells visited for an r x c
// matrix, skipping the strict lower triangle when triangular is set.
func cellCount(r, c int, triangular bool) int {
	if !triangular {
		return r * c
	}
	n := 0
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if j < i {
				continue
			}
			n++
		}
	}
	return n
}

// EncodedLen returns the byte length of the bit-sliced encoding of m
// matrices of shape r x c (triangular or not).
func EncodedLen(r, c, m int, triangular bool) int {
	return cellCount(r, c, triangular) * (m / 2)
}

// Encode packs mats (len(mats) == m, each r x c) into the bit-sliced
// layout of spec.md §4.4, skipping cells with j<i when triangular is set.
func Encode(r, c int, mats []*matrix.Matrix, triangular bool) ([]byte, error) {
	m := len(mats)
	if m == 0 || m%8 != 0 {
		return nil, ErrBadM
	}
	for k, mt := range mats {
		if mt.Rows != r || mt.Cols != c {
			return nil, fmt.Errorf("%w: matrix %d is %dx%d, want %dx%d", matrix.ErrDim, k, mt.Rows, mt.Cols, r, c)
		}
	}
	planeBytes := m / 8
	out := make([]byte, EncodedLen(r, c, m, triangular))
	pos := 0
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if triangular && j < i {
				continue
			}
			cell := out[pos : pos+4*planeBytes]
			for t := 0; t < 4; t++ {
				plane := cell[t*planeBytes : (t+1)*planeBytes]
				for k := 0; k < m; k++ {
					bit := (mats[k].At(i, j) >> uint(t)) & 1
					if bit != 0 {
						plane[k/8] |= 1 << uint(k%8)
					}
				}
			}
			pos += 4 * planeBytes
		}
	}
	return out, nil
}

// Decode is the inverse of Encode, returning m matrices of shape r x c.
func Decode(r, c, m int, buf []byte, triangular bool) ([]*matrix.Matrix, error) {
	if m == 0 || m%8 != 0 {
		return nil, ErrBadM
	}
	want := EncodedLen(r, c, m, triangular)
	if len(buf) != want {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrDecode, len(buf), want)
	}
	planeBytes := m / 8
	mats := make([]*matrix.Matrix, m)
	for k := range mats {
		mats[k] = matrix.New(r, c)
	}
	pos := 0
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if triangular && j < i {
				continue
			}
			cell := buf[pos : pos+4*planeBytes]
			for t := 0; t < 4; t++ {
				plane := cell[t*planeBytes : (t+1)*planeBytes]
				for k := 0; k < m; k++ {
					bit := (plane[k/8] >> uint(k%8)) & 1
					if bit != 0 {
						mats[k].Set(i, j, mats[k].At(i, j)|field16.Elem(1<<uint(t)))
					}
				}
			}
			pos += 4 * planeBytes
		}
	}
	return mats, nil
}

// EncodeP1 encodes {P(1)_i}, each (n-o)x(n-o) and triangular.
func EncodeP1(no int, mats []*matrix.Matrix) ([]byte, error) { return Encode(no, no, mats, true) }

// DecodeP1 decodes {P(1)_i}.
func DecodeP1(no, m int, buf []byte) ([]*matrix.Matrix, error) { return Decode(no, no, m, buf, true) }

// EncodeP2 encodes {P(2)_i}, each (n-o)xo, not triangular.
func EncodeP2(no, o int, mats []*matrix.Matrix) ([]byte, error) { return Encode(no, o, mats, false) }

// DecodeP2 decodes {P(2)_i}.
func DecodeP2(no, o, m int, buf []byte) ([]*matrix.Matrix, error) {
	return Decode(no, o, m, buf, false)
}

// EncodeP3 encodes {P(3)_i}, each oxo and triangular.
func EncodeP3(o int, mats []*matrix.Matrix) ([]byte, error) { return Encode(o, o, mats, true) }

// DecodeP3 decodes {P(3)_i}.
func DecodeP3(o, m int, buf []byte) ([]*matrix.Matrix, error) { return Decode(o, o, m, buf, true) }

// EncodeL encodes {L_i}; shares P2's (n-o)xo, non-triangular layout.
func EncodeL(no, o int, mats []*matrix.Matrix) ([]byte, error) { return Encode(no, o, mats, false) }

// DecodeL decodes {L_i}.
func DecodeL(no, o, m int, buf []byte) ([]*matrix.Matrix, error) {
	return Decode(no, o, m, buf, false)
}
