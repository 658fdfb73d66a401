package bitsliced

import (
	"math/rand"
	"testing"

	"mayo-go/field16"
	"mayo-go/matrix"
)

func randMats(rng *rand.Rand, m, r, c int) []*matrix.Matrix {
	out := make([]*matrix.Matrix, m)
	for k := range out {
		mt := matrix.New(r, c)
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				mt.Set(i, j, field16.Elem(rng.Intn(16)))
			}
		}
		out[k] = mt
	}
	return out
}

func zeroTriangle(mats []*matrix.Matrix) {
	for _, mt := range mats {
		for i := 0; i < mt.Rows; i++ {
			for j := 0; j < i; j++ {
				mt.Set(i, j, 0)
			}
		}
	}
}

func TestRoundTripTriangular(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	mats := randMats(rng, 16, 6, 6)
	zeroTriangle(mats)
	buf, err := Encode(6, 6, mats, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(buf) != EncodedLen(6, 6, 16, true) {
		t.Fatalf("len mismatch: got %d want %d", len(buf), EncodedLen(6, 6, 16, true))
	}
	dec, err := Decode(6, 6, 16, buf, true)
	if err != nil {
		t.Fatal(err)
	}
	for k := range mats {
		for i := 0; i < 6; i++ {
			for j := 0; j < 6; j++ {
				if j < i {
					continue
				}
				if mats[k].At(i, j) != dec[k].At(i, j) {
					t.Fatalf("mat %d mismatch at %d,%d", k, i, j)
				}
			}
		}
	}
}

func TestRoundTripRectangular(t *testing.T) {
	rng := rand.New(rand.NewSource(43))
	mats := randMats(rng, 8, 5, 3)
	buf, err := Encode(5, 3, mats, false)
	if err != nil {
		t.Fatal(err)
	}
	dec, err := Decode(5, 3, 8, buf, false)
	if err != nil {
		t.Fatal(err)
	}
	for k := range mats {
		for i := 0; i < 5; i++ {
			for j := 0; j < 3; j++ {
				if mats[k].At(i, j) != dec[k].At(i, j) {
					t.Fatalf("mat %d mismatch at %d,%d", k, i, j)
				}
			}
		}
	}
}

func TestDecodeLengthMismatch(t *testing.T) {
	if _, err := Decode(4, 4, 8, make([]byte, 3), true); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestEncodeRejectsNonMultipleOf8(t *testing.T) {
	mats := randMats(rand.New(rand.NewSource(1)), 4, 2, 2)
	if _, err := Encode(2, 2, mats, false); err == nil {
		t.Fatal("expected ErrBadM")
	}
}
