package matrix

import (
	"math/rand"
	"testing"

	"mayo-go/field16"
)

func randMatrix(rng *rand.Rand, rows, cols int) *Matrix {
	m := New(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.Set(i, j, field16.Elem(rng.Intn(16)))
		}
	}
	return m
}

func TestUpperIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	m := randMatrix(rng, 8, 8)
	mt := m.Transpose()

	u, err := m.Upper()
	if err != nil {
		t.Fatal(err)
	}
	// Upper(M) + Upper(M)^T equals M + M^T off the diagonal and is zero on
	// it, since 2*M[i,i] = 0 in characteristic 2.
	ut := u.Transpose()
	sum, err := u.Add(ut)
	if err != nil {
		t.Fatal(err)
	}
	mSum, err := m.Add(mt)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			if i == j {
				if sum.At(i, j) != 0 {
					t.Fatalf("diagonal of Upper(M)+Upper(M)^T not zero at %d", i)
				}
				continue
			}
			if sum.At(i, j) != mSum.At(i, j) {
				t.Fatalf("mismatch at %d,%d: got %d want %d", i, j, sum.At(i, j), mSum.At(i, j))
			}
		}
	}
}

func TestUpperIsUpperTriangular(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	m := randMatrix(rng, 5, 5)
	u, err := m.Upper()
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		for j := 0; j < i; j++ {
			if u.At(i, j) != 0 {
				t.Fatalf("Upper not triangular at %d,%d", i, j)
			}
		}
		if u.At(i, i) != m.At(i, i) {
			t.Fatalf("diagonal mismatch at %d", i)
		}
	}
}

func TestMulDimMismatch(t *testing.T) {
	a := New(2, 3)
	b := New(4, 5)
	if _, err := a.Mul(b); err == nil {
		t.Fatal("expected dimension error")
	}
}

func TestTransposeInvolution(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	m := randMatrix(rng, 4, 6)
	tt := m.Transpose().Transpose()
	for i := 0; i < 4; i++ {
		for j := 0; j < 6; j++ {
			if m.At(i, j) != tt.At(i, j) {
				t.Fatalf("transpose not involutive at %d,%d", i, j)
			}
		}
	}
}

func TestFlattenFromFlatRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	m := randMatrix(rng, 5, 7)
	rebuilt, err := FromFlat(5, 7, m.Flatten())
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		for j := 0; j < 7; j++ {
			if m.At(i, j) != rebuilt.At(i, j) {
				t.Fatalf("mismatch at %d,%d", i, j)
			}
		}
	}
	if _, err := FromFlat(5, 7, m.Flatten()[:10]); err == nil {
		t.Fatal("expected dimension error for short data")
	}
}
