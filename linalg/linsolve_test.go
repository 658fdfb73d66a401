package linalg

import (
	"errors"
	"math/rand"
	"testing"

	"mayo-go/field16"
	"mayo-go/matrix"
)

func randMatrix(rng *rand.Rand, rows, cols int) *matrix.Matrix {
	m := matrix.New(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.Set(i, j, field16.Elem(rng.Intn(16)))
		}
	}
	return m
}

func randVec(rng *rand.Rand, n int) []field16.Elem {
	v := make([]field16.Elem, n)
	for i := range v {
		v[i] = field16.Elem(rng.Intn(16))
	}
	return v
}

// fullRankWide builds an m x n (n > m) matrix guaranteed to have rank m:
// an m x m identity glued to an arbitrary m x (n-m) block.
func fullRankWide(rng *rand.Rand, m, n int) *matrix.Matrix {
	out := matrix.New(m, n)
	for i := 0; i < m; i++ {
		out.Set(i, i, 1)
	}
	for i := 0; i < m; i++ {
		for j := m; j < n; j++ {
			out.Set(i, j, field16.Elem(rng.Intn(16)))
		}
	}
	return out
}

func TestEFFullRankIdentityPrefix(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	A := fullRankWide(rng, 4, 9)
	echelon, pivots := EF(A, A.Cols)
	if len(pivots) != A.Rows {
		t.Fatalf("rank=%d want %d", len(pivots), A.Rows)
	}
	for i := 0; i < A.Rows; i++ {
		if echelon.At(i, pivots[i]) != 1 {
			t.Fatalf("row %d: pivot column %d not normalized to 1", i, pivots[i])
		}
	}
}

func TestSampleSolutionRecoversConsistentSystem(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	m, ko := 6, 14
	A := fullRankWide(rng, m, ko)
	xTrue := randVec(rng, ko)
	y, err := A.VecMul(xTrue)
	if err != nil {
		t.Fatal(err)
	}
	r := randVec(rng, ko)

	x, err := SampleSolution(A, y, r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, err := A.VecMul(x)
	if err != nil {
		t.Fatal(err)
	}
	for i := range got {
		if got[i] != y[i] {
			t.Fatalf("A*x != y at %d: got %d want %d", i, got[i], y[i])
		}
	}
}

func TestSampleSolutionRankDeficient(t *testing.T) {
	A := matrix.New(4, 10) // all-zero: rank 0 < 4
	y := make([]field16.Elem, 4)
	y[0] = 1
	r := make([]field16.Elem, 10)

	_, err := SampleSolution(A, y, r)
	if !errors.Is(err, ErrRankDeficient) {
		t.Fatalf("got %v, want ErrRankDeficient", err)
	}
}

func TestSampleSolutionDimMismatch(t *testing.T) {
	A := matrix.New(4, 10)
	if _, err := SampleSolution(A, make([]field16.Elem, 3), make([]field16.Elem, 10)); err == nil {
		t.Fatal("expected dimension error for bad y length")
	}
	if _, err := SampleSolution(A, make([]field16.Elem, 4), make([]field16.Elem, 3)); err == nil {
		t.Fatal("expected dimension error for bad r length")
	}
}
