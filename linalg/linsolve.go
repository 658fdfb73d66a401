// Package linalg implements row-echelon reduction and the rank-m linear
// solve Sign's rejection loop drives once per candidate ctr (spec.md
// §4.5). The algorithm — leftmost-pivot search, swap, normalize,
// eliminate both directions — follows the Gaussian-elimination shape of
// ntru/linop.go and ntru/egcd.go, generalized from NTRU's cyclotomic
// ring arithmetic to dense row operations over F16.
package linalg

import (
	"errors"
	"fmt"

	"mayo-go/field16"
	"mayo-go/matrix"
)

// ErrRankDeficient signals that the given A does not have full row rank,
// so sample_solution cannot solve for every y; callers (Sign's rejection loop)
// must treat this as "try the next ctr", never surface it further.
var ErrRankDeficient = errors.New("linalg: rank deficient system")

// EF reduces b to row-echelon form with leading ones, searching for
// pivots only within the first maxPivotCol columns (the augmented
// right-hand-side column, if any, is carried along but never itself
// chosen as a pivot). It returns the reduced matrix and the pivot
// column chosen for each successive pivot row, in row order; the rank
// is len(pivots).
func EF(b *matrix.Matrix, maxPivotCol int) (*matrix.Matrix, []int) {
	out := b.Clone()
	rows := out.Rows
	pivotRow := 0
	var pivots []int
	for col := 0; col < maxPivotCol && pivotRow < rows; col++ {
		sel := -1
		for r := pivotRow; r < rows; r++ {
			if out.At(r, col) != 0 {
				sel = r
				break
			}
		}
		if sel == -1 {
			continue
		}
		if sel != pivotRow {
			swapRows(out, sel, pivotRow)
		}
		inv := field16.Inv(out.At(pivotRow, col))
		scaleRow(out, pivotRow, inv)
		for r := 0; r < rows; r++ {
			if r == pivotRow {
				continue
			}
			factor := out.At(r, col)
			if factor == 0 {
				continue
			}
			eliminateRow(out, r, pivotRow, factor)
		}
		pivots = append(pivots, col)
		pivotRow++
	}
	return out, pivots
}

func swapRows(m *matrix.Matrix, a, b int) {
	ra, rb := m.Row(a), m.Row(b)
	for i := range ra {
		ra[i], rb[i] = rb[i], ra[i]
	}
}

func scaleRow(m *matrix.Matrix, r int, factor field16.Elem) {
	row := m.Row(r)
	for i := range row {
		row[i] = field16.Mul(row[i], factor)
	}
}

// eliminateRow sets row[target] += factor*row[pivot] (addition, since
// char(F16)=2 makes subtraction and addition identical).
func eliminateRow(m *matrix.Matrix, target, pivot int, factor field16.Elem) {
	tr, pr := m.Row(target), m.Row(pivot)
	for i := range tr {
		tr[i] = field16.MulAdd(tr[i], factor, pr[i])
	}
}

// SampleSolution solves A*x = y for x in F16^{A.Cols} given that A has
// rank A.Rows, per spec.md §4.5: it shifts by a caller-supplied offset
// r (y' = y - A*r), eliminates the augmented system [A|y'], and — on
// full rank — reads a particular solution x' off the pivot columns
// before re-adding r. Returns ErrRankDeficient when elimination finds
// fewer than A.Rows pivots among A's own columns (rank(A) < A.Rows).
func SampleSolution(A *matrix.Matrix, y, r []field16.Elem) ([]field16.Elem, error) {
	m, ko := A.Rows, A.Cols
	if len(y) != m {
		return nil, fmt.Errorf("%w: y has length %d, want %d", matrix.ErrDim, len(y), m)
	}
	if len(r) != ko {
		return nil, fmt.Errorf("%w: r has length %d, want %d", matrix.ErrDim, len(r), ko)
	}

	ar, err := A.VecMul(r)
	if err != nil {
		return nil, err
	}
	yPrime := make([]field16.Elem, m)
	for i := range yPrime {
		yPrime[i] = field16.Add(y[i], ar[i])
	}

	aug := matrix.New(m, ko+1)
	for i := 0; i < m; i++ {
		for j := 0; j < ko; j++ {
			aug.Set(i, j, A.At(i, j))
		}
		aug.Set(i, ko, yPrime[i])
	}

	echelon, pivots := EF(aug, ko)
	if len(pivots) < m {
		return nil, ErrRankDeficient
	}

	xPrime := make([]field16.Elem, ko)
	for row, col := range pivots {
		xPrime[col] = echelon.At(row, ko)
	}

	x := make([]field16.Elem, ko)
	for i := range x {
		x[i] = field16.Add(xPrime[i], r[i])
	}
	return x, nil
}
