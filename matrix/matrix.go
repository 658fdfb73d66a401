// Package matrix implements dense row-major matrices over F16 (spec.md
// §4.3, MatrixOps): Add, Mul, Transpose and the Upper symmetrizing
// projection used throughout key generation and signing.
//
// The shape follows commitment/linear.go's row-major Matrix/Vector
// convention (explicit dimension checks returning wrapped errors rather
// than panicking on caller mistakes), specialized from lattigo
// NTT-domain polynomials to plain F16 nibbles.
package matrix

import (
	"errors"
	"fmt"

	"mayo-go/field16"
)

// ErrDim is returned on a matrix/vector shape mismatch (DimError, spec.md §7).
var ErrDim = errors.New("matrix: dimension mismatch")

// Matrix is a dense, row-major F16 matrix with fixed dimensions.
type Matrix struct {
	Rows, Cols int
	data       []field16.Elem
}

// New allocates a zero Rows x Cols matrix.
func New(rows, cols int) *Matrix {
	return &Matrix{Rows: rows, Cols: cols, data: make([]field16.Elem, rows*cols)}
}

// FromRows builds a Matrix from row-major nested slices, copying the data.
func FromRows(rows [][]field16.Elem) (*Matrix, error) {
	if len(rows) == 0 {
		return New(0, 0), nil
	}
	cols := len(rows[0])
	m := New(len(rows), cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: ragged row %d has %d cols, want %d", ErrDim, i, len(row), cols)
		}
		copy(m.data[i*cols:(i+1)*cols], row)
	}
	return m, nil
}

// At returns M[i,j].
func (m *Matrix) At(i, j int) field16.Elem { return m.data[i*m.Cols+j] }

// Set assigns M[i,j] = v.
func (m *Matrix) Set(i, j int, v field16.Elem) { m.data[i*m.Cols+j] = v }

// Clone returns a deep copy.
func (m *Matrix) Clone() *Matrix {
	out := New(m.Rows, m.Cols)
	copy(out.data, m.data)
	return out
}

// Add returns m+other, entrywise.
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	if m.Rows != other.Rows || m.Cols != other.Cols {
		return nil, fmt.Errorf("%w: add %dx%d + %dx%d", ErrDim, m.Rows, m.Cols, other.Rows, other.Cols)
	}
	out := New(m.Rows, m.Cols)
	for i := range m.data {
		out.data[i] = field16.Add(m.data[i], other.data[i])
	}
	return out, nil
}

// Mul returns the matrix product m*other via the textbook triple loop.
func (m *Matrix) Mul(other *Matrix) (*Matrix, error) {
	if m.Cols != other.Rows {
		return nil, fmt.Errorf("%w: mul %dx%d * %dx%d", ErrDim, m.Rows, m.Cols, other.Rows, other.Cols)
	}
	out := New(m.Rows, other.Cols)
	for i := 0; i < m.Rows; i++ {
		for k := 0; k < m.Cols; k++ {
			a := m.At(i, k)
			if a == 0 {
				continue
			}
			for j := 0; j < other.Cols; j++ {
				out.Set(i, j, field16.MulAdd(out.At(i, j), a, other.At(k, j)))
			}
		}
	}
	return out, nil
}

// Transpose returns m^T.
func (m *Matrix) Transpose() *Matrix {
	out := New(m.Cols, m.Rows)
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			out.Set(j, i, m.At(i, j))
		}
	}
	return out
}

// Upper returns U with U[i,i]=M[i,i], U[i,j]=M[i,j]+M[j,i] for i<j and
// zero below the diagonal. M must be square.
func (m *Matrix) Upper() (*Matrix, error) {
	if m.Rows != m.Cols {
		return nil, fmt.Errorf("%w: Upper requires square matrix, got %dx%d", ErrDim, m.Rows, m.Cols)
	}
	n := m.Rows
	out := New(n, n)
	for i := 0; i < n; i++ {
		out.Set(i, i, m.At(i, i))
		for j := i + 1; j < n; j++ {
			out.Set(i, j, field16.Add(m.At(i, j), m.At(j, i)))
		}
	}
	return out, nil
}

// VecMul returns M*v for a column vector v of length m.Cols.
func (m *Matrix) VecMul(v []field16.Elem) ([]field16.Elem, error) {
	if len(v) != m.Cols {
		return nil, fmt.Errorf("%w: VecMul %dx%d * len %d", ErrDim, m.Rows, m.Cols, len(v))
	}
	out := make([]field16.Elem, m.Rows)
	for i := 0; i < m.Rows; i++ {
		var acc field16.Elem
		for k := 0; k < m.Cols; k++ {
			acc = field16.MulAdd(acc, m.At(i, k), v[k])
		}
		out[i] = acc
	}
	return out, nil
}

// BilinearForm returns u^T * M * v for column vectors u (length Rows)
// and v (length Cols).
func (m *Matrix) BilinearForm(u, v []field16.Elem) (field16.Elem, error) {
	if len(u) != m.Rows || len(v) != m.Cols {
		return 0, fmt.Errorf("%w: BilinearForm u=%d v=%d want %dx%d", ErrDim, len(u), len(v), m.Rows, m.Cols)
	}
	mv, err := m.VecMul(v)
	if err != nil {
		return 0, err
	}
	var acc field16.Elem
	for i := range u {
		acc = field16.MulAdd(acc, u[i], mv[i])
	}
	return acc, nil
}

// Row returns the raw row slice at i (no copy) for callers doing
// their own tight loops over a row.
func (m *Matrix) Row(i int) []field16.Elem {
	return m.data[i*m.Cols : (i+1)*m.Cols]
}

// Flatten returns the matrix's entries in row-major order, the layout
// VectorCodec expects when a single (non-bit-sliced) matrix such as O
// is packed as a plain vector (spec.md §3 O_bytes).
func (m *Matrix) Flatten() []field16.Elem {
	out := make([]field16.Elem, len(m.data))
	copy(out, m.data)
	return out
}

// FromFlat is the inverse of Flatten: it builds a rows x cols matrix
// from a row-major slice of exactly rows*cols elements.
func FromFlat(rows, cols int, data []field16.Elem) (*Matrix, error) {
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%w: FromFlat got %d elements, want %dx%d", ErrDim, len(data), rows, cols)
	}
	out := New(rows, cols)
	copy(out.data, data)
	return out, nil
}
