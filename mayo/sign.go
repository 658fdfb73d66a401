package mayo

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"mayo-go/bitsliced"
	"mayo-go/field16"
	"mayo-go/keys"
	"mayo-go/linalg"
	"mayo-go/matrix"
	"mayo-go/params"
	"mayo-go/prf"
	"mayo-go/vector"
)

// addBlock adds block (m x o) into a's columns [col, col+block.Cols),
// all rows, in place.
func addBlock(a, block *matrix.Matrix, col int) {
	for i := 0; i < a.Rows; i++ {
		for j := 0; j < block.Cols; j++ {
			a.Set(i, col+j, field16.Add(a.At(i, col+j), block.At(i, j)))
		}
	}
}

// rowMVector builds M_i's row a: v_i^T * L_a, computed as L_a^T * v_i.
func rowMVector(la *matrix.Matrix, vi []field16.Elem) ([]field16.Elem, error) {
	return la.Transpose().VecMul(vi)
}

// SignExpanded runs the rejection loop of spec.md §4.9 against an
// already-expanded secret key. randSource supplies the R_bytes of
// auxiliary randomness folded into the salt derivation; a nil
// randSource defaults to crypto/rand.
func SignExpanded(v *params.Variant, esk *keys.ExpandedSecretKey, msg []byte, randSource io.Reader) (*keys.Signature, error) {
	if randSource == nil {
		randSource = rand.Reader
	}
	no := v.NO()

	oFlat, err := vector.Decode(no*v.O, esk.EncodedO())
	if err != nil {
		return nil, fmt.Errorf("mayo: decode O: %w", err)
	}
	oMat, err := matrix.FromFlat(no, v.O, oFlat)
	if err != nil {
		return nil, err
	}
	p1, err := bitsliced.DecodeP1(no, v.M, esk.EncodedP1())
	if err != nil {
		return nil, fmt.Errorf("mayo: decode P1: %w", err)
	}
	l, err := bitsliced.DecodeL(no, v.O, v.M, esk.EncodedL())
	if err != nil {
		return nil, fmt.Errorf("mayo: decode L: %w", err)
	}
	seedSK := esk.SeedSK()

	mDigest := prf.Shake256(msg, v.DigestBytes)

	r := make([]byte, v.SaltBytes)
	if _, err := io.ReadFull(randSource, r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRandomness, err)
	}
	salt := prf.Shake256Multi(v.SaltBytes, mDigest, r, seedSK)
	tBytes := prf.Shake256Multi((v.M+1)/2, mDigest, salt)
	t, err := vector.Decode(v.M, tBytes)
	if err != nil {
		return nil, fmt.Errorf("mayo: decode t: %w", err)
	}

	ko := v.K * v.O
	noChunk := (no + 1) / 2
	koChunk := (ko + 1) / 2
	vLen := v.K*noChunk + koChunk

	for ctr := 0; ctr < 256; ctr++ {
		vBytes := prf.Shake256Multi(vLen, mDigest, salt, seedSK, []byte{byte(ctr)})

		vVecs := make([][]field16.Elem, v.K)
		off := 0
		for i := 0; i < v.K; i++ {
			chunk := vBytes[off : off+noChunk]
			off += noChunk
			vi, err := vector.Decode(no, chunk)
			if err != nil {
				return nil, fmt.Errorf("mayo: decode v_%d: %w", i, err)
			}
			vVecs[i] = vi
		}
		rVec, err := vector.Decode(ko, vBytes[off:off+koChunk])
		if err != nil {
			return nil, fmt.Errorf("mayo: decode r: %w", err)
		}

		mi := make([]*matrix.Matrix, v.K)
		for i := 0; i < v.K; i++ {
			mi[i] = matrix.New(v.M, v.O)
			for a := 0; a < v.M; a++ {
				row, err := rowMVector(l[a], vVecs[i])
				if err != nil {
					return nil, err
				}
				copy(mi[i].Row(a), row)
			}
		}

		a := matrix.New(v.M, ko)
		y := append([]field16.Elem(nil), t...)
		ell := 0
		for i := 0; i < v.K; i++ {
			for j := v.K - 1; j >= i; j-- {
				u := make([]field16.Elem, v.M)
				if i == j {
					for aIdx := 0; aIdx < v.M; aIdx++ {
						val, err := p1[aIdx].BilinearForm(vVecs[i], vVecs[i])
						if err != nil {
							return nil, err
						}
						u[aIdx] = val
					}
				} else {
					for aIdx := 0; aIdx < v.M; aIdx++ {
						v1, err := p1[aIdx].BilinearForm(vVecs[i], vVecs[j])
						if err != nil {
							return nil, err
						}
						v2, err := p1[aIdx].BilinearForm(vVecs[j], vVecs[i])
						if err != nil {
							return nil, err
						}
						u[aIdx] = field16.Add(v1, v2)
					}
				}
				eu, err := v.ApplyE(ell, u)
				if err != nil {
					return nil, err
				}
				for idx := range y {
					y[idx] = field16.Add(y[idx], eu[idx])
				}

				// In the (i,j) cross term, x_i's coefficient row is v_j^T*L_a
				// (M_j) and x_j's is v_i^T*L_a (M_i); for i == j both are M_i.
				eMj, err := v.ApplyEMatrix(ell, mi[j])
				if err != nil {
					return nil, err
				}
				addBlock(a, eMj, i*v.O)
				if i != j {
					eMi, err := v.ApplyEMatrix(ell, mi[i])
					if err != nil {
						return nil, err
					}
					addBlock(a, eMi, j*v.O)
				}
				ell++
			}
		}

		x, err := linalg.SampleSolution(a, y, rVec)
		if err != nil {
			if errors.Is(err, linalg.ErrRankDeficient) {
				dbg(dbgWriter, "mayo: sign ctr=%d rank deficient, retrying\n", ctr)
				continue
			}
			return nil, err
		}

		s := make([]field16.Elem, v.K*v.N)
		for i := 0; i < v.K; i++ {
			xi := x[i*v.O : (i+1)*v.O]
			oxi, err := oMat.VecMul(xi)
			if err != nil {
				return nil, err
			}
			si := s[i*v.N : (i+1)*v.N]
			for idx := 0; idx < no; idx++ {
				si[idx] = field16.Add(vVecs[i][idx], oxi[idx])
			}
			copy(si[no:], xi)
		}
		dbg(dbgWriter, "mayo: sign succeeded at ctr=%d\n", ctr)
		return keys.NewSignature(v, vector.Encode(s), salt)
	}
	return nil, ErrSignRetryExhausted
}

// Sign is the top-level API of spec.md §6: it expands csk, then runs
// SignExpanded with crypto/rand as the randomness source.
func Sign(v *params.Variant, csk *keys.CompactSecretKey, msg []byte) (*keys.Signature, error) {
	esk, err := ExpandSK(v, csk)
	if err != nil {
		return nil, err
	}
	return SignExpanded(v, esk, msg, rand.Reader)
}
