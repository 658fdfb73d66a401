package mayo

import (
	"mayo-go/bitsliced"
	"mayo-go/field16"
	"mayo-go/keys"
	"mayo-go/matrix"
	"mayo-go/params"
	"mayo-go/prf"
	"mayo-go/vector"
)

// blockMatrix builds M_a = [[P1_a, P2_a], [0, P3_a]], the n x n matrix
// spec.md §4.10 evaluates the bilinear forms against.
func blockMatrix(v *params.Variant, p1, p2, p3 *matrix.Matrix) *matrix.Matrix {
	no := v.NO()
	out := matrix.New(v.N, v.N)
	for i := 0; i < no; i++ {
		for j := 0; j < no; j++ {
			out.Set(i, j, p1.At(i, j))
		}
		for j := 0; j < v.O; j++ {
			out.Set(i, no+j, p2.At(i, j))
		}
	}
	for i := 0; i < v.O; i++ {
		for j := 0; j < v.O; j++ {
			out.Set(no+i, no+j, p3.At(i, j))
		}
	}
	return out
}

// VerifyExpanded checks sig against msg under an already-expanded
// public key (spec.md §4.10). Any malformed input is reported as a
// failed verification rather than an error, matching "Verify surfaces
// no error externally".
func VerifyExpanded(v *params.Variant, epk *keys.ExpandedPublicKey, msg []byte, sig *keys.Signature) bool {
	no := v.NO()
	p1, err := bitsliced.DecodeP1(no, v.M, epk.EncodedP1())
	if err != nil {
		return false
	}
	p2, err := bitsliced.DecodeP2(no, v.O, v.M, epk.EncodedP2())
	if err != nil {
		return false
	}
	p3, err := bitsliced.DecodeP3(v.O, v.M, epk.EncodedP3())
	if err != nil {
		return false
	}

	s, err := vector.Decode(v.K*v.N, sig.EncodedS())
	if err != nil {
		return false
	}
	salt := sig.Salt()

	mDigest := prf.Shake256(msg, v.DigestBytes)
	tBytes := prf.Shake256Multi((v.M+1)/2, mDigest, salt)
	t, err := vector.Decode(v.M, tBytes)
	if err != nil {
		return false
	}

	blocks := make([]*matrix.Matrix, v.M)
	for a := 0; a < v.M; a++ {
		blocks[a] = blockMatrix(v, p1[a], p2[a], p3[a])
	}

	y := make([]field16.Elem, v.M)
	ell := 0
	for i := 0; i < v.K; i++ {
		si := s[i*v.N : (i+1)*v.N]
		for j := v.K - 1; j >= i; j-- {
			sj := s[j*v.N : (j+1)*v.N]
			u := make([]field16.Elem, v.M)
			if i == j {
				for a := 0; a < v.M; a++ {
					val, err := blocks[a].BilinearForm(si, si)
					if err != nil {
						return false
					}
					u[a] = val
				}
			} else {
				for a := 0; a < v.M; a++ {
					v1, err := blocks[a].BilinearForm(si, sj)
					if err != nil {
						return false
					}
					v2, err := blocks[a].BilinearForm(sj, si)
					if err != nil {
						return false
					}
					u[a] = field16.Add(v1, v2)
				}
			}
			eu, err := v.ApplyE(ell, u)
			if err != nil {
				return false
			}
			for idx := range y {
				y[idx] = field16.Add(y[idx], eu[idx])
			}
			ell++
		}
	}

	for a := range y {
		if y[a] != t[a] {
			return false
		}
	}
	return true
}

// Verify is the top-level API of spec.md §6: it expands cpk, then
// delegates to VerifyExpanded. A malformed cpk (e.g. the wrong
// variant's length) is reported as a failed verification.
func Verify(v *params.Variant, cpk *keys.CompactPublicKey, msg []byte, sig *keys.Signature) bool {
	epk, err := ExpandPK(v, cpk)
	if err != nil {
		return false
	}
	return VerifyExpanded(v, epk, msg, sig)
}

// SignOpen implements sign_open(variant, cpk, sig||msg) of spec.md §6:
// it splits the buffer at sig_bytes, verifies, and returns the message
// only on success.
func SignOpen(v *params.Variant, cpk *keys.CompactPublicKey, sigThenMsg []byte) ([]byte, bool) {
	sigBytes := v.SigBytes()
	if len(sigThenMsg) < sigBytes {
		return nil, false
	}
	sig, err := keys.ParseSignature(v, sigThenMsg[:sigBytes])
	if err != nil {
		return nil, false
	}
	msg := sigThenMsg[sigBytes:]
	if !Verify(v, cpk, msg, sig) {
		return nil, false
	}
	return msg, true
}
