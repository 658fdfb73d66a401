package mayo

import (
	"fmt"

	"mayo-go/bitsliced"
	"mayo-go/keys"
	"mayo-go/matrix"
	"mayo-go/params"
	"mayo-go/prf"
	"mayo-go/vector"
)

// expandSeeds recomputes (seedPK, O, {P1_i}, {P2_i}) from seed_sk, the
// computation CompactKeyGen and ExpandSK both start from (spec.md §4.8,
// invariant I2).
func expandSeeds(v *params.Variant, seedSK []byte) (seedPK []byte, oMat *matrix.Matrix, p1, p2 []*matrix.Matrix, err error) {
	no := v.NO()
	s := prf.Shake256(seedSK, params.PKSeedBytes+v.OBytes())
	seedPK = s[:params.PKSeedBytes]
	encodedO := s[params.PKSeedBytes:]

	oFlat, err := vector.Decode(no*v.O, encodedO)
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("mayo: decode O: %w", err)
	}
	oMat, err = matrix.FromFlat(no, v.O, oFlat)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	p, err := prf.AES128CTR(seedPK, v.P1Bytes()+v.P2Bytes())
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("mayo: expand P1/P2: %w", err)
	}
	p1, err = bitsliced.DecodeP1(no, v.M, p[:v.P1Bytes()])
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("mayo: decode P1: %w", err)
	}
	p2, err = bitsliced.DecodeP2(no, v.O, v.M, p[v.P1Bytes():])
	if err != nil {
		return nil, nil, nil, nil, fmt.Errorf("mayo: decode P2: %w", err)
	}
	return seedPK, oMat, p1, p2, nil
}

// computeP3 returns Upper(-O^T*P1_i*O - O^T*P2_i) for every i, per
// spec.md §4.8. Over F16 (characteristic 2) negation is the identity,
// so both minus signs are implemented as addition.
func computeP3(oMat *matrix.Matrix, p1, p2 []*matrix.Matrix) ([]*matrix.Matrix, error) {
	oT := oMat.Transpose()
	p3 := make([]*matrix.Matrix, len(p1))
	for i := range p1 {
		oTP1, err := oT.Mul(p1[i])
		if err != nil {
			return nil, err
		}
		oTP1O, err := oTP1.Mul(oMat)
		if err != nil {
			return nil, err
		}
		oTP2, err := oT.Mul(p2[i])
		if err != nil {
			return nil, err
		}
		sum, err := oTP1O.Add(oTP2)
		if err != nil {
			return nil, err
		}
		upper, err := sum.Upper()
		if err != nil {
			return nil, err
		}
		p3[i] = upper
	}
	return p3, nil
}

// CompactKeyGen is the deterministic core of KeyGen (spec.md §4.8): a
// pure function of seed_sk. Keypair samples seed_sk and calls this.
func CompactKeyGen(v *params.Variant, seedSK []byte) (*keys.CompactPublicKey, *keys.CompactSecretKey, error) {
	csk, err := keys.NewCompactSecretKey(v, seedSK)
	if err != nil {
		return nil, nil, err
	}
	seedPK, oMat, p1, p2, err := expandSeeds(v, seedSK)
	if err != nil {
		return nil, nil, err
	}
	p3, err := computeP3(oMat, p1, p2)
	if err != nil {
		return nil, nil, err
	}
	encodedP3, err := bitsliced.EncodeP3(v.O, p3)
	if err != nil {
		return nil, nil, err
	}
	cpk, err := keys.NewCompactPublicKey(v, seedPK, encodedP3)
	if err != nil {
		return nil, nil, err
	}
	dbg(dbgWriter, "mayo: CompactKeyGen %s cpk=%d csk=%d\n", v.Name, len(cpk.Bytes()), len(csk.Bytes()))
	return cpk, csk, nil
}

// ExpandSK rebuilds the expanded secret key from a compact one
// (spec.md §4.8): L_i = (P1_i + P1_i^T)*O + P2_i.
func ExpandSK(v *params.Variant, csk *keys.CompactSecretKey) (*keys.ExpandedSecretKey, error) {
	seedSK := csk.SeedSK()
	_, oMat, p1, p2, err := expandSeeds(v, seedSK)
	if err != nil {
		return nil, err
	}
	no := v.NO()
	l := make([]*matrix.Matrix, v.M)
	for i := range p1 {
		sym, err := p1[i].Add(p1[i].Transpose())
		if err != nil {
			return nil, err
		}
		t, err := sym.Mul(oMat)
		if err != nil {
			return nil, err
		}
		li, err := t.Add(p2[i])
		if err != nil {
			return nil, err
		}
		l[i] = li
	}

	encodedO := vector.Encode(oMat.Flatten())
	encodedP1, err := bitsliced.EncodeP1(no, p1)
	if err != nil {
		return nil, err
	}
	encodedL, err := bitsliced.EncodeL(no, v.O, l)
	if err != nil {
		return nil, err
	}
	return keys.NewExpandedSecretKey(v, seedSK, encodedO, encodedP1, encodedL)
}

// ExpandPK rebuilds the expanded public key from a compact one
// (spec.md §4.8).
func ExpandPK(v *params.Variant, cpk *keys.CompactPublicKey) (*keys.ExpandedPublicKey, error) {
	p, err := prf.AES128CTR(cpk.SeedPK(), v.P1Bytes()+v.P2Bytes())
	if err != nil {
		return nil, fmt.Errorf("mayo: expand P1/P2: %w", err)
	}
	return keys.NewExpandedPublicKey(v, p[:v.P1Bytes()], p[v.P1Bytes():], cpk.EncodedP3())
}
