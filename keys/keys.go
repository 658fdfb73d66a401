// Package keys holds the five on-wire byte layouts spec.md §3/§6
// names — compact/expanded key pairs and a signature — as thin,
// length-validated wrappers over a raw buffer.
//
// The shape follows ntru/keys/*.go's one-struct-per-artifact layout,
// but drops that package's JSON persistence and os.ReadFile/WriteFile
// round-trips: key material here never touches a file, only a byte
// slice a caller owns, matching spec.md's "file I/O for keys" Non-goal.
// Bytes()/Parse() stand in for that package's Save()/Load() pair.
package keys

import (
	"errors"
	"fmt"

	"mayo-go/params"
)

// ErrDecode reports a buffer whose length does not match the variant's
// declared size for the artifact being parsed (spec.md §7 DecodeError).
var ErrDecode = errors.New("keys: length mismatch")

// CompactSecretKey is seed_sk, exactly sk_seed_bytes (=24) long.
type CompactSecretKey struct{ buf []byte }

// NewCompactSecretKey wraps a freshly sampled seed_sk.
func NewCompactSecretKey(v *params.Variant, seedSK []byte) (*CompactSecretKey, error) {
	if len(seedSK) != v.CSKBytes() {
		return nil, fmt.Errorf("%w: csk seed has %d bytes, want %d", ErrDecode, len(seedSK), v.CSKBytes())
	}
	return &CompactSecretKey{buf: append([]byte(nil), seedSK...)}, nil
}

// ParseCompactSecretKey validates and wraps an externally supplied buffer.
func ParseCompactSecretKey(v *params.Variant, b []byte) (*CompactSecretKey, error) {
	return NewCompactSecretKey(v, b)
}

// SeedSK returns the wrapped seed.
func (k *CompactSecretKey) SeedSK() []byte { return k.buf }

// Bytes returns the on-wire encoding (identical to SeedSK for this artifact).
func (k *CompactSecretKey) Bytes() []byte { return append([]byte(nil), k.buf...) }

// CompactPublicKey is seed_pk‖encode(P(3)).
type CompactPublicKey struct {
	v   *params.Variant
	buf []byte
}

// NewCompactPublicKey assembles cpk from its two fields.
func NewCompactPublicKey(v *params.Variant, seedPK, encodedP3 []byte) (*CompactPublicKey, error) {
	if len(seedPK) != params.PKSeedBytes {
		return nil, fmt.Errorf("%w: seed_pk has %d bytes, want %d", ErrDecode, len(seedPK), params.PKSeedBytes)
	}
	if len(encodedP3) != v.P3Bytes() {
		return nil, fmt.Errorf("%w: encoded P3 has %d bytes, want %d", ErrDecode, len(encodedP3), v.P3Bytes())
	}
	buf := make([]byte, 0, v.CPKBytes())
	buf = append(buf, seedPK...)
	buf = append(buf, encodedP3...)
	return &CompactPublicKey{v: v, buf: buf}, nil
}

// ParseCompactPublicKey validates and wraps an externally supplied buffer.
func ParseCompactPublicKey(v *params.Variant, b []byte) (*CompactPublicKey, error) {
	if len(b) != v.CPKBytes() {
		return nil, fmt.Errorf("%w: cpk has %d bytes, want %d", ErrDecode, len(b), v.CPKBytes())
	}
	return &CompactPublicKey{v: v, buf: append([]byte(nil), b...)}, nil
}

// SeedPK returns the seed_pk field.
func (k *CompactPublicKey) SeedPK() []byte { return k.buf[:params.PKSeedBytes] }

// EncodedP3 returns the encode(P(3)) field.
func (k *CompactPublicKey) EncodedP3() []byte { return k.buf[params.PKSeedBytes:] }

// Bytes returns the on-wire encoding.
func (k *CompactPublicKey) Bytes() []byte { return append([]byte(nil), k.buf...) }

// ExpandedSecretKey is seed_sk‖encode(O)‖encode(P(1))‖encode(L).
type ExpandedSecretKey struct {
	v   *params.Variant
	buf []byte
}

// NewExpandedSecretKey assembles esk from its four fields.
func NewExpandedSecretKey(v *params.Variant, seedSK, encodedO, encodedP1, encodedL []byte) (*ExpandedSecretKey, error) {
	if len(seedSK) != params.SKSeedBytes {
		return nil, fmt.Errorf("%w: seed_sk has %d bytes, want %d", ErrDecode, len(seedSK), params.SKSeedBytes)
	}
	if len(encodedO) != v.OBytes() {
		return nil, fmt.Errorf("%w: encoded O has %d bytes, want %d", ErrDecode, len(encodedO), v.OBytes())
	}
	if len(encodedP1) != v.P1Bytes() {
		return nil, fmt.Errorf("%w: encoded P1 has %d bytes, want %d", ErrDecode, len(encodedP1), v.P1Bytes())
	}
	if len(encodedL) != v.LBytes() {
		return nil, fmt.Errorf("%w: encoded L has %d bytes, want %d", ErrDecode, len(encodedL), v.LBytes())
	}
	buf := make([]byte, 0, v.ESKBytes())
	buf = append(buf, seedSK...)
	buf = append(buf, encodedO...)
	buf = append(buf, encodedP1...)
	buf = append(buf, encodedL...)
	return &ExpandedSecretKey{v: v, buf: buf}, nil
}

// ParseExpandedSecretKey validates and wraps an externally supplied buffer.
func ParseExpandedSecretKey(v *params.Variant, b []byte) (*ExpandedSecretKey, error) {
	if len(b) != v.ESKBytes() {
		return nil, fmt.Errorf("%w: esk has %d bytes, want %d", ErrDecode, len(b), v.ESKBytes())
	}
	return &ExpandedSecretKey{v: v, buf: append([]byte(nil), b...)}, nil
}

// SeedSK returns the seed_sk field.
func (k *ExpandedSecretKey) SeedSK() []byte { return k.buf[:params.SKSeedBytes] }

// EncodedO returns the encode(O) field.
func (k *ExpandedSecretKey) EncodedO() []byte {
	start := params.SKSeedBytes
	return k.buf[start : start+k.v.OBytes()]
}

// EncodedP1 returns the encode(P(1)) field.
func (k *ExpandedSecretKey) EncodedP1() []byte {
	start := params.SKSeedBytes + k.v.OBytes()
	return k.buf[start : start+k.v.P1Bytes()]
}

// EncodedL returns the encode(L) field.
func (k *ExpandedSecretKey) EncodedL() []byte {
	start := params.SKSeedBytes + k.v.OBytes() + k.v.P1Bytes()
	return k.buf[start : start+k.v.LBytes()]
}

// Bytes returns the on-wire encoding.
func (k *ExpandedSecretKey) Bytes() []byte { return append([]byte(nil), k.buf...) }

// ExpandedPublicKey is encode(P(1))‖encode(P(2))‖encode(P(3)).
type ExpandedPublicKey struct {
	v   *params.Variant
	buf []byte
}

// NewExpandedPublicKey assembles epk from its three fields.
func NewExpandedPublicKey(v *params.Variant, encodedP1, encodedP2, encodedP3 []byte) (*ExpandedPublicKey, error) {
	if len(encodedP1) != v.P1Bytes() {
		return nil, fmt.Errorf("%w: encoded P1 has %d bytes, want %d", ErrDecode, len(encodedP1), v.P1Bytes())
	}
	if len(encodedP2) != v.P2Bytes() {
		return nil, fmt.Errorf("%w: encoded P2 has %d bytes, want %d", ErrDecode, len(encodedP2), v.P2Bytes())
	}
	if len(encodedP3) != v.P3Bytes() {
		return nil, fmt.Errorf("%w: encoded P3 has %d bytes, want %d", ErrDecode, len(encodedP3), v.P3Bytes())
	}
	buf := make([]byte, 0, v.EPKBytes())
	buf = append(buf, encodedP1...)
	buf = append(buf, encodedP2...)
	buf = append(buf, encodedP3...)
	return &ExpandedPublicKey{v: v, buf: buf}, nil
}

// ParseExpandedPublicKey validates and wraps an externally supplied buffer.
func ParseExpandedPublicKey(v *params.Variant, b []byte) (*ExpandedPublicKey, error) {
	if len(b) != v.EPKBytes() {
		return nil, fmt.Errorf("%w: epk has %d bytes, want %d", ErrDecode, len(b), v.EPKBytes())
	}
	return &ExpandedPublicKey{v: v, buf: append([]byte(nil), b...)}, nil
}

// EncodedP1 returns the encode(P(1)) field.
func (k *ExpandedPublicKey) EncodedP1() []byte { return k.buf[:k.v.P1Bytes()] }

// EncodedP2 returns the encode(P(2)) field.
func (k *ExpandedPublicKey) EncodedP2() []byte {
	start := k.v.P1Bytes()
	return k.buf[start : start+k.v.P2Bytes()]
}

// EncodedP3 returns the encode(P(3)) field.
func (k *ExpandedPublicKey) EncodedP3() []byte {
	return k.buf[k.v.P1Bytes()+k.v.P2Bytes():]
}

// Bytes returns the on-wire encoding.
func (k *ExpandedPublicKey) Bytes() []byte { return append([]byte(nil), k.buf...) }

// Signature is encode_vec(s)‖salt.
type Signature struct {
	v   *params.Variant
	buf []byte
}

// NewSignature assembles a signature from its two fields.
func NewSignature(v *params.Variant, encodedS, salt []byte) (*Signature, error) {
	sBytes := (v.N*v.K + 1) / 2
	if len(encodedS) != sBytes {
		return nil, fmt.Errorf("%w: encoded s has %d bytes, want %d", ErrDecode, len(encodedS), sBytes)
	}
	if len(salt) != v.SaltBytes {
		return nil, fmt.Errorf("%w: salt has %d bytes, want %d", ErrDecode, len(salt), v.SaltBytes)
	}
	buf := make([]byte, 0, v.SigBytes())
	buf = append(buf, encodedS...)
	buf = append(buf, salt...)
	return &Signature{v: v, buf: buf}, nil
}

// ParseSignature validates and wraps an externally supplied buffer.
// A length mismatch (including against the wrong variant) is the
// cross-variant rejection spec.md §8 scenario 5 requires.
func ParseSignature(v *params.Variant, b []byte) (*Signature, error) {
	if len(b) != v.SigBytes() {
		return nil, fmt.Errorf("%w: signature has %d bytes, want %d", ErrDecode, len(b), v.SigBytes())
	}
	sBytes := (v.N*v.K + 1) / 2
	return &Signature{v: v, buf: append([]byte(nil), b...)[:sBytes+v.SaltBytes]}, nil
}

// EncodedS returns the encode_vec(s) field.
func (s *Signature) EncodedS() []byte {
	sBytes := (s.v.N*s.v.K + 1) / 2
	return s.buf[:sBytes]
}

// Salt returns the salt field.
func (s *Signature) Salt() []byte {
	sBytes := (s.v.N*s.v.K + 1) / 2
	return s.buf[sBytes:]
}

// Bytes returns the on-wire encoding.
func (s *Signature) Bytes() []byte { return append([]byte(nil), s.buf...) }
