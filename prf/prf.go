// Package prf adapts the two external collaborator primitives spec.md
// §4.6/§6 requires — an extendable-output hash and a seeded
// pseudorandom byte-stream generator — to concrete implementations:
// SHAKE-256 (via golang.org/x/crypto/sha3, the XOF idiom this corpus
// uses in KarpelesLab/mldsa's sampler and mariiatuzovska/frodo's matrix
// expansion) and AES-128 in counter mode (via the standard library
// crypto/aes + crypto/cipher, the idiom JuLi0n21-frodokem-comments'
// genAES128 reaches for to expand a FrodoKEM matrix from a seed).
//
// Both functions are pure: deterministic in their inputs and
// independent of process state, matching spec.md §4.6's contract.
package prf

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
	"fmt"

	"golang.org/x/crypto/sha3"
)

// ErrSeedLen is returned when AES128CTR is given a seed that is not
// exactly 16 bytes.
var ErrSeedLen = errors.New("prf: AES-128 seed must be 16 bytes")

// Shake256 returns exactly outLen bytes of SHAKE-256(input).
func Shake256(input []byte, outLen int) []byte {
	h := sha3.NewSHAKE256()
	h.Write(input)
	out := make([]byte, outLen)
	h.Read(out)
	return out
}

// Shake256Multi is a convenience for callers that build the XOF input
// from several concatenated fields (message digest, salt, seed, counter
// byte, ...) without allocating the concatenation themselves.
func Shake256Multi(outLen int, parts ...[]byte) []byte {
	h := sha3.NewSHAKE256()
	for _, p := range parts {
		h.Write(p)
	}
	out := make([]byte, outLen)
	h.Read(out)
	return out
}

// AES128CTR expands a 16-byte seed into outLen deterministic bytes using
// AES-128 in counter mode with an all-zero IV/nonce and a big-endian
// 128-bit counter starting at 0, per spec.md §6's external-collaborator
// contract ("counter starts at 0, big-endian 128-bit counter per block,
// unauthenticated").
func AES128CTR(seed []byte, outLen int) ([]byte, error) {
	if len(seed) != 16 {
		return nil, fmt.Errorf("%w: got %d", ErrSeedLen, len(seed))
	}
	block, err := aes.NewCipher(seed)
	if err != nil {
		return nil, fmt.Errorf("prf: aes.NewCipher: %w", err)
	}
	var iv [aes.BlockSize]byte // all-zero IV/nonce; the counter is the only varying input
	stream := cipher.NewCTR(block, iv[:])
	out := make([]byte, outLen)
	stream.XORKeyStream(out, out)
	return out, nil
}
