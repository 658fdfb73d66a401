// Package mayo wires field16, vector, matrix, bitsliced, params, prf,
// linalg and keys together into the four top-level operations spec.md
// §6 names: Keypair, Sign, Verify and SignOpen. The wiring — a thin
// orchestration layer over already-tested primitives, with its own
// sentinel errors and an env-gated debug trace — follows the shape of
// ntru/csign.go and ntru/signverify/signverify.go.
package mayo

import "errors"

// ErrRandomness is returned when the caller-supplied randomness source
// fails to fill a buffer (spec.md §7 Randomness).
var ErrRandomness = errors.New("mayo: randomness source failed")

// ErrSignRetryExhausted is returned when Sign's rejection loop runs all
// 256 counter values without finding a full-rank system (spec.md §7
// SignRetryExhausted). The caller may retry with fresh randomness.
var ErrSignRetryExhausted = errors.New("mayo: sign retry loop exhausted all 256 counters")
