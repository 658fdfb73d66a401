package mayo

import (
	"crypto/rand"
	"fmt"

	"mayo-go/keys"
	"mayo-go/params"
)

// Keypair samples a fresh seed_sk via crypto/rand and runs
// CompactKeyGen, completing the variant-parameterized `keypair`
// operation of spec.md §6.
func Keypair(v *params.Variant) (*keys.CompactPublicKey, *keys.CompactSecretKey, error) {
	seedSK := make([]byte, v.CSKBytes())
	if _, err := rand.Read(seedSK); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrRandomness, err)
	}
	return CompactKeyGen(v, seedSK)
}
