package chainhash

import (
	"crypto/sha256"

	"golang.org/x/crypto/sha3"
)

// HashB calculates the SHA-256 hash of the provided byte slice and returns
// the resulting bytes.
func HashB(b []byte) []byte {
	sum := sha256.Sum256(b)
	return sum[:]
}

// HashH calculates the SHA-256 hash of the provided byte slice and returns
// the resulting bytes as a Hash.
func HashH(b []byte) Hash {
	return Hash(sha256.Sum256(b))
}

// DoubleHashB calculates SHA-256(SHA-256(b)) and returns the resulting
// bytes. This is the legacy proof-of-work hashing scheme.
func DoubleHashB(b []byte) []byte {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return second[:]
}

// DoubleHashH calculates SHA-256(SHA-256(b)) and returns the resulting
// bytes as a Hash.
func DoubleHashH(b []byte) Hash {
	first := sha256.Sum256(b)
	second := sha256.Sum256(first[:])
	return Hash(second)
}

// KeccakHashB calculates the Keccak-256 hash of the provided byte slice
// and returns the resulting bytes. Used for blocks mined under the newer
// proof-of-work version (see AbstractBlock.HasNewPowVersion).
func KeccakHashB(b []byte) []byte {
	h := sha3.NewLegacyKeccak256()
	h.Write(b)
	return h.Sum(nil)
}

// KeccakHashH calculates the Keccak-256 hash of the provided byte slice
// and returns the resulting bytes as a Hash.
func KeccakHashH(b []byte) Hash {
	var h Hash
	copy(h[:], KeccakHashB(b))
	return h
}
