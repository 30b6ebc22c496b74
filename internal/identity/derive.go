package identity

import (
	"crypto/sha256"
	"math/big"
)

// Modulus bounds derived ids to [0, 10^8).
const Modulus = 100_000_000

var modulus = big.NewInt(Modulus)

// DeriveID maps an external identifier to its durable numeric primary key:
// SHA-256 over the UTF-8 bytes, read as a big-endian integer, reduced modulo
// 10^8. Deterministic but not collision-free; two distinct identifiers mapping
// to the same id is an accepted, undetected risk.
func DeriveID(external string) uint {
	sum := sha256.Sum256([]byte(external))
	n := new(big.Int).SetBytes(sum[:])
	return uint(n.Mod(n, modulus).Uint64())
}
