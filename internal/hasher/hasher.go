// Package hasher provides the digest function used for block hashes and proof-of-work.
package hasher

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Size is the length of a digest in hex characters.
const Size = chainhash.HashSize * 2

// Hash returns the lowercase hex SHA-256 digest of data.
//
// chainhash.Hash.String reverses byte order for display; the digest here is
// kept in natural order so it matches any other SHA-256 hex implementation.
func Hash(data []byte) string {
	return hex.EncodeToString(chainhash.HashB(data))
}

// HashString hashes the UTF-8 bytes of s.
func HashString(s string) string {
	return Hash([]byte(s))
}
