// Package pow implements the proof-of-work predicate and the nonce mixing rule
// shared by mining and block verification.
package pow

import (
	"strconv"
	"strings"

	"github.com/goodnatureofminers/powchain/internal/hasher"
)

// Target builds the string a sealed digest must start with.
func Target(prefix string, difficulty uint32) string {
	return strings.Repeat(prefix, int(difficulty))
}

// MeetsTarget reports whether digest starts with prefix repeated difficulty times.
// The match is exact and case-sensitive. Difficulty 0 always matches.
func MeetsTarget(digest, prefix string, difficulty uint32) bool {
	if difficulty == 0 {
		return true
	}
	return strings.HasPrefix(digest, Target(prefix, difficulty))
}

// Seal mixes a nonce into a block hash: hash(blockHash + decimal(nonce)).
func Seal(blockHash string, nonce uint64) string {
	return hasher.HashString(blockHash + strconv.FormatUint(nonce, 10))
}
