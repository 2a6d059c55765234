// Package model defines the block data model and its canonical serialization.
package model

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/goodnatureofminers/powchain/internal/hasher"
)

// SerializationVersion identifies the canonical payload encoding. Changing the
// encoding makes every stored block hash unverifiable.
const SerializationVersion = 1

// GenesisData is the data string of the genesis block.
const GenesisData = "Genesis Block"

// Payload is the block body hashed into the block hash.
type Payload struct {
	Seq          uint64 `json:"seq"`
	Timestamp    int64  `json:"timestamp"`
	Data         string `json:"data"`
	PreviousHash string `json:"previous_hash"`
}

// Header carries the seal produced by mining.
type Header struct {
	BlockHash string
	Nonce     uint64
}

// Block pairs a Header with the Payload it seals.
type Block struct {
	Headers Header
	Payload Payload
}

// Canonical returns the payload encoded as compact JSON with keys in the order
// seq, timestamp, data, previous_hash and no trailing newline.
func (p Payload) Canonical() []byte {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Every field is an integer or a string, so encoding into a buffer cannot fail.
	if err := enc.Encode(p); err != nil {
		panic(fmt.Sprintf("encode payload %d: %v", p.Seq, err))
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'})
}

// Hash returns the block hash of the payload.
func (p Payload) Hash() string {
	return hasher.Hash(p.Canonical())
}

// IsGenesis reports whether the block has the genesis shape.
func (b Block) IsGenesis() bool {
	return b.Payload.Seq == 0 && b.Payload.PreviousHash == "" && b.Headers.Nonce == 0
}
