// Package blockchain owns the hash-linked chain: genesis creation, block
// proposal, proof-of-work mining and the verify-and-append gate.
package blockchain

import (
	"fmt"
	"sync"
	"time"

	"github.com/goodnatureofminers/powchain/internal/clock"
	"github.com/goodnatureofminers/powchain/internal/model"
	"github.com/goodnatureofminers/powchain/internal/pow"
	"go.uber.org/zap"
)

// Blockchain is a single-writer chain of blocks sealed by proof-of-work.
// It is safe for concurrent use; SendBlock checks and appends under one lock.
type Blockchain struct {
	mu sync.RWMutex

	difficulty uint32
	prefix     string
	chain      []model.Block

	logger  *zap.Logger
	metrics Metrics
	now     clock.Now
}

// New creates a chain holding only the genesis block.
func New(difficulty uint32, prefix string, logger *zap.Logger, metrics Metrics) *Blockchain {
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}

	bc := &Blockchain{
		difficulty: difficulty,
		prefix:     prefix,
		logger: logger.With(
			zap.Uint32("difficulty", difficulty),
			zap.String("prefix", prefix),
		),
		metrics: metrics,
		now:     clock.System,
	}
	bc.appendGenesis()
	return bc
}

func (bc *Blockchain) appendGenesis() {
	payload := model.Payload{
		Seq:          0,
		Timestamp:    bc.now().Unix(),
		Data:         model.GenesisData,
		PreviousHash: "",
	}
	genesis := model.Block{
		Headers: model.Header{BlockHash: payload.Hash(), Nonce: 0},
		Payload: payload,
	}

	bc.mu.Lock()
	bc.chain = append(bc.chain[:0], genesis)
	bc.mu.Unlock()

	bc.metrics.SetHeight(1)
	bc.logger.Debug("genesis block created", zap.String("hash", genesis.Headers.BlockHash))
}

// Difficulty returns the number of prefix symbols a sealed digest must start with.
func (bc *Blockchain) Difficulty() uint32 { return bc.difficulty }

// Prefix returns the proof-of-work prefix symbol.
func (bc *Blockchain) Prefix() string { return bc.prefix }

// Len returns the number of blocks, genesis included.
func (bc *Blockchain) Len() int {
	bc.mu.RLock()
	defer bc.mu.RUnlock()
	return len(bc.chain)
}

// Blocks returns a copy of the chain in order.
func (bc *Blockchain) Blocks() []model.Block {
	bc.mu.RLock()
	defer bc.mu.RUnlock()
	return bc.snapshot()
}

func (bc *Blockchain) snapshot() []model.Block {
	out := make([]model.Block, len(bc.chain))
	copy(out, bc.chain)
	return out
}

// LastBlock returns the chain tip.
func (bc *Blockchain) LastBlock() (model.Block, error) {
	bc.mu.RLock()
	defer bc.mu.RUnlock()
	return bc.lastBlock()
}

func (bc *Blockchain) lastBlock() (model.Block, error) {
	if len(bc.chain) == 0 {
		return model.Block{}, ErrChainEmpty
	}
	return bc.chain[len(bc.chain)-1], nil
}

// LastHash returns the block hash of the chain tip.
func (bc *Blockchain) LastHash() (string, error) {
	last, err := bc.LastBlock()
	if err != nil {
		return "", err
	}
	return last.Headers.BlockHash, nil
}

// CreateBlock proposes the payload that would extend the current tip.
// The chain is not modified.
func (bc *Blockchain) CreateBlock(data string) (model.Payload, error) {
	last, err := bc.LastBlock()
	if err != nil {
		return model.Payload{}, fmt.Errorf("create block: %w", err)
	}
	return model.Payload{
		Seq:          last.Payload.Seq + 1,
		Timestamp:    bc.now().Unix(),
		Data:         data,
		PreviousHash: last.Headers.BlockHash,
	}, nil
}

// VerifyBlock applies the acceptance checks of SendBlock against the current
// tip without appending.
func (bc *Blockchain) VerifyBlock(block model.Block) error {
	bc.mu.RLock()
	defer bc.mu.RUnlock()
	_, err := bc.verify(block)
	return err
}

// verify returns the recomputed block hash when the block may extend the tip.
// The caller holds mu.
func (bc *Blockchain) verify(block model.Block) (string, error) {
	last, err := bc.lastBlock()
	if err != nil {
		return "", err
	}
	if block.Payload.PreviousHash != last.Headers.BlockHash {
		return "", fmt.Errorf("%w: got %q, tip %q", ErrRejectedLinkage, block.Payload.PreviousHash, last.Headers.BlockHash)
	}

	blockHash := block.Payload.Hash()
	sealed := pow.Seal(blockHash, block.Headers.Nonce)
	if !pow.MeetsTarget(sealed, bc.prefix, bc.difficulty) {
		return "", fmt.Errorf("%w: nonce %d gives %s", ErrRejectedProofOfWork, block.Headers.Nonce, sealed)
	}
	return blockHash, nil
}

// SendBlock verifies block against the current tip and appends it on success.
// It returns the chain after the attempt. Rejections leave the chain unchanged
// and are reported as ErrRejectedLinkage or ErrRejectedProofOfWork.
//
// The block's stated BlockHash is not trusted; the appended block carries the
// hash recomputed from its payload.
func (bc *Blockchain) SendBlock(block model.Block) (blocks []model.Block, err error) {
	started := time.Now()
	defer func() {
		bc.metrics.ObserveSend(err, started)
	}()

	bc.mu.Lock()
	defer bc.mu.Unlock()

	blockHash, err := bc.verify(block)
	if err != nil {
		bc.logger.Warn("block rejected",
			zap.Uint64("seq", block.Payload.Seq),
			zap.Uint64("nonce", block.Headers.Nonce),
			zap.Error(err),
		)
		return bc.snapshot(), err
	}
	if block.Headers.BlockHash != blockHash {
		bc.logger.Debug("stated block hash replaced by recomputed hash",
			zap.String("stated", block.Headers.BlockHash),
			zap.String("hash", blockHash),
		)
		block.Headers.BlockHash = blockHash
	}

	bc.chain = append(bc.chain, block)
	bc.metrics.SetHeight(len(bc.chain))
	bc.logger.Info("block accepted",
		zap.Uint64("seq", block.Payload.Seq),
		zap.String("hash", blockHash),
		zap.Uint64("nonce", block.Headers.Nonce),
		zap.Int("height", len(bc.chain)),
	)
	return bc.snapshot(), nil
}
