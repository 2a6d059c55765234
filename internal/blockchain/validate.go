package blockchain

import (
	"context"
	"fmt"

	"github.com/goodnatureofminers/powchain/internal/model"
	"github.com/goodnatureofminers/powchain/internal/pow"
	"github.com/goodnatureofminers/powchain/pkg/workerpool"
	"go.uber.org/zap"
)

// Validate audits every stored block: genesis shape, sequence continuity,
// linkage, stored hash against the recomputed payload hash, and proof-of-work
// for every block after genesis. Hash and proof-of-work checks run on up to
// workers goroutines.
func (bc *Blockchain) Validate(ctx context.Context, workers int) error {
	blocks := bc.Blocks()
	if len(blocks) == 0 {
		return ErrChainEmpty
	}

	if !blocks[0].IsGenesis() {
		return fmt.Errorf("%w: block 0 is not a genesis block", ErrInvalidChain)
	}
	for i := 1; i < len(blocks); i++ {
		prev, cur := blocks[i-1], blocks[i]
		if cur.Payload.Seq != prev.Payload.Seq+1 {
			return fmt.Errorf("%w: block %d has seq %d after %d", ErrInvalidChain, i, cur.Payload.Seq, prev.Payload.Seq)
		}
		if cur.Payload.PreviousHash != prev.Headers.BlockHash {
			return fmt.Errorf("%w: block %d does not link to block %d", ErrInvalidChain, i, i-1)
		}
	}

	indexes := make([]int, len(blocks))
	for i := range indexes {
		indexes[i] = i
	}
	difficulty, prefix := bc.difficulty, bc.prefix
	err := workerpool.Process(ctx, workers, indexes, func(_ context.Context, i int) error {
		return checkSeal(i, blocks[i], prefix, difficulty)
	})
	if err != nil {
		bc.logger.Warn("chain audit failed", zap.Int("height", len(blocks)), zap.Error(err))
		return err
	}

	bc.logger.Debug("chain audit passed", zap.Int("height", len(blocks)))
	return nil
}

func checkSeal(i int, block model.Block, prefix string, difficulty uint32) error {
	blockHash := block.Payload.Hash()
	if blockHash != block.Headers.BlockHash {
		return fmt.Errorf("%w: block %d stored hash %s, payload hashes to %s", ErrInvalidChain, i, block.Headers.BlockHash, blockHash)
	}
	if i == 0 {
		return nil
	}
	if !pow.MeetsTarget(pow.Seal(blockHash, block.Headers.Nonce), prefix, difficulty) {
		return fmt.Errorf("%w: block %d nonce %d misses target", ErrInvalidChain, i, block.Headers.Nonce)
	}
	return nil
}
