package blockchain

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/powchain/internal/model"
	"github.com/goodnatureofminers/powchain/internal/pow"
	"go.uber.org/zap"
)

type mineOptions struct {
	maxAttempts uint64
}

// MineOption tunes a single MineBlock call.
type MineOption func(*mineOptions)

// WithMaxAttempts stops the nonce search after n candidates. Zero means unbounded.
func WithMaxAttempts(n uint64) MineOption {
	return func(o *mineOptions) {
		o.maxAttempts = n
	}
}

// MineBlock searches nonces upward from zero until the sealed digest meets the
// chain's target and returns the sealed block. The returned nonce is the
// smallest that satisfies the target. The search checks ctx on every attempt.
func (bc *Blockchain) MineBlock(ctx context.Context, payload model.Payload, opts ...MineOption) (block model.Block, err error) {
	var o mineOptions
	for _, opt := range opts {
		opt(&o)
	}

	started := time.Now()
	var attempts uint64
	defer func() {
		bc.metrics.ObserveMine(err, attempts, started)
	}()

	// The block hash does not depend on the nonce.
	blockHash := payload.Hash()
	difficulty, prefix := bc.difficulty, bc.prefix

	for nonce := uint64(0); ; nonce++ {
		if err := ctx.Err(); err != nil {
			bc.logger.Info("mining canceled",
				zap.Uint64("seq", payload.Seq),
				zap.Uint64("attempts", attempts),
				zap.Duration("elapsed", time.Since(started)),
			)
			return model.Block{}, fmt.Errorf("mine block %d: %w", payload.Seq, err)
		}
		if o.maxAttempts > 0 && attempts >= o.maxAttempts {
			return model.Block{}, fmt.Errorf("mine block %d after %d attempts: %w", payload.Seq, attempts, ErrMiningExhausted)
		}

		attempts++
		if pow.MeetsTarget(pow.Seal(blockHash, nonce), prefix, difficulty) {
			bc.logger.Info("block mined",
				zap.Uint64("seq", payload.Seq),
				zap.String("hash", blockHash),
				zap.Uint64("nonce", nonce),
				zap.Uint64("attempts", attempts),
				zap.Duration("elapsed", time.Since(started)),
			)
			return model.Block{
				Headers: model.Header{BlockHash: blockHash, Nonce: nonce},
				Payload: payload,
			}, nil
		}
	}
}
