// Package producer drives a chain through repeated propose, mine and send rounds.
package producer

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goodnatureofminers/powchain/internal/blockchain"
	"github.com/goodnatureofminers/powchain/internal/clock"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// Config controls a production run.
type Config struct {
	// Blocks is the number of accepted blocks after which Run returns. Zero runs until ctx ends.
	Blocks uint64
	// DataTemplate is the payload data; "{n}" is replaced by the round number.
	DataTemplate string
	// Rate caps rounds per second. Zero or less disables the cap.
	Rate int
	// MaxAttempts bounds each nonce search. Zero means unbounded.
	MaxAttempts uint64
	// RetryDelay is the back-off after a search runs out of attempts.
	RetryDelay time.Duration
}

// Service produces blocks on a chain until its budget is spent or ctx ends.
type Service struct {
	chain   Chain
	metrics Metrics
	cfg     Config
	logger  *zap.Logger
	limiter ratelimit.Limiter
	sleep   func(context.Context, time.Duration) error
}

// New builds a Service.
func New(chain Chain, metrics Metrics, cfg Config, logger *zap.Logger) (*Service, error) {
	if chain == nil {
		return nil, errors.New("producer chain is required")
	}
	if metrics == nil {
		return nil, errors.New("producer metrics is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.DataTemplate == "" {
		cfg.DataTemplate = defaultDataTemplate
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = defaultRetryDelay
	}

	limiter := ratelimit.NewUnlimited()
	if cfg.Rate > 0 {
		limiter = ratelimit.New(cfg.Rate)
	}

	return &Service{
		chain:   chain,
		metrics: metrics,
		cfg:     cfg,
		logger:  logger,
		limiter: limiter,
		sleep:   clock.SleepWithContext,
	}, nil
}

// Run produces blocks until cfg.Blocks have been accepted or ctx is canceled.
// Rejected blocks are logged and the next round proposes against the new tip.
func (s *Service) Run(ctx context.Context) error {
	var accepted uint64
	for round := uint64(1); s.cfg.Blocks == 0 || accepted < s.cfg.Blocks; round++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.limiter.Take()

		err := s.produce(ctx, round)
		switch {
		case err == nil:
			accepted++
		case errors.Is(err, blockchain.ErrRejectedLinkage), errors.Is(err, blockchain.ErrRejectedProofOfWork):
			s.logger.Warn("produced block rejected, proposing again", zap.Uint64("round", round), zap.Error(err))
		case errors.Is(err, blockchain.ErrMiningExhausted):
			s.logger.Warn("mining ran out of attempts, backing off",
				zap.Uint64("round", round),
				zap.Duration("sleep", s.cfg.RetryDelay),
				zap.Error(err),
			)
			if sleepErr := s.sleep(ctx, s.cfg.RetryDelay); sleepErr != nil {
				return sleepErr
			}
		default:
			return err
		}
	}

	s.logger.Info("production finished", zap.Uint64("blocks", accepted))
	return nil
}

func (s *Service) produce(ctx context.Context, round uint64) (err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveProduce(err, started)
	}()

	data := strings.ReplaceAll(s.cfg.DataTemplate, roundPlaceholder, strconv.FormatUint(round, 10))
	payload, err := s.chain.CreateBlock(data)
	if err != nil {
		return fmt.Errorf("propose round %d: %w", round, err)
	}

	block, err := s.chain.MineBlock(ctx, payload, blockchain.WithMaxAttempts(s.cfg.MaxAttempts))
	if err != nil {
		return err
	}

	chain, err := s.chain.SendBlock(block)
	if err != nil {
		return err
	}
	s.logger.Debug("round complete",
		zap.Uint64("round", round),
		zap.Uint64("seq", block.Payload.Seq),
		zap.Int("height", len(chain)),
	)
	return nil
}
