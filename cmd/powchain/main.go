// Package main runs a single-node proof-of-work chain and prints the result.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/powchain/internal/blockchain"
	"github.com/goodnatureofminers/powchain/internal/metrics"
	"github.com/goodnatureofminers/powchain/internal/service/producer"
	"github.com/goodnatureofminers/powchain/pkg/safe"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type config struct {
	Network      string        `long:"network" env:"POWCHAIN_NETWORK" description:"network name used as metrics label" default:"local"`
	Difficulty   int           `long:"difficulty" env:"POWCHAIN_DIFFICULTY" description:"number of leading prefix symbols a sealed digest needs" default:"4"`
	Prefix       string        `long:"prefix" env:"POWCHAIN_PREFIX" description:"proof-of-work prefix symbol" default:"0"`
	Blocks       int           `long:"blocks" env:"POWCHAIN_BLOCKS" description:"blocks to produce, 0 runs until interrupted" default:"5"`
	Data         string        `long:"data" env:"POWCHAIN_DATA" description:"payload data, {n} is replaced by the round number" default:"block {n}"`
	Rate         int           `long:"rate" env:"POWCHAIN_RATE" description:"maximum production rounds per second, 0 disables the cap" default:"1"`
	MaxAttempts  int           `long:"max-attempts" env:"POWCHAIN_MAX_ATTEMPTS" description:"nonce attempts per block, 0 is unbounded" default:"0"`
	RetryDelay   time.Duration `long:"retry-delay" env:"POWCHAIN_RETRY_DELAY" description:"back-off after an exhausted search" default:"1s"`
	AuditWorkers int           `long:"audit-workers" env:"POWCHAIN_AUDIT_WORKERS" description:"workers used to audit the chain on exit" default:"4"`
	MetricsAddr  string        `long:"metrics-addr" env:"POWCHAIN_METRICS_ADDR" description:"address for metrics server, empty disables it" default:":2112"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("powchain failed", zap.Error(err))
	}
}

type settings struct {
	difficulty  uint32
	blocks      uint64
	maxAttempts uint64
}

func (c config) validate() (settings, error) {
	var (
		s   settings
		err error
	)
	if len([]rune(c.Prefix)) != 1 {
		return s, fmt.Errorf("prefix must be a single character, got %q", c.Prefix)
	}
	if s.difficulty, err = safe.Uint32(c.Difficulty); err != nil {
		return s, fmt.Errorf("difficulty: %w", err)
	}
	if s.blocks, err = safe.Uint64(c.Blocks); err != nil {
		return s, fmt.Errorf("blocks: %w", err)
	}
	if s.maxAttempts, err = safe.Uint64(c.MaxAttempts); err != nil {
		return s, fmt.Errorf("max-attempts: %w", err)
	}
	return s, nil
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	s, err := cfg.validate()
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if cfg.MetricsAddr != "" {
		startMetricsServer(ctx, cfg.MetricsAddr, logger)
	}

	chain := blockchain.New(s.difficulty, cfg.Prefix, logger.Named("chain"), metrics.NewChain(cfg.Network))
	svc, err := producer.New(chain, metrics.NewProducer(cfg.Network), producer.Config{
		Blocks:       s.blocks,
		DataTemplate: cfg.Data,
		Rate:         cfg.Rate,
		MaxAttempts:  s.maxAttempts,
		RetryDelay:   cfg.RetryDelay,
	}, logger.Named("producer"))
	if err != nil {
		return fmt.Errorf("init producer: %w", err)
	}

	runErr := svc.Run(ctx)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}

	auditCtx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := chain.Validate(auditCtx, cfg.AuditWorkers); err != nil {
		return fmt.Errorf("audit chain: %w", err)
	}

	printChain(chain)
	return nil
}

func printChain(chain *blockchain.Blockchain) {
	for _, b := range chain.Blocks() {
		fmt.Printf("#%d %s nonce=%d prev=%s data=%q\n",
			b.Payload.Seq, b.Headers.BlockHash, b.Headers.Nonce, b.Payload.PreviousHash, b.Payload.Data)
	}
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
