package blockchain

import (
	"errors"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		ObserveMine(err error, attempts uint64, started time.Time)
		ObserveSend(err error, started time.Time)
		SetHeight(height int)
	}
)

var (
	// ErrChainEmpty means the chain has no blocks; the genesis invariant is broken.
	ErrChainEmpty = errors.New("chain is empty")
	// ErrRejectedLinkage means a block's previous hash is not the current tip.
	ErrRejectedLinkage = errors.New("block rejected: previous hash does not match chain tip")
	// ErrRejectedProofOfWork means a block's sealed digest misses the difficulty target.
	ErrRejectedProofOfWork = errors.New("block rejected: proof of work does not meet target")
	// ErrMiningExhausted means the nonce search hit its attempt limit.
	ErrMiningExhausted = errors.New("mining exhausted attempt limit")
	// ErrInvalidChain is returned by Validate when a stored block breaks a chain invariant.
	ErrInvalidChain = errors.New("invalid chain")
)

type noopMetrics struct{}

func (noopMetrics) ObserveMine(error, uint64, time.Time) {}
func (noopMetrics) ObserveSend(error, time.Time)         {}
func (noopMetrics) SetHeight(int)                        {}
