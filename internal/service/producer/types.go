package producer

import (
	"context"
	"time"

	"github.com/goodnatureofminers/powchain/internal/blockchain"
	"github.com/goodnatureofminers/powchain/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Chain interface {
		CreateBlock(data string) (model.Payload, error)
		MineBlock(ctx context.Context, payload model.Payload, opts ...blockchain.MineOption) (model.Block, error)
		SendBlock(block model.Block) ([]model.Block, error)
	}
	Metrics interface {
		ObserveProduce(err error, started time.Time)
	}
)
