package blockchain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/goodnatureofminers/powchain/internal/model"
	"github.com/goodnatureofminers/powchain/internal/pow"
)

func buildChain(t *testing.T, n int) *Blockchain {
	t.Helper()

	bc := New(1, "0", nil, nil)
	for i := 0; i < n; i++ {
		payload, err := bc.CreateBlock(fmt.Sprintf("block %d", i+1))
		if err != nil {
			t.Fatalf("CreateBlock() error = %v", err)
		}
		block, err := bc.MineBlock(context.Background(), payload)
		if err != nil {
			t.Fatalf("MineBlock() error = %v", err)
		}
		if _, err := bc.SendBlock(block); err != nil {
			t.Fatalf("SendBlock() error = %v", err)
		}
	}
	return bc
}

func TestBlockchain_Validate(t *testing.T) {
	tests := []struct {
		name    string
		tamper  func(blocks []model.Block)
		wantErr error
	}{
		{
			name: "intact chain",
		},
		{
			name: "payload changed after acceptance",
			tamper: func(blocks []model.Block) {
				blocks[2].Payload.Data = "rewritten"
			},
			wantErr: ErrInvalidChain,
		},
		{
			name: "broken link",
			tamper: func(blocks []model.Block) {
				blocks[3].Payload.PreviousHash = "00"
			},
			wantErr: ErrInvalidChain,
		},
		{
			name: "sequence gap",
			tamper: func(blocks []model.Block) {
				blocks[4].Payload.Seq = 9
			},
			wantErr: ErrInvalidChain,
		},
		{
			name: "genesis replaced",
			tamper: func(blocks []model.Block) {
				blocks[0].Payload.PreviousHash = "ff"
			},
			wantErr: ErrInvalidChain,
		},
		{
			name: "nonce replaced",
			tamper: func(blocks []model.Block) {
				b := blocks[1]
				for n := uint64(0); ; n++ {
					if !pow.MeetsTarget(pow.Seal(b.Headers.BlockHash, n), "0", 1) {
						blocks[1].Headers.Nonce = n
						return
					}
				}
			},
			wantErr: ErrInvalidChain,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			bc := buildChain(t, 5)
			if tt.tamper != nil {
				tt.tamper(bc.chain)
			}

			err := bc.Validate(context.Background(), 3)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("Validate() unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
