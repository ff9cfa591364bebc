// Package oracle
package oracle

import (
	"context"
	"errors"
	"math/big"

	"go.uber.org/zap"
)

type Adapter string

const (
	ChainAdapter  Adapter = "chain"
	MemoryAdapter Adapter = "memory"
)

// Membership answers who currently holds the qualifying token. Holdings
// change between calls, so results are queried fresh and never cached.
type Membership interface {
	BalanceOf(ctx context.Context, identity string) (uint64, error)
	TokensHeldBy(ctx context.Context, identity string) ([]string, error)
}

// Marketplace exposes the asset listing and the atomic purchase
// operation: Purchase either transfers the asset or fails leaving
// state unchanged.
type Marketplace interface {
	IsAvailable(ctx context.Context, assetID string) (bool, error)
	PriceOf(ctx context.Context, assetID string) (*big.Int, error)
	Purchase(ctx context.Context, assetID string, amount *big.Int) error
}

type Config struct {
	Adapter Adapter

	URLs                []string
	MembershipContract  string
	MarketplaceContract string

	Logger *zap.Logger
}

func NewMembership(cfg Config) (Membership, error) {
	switch cfg.Adapter {
	case ChainAdapter:
		n, err := newNode(cfg.URLs, cfg.Logger)
		if err != nil {
			return nil, err
		}
		return newChainMembership(n, cfg.MembershipContract, cfg.Logger)
	case MemoryAdapter:
		return NewMemoryMembership(), nil
	}
	return nil, errors.New("invalid oracle config")
}

func NewMarketplace(cfg Config) (Marketplace, error) {
	switch cfg.Adapter {
	case ChainAdapter:
		n, err := newNode(cfg.URLs, cfg.Logger)
		if err != nil {
			return nil, err
		}
		return newChainMarketplace(n, cfg.MarketplaceContract, cfg.Logger)
	case MemoryAdapter:
		return NewMemoryMarketplace(), nil
	}
	return nil, errors.New("invalid oracle config")
}
