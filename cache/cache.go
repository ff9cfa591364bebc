// Package cache
package cache

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/maverickdao/governance-backend/types"
)

type Adapter string

const (
	RedisAdapter  Adapter = "redis"
	MemoryAdapter Adapter = "memory"
)

type Config struct {
	Adapter Adapter
	URL     string
	DB      int

	IsFlush bool

	DefaultExpiredTime time.Duration

	Logger *zap.Logger
}

// Client holds the hot read paths: per-proposal snapshots, the registry
// count, the treasury balance and the operator-set server status.
// Everything in here is a copy of authoritative store state and safe to
// lose.
type Client interface {
	Proposal(ctx context.Context, proposalID uint64) (*types.Proposal, error)
	UpdateProposal(ctx context.Context, proposal *types.Proposal) error

	ProposalCount(ctx context.Context) (uint64, error)
	UpdateProposalCount(ctx context.Context, count uint64) error

	TreasuryBalance(ctx context.Context) (string, error)
	UpdateTreasuryBalance(ctx context.Context, balance string) error

	ServerStatus(ctx context.Context) (*types.ServerStatus, error)
	UpdateServerStatus(ctx context.Context, status *types.ServerStatus) error
}

func New(cfg Config) (Client, error) {
	switch cfg.Adapter {
	case RedisAdapter:
		return newRedis(cfg)
	case MemoryAdapter:
		return newMemCache(cfg), nil
	}
	return nil, errors.New("invalid cache config")
}
