// Package db
package db

import (
	"context"
	"errors"
	"math/big"

	"go.uber.org/zap"

	"github.com/maverickdao/governance-backend/types"
)

type Adapter string

const (
	MGO    Adapter = "mgo"
	Memory Adapter = "memory"
)

type Config struct {
	DbAdapter Adapter
	DbName    string
	URL       string
	MinConn   int
	MaxConn   int
	FlushDB   bool

	Logger *zap.Logger
}

// IProposal owns the append-only proposal registry records. Proposal
// ids are allocated through NextProposalID and never reused.
type IProposal interface {
	NextProposalID(ctx context.Context) (uint64, error)
	InsertProposal(ctx context.Context, proposal *types.Proposal) error
	UpdateProposal(ctx context.Context, proposal *types.Proposal) error
	ProposalByID(ctx context.Context, proposalID uint64) (*types.Proposal, error)
	Proposals(ctx context.Context, pagination *types.Pagination) ([]*types.Proposal, uint64, error)
	ProposalCount(ctx context.Context) (uint64, error)
}

// ITreasury persists the single treasury balance and its ledger.
type ITreasury interface {
	TreasuryBalance(ctx context.Context) (*big.Int, error)
	UpdateTreasuryBalance(ctx context.Context, balance *big.Int) error
	InsertTreasuryEntry(ctx context.Context, entry *types.TreasuryEntry) error
	TreasuryEntries(ctx context.Context, pagination *types.Pagination) ([]*types.TreasuryEntry, uint64, error)
}

type Client interface {
	ping() error
	dropDatabase(ctx context.Context) error

	IProposal
	ITreasury
}

func NewClient(cfg Config) (Client, error) {
	switch cfg.DbAdapter {
	case MGO:
		return newMongoDB(cfg)
	case Memory:
		return newMemStore(cfg), nil
	default:
		return nil, errors.New("invalid db config")
	}
}
