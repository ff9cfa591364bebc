// Package cache
package cache

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/maverickdao/governance-backend/types"
)

type memCache struct {
	mu sync.RWMutex

	proposals map[uint64]types.Proposal
	count     *uint64
	balance   string
	status    *types.ServerStatus

	logger *zap.Logger
}

func newMemCache(cfg Config) *memCache {
	return &memCache{
		proposals: make(map[uint64]types.Proposal),
		logger:    cfg.Logger,
	}
}

func (c *memCache) Proposal(ctx context.Context, proposalID uint64) (*types.Proposal, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	proposal, ok := c.proposals[proposalID]
	if !ok {
		return nil, types.ErrRecordNotFound
	}
	return &proposal, nil
}

func (c *memCache) UpdateProposal(ctx context.Context, proposal *types.Proposal) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.proposals[proposal.ID] = *proposal
	return nil
}

func (c *memCache) ProposalCount(ctx context.Context) (uint64, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.count == nil {
		return 0, types.ErrRecordNotFound
	}
	return *c.count, nil
}

func (c *memCache) UpdateProposalCount(ctx context.Context, count uint64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.count = &count
	return nil
}

func (c *memCache) TreasuryBalance(ctx context.Context) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.balance == "" {
		return "", types.ErrRecordNotFound
	}
	return c.balance, nil
}

func (c *memCache) UpdateTreasuryBalance(ctx context.Context, balance string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.balance = balance
	return nil
}

func (c *memCache) ServerStatus(ctx context.Context) (*types.ServerStatus, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.status == nil {
		return nil, types.ErrRecordNotFound
	}
	status := *c.status
	return &status, nil
}

func (c *memCache) UpdateServerStatus(ctx context.Context, status *types.ServerStatus) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := *status
	c.status = &s
	return nil
}
