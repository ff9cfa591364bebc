// Package db
package db

import (
	"context"
	"math/big"
	"sync"

	"go.uber.org/zap"

	"github.com/maverickdao/governance-backend/types"
)

// memStore keeps the full registry in process memory. It backs isolated
// tests and dev mode with the same Client behavior as the mongo
// adapter.
type memStore struct {
	mu sync.RWMutex

	nextID    uint64
	proposals map[uint64]*types.Proposal

	balance    *big.Int
	balanceSet bool
	ledger     []*types.TreasuryEntry

	logger *zap.Logger
}

func newMemStore(cfg Config) *memStore {
	return &memStore{
		proposals: make(map[uint64]*types.Proposal),
		balance:   big.NewInt(0),
		logger:    cfg.Logger,
	}
}

func (m *memStore) ping() error { return nil }

func (m *memStore) dropDatabase(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID = 0
	m.proposals = make(map[uint64]*types.Proposal)
	m.balance = big.NewInt(0)
	m.balanceSet = false
	m.ledger = nil
	return nil
}

func (m *memStore) NextProposalID(ctx context.Context) (uint64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextID
	m.nextID++
	return id, nil
}

func copyProposal(p *types.Proposal) *types.Proposal {
	c := *p
	c.UsedTokens = make([]string, len(p.UsedTokens))
	copy(c.UsedTokens, p.UsedTokens)
	return &c
}

func (m *memStore) InsertProposal(ctx context.Context, proposal *types.Proposal) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.proposals[proposal.ID]; ok {
		return types.ErrRecordExist
	}
	m.proposals[proposal.ID] = copyProposal(proposal)
	return nil
}

func (m *memStore) UpdateProposal(ctx context.Context, proposal *types.Proposal) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.proposals[proposal.ID] = copyProposal(proposal)
	return nil
}

func (m *memStore) ProposalByID(ctx context.Context, proposalID uint64) (*types.Proposal, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	proposal, ok := m.proposals[proposalID]
	if !ok {
		return nil, types.ErrProposalNotFound
	}
	return copyProposal(proposal), nil
}

func (m *memStore) Proposals(ctx context.Context, pagination *types.Pagination) ([]*types.Proposal, uint64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	total := uint64(len(m.proposals))
	skip, limit := 0, int(total)
	if pagination != nil {
		skip, limit = pagination.Skip, pagination.Limit
	}
	var proposals []*types.Proposal
	// ids are dense, walk them in creation order
	for id := uint64(skip); id < m.nextID && len(proposals) < limit; id++ {
		if proposal, ok := m.proposals[id]; ok {
			proposals = append(proposals, copyProposal(proposal))
		}
	}
	return proposals, total, nil
}

func (m *memStore) ProposalCount(ctx context.Context) (uint64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return uint64(len(m.proposals)), nil
}

func (m *memStore) TreasuryBalance(ctx context.Context) (*big.Int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.balanceSet {
		return nil, types.ErrRecordNotFound
	}
	return new(big.Int).Set(m.balance), nil
}

func (m *memStore) UpdateTreasuryBalance(ctx context.Context, balance *big.Int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.balance = new(big.Int).Set(balance)
	m.balanceSet = true
	return nil
}

func (m *memStore) InsertTreasuryEntry(ctx context.Context, entry *types.TreasuryEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := *entry
	// newest first, matching the mongo sort
	m.ledger = append([]*types.TreasuryEntry{&e}, m.ledger...)
	return nil
}

func (m *memStore) TreasuryEntries(ctx context.Context, pagination *types.Pagination) ([]*types.TreasuryEntry, uint64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	total := uint64(len(m.ledger))
	skip, limit := 0, int(total)
	if pagination != nil {
		skip, limit = pagination.Skip, pagination.Limit
	}
	if skip > len(m.ledger) {
		skip = len(m.ledger)
	}
	end := skip + limit
	if end > len(m.ledger) {
		end = len(m.ledger)
	}
	entries := make([]*types.TreasuryEntry, 0, end-skip)
	for _, entry := range m.ledger[skip:end] {
		e := *entry
		entries = append(entries, &e)
	}
	return entries, total, nil
}
