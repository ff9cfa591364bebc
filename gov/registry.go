// Package gov
package gov

import (
	"context"

	"go.uber.org/zap"

	"github.com/maverickdao/governance-backend/types"
)

// CreateProposal registers a new purchase proposal. The caller must
// hold at least one qualifying token and the target asset must be
// listed for sale right now; both oracles are queried fresh.
func (e *Engine) CreateProposal(ctx context.Context, caller, targetAssetID string) (uint64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	balance, err := e.membership.BalanceOf(ctx, caller)
	if err != nil {
		return 0, err
	}
	if balance == 0 {
		return 0, types.ErrUnauthorized
	}

	available, err := e.marketplace.IsAvailable(ctx, targetAssetID)
	if err != nil {
		return 0, err
	}
	if !available {
		return 0, types.ErrAssetUnavailable
	}

	id, err := e.store.NextProposalID(ctx)
	if err != nil {
		return 0, err
	}
	now := e.clock.Now()
	proposal := &types.Proposal{
		ID:            id,
		TargetAssetID: targetAssetID,
		Proposer:      caller,
		Deadline:      now.Add(e.votingPeriod).Unix(),
		CreatedTime:   now.Unix(),
		UpdateTime:    now.Unix(),
	}
	if err := e.store.InsertProposal(ctx, proposal); err != nil {
		return 0, err
	}
	e.lgr.Info("Proposal created",
		zap.Uint64("id", id),
		zap.String("assetId", targetAssetID),
		zap.String("proposer", caller),
		zap.Int64("deadline", proposal.Deadline))
	return id, nil
}

// Proposal is a pure read of a single registry record.
func (e *Engine) Proposal(ctx context.Context, proposalID uint64) (*types.Proposal, error) {
	return e.store.ProposalByID(ctx, proposalID)
}

func (e *Engine) Proposals(ctx context.Context, pagination *types.Pagination) ([]*types.Proposal, uint64, error) {
	return e.store.Proposals(ctx, pagination)
}

func (e *Engine) ProposalCount(ctx context.Context) (uint64, error) {
	return e.store.ProposalCount(ctx)
}
