// Package gov
package gov

import (
	"context"

	"go.uber.org/zap"

	"github.com/maverickdao/governance-backend/types"
)

// Execute finalizes a proposal once its voting window has closed. The
// outcome marks the governance decision as final whether or not the
// downstream purchase succeeds: a decided proposal is never retried, so
// treasury exposure is bounded to a single attempt.
func (e *Engine) Execute(ctx context.Context, proposalID uint64) (types.ExecutionOutcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	proposal, err := e.store.ProposalByID(ctx, proposalID)
	if err != nil {
		return "", err
	}
	if e.clock.Now().Unix() < proposal.Deadline {
		return "", types.ErrVotingStillOpen
	}
	if proposal.Executed {
		return "", types.ErrAlreadyExecuted
	}

	// ties reject, votesFor must be strictly greater
	outcome := types.OutcomeRejected
	if proposal.VotesFor > proposal.VotesAgainst {
		outcome = e.attemptPurchase(ctx, proposal)
	}

	proposal.Executed = true
	proposal.Outcome = outcome
	proposal.UpdateTime = e.clock.Now().Unix()
	if err := e.store.UpdateProposal(ctx, proposal); err != nil {
		e.lgr.Error("cannot persist executed proposal", zap.Error(err), zap.Uint64("id", proposalID))
		return "", err
	}
	e.lgr.Info("Proposal executed",
		zap.Uint64("id", proposalID),
		zap.String("outcome", string(outcome)),
		zap.Uint64("votesFor", proposal.VotesFor),
		zap.Uint64("votesAgainst", proposal.VotesAgainst))
	return outcome, nil
}

func (e *Engine) attemptPurchase(ctx context.Context, proposal *types.Proposal) types.ExecutionOutcome {
	lgr := e.lgr.With(zap.Uint64("id", proposal.ID), zap.String("assetId", proposal.TargetAssetID))

	price, err := e.marketplace.PriceOf(ctx, proposal.TargetAssetID)
	if err != nil {
		lgr.Warn("cannot resolve purchase price", zap.Error(err))
		return types.OutcomeApprovedPurchaseFailed
	}
	if e.treasury.Balance().Cmp(price) < 0 {
		lgr.Warn("treasury cannot cover purchase", zap.String("price", price.String()))
		return types.OutcomeApprovedPurchaseFailed
	}
	available, err := e.marketplace.IsAvailable(ctx, proposal.TargetAssetID)
	if err != nil || !available {
		lgr.Warn("asset no longer available", zap.Error(err))
		return types.OutcomeApprovedPurchaseFailed
	}
	if err := e.marketplace.Purchase(ctx, proposal.TargetAssetID, price); err != nil {
		lgr.Warn("marketplace rejected purchase", zap.Error(err))
		return types.OutcomeApprovedPurchaseFailed
	}
	// The funds check above cannot be invalidated here: debits are
	// serialized by the engine lock and credits only grow the balance.
	if err := e.treasury.Debit(ctx, price, proposal.ID); err != nil {
		lgr.Error("cannot debit treasury after purchase", zap.Error(err))
		return types.OutcomeApprovedPurchaseFailed
	}
	proposal.PurchasePrice = price.String()
	return types.OutcomeApprovedPurchased
}
