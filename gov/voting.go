// Package gov
package gov

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/maverickdao/governance-backend/types"
)

// Vote casts one ballot on an open proposal. Voting rights are
// token-weighted: each qualifying token may vote once per proposal, so
// an identity holding N tokens can cast up to N votes on the same
// proposal across separate calls. tokenID names the voting right to
// consume; when empty the first unused token currently held is chosen.
//
// Preconditions are checked in order and the first failure wins; a
// failed vote has no side effects.
func (e *Engine) Vote(ctx context.Context, caller string, proposalID uint64, choice types.VoteChoice, tokenID string) error {
	if !choice.Valid() {
		return fmt.Errorf("unknown vote choice %d", choice)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	proposal, err := e.store.ProposalByID(ctx, proposalID)
	if err != nil {
		return err
	}
	if e.clock.Now().Unix() >= proposal.Deadline {
		return types.ErrVotingClosed
	}
	// deadline and execution are logically, not physically, coupled;
	// check the terminal state on its own
	if proposal.Executed {
		return types.ErrAlreadyExecuted
	}

	balance, err := e.membership.BalanceOf(ctx, caller)
	if err != nil {
		return err
	}
	if balance == 0 {
		return types.ErrUnauthorized
	}
	held, err := e.membership.TokensHeldBy(ctx, caller)
	if err != nil {
		return err
	}

	voteToken, err := pickVoteToken(proposal, held, tokenID)
	if err != nil {
		return err
	}

	switch choice {
	case types.VoteFor:
		proposal.VotesFor++
	case types.VoteAgainst:
		proposal.VotesAgainst++
	}
	proposal.UsedTokens = append(proposal.UsedTokens, voteToken)
	proposal.UpdateTime = e.clock.Now().Unix()
	if err := e.store.UpdateProposal(ctx, proposal); err != nil {
		return err
	}
	e.lgr.Info("Vote accepted",
		zap.Uint64("id", proposalID),
		zap.String("voter", caller),
		zap.String("token", voteToken),
		zap.Uint64("choice", uint64(choice)))
	return nil
}

func pickVoteToken(proposal *types.Proposal, held []string, tokenID string) (string, error) {
	if tokenID != "" {
		for _, t := range held {
			if t != tokenID {
				continue
			}
			if proposal.HasVoted(tokenID) {
				return "", types.ErrAlreadyVoted
			}
			return tokenID, nil
		}
		// naming a token the caller does not hold is an eligibility
		// failure, not a consumed vote
		return "", types.ErrUnauthorized
	}
	for _, t := range held {
		if !proposal.HasVoted(t) {
			return t, nil
		}
	}
	return "", types.ErrAlreadyVoted
}
