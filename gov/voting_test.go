// Package gov
package gov

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/maverickdao/governance-backend/types"
)

func createOpenProposal(t *testing.T, env *testEnv, proposer string) uint64 {
	ctx := context.Background()
	env.marketplace.List("7", big.NewInt(2))
	if balance, _ := env.membership.BalanceOf(ctx, proposer); balance == 0 {
		env.membership.Grant(proposer, "100")
	}
	id, err := env.engine.CreateProposal(ctx, proposer, "7")
	assert.Nil(t, err)
	return id
}

// Two identities vote For with distinct tokens, a third
// identity without the qualifying asset is rejected, and the tally
// stays 2-0.
func TestVoteTallyAndEligibility(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, big.NewInt(5))
	env.membership.Grant("0xaa", "1")
	env.membership.Grant("0xbb", "2")
	id := createOpenProposal(t, env, "0xaa")

	assert.Nil(t, env.engine.Vote(ctx, "0xaa", id, types.VoteFor, "1"))
	assert.Nil(t, env.engine.Vote(ctx, "0xbb", id, types.VoteFor, "2"))
	assert.Equal(t, types.ErrUnauthorized, env.engine.Vote(ctx, "0xcc", id, types.VoteFor, ""))

	proposal, err := env.engine.Proposal(ctx, id)
	assert.Nil(t, err)
	assert.Equal(t, uint64(2), proposal.VotesFor)
	assert.Equal(t, uint64(0), proposal.VotesAgainst)
}

func TestVoteNotFound(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, big.NewInt(5))
	env.membership.Grant("0xaa", "1")

	err := env.engine.Vote(ctx, "0xaa", 9, types.VoteFor, "")
	assert.Equal(t, types.ErrProposalNotFound, err)
}

// Deadline monotonicity: a vote at or past the deadline never succeeds.
func TestVoteAfterDeadline(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, big.NewInt(5))
	env.membership.Grant("0xaa", "1")
	id := createOpenProposal(t, env, "0xaa")

	env.clock.Advance(testVotingPeriod)
	err := env.engine.Vote(ctx, "0xaa", id, types.VoteFor, "1")
	assert.Equal(t, types.ErrVotingClosed, err)

	env.clock.Advance(time.Hour)
	err = env.engine.Vote(ctx, "0xaa", id, types.VoteFor, "1")
	assert.Equal(t, types.ErrVotingClosed, err)

	proposal, _ := env.engine.Proposal(ctx, id)
	assert.Equal(t, uint64(0), proposal.VotesFor)
}

// A token spent on proposal 0 cannot vote there again, even
// flipping sides, but the same token is fresh on another proposal.
func TestVoteTokenPerProposal(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, big.NewInt(5))
	env.membership.Grant("0xaa", "1")
	first := createOpenProposal(t, env, "0xaa")
	env.marketplace.List("8", big.NewInt(2))
	second, err := env.engine.CreateProposal(ctx, "0xaa", "8")
	assert.Nil(t, err)

	assert.Nil(t, env.engine.Vote(ctx, "0xaa", first, types.VoteFor, "1"))
	assert.Equal(t, types.ErrAlreadyVoted, env.engine.Vote(ctx, "0xaa", first, types.VoteAgainst, "1"))
	assert.Nil(t, env.engine.Vote(ctx, "0xaa", second, types.VoteAgainst, "1"))

	proposal, _ := env.engine.Proposal(ctx, first)
	assert.Equal(t, uint64(1), proposal.VotesFor)
	assert.Equal(t, uint64(0), proposal.VotesAgainst)
}

// Token-weighted voting: one identity holding several tokens may cast
// one vote per token on the same proposal; the engine picks the first
// unused token when none is named.
func TestVoteMultipleTokensSameProposal(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, big.NewInt(5))
	env.membership.Grant("0xaa", "1", "2", "3")
	id := createOpenProposal(t, env, "0xaa")

	assert.Nil(t, env.engine.Vote(ctx, "0xaa", id, types.VoteFor, ""))
	assert.Nil(t, env.engine.Vote(ctx, "0xaa", id, types.VoteFor, ""))
	assert.Nil(t, env.engine.Vote(ctx, "0xaa", id, types.VoteAgainst, ""))
	assert.Equal(t, types.ErrAlreadyVoted, env.engine.Vote(ctx, "0xaa", id, types.VoteFor, ""))

	proposal, _ := env.engine.Proposal(ctx, id)
	assert.Equal(t, uint64(2), proposal.VotesFor)
	assert.Equal(t, uint64(1), proposal.VotesAgainst)
	assert.Equal(t, 3, len(proposal.UsedTokens))
}

func TestVoteWithForeignToken(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, big.NewInt(5))
	env.membership.Grant("0xaa", "1")
	env.membership.Grant("0xbb", "2")
	id := createOpenProposal(t, env, "0xaa")

	// naming a token held by someone else is an eligibility failure
	err := env.engine.Vote(ctx, "0xaa", id, types.VoteFor, "2")
	assert.Equal(t, types.ErrUnauthorized, err)
}

func TestVoteInvalidChoice(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, big.NewInt(5))
	env.membership.Grant("0xaa", "1")
	id := createOpenProposal(t, env, "0xaa")

	err := env.engine.Vote(ctx, "0xaa", id, types.VoteChoice(7), "1")
	assert.NotNil(t, err)
	proposal, _ := env.engine.Proposal(ctx, id)
	assert.Equal(t, uint64(0), proposal.VotesFor+proposal.VotesAgainst)
}

// Vote conservation: accepted votes never exceed distinct consumed
// tokens, and holdings transferred mid-vote cannot double count.
func TestVoteConservationAcrossTransfers(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, big.NewInt(5))
	env.membership.Grant("0xaa", "1")
	id := createOpenProposal(t, env, "0xaa")

	assert.Nil(t, env.engine.Vote(ctx, "0xaa", id, types.VoteFor, "1"))

	// token 1 moves to another identity; it stays spent for this proposal
	env.membership.Revoke("0xaa", "1")
	env.membership.Grant("0xbb", "1")
	assert.Equal(t, types.ErrAlreadyVoted, env.engine.Vote(ctx, "0xbb", id, types.VoteAgainst, "1"))

	proposal, _ := env.engine.Proposal(ctx, id)
	assert.Equal(t, proposal.VotesFor+proposal.VotesAgainst, uint64(len(proposal.UsedTokens)))
}
