package gov

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maverickdao/governance-backend/types"
)

// Execution before the deadline fails.
func TestExecuteBeforeDeadline(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, big.NewInt(5))
	env.membership.Grant("0xaa", "1")
	id := createOpenProposal(t, env, "0xaa")

	_, err := env.engine.Execute(ctx, id)
	assert.Equal(t, types.ErrVotingStillOpen, err)
}

// Approved proposal, funded treasury, listed asset. The
// purchase debits exactly the price.
func TestExecuteApprovedPurchased(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, big.NewInt(5))
	env.membership.Grant("0xaa", "1")
	id := createOpenProposal(t, env, "0xaa")
	assert.Nil(t, env.engine.Vote(ctx, "0xaa", id, types.VoteFor, "1"))

	env.clock.Advance(testVotingPeriod)
	outcome, err := env.engine.Execute(ctx, id)
	assert.Nil(t, err)
	assert.Equal(t, types.OutcomeApprovedPurchased, outcome)
	assert.Equal(t, int64(3), env.treasury.Balance().Int64())

	proposal, _ := env.engine.Proposal(ctx, id)
	assert.True(t, proposal.Executed)
	assert.Equal(t, types.OutcomeApprovedPurchased, proposal.Outcome)
	assert.Equal(t, "2", proposal.PurchasePrice)

	available, _ := env.marketplace.IsAvailable(ctx, "7")
	assert.False(t, available)
}

// A tie rejects and the treasury is untouched.
func TestExecuteTieRejects(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, big.NewInt(5))
	env.membership.Grant("0xaa", "1")
	env.membership.Grant("0xbb", "2")
	id := createOpenProposal(t, env, "0xaa")
	assert.Nil(t, env.engine.Vote(ctx, "0xaa", id, types.VoteFor, "1"))
	assert.Nil(t, env.engine.Vote(ctx, "0xbb", id, types.VoteAgainst, "2"))

	env.clock.Advance(testVotingPeriod)
	outcome, err := env.engine.Execute(ctx, id)
	assert.Nil(t, err)
	assert.Equal(t, types.OutcomeRejected, outcome)
	assert.Equal(t, int64(5), env.treasury.Balance().Int64())

	available, _ := env.marketplace.IsAvailable(ctx, "7")
	assert.True(t, available)
}

// Execution finality: the second execute always fails and never touches
// the treasury, whatever the first outcome was.
func TestExecuteFinality(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, big.NewInt(5))
	env.membership.Grant("0xaa", "1")
	id := createOpenProposal(t, env, "0xaa")
	assert.Nil(t, env.engine.Vote(ctx, "0xaa", id, types.VoteFor, "1"))

	env.clock.Advance(testVotingPeriod)
	_, err := env.engine.Execute(ctx, id)
	assert.Nil(t, err)
	balance := env.treasury.Balance()

	_, err = env.engine.Execute(ctx, id)
	assert.Equal(t, types.ErrAlreadyExecuted, err)
	assert.Equal(t, balance, env.treasury.Balance())
}

func TestExecuteNotFound(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, big.NewInt(5))

	_, err := env.engine.Execute(ctx, 99)
	assert.Equal(t, types.ErrProposalNotFound, err)
}

// Insufficient funds finalize the decision as a failed purchase rather
// than erroring, and leave the balance alone.
func TestExecuteInsufficientFunds(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, big.NewInt(1))
	env.membership.Grant("0xaa", "1")
	id := createOpenProposal(t, env, "0xaa") // price 2
	assert.Nil(t, env.engine.Vote(ctx, "0xaa", id, types.VoteFor, "1"))

	env.clock.Advance(testVotingPeriod)
	outcome, err := env.engine.Execute(ctx, id)
	assert.Nil(t, err)
	assert.Equal(t, types.OutcomeApprovedPurchaseFailed, outcome)
	assert.Equal(t, int64(1), env.treasury.Balance().Int64())

	proposal, _ := env.engine.Proposal(ctx, id)
	assert.True(t, proposal.Executed)

	// decision stays final even after funds arrive
	assert.Nil(t, env.treasury.Credit(ctx, big.NewInt(10), "0xdd"))
	_, err = env.engine.Execute(ctx, id)
	assert.Equal(t, types.ErrAlreadyExecuted, err)
}

func TestExecuteAssetResold(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, big.NewInt(5))
	env.membership.Grant("0xaa", "1")
	id := createOpenProposal(t, env, "0xaa")
	assert.Nil(t, env.engine.Vote(ctx, "0xaa", id, types.VoteFor, "1"))

	// someone else buys the asset during the voting window
	assert.Nil(t, env.marketplace.Purchase(ctx, "7", big.NewInt(2)))

	env.clock.Advance(testVotingPeriod)
	outcome, err := env.engine.Execute(ctx, id)
	assert.Nil(t, err)
	assert.Equal(t, types.OutcomeApprovedPurchaseFailed, outcome)
	assert.Equal(t, int64(5), env.treasury.Balance().Int64())
}

func TestExecutePurchaseRejected(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, big.NewInt(5))
	env.membership.Grant("0xaa", "1")
	id := createOpenProposal(t, env, "0xaa")
	assert.Nil(t, env.engine.Vote(ctx, "0xaa", id, types.VoteFor, "1"))
	env.marketplace.SetPurchaseError(errors.New("transfer rejected"))

	env.clock.Advance(testVotingPeriod)
	outcome, err := env.engine.Execute(ctx, id)
	assert.Nil(t, err)
	assert.Equal(t, types.OutcomeApprovedPurchaseFailed, outcome)
	assert.Equal(t, int64(5), env.treasury.Balance().Int64())
}

// No votes at all resolves to rejected.
func TestExecuteNoVotesRejects(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, big.NewInt(5))
	env.membership.Grant("0xaa", "1")
	id := createOpenProposal(t, env, "0xaa")

	env.clock.Advance(testVotingPeriod)
	outcome, err := env.engine.Execute(ctx, id)
	assert.Nil(t, err)
	assert.Equal(t, types.OutcomeRejected, outcome)
}

// Treasury conservation: final balance equals funding plus credits
// minus the prices of Approved&Purchased executions only.
func TestTreasuryConservation(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, big.NewInt(10))
	env.membership.Grant("0xaa", "1")
	env.membership.Grant("0xbb", "2")

	env.marketplace.List("1", big.NewInt(3))
	env.marketplace.List("2", big.NewInt(4))
	env.marketplace.List("3", big.NewInt(2))

	bought, err := env.engine.CreateProposal(ctx, "0xaa", "1")
	assert.Nil(t, err)
	rejected, err := env.engine.CreateProposal(ctx, "0xaa", "2")
	assert.Nil(t, err)
	failed, err := env.engine.CreateProposal(ctx, "0xaa", "3")
	assert.Nil(t, err)

	assert.Nil(t, env.engine.Vote(ctx, "0xaa", bought, types.VoteFor, "1"))
	assert.Nil(t, env.engine.Vote(ctx, "0xaa", rejected, types.VoteAgainst, "1"))
	assert.Nil(t, env.engine.Vote(ctx, "0xaa", failed, types.VoteFor, "1"))

	// the failed proposal's asset disappears before execution
	env.marketplace.Delist("3")

	assert.Nil(t, env.treasury.Credit(ctx, big.NewInt(5), "0xcc"))

	env.clock.Advance(testVotingPeriod)
	outcome, err := env.engine.Execute(ctx, bought)
	assert.Nil(t, err)
	assert.Equal(t, types.OutcomeApprovedPurchased, outcome)
	outcome, err = env.engine.Execute(ctx, rejected)
	assert.Nil(t, err)
	assert.Equal(t, types.OutcomeRejected, outcome)
	outcome, err = env.engine.Execute(ctx, failed)
	assert.Nil(t, err)
	assert.Equal(t, types.OutcomeApprovedPurchaseFailed, outcome)

	// 10 initial + 5 credit - 3 purchased
	assert.Equal(t, int64(12), env.treasury.Balance().Int64())
}
