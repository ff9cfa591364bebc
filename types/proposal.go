// Package types
package types

// VoteChoice is the ballot option submitted with a vote. The numeric
// values match the on-chain encoding (0 = for, 1 = against).
type VoteChoice uint64

const (
	VoteFor     VoteChoice = 0
	VoteAgainst VoteChoice = 1
)

func (v VoteChoice) Valid() bool {
	return v == VoteFor || v == VoteAgainst
}

// ExecutionOutcome is the final status recorded when a proposal is
// executed. The governance decision is final even when the downstream
// purchase fails.
type ExecutionOutcome string

const (
	OutcomeApprovedPurchased      ExecutionOutcome = "Approved&Purchased"
	OutcomeApprovedPurchaseFailed ExecutionOutcome = "Approved&PurchaseFailed"
	OutcomeRejected               ExecutionOutcome = "Rejected"
)

type Proposal struct {
	ID            uint64           `json:"id" bson:"id"`
	TargetAssetID string           `json:"targetAssetId" bson:"targetAssetId"`
	Proposer      string           `json:"proposer" bson:"proposer"`
	Deadline      int64            `json:"deadline" bson:"deadline"`
	VotesFor      uint64           `json:"votesFor" bson:"votesFor"`
	VotesAgainst  uint64           `json:"votesAgainst" bson:"votesAgainst"`
	Executed      bool             `json:"executed" bson:"executed"`
	Outcome       ExecutionOutcome `json:"outcome,omitempty" bson:"outcome,omitempty"`
	PurchasePrice string           `json:"purchasePrice,omitempty" bson:"purchasePrice,omitempty"`
	UsedTokens    []string         `json:"usedTokens" bson:"usedTokens"`
	CreatedTime   int64            `json:"createdTime" bson:"createdTime"`
	UpdateTime    int64            `json:"updateTime" bson:"updateTime"`
}

// HasVoted reports whether a voting token was already consumed for this
// proposal.
func (p *Proposal) HasVoted(tokenID string) bool {
	for _, t := range p.UsedTokens {
		if t == tokenID {
			return true
		}
	}
	return false
}
