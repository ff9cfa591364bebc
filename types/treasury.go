// Package types
package types

type TreasuryEntryKind string

const (
	TreasuryCredit TreasuryEntryKind = "credit"
	TreasuryDebit  TreasuryEntryKind = "debit"
)

// TreasuryEntry is one line of the append-only treasury ledger. Amount
// is a decimal big.Int string in base units.
type TreasuryEntry struct {
	Kind       TreasuryEntryKind `json:"kind" bson:"kind"`
	Amount     string            `json:"amount" bson:"amount"`
	From       string            `json:"from,omitempty" bson:"from,omitempty"`
	ProposalID uint64            `json:"proposalId,omitempty" bson:"proposalId,omitempty"`
	Time       int64             `json:"time" bson:"time"`
}

type TreasuryInfo struct {
	Balance    string `json:"balance"`
	UpdateTime int64  `json:"updateTime"`
}
