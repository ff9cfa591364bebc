// Package types
package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKindsDistinct(t *testing.T) {
	kinds := []error{
		ErrUnauthorized,
		ErrAssetUnavailable,
		ErrProposalNotFound,
		ErrVotingClosed,
		ErrVotingStillOpen,
		ErrAlreadyExecuted,
		ErrAlreadyVoted,
		ErrInsufficientFunds,
		ErrRecordNotFound,
		ErrRecordExist,
	}
	seen := make(map[string]bool)
	for _, k := range kinds {
		assert.False(t, seen[k.Error()], "duplicated error message: %s", k.Error())
		seen[k.Error()] = true
	}
}

func TestProposalHasVoted(t *testing.T) {
	p := &Proposal{UsedTokens: []string{"1", "7"}}
	assert.True(t, p.HasVoted("7"))
	assert.False(t, p.HasVoted("2"))
}
