// Package types
package types

import (
	"errors"
)

var ErrUnauthorized = errors.New("caller holds no qualifying token")
var ErrAssetUnavailable = errors.New("asset is not listed for sale")
var ErrProposalNotFound = errors.New("proposal not found")
var ErrVotingClosed = errors.New("voting window has closed")
var ErrVotingStillOpen = errors.New("voting window is still open")
var ErrAlreadyExecuted = errors.New("proposal already executed")
var ErrAlreadyVoted = errors.New("voting token already used on this proposal")
var ErrInsufficientFunds = errors.New("treasury balance cannot cover amount")
var ErrRecordNotFound = errors.New("record not found")
var ErrRecordExist = errors.New("record exist")
