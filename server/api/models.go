// Package api
package api

type PagingResponse struct {
	Page  int         `json:"page"`
	Limit int         `json:"limit"`
	Total uint64      `json:"total"`
	Data  interface{} `json:"data"`
}

type CreateProposalRequest struct {
	Caller  string `json:"caller"`
	AssetID string `json:"assetId"`
}

type CreateProposalResponse struct {
	ProposalID uint64 `json:"proposalId"`
}

type VoteRequest struct {
	Caller  string `json:"caller"`
	Choice  int    `json:"choice"`
	TokenID string `json:"tokenId,omitempty"`
}

type ExecuteResponse struct {
	ProposalID uint64 `json:"proposalId"`
	Outcome    string `json:"outcome"`
}

type DepositRequest struct {
	From   string `json:"from"`
	Amount string `json:"amount"`
}

type TreasuryResponse struct {
	Balance string `json:"balance"`
}
