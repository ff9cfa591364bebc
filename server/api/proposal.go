// Package api
package api

import (
	"context"

	"github.com/labstack/echo"
	"go.uber.org/zap"

	"github.com/maverickdao/governance-backend/types"
)

func (s *Server) CreateProposal(c echo.Context) error {
	lgr := s.logger.With(zap.String("method", "CreateProposal"))
	ctx := context.Background()
	var req CreateProposalRequest
	if err := c.Bind(&req); err != nil {
		lgr.Error("cannot bind request", zap.Error(err))
		return Invalid.Build(c)
	}
	if req.Caller == "" || req.AssetID == "" {
		return Invalid.Build(c)
	}
	proposalID, err := s.engine.CreateProposal(ctx, req.Caller, req.AssetID)
	if err != nil {
		return Err(err, c)
	}
	s.refreshProposalCache(ctx, proposalID)
	return OK.SetData(CreateProposalResponse{ProposalID: proposalID}).Build(c)
}

func (s *Server) Proposals(c echo.Context) error {
	ctx := context.Background()
	pagination, page, limit := getPagingOption(c)
	proposals, total, err := s.engine.Proposals(ctx, pagination)
	if err != nil {
		return Err(err, c)
	}
	return OK.SetData(PagingResponse{
		Page:  page,
		Limit: limit,
		Total: total,
		Data:  proposals,
	}).Build(c)
}

func (s *Server) Proposal(c echo.Context) error {
	ctx := context.Background()
	proposalID, err := getProposalID(c)
	if err != nil {
		return Invalid.Build(c)
	}
	proposal, err := s.cacheClient.Proposal(ctx, proposalID)
	if err == nil && proposal != nil {
		return OK.SetData(proposal).Build(c)
	}
	proposal, err = s.engine.Proposal(ctx, proposalID)
	if err != nil {
		return Err(err, c)
	}
	if err := s.cacheClient.UpdateProposal(ctx, proposal); err != nil {
		s.logger.Warn("cannot store proposal to cache", zap.Error(err))
	}
	return OK.SetData(proposal).Build(c)
}

func (s *Server) ProposalCount(c echo.Context) error {
	ctx := context.Background()
	count, err := s.cacheClient.ProposalCount(ctx)
	if err != nil {
		count, err = s.engine.ProposalCount(ctx)
		if err != nil {
			return Err(err, c)
		}
		if err := s.cacheClient.UpdateProposalCount(ctx, count); err != nil {
			s.logger.Warn("cannot store proposal count to cache", zap.Error(err))
		}
	}
	return OK.SetData(struct {
		Total uint64 `json:"total"`
	}{Total: count}).Build(c)
}

func (s *Server) Vote(c echo.Context) error {
	lgr := s.logger.With(zap.String("method", "Vote"))
	ctx := context.Background()
	proposalID, err := getProposalID(c)
	if err != nil {
		return Invalid.Build(c)
	}
	var req VoteRequest
	if err := c.Bind(&req); err != nil {
		lgr.Error("cannot bind request", zap.Error(err))
		return Invalid.Build(c)
	}
	if req.Caller == "" {
		return Invalid.Build(c)
	}
	choice := types.VoteChoice(req.Choice)
	if !choice.Valid() {
		return Invalid.Build(c)
	}
	if err := s.engine.Vote(ctx, req.Caller, proposalID, choice, req.TokenID); err != nil {
		return Err(err, c)
	}
	s.refreshProposalCache(ctx, proposalID)
	return OK.SetData(nil).Build(c)
}

func (s *Server) Execute(c echo.Context) error {
	ctx := context.Background()
	proposalID, err := getProposalID(c)
	if err != nil {
		return Invalid.Build(c)
	}
	outcome, err := s.engine.Execute(ctx, proposalID)
	if err != nil {
		return Err(err, c)
	}
	s.refreshProposalCache(ctx, proposalID)
	s.refreshTreasuryCache(ctx)
	return OK.SetData(ExecuteResponse{
		ProposalID: proposalID,
		Outcome:    string(outcome),
	}).Build(c)
}

// refreshProposalCache repopulates the cached snapshot after a
// mutation. Cache failures are logged only, the store stays
// authoritative.
func (s *Server) refreshProposalCache(ctx context.Context, proposalID uint64) {
	proposal, err := s.engine.Proposal(ctx, proposalID)
	if err != nil {
		s.logger.Warn("cannot reload proposal for cache", zap.Uint64("id", proposalID), zap.Error(err))
		return
	}
	if err := s.cacheClient.UpdateProposal(ctx, proposal); err != nil {
		s.logger.Warn("cannot store proposal to cache", zap.Error(err))
	}
	count, err := s.engine.ProposalCount(ctx)
	if err != nil {
		return
	}
	if err := s.cacheClient.UpdateProposalCount(ctx, count); err != nil {
		s.logger.Warn("cannot store proposal count to cache", zap.Error(err))
	}
}
