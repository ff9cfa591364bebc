// Package api
package api

import (
	"context"

	"github.com/labstack/echo"
	"go.uber.org/zap"

	"github.com/maverickdao/governance-backend/utils"
)

func (s *Server) TreasuryBalance(c echo.Context) error {
	ctx := context.Background()
	balance, err := s.cacheClient.TreasuryBalance(ctx)
	if err != nil {
		balance = utils.FormatAmount(s.engine.Treasury().Balance())
		if err := s.cacheClient.UpdateTreasuryBalance(ctx, balance); err != nil {
			s.logger.Warn("cannot store treasury balance to cache", zap.Error(err))
		}
	}
	return OK.SetData(TreasuryResponse{Balance: balance}).Build(c)
}

func (s *Server) TreasuryLedger(c echo.Context) error {
	ctx := context.Background()
	pagination, page, limit := getPagingOption(c)
	entries, total, err := s.engine.Treasury().Ledger(ctx, pagination)
	if err != nil {
		return Err(err, c)
	}
	return OK.SetData(PagingResponse{
		Page:  page,
		Limit: limit,
		Total: total,
		Data:  entries,
	}).Build(c)
}

func (s *Server) Deposit(c echo.Context) error {
	lgr := s.logger.With(zap.String("method", "Deposit"))
	ctx := context.Background()
	var req DepositRequest
	if err := c.Bind(&req); err != nil {
		lgr.Error("cannot bind request", zap.Error(err))
		return Invalid.Build(c)
	}
	if req.From == "" {
		return Invalid.Build(c)
	}
	amount, err := utils.ParseAmount(req.Amount)
	if err != nil {
		return Invalid.Build(c)
	}
	if err := s.engine.Treasury().Credit(ctx, amount, req.From); err != nil {
		return Err(err, c)
	}
	s.refreshTreasuryCache(ctx)
	return OK.SetData(TreasuryResponse{
		Balance: utils.FormatAmount(s.engine.Treasury().Balance()),
	}).Build(c)
}

func (s *Server) refreshTreasuryCache(ctx context.Context) {
	balance := utils.FormatAmount(s.engine.Treasury().Balance())
	if err := s.cacheClient.UpdateTreasuryBalance(ctx, balance); err != nil {
		s.logger.Warn("cannot store treasury balance to cache", zap.Error(err))
	}
}
