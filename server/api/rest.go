// Package api
package api

import (
	"github.com/labstack/echo"
)

// RestServer define all API expose
type RestServer interface {
	// General
	Ping(c echo.Context) error
	ServerStatus(c echo.Context) error
	UpdateServerStatus(c echo.Context) error

	// Proposals
	CreateProposal(c echo.Context) error
	Proposals(c echo.Context) error
	Proposal(c echo.Context) error
	ProposalCount(c echo.Context) error
	Vote(c echo.Context) error
	Execute(c echo.Context) error

	// Treasury
	TreasuryBalance(c echo.Context) error
	TreasuryLedger(c echo.Context) error
	Deposit(c echo.Context) error
}
