// Package api
package api

import (
	"fmt"

	"github.com/labstack/echo"
	"github.com/labstack/echo/middleware"

	"github.com/maverickdao/governance-backend/cfg"
)

type restDefinition struct {
	method      string
	path        string
	fn          func(c echo.Context) error
	middlewares []echo.MiddlewareFunc
}

func bind(gr *echo.Group, srv RestServer) {
	apis := []restDefinition{
		{
			method:      echo.GET,
			path:        "/ping",
			fn:          srv.Ping,
			middlewares: nil,
		},
		{
			method:      echo.GET,
			path:        "/status",
			fn:          srv.ServerStatus,
			middlewares: nil,
		},
		{
			method:      echo.PUT,
			path:        "/status",
			fn:          srv.UpdateServerStatus,
			middlewares: nil,
		},
		// Proposals
		{
			method: echo.POST,
			path:   "/proposals",
			fn:     srv.CreateProposal,
		},
		{
			method: echo.GET,
			// Query params: ?page=0&limit=10
			path: "/proposals",
			fn:   srv.Proposals,
		},
		{
			method: echo.GET,
			path:   "/proposals/count",
			fn:     srv.ProposalCount,
		},
		{
			method: echo.GET,
			path:   "/proposals/:id",
			fn:     srv.Proposal,
		},
		{
			method: echo.POST,
			path:   "/proposals/:id/votes",
			fn:     srv.Vote,
		},
		{
			method: echo.POST,
			path:   "/proposals/:id/execute",
			fn:     srv.Execute,
		},
		// Treasury
		{
			method: echo.GET,
			path:   "/treasury",
			fn:     srv.TreasuryBalance,
		},
		{
			method: echo.GET,
			// Query params: ?page=0&limit=10
			path: "/treasury/ledger",
			fn:   srv.TreasuryLedger,
		},
		{
			method: echo.POST,
			path:   "/treasury/deposits",
			fn:     srv.Deposit,
		},
	}
	for _, api := range apis {
		gr.Add(api.method, api.path, api.fn, api.middlewares...)
	}
}

func Serve(e *echo.Echo, srv RestServer, cfg cfg.Config) {
	e.Use(middleware.CORS())
	e.Use(middleware.Logger())
	e.Use(middleware.Gzip())

	v1Gr := e.Group("/api/v1")
	bind(v1Gr, srv)
	if err := e.Start(cfg.Port); err != nil {
		fmt.Println("cannot start echo server", err.Error())
		panic(err)
	}
}
