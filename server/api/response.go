// Package api
package api

import (
	"net/http"

	"github.com/labstack/echo"

	"github.com/maverickdao/governance-backend/types"
)

var (
	OK             = EchoResponse{StatusCode: http.StatusOK, Code: 1000, Msg: "Success"}
	InternalServer = EchoResponse{StatusCode: http.StatusInternalServerError, Code: 1100, Msg: "Server busy..."}
	Invalid        = EchoResponse{StatusCode: http.StatusBadRequest, Code: 1101, Msg: "Bad request"}
	NotFound       = EchoResponse{StatusCode: http.StatusNotFound, Code: 1102, Msg: "Not found"}
	Conflict       = EchoResponse{StatusCode: http.StatusConflict, Code: 1103, Msg: "Conflict"}
	Unauthorized   = EchoResponse{StatusCode: http.StatusUnauthorized, Code: 401, Msg: "Unauthorized"}
)

type EchoResponse struct {
	StatusCode int         `json:"-"`
	Code       int         `json:"code"`
	Msg        string      `json:"msg"`
	Data       interface{} `json:"data,omitempty"`
}

func (r *EchoResponse) SetData(data interface{}) *EchoResponse {
	r.Data = data
	return r
}

func (r *EchoResponse) SetMsg(msg string) *EchoResponse {
	r.Msg = msg
	return r
}

func (r *EchoResponse) Build(c echo.Context) error {
	return c.JSON(r.StatusCode, r)
}

// Err maps engine sentinel errors onto the response envelope so every
// handler reports rule violations the same way.
func Err(err error, c echo.Context) error {
	switch err {
	case types.ErrProposalNotFound:
		return NotFound.SetMsg(err.Error()).Build(c)
	case types.ErrUnauthorized:
		return Unauthorized.SetMsg(err.Error()).Build(c)
	case types.ErrAssetUnavailable,
		types.ErrVotingClosed,
		types.ErrVotingStillOpen,
		types.ErrAlreadyExecuted,
		types.ErrAlreadyVoted,
		types.ErrInsufficientFunds:
		return Conflict.SetMsg(err.Error()).Build(c)
	default:
		return InternalServer.Build(c)
	}
}
