// Package api
package api

import (
	"strconv"

	"github.com/labstack/echo"

	"github.com/maverickdao/governance-backend/types"
)

func getPagingOption(c echo.Context) (*types.Pagination, int, int) {
	pageParams := c.QueryParam("page")
	limitParams := c.QueryParam("limit")
	page, err := strconv.Atoi(pageParams)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(limitParams)
	if err != nil {
		limit = 25
	}
	pagination := &types.Pagination{
		Skip:  (page - 1) * limit,
		Limit: limit,
	}
	pagination.Sanitize()
	return pagination, page, pagination.Limit
}

func getProposalID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}
