package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	. "github.com/lidofinance/cfp-gateway/gateway/api/dto"
	cs "github.com/lidofinance/cfp-gateway/gateway/api/http_api/context_service"
	req "github.com/lidofinance/cfp-gateway/gateway/api/http_api/requests"
	"github.com/lidofinance/cfp-gateway/gateway/api/http_api/responses"
	"github.com/lidofinance/cfp-gateway/gateway/types"
)

func (a *HTTPApp) Health(c echo.Context) error {
	stx := c.(*cs.ContextService)
	return stx.Json(http.StatusOK, &responses.HealthResponse{
		Status: responses.StatusOK,
		Time:   a.now().UTC().Format(types.TimeLayout),
	})
}

func (a *HTTPApp) GetContractAddresses(c echo.Context) error {
	stx := c.(*cs.ContextService)
	return stx.Json(http.StatusOK, a.contracts.Addresses())
}

func (a *HTTPApp) GetCFP(c echo.Context) error {
	stx := c.(*cs.ContextService)
	formDTO := &CallIdDTO{}
	if err := stx.BindToDTO(&req.CallIdForm{}, formDTO); err != nil {
		return stx.JsonError(http.StatusBadRequest, err)
	}

	result, err := a.contracts.CFP(stx.Request().Context(), formDTO)
	if err != nil {
		return a.domainError(stx, err)
	}
	return stx.Json(http.StatusOK, result)
}
