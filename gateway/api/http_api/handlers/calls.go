package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	. "github.com/lidofinance/cfp-gateway/gateway/api/dto"
	cs "github.com/lidofinance/cfp-gateway/gateway/api/http_api/context_service"
	req "github.com/lidofinance/cfp-gateway/gateway/api/http_api/requests"
)

func (a *HTTPApp) CreateCall(c echo.Context) error {
	stx := c.(*cs.ContextService)
	formDTO := &CreateCallDTO{}
	if err := stx.BindToDTO(&req.CreateCallForm{}, formDTO); err != nil {
		return stx.JsonError(http.StatusBadRequest, err)
	}

	result, err := a.calls.Create(stx.Request().Context(), formDTO)
	if err != nil {
		return a.domainError(stx, err)
	}
	return stx.Json(http.StatusOK, result)
}

// CreateCallWithENS answers 200 whenever the call was created, even if naming it failed.
func (a *HTTPApp) CreateCallWithENS(c echo.Context) error {
	stx := c.(*cs.ContextService)
	formDTO := &CreateCallWithENSDTO{}
	if err := stx.BindToDTO(&req.CreateCallWithENSForm{}, formDTO); err != nil {
		return stx.JsonError(http.StatusBadRequest, err)
	}

	result, err := a.calls.CreateWithENS(stx.Request().Context(), formDTO)
	if err != nil {
		return a.domainError(stx, err)
	}
	return stx.Json(http.StatusOK, result)
}

func (a *HTTPApp) GetCalls(c echo.Context) error {
	stx := c.(*cs.ContextService)

	result, err := a.calls.List(stx.Request().Context())
	if err != nil {
		return a.domainError(stx, err)
	}
	return stx.Json(http.StatusOK, result)
}

func (a *HTTPApp) GetCall(c echo.Context) error {
	stx := c.(*cs.ContextService)
	formDTO := &CallIdDTO{}
	if err := stx.BindToDTO(&req.CallIdForm{}, formDTO); err != nil {
		return stx.JsonError(http.StatusBadRequest, err)
	}

	result, err := a.calls.Get(stx.Request().Context(), formDTO)
	if err != nil {
		return a.domainError(stx, err)
	}
	return stx.Json(http.StatusOK, result)
}

func (a *HTTPApp) GetClosingTime(c echo.Context) error {
	stx := c.(*cs.ContextService)
	formDTO := &CallIdDTO{}
	if err := stx.BindToDTO(&req.CallIdForm{}, formDTO); err != nil {
		return stx.JsonError(http.StatusBadRequest, err)
	}

	result, err := a.calls.ClosingTime(stx.Request().Context(), formDTO)
	if err != nil {
		return a.domainError(stx, err)
	}
	return stx.Json(http.StatusOK, result)
}

func (a *HTTPApp) GetProposalCounts(c echo.Context) error {
	stx := c.(*cs.ContextService)
	formDTO := &CallIdsDTO{}
	if err := stx.BindToDTO(&req.CallIdsForm{}, formDTO); err != nil {
		return stx.JsonError(http.StatusBadRequest, err)
	}

	result, err := a.calls.ProposalCounts(stx.Request().Context(), formDTO)
	if err != nil {
		return a.domainError(stx, err)
	}
	return stx.Json(http.StatusOK, result)
}

func (a *HTTPApp) GetContractAddress(c echo.Context) error {
	stx := c.(*cs.ContextService)
	return stx.Json(http.StatusOK, a.calls.ContractAddress())
}

func (a *HTTPApp) GetContractOwner(c echo.Context) error {
	stx := c.(*cs.ContextService)
	return stx.Json(http.StatusOK, a.calls.ContractOwner(stx.Request().Context()))
}
