package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	. "github.com/lidofinance/cfp-gateway/gateway/api/dto"
	cs "github.com/lidofinance/cfp-gateway/gateway/api/http_api/context_service"
	req "github.com/lidofinance/cfp-gateway/gateway/api/http_api/requests"
)

func (a *HTTPApp) RegisterProposal(c echo.Context) error {
	stx := c.(*cs.ContextService)
	formDTO := &ProposalDTO{}
	if err := stx.BindToDTO(&req.ProposalForm{}, formDTO); err != nil {
		return stx.JsonError(http.StatusBadRequest, err)
	}

	result, err := a.proposals.Register(stx.Request().Context(), formDTO)
	if err != nil {
		return a.domainError(stx, err)
	}
	return stx.Json(http.StatusOK, result)
}

func (a *HTTPApp) RegisterProposalWithSignature(c echo.Context) error {
	stx := c.(*cs.ContextService)
	formDTO := &SignedProposalDTO{}
	if err := stx.BindToDTO(&req.SignedProposalForm{}, formDTO); err != nil {
		return stx.JsonError(http.StatusBadRequest, err)
	}

	result, err := a.proposals.RegisterWithSignature(stx.Request().Context(), formDTO)
	if err != nil {
		return a.domainError(stx, err)
	}
	return stx.Json(http.StatusOK, result)
}

func (a *HTTPApp) GetProposalData(c echo.Context) error {
	stx := c.(*cs.ContextService)
	formDTO := &ProposalDTO{}
	if err := stx.BindToDTO(&req.ProposalDataForm{}, formDTO); err != nil {
		return stx.JsonError(http.StatusBadRequest, err)
	}

	result, err := a.proposals.ProposalData(stx.Request().Context(), formDTO)
	if err != nil {
		return a.domainError(stx, err)
	}
	return stx.Json(http.StatusOK, result)
}
