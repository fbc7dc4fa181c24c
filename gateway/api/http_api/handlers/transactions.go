package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	. "github.com/lidofinance/cfp-gateway/gateway/api/dto"
	cs "github.com/lidofinance/cfp-gateway/gateway/api/http_api/context_service"
	req "github.com/lidofinance/cfp-gateway/gateway/api/http_api/requests"
)

func (a *HTTPApp) GetTransactions(c echo.Context) error {
	stx := c.(*cs.ContextService)

	result, err := a.transactions.GetTransactions()
	if err != nil {
		return a.domainError(stx, err)
	}
	return stx.Json(http.StatusOK, result)
}

func (a *HTTPApp) GetTransactionByID(c echo.Context) error {
	stx := c.(*cs.ContextService)
	formDTO := &TransactionIdDTO{}
	if err := stx.BindToDTO(&req.TransactionIdForm{}, formDTO); err != nil {
		return stx.JsonError(http.StatusBadRequest, err)
	}

	result, err := a.transactions.GetTransactionByID(formDTO)
	if err != nil {
		return a.domainError(stx, err)
	}
	return stx.Json(http.StatusOK, result)
}
