package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	. "github.com/lidofinance/cfp-gateway/gateway/api/dto"
	cs "github.com/lidofinance/cfp-gateway/gateway/api/http_api/context_service"
	req "github.com/lidofinance/cfp-gateway/gateway/api/http_api/requests"
)

func (a *HTTPApp) Register(c echo.Context) error {
	stx := c.(*cs.ContextService)
	formDTO := &RegisterDTO{}
	if err := stx.BindToDTO(&req.RegisterForm{}, formDTO); err != nil {
		return stx.JsonError(http.StatusBadRequest, err)
	}

	result, err := a.authorization.Register(stx.Request().Context(), formDTO)
	if err != nil {
		return a.domainError(stx, err)
	}
	return stx.Json(http.StatusOK, result)
}

func (a *HTTPApp) Authorized(c echo.Context) error {
	stx := c.(*cs.ContextService)
	formDTO := &AddressDTO{}
	if err := stx.BindToDTO(&req.AddressForm{}, formDTO); err != nil {
		return stx.JsonError(http.StatusBadRequest, err)
	}

	result, err := a.authorization.Authorized(stx.Request().Context(), formDTO)
	if err != nil {
		return a.domainError(stx, err)
	}
	return stx.Json(http.StatusOK, result)
}

func (a *HTTPApp) AuthorizeAccount(c echo.Context) error {
	stx := c.(*cs.ContextService)
	formDTO := &AddressDTO{}
	if err := stx.BindToDTO(&req.AddressForm{}, formDTO); err != nil {
		return stx.JsonError(http.StatusBadRequest, err)
	}

	result, err := a.authorization.AuthorizeAccount(stx.Request().Context(), formDTO)
	if err != nil {
		return a.domainError(stx, err)
	}
	return stx.Json(http.StatusOK, result)
}
