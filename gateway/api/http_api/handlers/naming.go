package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	. "github.com/lidofinance/cfp-gateway/gateway/api/dto"
	cs "github.com/lidofinance/cfp-gateway/gateway/api/http_api/context_service"
	req "github.com/lidofinance/cfp-gateway/gateway/api/http_api/requests"
)

func (a *HTTPApp) RegisterUserName(c echo.Context) error {
	stx := c.(*cs.ContextService)
	formDTO := &RegisterUserNameDTO{}
	if err := stx.BindToDTO(&req.RegisterUserNameForm{}, formDTO); err != nil {
		return stx.JsonError(http.StatusBadRequest, err)
	}

	result, err := a.naming.RegisterUserName(stx.Request().Context(), formDTO)
	if err != nil {
		return a.domainError(stx, err)
	}
	return stx.Json(http.StatusOK, result)
}

func (a *HTTPApp) RegisterCallName(c echo.Context) error {
	stx := c.(*cs.ContextService)
	formDTO := &RegisterCallNameDTO{}
	if err := stx.BindToDTO(&req.RegisterCallNameForm{}, formDTO); err != nil {
		return stx.JsonError(http.StatusBadRequest, err)
	}

	result, err := a.naming.RegisterCallName(stx.Request().Context(), formDTO)
	if err != nil {
		return a.domainError(stx, err)
	}
	return stx.Json(http.StatusOK, result)
}

func (a *HTTPApp) ResolveName(c echo.Context) error {
	stx := c.(*cs.ContextService)
	formDTO := &NameDTO{}
	if err := stx.BindToDTO(&req.NameForm{}, formDTO); err != nil {
		return stx.JsonError(http.StatusBadRequest, err)
	}

	result, err := a.naming.ResolveName(stx.Request().Context(), formDTO)
	if err != nil {
		return a.domainError(stx, err)
	}
	return stx.Json(http.StatusOK, result)
}

func (a *HTTPApp) ResolveAddress(c echo.Context) error {
	stx := c.(*cs.ContextService)
	formDTO := &AddressDTO{}
	if err := stx.BindToDTO(&req.AddressForm{}, formDTO); err != nil {
		return stx.JsonError(http.StatusBadRequest, err)
	}

	result, err := a.naming.ResolveAddress(stx.Request().Context(), formDTO)
	if err != nil {
		return a.domainError(stx, err)
	}
	return stx.Json(http.StatusOK, result)
}

func (a *HTTPApp) ResolveAddresses(c echo.Context) error {
	stx := c.(*cs.ContextService)
	formDTO := &AddressesDTO{}
	if err := stx.BindToDTO(&req.AddressesForm{}, formDTO); err != nil {
		return stx.JsonError(http.StatusBadRequest, err)
	}

	result, err := a.naming.ResolveAddresses(stx.Request().Context(), formDTO)
	if err != nil {
		return a.domainError(stx, err)
	}
	return stx.Json(http.StatusOK, result)
}

func (a *HTTPApp) GetNameInfo(c echo.Context) error {
	stx := c.(*cs.ContextService)
	formDTO := &NameDTO{}
	if err := stx.BindToDTO(&req.NameForm{}, formDTO); err != nil {
		return stx.JsonError(http.StatusBadRequest, err)
	}

	result, err := a.naming.NameInfo(stx.Request().Context(), formDTO)
	if err != nil {
		return a.domainError(stx, err)
	}
	return stx.Json(http.StatusOK, result)
}

func (a *HTTPApp) CheckNameAvailability(c echo.Context) error {
	stx := c.(*cs.ContextService)
	formDTO := &NameDTO{}
	if err := stx.BindToDTO(&req.NameForm{}, formDTO); err != nil {
		return stx.JsonError(http.StatusBadRequest, err)
	}

	result, err := a.naming.IsNameAvailable(stx.Request().Context(), formDTO)
	if err != nil {
		return a.domainError(stx, err)
	}
	return stx.Json(http.StatusOK, result)
}

func (a *HTTPApp) GetRegisteredNames(c echo.Context) error {
	stx := c.(*cs.ContextService)
	formDTO := &DomainDTO{}
	if err := stx.BindToDTO(&req.DomainForm{}, formDTO); err != nil {
		return stx.JsonError(http.StatusBadRequest, err)
	}

	result, err := a.naming.RegisteredNames(formDTO)
	if err != nil {
		return a.domainError(stx, err)
	}
	return stx.Json(http.StatusOK, result)
}
