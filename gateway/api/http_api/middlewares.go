package http_api

import (
	"fmt"
	"net/http"

	. "github.com/labstack/echo/v4"

	cs "github.com/lidofinance/cfp-gateway/gateway/api/http_api/context_service"
	"github.com/lidofinance/cfp-gateway/gateway/types"
)

func contextServiceMiddleware(next HandlerFunc) HandlerFunc {
	return func(ctx Context) error {
		return next(cs.New(ctx))
	}
}

// Custom error handler
func customHTTPErrorHandler(err error, c Context) {
	code := http.StatusInternalServerError
	csError, ok := err.(*cs.CSErrorResp)
	if !ok {
		if he, ok := err.(*HTTPError); ok {
			code = he.Code
			csError = &cs.CSErrorResp{
				ErrorMessage: fmt.Sprintf("%v", he.Message),
			}
		} else {
			csError = &cs.CSErrorResp{
				ErrorMessage: types.MsgInternalError,
			}
		}
	}
	csError.Result = struct{}{}

	// Send response
	if !c.Response().Committed {
		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, csError)
		}
		if err != nil {
			c.Logger().Error(err)
		}
	}
}
