package http_api

import (
	"context"

	"github.com/labstack/echo/v4"
	echo_middleware "github.com/labstack/echo/v4/middleware"

	"github.com/lidofinance/cfp-gateway/gateway/api/http_api/router"
	"github.com/lidofinance/cfp-gateway/gateway/config"
	"github.com/lidofinance/cfp-gateway/gateway/services"
)

type RESTApiProvider struct {
	listenAddr   string
	echoInstance *echo.Echo
}

func (p *RESTApiProvider) NewServer(cfg *config.Config, sp *services.ServiceProvider) error {
	p.listenAddr = cfg.ListenAddr

	p.echoInstance = echo.New()

	p.echoInstance.HideBanner = true
	p.echoInstance.Debug = cfg.Debug

	p.echoInstance.HTTPErrorHandler = customHTTPErrorHandler

	// Middlewares

	p.echoInstance.Use(echo_middleware.Logger())
	p.echoInstance.Use(echo_middleware.Recover())

	if cfg.CORSOrigin != "" {
		p.echoInstance.Use(echo_middleware.CORSWithConfig(echo_middleware.CORSConfig{
			AllowOrigins:     []string{cfg.CORSOrigin},
			AllowCredentials: true,
		}))
	}

	p.echoInstance.Use(contextServiceMiddleware)

	router.SetRouter(p.echoInstance, sp)

	return nil
}

func (p *RESTApiProvider) Start() error {
	return p.echoInstance.Start(p.listenAddr)
}

func (p *RESTApiProvider) Stop(ctx context.Context) error {
	return p.echoInstance.Shutdown(ctx)
}
