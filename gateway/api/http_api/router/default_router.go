package router

import (
	"github.com/labstack/echo/v4"

	"github.com/lidofinance/cfp-gateway/gateway/api/http_api/handlers"
	"github.com/lidofinance/cfp-gateway/gateway/services"
)

func SetRouter(e *echo.Echo, sp *services.ServiceProvider) {
	h := handlers.NewHTTPApp(sp)

	e.GET("/health", h.Health)
	e.GET("/contract-address", h.GetContractAddress)
	e.GET("/contract-owner", h.GetContractOwner)
	e.GET("/contracts/addresses", h.GetContractAddresses)
	e.GET("/contracts/cfp/:callId", h.GetCFP)

	e.POST("/register", h.Register)
	e.GET("/authorized/:address", h.Authorized)
	e.POST("/authorize/:address", h.AuthorizeAccount)

	e.POST("/create", h.CreateCall)
	e.POST("/create-with-ens", h.CreateCallWithENS)
	e.GET("/calls", h.GetCalls)
	e.GET("/calls/:callId", h.GetCall)
	e.GET("/closing-time/:callId", h.GetClosingTime)
	e.GET("/proposal-counts", h.GetProposalCounts)

	e.POST("/register-proposal", h.RegisterProposal)
	e.POST("/register-proposal-with-signature", h.RegisterProposalWithSignature)
	e.GET("/proposal-data/:callId/:proposal", h.GetProposalData)

	ens := e.Group("/ens")
	ens.POST("/register-user", h.RegisterUserName)
	ens.POST("/register-call", h.RegisterCallName)
	ens.GET("/resolve-name/:name", h.ResolveName)
	ens.GET("/resolve-address/:address", h.ResolveAddress)
	ens.POST("/resolve-addresses", h.ResolveAddresses)
	ens.GET("/name-info/:name", h.GetNameInfo)
	ens.GET("/check-availability/:name", h.CheckNameAvailability)
	ens.GET("/registered-names", h.GetRegisteredNames)

	e.GET("/transactions", h.GetTransactions)
	e.GET("/transactions/:id", h.GetTransactionByID)
}
