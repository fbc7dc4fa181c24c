package handlers

import (
	"errors"
	"time"

	cs "github.com/lidofinance/cfp-gateway/gateway/api/http_api/context_service"
	"github.com/lidofinance/cfp-gateway/gateway/modules/logger"
	"github.com/lidofinance/cfp-gateway/gateway/services"
	"github.com/lidofinance/cfp-gateway/gateway/services/authorization"
	"github.com/lidofinance/cfp-gateway/gateway/services/calls"
	"github.com/lidofinance/cfp-gateway/gateway/services/contracts"
	"github.com/lidofinance/cfp-gateway/gateway/services/naming"
	"github.com/lidofinance/cfp-gateway/gateway/services/proposals"
	"github.com/lidofinance/cfp-gateway/gateway/services/transactions"
	"github.com/lidofinance/cfp-gateway/gateway/types"
)

type HTTPApp struct {
	authorization authorization.AuthorizationService
	calls         calls.CallsService
	proposals     proposals.ProposalsService
	naming        naming.NamingService
	contracts     contracts.ContractsService
	transactions  transactions.TransactionService
	now           func() time.Time
	logger        logger.Logger
}

func NewHTTPApp(sp *services.ServiceProvider) *HTTPApp {
	return &HTTPApp{
		authorization: sp.GetAuthorizationService(),
		calls:         sp.GetCallsService(),
		proposals:     sp.GetProposalsService(),
		naming:        sp.GetNamingService(),
		contracts:     sp.GetContractsService(),
		transactions:  sp.GetTransactionService(),
		now:           sp.GetClock(),
		logger:        logger.NewLogger("http_api"),
	}
}

// domainError writes err to the client. The cause of internal failures is logged
// here since clients only get a generic message.
func (a *HTTPApp) domainError(stx *cs.ContextService, err error) error {
	var domainErr *types.Error
	if !errors.As(err, &domainErr) || domainErr.Kind == types.Internal {
		a.logger.Error("%s %s failed: %v", stx.Request().Method, stx.Request().URL.Path, err)
	}
	return stx.JsonDomainError(err)
}
