package services

import (
	"errors"
	"fmt"

	"github.com/lidofinance/cfp-gateway/events"
	"github.com/lidofinance/cfp-gateway/gateway/config"
	"github.com/lidofinance/cfp-gateway/gateway/modules/callcache"
	"github.com/lidofinance/cfp-gateway/gateway/modules/logger"
	"github.com/lidofinance/cfp-gateway/gateway/repositories/journal"
	"github.com/lidofinance/cfp-gateway/gateway/repositories/names"
	"github.com/lidofinance/cfp-gateway/gateway/services/authorization"
	"github.com/lidofinance/cfp-gateway/gateway/services/calls"
	"github.com/lidofinance/cfp-gateway/gateway/services/contracts"
	"github.com/lidofinance/cfp-gateway/gateway/services/naming"
	"github.com/lidofinance/cfp-gateway/gateway/services/proposals"
	"github.com/lidofinance/cfp-gateway/gateway/services/transactions"
	"github.com/lidofinance/cfp-gateway/verifier"
)

// InitServices builds every service on top of the ledger and state already set in sp.
// Repositories are scoped to the operator address.
func InitServices(cfg *config.Config, sp *ServiceProvider) error {
	if sp.GetLedger() == nil || sp.GetState() == nil {
		return errors.New("ledger and state must be set before services are initialized")
	}
	if sp.GetLogger() == nil {
		sp.SetLogger(logger.NewLogger("gateway"))
	}
	if sp.GetSink() == nil {
		sp.SetSink(events.NopSink{})
	}
	if sp.GetVerifier() == nil {
		sp.SetVerifier(verifier.NewPersonalSignVerifier())
	}

	l := sp.GetLedger()
	prefix := l.OperatorAddress().Hex()
	clock := sp.GetClock()

	callCache, err := callcache.NewCallCache(l.Factory(), cfg.CFPCacheSize)
	if err != nil {
		return fmt.Errorf("failed to init call cache: %w", err)
	}
	sp.SetCallCache(callCache)

	txService := transactions.NewTransactionService(
		journal.NewJournalRepo(sp.GetState(), prefix),
		sp.GetSink(),
		l,
		logger.NewLogger("transactions"),
		cfg.TxWaitTimeout,
		cfg.ReconcilePeriod,
	)
	sp.SetTransactionService(txService)

	namingService := naming.NewNamingService(
		l,
		names.NewNamesRepo(sp.GetState(), prefix),
		txService,
		logger.NewLogger("naming"),
		clock,
	)
	sp.SetNamingService(namingService)

	sp.SetAuthorizationService(authorization.NewAuthorizationService(
		l, sp.GetVerifier(), txService, logger.NewLogger("authorization"),
	))
	sp.SetCallsService(calls.NewCallsService(
		l, sp.GetVerifier(), callCache, txService, namingService, logger.NewLogger("calls"), clock,
	))
	sp.SetProposalsService(proposals.NewProposalsService(
		l, sp.GetVerifier(), callCache, txService, logger.NewLogger("proposals"), clock,
	))
	sp.SetContractsService(contracts.NewContractsService(l, callCache))

	return nil
}
