package services

import (
	"time"

	"github.com/lidofinance/cfp-gateway/events"
	"github.com/lidofinance/cfp-gateway/gateway/modules/callcache"
	"github.com/lidofinance/cfp-gateway/gateway/modules/logger"
	"github.com/lidofinance/cfp-gateway/gateway/modules/state"
	"github.com/lidofinance/cfp-gateway/gateway/services/authorization"
	"github.com/lidofinance/cfp-gateway/gateway/services/calls"
	"github.com/lidofinance/cfp-gateway/gateway/services/contracts"
	"github.com/lidofinance/cfp-gateway/gateway/services/naming"
	"github.com/lidofinance/cfp-gateway/gateway/services/proposals"
	"github.com/lidofinance/cfp-gateway/gateway/services/transactions"
	"github.com/lidofinance/cfp-gateway/ledger"
	"github.com/lidofinance/cfp-gateway/verifier"
)

type ServiceProvider struct {
	logger    logger.Logger
	state     state.State
	ledger    ledger.Ledger
	verifier  verifier.Verifier
	sink      events.Sink
	callCache *callcache.CallCache
	clock     func() time.Time

	txService            transactions.TransactionService
	authorizationService authorization.AuthorizationService
	callsService         calls.CallsService
	proposalsService     proposals.ProposalsService
	namingService        naming.NamingService
	contractsService     contracts.ContractsService
}

func (p *ServiceProvider) SetLogger(l logger.Logger) {
	p.logger = l
}

func (p *ServiceProvider) GetLogger() logger.Logger {
	return p.logger
}

func (p *ServiceProvider) SetState(s state.State) {
	p.state = s
}

func (p *ServiceProvider) GetState() state.State {
	return p.state
}

func (p *ServiceProvider) SetLedger(l ledger.Ledger) {
	p.ledger = l
}

func (p *ServiceProvider) GetLedger() ledger.Ledger {
	return p.ledger
}

func (p *ServiceProvider) SetVerifier(v verifier.Verifier) {
	p.verifier = v
}

func (p *ServiceProvider) GetVerifier() verifier.Verifier {
	return p.verifier
}

func (p *ServiceProvider) SetSink(s events.Sink) {
	p.sink = s
}

func (p *ServiceProvider) GetSink() events.Sink {
	return p.sink
}

func (p *ServiceProvider) SetCallCache(c *callcache.CallCache) {
	p.callCache = c
}

func (p *ServiceProvider) GetCallCache() *callcache.CallCache {
	return p.callCache
}

func (p *ServiceProvider) SetClock(clock func() time.Time) {
	p.clock = clock
}

// GetClock returns the clock used for closing time checks, time.Now by default.
func (p *ServiceProvider) GetClock() func() time.Time {
	if p.clock == nil {
		return time.Now
	}
	return p.clock
}

func (p *ServiceProvider) SetTransactionService(s transactions.TransactionService) {
	p.txService = s
}

func (p *ServiceProvider) GetTransactionService() transactions.TransactionService {
	return p.txService
}

func (p *ServiceProvider) SetAuthorizationService(s authorization.AuthorizationService) {
	p.authorizationService = s
}

func (p *ServiceProvider) GetAuthorizationService() authorization.AuthorizationService {
	return p.authorizationService
}

func (p *ServiceProvider) SetCallsService(s calls.CallsService) {
	p.callsService = s
}

func (p *ServiceProvider) GetCallsService() calls.CallsService {
	return p.callsService
}

func (p *ServiceProvider) SetProposalsService(s proposals.ProposalsService) {
	p.proposalsService = s
}

func (p *ServiceProvider) GetProposalsService() proposals.ProposalsService {
	return p.proposalsService
}

func (p *ServiceProvider) SetNamingService(s naming.NamingService) {
	p.namingService = s
}

func (p *ServiceProvider) GetNamingService() naming.NamingService {
	return p.namingService
}

func (p *ServiceProvider) SetContractsService(s contracts.ContractsService) {
	p.contractsService = s
}

func (p *ServiceProvider) GetContractsService() contracts.ContractsService {
	return p.contractsService
}
