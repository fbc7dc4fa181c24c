package mocks

//go:generate mockgen -source=./../ledger/ledger.go -destination=./ledgerMocks/ledger_mock.go -package=ledgerMocks
//go:generate mockgen -source=./../events/types.go -destination=./eventsMocks/sink_mock.go -package=eventsMocks
//go:generate mockgen -source=./../gateway/repositories/journal/journal.go -destination=./repoMocks/journal_mock.go -package=repoMocks
//go:generate mockgen -source=./../gateway/repositories/names/names.go -destination=./repoMocks/names_mock.go -package=repoMocks
//go:generate mockgen -source=./../gateway/services/transactions/transactions.go -destination=./serviceMocks/transactions_mock.go -package=serviceMocks
//go:generate mockgen -source=./../gateway/services/authorization/authorization.go -destination=./serviceMocks/authorization_mock.go -package=serviceMocks
//go:generate mockgen -source=./../gateway/services/calls/calls.go -destination=./serviceMocks/calls_mock.go -package=serviceMocks
//go:generate mockgen -source=./../gateway/services/proposals/proposals.go -destination=./serviceMocks/proposals_mock.go -package=serviceMocks
//go:generate mockgen -source=./../gateway/services/naming/naming.go -destination=./serviceMocks/naming_mock.go -package=serviceMocks
//go:generate mockgen -source=./../gateway/services/contracts/contracts.go -destination=./serviceMocks/contracts_mock.go -package=serviceMocks
