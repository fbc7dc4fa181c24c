package ledger

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// ReceiptStatusSuccessful mirrors the EVM receipt status of an applied transaction.
const ReceiptStatusSuccessful = uint64(1)

var (
	ZeroAddress = common.Address{}

	ErrReceiptNotFound = errors.New("receipt not found")
)

// CallRecord is the factory entry of a call. A zero Creator means the call does not exist.
type CallRecord struct {
	Creator common.Address
	CFP     common.Address
}

func (r CallRecord) Exists() bool {
	return r.Creator != ZeroAddress
}

// ProposalRecord is the CFP entry of a proposal. A zero Sender means it was never registered.
type ProposalRecord struct {
	Sender      common.Address
	BlockNumber *big.Int
	Timestamp   *big.Int
}

func (r ProposalRecord) Exists() bool {
	return r.Sender != ZeroAddress
}

type Receipt struct {
	TxHash      common.Hash
	BlockNumber uint64
	Status      uint64
}

func (r *Receipt) Successful() bool {
	return r != nil && r.Status == ReceiptStatusSuccessful
}

// PendingTx is a submitted write. Once submitted it cannot be withdrawn: it can only
// be awaited or abandoned, in which case it may still be applied later.
type PendingTx interface {
	Hash() common.Hash
	Wait(ctx context.Context) (*Receipt, error)
}

type Factory interface {
	Address() common.Address
	Owner(ctx context.Context) (common.Address, error)
	IsRegistered(ctx context.Context, account common.Address) (bool, error)
	IsAuthorized(ctx context.Context, account common.Address) (bool, error)
	Authorize(ctx context.Context, account common.Address) (PendingTx, error)
	Register(ctx context.Context) (PendingTx, error)

	Calls(ctx context.Context, callID common.Hash) (CallRecord, error)
	CreatorsCount(ctx context.Context) (uint64, error)
	Creators(ctx context.Context, index uint64) (common.Address, error)
	CreatedByCount(ctx context.Context, creator common.Address) (uint64, error)
	CreatedBy(ctx context.Context, creator common.Address, index uint64) (common.Hash, error)
	Create(ctx context.Context, callID common.Hash, closingTime int64) (PendingTx, error)
	CreateFor(ctx context.Context, callID common.Hash, closingTime int64, creator common.Address) (PendingTx, error)
}

type CFP interface {
	Address() common.Address
	ClosingTime(ctx context.Context) (int64, error)
	ProposalData(ctx context.Context, proposal common.Hash) (ProposalRecord, error)
	ProposalCount(ctx context.Context) (uint64, error)
	RegisterProposal(ctx context.Context, proposal common.Hash) (PendingTx, error)
}

type Registry interface {
	Address() common.Address
	Owner(ctx context.Context, node common.Hash) (common.Address, error)
	Resolver(ctx context.Context, node common.Hash) (common.Address, error)
	SetResolver(ctx context.Context, node common.Hash, resolver common.Address) (PendingTx, error)
}

type Resolver interface {
	Address() common.Address
	Addr(ctx context.Context, node common.Hash) (common.Address, error)
	SetAddr(ctx context.Context, node common.Hash, addr common.Address) (PendingTx, error)
	Text(ctx context.Context, node common.Hash, key string) (string, error)
	SetText(ctx context.Context, node common.Hash, key, value string) (PendingTx, error)
	Name(ctx context.Context, node common.Hash) (string, error)
}

type ReverseRegistrar interface {
	Address() common.Address
	Node(ctx context.Context, addr common.Address) (common.Hash, error)
	SetNameForAddress(ctx context.Context, addr common.Address, name string) (PendingTx, error)
}

// Registrar hands out subnodes of one domain (first come, first served).
type Registrar interface {
	Address() common.Address
	Register(ctx context.Context, label common.Hash, owner common.Address) (PendingTx, error)
}

// Ledger gives access to every contract the gateway talks to, bound to the operator key.
type Ledger interface {
	OperatorAddress() common.Address
	Factory() Factory
	CFPAt(addr common.Address) CFP
	Registry() Registry
	PublicResolver() Resolver
	ResolverAt(addr common.Address) Resolver
	ReverseRegistrar() ReverseRegistrar
	CallsRegistrar() Registrar
	UsersRegistrar() Registrar
	TransactionReceipt(ctx context.Context, hash common.Hash) (*Receipt, error)
}
