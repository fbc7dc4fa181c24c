// Package ledgertest provides an in-memory ledger that enforces the same rules and
// rejection reasons as the deployed contracts. Every write is sent by the operator.
package ledgertest

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/lidofinance/cfp-gateway/ledger"
)

var (
	FactoryAddress          = common.HexToAddress("0x00000000000000000000000000000000000cf901")
	RegistryAddress         = common.HexToAddress("0x00000000000000000000000000000000000e5001")
	PublicResolverAddress   = common.HexToAddress("0x00000000000000000000000000000000000e5002")
	ReverseRegistrarAddress = common.HexToAddress("0x00000000000000000000000000000000000e5003")
	CallsRegistrarAddress   = common.HexToAddress("0x00000000000000000000000000000000000e5004")
	UsersRegistrarAddress   = common.HexToAddress("0x00000000000000000000000000000000000e5005")

	CallsDomain = "llamados.cfp"
	UsersDomain = "usuarios.cfp"
)

var _ ledger.Ledger = (*Ledger)(nil)

type cfpState struct {
	closingTime int64
	proposals   map[common.Hash]ledger.ProposalRecord
	order       []common.Hash
}

type Option func(*Ledger)

// WithClock replaces the wall clock used for closing time checks and block timestamps.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// WithFactoryOwner makes someone other than the operator own the factory.
func WithFactoryOwner(owner common.Address) Option {
	return func(l *Ledger) { l.factoryOwner = owner }
}

type Ledger struct {
	mu sync.Mutex

	now          func() time.Time
	operator     common.Address
	factoryOwner common.Address

	block    uint64
	txCount  uint64
	receipts map[common.Hash]*ledger.Receipt
	failures map[string]error
	reverted map[string]bool

	registered map[common.Address]bool
	authorized map[common.Address]bool
	calls      map[common.Hash]ledger.CallRecord
	creators   []common.Address
	createdBy  map[common.Address][]common.Hash
	cfps       map[common.Address]*cfpState

	owners    map[common.Hash]common.Address
	resolvers map[common.Hash]common.Address
	addrs     map[common.Address]map[common.Hash]common.Address
	texts     map[common.Address]map[common.Hash]map[string]string
	names     map[common.Address]map[common.Hash]string
}

func NewLedger(operator common.Address, opts ...Option) *Ledger {
	l := &Ledger{
		now:          time.Now,
		operator:     operator,
		factoryOwner: operator,
		receipts:     make(map[common.Hash]*ledger.Receipt),
		failures:     make(map[string]error),
		reverted:     make(map[string]bool),
		registered:   make(map[common.Address]bool),
		authorized:   make(map[common.Address]bool),
		calls:        make(map[common.Hash]ledger.CallRecord),
		createdBy:    make(map[common.Address][]common.Hash),
		cfps:         make(map[common.Address]*cfpState),
		owners:       make(map[common.Hash]common.Address),
		resolvers:    make(map[common.Hash]common.Address),
		addrs:        make(map[common.Address]map[common.Hash]common.Address),
		texts:        make(map[common.Address]map[common.Hash]map[string]string),
		names:        make(map[common.Address]map[common.Hash]string),
	}
	for _, opt := range opts {
		opt(l)
	}

	l.owners[ledger.NameHash(CallsDomain)] = CallsRegistrarAddress
	l.owners[ledger.NameHash(UsersDomain)] = UsersRegistrarAddress

	return l
}

// FailNext makes the next submission of method fail with err before reaching the chain.
// Methods are named after the contract functions, except the per-domain registrars'
// register which is "registerName".
func (l *Ledger) FailNext(method string, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failures[method] = err
}

// RevertNext makes the next submission of method mined with a failed receipt.
func (l *Ledger) RevertNext(method string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.reverted[method] = true
}

// Authorize adds account to the factory authorization list directly.
func (l *Ledger) Authorize(account common.Address) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.registered[account] = true
	l.authorized[account] = true
}

func (l *Ledger) OperatorAddress() common.Address { return l.operator }

func (l *Ledger) Factory() ledger.Factory { return &factory{l} }

func (l *Ledger) CFPAt(addr common.Address) ledger.CFP { return &cfp{l: l, address: addr} }

func (l *Ledger) Registry() ledger.Registry { return &registry{l} }

func (l *Ledger) PublicResolver() ledger.Resolver {
	return &resolver{l: l, address: PublicResolverAddress}
}

func (l *Ledger) ResolverAt(addr common.Address) ledger.Resolver {
	return &resolver{l: l, address: addr}
}

func (l *Ledger) ReverseRegistrar() ledger.ReverseRegistrar { return &reverseRegistrar{l} }

func (l *Ledger) CallsRegistrar() ledger.Registrar {
	return &registrar{l: l, address: CallsRegistrarAddress, domain: CallsDomain}
}

func (l *Ledger) UsersRegistrar() ledger.Registrar {
	return &registrar{l: l, address: UsersRegistrarAddress, domain: UsersDomain}
}

func (l *Ledger) TransactionReceipt(_ context.Context, hash common.Hash) (*ledger.Receipt, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	r, ok := l.receipts[hash]
	if !ok {
		return nil, ledger.ErrReceiptNotFound
	}
	receipt := *r
	return &receipt, nil
}

func revert(reason string) error {
	return fmt.Errorf("execution reverted: %s", reason)
}

// send runs apply under the ledger lock and mines the result into a new block.
// A rule violation returns the revert error and leaves no transaction behind.
func (l *Ledger) send(method string, apply func() error) (ledger.PendingTx, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err, ok := l.failures[method]; ok {
		delete(l.failures, method)
		return nil, err
	}

	status := ledger.ReceiptStatusSuccessful
	if l.reverted[method] {
		delete(l.reverted, method)
		status = 0
	} else if err := apply(); err != nil {
		return nil, err
	}

	l.txCount++
	l.block++
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, l.txCount)
	hash := crypto.Keccak256Hash([]byte(method), buf)

	l.receipts[hash] = &ledger.Receipt{TxHash: hash, BlockNumber: l.block, Status: status}
	return &pendingTx{l: l, hash: hash}, nil
}

type pendingTx struct {
	l    *Ledger
	hash common.Hash
}

func (p *pendingTx) Hash() common.Hash { return p.hash }

func (p *pendingTx) Wait(ctx context.Context) (*ledger.Receipt, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return p.l.TransactionReceipt(ctx, p.hash)
}

type factory struct{ l *Ledger }

func (f *factory) Address() common.Address { return FactoryAddress }

func (f *factory) Owner(context.Context) (common.Address, error) {
	return f.l.factoryOwner, nil
}

func (f *factory) IsRegistered(_ context.Context, account common.Address) (bool, error) {
	f.l.mu.Lock()
	defer f.l.mu.Unlock()
	return f.l.registered[account] || f.l.authorized[account], nil
}

func (f *factory) IsAuthorized(_ context.Context, account common.Address) (bool, error) {
	f.l.mu.Lock()
	defer f.l.mu.Unlock()
	return f.l.authorized[account], nil
}

func (f *factory) Authorize(_ context.Context, account common.Address) (ledger.PendingTx, error) {
	return f.l.send("authorize", func() error {
		if f.l.operator != f.l.factoryOwner {
			return revert(ledger.ReasonUnauthorized)
		}
		if f.l.authorized[account] {
			return revert(ledger.ReasonAlreadyRegistered)
		}
		f.l.registered[account] = true
		f.l.authorized[account] = true
		return nil
	})
}

func (f *factory) Register(context.Context) (ledger.PendingTx, error) {
	return f.l.send("register", func() error {
		if f.l.registered[f.l.operator] || f.l.authorized[f.l.operator] {
			return revert(ledger.ReasonAlreadyRegistered)
		}
		f.l.registered[f.l.operator] = true
		return nil
	})
}

func (f *factory) Calls(_ context.Context, callID common.Hash) (ledger.CallRecord, error) {
	f.l.mu.Lock()
	defer f.l.mu.Unlock()
	return f.l.calls[callID], nil
}

func (f *factory) CreatorsCount(context.Context) (uint64, error) {
	f.l.mu.Lock()
	defer f.l.mu.Unlock()
	return uint64(len(f.l.creators)), nil
}

func (f *factory) Creators(_ context.Context, index uint64) (common.Address, error) {
	f.l.mu.Lock()
	defer f.l.mu.Unlock()
	if index >= uint64(len(f.l.creators)) {
		return common.Address{}, revert("index out of range")
	}
	return f.l.creators[index], nil
}

func (f *factory) CreatedByCount(_ context.Context, creator common.Address) (uint64, error) {
	f.l.mu.Lock()
	defer f.l.mu.Unlock()
	return uint64(len(f.l.createdBy[creator])), nil
}

func (f *factory) CreatedBy(_ context.Context, creator common.Address, index uint64) (common.Hash, error) {
	f.l.mu.Lock()
	defer f.l.mu.Unlock()
	ids := f.l.createdBy[creator]
	if index >= uint64(len(ids)) {
		return common.Hash{}, revert("index out of range")
	}
	return ids[index], nil
}

func (f *factory) Create(_ context.Context, callID common.Hash, closingTime int64) (ledger.PendingTx, error) {
	return f.l.send("create", func() error {
		return f.l.createCall(callID, closingTime, f.l.operator)
	})
}

func (f *factory) CreateFor(_ context.Context, callID common.Hash, closingTime int64, creator common.Address) (ledger.PendingTx, error) {
	return f.l.send("createFor", func() error {
		if f.l.operator != f.l.factoryOwner {
			return revert(ledger.ReasonUnauthorized)
		}
		return f.l.createCall(callID, closingTime, creator)
	})
}

func (l *Ledger) createCall(callID common.Hash, closingTime int64, creator common.Address) error {
	if !l.authorized[creator] {
		return revert(ledger.ReasonUnauthorized)
	}
	if l.calls[callID].Exists() {
		return revert(ledger.ReasonCallAlreadyExists)
	}
	if closingTime <= l.now().Unix() {
		return revert(ledger.ReasonClosingTimeInPast)
	}

	cfpAddress := common.BytesToAddress(crypto.Keccak256(FactoryAddress.Bytes(), callID.Bytes())[12:])
	l.calls[callID] = ledger.CallRecord{Creator: creator, CFP: cfpAddress}
	l.cfps[cfpAddress] = &cfpState{
		closingTime: closingTime,
		proposals:   make(map[common.Hash]ledger.ProposalRecord),
	}
	if len(l.createdBy[creator]) == 0 {
		l.creators = append(l.creators, creator)
	}
	l.createdBy[creator] = append(l.createdBy[creator], callID)
	return nil
}

type cfp struct {
	l       *Ledger
	address common.Address
}

func (c *cfp) Address() common.Address { return c.address }

func (c *cfp) state() (*cfpState, error) {
	s, ok := c.l.cfps[c.address]
	if !ok {
		return nil, fmt.Errorf("no contract code at %s", c.address.Hex())
	}
	return s, nil
}

func (c *cfp) ClosingTime(context.Context) (int64, error) {
	c.l.mu.Lock()
	defer c.l.mu.Unlock()
	s, err := c.state()
	if err != nil {
		return 0, err
	}
	return s.closingTime, nil
}

func (c *cfp) ProposalData(_ context.Context, proposal common.Hash) (ledger.ProposalRecord, error) {
	c.l.mu.Lock()
	defer c.l.mu.Unlock()
	s, err := c.state()
	if err != nil {
		return ledger.ProposalRecord{}, err
	}
	record, ok := s.proposals[proposal]
	if !ok {
		return ledger.ProposalRecord{BlockNumber: new(big.Int), Timestamp: new(big.Int)}, nil
	}
	return record, nil
}

func (c *cfp) ProposalCount(context.Context) (uint64, error) {
	c.l.mu.Lock()
	defer c.l.mu.Unlock()
	s, err := c.state()
	if err != nil {
		return 0, err
	}
	return uint64(len(s.order)), nil
}

func (c *cfp) RegisterProposal(_ context.Context, proposal common.Hash) (ledger.PendingTx, error) {
	return c.l.send("registerProposal", func() error {
		s, err := c.state()
		if err != nil {
			return err
		}
		now := c.l.now().Unix()
		if s.closingTime <= now {
			return revert(ledger.ReasonCallClosed)
		}
		if s.proposals[proposal].Exists() {
			return revert(ledger.ReasonProposalAlreadyExists)
		}
		s.proposals[proposal] = ledger.ProposalRecord{
			Sender:      c.l.operator,
			BlockNumber: new(big.Int).SetUint64(c.l.block + 1),
			Timestamp:   big.NewInt(now),
		}
		s.order = append(s.order, proposal)
		return nil
	})
}

type registry struct{ l *Ledger }

func (r *registry) Address() common.Address { return RegistryAddress }

func (r *registry) Owner(_ context.Context, node common.Hash) (common.Address, error) {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	return r.l.owners[node], nil
}

func (r *registry) Resolver(_ context.Context, node common.Hash) (common.Address, error) {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	return r.l.resolvers[node], nil
}

func (r *registry) SetResolver(_ context.Context, node common.Hash, resolverAddress common.Address) (ledger.PendingTx, error) {
	return r.l.send("setResolver", func() error {
		if r.l.owners[node] != r.l.operator {
			return errors.New("execution reverted")
		}
		r.l.resolvers[node] = resolverAddress
		return nil
	})
}

type resolver struct {
	l       *Ledger
	address common.Address
}

func (r *resolver) Address() common.Address { return r.address }

func (r *resolver) Addr(_ context.Context, node common.Hash) (common.Address, error) {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	return r.l.addrs[r.address][node], nil
}

func (r *resolver) SetAddr(_ context.Context, node common.Hash, addr common.Address) (ledger.PendingTx, error) {
	return r.l.send("setAddr", func() error {
		if r.l.owners[node] != r.l.operator {
			return errors.New("execution reverted")
		}
		if r.l.addrs[r.address] == nil {
			r.l.addrs[r.address] = make(map[common.Hash]common.Address)
		}
		r.l.addrs[r.address][node] = addr
		return nil
	})
}

func (r *resolver) Text(_ context.Context, node common.Hash, key string) (string, error) {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	return r.l.texts[r.address][node][key], nil
}

func (r *resolver) SetText(_ context.Context, node common.Hash, key, value string) (ledger.PendingTx, error) {
	return r.l.send("setText", func() error {
		if r.l.owners[node] != r.l.operator {
			return errors.New("execution reverted")
		}
		if r.l.texts[r.address] == nil {
			r.l.texts[r.address] = make(map[common.Hash]map[string]string)
		}
		if r.l.texts[r.address][node] == nil {
			r.l.texts[r.address][node] = make(map[string]string)
		}
		r.l.texts[r.address][node][key] = value
		return nil
	})
}

func (r *resolver) Name(_ context.Context, node common.Hash) (string, error) {
	r.l.mu.Lock()
	defer r.l.mu.Unlock()
	return r.l.names[r.address][node], nil
}

type reverseRegistrar struct{ l *Ledger }

func (r *reverseRegistrar) Address() common.Address { return ReverseRegistrarAddress }

// ReverseNode is the node of addr under addr.reverse.
func ReverseNode(addr common.Address) common.Hash {
	return ledger.NameHash(strings.ToLower(strings.TrimPrefix(addr.Hex(), "0x")) + ".addr.reverse")
}

func (r *reverseRegistrar) Node(_ context.Context, addr common.Address) (common.Hash, error) {
	return ReverseNode(addr), nil
}

func (r *reverseRegistrar) SetNameForAddress(_ context.Context, addr common.Address, name string) (ledger.PendingTx, error) {
	return r.l.send("setNameForAddress", func() error {
		node := ReverseNode(addr)
		r.l.owners[node] = r.l.operator
		r.l.resolvers[node] = PublicResolverAddress
		if r.l.names[PublicResolverAddress] == nil {
			r.l.names[PublicResolverAddress] = make(map[common.Hash]string)
		}
		r.l.names[PublicResolverAddress][node] = name
		return nil
	})
}

type registrar struct {
	l       *Ledger
	address common.Address
	domain  string
}

func (r *registrar) Address() common.Address { return r.address }

func (r *registrar) Register(_ context.Context, label common.Hash, owner common.Address) (ledger.PendingTx, error) {
	return r.l.send("registerName", func() error {
		node := crypto.Keccak256Hash(ledger.NameHash(r.domain).Bytes(), label.Bytes())
		current := r.l.owners[node]
		if current != ledger.ZeroAddress && current != r.l.operator {
			return errors.New("execution reverted")
		}
		r.l.owners[node] = owner
		return nil
	})
}
