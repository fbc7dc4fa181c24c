package ledger

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

var _ Ledger = (*EthLedger)(nil)

// Backend is what EthLedger needs from a node connection. *ethclient.Client and the
// simulated backend both satisfy it.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
}

// Addresses of the deployed contracts.
type Addresses struct {
	CFPFactory       common.Address
	ENSRegistry      common.Address
	PublicResolver   common.Address
	ReverseRegistrar common.Address
	CallsRegistrar   common.Address
	UsersRegistrar   common.Address
}

type contractABIs struct {
	factory, cfp, registry, resolver, reverse, registrar abi.ABI
}

// EthLedger talks to the contracts over JSON-RPC. Every write is signed by the
// operator key; submissions are serialized so that nonces are taken in order.
type EthLedger struct {
	backend Backend
	auth    *bind.TransactOpts
	sendMu  sync.Mutex
	abis    contractABIs

	factory          *ethFactory
	registry         *ethRegistry
	publicResolver   *ethResolver
	reverseRegistrar *ethReverseRegistrar
	callsRegistrar   *ethRegistrar
	usersRegistrar   *ethRegistrar
}

// DialEthLedger connects to rpcURL and binds the contracts to the operator key.
func DialEthLedger(ctx context.Context, rpcURL string, operatorKey *ecdsa.PrivateKey, addrs Addresses) (*EthLedger, error) {
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s: %w", rpcURL, err)
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to get chain id: %w", err)
	}

	auth, err := bind.NewKeyedTransactorWithChainID(operatorKey, chainID)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to create transactor: %w", err)
	}

	return NewEthLedger(client, auth, addrs)
}

func NewEthLedger(backend Backend, auth *bind.TransactOpts, addrs Addresses) (*EthLedger, error) {
	abis, err := parseABIs()
	if err != nil {
		return nil, err
	}

	l := &EthLedger{
		backend: backend,
		auth:    auth,
		abis:    abis,
	}

	l.factory = &ethFactory{l.bind(addrs.CFPFactory, abis.factory)}
	l.registry = &ethRegistry{l.bind(addrs.ENSRegistry, abis.registry)}
	l.publicResolver = &ethResolver{l.bind(addrs.PublicResolver, abis.resolver)}
	l.reverseRegistrar = &ethReverseRegistrar{l.bind(addrs.ReverseRegistrar, abis.reverse)}
	l.callsRegistrar = &ethRegistrar{l.bind(addrs.CallsRegistrar, abis.registrar)}
	l.usersRegistrar = &ethRegistrar{l.bind(addrs.UsersRegistrar, abis.registrar)}

	return l, nil
}

func parseABIs() (contractABIs, error) {
	var (
		abis contractABIs
		err  error
	)
	for _, item := range []struct {
		name string
		src  string
		dst  *abi.ABI
	}{
		{"CFPFactory", factoryABI, &abis.factory},
		{"CFP", cfpABI, &abis.cfp},
		{"ENSRegistry", registryABI, &abis.registry},
		{"PublicResolver", resolverABI, &abis.resolver},
		{"ReverseRegistrar", reverseRegistrarABI, &abis.reverse},
		{"FIFSRegistrar", registrarABI, &abis.registrar},
	} {
		if *item.dst, err = abi.JSON(strings.NewReader(item.src)); err != nil {
			return abis, fmt.Errorf("failed to parse %s ABI: %w", item.name, err)
		}
	}
	return abis, nil
}

func (l *EthLedger) bind(address common.Address, contractABI abi.ABI) *contract {
	return &contract{
		address: address,
		bound:   bind.NewBoundContract(address, contractABI, l.backend, l.backend, l.backend),
		ledger:  l,
	}
}

func (l *EthLedger) OperatorAddress() common.Address { return l.auth.From }

func (l *EthLedger) Factory() Factory { return l.factory }

func (l *EthLedger) CFPAt(addr common.Address) CFP { return &ethCFP{l.bind(addr, l.abis.cfp)} }

func (l *EthLedger) Registry() Registry { return l.registry }

func (l *EthLedger) PublicResolver() Resolver { return l.publicResolver }

func (l *EthLedger) ResolverAt(addr common.Address) Resolver {
	return &ethResolver{l.bind(addr, l.abis.resolver)}
}

func (l *EthLedger) ReverseRegistrar() ReverseRegistrar { return l.reverseRegistrar }

func (l *EthLedger) CallsRegistrar() Registrar { return l.callsRegistrar }

func (l *EthLedger) UsersRegistrar() Registrar { return l.usersRegistrar }

func (l *EthLedger) TransactionReceipt(ctx context.Context, hash common.Hash) (*Receipt, error) {
	r, err := l.backend.TransactionReceipt(ctx, hash)
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return nil, ErrReceiptNotFound
		}
		return nil, fmt.Errorf("failed to get receipt %s: %w", hash.Hex(), err)
	}
	return toReceipt(r), nil
}

func toReceipt(r *types.Receipt) *Receipt {
	receipt := &Receipt{
		TxHash: r.TxHash,
		Status: r.Status,
	}
	if r.BlockNumber != nil {
		receipt.BlockNumber = r.BlockNumber.Uint64()
	}
	return receipt
}

type ethPendingTx struct {
	tx      *types.Transaction
	backend bind.DeployBackend
}

func (p *ethPendingTx) Hash() common.Hash { return p.tx.Hash() }

func (p *ethPendingTx) Wait(ctx context.Context) (*Receipt, error) {
	r, err := bind.WaitMined(ctx, p.backend, p.tx)
	if err != nil {
		return nil, fmt.Errorf("failed to wait for %s: %w", p.tx.Hash().Hex(), err)
	}
	return toReceipt(r), nil
}

// contract wraps a bound contract with typed call/transact helpers.
type contract struct {
	address common.Address
	bound   *bind.BoundContract
	ledger  *EthLedger
}

func (c *contract) Address() common.Address { return c.address }

func (c *contract) call(ctx context.Context, method string, params ...interface{}) ([]interface{}, error) {
	var out []interface{}
	if err := c.bound.Call(&bind.CallOpts{Context: ctx}, &out, method, params...); err != nil {
		return nil, fmt.Errorf("failed to call %s on %s: %w", method, c.address.Hex(), err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty result of %s on %s", method, c.address.Hex())
	}
	return out, nil
}

func (c *contract) transact(ctx context.Context, method string, params ...interface{}) (PendingTx, error) {
	c.ledger.sendMu.Lock()
	defer c.ledger.sendMu.Unlock()

	opts := *c.ledger.auth
	opts.Context = ctx

	tx, err := c.bound.Transact(&opts, method, params...)
	if err != nil {
		return nil, fmt.Errorf("failed to send %s to %s: %w", method, c.address.Hex(), err)
	}
	return &ethPendingTx{tx: tx, backend: c.ledger.backend}, nil
}

func (c *contract) callAddress(ctx context.Context, method string, params ...interface{}) (common.Address, error) {
	out, err := c.call(ctx, method, params...)
	if err != nil {
		return common.Address{}, err
	}
	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}

func (c *contract) callBool(ctx context.Context, method string, params ...interface{}) (bool, error) {
	out, err := c.call(ctx, method, params...)
	if err != nil {
		return false, err
	}
	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

func (c *contract) callBig(ctx context.Context, method string, params ...interface{}) (*big.Int, error) {
	out, err := c.call(ctx, method, params...)
	if err != nil {
		return nil, err
	}
	return *abi.ConvertType(out[0], new(*big.Int)).(**big.Int), nil
}

func (c *contract) callUint64(ctx context.Context, method string, params ...interface{}) (uint64, error) {
	v, err := c.callBig(ctx, method, params...)
	if err != nil {
		return 0, err
	}
	if !v.IsUint64() {
		return 0, fmt.Errorf("%s on %s overflows uint64: %s", method, c.address.Hex(), v)
	}
	return v.Uint64(), nil
}

func (c *contract) callHash(ctx context.Context, method string, params ...interface{}) (common.Hash, error) {
	out, err := c.call(ctx, method, params...)
	if err != nil {
		return common.Hash{}, err
	}
	return common.Hash(*abi.ConvertType(out[0], new([32]byte)).(*[32]byte)), nil
}

func (c *contract) callString(ctx context.Context, method string, params ...interface{}) (string, error) {
	out, err := c.call(ctx, method, params...)
	if err != nil {
		return "", err
	}
	return *abi.ConvertType(out[0], new(string)).(*string), nil
}

func bytes32(h common.Hash) [32]byte {
	return [32]byte(h)
}

type ethFactory struct{ *contract }

func (f *ethFactory) Owner(ctx context.Context) (common.Address, error) {
	return f.callAddress(ctx, "owner")
}

func (f *ethFactory) IsRegistered(ctx context.Context, account common.Address) (bool, error) {
	return f.callBool(ctx, "isRegistered", account)
}

func (f *ethFactory) IsAuthorized(ctx context.Context, account common.Address) (bool, error) {
	return f.callBool(ctx, "isAuthorized", account)
}

func (f *ethFactory) Authorize(ctx context.Context, account common.Address) (PendingTx, error) {
	return f.transact(ctx, "authorize", account)
}

func (f *ethFactory) Register(ctx context.Context) (PendingTx, error) {
	return f.transact(ctx, "register")
}

// Calls decodes the (creator, cfp) tuple into a CallRecord.
func (f *ethFactory) Calls(ctx context.Context, callID common.Hash) (CallRecord, error) {
	out, err := f.call(ctx, "calls", bytes32(callID))
	if err != nil {
		return CallRecord{}, err
	}
	if len(out) != 2 {
		return CallRecord{}, fmt.Errorf("unexpected calls result size %d", len(out))
	}
	return CallRecord{
		Creator: *abi.ConvertType(out[0], new(common.Address)).(*common.Address),
		CFP:     *abi.ConvertType(out[1], new(common.Address)).(*common.Address),
	}, nil
}

func (f *ethFactory) CreatorsCount(ctx context.Context) (uint64, error) {
	return f.callUint64(ctx, "creatorsCount")
}

func (f *ethFactory) Creators(ctx context.Context, index uint64) (common.Address, error) {
	return f.callAddress(ctx, "creators", new(big.Int).SetUint64(index))
}

func (f *ethFactory) CreatedByCount(ctx context.Context, creator common.Address) (uint64, error) {
	return f.callUint64(ctx, "createdByCount", creator)
}

func (f *ethFactory) CreatedBy(ctx context.Context, creator common.Address, index uint64) (common.Hash, error) {
	return f.callHash(ctx, "createdBy", creator, new(big.Int).SetUint64(index))
}

func (f *ethFactory) Create(ctx context.Context, callID common.Hash, closingTime int64) (PendingTx, error) {
	return f.transact(ctx, "create", bytes32(callID), big.NewInt(closingTime))
}

func (f *ethFactory) CreateFor(ctx context.Context, callID common.Hash, closingTime int64, creator common.Address) (PendingTx, error) {
	return f.transact(ctx, "createFor", bytes32(callID), big.NewInt(closingTime), creator)
}

type ethCFP struct{ *contract }

func (c *ethCFP) ClosingTime(ctx context.Context) (int64, error) {
	v, err := c.callBig(ctx, "closingTime")
	if err != nil {
		return 0, err
	}
	if !v.IsInt64() {
		return 0, fmt.Errorf("closingTime on %s overflows int64: %s", c.address.Hex(), v)
	}
	return v.Int64(), nil
}

func (c *ethCFP) ProposalData(ctx context.Context, proposal common.Hash) (ProposalRecord, error) {
	out, err := c.call(ctx, "proposalData", bytes32(proposal))
	if err != nil {
		return ProposalRecord{}, err
	}
	if len(out) != 3 {
		return ProposalRecord{}, fmt.Errorf("unexpected proposalData result size %d", len(out))
	}
	return ProposalRecord{
		Sender:      *abi.ConvertType(out[0], new(common.Address)).(*common.Address),
		BlockNumber: *abi.ConvertType(out[1], new(*big.Int)).(**big.Int),
		Timestamp:   *abi.ConvertType(out[2], new(*big.Int)).(**big.Int),
	}, nil
}

func (c *ethCFP) ProposalCount(ctx context.Context) (uint64, error) {
	return c.callUint64(ctx, "proposalCount")
}

func (c *ethCFP) RegisterProposal(ctx context.Context, proposal common.Hash) (PendingTx, error) {
	return c.transact(ctx, "registerProposal", bytes32(proposal))
}

type ethRegistry struct{ *contract }

func (r *ethRegistry) Owner(ctx context.Context, node common.Hash) (common.Address, error) {
	return r.callAddress(ctx, "owner", bytes32(node))
}

func (r *ethRegistry) Resolver(ctx context.Context, node common.Hash) (common.Address, error) {
	return r.callAddress(ctx, "resolver", bytes32(node))
}

func (r *ethRegistry) SetResolver(ctx context.Context, node common.Hash, resolver common.Address) (PendingTx, error) {
	return r.transact(ctx, "setResolver", bytes32(node), resolver)
}

type ethResolver struct{ *contract }

func (r *ethResolver) Addr(ctx context.Context, node common.Hash) (common.Address, error) {
	return r.callAddress(ctx, "addr", bytes32(node))
}

func (r *ethResolver) SetAddr(ctx context.Context, node common.Hash, addr common.Address) (PendingTx, error) {
	return r.transact(ctx, "setAddr", bytes32(node), addr)
}

func (r *ethResolver) Text(ctx context.Context, node common.Hash, key string) (string, error) {
	return r.callString(ctx, "text", bytes32(node), key)
}

func (r *ethResolver) SetText(ctx context.Context, node common.Hash, key, value string) (PendingTx, error) {
	return r.transact(ctx, "setText", bytes32(node), key, value)
}

func (r *ethResolver) Name(ctx context.Context, node common.Hash) (string, error) {
	return r.callString(ctx, "name", bytes32(node))
}

type ethReverseRegistrar struct{ *contract }

func (r *ethReverseRegistrar) Node(ctx context.Context, addr common.Address) (common.Hash, error) {
	return r.callHash(ctx, "node", addr)
}

func (r *ethReverseRegistrar) SetNameForAddress(ctx context.Context, addr common.Address, name string) (PendingTx, error) {
	return r.transact(ctx, "setNameForAddress", addr, name)
}

type ethRegistrar struct{ *contract }

func (r *ethRegistrar) Register(ctx context.Context, label common.Hash, owner common.Address) (PendingTx, error) {
	return r.transact(ctx, "register", bytes32(label), owner)
}
