package naming

import (
	"context"
	"errors"
	"math/big"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/lidofinance/cfp-gateway/events"
	"github.com/lidofinance/cfp-gateway/gateway/api/dto"
	"github.com/lidofinance/cfp-gateway/gateway/modules/logger"
	"github.com/lidofinance/cfp-gateway/gateway/modules/state"
	"github.com/lidofinance/cfp-gateway/gateway/repositories/journal"
	"github.com/lidofinance/cfp-gateway/gateway/repositories/names"
	"github.com/lidofinance/cfp-gateway/gateway/services/transactions"
	"github.com/lidofinance/cfp-gateway/gateway/types"
	"github.com/lidofinance/cfp-gateway/ledger/ledgertest"
	"github.com/lidofinance/cfp-gateway/mocks/ledgerMocks"
	"github.com/lidofinance/cfp-gateway/mocks/repoMocks"
)

var (
	operator = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	alice    = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	bob      = common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC")
	now      = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
)

func newService(t *testing.T) (*BaseNamingService, *ledgertest.Ledger) {
	st, err := state.NewLevelDBState(filepath.Join(t.TempDir(), "state"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	l := ledgertest.NewLedger(operator)
	txs := transactions.NewTransactionService(
		journal.NewJournalRepo(st, operator.Hex()), events.NopSink{}, l, logger.NewLogger("test"), 0, 0,
	)
	svc := NewNamingService(l, names.NewNamesRepo(st, operator.Hex()), txs, logger.NewLogger("test"), func() time.Time { return now })
	return svc, l
}

func TestRegisterUserName(t *testing.T) {
	var (
		ctx    = context.Background()
		req    = require.New(t)
		svc, _ = newService(t)
	)

	result, err := svc.RegisterUserName(ctx, &dto.RegisterUserNameDTO{
		UserName:    "alice",
		UserAddress: alice.Hex(),
		Description: "Investigadora",
	})
	req.NoError(err)
	req.True(result.Success)
	req.Equal(types.MsgUserNameRegistered, result.Message)
	req.Equal("alice.usuarios.cfp", result.Name)
	req.Equal(alice.Hex(), result.Address)
	req.Equal(uint64(1), result.BlockNumber)

	resolved, err := svc.ResolveName(ctx, &dto.NameDTO{Name: "alice.usuarios.cfp"})
	req.NoError(err)
	req.Equal(alice.Hex(), resolved.Address)

	reverse, err := svc.ResolveAddress(ctx, &dto.AddressDTO{Address: alice.Hex()})
	req.NoError(err)
	req.Equal("alice.usuarios.cfp", reverse.Name)

	info, err := svc.NameInfo(ctx, &dto.NameDTO{Name: "alice.usuarios.cfp"})
	req.NoError(err)
	req.Equal(&types.NameInfo{
		Name:        "alice.usuarios.cfp",
		Address:     alice.Hex(),
		Description: "Investigadora",
		ReverseName: "alice.usuarios.cfp",
	}, info)

	availability, err := svc.IsNameAvailable(ctx, &dto.NameDTO{Name: "alice.usuarios.cfp"})
	req.NoError(err)
	req.False(availability.Available)

	registered, err := svc.RegisteredNames(&dto.DomainDTO{Domain: UsersDomain})
	req.NoError(err)
	req.Len(registered, 1)
	req.Equal("alice.usuarios.cfp", registered[0].Name)
	req.True(now.Equal(registered[0].RegisteredAt))

	_, err = svc.RegisterUserName(ctx, &dto.RegisterUserNameDTO{UserName: "alice", UserAddress: bob.Hex()})
	req.True(types.IsKind(err, types.AlreadyRegistered))
}

func TestRegisterCallName(t *testing.T) {
	var (
		ctx    = context.Background()
		req    = require.New(t)
		svc, _ = newService(t)
	)

	cfp := common.HexToAddress("0xa16E02E87b7454126E5E10d957A927A7F5B5d2be")
	result, err := svc.RegisterCallName(ctx, &dto.RegisterCallNameDTO{CallName: "convocatoria-1", CallAddress: cfp.Hex()})
	req.NoError(err)
	req.Equal(types.MsgCallNameRegistered, result.Message)
	req.Equal("convocatoria-1.llamados.cfp", result.Name)

	info, err := svc.NameInfo(ctx, &dto.NameDTO{Name: "convocatoria-1.llamados.cfp"})
	req.NoError(err)
	req.Empty(info.Description)

	users, err := svc.RegisteredNames(&dto.DomainDTO{Domain: UsersDomain})
	req.NoError(err)
	req.Empty(users)

	_, err = svc.RegisteredNames(&dto.DomainDTO{Domain: "eth"})
	req.True(types.IsKind(err, types.MalformedInput))
}

func TestRegister_Rejected(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		label   string
		address string
		kind    types.Kind
	}{
		{"uppercase label", "Alice", alice.Hex(), types.MalformedInput},
		{"dotted label", "a.b", alice.Hex(), types.MalformedInput},
		{"empty label", "", alice.Hex(), types.MalformedInput},
		{"malformed address", "alice", "0x12", types.MalformedInput},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, _ := newService(t)
			_, err := svc.RegisterUserName(ctx, &dto.RegisterUserNameDTO{UserName: tc.label, UserAddress: tc.address})
			require.Equal(t, tc.kind, types.KindOf(err))
		})
	}
}

func TestRegister_StepFailure(t *testing.T) {
	var (
		ctx     = context.Background()
		req     = require.New(t)
		svc, l  = newService(t)
		name    = "alice.usuarios.cfp"
		request = &dto.RegisterUserNameDTO{UserName: "alice", UserAddress: alice.Hex()}
	)

	l.FailNext("setAddr", errors.New("replacement transaction underpriced"))
	_, err := svc.RegisterUserName(ctx, request)
	req.True(types.IsKind(err, types.Internal))
	req.Contains(err.Error(), types.MsgENSRegistrationError)

	// earlier writes stay in place
	availability, err := svc.IsNameAvailable(ctx, &dto.NameDTO{Name: name})
	req.NoError(err)
	req.False(availability.Available)

	_, err = svc.ResolveName(ctx, &dto.NameDTO{Name: name})
	req.True(types.IsKind(err, types.NotFound))

	registered, err := svc.RegisteredNames(&dto.DomainDTO{Domain: UsersDomain})
	req.NoError(err)
	req.Empty(registered)
}

func TestResolve_NotFound(t *testing.T) {
	var (
		ctx    = context.Background()
		req    = require.New(t)
		svc, _ = newService(t)
	)

	_, err := svc.ResolveName(ctx, &dto.NameDTO{Name: "nadie.usuarios.cfp"})
	req.True(types.IsKind(err, types.NotFound))

	_, err = svc.NameInfo(ctx, &dto.NameDTO{Name: "nadie.usuarios.cfp"})
	req.True(types.IsKind(err, types.NotFound))

	_, err = svc.ResolveAddress(ctx, &dto.AddressDTO{Address: bob.Hex()})
	req.True(types.IsKind(err, types.NotFound))

	_, err = svc.ResolveName(ctx, &dto.NameDTO{Name: "a..cfp"})
	req.True(types.IsKind(err, types.MalformedInput))

	availability, err := svc.IsNameAvailable(ctx, &dto.NameDTO{Name: "nadie.usuarios.cfp"})
	req.NoError(err)
	req.True(availability.Available)
}

func TestResolveAddresses(t *testing.T) {
	var (
		ctx    = context.Background()
		req    = require.New(t)
		svc, _ = newService(t)
	)

	_, err := svc.RegisterUserName(ctx, &dto.RegisterUserNameDTO{UserName: "alice", UserAddress: alice.Hex()})
	req.NoError(err)

	resolved, err := svc.ResolveAddresses(ctx, &dto.AddressesDTO{Addresses: []string{alice.Hex(), bob.Hex()}})
	req.NoError(err)
	req.Len(resolved, 2)
	req.NotNil(resolved[alice.Hex()])
	req.Equal("alice.usuarios.cfp", *resolved[alice.Hex()])
	req.Nil(resolved[bob.Hex()])

	_, err = svc.ResolveAddresses(ctx, &dto.AddressesDTO{Addresses: []string{alice.Hex(), "bob"}})
	req.True(types.IsKind(err, types.MalformedInput))

	tooMany := make([]string, MaxResolveAddresses+1)
	for i := range tooMany {
		tooMany[i] = alice.Hex()
	}
	_, err = svc.ResolveAddresses(ctx, &dto.AddressesDTO{Addresses: tooMany})
	req.True(types.IsKind(err, types.MalformedInput))
	req.Contains(err.Error(), types.MsgTooManyAddresses)
}

func TestResolveAddresses_BoundedConcurrency(t *testing.T) {
	var (
		ctx  = context.Background()
		req  = require.New(t)
		ctrl = gomock.NewController(t)
	)
	defer ctrl.Finish()

	var inFlight, peak int32
	reverse := ledgerMocks.NewMockReverseRegistrar(ctrl)
	reverse.EXPECT().Node(gomock.Any(), gomock.Any()).AnyTimes().
		DoAndReturn(func(ctx context.Context, addr common.Address) (common.Hash, error) {
			n := atomic.AddInt32(&inFlight, 1)
			for {
				p := atomic.LoadInt32(&peak)
				if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			atomic.AddInt32(&inFlight, -1)
			return common.Hash{}, errors.New("rpc unavailable")
		})

	l := ledgerMocks.NewMockLedger(ctrl)
	l.EXPECT().ReverseRegistrar().AnyTimes().Return(reverse)

	svc := NewNamingService(l, nil, nil, logger.NewLogger("test"), func() time.Time { return now })

	addresses := make([]string, MaxResolveAddresses)
	for i := range addresses {
		addresses[i] = common.BigToAddress(big.NewInt(int64(i + 1))).Hex()
	}
	resolved, err := svc.ResolveAddresses(ctx, &dto.AddressesDTO{Addresses: addresses})
	req.NoError(err)
	req.Len(resolved, MaxResolveAddresses)
	for _, name := range resolved {
		req.Nil(name)
	}
	req.LessOrEqual(atomic.LoadInt32(&peak), int32(maxConcurrentLookups))
}

func TestNamesRepoFailures(t *testing.T) {
	var (
		ctx  = context.Background()
		req  = require.New(t)
		ctrl = gomock.NewController(t)
	)
	defer ctrl.Finish()

	st, err := state.NewLevelDBState(filepath.Join(t.TempDir(), "state"))
	req.NoError(err)
	defer st.Close()

	l := ledgertest.NewLedger(operator)
	txs := transactions.NewTransactionService(
		journal.NewJournalRepo(st, operator.Hex()), events.NopSink{}, l, logger.NewLogger("test"), 0, 0,
	)
	namesRepo := repoMocks.NewMockNamesRepo(ctrl)
	svc := NewNamingService(l, namesRepo, txs, logger.NewLogger("test"), func() time.Time { return now })

	// the name is already on chain, so a failed local record does not fail the registration
	namesRepo.EXPECT().PutName(gomock.Any()).Return(errors.New("disk full"))
	result, err := svc.RegisterUserName(ctx, &dto.RegisterUserNameDTO{UserName: "alice", UserAddress: alice.Hex()})
	req.NoError(err)
	req.True(result.Success)

	resolved, err := svc.ResolveName(ctx, &dto.NameDTO{Name: "alice.usuarios.cfp"})
	req.NoError(err)
	req.Equal(alice.Hex(), resolved.Address)

	namesRepo.EXPECT().GetNames(UsersDomain).Return(nil, errors.New("disk full"))
	_, err = svc.RegisteredNames(&dto.DomainDTO{Domain: UsersDomain})
	req.True(types.IsKind(err, types.Internal))
}
