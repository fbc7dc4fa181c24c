package proposals

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"github.com/lidofinance/cfp-gateway/events"
	"github.com/lidofinance/cfp-gateway/gateway/api/dto"
	"github.com/lidofinance/cfp-gateway/gateway/modules/callcache"
	"github.com/lidofinance/cfp-gateway/gateway/modules/logger"
	"github.com/lidofinance/cfp-gateway/gateway/modules/state"
	"github.com/lidofinance/cfp-gateway/gateway/repositories/journal"
	"github.com/lidofinance/cfp-gateway/gateway/services/transactions"
	"github.com/lidofinance/cfp-gateway/gateway/types"
	"github.com/lidofinance/cfp-gateway/ledger"
	"github.com/lidofinance/cfp-gateway/ledger/ledgertest"
	"github.com/lidofinance/cfp-gateway/verifier"
)

var (
	operator = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	creator  = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	callID   = common.HexToHash("0x1111111111111111111111111111111111111111111111111111111111111111")
	proposal = common.HexToHash("0x9c22ff5f21f0b81b113e63f7db6da94fedef11b2119b4088b89664fb9a3cb658")
)

type fixture struct {
	now    time.Time
	ledger *ledgertest.Ledger
	txs    *transactions.BaseTransactionService
	svc    *BaseProposalsService
}

// newFixture opens a call that closes one hour after the fixture clock.
func newFixture(t *testing.T) *fixture {
	f := &fixture{now: time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)}
	clock := func() time.Time { return f.now }

	f.ledger = ledgertest.NewLedger(operator, ledgertest.WithClock(clock))
	f.ledger.Authorize(creator)
	_, err := f.ledger.Factory().CreateFor(context.Background(), callID, f.now.Add(time.Hour).Unix(), creator)
	require.NoError(t, err)

	st, err := state.NewLevelDBState(filepath.Join(t.TempDir(), "state"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	cache, err := callcache.NewCallCache(f.ledger.Factory(), 8)
	require.NoError(t, err)

	f.txs = transactions.NewTransactionService(
		journal.NewJournalRepo(st, operator.Hex()), events.NopSink{}, f.ledger, logger.NewLogger("test"), 0, 0,
	)
	f.svc = NewProposalsService(f.ledger, verifier.NewPersonalSignVerifier(), cache, f.txs, logger.NewLogger("test"), clock)
	return f
}

func TestRegister(t *testing.T) {
	var (
		ctx = context.Background()
		req = require.New(t)
		f   = newFixture(t)
	)

	result, err := f.svc.Register(ctx, &dto.ProposalDTO{CallID: callID.Hex(), Proposal: proposal.Hex()})
	req.NoError(err)
	req.Equal(types.MsgOK, result.Message)

	data, err := f.svc.ProposalData(ctx, &dto.ProposalDTO{CallID: callID.Hex(), Proposal: proposal.Hex()})
	req.NoError(err)
	req.Equal(operator.Hex(), data.Sender)
	req.Equal("2", data.BlockNumber)
	req.Equal("2024-05-10T12:00:00.000Z", data.Timestamp)

	_, err = f.svc.Register(ctx, &dto.ProposalDTO{CallID: callID.Hex(), Proposal: proposal.Hex()})
	req.True(types.IsKind(err, types.AlreadyRegistered))

	txs, err := f.txs.GetTransactions()
	req.NoError(err)
	req.Len(txs, 1)
	req.Equal(types.TxRegisterProposal, txs[0].Kind)
	req.Equal(proposal.Hex(), txs[0].Subject)
}

func TestRegister_Rejected(t *testing.T) {
	ctx := context.Background()

	t.Run("malformed call id", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Register(ctx, &dto.ProposalDTO{CallID: "0x1", Proposal: proposal.Hex()})
		require.True(t, types.IsKind(err, types.MalformedInput))
	})

	t.Run("malformed proposal", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Register(ctx, &dto.ProposalDTO{CallID: callID.Hex(), Proposal: "hello"})
		require.True(t, types.IsKind(err, types.MalformedInput))
	})

	t.Run("unknown call", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Register(ctx, &dto.ProposalDTO{
			CallID:   common.HexToHash("0x2222").Hex(),
			Proposal: proposal.Hex(),
		})
		require.True(t, types.IsKind(err, types.NotFound))
	})

	t.Run("closing time reached", func(t *testing.T) {
		f := newFixture(t)
		f.now = f.now.Add(time.Hour)
		_, err := f.svc.Register(ctx, &dto.ProposalDTO{CallID: callID.Hex(), Proposal: proposal.Hex()})
		require.True(t, types.IsKind(err, types.InvalidClosingTime))
		require.Contains(t, err.Error(), types.MsgCallClosed)
	})

	t.Run("one second before closing", func(t *testing.T) {
		f := newFixture(t)
		f.now = f.now.Add(time.Hour - time.Second)
		_, err := f.svc.Register(ctx, &dto.ProposalDTO{CallID: callID.Hex(), Proposal: proposal.Hex()})
		require.NoError(t, err)
	})

	// the pre-check passed but the contract rejected the write
	for _, tc := range []struct {
		reason string
		kind   types.Kind
	}{
		{ledger.ReasonProposalAlreadyExists, types.AlreadyRegistered},
		{ledger.ReasonCallClosed, types.InvalidClosingTime},
	} {
		tc := tc
		t.Run("ledger rejection "+tc.reason, func(t *testing.T) {
			f := newFixture(t)
			f.ledger.FailNext("registerProposal", errors.New("execution reverted: "+tc.reason))
			_, err := f.svc.Register(ctx, &dto.ProposalDTO{CallID: callID.Hex(), Proposal: proposal.Hex()})
			require.True(t, types.IsKind(err, tc.kind), err)

			txs, err := f.txs.GetTransactions()
			require.NoError(t, err)
			require.Empty(t, txs)
		})
	}

	t.Run("failed receipt", func(t *testing.T) {
		f := newFixture(t)
		f.ledger.RevertNext("registerProposal")
		_, err := f.svc.Register(ctx, &dto.ProposalDTO{CallID: callID.Hex(), Proposal: proposal.Hex()})
		require.True(t, types.IsKind(err, types.Internal))
	})
}

func TestRegisterWithSignature(t *testing.T) {
	var (
		ctx = context.Background()
		req = require.New(t)
		f   = newFixture(t)
	)

	key, err := crypto.GenerateKey()
	req.NoError(err)
	signer := crypto.PubkeyToAddress(key.PublicKey)

	sign := func(p common.Hash) string {
		sig, err := verifier.Sign(verifier.ProposalMessage(p), func(hash []byte) ([]byte, error) {
			return crypto.Sign(hash, key)
		})
		req.NoError(err)
		return sig
	}

	// signed for another proposal
	_, err = f.svc.RegisterWithSignature(ctx, &dto.SignedProposalDTO{
		CallID:    callID.Hex(),
		Proposal:  proposal.Hex(),
		Signature: sign(common.HexToHash("0x01")),
		Signer:    signer.Hex(),
	})
	req.True(types.IsKind(err, types.InvalidSignature))

	_, err = f.svc.RegisterWithSignature(ctx, &dto.SignedProposalDTO{
		CallID:    callID.Hex(),
		Proposal:  proposal.Hex(),
		Signature: "0x1234",
		Signer:    signer.Hex(),
	})
	req.True(types.IsKind(err, types.InvalidSignature))

	_, err = f.svc.RegisterWithSignature(ctx, &dto.SignedProposalDTO{
		CallID:    callID.Hex(),
		Proposal:  proposal.Hex(),
		Signature: sign(proposal),
		Signer:    "0xabc",
	})
	req.True(types.IsKind(err, types.MalformedInput))

	result, err := f.svc.RegisterWithSignature(ctx, &dto.SignedProposalDTO{
		CallID:    callID.Hex(),
		Proposal:  proposal.Hex(),
		Signature: sign(proposal),
		Signer:    signer.Hex(),
	})
	req.NoError(err)
	req.Equal(types.MsgOK, result.Message)

	txs, err := f.txs.GetTransactions()
	req.NoError(err)
	req.Len(txs, 1)
	req.Equal(signer.Hex(), txs[0].Signer)

	// the ledger still records the operator as sender
	data, err := f.ledger.CFPAt(mustCFP(t, f)).ProposalData(ctx, proposal)
	req.NoError(err)
	req.Equal(operator, data.Sender)
}

func TestProposalData_NotFound(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.ProposalData(context.Background(), &dto.ProposalDTO{CallID: callID.Hex(), Proposal: proposal.Hex()})
	require.True(t, types.IsKind(err, types.NotFound))
	require.Contains(t, err.Error(), types.MsgProposalNotFound)
}

func mustCFP(t *testing.T, f *fixture) common.Address {
	record, err := f.ledger.Factory().Calls(context.Background(), callID)
	require.NoError(t, err)
	require.True(t, record.Exists())
	return record.CFP
}
