package journal

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lidofinance/cfp-gateway/gateway/modules/state"
	"github.com/lidofinance/cfp-gateway/gateway/types"
)

func newRepo(t *testing.T) *BaseJournalRepo {
	st, err := state.NewLevelDBState(filepath.Join(t.TempDir(), "journal"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return NewJournalRepo(st, "test")
}

func TestJournalRepo_PutAndGet(t *testing.T) {
	req := require.New(t)
	repo := newRepo(t)

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	first := &types.Transaction{ID: "a", Kind: types.TxAuthorize, Status: types.TxSuccess, CreatedAt: now}
	second := &types.Transaction{ID: "b", Kind: types.TxCreateCall, Status: types.TxPending, CreatedAt: now.Add(time.Second)}
	third := &types.Transaction{ID: "c", Kind: types.TxRegisterProposal, Status: types.TxPending, CreatedAt: now.Add(2 * time.Second)}

	for _, tx := range []*types.Transaction{first, second, third} {
		req.NoError(repo.PutTransaction(tx))
	}
	req.Error(repo.PutTransaction(first))

	all, err := repo.GetTransactions()
	req.NoError(err)
	req.Len(all, 3)
	req.Equal([]string{"c", "b", "a"}, []string{all[0].ID, all[1].ID, all[2].ID})

	pending, err := repo.GetPendingTransactions()
	req.NoError(err)
	req.Len(pending, 2)
	req.Equal("b", pending[0].ID)
	req.Equal("c", pending[1].ID)

	tx, err := repo.GetTransactionByID("b")
	req.NoError(err)
	req.Equal(types.TxCreateCall, tx.Kind)
	req.True(tx.CreatedAt.Equal(second.CreatedAt))

	_, err = repo.GetTransactionByID("missing")
	req.True(errors.Is(err, ErrTransactionNotFound))
}

func TestJournalRepo_SettleTransaction(t *testing.T) {
	req := require.New(t)
	repo := newRepo(t)

	req.NoError(repo.PutTransaction(&types.Transaction{ID: "a", Status: types.TxPending, CreatedAt: time.Now()}))

	settled, err := repo.SettleTransaction(&types.Transaction{ID: "a", Status: types.TxSuccess, BlockNumber: 7})
	req.NoError(err)
	req.True(settled)

	stored, err := repo.GetTransactionByID("a")
	req.NoError(err)
	req.Equal(types.TxSuccess, stored.Status)
	req.Equal(uint64(7), stored.BlockNumber)

	pending, err := repo.GetPendingTransactions()
	req.NoError(err)
	req.Empty(pending)

	// a settled entry is never overwritten
	settled, err = repo.SettleTransaction(&types.Transaction{ID: "a", Status: types.TxFailed, BlockNumber: 9})
	req.NoError(err)
	req.False(settled)

	stored, err = repo.GetTransactionByID("a")
	req.NoError(err)
	req.Equal(types.TxSuccess, stored.Status)
	req.Equal(uint64(7), stored.BlockNumber)

	_, err = repo.SettleTransaction(&types.Transaction{ID: "missing"})
	req.True(errors.Is(err, ErrTransactionNotFound))
}
