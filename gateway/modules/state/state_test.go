package state_test

import (
	"errors"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lidofinance/cfp-gateway/gateway/modules/state"
)

func TestLevelDBState_GetSetDelete(t *testing.T) {
	var (
		req    = require.New(t)
		dbPath = filepath.Join(t.TempDir(), "cfp_test_state")
	)

	st, err := state.NewLevelDBState(dbPath)
	req.NoError(err)
	defer st.Close()

	value, err := st.Get("missing")
	req.NoError(err)
	req.Nil(value)

	req.NoError(st.Set("key", []byte("value")))
	value, err = st.Get("key")
	req.NoError(err)
	req.Equal([]byte("value"), value)

	req.NoError(st.Delete("key"))
	req.NoError(st.Delete("key"))
	value, err = st.Get("key")
	req.NoError(err)
	req.Nil(value)
}

func TestLevelDBState_Update(t *testing.T) {
	var (
		req    = require.New(t)
		dbPath = filepath.Join(t.TempDir(), "cfp_test_state_update")
		N      = 50
	)

	st, err := state.NewLevelDBState(dbPath)
	req.NoError(err)
	defer st.Close()

	var wg sync.WaitGroup
	for i := 0; i < N; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = st.Update("counter", func(value []byte) ([]byte, error) {
				n := 0
				if value != nil {
					n, _ = strconv.Atoi(string(value))
				}
				return []byte(strconv.Itoa(n + 1)), nil
			})
		}()
	}
	wg.Wait()

	value, err := st.Get("counter")
	req.NoError(err)
	req.Equal(strconv.Itoa(N), string(value))

	failure := errors.New("boom")
	err = st.Update("counter", func([]byte) ([]byte, error) { return nil, failure })
	req.ErrorIs(err, failure)

	value, err = st.Get("counter")
	req.NoError(err)
	req.Equal(strconv.Itoa(N), string(value))
}

func TestLevelDBState_Reopen(t *testing.T) {
	var (
		req    = require.New(t)
		dbPath = filepath.Join(t.TempDir(), "cfp_test_state_reopen")
	)

	st, err := state.NewLevelDBState(dbPath)
	req.NoError(err)
	req.NoError(st.Set(state.MakeCompositeKeyString("journal", "transactions"), []byte("{}")))
	req.NoError(st.Close())

	st, err = state.NewLevelDBState(dbPath)
	req.NoError(err)
	defer st.Close()

	value, err := st.Get("journal_transactions")
	req.NoError(err)
	req.Equal([]byte("{}"), value)
}
