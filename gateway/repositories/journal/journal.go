package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/lidofinance/cfp-gateway/gateway/modules/state"
	"github.com/lidofinance/cfp-gateway/gateway/types"
)

const (
	TransactionsKey = "transactions"
)

var ErrTransactionNotFound = errors.New("transaction not found")

type JournalRepo interface {
	PutTransaction(tx *types.Transaction) error
	SettleTransaction(tx *types.Transaction) (bool, error)
	GetTransactions() ([]*types.Transaction, error)
	GetTransactionByID(id string) (*types.Transaction, error)
	GetPendingTransactions() ([]*types.Transaction, error)
}

type BaseJournalRepo struct {
	state                    state.State
	transactionsCompositeKey string
}

func NewJournalRepo(s state.State, prefix string) *BaseJournalRepo {
	return &BaseJournalRepo{
		state:                    s,
		transactionsCompositeKey: state.MakeCompositeKeyString(prefix, TransactionsKey),
	}
}

func (r *BaseJournalRepo) PutTransaction(tx *types.Transaction) error {
	return r.update(func(transactions map[string]*types.Transaction) error {
		if _, ok := transactions[tx.ID]; ok {
			return fmt.Errorf("transaction %s already exists", tx.ID)
		}
		transactions[tx.ID] = tx
		return nil
	})
}

// SettleTransaction stores tx over its journal entry only while that entry is still
// pending. It reports whether this call moved the entry out of pending.
func (r *BaseJournalRepo) SettleTransaction(tx *types.Transaction) (bool, error) {
	var settled bool
	err := r.update(func(transactions map[string]*types.Transaction) error {
		stored, ok := transactions[tx.ID]
		if !ok {
			return fmt.Errorf("%w: %s", ErrTransactionNotFound, tx.ID)
		}
		if stored.Status != types.TxPending {
			return nil
		}
		transactions[tx.ID] = tx
		settled = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return settled, nil
}

// GetTransactions returns the whole journal, newest first.
func (r *BaseJournalRepo) GetTransactions() ([]*types.Transaction, error) {
	transactions, err := r.load()
	if err != nil {
		return nil, err
	}

	result := make([]*types.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		result = append(result, tx)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID > result[j].ID
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result, nil
}

func (r *BaseJournalRepo) GetTransactionByID(id string) (*types.Transaction, error) {
	transactions, err := r.load()
	if err != nil {
		return nil, err
	}

	tx, ok := transactions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTransactionNotFound, id)
	}
	return tx, nil
}

// GetPendingTransactions returns the entries whose outcome is still unknown, oldest first.
func (r *BaseJournalRepo) GetPendingTransactions() ([]*types.Transaction, error) {
	transactions, err := r.GetTransactions()
	if err != nil {
		return nil, err
	}

	var pending []*types.Transaction
	for i := len(transactions) - 1; i >= 0; i-- {
		if transactions[i].Status == types.TxPending {
			pending = append(pending, transactions[i])
		}
	}
	return pending, nil
}

func (r *BaseJournalRepo) load() (map[string]*types.Transaction, error) {
	bz, err := r.state.Get(r.transactionsCompositeKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions (key: %s): %w", r.transactionsCompositeKey, err)
	}
	return decode(bz)
}

func (r *BaseJournalRepo) update(fn func(map[string]*types.Transaction) error) error {
	return r.state.Update(r.transactionsCompositeKey, func(bz []byte) ([]byte, error) {
		transactions, err := decode(bz)
		if err != nil {
			return nil, err
		}
		if err := fn(transactions); err != nil {
			return nil, err
		}
		transactionsJSON, err := json.Marshal(transactions)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal transactions: %w", err)
		}
		return transactionsJSON, nil
	})
}

func decode(bz []byte) (map[string]*types.Transaction, error) {
	if bz == nil {
		return make(map[string]*types.Transaction), nil
	}

	var transactions map[string]*types.Transaction
	if err := json.Unmarshal(bz, &transactions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal transactions: %w", err)
	}
	if transactions == nil {
		transactions = make(map[string]*types.Transaction)
	}
	return transactions, nil
}
