package callcache

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	lru "github.com/hashicorp/golang-lru"

	"github.com/lidofinance/cfp-gateway/ledger"
)

// CallCache resolves call ids to their factory records. A call never changes once
// created, so only existing records are kept; a miss always goes to the factory.
type CallCache struct {
	factory ledger.Factory
	cache   *lru.Cache
}

func NewCallCache(factory ledger.Factory, size int) (*CallCache, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("failed to init call cache: %w", err)
	}
	return &CallCache{factory: factory, cache: cache}, nil
}

// Get returns the record of callID. A call that does not exist yields a record
// for which Exists reports false.
func (c *CallCache) Get(ctx context.Context, callID common.Hash) (ledger.CallRecord, error) {
	if v, ok := c.cache.Get(callID); ok {
		return v.(ledger.CallRecord), nil
	}

	record, err := c.factory.Calls(ctx, callID)
	if err != nil {
		return ledger.CallRecord{}, fmt.Errorf("failed to get call %s: %w", callID.Hex(), err)
	}
	if record.Exists() {
		c.cache.Add(callID, record)
	}
	return record, nil
}

func (c *CallCache) Len() int {
	return c.cache.Len()
}
