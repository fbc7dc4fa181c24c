package names

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/lidofinance/cfp-gateway/gateway/modules/state"
	"github.com/lidofinance/cfp-gateway/gateway/types"
)

const (
	NamesKey = "names"
)

type NamesRepo interface {
	PutName(name *types.RegisteredName) error
	GetNames(domain string) ([]*types.RegisteredName, error)
}

// BaseNamesRepo keeps one JSON map per domain, keyed by the full name.
type BaseNamesRepo struct {
	state  state.State
	prefix string
}

func NewNamesRepo(s state.State, prefix string) *BaseNamesRepo {
	return &BaseNamesRepo{
		state:  s,
		prefix: prefix,
	}
}

func (r *BaseNamesRepo) key(domain string) string {
	return state.MakeCompositeKeyString(r.prefix, NamesKey+"_"+domain)
}

// PutName records name, replacing an earlier record of the same name.
func (r *BaseNamesRepo) PutName(name *types.RegisteredName) error {
	return r.state.Update(r.key(name.Domain), func(bz []byte) ([]byte, error) {
		registered, err := decode(bz)
		if err != nil {
			return nil, err
		}
		registered[name.Name] = name

		registeredJSON, err := json.Marshal(registered)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal names: %w", err)
		}
		return registeredJSON, nil
	})
}

// GetNames returns the names of domain sorted alphabetically.
func (r *BaseNamesRepo) GetNames(domain string) ([]*types.RegisteredName, error) {
	bz, err := r.state.Get(r.key(domain))
	if err != nil {
		return nil, fmt.Errorf("failed to get names of %s: %w", domain, err)
	}

	registered, err := decode(bz)
	if err != nil {
		return nil, err
	}

	result := make([]*types.RegisteredName, 0, len(registered))
	for _, name := range registered {
		result = append(result, name)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })

	return result, nil
}

func decode(bz []byte) (map[string]*types.RegisteredName, error) {
	registered := make(map[string]*types.RegisteredName)
	if bz == nil {
		return registered, nil
	}
	if err := json.Unmarshal(bz, &registered); err != nil {
		return nil, fmt.Errorf("failed to unmarshal names: %w", err)
	}
	return registered, nil
}
