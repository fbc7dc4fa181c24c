package contracts

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/lidofinance/cfp-gateway/gateway/api/dto"
	"github.com/lidofinance/cfp-gateway/gateway/modules/callcache"
	"github.com/lidofinance/cfp-gateway/gateway/types"
	"github.com/lidofinance/cfp-gateway/ledger"
	"github.com/lidofinance/cfp-gateway/verifier"
)

type ContractsService interface {
	Addresses() *types.ContractAddresses
	CFP(ctx context.Context, dto *dto.CallIdDTO) (*types.CFPInfo, error)
}

type BaseContractsService struct {
	ledger    ledger.Ledger
	callCache *callcache.CallCache
}

func NewContractsService(l ledger.Ledger, callCache *callcache.CallCache) *BaseContractsService {
	return &BaseContractsService{
		ledger:    l,
		callCache: callCache,
	}
}

// Addresses lists the contracts the gateway is bound to and the operator account.
func (s *BaseContractsService) Addresses() *types.ContractAddresses {
	return &types.ContractAddresses{
		CFPFactory:       s.ledger.Factory().Address().Hex(),
		ENSRegistry:      s.ledger.Registry().Address().Hex(),
		PublicResolver:   s.ledger.PublicResolver().Address().Hex(),
		ReverseRegistrar: s.ledger.ReverseRegistrar().Address().Hex(),
		CallsRegistrar:   s.ledger.CallsRegistrar().Address().Hex(),
		UsersRegistrar:   s.ledger.UsersRegistrar().Address().Hex(),
		Operator:         s.ledger.OperatorAddress().Hex(),
	}
}

func (s *BaseContractsService) CFP(ctx context.Context, dto *dto.CallIdDTO) (*types.CFPInfo, error) {
	if !verifier.IsValidHash32(dto.CallID) {
		return nil, types.NewError(types.MalformedInput, types.MsgInvalidCallID)
	}
	callID := common.HexToHash(dto.CallID)

	record, err := s.callCache.Get(ctx, callID)
	if err != nil {
		return nil, types.NewInternalError(err)
	}
	if !record.Exists() {
		return nil, types.NewError(types.NotFound, types.MsgCallIDNotFound)
	}

	cfp := s.ledger.CFPAt(record.CFP)
	closing, err := cfp.ClosingTime(ctx)
	if err != nil {
		return nil, types.NewInternalError(err)
	}
	count, err := cfp.ProposalCount(ctx)
	if err != nil {
		return nil, types.NewInternalError(err)
	}

	return &types.CFPInfo{
		CallID:        callID.Hex(),
		Creator:       record.Creator.Hex(),
		Address:       record.CFP.Hex(),
		ClosingTime:   types.FormatUnix(closing),
		ProposalCount: count,
	}, nil
}
