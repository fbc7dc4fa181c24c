package calls

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/lidofinance/cfp-gateway/gateway/api/dto"
	"github.com/lidofinance/cfp-gateway/gateway/modules/callcache"
	"github.com/lidofinance/cfp-gateway/gateway/modules/logger"
	"github.com/lidofinance/cfp-gateway/gateway/services/naming"
	"github.com/lidofinance/cfp-gateway/gateway/services/transactions"
	"github.com/lidofinance/cfp-gateway/gateway/types"
	"github.com/lidofinance/cfp-gateway/ledger"
	"github.com/lidofinance/cfp-gateway/verifier"
)

type CallsService interface {
	Create(ctx context.Context, dto *dto.CreateCallDTO) (*types.MessageResult, error)
	CreateWithENS(ctx context.Context, dto *dto.CreateCallWithENSDTO) (*types.CallCreationResult, error)
	List(ctx context.Context) ([]*types.CallInfo, error)
	Get(ctx context.Context, dto *dto.CallIdDTO) (*types.CallRecord, error)
	ClosingTime(ctx context.Context, dto *dto.CallIdDTO) (*types.ClosingTimeResult, error)
	ProposalCounts(ctx context.Context, dto *dto.CallIdsDTO) (types.ProposalCounts, error)
	ContractAddress() *types.AddressResult
	ContractOwner(ctx context.Context) *types.AddressResult
}

type BaseCallsService struct {
	ledger        ledger.Ledger
	verifier      verifier.Verifier
	callCache     *callcache.CallCache
	txService     transactions.TransactionService
	namingService naming.NamingService
	logger        logger.Logger
	now           func() time.Time
}

func NewCallsService(
	l ledger.Ledger,
	v verifier.Verifier,
	callCache *callcache.CallCache,
	txService transactions.TransactionService,
	namingService naming.NamingService,
	log logger.Logger,
	now func() time.Time,
) *BaseCallsService {
	return &BaseCallsService{
		ledger:        l,
		verifier:      v,
		callCache:     callCache,
		txService:     txService,
		namingService: namingService,
		logger:        log,
		now:           now,
	}
}

func (s *BaseCallsService) Create(ctx context.Context, dto *dto.CreateCallDTO) (*types.MessageResult, error) {
	if _, err := s.create(ctx, dto.CallID, dto.ClosingTime, dto.Signature); err != nil {
		return nil, err
	}
	return types.OK(), nil
}

// CreateWithENS creates the call and then names its CFP under the calls domain.
// Once the call exists the result is never an error: a failed name registration
// is reported in the result and the call stays.
func (s *BaseCallsService) CreateWithENS(ctx context.Context, request *dto.CreateCallWithENSDTO) (*types.CallCreationResult, error) {
	if err := naming.ValidateLabel(request.CallName); err != nil {
		return nil, err
	}

	callID, err := s.create(ctx, request.CallID, request.ClosingTime, request.Signature)
	if err != nil {
		return nil, err
	}

	result := &types.CallCreationResult{
		Message:     types.MsgOK,
		CallCreated: true,
	}

	record, err := s.callCache.Get(ctx, callID)
	if err != nil || !record.Exists() {
		s.logger.Error("Call %s was created but its CFP could not be read: %v", callID.Hex(), err)
		result.Reason = types.MsgENSRegistrationError
		return result, nil
	}
	result.CFPAddress = record.CFP.Hex()

	registration, err := s.namingService.RegisterCallName(ctx, &dto.RegisterCallNameDTO{
		CallName:    request.CallName,
		CallAddress: record.CFP.Hex(),
		Description: request.Description,
	})
	if err != nil {
		s.logger.Error("Call %s was created but naming it %q failed: %v", callID.Hex(), request.CallName, err)
		result.Reason = types.MsgENSRegistrationError
		var domainErr *types.Error
		if errors.As(err, &domainErr) && domainErr.Kind != types.Internal {
			result.Reason = domainErr.Message
		}
		return result, nil
	}

	result.ENSRegistered = true
	result.Name = registration.Name
	return result, nil
}

// create validates the request, verifies the creator signature and writes the
// call on behalf of the signer.
func (s *BaseCallsService) create(ctx context.Context, callIDHex, closingTime, signature string) (common.Hash, error) {
	if !verifier.IsValidHash32(callIDHex) {
		return common.Hash{}, types.NewError(types.MalformedInput, types.MsgInvalidCallID)
	}
	if !verifier.IsValidSignature(signature) {
		return common.Hash{}, types.NewError(types.InvalidSignature, types.MsgInvalidSignature)
	}
	timestamp, err := ParseClosingTime(closingTime, s.now())
	if err != nil {
		return common.Hash{}, err
	}

	factory := s.ledger.Factory()
	callID := common.HexToHash(callIDHex)

	signer, err := s.verifier.Recover(verifier.CallCreationMessage(factory.Address(), callID), signature)
	if err != nil {
		return common.Hash{}, types.WrapError(types.InvalidSignature, types.MsgInvalidSignature, err)
	}

	authorized, err := factory.IsAuthorized(ctx, signer)
	if err != nil {
		return common.Hash{}, types.NewInternalError(err)
	}
	if !authorized {
		return common.Hash{}, types.NewError(types.Unauthorized, types.MsgUnauthorized)
	}

	record, err := s.callCache.Get(ctx, callID)
	if err != nil {
		return common.Hash{}, types.NewInternalError(err)
	}
	if record.Exists() {
		return common.Hash{}, types.NewError(types.AlreadyCreated, types.MsgAlreadyCreated)
	}

	_, err = s.txService.Submit(ctx, transactions.Write{
		Kind:    types.TxCreateCall,
		Subject: callID.Hex(),
		Signer:  signer.Hex(),
		Send: func(ctx context.Context) (ledger.PendingTx, error) {
			return factory.CreateFor(ctx, callID, timestamp, signer)
		},
	})
	if err != nil {
		return common.Hash{}, s.createError(callID, err)
	}

	s.logger.Log("Call %s created for %s, closing at %s", callID.Hex(), signer.Hex(), types.FormatUnix(timestamp))
	return callID, nil
}

func (s *BaseCallsService) createError(callID common.Hash, err error) error {
	switch {
	case ledger.HasReason(err, ledger.ReasonCallAlreadyExists):
		return types.WrapError(types.AlreadyCreated, types.MsgAlreadyCreated, err)
	case ledger.HasReason(err, ledger.ReasonClosingTimeInPast):
		return types.WrapError(types.InvalidClosingTime, types.MsgInvalidClosingTime, err)
	case ledger.HasReason(err, ledger.ReasonUnauthorized):
		return types.WrapError(types.Unauthorized, types.MsgUnauthorized, err)
	default:
		s.logger.Error("Failed to create call %s: %v", callID.Hex(), err)
		return types.NewInternalError(err)
	}
}

// List enumerates every call through the creators index. A call whose closing
// time cannot be read is listed without it.
func (s *BaseCallsService) List(ctx context.Context) ([]*types.CallInfo, error) {
	factory := s.ledger.Factory()

	creatorsCount, err := factory.CreatorsCount(ctx)
	if err != nil {
		return nil, types.NewInternalError(err)
	}

	seen := make(map[common.Hash]struct{})
	calls := make([]*types.CallInfo, 0)
	for i := uint64(0); i < creatorsCount; i++ {
		creator, err := factory.Creators(ctx, i)
		if err != nil {
			return nil, types.NewInternalError(err)
		}
		count, err := factory.CreatedByCount(ctx, creator)
		if err != nil {
			return nil, types.NewInternalError(err)
		}

		for j := uint64(0); j < count; j++ {
			callID, err := factory.CreatedBy(ctx, creator, j)
			if err != nil {
				return nil, types.NewInternalError(err)
			}
			if _, ok := seen[callID]; ok {
				continue
			}
			seen[callID] = struct{}{}

			record, err := s.callCache.Get(ctx, callID)
			if err != nil {
				return nil, types.NewInternalError(err)
			}

			info := &types.CallInfo{
				CallID:  callID.Hex(),
				Creator: record.Creator.Hex(),
				CFP:     record.CFP.Hex(),
			}
			if closing, err := s.ledger.CFPAt(record.CFP).ClosingTime(ctx); err == nil {
				formatted := types.FormatUnix(closing)
				info.ClosingTime = &formatted
			} else {
				s.logger.Error("Failed to read closing time of call %s: %v", callID.Hex(), err)
			}
			calls = append(calls, info)
		}
	}
	return calls, nil
}

func (s *BaseCallsService) Get(ctx context.Context, dto *dto.CallIdDTO) (*types.CallRecord, error) {
	record, err := s.lookup(ctx, dto.CallID)
	if err != nil {
		return nil, err
	}
	return &types.CallRecord{
		Creator: record.Creator.Hex(),
		CFP:     record.CFP.Hex(),
	}, nil
}

func (s *BaseCallsService) ClosingTime(ctx context.Context, dto *dto.CallIdDTO) (*types.ClosingTimeResult, error) {
	record, err := s.lookup(ctx, dto.CallID)
	if err != nil {
		return nil, err
	}
	closing, err := s.ledger.CFPAt(record.CFP).ClosingTime(ctx)
	if err != nil {
		return nil, types.NewInternalError(err)
	}
	return &types.ClosingTimeResult{
		ClosingTime: types.FormatUnix(closing),
		CallID:      common.HexToHash(dto.CallID).Hex(),
		CFPAddress:  record.CFP.Hex(),
	}, nil
}

// ProposalCounts returns the number of proposals of each listed call. Calls that
// do not exist are left out.
func (s *BaseCallsService) ProposalCounts(ctx context.Context, dto *dto.CallIdsDTO) (types.ProposalCounts, error) {
	var callIDs []string
	for _, id := range strings.Split(dto.CallIDs, ",") {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if !verifier.IsValidHash32(id) {
			return nil, types.NewError(types.MalformedInput, types.MsgInvalidCallID)
		}
		callIDs = append(callIDs, id)
	}

	counts := make(types.ProposalCounts, len(callIDs))
	for _, id := range callIDs {
		record, err := s.callCache.Get(ctx, common.HexToHash(id))
		if err != nil {
			return nil, types.NewInternalError(err)
		}
		if !record.Exists() {
			continue
		}
		count, err := s.ledger.CFPAt(record.CFP).ProposalCount(ctx)
		if err != nil {
			return nil, types.NewInternalError(err)
		}
		counts[id] = count
	}
	return counts, nil
}

func (s *BaseCallsService) ContractAddress() *types.AddressResult {
	return &types.AddressResult{Address: s.ledger.Factory().Address().Hex()}
}

// ContractOwner returns the factory owner, or the zero address when it cannot be read.
func (s *BaseCallsService) ContractOwner(ctx context.Context) *types.AddressResult {
	owner, err := s.ledger.Factory().Owner(ctx)
	if err != nil {
		s.logger.Error("Failed to read factory owner: %v", err)
		owner = ledger.ZeroAddress
	}
	return &types.AddressResult{Address: owner.Hex()}
}

func (s *BaseCallsService) lookup(ctx context.Context, callIDHex string) (ledger.CallRecord, error) {
	if !verifier.IsValidHash32(callIDHex) {
		return ledger.CallRecord{}, types.NewError(types.MalformedInput, types.MsgInvalidCallID)
	}
	record, err := s.callCache.Get(ctx, common.HexToHash(callIDHex))
	if err != nil {
		return ledger.CallRecord{}, types.NewInternalError(err)
	}
	if !record.Exists() {
		return ledger.CallRecord{}, types.NewError(types.NotFound, types.MsgCallIDNotFound)
	}
	return record, nil
}
