package authorization

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"github.com/lidofinance/cfp-gateway/gateway/api/dto"
	"github.com/lidofinance/cfp-gateway/gateway/modules/logger"
	"github.com/lidofinance/cfp-gateway/gateway/services/transactions"
	"github.com/lidofinance/cfp-gateway/gateway/types"
	"github.com/lidofinance/cfp-gateway/ledger"
	"github.com/lidofinance/cfp-gateway/verifier"
)

type AuthorizationService interface {
	Register(ctx context.Context, dto *dto.RegisterDTO) (*types.MessageResult, error)
	Authorized(ctx context.Context, dto *dto.AddressDTO) (*types.AuthorizedResult, error)
	AuthorizeAccount(ctx context.Context, dto *dto.AddressDTO) (*types.MessageResult, error)
}

type BaseAuthorizationService struct {
	ledger    ledger.Ledger
	verifier  verifier.Verifier
	txService transactions.TransactionService
	logger    logger.Logger
}

func NewAuthorizationService(
	l ledger.Ledger,
	v verifier.Verifier,
	txService transactions.TransactionService,
	log logger.Logger,
) *BaseAuthorizationService {
	return &BaseAuthorizationService{
		ledger:    l,
		verifier:  v,
		txService: txService,
		logger:    log,
	}
}

// Register authorizes the account that signed the factory address. The write is
// made with the operator key on behalf of the verified signer.
func (s *BaseAuthorizationService) Register(ctx context.Context, dto *dto.RegisterDTO) (*types.MessageResult, error) {
	if !verifier.IsValidAddress(dto.Address) {
		return nil, types.NewError(types.MalformedInput, types.MsgInvalidAddress)
	}
	if !verifier.IsValidSignature(dto.Signature) {
		return nil, types.NewError(types.InvalidSignature, types.MsgInvalidSignature)
	}

	factory := s.ledger.Factory()
	signer, err := s.verifier.Verify(dto.Address, verifier.RegistrationMessage(factory.Address()), dto.Signature)
	if err != nil {
		return nil, types.WrapError(types.InvalidSignature, types.MsgInvalidSignature, err)
	}

	registered, err := factory.IsRegistered(ctx, signer)
	if err != nil {
		return nil, types.NewInternalError(err)
	}
	if registered {
		return nil, types.NewError(types.AlreadyAuthorized, types.MsgAlreadyAuthorized)
	}

	if err := s.authorize(ctx, factory, signer); err != nil {
		return nil, err
	}
	return types.OK(), nil
}

func (s *BaseAuthorizationService) Authorized(ctx context.Context, dto *dto.AddressDTO) (*types.AuthorizedResult, error) {
	if !verifier.IsValidAddress(dto.Address) {
		return nil, types.NewError(types.MalformedInput, types.MsgInvalidAddress)
	}

	account := common.HexToAddress(dto.Address)
	authorized, err := s.ledger.Factory().IsAuthorized(ctx, account)
	if err != nil {
		return nil, types.NewInternalError(err)
	}
	return &types.AuthorizedResult{
		Authorized: authorized,
		Address:    account.Hex(),
	}, nil
}

// AuthorizeAccount authorizes an account without a signature. Only allowed while
// the operator owns the factory.
func (s *BaseAuthorizationService) AuthorizeAccount(ctx context.Context, dto *dto.AddressDTO) (*types.MessageResult, error) {
	if !verifier.IsValidAddress(dto.Address) {
		return nil, types.NewError(types.MalformedInput, types.MsgInvalidAddress)
	}

	factory := s.ledger.Factory()
	owner, err := factory.Owner(ctx)
	if err != nil {
		return nil, types.NewInternalError(err)
	}
	if owner != s.ledger.OperatorAddress() {
		return nil, types.NewError(types.Unauthorized, types.MsgUnauthorized)
	}

	if err := s.authorize(ctx, factory, common.HexToAddress(dto.Address)); err != nil {
		return nil, err
	}
	return types.OK(), nil
}

func (s *BaseAuthorizationService) authorize(ctx context.Context, factory ledger.Factory, account common.Address) error {
	_, err := s.txService.Submit(ctx, transactions.Write{
		Kind:    types.TxAuthorize,
		Subject: account.Hex(),
		Signer:  account.Hex(),
		Send: func(ctx context.Context) (ledger.PendingTx, error) {
			return factory.Authorize(ctx, account)
		},
	})
	if err == nil {
		return nil
	}
	if ledger.HasReason(err, ledger.ReasonAlreadyRegistered) {
		return types.WrapError(types.AlreadyAuthorized, types.MsgAlreadyAuthorized, err)
	}
	s.logger.Error("Failed to authorize %s: %v", account.Hex(), err)
	return types.NewInternalError(err)
}
