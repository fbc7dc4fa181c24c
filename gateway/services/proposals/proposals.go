package proposals

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/lidofinance/cfp-gateway/gateway/api/dto"
	"github.com/lidofinance/cfp-gateway/gateway/modules/callcache"
	"github.com/lidofinance/cfp-gateway/gateway/modules/logger"
	"github.com/lidofinance/cfp-gateway/gateway/services/transactions"
	"github.com/lidofinance/cfp-gateway/gateway/types"
	"github.com/lidofinance/cfp-gateway/ledger"
	"github.com/lidofinance/cfp-gateway/verifier"
)

type ProposalsService interface {
	Register(ctx context.Context, dto *dto.ProposalDTO) (*types.MessageResult, error)
	RegisterWithSignature(ctx context.Context, dto *dto.SignedProposalDTO) (*types.MessageResult, error)
	ProposalData(ctx context.Context, dto *dto.ProposalDTO) (*types.ProposalData, error)
}

type BaseProposalsService struct {
	ledger    ledger.Ledger
	verifier  verifier.Verifier
	callCache *callcache.CallCache
	txService transactions.TransactionService
	logger    logger.Logger
	now       func() time.Time
}

func NewProposalsService(
	l ledger.Ledger,
	v verifier.Verifier,
	callCache *callcache.CallCache,
	txService transactions.TransactionService,
	log logger.Logger,
	now func() time.Time,
) *BaseProposalsService {
	return &BaseProposalsService{
		ledger:    l,
		verifier:  v,
		callCache: callCache,
		txService: txService,
		logger:    log,
		now:       now,
	}
}

// Register writes a proposal hash to the CFP of the call. Anyone may submit; the
// CFP records the operator as sender.
func (s *BaseProposalsService) Register(ctx context.Context, dto *dto.ProposalDTO) (*types.MessageResult, error) {
	callID, proposal, err := parseProposal(dto.CallID, dto.Proposal)
	if err != nil {
		return nil, err
	}
	if err := s.register(ctx, callID, proposal, ""); err != nil {
		return nil, err
	}
	return types.OK(), nil
}

// RegisterWithSignature requires the signer to have signed the raw proposal hash.
// The write is still made with the operator key; the signer is only journalled.
func (s *BaseProposalsService) RegisterWithSignature(ctx context.Context, dto *dto.SignedProposalDTO) (*types.MessageResult, error) {
	callID, proposal, err := parseProposal(dto.CallID, dto.Proposal)
	if err != nil {
		return nil, err
	}
	if !verifier.IsValidAddress(dto.Signer) {
		return nil, types.NewError(types.MalformedInput, types.MsgInvalidAddress)
	}
	if !verifier.IsValidSignature(dto.Signature) {
		return nil, types.NewError(types.InvalidSignature, types.MsgInvalidSignature)
	}

	signer, err := s.verifier.Verify(dto.Signer, verifier.ProposalMessage(proposal), dto.Signature)
	if err != nil {
		return nil, types.WrapError(types.InvalidSignature, types.MsgInvalidSignature, err)
	}

	if err := s.register(ctx, callID, proposal, signer.Hex()); err != nil {
		return nil, err
	}
	return types.OK(), nil
}

func (s *BaseProposalsService) register(ctx context.Context, callID, proposal common.Hash, signer string) error {
	cfp, err := s.cfp(ctx, callID)
	if err != nil {
		return err
	}

	closing, err := cfp.ClosingTime(ctx)
	if err != nil {
		return types.NewInternalError(err)
	}
	if closing <= s.now().Unix() {
		return types.NewError(types.InvalidClosingTime, types.MsgCallClosed)
	}

	data, err := cfp.ProposalData(ctx, proposal)
	if err != nil {
		return types.NewInternalError(err)
	}
	if data.Exists() {
		return types.NewError(types.AlreadyRegistered, types.MsgProposalRegistered)
	}

	_, err = s.txService.Submit(ctx, transactions.Write{
		Kind:    types.TxRegisterProposal,
		Subject: proposal.Hex(),
		Signer:  signer,
		Send: func(ctx context.Context) (ledger.PendingTx, error) {
			return cfp.RegisterProposal(ctx, proposal)
		},
	})
	switch {
	case err == nil:
		return nil
	case ledger.HasReason(err, ledger.ReasonCallClosed):
		return types.WrapError(types.InvalidClosingTime, types.MsgCallClosed, err)
	case ledger.HasReason(err, ledger.ReasonProposalAlreadyExists):
		return types.WrapError(types.AlreadyRegistered, types.MsgProposalRegistered, err)
	default:
		s.logger.Error("Failed to register proposal %s for call %s: %v", proposal.Hex(), callID.Hex(), err)
		return types.NewInternalError(err)
	}
}

// ProposalData returns who registered the proposal and when.
func (s *BaseProposalsService) ProposalData(ctx context.Context, dto *dto.ProposalDTO) (*types.ProposalData, error) {
	callID, proposal, err := parseProposal(dto.CallID, dto.Proposal)
	if err != nil {
		return nil, err
	}
	cfp, err := s.cfp(ctx, callID)
	if err != nil {
		return nil, err
	}

	data, err := cfp.ProposalData(ctx, proposal)
	if err != nil {
		return nil, types.NewInternalError(err)
	}
	if !data.Exists() {
		return nil, types.NewError(types.NotFound, types.MsgProposalNotFound)
	}
	return &types.ProposalData{
		Sender:      data.Sender.Hex(),
		BlockNumber: data.BlockNumber.String(),
		Timestamp:   types.FormatUnix(data.Timestamp.Int64()),
	}, nil
}

func (s *BaseProposalsService) cfp(ctx context.Context, callID common.Hash) (ledger.CFP, error) {
	record, err := s.callCache.Get(ctx, callID)
	if err != nil {
		return nil, types.NewInternalError(err)
	}
	if !record.Exists() {
		return nil, types.NewError(types.NotFound, types.MsgCallIDNotFound)
	}
	return s.ledger.CFPAt(record.CFP), nil
}

func parseProposal(callIDHex, proposalHex string) (common.Hash, common.Hash, error) {
	if !verifier.IsValidHash32(callIDHex) {
		return common.Hash{}, common.Hash{}, types.NewError(types.MalformedInput, types.MsgInvalidCallID)
	}
	if !verifier.IsValidHash32(proposalHex) {
		return common.Hash{}, common.Hash{}, types.NewError(types.MalformedInput, types.MsgInvalidProposal)
	}
	return common.HexToHash(callIDHex), common.HexToHash(proposalHex), nil
}
