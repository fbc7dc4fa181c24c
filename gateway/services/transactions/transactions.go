package transactions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"

	"github.com/lidofinance/cfp-gateway/events"
	"github.com/lidofinance/cfp-gateway/gateway/api/dto"
	"github.com/lidofinance/cfp-gateway/gateway/modules/logger"
	"github.com/lidofinance/cfp-gateway/gateway/repositories/journal"
	"github.com/lidofinance/cfp-gateway/gateway/types"
	"github.com/lidofinance/cfp-gateway/ledger"
)

// ErrReceiptFailed is returned when a write was mined but not applied.
var ErrReceiptFailed = errors.New("transaction receipt status is not successful")

// Write is a single server-initiated ledger write. Subject is what the write is
// about, Signer is the verified identity it was made for, if any.
type Write struct {
	Kind    types.TransactionKind
	Subject string
	Signer  string
	Send    func(ctx context.Context) (ledger.PendingTx, error)
}

type TransactionService interface {
	Submit(ctx context.Context, w Write) (*ledger.Receipt, error)
	Reconcile(ctx context.Context) error
	Poll(ctx context.Context) error
	GetTransactions() ([]*types.Transaction, error)
	GetTransactionByID(dto *dto.TransactionIdDTO) (*types.Transaction, error)
}

type BaseTransactionService struct {
	journal         journal.JournalRepo
	sink            events.Sink
	ledger          ledger.Ledger
	logger          logger.Logger
	waitTimeout     time.Duration
	reconcilePeriod time.Duration
	now             func() time.Time
}

func NewTransactionService(
	journalRepo journal.JournalRepo,
	sink events.Sink,
	l ledger.Ledger,
	log logger.Logger,
	waitTimeout time.Duration,
	reconcilePeriod time.Duration,
) *BaseTransactionService {
	if sink == nil {
		sink = events.NopSink{}
	}
	return &BaseTransactionService{
		journal:         journalRepo,
		sink:            sink,
		ledger:          l,
		logger:          log,
		waitTimeout:     waitTimeout,
		reconcilePeriod: reconcilePeriod,
		now:             time.Now,
	}
}

// Submit sends the write, journals it as pending and waits for its receipt.
// Errors returned by Send are passed through untouched so callers can match
// rejection reasons. If the wait is abandoned the entry stays pending.
func (s *BaseTransactionService) Submit(ctx context.Context, w Write) (*ledger.Receipt, error) {
	pending, err := w.Send(ctx)
	if err != nil {
		s.logger.Error("Failed to send %s for %s: %v", w.Kind, w.Subject, err)
		return nil, err
	}

	now := s.now().UTC()
	tx := &types.Transaction{
		ID:        uuid.New().String(),
		Kind:      w.Kind,
		Subject:   w.Subject,
		Signer:    w.Signer,
		TxHash:    pending.Hash().Hex(),
		Status:    types.TxPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.journal.PutTransaction(tx); err != nil {
		s.logger.Error("Failed to journal transaction %s: %v", tx.TxHash, err)
	}

	waitCtx := ctx
	if s.waitTimeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, s.waitTimeout)
		defer cancel()
	}

	receipt, err := pending.Wait(waitCtx)
	if err != nil {
		s.logger.Error("Stopped waiting for transaction %s (%s), outcome unknown: %v", tx.TxHash, w.Kind, err)
		return nil, fmt.Errorf("failed to wait for transaction %s: %w", tx.TxHash, err)
	}

	s.settle(tx, receipt)
	if !receipt.Successful() {
		return receipt, fmt.Errorf("transaction %s: %w", tx.TxHash, ErrReceiptFailed)
	}
	return receipt, nil
}

// settle records the receipt outcome and publishes the event of a successful write.
// Only the call that moves the journal entry out of pending publishes, so a write
// settled by both Submit and Reconcile yields a single event. It reports whether
// this call settled tx.
func (s *BaseTransactionService) settle(tx *types.Transaction, receipt *ledger.Receipt) bool {
	settled := *tx
	settled.BlockNumber = receipt.BlockNumber
	settled.UpdatedAt = s.now().UTC()
	if receipt.Successful() {
		settled.Status = types.TxSuccess
	} else {
		settled.Status = types.TxFailed
	}

	ok, err := s.journal.SettleTransaction(&settled)
	switch {
	case errors.Is(err, journal.ErrTransactionNotFound):
		// never journalled, so nothing else can settle it
		s.logger.Error("Transaction %s is missing from the journal: %v", tx.TxHash, err)
	case err != nil:
		s.logger.Error("Failed to settle transaction %s, left for reconciliation: %v", tx.TxHash, err)
		return false
	case !ok:
		s.logger.Debug("Transaction %s was already settled", tx.TxHash)
		return false
	}

	if settled.Status == types.TxSuccess {
		event := events.Event{
			Kind:        eventKind(settled.Kind),
			Subject:     settled.Subject,
			TxHash:      settled.TxHash,
			BlockNumber: settled.BlockNumber,
			CreatedAt:   settled.UpdatedAt,
		}
		if err := s.sink.Publish(event); err != nil {
			s.logger.Error("Failed to publish %s event for %s: %v", event.Kind, settled.Subject, err)
		}
	}
	return true
}

// Reconcile settles every pending journal entry whose receipt is available.
func (s *BaseTransactionService) Reconcile(ctx context.Context) error {
	pending, err := s.journal.GetPendingTransactions()
	if err != nil {
		return fmt.Errorf("failed to get pending transactions: %w", err)
	}

	for _, tx := range pending {
		receipt, err := s.ledger.TransactionReceipt(ctx, common.HexToHash(tx.TxHash))
		if errors.Is(err, ledger.ErrReceiptNotFound) {
			continue
		}
		if err != nil {
			s.logger.Error("Failed to get receipt of %s: %v", tx.TxHash, err)
			continue
		}
		if s.settle(tx, receipt) {
			s.logger.Log("Transaction %s (%s) settled, successful: %t", tx.TxHash, tx.Kind, receipt.Successful())
		}
	}
	return nil
}

// Poll reconciles pending transactions until ctx is done.
func (s *BaseTransactionService) Poll(ctx context.Context) error {
	if s.reconcilePeriod <= 0 {
		return nil
	}
	tk := time.NewTicker(s.reconcilePeriod)
	defer tk.Stop()
	for {
		select {
		case <-tk.C:
			if err := s.Reconcile(ctx); err != nil {
				s.logger.Error("Failed to reconcile transactions: %v", err)
			}
		case <-ctx.Done():
			s.logger.Log("Context closed, stop reconciling...")
			return nil
		}
	}
}

func (s *BaseTransactionService) GetTransactions() ([]*types.Transaction, error) {
	return s.journal.GetTransactions()
}

func (s *BaseTransactionService) GetTransactionByID(dto *dto.TransactionIdDTO) (*types.Transaction, error) {
	tx, err := s.journal.GetTransactionByID(dto.ID)
	if errors.Is(err, journal.ErrTransactionNotFound) {
		return nil, types.WrapError(types.NotFound, types.MsgTransactionNotFound, err)
	}
	if err != nil {
		return nil, types.NewInternalError(err)
	}
	return tx, nil
}

func eventKind(kind types.TransactionKind) string {
	switch kind {
	case types.TxAuthorize:
		return events.AccountAuthorized
	case types.TxCreateCall:
		return events.CallCreated
	case types.TxRegisterProposal:
		return events.ProposalRegistered
	case types.TxRegisterName:
		return events.NameRegistered
	default:
		return events.NameRecordSet
	}
}
