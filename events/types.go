package events

import (
	"time"
)

// Event kinds published after a write is confirmed on the ledger.
const (
	AccountAuthorized  = "account_authorized"
	CallCreated        = "call_created"
	ProposalRegistered = "proposal_registered"
	NameRegistered     = "name_registered"
	NameRecordSet      = "name_record_set"
)

type Event struct {
	ID          string    `json:"id"`
	Offset      uint64    `json:"offset"`
	Kind        string    `json:"kind"`
	Subject     string    `json:"subject"`
	TxHash      string    `json:"tx_hash"`
	BlockNumber uint64    `json:"block_number"`
	CreatedAt   time.Time `json:"created_at"`
}

// Sink receives confirmed events. Implementations assign ID and Offset.
type Sink interface {
	Publish(evts ...Event) error
	Close() error
}

var _ Sink = NopSink{}

// NopSink drops every event.
type NopSink struct{}

func (NopSink) Publish(...Event) error { return nil }

func (NopSink) Close() error { return nil }
