package types

import (
	"time"
)

// TimeLayout is the UTC layout used for every time returned by the API.
const TimeLayout = "2006-01-02T15:04:05.000Z"

// FormatUnix formats a ledger timestamp in seconds.
func FormatUnix(ts int64) string {
	return time.Unix(ts, 0).UTC().Format(TimeLayout)
}

type TransactionStatus string

const (
	TxPending TransactionStatus = "pending"
	TxSuccess TransactionStatus = "success"
	TxFailed  TransactionStatus = "failed"
)

type TransactionKind string

const (
	TxAuthorize        TransactionKind = "authorize"
	TxCreateCall       TransactionKind = "create_call"
	TxRegisterProposal TransactionKind = "register_proposal"
	TxRegisterName     TransactionKind = "register_name"
	TxSetResolver      TransactionKind = "set_resolver"
	TxSetAddr          TransactionKind = "set_addr"
	TxSetText          TransactionKind = "set_text"
	TxSetReverseName   TransactionKind = "set_reverse_name"
)

// Transaction is a journal entry of a write submitted with the operator key.
// Subject is what the write is about: an account, a call id, a proposal hash or a name.
type Transaction struct {
	ID          string            `json:"id"`
	Kind        TransactionKind   `json:"kind"`
	Subject     string            `json:"subject"`
	Signer      string            `json:"signer,omitempty"`
	TxHash      string            `json:"txHash"`
	Status      TransactionStatus `json:"status"`
	BlockNumber uint64            `json:"blockNumber,omitempty"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

type MessageResult struct {
	Message string `json:"message"`
}

func OK() *MessageResult {
	return &MessageResult{Message: MsgOK}
}

type AuthorizedResult struct {
	Authorized bool   `json:"authorized"`
	Address    string `json:"address"`
}

type AddressResult struct {
	Address string `json:"address"`
}

type CallRecord struct {
	Creator string `json:"creator"`
	CFP     string `json:"cfp"`
}

// CallInfo is an entry of the call listing. ClosingTime is nil when it could not be read.
type CallInfo struct {
	CallID      string  `json:"callId"`
	Creator     string  `json:"creator"`
	CFP         string  `json:"cfp"`
	ClosingTime *string `json:"closingTime"`
}

type ClosingTimeResult struct {
	ClosingTime string `json:"closingTime"`
	CallID      string `json:"callId"`
	CFPAddress  string `json:"cfpAddress"`
}

// CallCreationResult reports a call creation that also asked for a name. The call
// is never rolled back when the name part fails.
type CallCreationResult struct {
	Message       string `json:"message"`
	CallCreated   bool   `json:"callCreated"`
	ENSRegistered bool   `json:"ensRegistered"`
	Reason        string `json:"reason,omitempty"`
	Name          string `json:"name,omitempty"`
	CFPAddress    string `json:"cfpAddress,omitempty"`
}

type ProposalData struct {
	Sender      string `json:"sender"`
	BlockNumber string `json:"blockNumber"`
	Timestamp   string `json:"timestamp"`
}

type ProposalCounts map[string]uint64

type CFPInfo struct {
	CallID        string `json:"callId"`
	Creator       string `json:"creator"`
	Address       string `json:"address"`
	ClosingTime   string `json:"closingTime"`
	ProposalCount uint64 `json:"proposalCount"`
}

type ContractAddresses struct {
	CFPFactory       string `json:"cfpFactory"`
	ENSRegistry      string `json:"ensRegistry"`
	PublicResolver   string `json:"publicResolver"`
	ReverseRegistrar string `json:"reverseRegistrar"`
	CallsRegistrar   string `json:"callsRegistrar"`
	UsersRegistrar   string `json:"usersRegistrar"`
	Operator         string `json:"operator"`
}

type NameRegistration struct {
	Success         bool   `json:"success"`
	Message         string `json:"message"`
	Name            string `json:"name"`
	Address         string `json:"address"`
	TransactionHash string `json:"transactionHash"`
	BlockNumber     uint64 `json:"blockNumber"`
}

type NameResolution struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type AddressResolution struct {
	Address string `json:"address"`
	Name    string `json:"name"`
}

type NameInfo struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	Description string `json:"description,omitempty"`
	ReverseName string `json:"reverseName,omitempty"`
}

type NameAvailability struct {
	Name      string `json:"name"`
	Available bool   `json:"available"`
}

// RegisteredName is a name registered through this gateway.
type RegisteredName struct {
	Name         string    `json:"name"`
	Domain       string    `json:"domain"`
	Address      string    `json:"address"`
	RegisteredAt time.Time `json:"registeredAt"`
}
