package dto

// This packages contains DTO (Data Transfer Object) structures
// for providing validated and sanitized values to service layer

type RegisterDTO struct {
	Address   string
	Signature string
}

type AddressDTO struct {
	Address string
}

type CreateCallDTO struct {
	CallID      string
	ClosingTime string
	Signature   string
}

type CreateCallWithENSDTO struct {
	CallID      string
	ClosingTime string
	Signature   string
	CallName    string
	Description string
}

type CallIdDTO struct {
	CallID string
}

// CallIdsDTO carries a comma separated list of call ids.
type CallIdsDTO struct {
	CallIDs string
}

type ProposalDTO struct {
	CallID   string
	Proposal string
}

type SignedProposalDTO struct {
	CallID    string
	Proposal  string
	Signature string
	Signer    string
}

type RegisterUserNameDTO struct {
	UserName    string
	UserAddress string
	Description string
}

type RegisterCallNameDTO struct {
	CallName    string
	CallAddress string
	Description string
}

type NameDTO struct {
	Name string
}

type AddressesDTO struct {
	Addresses []string
}

type DomainDTO struct {
	Domain string
}

type TransactionIdDTO struct {
	ID string
}
