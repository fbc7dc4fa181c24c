package requests

type RegisterForm struct {
	Address   string `json:"address" validate:"attr=address,min=1"`
	Signature string `json:"signature" validate:"attr=signature,min=1"`
}

type AddressForm struct {
	Address string `param:"address" json:"address"`
}

type CreateCallForm struct {
	CallID      string `json:"callId" validate:"attr=callId,min=1"`
	ClosingTime string `json:"closingTime" validate:"attr=closingTime,min=1"`
	Signature   string `json:"signature" validate:"attr=signature,min=1"`
}

type CreateCallWithENSForm struct {
	CallID      string `json:"callId" validate:"attr=callId,min=1"`
	ClosingTime string `json:"closingTime" validate:"attr=closingTime,min=1"`
	Signature   string `json:"signature" validate:"attr=signature,min=1"`
	CallName    string `json:"callName" validate:"attr=callName,min=1"`
	Description string `json:"description"`
}

type CallIdForm struct {
	CallID string `param:"callId" json:"callId"`
}

type CallIdsForm struct {
	CallIDs string `query:"callIds" json:"callIds"`
}

type ProposalForm struct {
	CallID   string `json:"callId" validate:"attr=callId,min=1"`
	Proposal string `json:"proposal" validate:"attr=proposal,min=1"`
}

type ProposalDataForm struct {
	CallID   string `param:"callId" json:"callId"`
	Proposal string `param:"proposal" json:"proposal"`
}

type SignedProposalForm struct {
	CallID    string `json:"callId" validate:"attr=callId,min=1"`
	Proposal  string `json:"proposal" validate:"attr=proposal,min=1"`
	Signature string `json:"signature" validate:"attr=signature,min=1"`
	Signer    string `json:"signer" validate:"attr=signer,min=1"`
}

type RegisterUserNameForm struct {
	UserName    string `json:"userName" validate:"attr=userName,min=1"`
	UserAddress string `json:"userAddress" validate:"attr=userAddress,min=1"`
	Description string `json:"description"`
}

type RegisterCallNameForm struct {
	CallName    string `json:"callName" validate:"attr=callName,min=1"`
	CallAddress string `json:"callAddress" validate:"attr=callAddress,min=1"`
	Description string `json:"description"`
}

type NameForm struct {
	Name string `param:"name" json:"name"`
}

type AddressesForm struct {
	Addresses []string `json:"addresses"`
}

type DomainForm struct {
	Domain string `query:"domain" json:"domain"`
}

type TransactionIdForm struct {
	ID string `param:"id" json:"id"`
}
