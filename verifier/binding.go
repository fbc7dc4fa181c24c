package verifier

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Each write operation binds its signature to a different message. The three
// schemes must stay exactly as they are: deployed clients sign these bytes.

// RegistrationMessage is the message an account signs to ask for authorization:
// the raw bytes of the factory address.
func RegistrationMessage(factory common.Address) []byte {
	return hexMessage(factory.Hex())
}

// CallCreationMessage is the message a creator signs for a new call:
// factory address bytes followed by the callId bytes.
func CallCreationMessage(factory common.Address, callID common.Hash) []byte {
	return hexMessage(factory.Hex(), callID.Hex())
}

// ProposalMessage is the message signed for a signature-bound proposal:
// the raw proposal hash bytes, not bound to any contract address.
func ProposalMessage(proposal common.Hash) []byte {
	return hexMessage(proposal.Hex())
}

// hexMessage lowercases and strips each part, concatenates them and decodes the
// result as binary.
func hexMessage(parts ...string) []byte {
	var sb strings.Builder
	for _, p := range parts {
		sb.WriteString(strings.TrimPrefix(strings.ToLower(p), "0x"))
	}
	bz, err := hexutil.Decode("0x" + sb.String())
	if err != nil {
		// parts come from fixed-size go-ethereum types and are always valid hex
		panic(fmt.Sprintf("invalid hex message %q: %v", sb.String(), err))
	}
	return bz
}
