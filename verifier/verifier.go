package verifier

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

const (
	signatureLength = crypto.SignatureLength
	// legacy personal_sign signatures carry v in {27, 28}
	legacyRecoveryOffset = 27
)

var (
	addressRe   = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	signatureRe = regexp.MustCompile(`^0x[0-9a-fA-F]{130}$`)
	hash32Re    = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)
)

var (
	ErrMalformedInput   = errors.New("malformed input")
	ErrInvalidSignature = errors.New("invalid signature")
)

// Verifier checks that a signature over a payload was produced by the key of a claimed address.
type Verifier interface {
	// Verify recovers the signer of payload and requires it to be claimedAddress.
	Verify(claimedAddress string, payload []byte, signature string) (common.Address, error)
	// Recover returns whoever signed payload.
	Recover(payload []byte, signature string) (common.Address, error)
}

type PersonalSignVerifier struct{}

func NewPersonalSignVerifier() *PersonalSignVerifier {
	return &PersonalSignVerifier{}
}

func (v *PersonalSignVerifier) Verify(claimedAddress string, payload []byte, signature string) (common.Address, error) {
	if !IsValidAddress(claimedAddress) {
		return common.Address{}, fmt.Errorf("%w: address %q", ErrMalformedInput, claimedAddress)
	}

	signer, err := v.Recover(payload, signature)
	if err != nil {
		return common.Address{}, err
	}

	if !strings.EqualFold(signer.Hex(), claimedAddress) {
		return common.Address{}, ErrInvalidSignature
	}
	return signer, nil
}

func (v *PersonalSignVerifier) Recover(payload []byte, signature string) (common.Address, error) {
	if !IsValidSignature(signature) {
		return common.Address{}, fmt.Errorf("%w: signature", ErrMalformedInput)
	}

	sig, err := hexutil.Decode(signature)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: signature", ErrMalformedInput)
	}

	if sig[crypto.RecoveryIDOffset] >= legacyRecoveryOffset {
		sig[crypto.RecoveryIDOffset] -= legacyRecoveryOffset
	}
	if sig[crypto.RecoveryIDOffset] > 1 {
		return common.Address{}, ErrInvalidSignature
	}

	pub, err := crypto.SigToPub(accounts.TextHash(payload), sig)
	if err != nil {
		return common.Address{}, ErrInvalidSignature
	}
	return crypto.PubkeyToAddress(*pub), nil
}

// Sign produces a personal_sign signature over payload in the wire format Recover accepts.
func Sign(payload []byte, signFn func(hash []byte) ([]byte, error)) (string, error) {
	sig, err := signFn(accounts.TextHash(payload))
	if err != nil {
		return "", fmt.Errorf("failed to sign payload: %w", err)
	}
	if len(sig) != signatureLength {
		return "", fmt.Errorf("unexpected signature length %d", len(sig))
	}
	sig[crypto.RecoveryIDOffset] += legacyRecoveryOffset
	return hexutil.Encode(sig), nil
}

func IsValidAddress(s string) bool {
	return addressRe.MatchString(s)
}

func IsValidSignature(s string) bool {
	return signatureRe.MatchString(s)
}

// IsValidHash32 reports whether s is a 0x-prefixed 32-byte hex value (callId, proposal hash).
func IsValidHash32(s string) bool {
	return hash32Re.MatchString(s)
}
