package verifier_test

import (
	"crypto/ecdsa"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"github.com/lidofinance/cfp-gateway/verifier"
)

var testFactory = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")

func newKey(t *testing.T) *ecdsa.PrivateKey {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	return key
}

func sign(t *testing.T, key *ecdsa.PrivateKey, payload []byte) string {
	sig, err := verifier.Sign(payload, func(hash []byte) ([]byte, error) {
		return crypto.Sign(hash, key)
	})
	require.NoError(t, err)
	return sig
}

func TestVerify_ValidSignature(t *testing.T) {
	req := require.New(t)
	v := verifier.NewPersonalSignVerifier()

	key := newKey(t)
	addr := crypto.PubkeyToAddress(key.PublicKey)
	sig := sign(t, key, verifier.RegistrationMessage(testFactory))

	for _, claimed := range []string{addr.Hex(), strings.ToLower(addr.Hex()), "0x" + strings.ToUpper(addr.Hex()[2:])} {
		signer, err := v.Verify(claimed, verifier.RegistrationMessage(testFactory), sig)
		req.NoError(err)
		req.Equal(addr, signer)
		req.Equal(addr.Hex(), signer.Hex())
	}
}

func TestVerify_DifferentKey(t *testing.T) {
	req := require.New(t)
	v := verifier.NewPersonalSignVerifier()

	claimed := crypto.PubkeyToAddress(newKey(t).PublicKey)
	sig := sign(t, newKey(t), verifier.RegistrationMessage(testFactory))

	signer, err := v.Verify(claimed.Hex(), verifier.RegistrationMessage(testFactory), sig)
	req.ErrorIs(err, verifier.ErrInvalidSignature)
	req.Equal(common.Address{}, signer)
}

func TestVerify_WrongMessage(t *testing.T) {
	req := require.New(t)
	v := verifier.NewPersonalSignVerifier()

	key := newKey(t)
	addr := crypto.PubkeyToAddress(key.PublicKey)
	callID := common.HexToHash("0x1111111111111111111111111111111111111111111111111111111111111111")

	// signature over the registration message must not authorize a call creation
	sig := sign(t, key, verifier.RegistrationMessage(testFactory))
	_, err := v.Verify(addr.Hex(), verifier.CallCreationMessage(testFactory, callID), sig)
	req.ErrorIs(err, verifier.ErrInvalidSignature)

	// signing the hex characters instead of the decoded bytes recovers someone else
	textSig := sign(t, key, []byte(strings.ToLower(testFactory.Hex()[2:])))
	_, err = v.Verify(addr.Hex(), verifier.RegistrationMessage(testFactory), textSig)
	req.ErrorIs(err, verifier.ErrInvalidSignature)
}

func TestVerify_MalformedInput(t *testing.T) {
	v := verifier.NewPersonalSignVerifier()
	key := newKey(t)
	addr := crypto.PubkeyToAddress(key.PublicKey).Hex()
	sig := sign(t, key, verifier.RegistrationMessage(testFactory))

	cases := []struct {
		name      string
		address   string
		signature string
	}{
		{"short_address", addr[:40], sig},
		{"address_without_prefix", addr[2:] + "00", sig},
		{"non_hex_address", "0x" + strings.Repeat("z", 40), sig},
		{"empty_signature", addr, ""},
		{"short_signature", addr, sig[:130]},
		{"long_signature", addr, sig + "00"},
		{"non_hex_signature", addr, "0x" + strings.Repeat("g", 130)},
		{"signature_without_prefix", addr, sig[2:] + "00"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := v.Verify(tc.address, verifier.RegistrationMessage(testFactory), tc.signature)
			require.ErrorIs(t, err, verifier.ErrMalformedInput)
			require.NotErrorIs(t, err, verifier.ErrInvalidSignature)
		})
	}
}

func TestRecover_UndecodableSignature(t *testing.T) {
	req := require.New(t)
	v := verifier.NewPersonalSignVerifier()

	// well-formed hex, but r = s = 0 is not a point on the curve
	zero := "0x" + strings.Repeat("0", 128) + "1b"
	_, err := v.Recover(verifier.RegistrationMessage(testFactory), zero)
	req.ErrorIs(err, verifier.ErrInvalidSignature)

	// recovery id out of range
	key := newKey(t)
	sig := sign(t, key, verifier.RegistrationMessage(testFactory))
	badV := sig[:130] + "ff"
	_, err = v.Recover(verifier.RegistrationMessage(testFactory), badV)
	req.ErrorIs(err, verifier.ErrInvalidSignature)
}

func TestRecover_AcceptsRawRecoveryID(t *testing.T) {
	req := require.New(t)
	v := verifier.NewPersonalSignVerifier()

	key := newKey(t)
	payload := verifier.RegistrationMessage(testFactory)
	sig := sign(t, key, payload)

	// v in {0, 1} as produced by some wallets
	raw := []byte(sig)
	vByte := sig[130:]
	switch vByte {
	case "1b":
		raw = append(raw[:130], "00"...)
	case "1c":
		raw = append(raw[:130], "01"...)
	}
	signer, err := v.Recover(payload, string(raw))
	req.NoError(err)
	req.Equal(crypto.PubkeyToAddress(key.PublicKey), signer)
}

func TestBindingMessages(t *testing.T) {
	req := require.New(t)

	callID := common.HexToHash("0xABCDEF0000000000000000000000000000000000000000000000000000000001")

	reg := verifier.RegistrationMessage(testFactory)
	req.Equal(testFactory.Bytes(), reg)
	req.Len(reg, common.AddressLength)

	create := verifier.CallCreationMessage(testFactory, callID)
	req.Len(create, common.AddressLength+common.HashLength)
	req.Equal(testFactory.Bytes(), create[:common.AddressLength])
	req.Equal(callID.Bytes(), create[common.AddressLength:])

	proposal := verifier.ProposalMessage(callID)
	req.Equal(callID.Bytes(), proposal)
}

func TestFormatPredicates(t *testing.T) {
	req := require.New(t)

	req.True(verifier.IsValidHash32("0x" + strings.Repeat("aB", 32)))
	req.False(verifier.IsValidHash32("0x" + strings.Repeat("a", 63)))
	req.False(verifier.IsValidHash32("0x" + strings.Repeat("a", 65)))
	req.False(verifier.IsValidHash32(strings.Repeat("a", 64)))
	req.False(verifier.IsValidHash32("0x" + strings.Repeat("x", 64)))

	req.True(verifier.IsValidAddress(testFactory.Hex()))
	req.False(verifier.IsValidAddress(testFactory.Hex()[:41]))
}
