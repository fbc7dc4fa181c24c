package keystore

import (
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/pbkdf2"
)

const testMnemonic = "test test test test test test test test test test test junk"

func TestKeyFromMnemonic(t *testing.T) {
	req := require.New(t)

	key, err := KeyFromMnemonic(testMnemonic, "", "m/44'/60'/0'/0/0")
	req.NoError(err)
	req.Equal(common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"), key.Address)

	second, err := KeyFromMnemonic(testMnemonic, "", "m/44'/60'/0'/0/1")
	req.NoError(err)
	req.Equal(common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8"), second.Address)

	spaced, err := KeyFromMnemonic("  test test test test test test test test test test test   junk\n", "", "m/44'/60'/0'/0/0")
	req.NoError(err)
	req.Equal(key.Address, spaced.Address)

	withPassphrase, err := KeyFromMnemonic(testMnemonic, "secret", "m/44'/60'/0'/0/0")
	req.NoError(err)
	req.NotEqual(key.Address, withPassphrase.Address)
}

func TestKeyFromMnemonic_Errors(t *testing.T) {
	req := require.New(t)

	_, err := KeyFromMnemonic("test test test", "", "m/44'/60'/0'/0/0")
	req.True(errors.Is(err, ErrInvalidMnemonic))

	_, err = KeyFromMnemonic(testMnemonic, "", "m/not/a/path")
	req.Error(err)
}

func TestSeed(t *testing.T) {
	req := require.New(t)

	// BIP-39 reference vector
	mnemonic := "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"
	seed, err := Seed(mnemonic, "TREZOR")
	req.NoError(err)
	req.Equal("c55257c360c07c72029aebc1b53c05ed0362ada38ead3e3e9efa3708e53495531f09a6987599d18264c1e1c92f2cf141630c7a3c4ab7c81b2f001698e7463b04", hex.EncodeToString(seed))

	// the passphrase is appended to the "mnemonic" salt
	seed, err = Seed(testMnemonic, "secret")
	req.NoError(err)
	req.Equal(pbkdf2.Key([]byte(testMnemonic), []byte("mnemonicsecret"), 2048, 64, sha512.New), seed)

	_, err = Seed("abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon", "")
	req.True(errors.Is(err, ErrInvalidMnemonic))
}

// BIP-32 test vector 1.
func TestDeriveKey_BIP32Vector(t *testing.T) {
	req := require.New(t)

	seed, err := hex.DecodeString("000102030405060708090a0b0c0d0e0f")
	req.NoError(err)

	for path, expected := range map[string]string{
		"m":         "e8f32e723decf4051aefac8e2c93c9c5b214313817cdb01a1494b917c8436b35",
		"m/0'":      "edb2e14f9ee77d26dd93b4ecede8d16ed408ce149b6cd80b0715a2d911a0afea",
		"m/0'/1":    "3c6cb8d0f6a264c91ea8b5030fadaa8e538b020f0a387421a12de9319dc93368",
		"m/0'/1/2'": "cbce0d719ecf7431d88e6a89fa1483e02e35092af60c042b1df2ff59fa424dca",
	} {
		var dp accounts.DerivationPath
		if path != "m" {
			dp, err = accounts.ParseDerivationPath(path)
			req.NoError(err)
		}
		key, err := DeriveKey(seed, dp)
		req.NoError(err, path)
		req.Equal(expected, hex.EncodeToString(crypto.FromECDSA(key)), path)
	}
}

func TestNewMnemonic(t *testing.T) {
	req := require.New(t)

	mnemonic, err := NewMnemonic()
	req.NoError(err)
	req.True(bip39.IsMnemonicValid(mnemonic))

	_, err = KeyFromMnemonic(mnemonic, "", "m/44'/60'/0'/0/0")
	req.NoError(err)
}

func TestAcquireLock(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "cfp_gateway.lock")

	lock, err := AcquireLock(path)
	req.NoError(err)

	_, err = AcquireLock(path)
	req.True(errors.Is(err, ErrLocked))

	req.NoError(lock.Release())

	lock, err = AcquireLock(path)
	req.NoError(err)
	req.NoError(lock.Release())
}
