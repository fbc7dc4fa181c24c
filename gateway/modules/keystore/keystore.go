package keystore

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/juju/fslock"
	"github.com/tyler-smith/go-bip32"
	"github.com/tyler-smith/go-bip39"
)

var (
	ErrInvalidMnemonic = errors.New("invalid mnemonic")
	ErrLocked          = errors.New("operator key is in use by another gateway")
)

// OperatorKey is the key every server-initiated write is signed with.
type OperatorKey struct {
	PrivateKey *ecdsa.PrivateKey
	Address    common.Address
}

// NewMnemonic generates a 24 word mnemonic.
func NewMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(256)
	if err != nil {
		return "", fmt.Errorf("failed to generate bip39 entropy: %w", err)
	}
	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("failed to generate new mnemonic from entropy: %w", err)
	}
	return mnemonic, nil
}

// Seed stretches a BIP-39 mnemonic into the 64 byte wallet seed.
func Seed(mnemonic, passphrase string) ([]byte, error) {
	mnemonic = strings.Join(strings.Fields(mnemonic), " ")
	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, passphrase)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMnemonic, err)
	}
	return seed, nil
}

// DeriveKey walks a BIP-32 private derivation path from seed.
func DeriveKey(seed []byte, path accounts.DerivationPath) (*ecdsa.PrivateKey, error) {
	key, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, fmt.Errorf("failed to derive master key: %w", err)
	}

	for _, index := range path {
		if key, err = key.NewChildKey(index); err != nil {
			return nil, fmt.Errorf("failed to derive child %d: %w", index, err)
		}
	}

	return crypto.ToECDSA(key.Key)
}

// KeyFromMnemonic derives the operator key along derivationPath (m/44'/60'/0'/0/0 style).
func KeyFromMnemonic(mnemonic, passphrase, derivationPath string) (*OperatorKey, error) {
	seed, err := Seed(mnemonic, passphrase)
	if err != nil {
		return nil, err
	}

	path, err := accounts.ParseDerivationPath(derivationPath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse derivation path %q: %w", derivationPath, err)
	}

	key, err := DeriveKey(seed, path)
	if err != nil {
		return nil, err
	}

	return &OperatorKey{
		PrivateKey: key,
		Address:    crypto.PubkeyToAddress(key.PublicKey),
	}, nil
}

// Lock keeps a single gateway process per operator key, so two processes never race
// for the same nonces.
type Lock struct {
	lock *fslock.Lock
}

func AcquireLock(path string) (*Lock, error) {
	l := fslock.New(path)
	if err := l.TryLock(); err != nil {
		if errors.Is(err, fslock.ErrLocked) {
			return nil, fmt.Errorf("%w: %s", ErrLocked, path)
		}
		return nil, fmt.Errorf("failed to lock %s: %w", path, err)
	}
	return &Lock{lock: l}, nil
}

func (l *Lock) Release() error {
	return l.lock.Unlock()
}
