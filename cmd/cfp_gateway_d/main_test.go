package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lidofinance/cfp-gateway/gateway/config"
	"github.com/lidofinance/cfp-gateway/gateway/modules/keystore"
)

func TestRunGateway_FailedStartupReleasesLock(t *testing.T) {
	req := require.New(t)

	lockPath := filepath.Join(t.TempDir(), "operator.lock")
	cfg := &config.Config{
		LockFile: lockPath,
		Mnemonic: "not a valid mnemonic",
	}

	err := runGateway(cfg)
	req.Error(err)
	req.ErrorIs(err, keystore.ErrInvalidMnemonic)

	lock, err := keystore.AcquireLock(lockPath)
	req.NoError(err)
	req.NoError(lock.Release())
}

func TestRunGateway_LockHeld(t *testing.T) {
	req := require.New(t)

	lockPath := filepath.Join(t.TempDir(), "operator.lock")
	held, err := keystore.AcquireLock(lockPath)
	req.NoError(err)
	defer held.Release()

	err = runGateway(&config.Config{LockFile: lockPath})
	req.ErrorIs(err, keystore.ErrLocked)
}
