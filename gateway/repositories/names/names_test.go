package names

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lidofinance/cfp-gateway/gateway/modules/state"
	"github.com/lidofinance/cfp-gateway/gateway/types"
)

func TestNamesRepo(t *testing.T) {
	req := require.New(t)

	st, err := state.NewLevelDBState(filepath.Join(t.TempDir(), "names"))
	req.NoError(err)
	defer st.Close()

	repo := NewNamesRepo(st, "test")

	empty, err := repo.GetNames("usuarios.cfp")
	req.NoError(err)
	req.Empty(empty)

	now := time.Now().UTC()
	req.NoError(repo.PutName(&types.RegisteredName{Name: "bob.usuarios.cfp", Domain: "usuarios.cfp", Address: "0x02", RegisteredAt: now}))
	req.NoError(repo.PutName(&types.RegisteredName{Name: "alice.usuarios.cfp", Domain: "usuarios.cfp", Address: "0x01", RegisteredAt: now}))
	req.NoError(repo.PutName(&types.RegisteredName{Name: "fondos.llamados.cfp", Domain: "llamados.cfp", Address: "0x03", RegisteredAt: now}))
	req.NoError(repo.PutName(&types.RegisteredName{Name: "bob.usuarios.cfp", Domain: "usuarios.cfp", Address: "0x04", RegisteredAt: now}))

	users, err := repo.GetNames("usuarios.cfp")
	req.NoError(err)
	req.Len(users, 2)
	req.Equal("alice.usuarios.cfp", users[0].Name)
	req.Equal("bob.usuarios.cfp", users[1].Name)
	req.Equal("0x04", users[1].Address)

	calls, err := repo.GetNames("llamados.cfp")
	req.NoError(err)
	req.Len(calls, 1)
}
