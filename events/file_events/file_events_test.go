package file_events

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lidofinance/cfp-gateway/events"
)

func TestFileSink_Publish(t *testing.T) {
	var (
		req = require.New(t)
		N   = 5
		dir = t.TempDir()
	)

	fs, err := NewFileSink(filepath.Join(dir, "events"), filepath.Join(dir, "events.lock"))
	req.NoError(err)
	defer fs.Close()

	evts := make([]events.Event, 0, N)
	for i := 0; i < N; i++ {
		evts = append(evts, events.Event{
			Kind:        events.ProposalRegistered,
			Subject:     "0x1111111111111111111111111111111111111111111111111111111111111111",
			TxHash:      "0x2222222222222222222222222222222222222222222222222222222222222222",
			BlockNumber: uint64(i + 1),
			CreatedAt:   time.Unix(int64(1700000000+i), 0).UTC(),
		})
	}
	req.NoError(fs.Publish(evts...))

	for i, e := range evts {
		req.NotEmpty(e.ID)
		req.Equal(uint64(i), e.Offset)
	}

	stored, err := fs.Events(0)
	req.NoError(err)
	req.Equal(evts, stored)

	tail, err := fs.Events(3)
	req.NoError(err)
	req.Equal(evts[3:], tail)
}

func TestFileSink_Reopen(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "events")
	defer os.Remove(path)

	fs, err := NewFileSink(path, path+".lock")
	req.NoError(err)
	req.NoError(fs.Publish(events.Event{Kind: events.CallCreated}))
	req.NoError(fs.Close())

	fs, err = NewFileSink(path, path+".lock")
	req.NoError(err)
	defer fs.Close()

	e := []events.Event{{Kind: events.CallCreated}}
	req.NoError(fs.Publish(e...))
	req.Equal(uint64(1), e[0].Offset)
}
