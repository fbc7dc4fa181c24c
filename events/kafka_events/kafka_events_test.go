package kafka_events

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lidofinance/cfp-gateway/events"
)

func TestToKafkaMessages(t *testing.T) {
	req := require.New(t)

	evts := []events.Event{
		{Kind: events.CallCreated, Subject: "0xaa"},
		{ID: "fixed", Kind: events.ProposalRegistered, Subject: "0xbb"},
	}

	messages, err := toKafkaMessages(evts...)
	req.NoError(err)
	req.Len(messages, 2)

	req.NotEmpty(evts[0].ID)
	req.Equal("fixed", evts[1].ID)
	req.Equal([]byte("0xaa"), messages[0].Key)

	var decoded events.Event
	req.NoError(json.Unmarshal(messages[1].Value, &decoded))
	req.Equal(evts[1], decoded)
}

func TestParseCredentials(t *testing.T) {
	req := require.New(t)

	creds, err := ParseCredentials("")
	req.NoError(err)
	req.Nil(creds)

	creds, err = ParseCredentials("producer:se:cret")
	req.NoError(err)
	req.Equal("producer", creds.Username)
	req.Equal("se:cret", creds.Password)

	_, err = ParseCredentials("producer")
	req.Error(err)
}

func TestGetTLSConfig(t *testing.T) {
	req := require.New(t)

	cfg, err := GetTLSConfig("")
	req.NoError(err)
	req.Nil(cfg.RootCAs)

	_, err = GetTLSConfig(filepath.Join(t.TempDir(), "missing.pem"))
	req.Error(err)

	empty := filepath.Join(t.TempDir(), "empty.pem")
	req.NoError(os.WriteFile(empty, []byte("not a certificate"), 0600))
	_, err = GetTLSConfig(empty)
	req.Error(err)
}
