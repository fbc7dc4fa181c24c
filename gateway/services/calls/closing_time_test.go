package calls

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/lidofinance/cfp-gateway/gateway/types"
)

func TestParseClosingTime(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		value string
		want  int64
		kind  types.Kind
	}{
		{"rfc3339", "2024-05-10T13:00:00Z", now.Add(time.Hour).Unix(), ""},
		{"rfc3339 millis", "2024-05-10T13:00:00.000Z", now.Add(time.Hour).Unix(), ""},
		{"offset", "2024-05-10T14:00:00+01:00", now.Add(time.Hour).Unix(), ""},
		{"no offset", "2024-05-10T13:00:00", now.Add(time.Hour).Unix(), ""},
		{"minutes", "2024-05-10T13:00", now.Add(time.Hour).Unix(), ""},
		{"date", "2024-05-11", now.Add(12 * time.Hour).Unix(), ""},
		{"one second ahead", "2024-05-10T12:00:01Z", now.Unix() + 1, ""},
		{"equal to now", "2024-05-10T12:00:00Z", 0, types.InvalidClosingTime},
		{"sub-second ahead", "2024-05-10T12:00:00.900Z", 0, types.InvalidClosingTime},
		{"past", "2024-05-09T12:00:00Z", 0, types.InvalidClosingTime},
		{"garbage", "tomorrow", 0, types.MalformedInput},
		{"empty", "", 0, types.MalformedInput},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseClosingTime(tc.value, now)
			if tc.kind != "" {
				require.True(t, types.IsKind(err, tc.kind), "unexpected error: %v", err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}
