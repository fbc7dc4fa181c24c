package calls

import (
	"time"

	"github.com/lidofinance/cfp-gateway/gateway/types"
)

// Layouts accepted for a closing time. Values without an offset are read as UTC.
var closingTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseClosingTime converts value to Unix seconds and requires it to be strictly
// after now.
func ParseClosingTime(value string, now time.Time) (int64, error) {
	var (
		t   time.Time
		err error
	)
	for _, layout := range closingTimeLayouts {
		if t, err = time.ParseInLocation(layout, value, time.UTC); err == nil {
			break
		}
	}
	if err != nil {
		return 0, types.WrapError(types.MalformedInput, types.MsgClosingTimeFormat, err)
	}

	ts := t.Unix()
	if ts <= now.Unix() {
		return 0, types.NewError(types.InvalidClosingTime, types.MsgInvalidClosingTime)
	}
	return ts, nil
}
