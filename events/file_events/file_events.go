package file_events

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/juju/fslock"

	"github.com/lidofinance/cfp-gateway/events"
)

var _ events.Sink = (*FileSink)(nil)

const (
	defaultLockFile = "/tmp/cfp_gateway_events_lock"
)

// FileSink appends events to a JSON-lines file. The lock file lets several
// gateways share one events file.
type FileSink struct {
	lockFile *fslock.Lock

	dataFile *os.File
}

func countLines(r io.Reader) uint64 {
	var count uint64
	fileScanner := bufio.NewScanner(r)

	for fileScanner.Scan() {
		count++
	}

	return count
}

// NewFileSink opens (or creates) filename for appending. lockFilename is optional.
func NewFileSink(filename string, lockFilename ...string) (*FileSink, error) {
	var (
		fs  FileSink
		err error
	)
	if len(lockFilename) > 0 && lockFilename[0] != "" {
		fs.lockFile = fslock.New(lockFilename[0])
	} else {
		fs.lockFile = fslock.New(defaultLockFile)
	}

	if fs.dataFile, err = os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0644); err != nil {
		return nil, fmt.Errorf("failed to open events file: %w", err)
	}
	return &fs, nil
}

func (fs *FileSink) publish(e events.Event) (events.Event, error) {
	if err := fs.lockFile.Lock(); err != nil {
		return e, fmt.Errorf("failed to lock events file: %w", err)
	}
	defer fs.lockFile.Unlock()

	e.ID = uuid.New().String()

	if _, err := fs.dataFile.Seek(0, io.SeekStart); err != nil {
		return e, fmt.Errorf("failed to seek to the start of events file: %w", err)
	}
	e.Offset = countLines(fs.dataFile)

	data, err := json.Marshal(e)
	if err != nil {
		return e, fmt.Errorf("failed to marshal event %s: %w", e.Kind, err)
	}

	if _, err = fmt.Fprintln(fs.dataFile, string(data)); err != nil {
		return e, fmt.Errorf("failed to write event: %w", err)
	}
	return e, nil
}

func (fs *FileSink) Publish(evts ...events.Event) error {
	var err error
	for i, e := range evts {
		if evts[i], err = fs.publish(e); err != nil {
			return err
		}
	}
	return nil
}

// Events reads back the events stored from offset on.
func (fs *FileSink) Events(offset uint64) ([]events.Event, error) {
	if _, err := fs.dataFile.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to seek to the start of events file: %w", err)
	}

	var result []events.Event
	scanner := bufio.NewScanner(fs.dataFile)
	for scanner.Scan() {
		if offset > 0 {
			offset--
			continue
		}

		var e events.Event
		row := scanner.Bytes()
		if err := json.Unmarshal(row, &e); err != nil {
			return nil, fmt.Errorf("failed to unmarshal event %s: %w", string(row), err)
		}
		result = append(result, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read events file: %w", err)
	}
	return result, nil
}

func (fs *FileSink) Close() error {
	return fs.dataFile.Close()
}
