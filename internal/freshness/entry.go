// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package freshness

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/staranto/freshctl/internal/clock"
)

// Delimiter separates the timestamp from the payload in a stored entry.
const Delimiter = "|"

var (
	ErrNotFound       = errors.New("no cache entry")
	ErrMalformedEntry = errors.New("malformed cache entry")
)

// Entry is a stored value split into its creation time and payload.
type Entry struct {
	Stamp   string
	Time    time.Time
	Payload string
}

// ParseEntry splits raw on the first Delimiter and parses the timestamp.
func ParseEntry(raw string) (Entry, error) {
	stamp, payload, found := strings.Cut(raw, Delimiter)
	if !found {
		return Entry{}, fmt.Errorf("%w: missing %q delimiter", ErrMalformedEntry, Delimiter)
	}
	t, err := clock.Parse(stamp)
	if err != nil {
		return Entry{}, fmt.Errorf("%w: bad timestamp %q", ErrMalformedEntry, stamp)
	}
	return Entry{Stamp: stamp, Time: t, Payload: payload}, nil
}

// FormatEntry renders an entry for storage.
func FormatEntry(stamp, payload string) string {
	return stamp + Delimiter + payload
}

func (e Entry) String() string {
	return FormatEntry(e.Stamp, e.Payload)
}
