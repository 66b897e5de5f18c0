// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package freshness

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staranto/freshctl/internal/clock"
	"github.com/staranto/freshctl/internal/store"
)

var ctx = context.Background()

// at parses a YYYY-MM-DD-HH-mm stamp into a fixed clock.
func at(t *testing.T, stamp string) clock.Clock {
	t.Helper()
	now, err := clock.Parse(stamp)
	require.NoError(t, err)
	return clock.Fixed(now)
}

// newChecker returns a Checker over entries whose log lines land in the
// returned memory handler.
func newChecker(t *testing.T, now string, entries map[string]string) (*Checker, *memory.Handler) {
	t.Helper()
	h := memory.New()
	c := &Checker{
		Store: store.NewMemory(entries),
		Clock: at(t, now),
		Log:   &log.Logger{Handler: h, Level: log.DebugLevel},
	}
	return c, h
}

func messages(h *memory.Handler) []string {
	var out []string
	for _, e := range h.Entries {
		if e.Level >= log.InfoLevel {
			out = append(out, e.Message)
		}
	}
	return out
}

func TestPresent(t *testing.T) {
	c, h := newChecker(t, "2024-11-17-15-30", map[string]string{"existingKey": "someValue"})

	ok, err := c.Present(ctx, "nonExistentKey")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, []string{"No nonExistentKey data found"}, messages(h))

	h.Entries = nil
	ok, err = c.Present(ctx, "existingKey")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, messages(h))
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		policy  Policy
		now     string
		stored  string
		expired bool
		status  Status
		message string
	}{
		{"hourly exactly one hour", Hourly, "2024-11-17-15-30", "2024-11-17-14-30", false, StatusFreshHourly, "Data is less than one hour old someKey"},
		{"hourly ninety minutes", Hourly, "2024-11-17-15-30", "2024-11-17-14-00", true, StatusStaleHourly, "Data more than one hour old -- time check someKey"},
		{"hourly sixty one minutes", Hourly, "2024-11-17-15-30", "2024-11-17-14-29", true, StatusStaleHourly, "Data more than one hour old -- time check someKey"},
		{"hourly stored in future", Hourly, "2024-11-17-15-30", "2024-11-17-17-00", true, StatusStaleHourly, "Data more than one hour old -- time check someKey"},
		{"hourly across midnight", Hourly, "2024-11-18-00-10", "2024-11-17-23-30", false, StatusFreshHourly, "Data is less than one hour old someKey"},
		{"daily previous day", Daily, "2024-11-18-15-30", "2024-11-17-15-30", true, StatusStaleDaily, "Data more than one day old - date check someKey"},
		{"daily same day", Daily, "2024-11-17-23-59", "2024-11-17-00-00", false, StatusFreshDaily, ""},
		{"daily minutes apart over midnight", Daily, "2024-11-18-00-01", "2024-11-17-23-59", true, StatusStaleDaily, "Data more than one day old - date check someKey"},
		{"monthly previous month", Monthly, "2024-12-01-15-30", "2024-11-01-15-30", true, StatusStaleMonthly, "Data more than one month old - date check someKey"},
		{"monthly same month", Monthly, "2024-11-30-15-30", "2024-11-01-00-00", false, StatusFreshMonthly, ""},
		{"monthly same month other year", Monthly, "2025-11-17-15-30", "2024-11-17-15-30", true, StatusStaleMonthly, "Data more than one month old - date check someKey"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, h := newChecker(t, tt.now, map[string]string{"someKey": tt.stored + "|someData"})

			res, err := c.Check(ctx, tt.policy, "someKey")
			require.NoError(t, err)
			assert.Equal(t, tt.expired, res.Expired)
			assert.Equal(t, tt.status, res.Status)
			assert.Equal(t, "someData", res.Entry.Payload)

			if tt.message == "" {
				assert.Empty(t, messages(h))
			} else {
				assert.Equal(t, []string{tt.message}, messages(h))
			}

			assert.Equal(t, tt.expired, c.Expired(ctx, tt.policy, "someKey"))
		})
	}
}

func TestCheck_Age(t *testing.T) {
	c, _ := newChecker(t, "2024-11-17-15-30", map[string]string{"k": "2024-11-17-14-00|x"})
	res, err := c.Check(ctx, Hourly, "k")
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, res.Age)
}

func TestCheck_Missing(t *testing.T) {
	c, h := newChecker(t, "2024-11-17-15-30", nil)

	var seen []Status
	c.Observer = func(key string, s Status) {
		assert.Equal(t, "gone", key)
		seen = append(seen, s)
	}

	res, err := c.Check(ctx, Daily, "gone")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.True(t, res.Expired)
	assert.Equal(t, StatusMissing, res.Status)
	assert.Equal(t, []Status{StatusMissing}, seen)
	assert.Equal(t, []string{"No gone data found"}, messages(h))
	assert.True(t, c.Expired(ctx, Daily, "gone"))
}

func TestCheck_Malformed(t *testing.T) {
	for _, raw := range []string{"no delimiter here", "2024-11-17|x", "yesterday|x", "|x"} {
		t.Run(raw, func(t *testing.T) {
			c, _ := newChecker(t, "2024-11-17-15-30", map[string]string{"k": raw})
			res, err := c.Check(ctx, Hourly, "k")
			assert.ErrorIs(t, err, ErrMalformedEntry)
			assert.True(t, res.Expired)
			assert.Equal(t, StatusMalformed, res.Status)
		})
	}
}

func TestCheck_UnknownPolicy(t *testing.T) {
	c, _ := newChecker(t, "2024-11-17-15-30", map[string]string{"k": "2024-11-17-15-30|x"})
	_, err := c.Check(ctx, Policy(42), "k")
	assert.ErrorIs(t, err, ErrUnknownPolicy)
}

type brokenStore struct{ err error }

func (b brokenStore) Get(context.Context, string) (string, bool, error) { return "", false, b.err }
func (b brokenStore) Set(context.Context, string, string) error        { return b.err }

func TestChecker_StoreErrors(t *testing.T) {
	boom := errors.New("boom")
	c := &Checker{Store: brokenStore{boom}, Clock: at(t, "2024-11-17-15-30")}

	_, err := c.Present(ctx, "k")
	assert.ErrorIs(t, err, boom)

	res, err := c.Check(ctx, Hourly, "k")
	assert.ErrorIs(t, err, boom)
	assert.True(t, res.Expired)

	assert.ErrorIs(t, c.Stamp(ctx, "k", "v"), boom)

	_, err = c.Payload(ctx, "k")
	assert.ErrorIs(t, err, boom)
}

func TestStampAndPayload(t *testing.T) {
	c, _ := newChecker(t, "2024-11-17-15-30", nil)

	require.NoError(t, c.Stamp(ctx, "location", `{"city":"Lisbon"}|extra`))

	raw, ok, err := c.Store.Get(ctx, "location")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `2024-11-17-15-30|{"city":"Lisbon"}|extra`, raw)

	payload, err := c.Payload(ctx, "location")
	require.NoError(t, err)
	assert.Equal(t, `{"city":"Lisbon"}|extra`, payload)

	_, err = c.Payload(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.False(t, c.Expired(ctx, Hourly, "location"))
}

func TestParsePolicy(t *testing.T) {
	for _, p := range Policies {
		got, err := ParsePolicy(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	got, err := ParsePolicy(" Daily ")
	require.NoError(t, err)
	assert.Equal(t, Daily, got)

	_, err = ParsePolicy("weekly")
	assert.ErrorIs(t, err, ErrUnknownPolicy)
	assert.Equal(t, "Policy(9)", Policy(9).String())
}

func TestParseEntry(t *testing.T) {
	e, err := ParseEntry("2024-11-17-14-30|a|b")
	require.NoError(t, err)
	assert.Equal(t, "2024-11-17-14-30", e.Stamp)
	assert.Equal(t, "a|b", e.Payload)
	assert.Equal(t, "2024-11-17-14-30|a|b", e.String())

	e, err = ParseEntry("2024-11-17-14-30|")
	require.NoError(t, err)
	assert.Equal(t, "", e.Payload)
}

func TestStatus(t *testing.T) {
	assert.Equal(t, "stale-daily", StatusStaleDaily.String())
	assert.Equal(t, "", StatusFreshDaily.Message("k"))
	assert.False(t, StatusFreshMonthly.Expired())
	assert.True(t, StatusMissing.Expired())
	assert.True(t, StatusMalformed.Expired())
}
