// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staranto/freshctl/internal/clock"
	"github.com/staranto/freshctl/internal/meta"
	"github.com/staranto/freshctl/internal/store"
)

// run executes freshctl with args against mem at a fixed instant.
func run(t *testing.T, mem *store.Memory, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	m := meta.Meta{
		Clock: clock.Fixed(time.Date(2024, 11, 17, 15, 30, 0, 0, time.Local)),
		Out:   &buf,
	}
	if mem != nil {
		m.Store = mem
	}
	app := NewApp(m)
	err := app.Run(context.Background(), append([]string{"freshctl"}, args...))
	return buf.String(), err
}

func TestDate(t *testing.T) {
	out, err := run(t, nil, "date", "--time")
	require.NoError(t, err)
	assert.Equal(t, "2024-11-17-15-30\n", out)

	out, err = run(t, nil, "date")
	require.NoError(t, err)
	assert.Equal(t, "2024-11-17\n", out)
}

func TestPresent(t *testing.T) {
	mem := store.NewMemory(map[string]string{"forecast": "2024-11-17-15-00|sunny"})

	out, err := run(t, mem, "present", "-o", "json", "forecast")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"key":"forecast","present":true}]`, out)

	_, err = run(t, mem, "present", "forecast", "location", "alerts")
	require.Error(t, err)
	assert.Equal(t, "missing: location, alerts", err.Error())

	_, err = run(t, mem, "present")
	assert.Error(t, err)
}

func TestCheck(t *testing.T) {
	mem := store.NewMemory(map[string]string{
		"fresh":  "2024-11-17-14-30|a",
		"stale":  "2024-11-17-14-00|b",
		"broken": "nodelimiter",
	})

	out, err := run(t, mem, "check", "-o", "json", "--policy", "hourly", "fresh", "stale", "broken", "gone")
	require.NoError(t, err)

	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 4)

	byKey := map[string]map[string]interface{}{}
	for _, r := range rows {
		byKey[r["key"].(string)] = r
	}
	assert.Equal(t, false, byKey["fresh"]["expired"])
	assert.Equal(t, "fresh-hourly", byKey["fresh"]["status"])
	assert.Equal(t, "1 hour ago", byKey["fresh"]["age"])
	assert.Equal(t, true, byKey["stale"]["expired"])
	assert.Equal(t, "stale-hourly", byKey["stale"]["status"])
	assert.Equal(t, "malformed", byKey["broken"]["status"])
	assert.Equal(t, "missing", byKey["gone"]["status"])
	assert.Equal(t, "", byKey["gone"]["age"])

	_, err = run(t, mem, "check", "-x", "--policy", "hourly", "fresh", "stale")
	require.Error(t, err)
	assert.Equal(t, "expired: stale", err.Error())

	_, err = run(t, mem, "check", "-x", "--policy", "daily", "fresh", "stale")
	assert.NoError(t, err)

	_, err = run(t, mem, "check", "--policy", "weekly", "fresh")
	assert.Error(t, err)
}

func TestCheck_TextSorted(t *testing.T) {
	mem := store.NewMemory(map[string]string{
		"b": "2024-11-01-00-00|x",
		"a": "2024-10-31-00-00|y",
	})

	out, err := run(t, mem, "check", "--policy", "monthly", "--titles", "--sort", "key", "b", "a")
	require.NoError(t, err)
	assert.Contains(t, out, "stale-monthly")
	assert.Contains(t, out, "fresh-monthly")
	assert.Less(t, strings.Index(out, "stale-monthly"), strings.Index(out, "fresh-monthly"))
}

func TestStampAndPayload(t *testing.T) {
	mem := store.NewMemory(nil)

	_, err := run(t, mem, "stamp", "location", `{"city":{"name":"Lisbon","id":42}}`)
	require.NoError(t, err)

	raw, ok, err := mem.Get(context.Background(), "location")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `2024-11-17-15-30|{"city":{"name":"Lisbon","id":42}}`, raw)

	out, err := run(t, mem, "payload", "location")
	require.NoError(t, err)
	assert.Equal(t, `{"city":{"name":"Lisbon","id":42}}`+"\n", out)

	out, err = run(t, mem, "payload", "--path", "city.name", "location")
	require.NoError(t, err)
	assert.Equal(t, "Lisbon\n", out)

	out, err = run(t, mem, "payload", "--path", "city.id", "location")
	require.NoError(t, err)
	assert.Equal(t, "42\n", out)

	_, err = run(t, mem, "payload", "--path", "city.zip", "location")
	assert.Error(t, err)

	_, err = run(t, mem, "payload", "nothing")
	assert.Error(t, err)
}

func TestStamp_Stdin(t *testing.T) {
	mem := store.NewMemory(nil)
	var buf bytes.Buffer
	app := NewApp(meta.Meta{
		Store: mem,
		Clock: clock.Fixed(time.Date(2024, 11, 17, 15, 30, 0, 0, time.Local)),
		Out:   &buf,
	})
	app.Reader = strings.NewReader("from stdin\r\n\n")

	require.NoError(t, app.Run(context.Background(), []string{"freshctl", "stamp", "k", "-"}))
	raw, _, _ := mem.Get(context.Background(), "k")
	assert.Equal(t, "2024-11-17-15-30|from stdin", raw)
}

func TestOverlay(t *testing.T) {
	out, err := run(t, nil, "overlay", "--title", "Weather")
	require.NoError(t, err)
	assert.Contains(t, out, "<title>Weather</title>")
	assert.Contains(t, out, `<div id="locationLightbox" class="lightbox" style="display: block"><iframe src="LocationSelect.html"></iframe></div>`)

	_, err = run(t, nil, "overlay", "--bare")
	assert.Error(t, err)
}

func TestPurge_RequiresFileStore(t *testing.T) {
	_, err := run(t, store.NewMemory(nil), "purge")
	assert.Error(t, err)
}

func TestPurge_FileStore(t *testing.T) {
	t.Setenv("FRESHCTL_CACHE_DIR", t.TempDir())
	t.Setenv("FRESHCTL_CACHE", "")

	var buf bytes.Buffer
	stamp := NewApp(meta.Meta{Out: &buf})
	require.NoError(t, stamp.Run(context.Background(), []string{"freshctl", "stamp", "--store", "file", "k", "v"}))
	purge := NewApp(meta.Meta{Out: &buf})
	require.NoError(t, purge.Run(context.Background(), []string{"freshctl", "purge", "--store", "file", "--hours", "1"}))
	assert.Equal(t, "removed 0 entries\n", buf.String())
}

func TestCompletion(t *testing.T) {
	out, err := run(t, nil, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "complete -F _freshctl freshctl")

	out, err = run(t, nil, "completion", "zsh")
	require.NoError(t, err)
	assert.Contains(t, out, "compdef _freshctl freshctl")
}

func TestValidators(t *testing.T) {
	assert.NoError(t, OutputValidator("yaml"))
	assert.Error(t, OutputValidator("csv"))
	assert.NoError(t, PolicyValidator("Monthly"))
	assert.Error(t, PolicyValidator("weekly"))
	assert.NoError(t, StoreValidator("s3"))
	assert.Error(t, StoreValidator("redis"))
	assert.Error(t, JammedFlagValidator("--oops"))
	assert.Error(t, NonNegativeValidator(-1))
	assert.NoError(t, FlagValidators("json", OutputValidator, JammedFlagValidator))
}

func TestPresent_NegativeRetries(t *testing.T) {
	mem := store.NewMemory(map[string]string{"forecast": "2024-11-17-15-00|sunny"})
	_, err := run(t, mem, "present", "--retries", "-1", "forecast")
	assert.ErrorContains(t, err, "must not be negative")
}

func TestCheck_Filter(t *testing.T) {
	mem := store.NewMemory(map[string]string{
		"fresh": "2024-11-17-14-30|a",
		"stale": "2024-11-17-14-00|b",
	})

	out, err := run(t, mem, "check", "-o", "json", "--filter", "expired=true", "fresh", "stale", "gone")
	require.NoError(t, err)

	var rows []map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 2)
	assert.Equal(t, "stale", rows[0]["key"])
	assert.Equal(t, "gone", rows[1]["key"])
}
