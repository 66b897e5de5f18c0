// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/apex/log"
)

// InitLogger sets up Apex with a custom handler and a log level from the
// FRESHCTL_LOG env variable.
func InitLogger() {
	level := strings.ToUpper(os.Getenv("FRESHCTL_LOG"))
	if level == "" {
		level = "ERROR"
	}
	log.SetHandler(NewCustomHandler(os.Stdout))

	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = log.ErrorLevel
	}
	log.SetLevel(lvl)
}

// CustomHandler formats log messages and writes them to w. Fields attached to
// the entry are appended as key=value pairs in sorted order.
type CustomHandler struct {
	mu  sync.Mutex
	w   io.Writer
	now func() time.Time
}

// NewCustomHandler returns a CustomHandler writing to w.
func NewCustomHandler(w io.Writer) *CustomHandler {
	return &CustomHandler{w: w, now: time.Now}
}

// HandleLog implements the log.Handler interface
func (h *CustomHandler) HandleLog(e *log.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	timestamp := h.now().Format("2006-01-02 15:04:05")
	level := strings.ToUpper(e.Level.String())

	var b strings.Builder
	b.WriteString(e.Message)
	for _, f := range e.Fields.Names() {
		fmt.Fprintf(&b, " %s=%v", f, e.Fields.Get(f))
	}

	_, err := fmt.Fprintf(h.w, "%s %.1s %s\n", timestamp, level, b.String())
	return err
}

// PlainHandler writes only the message, one per line. The wasm build uses it
// so diagnostics reach the browser console verbatim.
type PlainHandler struct {
	mu sync.Mutex
	w  io.Writer
}

// NewPlainHandler returns a PlainHandler writing to w.
func NewPlainHandler(w io.Writer) *PlainHandler {
	return &PlainHandler{w: w}
}

// HandleLog implements the log.Handler interface
func (h *PlainHandler) HandleLog(e *log.Entry) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintln(h.w, e.Message)
	return err
}
