// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package meta

import (
	"context"
	"io"

	"github.com/staranto/freshctl/internal/clock"
	"github.com/staranto/freshctl/internal/config"
	"github.com/staranto/freshctl/internal/store"
)

// Meta are the meta-options that are available on all or most commands.
type Meta struct {
	Args    []string
	Config  config.Type
	Context context.Context

	// Store, when set, is used instead of the one selected by --store.
	Store store.Store
	// Clock, when set, replaces the system clock.
	Clock clock.Clock
	// Out receives command output. Defaults to os.Stdout.
	Out io.Writer
}
