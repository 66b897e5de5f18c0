// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT
package command

import (
	"context"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/staranto/freshctl/internal/config"
	"github.com/staranto/freshctl/internal/meta"
)

// InitApp builds the root command. The first argument after the binary is
// the subcommand and doubles as the config namespace.
func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}

	cfg, _ := config.Load(ns)
	return NewApp(meta.Meta{
		Args:    args,
		Config:  cfg,
		Context: ctx,
	}), nil
}

// NewApp assembles the command tree around m.
func NewApp(m meta.Meta) *cli.Command {
	app := &cli.Command{
		Name:  "freshctl",
		Usage: "timestamped cache entry tool",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "freshctl version info",
				HideDefault: true,
			},
		},
	}
	if m.Out != nil {
		app.Writer = m.Out
		app.ErrWriter = m.Out
	}

	app.Commands = append(app.Commands,
		checkCommandBuilder(m),
		dateCommandBuilder(m),
		overlayCommandBuilder(m),
		payloadCommandBuilder(m),
		presentCommandBuilder(m),
		purgeCommandBuilder(m),
		stampCommandBuilder(m),
		CompletionCommandBuilder(m),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app
}
