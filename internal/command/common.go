// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	awsx "github.com/staranto/freshctl/internal/aws"
	"github.com/staranto/freshctl/internal/filters"
	"github.com/staranto/freshctl/internal/freshness"
	"github.com/staranto/freshctl/internal/meta"
	"github.com/staranto/freshctl/internal/output"
	"github.com/staranto/freshctl/internal/store"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// Out returns where command output goes.
func Out(cmd *cli.Command) io.Writer {
	if m := GetMeta(cmd); m.Out != nil {
		return m.Out
	}
	return os.Stdout
}

// CommandBuilder constructs a cli.Command for freshctl subcommands using a
// consistent pattern. It wires metadata and global flags.
type CommandBuilder struct {
	Name      string
	Usage     string
	ArgsUsage string
	Flags     []cli.Flag
	Action    func(context.Context, *cli.Command) error
	Meta      meta.Meta
	// NoGlobals leaves out the output and store flags.
	NoGlobals bool
}

// Build returns a configured cli.Command from the builder.
func (cb *CommandBuilder) Build() *cli.Command {
	flags := cb.Flags
	if !cb.NoGlobals {
		flags = append(flags, NewGlobalFlags(cb.Name)...)
	}
	return &cli.Command{
		Name:      cb.Name,
		Usage:     cb.Usage,
		ArgsUsage: cb.ArgsUsage,
		Metadata: map[string]any{
			"meta": cb.Meta,
		},
		Flags:  flags,
		Action: cb.Action,
	}
}

// RequireArgs returns the positional arguments, failing when fewer than n
// were given.
func RequireArgs(cmd *cli.Command, n int) ([]string, error) {
	args := cmd.Args().Slice()
	if len(args) < n {
		return nil, fmt.Errorf("%s: expected at least %d argument(s): %s", cmd.Name, n, cmd.ArgsUsage)
	}
	return args, nil
}

// OpenStore returns the store selected by --store. A store placed in Meta
// takes precedence.
func OpenStore(ctx context.Context, cmd *cli.Command) (store.Store, error) {
	if m := GetMeta(cmd); m.Store != nil {
		return m.Store, nil
	}

	kind, err := store.ParseKind(cmd.String("store"))
	if err != nil {
		return nil, err
	}
	log.Debugf("store: %s", kind)

	switch kind {
	case store.KindMemory:
		return store.NewMemory(nil), nil
	case store.KindS3:
		awsCfg, err := awsx.LoadAWSConfig(ctx,
			awsx.WithProfile(cmd.String("profile")),
			awsx.WithRegion(cmd.String("region")),
			awsx.WithMaxAttempts(cmd.Int("retries")),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to load aws config: %w", err)
		}
		client := awsx.NewS3(awsCfg, awsx.WithS3Endpoint(cmd.String("endpoint")))
		return store.NewS3(client, cmd.String("bucket"), cmd.String("prefix"))
	default:
		f, err := store.NewFile()
		if err != nil {
			return nil, err
		}
		if f == nil {
			return nil, errors.New("file store is disabled (FRESHCTL_CACHE) or has no cache directory")
		}
		return f, nil
	}
}

// NewChecker opens the selected store and wraps it in a freshness.Checker.
func NewChecker(ctx context.Context, cmd *cli.Command) (*freshness.Checker, error) {
	s, err := OpenStore(ctx, cmd)
	if err != nil {
		return nil, err
	}
	c := freshness.NewChecker(s)
	if m := GetMeta(cmd); m.Clock != nil {
		c.Clock = m.Clock
	}
	return c, nil
}

// Emit filters rows per --filter, sorts them per --sort and renders them per
// --output/--color/--titles.
func Emit(cmd *cli.Command, columns []string, rows []map[string]interface{}) error {
	rows = filters.FilterRows(rows, cmd.String("filter"))
	output.SortDataset(rows, cmd.String("sort"))
	return output.Emit(Out(cmd), output.Options{
		Format: cmd.String("output"),
		Color:  cmd.Bool("color"),
		Titles: cmd.Bool("titles"),
	}, columns, rows)
}
