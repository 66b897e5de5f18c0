// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/staranto/freshctl/internal/meta"
)

// stampCommandAction stores PAYLOAD under KEY with the current timestamp. A
// PAYLOAD of "-" is read from stdin with trailing newlines removed.
func stampCommandAction(ctx context.Context, cmd *cli.Command) error {
	args, err := RequireArgs(cmd, 2)
	if err != nil {
		return err
	}
	key, payload := args[0], strings.Join(args[1:], " ")

	if payload == "-" {
		b, err := io.ReadAll(stdin(cmd))
		if err != nil {
			return fmt.Errorf("failed to read payload: %w", err)
		}
		payload = strings.TrimRight(string(b), "\r\n")
	}

	checker, err := NewChecker(ctx, cmd)
	if err != nil {
		return err
	}

	if err := checker.Stamp(ctx, key, payload); err != nil {
		return err
	}
	log.Debugf("stamped %s (%d bytes)", key, len(payload))
	return nil
}

func stdin(cmd *cli.Command) io.Reader {
	if r := cmd.Root().Reader; r != nil {
		return r
	}
	return os.Stdin
}

func stampCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "stamp",
		Usage:     "store a payload with the current timestamp",
		ArgsUsage: "KEY PAYLOAD|-",
		Action:    stampCommandAction,
		Meta:      meta,
	}).Build()
}
