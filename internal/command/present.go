// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/staranto/freshctl/internal/meta"
)

// presentCommandAction reports whether each key holds an entry. It fails when
// any key is absent so scripts can branch on the exit status.
func presentCommandAction(ctx context.Context, cmd *cli.Command) error {
	keys, err := RequireArgs(cmd, 1)
	if err != nil {
		return err
	}

	checker, err := NewChecker(ctx, cmd)
	if err != nil {
		return err
	}

	var rows []map[string]interface{}
	var missing []string
	for _, key := range keys {
		ok, err := checker.Present(ctx, key)
		if err != nil {
			return err
		}
		if !ok {
			missing = append(missing, key)
		}
		rows = append(rows, map[string]interface{}{
			"key":     key,
			"present": ok,
		})
	}

	if err := Emit(cmd, []string{"key", "present"}, rows); err != nil {
		return err
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing: %s", strings.Join(missing, ", "))
	}
	return nil
}

func presentCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "present",
		Usage:     "check that keys hold an entry",
		ArgsUsage: "KEY...",
		Action:    presentCommandAction,
		Meta:      meta,
	}).Build()
}
