// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"

	"github.com/staranto/freshctl/internal/meta"
)

// payloadCommandAction prints the payload of KEY. With --path the payload is
// treated as JSON and only the gjson path result is printed.
func payloadCommandAction(ctx context.Context, cmd *cli.Command) error {
	args, err := RequireArgs(cmd, 1)
	if err != nil {
		return err
	}
	key := args[0]

	checker, err := NewChecker(ctx, cmd)
	if err != nil {
		return err
	}

	payload, err := checker.Payload(ctx, key)
	if err != nil {
		return err
	}

	if path := cmd.String("path"); path != "" {
		if !gjson.Valid(payload) {
			return fmt.Errorf("%s: payload is not JSON", key)
		}
		result := gjson.Get(payload, path)
		if !result.Exists() {
			return fmt.Errorf("%s: path %q not found in payload", key, path)
		}
		if result.Type == gjson.String {
			payload = result.Str
		} else {
			payload = result.Raw
		}
	}

	_, err = fmt.Fprintln(Out(cmd), payload)
	return err
}

func payloadCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "payload",
		Usage:     "print the payload stored under a key",
		ArgsUsage: "KEY",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "path",
				Usage: "gjson path to extract from a JSON payload",
				Validator: func(value string) error {
					return FlagValidators(value, JammedFlagValidator)
				},
			},
		},
		Action: payloadCommandAction,
		Meta:   meta,
	}).Build()
}
