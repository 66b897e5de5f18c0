// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/staranto/freshctl/internal/freshness"
	"github.com/staranto/freshctl/internal/meta"
)

var checkColumns = []string{"key", "policy", "status", "expired", "stamp", "age"}

// checkCommandAction judges each key under --policy. Missing and malformed
// entries are listed as expired rather than aborting the run.
func checkCommandAction(ctx context.Context, cmd *cli.Command) error {
	keys, err := RequireArgs(cmd, 1)
	if err != nil {
		return err
	}

	policy, err := freshness.ParsePolicy(cmd.String("policy"))
	if err != nil {
		return err
	}

	checker, err := NewChecker(ctx, cmd)
	if err != nil {
		return err
	}
	now := checker.Now()

	var rows []map[string]interface{}
	var expired []string
	for _, key := range keys {
		res, err := checker.Check(ctx, policy, key)
		if err != nil && !errors.Is(err, freshness.ErrNotFound) && !errors.Is(err, freshness.ErrMalformedEntry) {
			return err
		}

		row := map[string]interface{}{
			"key":     key,
			"policy":  policy.String(),
			"status":  res.Status.String(),
			"expired": res.Expired,
			"stamp":   res.Entry.Stamp,
			"age":     "",
		}
		if !res.Entry.Time.IsZero() {
			row["age"] = humanize.RelTime(res.Entry.Time, now, "ago", "from now")
		}
		rows = append(rows, row)

		if res.Expired {
			expired = append(expired, key)
		}
	}

	if err := Emit(cmd, checkColumns, rows); err != nil {
		return err
	}

	if cmd.Bool("fail-expired") && len(expired) > 0 {
		return fmt.Errorf("expired: %s", strings.Join(expired, ", "))
	}
	return nil
}

func checkCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "check",
		Usage:     "check whether entries are stale",
		ArgsUsage: "KEY...",
		Flags: []cli.Flag{
			NameSpacedValueChainFlagFromConfigFile("check", meta.Config.Source, &cli.StringFlag{
				Name:    "policy",
				Aliases: []string{"p"},
				Usage:   "freshness policy: hourly, daily or monthly",
				Sources: cli.NewValueSourceChain(
					cli.EnvVar("FRESHCTL_POLICY"),
				),
				Value: "hourly",
				Validator: func(value string) error {
					return FlagValidators(value, PolicyValidator)
				},
			}),
			&cli.BoolFlag{
				Name:        "fail-expired",
				Aliases:     []string{"x"},
				Usage:       "exit non-zero when any entry is expired",
				HideDefault: true,
			},
		},
		Action: checkCommandAction,
		Meta:   meta,
	}).Build()
}
