// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/staranto/freshctl/internal/clock"
	"github.com/staranto/freshctl/internal/meta"
)

func dateCommandAction(_ context.Context, cmd *cli.Command) error {
	_, err := fmt.Fprintln(Out(cmd), clock.CurrentDate(GetMeta(cmd).Clock, cmd.Bool("time")))
	return err
}

func dateCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:  "date",
		Usage: "print the current date as used in entry timestamps",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "time",
				Aliases:     []string{"T"},
				Usage:       "include hours and minutes",
				HideDefault: true,
			},
		},
		Action:    dateCommandAction,
		Meta:      meta,
		NoGlobals: true,
	}).Build()
}
