// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/freshctl/internal/meta"
	"github.com/staranto/freshctl/internal/store"
)

// purgeCommandAction removes file store entries older than --hours.
func purgeCommandAction(ctx context.Context, cmd *cli.Command) error {
	s, err := OpenStore(ctx, cmd)
	if err != nil {
		return err
	}
	f, ok := s.(*store.File)
	if !ok {
		return fmt.Errorf("purge only applies to the file store")
	}

	n, err := f.Purge(cmd.Int("hours"))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(Out(cmd), "removed %d entries\n", n)
	return err
}

func purgeCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:  "purge",
		Usage: "remove file store entries older than --hours",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "hours",
				Usage: "maximum entry age in hours, 0 disables purging",
				Sources: cli.NewValueSourceChain(
					cli.EnvVar("FRESHCTL_PURGE_HOURS"),
					yaml.YAML("purge.hours", altsrc.StringSourcer(meta.Config.Source)),
				),
				Value: 24 * 31,
				Validator: func(value int) error {
					return FlagValidators(value, NonNegativeValidator)
				},
			},
		},
		Action: purgeCommandAction,
		Meta:   meta,
	}).Build()
}
