// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/staranto/freshctl/internal/meta"
	"github.com/staranto/freshctl/internal/overlay"
)

// overlayCommandAction renders a host page with the location lightbox opened.
func overlayCommandAction(_ context.Context, cmd *cli.Command) error {
	page := overlay.NewPage(cmd.String("title"), !cmd.Bool("bare"))
	if err := overlay.OpenLocationFrame(page); err != nil {
		return err
	}
	return page.Render(Out(cmd))
}

func overlayCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:  "overlay",
		Usage: "render a page with the location selection overlay open",
		Flags: []cli.Flag{
			NameSpacedValueChainFlagFromConfigFile("overlay", meta.Config.Source, &cli.StringFlag{
				Name:  "title",
				Usage: "page title",
				Value: "Location",
			}),
			&cli.BoolFlag{
				Name:        "bare",
				Usage:       "render a page without the lightbox container",
				HideDefault: true,
				Hidden:      true,
			},
		},
		Action:    overlayCommandAction,
		Meta:      meta,
		NoGlobals: true,
	}).Build()
}
