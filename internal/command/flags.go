// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/freshctl/internal/config"
)

func init() {
	cfg, _ = config.Load()
}

var cfg config.Type

// NewGlobalFlags returns the flags shared by every subcommand. params[0] is
// the subcommand name, used to namespace config file lookups.
func NewGlobalFlags(params ...string) (flags []cli.Flag) {
	ns := params[0]

	flags = []cli.Flag{
		&cli.BoolWithInverseFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+"."+"color", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("color", altsrc.StringSourcer(cfg.Source)),
			),
			Value: false,
		},
		&cli.StringFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "comma-separated list of filters to apply to results",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+"."+"filter", altsrc.StringSourcer(cfg.Source)),
			),
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+"."+"output", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("output", altsrc.StringSourcer(cfg.Source)),
			),
			Value: "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.StringFlag{
			Name:    "sort",
			Aliases: []string{"s"},
			Usage:   "comma-separated list of columns to sort the results by",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+"."+"sort", altsrc.StringSourcer(cfg.Source)),
			),
		},
		&cli.BoolWithInverseFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Sources: cli.NewValueSourceChain(
				yaml.YAML(ns+"."+"titles", altsrc.StringSourcer(cfg.Source)),
				yaml.YAML("titles", altsrc.StringSourcer(cfg.Source)),
			),
			Value: false,
		},
	}

	return append(flags, NewStoreFlags(ns)...)
}

// NewStoreFlags returns the flags that select and configure the entry store.
func NewStoreFlags(ns string) []cli.Flag {
	return []cli.Flag{
		NameSpacedValueChainFlagFromConfigFile(ns, cfg.Source, &cli.StringFlag{
			Name:  "store",
			Usage: "entry store: file, memory or s3",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("FRESHCTL_STORE"),
			),
			Value: "file",
			Validator: func(value string) error {
				return FlagValidators(value, StoreValidator)
			},
		}),
		NameSpacedValueChainFlagFromConfigFile(ns, cfg.Source, &cli.StringFlag{
			Name:  "bucket",
			Usage: "S3 bucket holding entries (--store=s3)",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("FRESHCTL_BUCKET"),
			),
			Validator: func(value string) error {
				return FlagValidators(value, JammedFlagValidator)
			},
		}),
		NameSpacedValueChainFlagFromConfigFile(ns, cfg.Source, &cli.StringFlag{
			Name:  "prefix",
			Usage: "S3 key prefix for entries (--store=s3)",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("FRESHCTL_PREFIX"),
			),
		}),
		NameSpacedValueChainFlagFromConfigFile(ns, cfg.Source, &cli.StringFlag{
			Name:  "endpoint",
			Usage: "S3-compatible endpoint URL (--store=s3)",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("FRESHCTL_S3_ENDPOINT"),
			),
		}),
		&cli.StringFlag{
			Name:  "region",
			Usage: "AWS region (--store=s3)",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("AWS_REGION"),
				yaml.YAML("s3.region", altsrc.StringSourcer(cfg.Source)),
			),
		},
		&cli.IntFlag{
			Name:  "retries",
			Usage: "maximum S3 request attempts, 0 keeps the SDK default (--store=s3)",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("FRESHCTL_S3_RETRIES"),
				yaml.YAML("s3.retries", altsrc.StringSourcer(cfg.Source)),
			),
			Validator: func(value int) error {
				return FlagValidators(value, NonNegativeValidator)
			},
		},
		&cli.StringFlag{
			Name:  "profile",
			Usage: "AWS shared config profile (--store=s3)",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("AWS_PROFILE"),
				yaml.YAML("s3.profile", altsrc.StringSourcer(cfg.Source)),
			),
		},
	}
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config file
// sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	src = yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}
