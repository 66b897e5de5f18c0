// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/staranto/freshctl/internal/meta"
)

const bashCompletionScript = `# bash completion for freshctl
_freshctl()
{
    local cur prev cmd
    COMPREPLY=()
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "check date overlay payload present purge stamp completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local common="--color -c --filter -f --output -o --sort -s --titles -t --store --bucket --prefix --endpoint --region --profile --retries"

    case "$prev" in
        --policy|-p)
            COMPREPLY=( $(compgen -W "hourly daily monthly" -- "$cur") )
            return 0
            ;;
        --output|-o)
            COMPREPLY=( $(compgen -W "text json yaml" -- "$cur") )
            return 0
            ;;
        --store)
            COMPREPLY=( $(compgen -W "file memory s3" -- "$cur") )
            return 0
            ;;
    esac

    case "$cmd" in
        check)      local opts="$common --policy -p --fail-expired -x" ;;
        payload)    local opts="$common --path" ;;
        purge)      local opts="$common --hours" ;;
        date)       local opts="--time -T" ;;
        overlay)    local opts="--title" ;;
        completion) local opts="bash zsh" ;;
        *)          local opts="$common" ;;
    esac

    COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
}
complete -F _freshctl freshctl
`

const zshCompletionScript = `#compdef freshctl
_freshctl() {
  local -a cmds common
  cmds=(
    'check:check whether entries are stale'
    'date:print the current date'
    'overlay:render the location overlay page'
    'payload:print the payload stored under a key'
    'present:check that keys hold an entry'
    'purge:remove old file store entries'
    'stamp:store a payload with the current timestamp'
    'completion:generate shell completion script'
  )
  common=(
    '(-c --color)'{-c,--color}'[colored output]'
    '(-f --filter)'{-f,--filter}'[filter results]:filter'
    '(-o --output)'{-o,--output}'[output format]:format:(text json yaml)'
    '(-s --sort)'{-s,--sort}'[sort columns]:columns'
    '(-t --titles)'{-t,--titles}'[show titles]'
    '--store[entry store]:store:(file memory s3)'
    '--bucket[S3 bucket]:bucket'
    '--prefix[S3 key prefix]:prefix'
    '--endpoint[S3 endpoint]:url'
    '--region[AWS region]:region'
    '--profile[AWS profile]:profile'
    '--retries[maximum S3 request attempts]:retries'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'freshctl commands' cmds
    return
  fi

  case $words[2] in
    check)
      _arguments $common \
        '(-p --policy)'{-p,--policy}'[freshness policy]:policy:(hourly daily monthly)' \
        '(-x --fail-expired)'{-x,--fail-expired}'[fail when expired]' \
        '*:key'
      ;;
    payload)
      _arguments $common '--path[gjson path]:path' '1:key'
      ;;
    purge)
      _arguments $common '--hours[maximum age in hours]:hours'
      ;;
    date)
      _arguments '(-T --time)'{-T,--time}'[include time]'
      ;;
    overlay)
      _arguments '--title[page title]:title'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments $common '*:key'
      ;;
  esac
}

if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _freshctl freshctl
`

func CompletionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	if shell == "" {
		// Try to detect from SHELL.
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			shell = "zsh"
		case strings.HasSuffix(sh, "bash"):
			shell = "bash"
		}
	}

	switch shell {
	case "bash":
		fmt.Fprint(Out(cmd), bashCompletionScript)
	case "zsh":
		fmt.Fprint(Out(cmd), zshCompletionScript)
	default:
		return fmt.Errorf("usage: freshctl completion [bash|zsh]")
	}
	return nil
}

func CompletionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "freshctl completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: CompletionCommandAction,
	}
}
