// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Command docgen renders docs/commands/*.md into man pages under
// docs/man/share/man1 and tldr pages under docs/tldr.
package main

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	md2man "github.com/cpuguy83/go-md2man/v2/md2man"
)

const projectURL = "https://github.com/staranto/freshctl"

type options struct {
	Root          string
	Binary        string
	OnlyIfChanged bool
}

func main() {
	var opts options
	flag.StringVar(&opts.Root, "root", ".", "repo root")
	flag.StringVar(&opts.Binary, "bin", "freshctl", "binary name used in page names")
	flag.BoolVar(&opts.OnlyIfChanged, "only-if-changed", true, "only write files if content changed")
	flag.Parse()

	n, err := generate(opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("rendered %d commands\n", n)
}

// generate renders every command doc and returns how many were processed.
func generate(opts options) (int, error) {
	commandsDir := filepath.Join(opts.Root, "docs", "commands")
	manDir := filepath.Join(opts.Root, "docs", "man", "share", "man1")
	tldrDir := filepath.Join(opts.Root, "docs", "tldr")

	for _, dir := range []string{manDir, tldrDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("creating output dir %s: %w", dir, err)
		}
	}

	entries, err := os.ReadDir(commandsDir)
	if err != nil {
		return 0, fmt.Errorf("reading commands dir %s: %w", commandsDir, err)
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".md") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	if len(names) == 0 {
		return 0, fmt.Errorf("no command markdown found under %s", commandsDir)
	}

	for _, name := range names {
		cmd := strings.TrimSuffix(name, ".md")
		page := opts.Binary + "-" + cmd

		raw, err := os.ReadFile(filepath.Join(commandsDir, name))
		if err != nil {
			return 0, fmt.Errorf("reading %s: %w", name, err)
		}

		if err := writeFileIfChanged(filepath.Join(manDir, page+".1"), md2man.Render(raw), opts.OnlyIfChanged); err != nil {
			return 0, fmt.Errorf("writing man page for %s: %w", cmd, err)
		}

		doc := parseDoc(string(raw))
		tldr := doc.tldr(opts.Binary, cmd)
		if err := writeFileIfChanged(filepath.Join(tldrDir, page+".md"), []byte(tldr), opts.OnlyIfChanged); err != nil {
			return 0, fmt.Errorf("writing tldr page for %s: %w", cmd, err)
		}
	}

	return len(names), nil
}

func writeFileIfChanged(path string, data []byte, onlyIfChanged bool) error {
	if onlyIfChanged {
		old, err := os.ReadFile(path)
		switch {
		case err == nil:
			if bytes.Equal(bytes.TrimSpace(old), bytes.TrimSpace(data)) {
				return nil
			}
		case !errors.Is(err, fs.ErrNotExist):
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

var h1Re = regexp.MustCompile(`(?m)^#\s+(.+)$`)

type example struct {
	Desc string
	Cmd  string
}

// commandDoc is the subset of a command page that feeds its tldr page.
type commandDoc struct {
	Title    string
	Short    string
	Examples []example
}

func parseDoc(md string) commandDoc {
	var doc commandDoc
	if m := h1Re.FindStringSubmatch(md); m != nil {
		doc.Title = strings.TrimSpace(m[1])
	}
	doc.Short = firstParagraph(section(md, "short description"))
	if doc.Short == "" && doc.Title != "" {
		doc.Short = doc.Title + "."
	}
	doc.Examples = parseExamples(firstFence(section(md, "quick examples")))
	return doc
}

// section returns the text following the line that contains header, or ""
// when no such line exists. Matching is case-insensitive.
func section(md, header string) string {
	idx := strings.Index(strings.ToLower(md), header)
	if idx < 0 {
		return ""
	}
	rest := md[idx:]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		return rest[nl+1:]
	}
	return ""
}

func firstParagraph(text string) string {
	var parts []string
	sc := bufio.NewScanner(strings.NewReader(text))
	for sc.Scan() {
		ln := strings.TrimSpace(sc.Text())
		if ln == "" {
			if len(parts) > 0 {
				break
			}
			continue
		}
		if strings.HasPrefix(ln, "#") || strings.HasSuffix(ln, ":") {
			break
		}
		parts = append(parts, ln)
	}
	return strings.Join(parts, " ")
}

func firstFence(text string) string {
	const fence = "```"
	start := strings.Index(text, fence)
	if start < 0 {
		return ""
	}
	text = text[start+len(fence):]
	// Drop an info string such as ```sh.
	if nl := strings.IndexByte(text, '\n'); nl >= 0 {
		text = text[nl+1:]
	}
	end := strings.Index(text, fence)
	if end < 0 {
		return ""
	}
	return text[:end]
}

// parseExamples pairs each "# description" line with the command after it.
func parseExamples(code string) []example {
	var exs []example
	var desc string
	for _, ln := range strings.Split(code, "\n") {
		s := strings.TrimSpace(ln)
		switch {
		case s == "":
		case strings.HasPrefix(s, "#"):
			desc = strings.TrimSpace(strings.TrimPrefix(s, "#"))
		default:
			if desc == "" {
				desc = "Example"
			}
			exs = append(exs, example{Desc: desc, Cmd: strings.Join(strings.Fields(s), " ")})
			desc = ""
		}
	}
	return exs
}

func (d commandDoc) tldr(binary, cmd string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s-%s\n\n", binary, cmd)
	switch {
	case d.Short != "":
		fmt.Fprintf(&b, "> %s\n", d.Short)
	default:
		fmt.Fprintf(&b, "> %s %s\n", binary, cmd)
	}
	fmt.Fprintf(&b, "> More information: %s.\n\n", projectURL)

	exs := d.Examples
	if len(exs) == 0 {
		exs = []example{{Desc: "Show help for the command", Cmd: binary + " " + cmd + " --help"}}
	}
	for i, ex := range exs {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "- %s:\n\n`%s`\n", ex.Desc, ex.Cmd)
	}
	return b.String()
}
