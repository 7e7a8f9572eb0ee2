// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command parseopt parses argument vectors with the parseopt package and
// prints what it found. It is used to try option tables out and to check
// table files.
package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/shayne/yargs"
	"github.com/yeetrun/parseopt/pkg/cli"
	"github.com/yeetrun/parseopt/pkg/opttable"
	"golang.org/x/term"
)

//go:embed demo.toml
var demoTable []byte

// errReported is returned by handlers that already wrote their error
// message.
var errReported = errors.New("error already reported")

var isTerminalFn = term.IsTerminal

type globalFlagsParsed struct {
	NoColor bool `flag:"no-color" help:"Disable colored output (NO_COLOR)"`
}

func parseGlobalFlags(args []string) (globalFlagsParsed, []string, error) {
	result, err := yargs.ParseKnownFlags[globalFlagsParsed](args, yargs.KnownFlagsOptions{})
	if err != nil {
		return globalFlagsParsed{}, nil, err
	}
	return result.Flags, result.RemainingArgs, nil
}

// app carries the output streams and the argument vector given after "--"
// to the subcommand handlers.
type app struct {
	stdout io.Writer
	stderr io.Writer
	argv   []string
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("parseopt: ")

	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		printCLIError(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Everything after "--" belongs to the vector being parsed; yargs must
	// not see a -h in it.
	head, argv := cli.SplitArgsAtDoubleDash(args)
	globalFlags, remaining, err := parseGlobalFlags(head)
	if err != nil {
		return err
	}
	configureColor(globalFlags.NoColor, stderr)

	a := &app{stdout: stdout, stderr: stderr, argv: argv}
	handlers := map[string]yargs.SubcommandHandler{
		cli.CommandRun:     a.handleRun,
		cli.CommandUsage:   a.handleUsage,
		cli.CommandLint:    a.handleLint,
		cli.CommandVersion: a.handleVersion,
	}
	return yargs.RunSubcommands(ctx, remaining, buildHelpConfig(), globalFlagsParsed{}, handlers)
}

func buildHelpConfig() yargs.HelpConfig {
	return yargs.HelpConfig{
		Command: yargs.CommandInfo{
			Name:        "parseopt",
			Description: "Parse argument vectors against git-style option tables.",
			Examples: []string{
				"parseopt run -- prog -bs value -i77 file",
				"parseopt run --table flags.toml --json -- prog --jobs=4 src",
				"parseopt usage --table flags.toml",
				"parseopt lint flags.toml other.yaml",
			},
		},
		SubCommands: cli.SubCommandInfos(),
	}
}

func configureColor(noColor bool, w io.Writer) {
	if noColor {
		color.NoColor = true
		return
	}
	f, ok := w.(*os.File)
	if !ok || !isTerminalFn(int(f.Fd())) {
		color.NoColor = true
	}
}

func printCLIError(w io.Writer, err error) {
	if err == nil || errors.Is(err, errReported) {
		return
	}
	fmt.Fprintf(w, "%s %v\n", color.New(color.FgRed, color.Bold).Sprint("error:"), err)
}

// loadTable returns the table in path, or the built-in demo table.
func loadTable(path string) (*opttable.Table, error) {
	if path == "" {
		return opttable.Decode("demo.toml", demoTable)
	}
	return opttable.Load(path)
}
