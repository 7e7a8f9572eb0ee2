// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"sort"

	"github.com/shayne/yargs"
	"github.com/yeetrun/parseopt/pkg/parseopt"
)

type CommandInfo struct {
	Name        string
	Description string
	Usage       string
	Examples    []string
	Hidden      bool
	Aliases     []string
}

type RunFlags struct {
	Table           string
	KeepArgv0       bool
	KeepDashDash    bool
	StopAtNonOption bool
	JSON            bool
}

// Mode returns the parser modes selected by the flags.
func (f RunFlags) Mode() parseopt.Mode {
	var m parseopt.Mode
	if f.KeepArgv0 {
		m |= parseopt.KeepArgv0
	}
	if f.KeepDashDash {
		m |= parseopt.KeepDashDash
	}
	if f.StopAtNonOption {
		m |= parseopt.StopAtNonOption
	}
	return m
}

type UsageFlags struct {
	Table string
}

type LintFlags struct {
	Quiet bool
}

type VersionFlags struct {
	JSON bool
}

type runFlagsParsed struct {
	Table           string `flag:"table" short:"t" help:"Option table file (.toml, .yaml)"`
	KeepArgv0       bool   `flag:"keep-argv0" help:"Keep ARGV[0] as the first positional argument"`
	KeepDashDash    bool   `flag:"keep-dashdash" help:"Keep a -- terminator in the positional arguments"`
	StopAtNonOption bool   `flag:"stop-at-non-option" help:"Stop parsing at the first positional argument"`
	JSON            bool   `flag:"json" help:"Print the result as JSON"`
}

type usageFlagsParsed struct {
	Table string `flag:"table" short:"t" help:"Option table file (.toml, .yaml)"`
}

type lintFlagsParsed struct {
	Quiet bool `flag:"quiet" short:"q" help:"Only print tables with problems"`
}

type versionFlagsParsed struct {
	JSON bool `flag:"json"`
}

const (
	CommandRun     = "run"
	CommandUsage   = "usage"
	CommandLint    = "lint"
	CommandVersion = "version"
)

var commandInfos = map[string]CommandInfo{
	CommandRun: {
		Name:        CommandRun,
		Description: "Parse an argument vector and print the option values",
		Usage:       "[--table FILE] [--keep-argv0] [--keep-dashdash] [--stop-at-non-option] [--json] -- ARGV...",
		Examples: []string{
			"parseopt run -- prog -bs value -i77 file",
			"parseopt run --table flags.toml --json -- prog --jobs=4 src",
			"parseopt run -- prog --help",
		},
	},
	CommandUsage: {
		Name:        CommandUsage,
		Description: "Print the usage message of an option table",
		Usage:       "[--table FILE]",
		Examples:    []string{"parseopt usage", "parseopt usage --table flags.yaml"},
	},
	CommandLint: {
		Name:        CommandLint,
		Description: "Check option table files for mistakes",
		Usage:       "[-q] FILE...",
		Examples:    []string{"parseopt lint flags.toml extra.yaml"},
		Aliases:     []string{"check"},
	},
	CommandVersion: {
		Name:        CommandVersion,
		Description: "Print the parseopt version",
		Usage:       "[--json]",
		Hidden:      true,
	},
}

func CommandNames() []string {
	names := make([]string, 0, len(commandInfos))
	for name := range commandInfos {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CommandInfos returns the metadata of every command, hidden ones included.
func CommandInfos() map[string]CommandInfo {
	return commandInfos
}

// SubCommandInfos returns the command metadata in the form yargs uses for
// help output.
func SubCommandInfos() map[string]yargs.SubCommandInfo {
	all := CommandInfos()
	infos := make(map[string]yargs.SubCommandInfo, len(all))
	for name, info := range all {
		infos[name] = toSubCommandInfo(name, info)
	}
	return infos
}

func toSubCommandInfo(name string, info CommandInfo) yargs.SubCommandInfo {
	return yargs.SubCommandInfo{
		Name:        name,
		Description: info.Description,
		Usage:       info.Usage,
		Examples:    info.Examples,
		Hidden:      info.Hidden,
		Aliases:     info.Aliases,
	}
}

func ParseRun(args []string) (RunFlags, []string, error) {
	parsed, err := parseFlags[runFlagsParsed](args)
	if err != nil {
		return RunFlags{}, nil, err
	}
	flags := RunFlags{
		Table:           parsed.Flags.Table,
		KeepArgv0:       parsed.Flags.KeepArgv0,
		KeepDashDash:    parsed.Flags.KeepDashDash,
		StopAtNonOption: parsed.Flags.StopAtNonOption,
		JSON:            parsed.Flags.JSON,
	}
	return flags, parsed.Args, nil
}

func ParseUsage(args []string) (UsageFlags, []string, error) {
	parsed, err := parseFlags[usageFlagsParsed](args)
	if err != nil {
		return UsageFlags{}, nil, err
	}
	return UsageFlags{Table: parsed.Flags.Table}, parsed.Args, nil
}

func ParseLint(args []string) (LintFlags, []string, error) {
	parseArgs, extraArgs := SplitArgsAtDoubleDash(args)
	parsed, err := parseFlags[lintFlagsParsed](parseArgs)
	if err != nil {
		return LintFlags{}, nil, err
	}
	argsOut := append(parsed.Args, extraArgs...)
	return LintFlags{Quiet: parsed.Flags.Quiet}, argsOut, nil
}

func ParseVersion(args []string) (VersionFlags, []string, error) {
	parsed, err := parseFlags[versionFlagsParsed](args)
	if err != nil {
		return VersionFlags{}, nil, err
	}
	return VersionFlags{JSON: parsed.Flags.JSON}, parsed.Args, nil
}

type parsedFlags[T any] struct {
	Flags T
	Args  []string
}

func parseFlags[T any](args []string) (parsedFlags[T], error) {
	result, err := yargs.ParseFlags[T](args)
	if err != nil {
		return parsedFlags[T]{}, err
	}
	argsOut := append([]string{}, result.Args...)
	if len(result.RemainingArgs) > 0 {
		argsOut = append(argsOut, result.RemainingArgs...)
	}
	return parsedFlags[T]{Flags: result.Flags, Args: argsOut}, nil
}

// SplitArgsAtDoubleDash splits args at the first "--", which is dropped.
func SplitArgsAtDoubleDash(args []string) ([]string, []string) {
	for i, arg := range args {
		if arg == "--" {
			if i+1 < len(args) {
				return args[:i], args[i+1:]
			}
			return args[:i], nil
		}
	}
	return args, nil
}

// StripCommand drops the command name yargs leaves in front of a handler's
// arguments.
func StripCommand(name string, args []string) []string {
	if len(args) > 0 && args[0] == name {
		return args[1:]
	}
	return args
}

func RequireArgsAtLeast(subcmd string, args []string, count int) error {
	if len(args) < count {
		return fmt.Errorf("'%s' requires at least %d argument(s), got %d", subcmd, count, len(args))
	}
	return nil
}
