// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"slices"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/yeetrun/parseopt/pkg/cli"
	"github.com/yeetrun/parseopt/pkg/opttable"
	"github.com/yeetrun/parseopt/pkg/parseopt"
)

type runResult struct {
	Table  string           `json:"table"`
	Values []opttable.Value `json:"values"`
	Args   []string         `json:"args"`
}

func (a *app) handleRun(_ context.Context, args []string) error {
	flags, extra, err := cli.ParseRun(cli.StripCommand(cli.CommandRun, args))
	if err != nil {
		return err
	}
	argv := slices.Concat(extra, a.argv)
	if err := cli.RequireArgsAtLeast(cli.CommandRun, argv, 1); err != nil {
		return fmt.Errorf("%w (ARGV[0] is the program name)", err)
	}

	table, err := loadTable(flags.Table)
	if err != nil {
		return err
	}
	n, err := parseopt.Fparse(a.stderr, argv, table.Options, flags.Mode())
	if err != nil {
		return errReported
	}

	values := table.Values()
	if helpRequested(values) {
		parseopt.Usage(a.stdout, table.Usage, table.Options)
		return nil
	}

	res := runResult{Table: table.Path, Values: values, Args: argv[:n]}
	if flags.JSON {
		return writeJSON(a.stdout, res)
	}
	return printRunResult(a.stdout, res)
}

// helpRequested reports whether the table has a --help increment that was
// given.
func helpRequested(values []opttable.Value) bool {
	for _, v := range values {
		if v.Name == "--help" && v.Type == opttable.TypeInc {
			return v.Value.(int) > 0
		}
	}
	return false
}

func printRunResult(w io.Writer, res runResult) error {
	heading := color.New(color.Bold)
	heading.Fprintln(w, "Options:")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, v := range res.Values {
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", v.Name, v.Type, formatValue(v.Value))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	heading.Fprintf(w, "Arguments (%d):\n", len(res.Args))
	for i, arg := range res.Args {
		fmt.Fprintf(w, "  %d  %q\n", i, arg)
	}
	return nil
}

func formatValue(v any) string {
	switch v := v.(type) {
	case string:
		if v == "" {
			return "(not set)"
		}
		return fmt.Sprintf("%q", v)
	case []string:
		if len(v) == 0 {
			return "(not set)"
		}
		return fmt.Sprintf("%q", v)
	default:
		return fmt.Sprint(v)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *app) handleUsage(_ context.Context, args []string) error {
	flags, extra, err := cli.ParseUsage(cli.StripCommand(cli.CommandUsage, args))
	if err != nil {
		return err
	}
	if len(extra) > 0 {
		return fmt.Errorf("'%s' takes no arguments, got %q", cli.CommandUsage, extra)
	}
	table, err := loadTable(flags.Table)
	if err != nil {
		return err
	}
	parseopt.Usage(a.stdout, table.Usage, table.Options)
	return nil
}

func (a *app) handleVersion(_ context.Context, args []string) error {
	flags, _, err := cli.ParseVersion(cli.StripCommand(cli.CommandVersion, args))
	if err != nil {
		return err
	}
	if flags.JSON {
		return writeJSON(a.stdout, map[string]string{
			"version": parseopt.Version,
			"go":      runtime.Version(),
		})
	}
	fmt.Fprintf(a.stdout, "parseopt %s\n", parseopt.Version)
	return nil
}
