// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/yeetrun/parseopt/pkg/cli"
	"github.com/yeetrun/parseopt/pkg/opttable"
	"golang.org/x/sync/errgroup"
)

const lintConcurrency = 8

var loadTableFn = opttable.Load

func (a *app) handleLint(ctx context.Context, args []string) error {
	flags, files, err := cli.ParseLint(cli.StripCommand(cli.CommandLint, args))
	if err != nil {
		return err
	}
	files = append(files, a.argv...)
	if err := cli.RequireArgsAtLeast(cli.CommandLint, files, 1); err != nil {
		return err
	}

	results := make([]error, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(lintConcurrency)
	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			_, results[i] = loadTableFn(file)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	bad := 0
	for i, file := range files {
		err := results[i]
		if err == nil {
			if !flags.Quiet {
				fmt.Fprintf(a.stdout, "%s: %s\n", file, color.GreenString("ok"))
			}
			continue
		}
		bad++
		msg := strings.TrimPrefix(err.Error(), file+": ")
		fmt.Fprintf(a.stdout, "%s: %s\n", file, strings.ReplaceAll(msg, "\n", "\n    "))
	}
	if bad > 0 {
		return fmt.Errorf("%d of %d tables have problems", bad, len(files))
	}
	return nil
}
