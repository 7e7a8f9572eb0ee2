// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command helloworld greets from an option table built in Go.
//
//	helloworld [-v] [-n <name>] [-NUM] [--] [WORD...]
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/yeetrun/parseopt/pkg/parseopt"
)

var usage = []string{
	"helloworld [-v] [-n <name>] [-NUM] [WORD...]",
	"",
	"Prints a greeting NUM times, followed by the WORDs.",
}

func main() {
	var (
		verbose, help int
		name          = "World"
		count         = 1
	)
	opts := []parseopt.Option{
		parseopt.Inc('v', "verbose", &verbose, "be more verbose"),
		parseopt.Inc('h', "help", &help, "display this help and exit"),
		parseopt.String('n', "name", &name, "name", "who to greet"),
		parseopt.NumberCallback(&count, "greet NUM times", func(opt *parseopt.Option, digits string) error {
			n, err := strconv.Atoi(digits)
			if err != nil {
				return err
			}
			*opt.Value.(*int) = n
			return nil
		}),
		parseopt.End(),
	}
	if err := parseopt.Check(opts); err != nil {
		log.Fatal(err)
	}

	n, err := parseopt.Parse(os.Args, opts, 0)
	if err != nil {
		parseopt.PrintUsage(usage, opts)
		os.Exit(129)
	}
	if help > 0 {
		parseopt.Usage(os.Stdout, usage, opts)
		return
	}

	words := os.Args[:n]
	if verbose > 0 {
		log.Printf("greeting %s %d time(s), %d word(s)", name, count, len(words))
	}
	for range count {
		fmt.Printf("Hello, %s!", name)
		if len(words) > 0 {
			fmt.Printf(" %s", strings.Join(words, " "))
		}
		fmt.Println()
	}
}
