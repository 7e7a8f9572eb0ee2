// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parseopt parses command-line arguments against a declarative
// table of options, in the style of git's parse-options.
//
// A table is a slice of Option values built with the constructors in this
// package:
//
//	var (
//	    verbose int
//	    output  string
//	    count   int
//	)
//	opts := []parseopt.Option{
//	    parseopt.Group("Common options"),
//	    parseopt.Inc('v', "verbose", &verbose, "be more verbose"),
//	    parseopt.String('o', "output", &output, "file", "write to file"),
//	    parseopt.Integer('n', "count", &count, "repeat n times"),
//	    parseopt.End(),
//	}
//
//	argc, err := parseopt.Parse(os.Args, opts, 0)
//	if err != nil {
//	    os.Exit(129)
//	}
//	args := os.Args[:argc]
//
// # Syntax
//
// Short options may be bundled (-vv, -vo file) and take their value either
// attached (-ofile) or as the next argument (-o file). Long options take
// their value after '=' (--output=file) or as the next argument. A value
// taken from the next argument is used verbatim even when it starts with
// a dash. A bare "--" ends option processing; "-" is a positional argument.
//
// A NumberCallback entry matches a leading run of digits in a short option
// group, so -15 calls its function with "15".
//
// # Argument vector
//
// The argument vector is rewritten in place: after a successful parse the
// positional arguments occupy argv[:n], in their original order, and every
// slot after them holds the empty string. argv[0] is the program name; it
// is dropped unless KeepArgv0 is set.
//
// # Incremental parsing
//
// Start, Step and End expose the parse one stage at a time. Step returns an
// *UnknownOptionError without reporting it, so a caller can inspect the
// offending argument, try another table, or consume arguments itself before
// calling End.
package parseopt
