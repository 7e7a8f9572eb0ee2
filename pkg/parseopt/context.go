// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parseopt

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// Mode selects optional parser behaviour. Modes are combined with |.
type Mode int

const (
	// KeepArgv0 keeps argv[0] as the first positional argument.
	KeepArgv0 Mode = 1 << iota
	// KeepDashDash keeps a "--" terminator as a positional argument.
	KeepDashDash
	// StopAtNonOption stops parsing at the first positional argument,
	// leaving it and everything after it untouched. Useful for commands
	// that dispatch on a subcommand name.
	StopAtNonOption
)

// Context holds the state of one parse over one argument vector. The
// vector is owned by the Context from Start until End returns; positional
// arguments are written back into it.
//
// A Context must not be used from more than one goroutine.
type Context struct {
	// Errors receives binding errors as they happen and, from Fparse,
	// unknown option errors. It defaults to os.Stderr.
	Errors io.Writer

	argv []string
	in   int // next argument to read
	out  int // next positional slot to write; out <= in

	opt    string // unconsumed rest of the current argument
	hasOpt bool

	mode Mode
}

// Start begins parsing argv. argv[0] is the program name and is never
// parsed.
func Start(argv []string, mode Mode) *Context {
	c := &Context{argv: argv, mode: mode}
	if len(argv) == 0 {
		return c
	}
	c.in = 1
	if mode&KeepArgv0 != 0 {
		c.out = 1
	}
	return c
}

// Step parses arguments until they run out, a "--" is seen, a positional
// argument is seen in StopAtNonOption mode, or an error occurs.
//
// A binding error (a missing or malformed value, or a callback failure) is
// written to c.Errors and returned as an *OptionError; the argument vector
// is then in an unspecified state. An unknown option is returned as an
// *UnknownOptionError without being reported, and the Context stays on the
// offending argument.
func (c *Context) Step(opts []Option) error {
	c.clearPending()
	table := entries(opts)
	for {
		switch res, err := c.next(table); res {
		case resultContinue:
		case resultStop:
			return nil
		default:
			return err
		}
	}
}

// End moves the arguments left unparsed by Step behind the positional
// arguments already collected, clears the slots after them and returns
// the number of positional arguments.
func (c *Context) End() int {
	n := c.out + copy(c.argv[c.out:], c.argv[c.in:])
	clear(c.argv[n:])
	c.in = len(c.argv)
	c.out = n
	c.clearPending()
	return n
}

// Args returns the positional arguments collected so far. After End it is
// the final positional argument list.
func (c *Context) Args() []string {
	return c.argv[:c.out]
}

// Arg returns the argument Step stopped on, or "" if there is none.
func (c *Context) Arg() string {
	if c.in >= len(c.argv) {
		return ""
	}
	return c.argv[c.in]
}

// Remaining returns the arguments Step has not consumed.
func (c *Context) Remaining() []string {
	return c.argv[c.in:]
}

// Pending returns the unparsed rest of the current short option group.
// After an unknown switch it starts with the offending character.
func (c *Context) Pending() string {
	if !c.hasOpt {
		return ""
	}
	return c.opt
}

// Keep moves the current argument to the positional arguments. It is meant
// for callers that pass unknown options through.
func (c *Context) Keep() {
	if c.in >= len(c.argv) {
		return
	}
	c.argv[c.out] = c.argv[c.in]
	c.out++
	c.in++
	c.clearPending()
}

// Skip drops the current argument.
func (c *Context) Skip() {
	if c.in >= len(c.argv) {
		return
	}
	c.in++
	c.clearPending()
}

func (c *Context) errors() io.Writer {
	if c.Errors == nil {
		return os.Stderr
	}
	return c.Errors
}

func (c *Context) setPending(s string) {
	c.opt = s
	c.hasOpt = s != ""
}

func (c *Context) clearPending() {
	c.opt = ""
	c.hasOpt = false
}

// Parse parses argv against opts and returns the number of positional
// arguments left at the front of argv. Errors are reported on stderr; the
// returned count is then the negative code of the error (see Code).
func Parse(argv []string, opts []Option, mode Mode) (int, error) {
	return Fparse(os.Stderr, argv, opts, mode)
}

// Fparse is like Parse but reports errors to w.
func Fparse(w io.Writer, argv []string, opts []Option, mode Mode) (int, error) {
	c := Start(argv, mode)
	c.Errors = w
	if err := c.Step(opts); err != nil {
		var unknown *UnknownOptionError
		if errors.As(err, &unknown) {
			fmt.Fprintf(w, "error: %v\n", unknown)
		}
		return Code(err), err
	}
	return c.End(), nil
}
