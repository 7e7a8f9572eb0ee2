// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parseopt

import (
	"strings"
	"unicode/utf8"
)

// result is the outcome of parsing one argument.
type result int

const (
	resultContinue result = iota
	resultStop
	resultFail
)

// next parses the argument at c.in.
func (c *Context) next(table []Option) (result, error) {
	if c.in >= len(c.argv) {
		return resultStop, nil
	}
	arg := c.argv[c.in]

	if len(arg) < 2 || arg[0] != '-' {
		if c.mode&StopAtNonOption != 0 {
			return resultStop, nil
		}
		c.argv[c.out] = arg
		c.out++
		c.in++
		return resultContinue, nil
	}

	if arg[1] != '-' {
		c.setPending(arg[1:])
		for c.hasOpt {
			if err := c.parseShort(table); err != nil {
				return resultFail, err
			}
		}
		c.in++
		return resultContinue, nil
	}

	if len(arg) == 2 {
		if c.mode&KeepDashDash == 0 {
			c.in++
		}
		return resultStop, nil
	}

	if err := c.parseLong(table, arg[2:]); err != nil {
		return resultFail, err
	}
	c.in++
	return resultContinue, nil
}

// parseShort parses the first character of the pending short option group.
func (c *Context) parseShort(table []Option) error {
	r, size := utf8.DecodeRuneInString(c.opt)

	var num *Option
	for i := range table {
		o := &table[i]
		if o.Short != 0 && o.Short == r {
			c.setPending(c.opt[size:])
			return c.bind(o, true)
		}
		if o.Kind == KindNumber {
			num = o
		}
	}

	if num != nil && isDigit(c.opt[0]) {
		n := 1
		for n < len(c.opt) && isDigit(c.opt[n]) {
			n++
		}
		digits := c.opt[:n]
		c.setPending(c.opt[n:])
		return c.callNumber(num, digits)
	}

	if r == utf8.RuneError && size == 1 {
		// Not valid UTF-8; report the raw byte.
		r = rune(c.opt[0])
	}
	return &UnknownOptionError{Arg: c.argv[c.in], Switch: r}
}

// parseLong parses a long option; arg has its leading "--" removed.
func (c *Context) parseLong(table []Option, arg string) error {
	name, value, hasValue := strings.Cut(arg, "=")
	for i := range table {
		o := &table[i]
		if o.Long == "" || o.Long != name {
			continue
		}
		if hasValue {
			c.opt, c.hasOpt = value, true
		}
		return c.bind(o, false)
	}
	return &UnknownOptionError{Arg: c.argv[c.in]}
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}
