// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parseopt

import (
	"fmt"
	"log"
	"strconv"
)

// fatalf reports a broken option table. Tests replace it.
var fatalf = log.Fatalf

// bind applies a matched option. short reports whether it was matched by
// its short name; the pending value, if any, is the attached argument.
func (c *Context) bind(o *Option, short bool) error {
	if !short && c.hasOpt {
		if o.Kind == KindInc || o.Kind == KindCallback && o.Flags&NoArg != 0 {
			return c.optionError(o, short, c.opt, ErrDisallowedValue, nil)
		}
	}

	optional := o.Flags&OptionalArg != 0
	switch o.Kind {
	case KindInc:
		p, ok := o.Value.(*int)
		if !ok || p == nil {
			return c.brokenTable(o)
		}
		*p++
		return nil

	case KindString:
		p, ok := o.Value.(*string)
		if !ok || p == nil {
			return c.brokenTable(o)
		}
		if optional && !c.hasOpt {
			*p = o.DefString
			return nil
		}
		v, err := c.value(o, short)
		if err != nil {
			return err
		}
		*p = v
		return nil

	case KindInteger:
		p, ok := o.Value.(*int)
		if !ok || p == nil {
			return c.brokenTable(o)
		}
		if optional && !c.hasOpt {
			*p = o.DefInt
			return nil
		}
		v, err := c.value(o, short)
		if err != nil {
			return err
		}
		n, ok := parseInt(v)
		if !ok {
			return c.optionError(o, short, v, ErrNotNumeric, nil)
		}
		*p = n
		return nil

	case KindCallback:
		if o.Func == nil {
			return c.brokenTable(o)
		}
		if o.Flags&NoArg != 0 || optional && !c.hasOpt {
			if err := o.Func(o, "", false); err != nil {
				return c.optionError(o, short, "", ErrCallback, err)
			}
			return nil
		}
		v, err := c.value(o, short)
		if err != nil {
			return err
		}
		if err := o.Func(o, v, true); err != nil {
			return c.optionError(o, short, v, ErrCallback, err)
		}
		return nil

	default:
		return c.brokenTable(o)
	}
}

// callNumber passes a run of digits to a -NUM option.
func (c *Context) callNumber(o *Option, digits string) error {
	if o.Number == nil {
		return c.brokenTable(o)
	}
	if err := o.Number(o, digits); err != nil {
		return c.optionError(o, true, digits, ErrCallback, err)
	}
	return nil
}

// value takes the option's argument: the attached value if there is one,
// otherwise the whole next argument.
func (c *Context) value(o *Option, short bool) (string, error) {
	if c.hasOpt {
		v := c.opt
		c.clearPending()
		return v, nil
	}
	if c.in+1 < len(c.argv) {
		c.in++
		return c.argv[c.in], nil
	}
	return "", c.optionError(o, short, "", ErrMissingValue, nil)
}

func (c *Context) optionError(o *Option, short bool, value string, sentinel, cause error) error {
	err := &OptionError{Option: o, Short: short, Value: value, Err: sentinel, Cause: cause}
	fmt.Fprintf(c.errors(), "error: %v\n", err)
	return err
}

// brokenTable handles an entry that cannot be applied: an unknown kind, a
// missing target or a missing function. Check reports these up front.
func (c *Context) brokenTable(o *Option) error {
	fatalf("fatal: should not happen (%s option %s)", o.Kind, optionName(o))
	return fmt.Errorf("parseopt: cannot apply %s option %s", o.Kind, optionName(o))
}

// parseInt accepts an optional sign followed by decimal digits.
func parseInt(s string) (int, bool) {
	digits := s
	if digits != "" && (digits[0] == '+' || digits[0] == '-') {
		digits = digits[1:]
	}
	if digits == "" {
		return 0, false
	}
	for i := 0; i < len(digits); i++ {
		if !isDigit(digits[i]) {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
