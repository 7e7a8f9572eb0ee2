// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parseopt

import (
	"errors"
	"fmt"
)

// Return codes of Parse, matching the classic C interface.
const (
	CodeError   = -1
	CodeUnknown = -2
	CodeNoMem   = -3
)

var (
	// ErrMissingValue is returned when an option's required value is absent.
	ErrMissingValue = errors.New("requires a value")

	// ErrDisallowedValue is returned when a value is given to an option that takes none.
	ErrDisallowedValue = errors.New("takes no value")

	// ErrNotNumeric is returned when an integer option is given something other than a decimal integer.
	ErrNotNumeric = errors.New("expects a numerical value")

	// ErrCallback is returned when a callback rejects its argument.
	ErrCallback = errors.New("callback failed")

	// ErrUnknownOption is returned when no table entry matches an option.
	ErrUnknownOption = errors.New("unknown option")

	// ErrNoMemory is the allocation failure of the classic interface. Parse
	// never allocates while scanning, so it is only reported by Code.
	ErrNoMemory = errors.New("out of memory")
)

// OptionError is returned when a matched option cannot bind its value.
type OptionError struct {
	Option *Option
	Short  bool   // the option was matched by its short name
	Value  string // the offending value, if any
	Err    error  // one of the sentinel errors above
	Cause  error  // the error returned by a callback, if any
}

func (e *OptionError) Error() string {
	reason := e.Err.Error()
	if e.Cause != nil {
		reason = fmt.Sprintf("%s: %v", reason, e.Cause)
	}
	if e.Option.Kind == KindNumber {
		return fmt.Sprintf("number '%s' %s", e.Value, reason)
	}
	if e.Short {
		return fmt.Sprintf("switch '%c' %s", e.Option.Short, reason)
	}
	return fmt.Sprintf("option '%s' %s", e.Option.Long, reason)
}

func (e *OptionError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

// UnknownOptionError is returned when an argument matches no option.
type UnknownOptionError struct {
	Arg    string // the whole argument, e.g. "--frobnicate" or "-xyz"
	Switch rune   // the unmatched character of a short option group, 0 for long options
}

func (e *UnknownOptionError) Error() string {
	if e.Switch == 0 {
		return fmt.Sprintf("unknown option '%s'", e.Arg)
	}
	return fmt.Sprintf("unknown switch '%c'", e.Switch)
}

func (e *UnknownOptionError) Unwrap() error {
	return ErrUnknownOption
}

// Code maps an error returned by this package to the classic negative
// return code. It returns 0 for nil.
func Code(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrUnknownOption):
		return CodeUnknown
	case errors.Is(err, ErrNoMemory):
		return CodeNoMem
	default:
		return CodeError
	}
}
