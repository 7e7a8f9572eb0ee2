// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parseopt

// Version is the version of the parseopt package. Table files may require a
// range of it.
const Version = "0.3.0"

// Kind is the type of an option table entry.
type Kind int

const (
	KindEnd Kind = iota // terminates a table
	KindGroup           // heading in usage output, never matched
	KindNumber          // -NUM, a leading run of digits
	KindInc             // increments an int
	KindString          // stores a string argument
	KindInteger         // stores a decimal integer argument
	KindCallback        // passes its argument to a ValueFunc
)

func (k Kind) String() string {
	switch k {
	case KindEnd:
		return "end"
	case KindGroup:
		return "group"
	case KindNumber:
		return "number"
	case KindInc:
		return "inc"
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindCallback:
		return "callback"
	default:
		return "unknown"
	}
}

// ArgPolicy controls whether an option takes an argument. The zero value
// means the argument is required.
type ArgPolicy int

const (
	OptionalArg ArgPolicy = 1 << iota // the argument may be omitted
	NoArg                             // the option never takes an argument
)

// ValueFunc is called for a KindCallback option. hasArg is false when the
// option was given without an argument.
type ValueFunc func(opt *Option, arg string, hasArg bool) error

// NumberFunc is called for a KindNumber option with the run of decimal
// digits that matched it.
type NumberFunc func(opt *Option, digits string) error

// Option is one entry of an option table.
type Option struct {
	Kind  Kind
	Short rune   // 0 if the option has no short form
	Long  string // "" if the option has no long form

	// Value is where the option stores its result: *int for KindInc and
	// KindInteger, *string for KindString. Callbacks may use it freely.
	Value any

	ArgHint string // shown as <ArgHint> in usage output
	Help    string
	Flags   ArgPolicy

	Func   ValueFunc  // KindCallback
	Number NumberFunc // KindNumber

	DefString string // KindString with OptionalArg, argument omitted
	DefInt    int    // KindInteger with OptionalArg, argument omitted
}

// End returns the table terminator.
func End() Option {
	return Option{Kind: KindEnd}
}

// Group returns a heading entry. An empty heading only adds a blank line to
// usage output.
func Group(heading string) Option {
	return Option{Kind: KindGroup, Help: heading}
}

// NumberCallback returns an entry matched by -NUM.
func NumberCallback(v any, help string, fn NumberFunc) Option {
	return Option{Kind: KindNumber, Value: v, Help: help, Flags: NoArg, Number: fn}
}

// Inc returns an option that increments *v each time it is given.
func Inc(short rune, long string, v *int, help string) Option {
	return Option{Kind: KindInc, Short: short, Long: long, Value: v, Help: help, Flags: NoArg}
}

// String returns an option that stores its argument in *v.
func String(short rune, long string, v *string, hint, help string) Option {
	return Option{Kind: KindString, Short: short, Long: long, Value: v, ArgHint: hint, Help: help}
}

// Integer returns an option that parses its argument into *v.
func Integer(short rune, long string, v *int, help string) Option {
	return Option{Kind: KindInteger, Short: short, Long: long, Value: v, ArgHint: "n", Help: help}
}

// Callback returns an option that hands its argument to fn.
func Callback(short rune, long string, v any, hint, help string, flags ArgPolicy, fn ValueFunc) Option {
	return Option{Kind: KindCallback, Short: short, Long: long, Value: v, ArgHint: hint, Help: help, Flags: flags, Func: fn}
}

// entries returns the part of opts before the terminator.
func entries(opts []Option) []Option {
	for i := range opts {
		if opts[i].Kind == KindEnd {
			return opts[:i]
		}
	}
	return opts
}
