// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package opttable loads parseopt option tables from TOML or YAML files.
//
// A table file names its options and the kind of value each one takes; Load
// turns it into a []parseopt.Option whose targets live in the returned
// Table, so a file can be used to parse arguments without writing Go code.
package opttable

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"github.com/yeetrun/parseopt/pkg/parseopt"
	"gopkg.in/yaml.v3"
)

// Entry types accepted in table files.
const (
	TypeGroup   = "group"
	TypeInc     = "inc"
	TypeString  = "string"
	TypeInteger = "integer"
	TypeList    = "list"
	TypeNumber  = "number"
)

var (
	// ErrUnsupportedFormat is returned for files that are neither TOML nor YAML.
	ErrUnsupportedFormat = errors.New("unsupported table format")

	// ErrVersion is returned when a table requires a different parseopt version.
	ErrVersion = errors.New("table requires a different parseopt version")
)

// File is the on-disk form of a table.
type File struct {
	Requires string   `toml:"requires,omitempty" yaml:"requires,omitempty"`
	Usage    []string `toml:"usage,omitempty" yaml:"usage,omitempty"`
	Options  []Entry  `toml:"option" yaml:"options"`
}

// Entry is one [[option]] of a table file.
type Entry struct {
	Type     string `toml:"type" yaml:"type"`
	Short    string `toml:"short,omitempty" yaml:"short,omitempty"`
	Long     string `toml:"long,omitempty" yaml:"long,omitempty"`
	Hint     string `toml:"hint,omitempty" yaml:"hint,omitempty"`
	Help     string `toml:"help,omitempty" yaml:"help,omitempty"`
	Optional bool   `toml:"optional,omitempty" yaml:"optional,omitempty"`
	Default  string `toml:"default,omitempty" yaml:"default,omitempty"`
}

// Value is the result bound to one table entry.
type Value struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// Table is a loaded option table together with the values it binds.
type Table struct {
	Path    string
	Usage   []string
	Options []parseopt.Option

	slots []slot
}

// slot holds the target of one non-group entry.
type slot struct {
	entry int // index into Options
	typ   string
	def   string
	n     int
	s     string
	list  []string
}

// Load reads a table file. The format is chosen by extension: .toml, or
// .yaml and .yml.
func Load(path string) (*Table, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(path, bs)
}

// Decode builds a table from the contents of a table file named name.
func Decode(name string, data []byte) (*Table, error) {
	var f File
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		if _, err := toml.Decode(string(data), &f); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", name, err)
		}
	default:
		return nil, fmt.Errorf("%s: %w", name, ErrUnsupportedFormat)
	}

	t, err := New(&f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	t.Path = name
	return t, nil
}

// New builds a table from its decoded form.
func New(f *File) (*Table, error) {
	if err := checkRequires(f.Requires); err != nil {
		return nil, err
	}

	t := &Table{Usage: f.Usage}
	var errs []error
	for i, e := range f.Options {
		if err := t.add(e); err != nil {
			errs = append(errs, fmt.Errorf("option %d: %w", i, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	// Targets are taken from t.slots, which no longer grows.
	for i := range t.slots {
		t.bind(&t.slots[i])
	}
	if err := parseopt.Check(t.Options); err != nil {
		return nil, err
	}
	return t, nil
}

func checkRequires(requires string) error {
	if requires == "" {
		return nil
	}
	c, err := semver.NewConstraint(requires)
	if err != nil {
		return fmt.Errorf("invalid requires %q: %w", requires, err)
	}
	v, err := semver.NewVersion(parseopt.Version)
	if err != nil {
		return err
	}
	if !c.Check(v) {
		return fmt.Errorf("%w: %s does not satisfy %q", ErrVersion, v, requires)
	}
	return nil
}

// add appends the option for e without its target.
func (t *Table) add(e Entry) error {
	o := parseopt.Option{Long: e.Long, ArgHint: e.Hint, Help: e.Help}
	if e.Short != "" {
		r, size := utf8.DecodeRuneInString(e.Short)
		if r == utf8.RuneError || size != len(e.Short) {
			return fmt.Errorf("short name %q is not a single character", e.Short)
		}
		o.Short = r
	}
	if e.Optional {
		o.Flags = parseopt.OptionalArg
	}
	if e.Default != "" && !e.Optional {
		return fmt.Errorf("default %q needs optional = true", e.Default)
	}

	switch e.Type {
	case TypeGroup:
		o.Kind = parseopt.KindGroup
		t.Options = append(t.Options, o)
		return nil
	case TypeInc:
		o.Kind = parseopt.KindInc
		o.Flags |= parseopt.NoArg
	case TypeString:
		o.Kind = parseopt.KindString
		o.DefString = e.Default
	case TypeInteger:
		o.Kind = parseopt.KindInteger
		if o.ArgHint == "" {
			o.ArgHint = "n"
		}
		if e.Default != "" {
			n, err := strconv.Atoi(e.Default)
			if err != nil {
				return fmt.Errorf("default %q is not an integer", e.Default)
			}
			o.DefInt = n
		}
	case TypeList:
		o.Kind = parseopt.KindCallback
	case TypeNumber:
		o.Kind = parseopt.KindNumber
		o.Flags = parseopt.NoArg
	default:
		return fmt.Errorf("unknown type %q", e.Type)
	}

	t.slots = append(t.slots, slot{entry: len(t.Options), typ: e.Type, def: e.Default})
	t.Options = append(t.Options, o)
	return nil
}

func (t *Table) bind(s *slot) {
	o := &t.Options[s.entry]
	switch s.typ {
	case TypeInc, TypeInteger:
		o.Value = &s.n
	case TypeString:
		o.Value = &s.s
	case TypeList:
		o.Value = &s.list
		o.Func = appendValue(s.def)
	case TypeNumber:
		o.Value = &s.n
		o.Number = storeNumber
	}
}

// appendValue returns a callback that appends its argument, or def when
// the argument is omitted, to the option's list.
func appendValue(def string) parseopt.ValueFunc {
	return func(opt *parseopt.Option, arg string, hasArg bool) error {
		if !hasArg {
			arg = def
		}
		p := opt.Value.(*[]string)
		*p = append(*p, arg)
		return nil
	}
}

func storeNumber(opt *parseopt.Option, digits string) error {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return err
	}
	*opt.Value.(*int) = n
	return nil
}

// Values returns the current value of every option in table order.
func (t *Table) Values() []Value {
	vs := make([]Value, 0, len(t.slots))
	for i := range t.slots {
		s := &t.slots[i]
		v := Value{Name: Name(&t.Options[s.entry]), Type: s.typ}
		switch s.typ {
		case TypeString:
			v.Value = s.s
		case TypeList:
			v.Value = append([]string{}, s.list...)
		default:
			v.Value = s.n
		}
		vs = append(vs, v)
	}
	return vs
}

// Reset clears all bound values.
func (t *Table) Reset() {
	for i := range t.slots {
		s := &t.slots[i]
		s.n, s.s, s.list = 0, "", nil
	}
}

// Name renders the names of an option the way it is written on a command
// line, preferring the long form.
func Name(o *parseopt.Option) string {
	switch {
	case o.Kind == parseopt.KindNumber:
		return "-NUM"
	case o.Long != "":
		return "--" + o.Long
	case o.Short != 0:
		return "-" + string(o.Short)
	default:
		return ""
	}
}
