// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parseopt

import (
	"errors"
	"fmt"
	"strings"
)

// Check reports mistakes in an option table that would otherwise only show
// up while parsing, or never: duplicate names, options without a name,
// targets of the wrong type, missing callbacks and entries after the
// terminator.
func Check(opts []Option) error {
	var errs []error
	shorts := make(map[rune]int)
	longs := make(map[string]int)

	table := entries(opts)
	if len(table) < len(opts)-1 {
		errs = append(errs, fmt.Errorf("entry %d: %d entries after the terminator", len(table), len(opts)-len(table)-1))
	}

	for i := range table {
		o := &table[i]
		name := optionName(o)
		switch o.Kind {
		case KindGroup:
			if o.Short != 0 || o.Long != "" {
				errs = append(errs, fmt.Errorf("entry %d: group %q has an option name", i, o.Help))
			}
			continue
		case KindNumber:
			if o.Number == nil {
				errs = append(errs, fmt.Errorf("entry %d: %s has no number function", i, name))
			}
			if o.Short != 0 || o.Long != "" {
				errs = append(errs, fmt.Errorf("entry %d: number option cannot have a short or long name", i))
			}
			continue
		case KindInc, KindInteger:
			if p, ok := o.Value.(*int); !ok || p == nil {
				errs = append(errs, fmt.Errorf("entry %d: %s needs an *int target, got %T", i, name, o.Value))
			}
		case KindString:
			if p, ok := o.Value.(*string); !ok || p == nil {
				errs = append(errs, fmt.Errorf("entry %d: %s needs a *string target, got %T", i, name, o.Value))
			}
		case KindCallback:
			if o.Func == nil {
				errs = append(errs, fmt.Errorf("entry %d: %s has no callback", i, name))
			}
		default:
			errs = append(errs, fmt.Errorf("entry %d: unknown option kind %d", i, int(o.Kind)))
			continue
		}

		if o.Short == 0 && o.Long == "" {
			errs = append(errs, fmt.Errorf("entry %d: %s option has neither a short nor a long name", i, o.Kind))
		}
		if o.Flags&OptionalArg != 0 && o.Flags&NoArg != 0 {
			errs = append(errs, fmt.Errorf("entry %d: %s is both optional-argument and no-argument", i, name))
		}
		if strings.Contains(o.Long, "=") {
			errs = append(errs, fmt.Errorf("entry %d: long name %q contains '='", i, o.Long))
		}
		if o.Short == '-' {
			errs = append(errs, fmt.Errorf("entry %d: '-' cannot be a short name", i))
		}
		if o.Short != 0 {
			if j, ok := shorts[o.Short]; ok {
				errs = append(errs, fmt.Errorf("entry %d: short name '%c' already used by entry %d", i, o.Short, j))
			} else {
				shorts[o.Short] = i
			}
		}
		if o.Long != "" {
			if j, ok := longs[o.Long]; ok {
				errs = append(errs, fmt.Errorf("entry %d: long name %q already used by entry %d", i, o.Long, j))
			} else {
				longs[o.Long] = i
			}
		}
	}
	return errors.Join(errs...)
}

// optionName renders the names of an option for diagnostics.
func optionName(o *Option) string {
	switch {
	case o.Kind == KindNumber:
		return "-NUM"
	case o.Short != 0 && o.Long != "":
		return fmt.Sprintf("-%c/--%s", o.Short, o.Long)
	case o.Short != 0:
		return fmt.Sprintf("-%c", o.Short)
	case o.Long != "":
		return "--" + o.Long
	default:
		return "(unnamed)"
	}
}
