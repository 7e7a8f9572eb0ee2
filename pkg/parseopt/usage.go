// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parseopt

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

const (
	usageOptWidth = 24
	usageGap      = 2
)

// Usage writes a usage message for opts to w. The first usage line is
// printed after "usage:", the following non-empty lines after "or:", and
// everything after the first empty line as free text.
func Usage(w io.Writer, usage []string, opts []Option) {
	var b strings.Builder

	if len(usage) > 0 {
		fmt.Fprintf(&b, "usage: %s\n", usage[0])
		i := 1
		for ; i < len(usage) && usage[i] != ""; i++ {
			fmt.Fprintf(&b, "   or: %s\n", usage[i])
		}
		for ; i < len(usage); i++ {
			if usage[i] == "" {
				b.WriteString("\n")
				continue
			}
			fmt.Fprintf(&b, "    %s\n", usage[i])
		}
	}

	table := entries(opts)
	if len(table) == 0 || table[0].Kind != KindGroup {
		b.WriteString("\n")
	}

	for i := range table {
		o := &table[i]
		if o.Kind == KindGroup {
			b.WriteString("\n")
			if o.Help != "" {
				b.WriteString(o.Help)
				b.WriteString("\n")
			}
			continue
		}

		var line strings.Builder
		line.WriteString("  ")
		if o.Short != 0 {
			fmt.Fprintf(&line, "-%c", o.Short)
		}
		if o.Long != "" {
			if o.Short != 0 {
				line.WriteString(", ")
			} else {
				line.WriteString("    ")
			}
			fmt.Fprintf(&line, "--%s", o.Long)
		}
		if o.Kind == KindNumber {
			line.WriteString("-NUM")
		}
		if o.Flags&NoArg == 0 {
			fmt.Fprintf(&line, " <%s>", o.ArgHint)
		}

		b.WriteString(line.String())
		pad := usageOptWidth
		if pos := utf8.RuneCountInString(line.String()); pos <= usageOptWidth {
			pad -= pos
		} else {
			b.WriteString("\n")
		}
		b.WriteString(strings.Repeat(" ", pad+usageGap))
		b.WriteString(o.Help)
		b.WriteString("\n")
	}

	io.WriteString(w, b.String())
}

// PrintUsage writes a usage message for opts to stderr.
func PrintUsage(usage []string, opts []Option) {
	Usage(os.Stderr, usage, opts)
}
