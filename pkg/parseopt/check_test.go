// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package parseopt

import (
	"strings"
	"testing"
)

func TestCheck(t *testing.T) {
	var (
		n int
		s string
	)
	noop := func(*Option, string, bool) error { return nil }
	noNumber := func(*Option, string) error { return nil }

	tests := []struct {
		name    string
		opts    []Option
		wantErr []string // substrings of the error, nil for a valid table
	}{
		{
			name: "valid table",
			opts: testOptions(&testValues{}),
		},
		{
			name: "valid table without terminator",
			opts: []Option{Inc('v', "verbose", &n, "")},
		},
		{
			name: "duplicate short name",
			opts: []Option{
				Inc('v', "verbose", &n, ""),
				String('v', "value", &s, "", ""),
			},
			wantErr: []string{"entry 1: short name 'v' already used by entry 0"},
		},
		{
			name: "duplicate long name",
			opts: []Option{
				Inc(0, "dry-run", &n, ""),
				Inc('n', "dry-run", &n, ""),
			},
			wantErr: []string{`entry 1: long name "dry-run" already used by entry 0`},
		},
		{
			name:    "unnamed option",
			opts:    []Option{{Kind: KindInc, Value: &n}},
			wantErr: []string{"entry 0: inc option has neither a short nor a long name"},
		},
		{
			name: "wrong targets",
			opts: []Option{
				{Kind: KindInc, Short: 'a', Value: &s},
				{Kind: KindString, Short: 'b', Value: &n},
				{Kind: KindInteger, Short: 'c'},
			},
			wantErr: []string{
				"entry 0: -a needs an *int target, got *string",
				"entry 1: -b needs a *string target, got *int",
				"entry 2: -c needs an *int target, got <nil>",
			},
		},
		{
			name: "named number options",
			opts: []Option{
				{Kind: KindNumber, Short: 'x', Number: noNumber},
				{Kind: KindNumber, Long: "count", Number: noNumber},
			},
			wantErr: []string{
				"entry 0: number option cannot have a short or long name",
				"entry 1: number option cannot have a short or long name",
			},
		},
		{
			name: "missing functions",
			opts: []Option{
				{Kind: KindCallback, Long: "cb"},
				{Kind: KindNumber},
			},
			wantErr: []string{
				"entry 0: --cb has no callback",
				"entry 1: -NUM has no number function",
			},
		},
		{
			name: "conflicting argument policy",
			opts: []Option{
				Callback('x', "xx", nil, "", "", OptionalArg|NoArg, noop),
			},
			wantErr: []string{"entry 0: -x/--xx is both optional-argument and no-argument"},
		},
		{
			name: "bad names",
			opts: []Option{
				Inc('-', "", &n, ""),
				Inc(0, "a=b", &n, ""),
			},
			wantErr: []string{
				"entry 0: '-' cannot be a short name",
				`entry 1: long name "a=b" contains '='`,
			},
		},
		{
			name:    "named group",
			opts:    []Option{{Kind: KindGroup, Long: "group", Help: "Heading"}},
			wantErr: []string{`entry 0: group "Heading" has an option name`},
		},
		{
			name:    "unknown kind",
			opts:    []Option{{Kind: Kind(9), Short: 'q'}},
			wantErr: []string{"entry 0: unknown option kind 9"},
		},
		{
			name: "entries after terminator",
			opts: []Option{
				Inc('a', "", &n, ""),
				End(),
				Inc('b', "", &n, ""),
				Inc('c', "", &n, ""),
			},
			wantErr: []string{"entry 1: 2 entries after the terminator"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(tt.opts)
			if len(tt.wantErr) == 0 {
				if err != nil {
					t.Fatalf("Check() error = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Check() succeeded, want errors %q", tt.wantErr)
			}
			lines := strings.Split(err.Error(), "\n")
			if len(lines) != len(tt.wantErr) {
				t.Errorf("Check() reported %d problems, want %d:\n%v", len(lines), len(tt.wantErr), err)
			}
			for _, want := range tt.wantErr {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("Check() error = %v, want it to contain %q", err, want)
				}
			}
		})
	}
}
