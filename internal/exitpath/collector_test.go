// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package exitpath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "fillmore-labs.com/nilinfer/internal/exitpath"
	"fillmore-labs.com/nilinfer/internal/testsource"
)

func TestCollect(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		src  string
		fn   string
		want int
	}{
		{
			name: "single",
			src:  `func f() *int { return nil }`,
			fn:   "f",
			want: 1,
		},
		{
			name: "nested_blocks",
			src: `func f(c bool) *int {
				if c {
					for {
						return nil
					}
				}
				switch {
				case !c:
					return nil
				}
				return nil
			}`,
			fn:   "f",
			want: 3,
		},
		{
			name: "skips_function_literals",
			src: `func f() func() *int {
				g := func() *int { return nil }
				return g
			}`,
			fn:   "f",
			want: 1,
		},
		{
			name: "no_returns",
			src:  `func f() *int { panic("unreachable") }`,
			fn:   "f",
			want: 0,
		},
		{
			name: "no_body",
			src:  `func f() *int`,
			fn:   "f",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, root := testsource.Parse(t, tt.src)
			_, decl := testsource.FuncDecl(t, root, tt.fn)

			exits := Collect(decl)

			assert.Len(t, exits, tt.want)

			// Restartable: a second traversal yields a fresh, equal sequence.
			assert.Equal(t, exits, Collect(decl))
		})
	}
}

func TestExitPointValue(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name      string
		src       string
		fn        string
		wantValue bool
	}{
		{"expression", `func f() *int { return nil }`, "f", true},
		{"naked_return", `func f() (r *int) { return }`, "f", true},
		{"bare_void", `func f() { return }`, "f", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, _, root := testsource.Parse(t, tt.src)
			_, decl := testsource.FuncDecl(t, root, tt.fn)

			exits := Collect(decl)
			require.Len(t, exits, 1)

			value, ok := exits[0].Value()

			assert.Equal(t, tt.wantValue, ok)
			assert.Equal(t, tt.wantValue, value != nil)
		})
	}
}
