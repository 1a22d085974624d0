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

package verdict_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	. "fillmore-labs.com/nilinfer/internal/verdict"
)

func valued(vs ...Verdict) []Classification {
	cs := make([]Classification, 0, len(vs))
	for _, v := range vs {
		cs = append(cs, Classification{Verdict: v, Valued: true})
	}

	return cs
}

func TestMerge(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name       string
		exits      []Classification
		want       Verdict
		wantValued bool
	}{
		{"empty", nil, NonNull, false},
		{"single_nullable", valued(Nullable), Nullable, true},
		{"single_nonnull", valued(NonNull), NonNull, true},
		{"weakest_wins", valued(NonNull, Nullable), Nullable, true},
		{"unspecified_weakens", valued(NonNull, Unspecified, NonNull), Unspecified, true},
		{"redeclaration_pool", valued(NonNull, Nullable, NonNull), Nullable, true},
		{"bare_returns_only", []Classification{{Verdict: Unspecified}, {Verdict: Unspecified}}, NonNull, false},
		{"bare_return_ignored", append(valued(NonNull), Classification{Verdict: Unspecified}), NonNull, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Merge(slices.Values(tt.exits))

			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantValued, ok)
		})
	}
}

// TestMergeOrderIndependent checks that the fold is commutative and
// associative: any permutation of the same exit points merges to the
// same verdict.
func TestMergeOrderIndependent(t *testing.T) {
	t.Parallel()

	exits := valued(NonNull, Unspecified, Nullable, NonNull)

	want, ok := Merge(slices.Values(exits))
	assert.True(t, ok)
	assert.Equal(t, Nullable, want)

	permuted := slices.Clone(exits)
	for range len(permuted) {
		permuted = append(permuted[1:], permuted[0])

		got, ok := Merge(slices.Values(permuted))
		assert.True(t, ok)
		assert.Equal(t, want, got)
	}
}

func TestWeakerThan(t *testing.T) {
	t.Parallel()

	assert.True(t, Nullable.WeakerThan(Unspecified))
	assert.True(t, Unspecified.WeakerThan(NonNull))
	assert.True(t, Nullable.WeakerThan(NonNull))
	assert.False(t, NonNull.WeakerThan(Nullable))
	assert.False(t, NonNull.WeakerThan(NonNull))
}

func TestSpelling(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "nonnull", NonNull.String())
	assert.Equal(t, "unspecified", Unspecified.String())
	assert.Equal(t, "nullable", Nullable.String())
}
