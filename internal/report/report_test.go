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

package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fillmore-labs.com/nilinfer/internal/config"
	"fillmore-labs.com/nilinfer/internal/verdict"
)

func TestRender(t *testing.T) {
	t.Parallel()

	all := config.NewBitMask(config.ReportUnspecified | config.ReportNoEvidence)

	tests := [...]struct {
		name     string
		finding  Finding
		behavior config.Behaviors
		want     string
		wantOK   bool
	}{
		{
			name:     "nullable",
			finding:  Finding{Name: "Lookup", Verdict: verdict.Nullable, Evidence: true, Exits: 2},
			behavior: config.Behaviors{},
			want:     `Return value of "Lookup" is inferred nullable`,
			wantOK:   true,
		},
		{
			name:     "unspecified_reported",
			finding:  Finding{Name: "Pick", Verdict: verdict.Unspecified, Evidence: true, Exits: 1},
			behavior: all,
			want:     `Return value of "Pick" is inferred unspecified`,
			wantOK:   true,
		},
		{
			name:     "unspecified_suppressed",
			finding:  Finding{Name: "Pick", Verdict: verdict.Unspecified, Evidence: true, Exits: 1},
			behavior: config.Behaviors{},
			wantOK:   false,
		},
		{
			name:     "bare_returns",
			finding:  Finding{Name: "Reset", Exits: 1},
			behavior: all,
			want:     `"Reset" has only bare return statements`,
			wantOK:   true,
		},
		{
			name:     "no_returns",
			finding:  Finding{Name: "Must"},
			behavior: all,
			want:     `"Must" has no return statements`,
			wantOK:   true,
		},
		{
			name:     "no_evidence_suppressed",
			finding:  Finding{Name: "Must"},
			behavior: config.Behaviors{},
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := render(tt.finding, tt.behavior)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindingLogValue(t *testing.T) {
	t.Parallel()

	f := Finding{
		Name:     "Find",
		FullName: "(test.mapFinder).Find",
		Verdict:  verdict.Nullable,
		Evidence: true,
		Exits:    3,
	}

	attrs := f.LogValue().Group()
	assert.Len(t, attrs, 4)
	assert.Equal(t, "(test.mapFinder).Find", attrs[0].Value.String())
}
