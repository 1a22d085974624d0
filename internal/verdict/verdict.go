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

// Package verdict defines the nilability verdict ordering and the
// weakest-wins merge over classified exit points.
package verdict

import "iter"

// Verdict is the inferred nilability of a return value.
//
// The ordering runs from strongest to weakest: [NonNull] beats
// [Unspecified] beats [Nullable]. Merging always moves toward the
// weaker verdict, never back.
type Verdict uint8

//go:generate go tool stringer -type Verdict -linecomment
const (
	// NonNull means the value is provably always present.
	NonNull Verdict = iota // nonnull

	// Unspecified means there is insufficient evidence either way.
	Unspecified // unspecified

	// Nullable means the value can provably be absent.
	Nullable // nullable
)

// WeakerThan reports whether v is weaker than o in the verdict ordering.
func (v Verdict) WeakerThan(o Verdict) bool {
	return v > o
}

// Classification is the verdict for a single exit point.
//
// Valued distinguishes exits that produced an analyzable value from bare
// returns in a void context. Valueless exits are legal no-ops and carry
// no weight in [Merge].
type Classification struct {
	Verdict Verdict
	Valued  bool
}

// Merge folds classifications into the weakest verdict among all valued
// exit points.
//
// The accumulator starts at [NonNull] and can only weaken, so the result
// is the minimum element under the verdict ordering and does not depend
// on input order. The second result is false when no valued exit point
// was seen; callers must not conflate that with an [Unspecified] verdict.
func Merge(classifications iter.Seq[Classification]) (Verdict, bool) {
	acc, valued := NonNull, false

	for c := range classifications {
		if !c.Valued {
			continue
		}

		valued = true
		if c.Verdict.WeakerThan(acc) {
			acc = c.Verdict
		}
	}

	return acc, valued
}
