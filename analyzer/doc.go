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

// Package analyzer implements the nilinfer static analysis pass.
//
// # Overview
//
// Nilinfer deduces whether the return value of a function, method or
// interface method can be nil, by classifying every return statement in
// all known implementation bodies and merging the classifications with a
// conservative weakest-wins rule: a single nil-returning branch makes
// the whole declaration nullable, and a single unproven branch degrades
// a nonnull result to unspecified.
//
// # Example
//
//	func Lookup(m map[string]*Item, key string) *Item {
//	    if v, ok := m[key]; ok {
//	        return v
//	    }
//	    return nil // Return value of "Lookup" is inferred nullable
//	}
//
// Declarations already carrying a directive are skipped:
//
//	//nilinfer:nonnull
//	func Fresh() *Item { return newItem() }
//
// # Interface methods
//
// An interface method has no body of its own. Its verdict pools the
// return statements of every implementation in the package, so two
// conformers disagreeing on nilability resolve to the weaker verdict.
//
// # Scope
//
// Parameter, struct field and global variable nilability are matched
// but not yet inferred. Function literals are never analyzed; their
// nilability is carried on their type rather than their usage.
package analyzer
