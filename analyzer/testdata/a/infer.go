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

package a

type Item struct{ Name string }

//nilinfer:nonnull
func fresh() *Item { return &Item{} }

func Relay() *Item { // want `Return value of "Relay" is inferred nonnull`
	return fresh()
}

func Lookup(m map[string]*Item, key string) *Item { // want `Return value of "Lookup" is inferred nullable`
	if v, ok := m[key]; ok {
		return v
	}

	return nil
}

func Greeting(loud bool) any { // want `Return value of "Greeting" is inferred nonnull`
	if loud {
		return "HELLO"
	}

	return "hello"
}

func Pick(items []*Item) *Item { // want `Return value of "Pick" is inferred unspecified`
	return items[0]
}

func Empty() any { // want `Return value of "Empty" is inferred nullable`
	return (*Item)(nil)
}

//nilinfer:nullable
func Cached() *Item { return nil }

func Count(items []*Item) int {
	return len(items)
}

//nolint:nilinfer
func Suppressed() *Item { return nil }
