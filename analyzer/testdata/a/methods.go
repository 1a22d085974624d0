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

type Registry struct {
	items map[string]*Item
}

func (r *Registry) Get(key string) *Item { // want `Return value of "Get" is inferred unspecified`
	return r.items[key]
}

func (r *Registry) Any() *Item { // want `Return value of "Any" is inferred nullable`
	for _, it := range r.items {
		return it
	}

	return nil
}

func coalesce(primary, backup *Item) (r *Item) { // want `Return value of "coalesce" is inferred unspecified`
	r = primary
	if r == nil {
		r = backup
	}

	return
}
