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

package decl

import (
	"go/ast"
	"go/types"

	"fillmore-labs.com/nilinfer/internal/exitpath"
)

// ExitPoints returns the pooled exit points for one canonical
// declaration.
//
// A declaration with its own body is inspected alone; its presence in an
// implementation list never counts it a second time. A body-less
// declaration pools the exit points of every known implementation body,
// in declaration order. A body-less declaration without implementations
// yields an empty pool, which callers surface as "no evidence".
func (ix *Index) ExitPoints(obj *types.Func) []exitpath.ExitPoint {
	if c, ok := ix.funcs[obj]; ok {
		if fn := c.Node().(*ast.FuncDecl); fn.Body != nil {
			return exitpath.Collect(c)
		}

		return nil
	}

	var exits []exitpath.ExitPoint
	for _, c := range ix.impls[obj] {
		exits = append(exits, exitpath.Collect(c)...)
	}

	return exits
}
