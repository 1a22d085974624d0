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

package classify

import (
	"go/ast"
	"go/types"
)

// Innermost strips value-preserving wrappers from an expression until a
// fixed point is reached: parentheses and type conversions. The loop is
// over a closed set of wrapper kinds, so it terminates on any finite
// expression tree.
//
// Conversions preserve nilness for the values this package classifies:
// `(*T)(nil)` is still nil, `any(v)` is as absent as v.
func Innermost(info *types.Info, e ast.Expr) ast.Expr {
	for {
		switch x := e.(type) {
		case *ast.ParenExpr:
			e = x.X

		case *ast.CallExpr:
			if len(x.Args) != 1 || !isConversion(info, x) {
				return e
			}

			e = x.Args[0]

		default:
			return e
		}
	}
}

// isConversion reports whether the call expression is a type conversion.
func isConversion(info *types.Info, call *ast.CallExpr) bool {
	tv, ok := info.Types[call.Fun]

	return ok && tv.IsType()
}
