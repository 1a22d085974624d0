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

// Package exitpath collects the value-producing exit points of one
// concrete function body.
package exitpath

import (
	"go/ast"

	"golang.org/x/tools/go/ast/inspector"
)

// ExitPoint is one return statement inside exactly one concrete body.
type ExitPoint struct {
	// Return is the collected return statement.
	Return *ast.ReturnStmt

	// sig is the type of the enclosing function, used to resolve naked
	// returns to their named result variables.
	sig *ast.FuncType
}

// Value resolves the expression this exit point produces for the first
// result position: the first result expression, or the named result
// variable for a naked return. The second result is false for a bare
// return in a void context, which produces no value.
func (e ExitPoint) Value() (ast.Expr, bool) {
	if len(e.Return.Results) > 0 {
		return e.Return.Results[0], true
	}

	// A naked return produces the named result variables.
	if e.sig != nil && e.sig.Results != nil && len(e.sig.Results.List) > 0 {
		if names := e.sig.Results.List[0].Names; len(names) > 0 {
			return names[0], true
		}
	}

	return nil, false
}

// Collect walks the body of one function declaration and gathers every
// return statement in source order. Nested function literals are not
// descended into; their exits belong to a different declaration.
//
// Each call produces a fresh sequence. A declaration without a body
// yields nil.
func Collect(decl inspector.Cursor) []ExitPoint {
	fn, ok := decl.Node().(*ast.FuncDecl)
	if !ok || fn.Body == nil {
		return nil
	}

	var exits []ExitPoint

	types := []ast.Node{
		(*ast.ReturnStmt)(nil),
		(*ast.FuncLit)(nil),
	}

	decl.Inspect(types, func(c inspector.Cursor) bool {
		switch n := c.Node().(type) {
		case *ast.ReturnStmt:
			exits = append(exits, ExitPoint{Return: n, sig: fn.Type})

			return true

		case *ast.FuncLit:
			return false

		default:
			return true
		}
	})

	return exits
}
