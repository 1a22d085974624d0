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

// Package classify decides the nilability of a single returned expression.
package classify

import (
	"go/ast"
	"go/token"
	"go/types"
	"log/slog"

	"fillmore-labs.com/nilinfer/internal/annotation"
	"fillmore-labs.com/nilinfer/internal/exitpath"
	"fillmore-labs.com/nilinfer/internal/verdict"
)

// Classifier classifies exit point values. It is a pure function of its
// inputs and never mutates the syntax tree.
type Classifier struct {
	info  *types.Info
	annot *annotation.Table
	log   *slog.Logger
}

// New creates a [Classifier] over the given type information and
// annotation table.
func New(info *types.Info, annot *annotation.Table) *Classifier {
	return &Classifier{info: info, annot: annot, log: slog.Default()}
}

// Classify determines the nilability of one exit point:
//
//  1. The predeclared nil, reached through any chain of value-preserving
//     wrappers, is nullable.
//  2. A string literal is nonnull; other literal kinds are not yet
//     classified.
//  3. A call uses the callee's declared return nilability.
//  4. A reference to a declaration uses that declaration's nilability.
//  5. Everything else is unspecified.
//
// A bare return in a void context is a legal no-op exit: it classifies
// as unspecified but carries no value, so it is not weighed as evidence.
func (c *Classifier) Classify(exit exitpath.ExitPoint) verdict.Classification {
	if exit.Return == nil {
		// A single malformed match must not halt the pass.
		c.log.Warn("classify: exit point without return statement")

		return verdict.Classification{Verdict: verdict.Unspecified, Valued: true}
	}

	value, ok := exit.Value()
	if !ok {
		return verdict.Classification{Verdict: verdict.Unspecified}
	}

	return verdict.Classification{Verdict: c.Expr(value), Valued: true}
}

// Expr classifies a single expression. First match wins.
func (c *Classifier) Expr(e ast.Expr) verdict.Verdict {
	inner := Innermost(c.info, e)

	if c.isNil(inner) || c.isNil(e) {
		return verdict.Nullable
	}

	switch x := inner.(type) {
	case *ast.BasicLit:
		return classifyLiteral(x)

	case *ast.CallExpr:
		return c.classifyCall(x)

	case *ast.Ident:
		return c.declared(c.object(x))

	case *ast.SelectorExpr:
		return c.declared(c.object(x.Sel))
	}

	return verdict.Unspecified
}

// isNil reports whether the expression denotes the predeclared nil.
// This is Go's only null pointer constant; conversions of nil are
// handled by [Innermost].
func (c *Classifier) isNil(e ast.Expr) bool {
	if e == nil {
		return false
	}

	tv, ok := c.info.Types[e]

	return ok && tv.IsNil()
}

// classifyLiteral handles the closed set of literal kinds. A string
// literal is always present.
func classifyLiteral(lit *ast.BasicLit) verdict.Verdict {
	switch lit.Kind {
	case token.STRING:
		return verdict.NonNull

	case token.INT, token.FLOAT, token.IMAG, token.CHAR:
		// TODO: classify numeric and composite literals stored in
		// interface results; they are always present.
		return verdict.Unspecified

	default:
		return verdict.Unspecified
	}
}

// classifyCall uses the declared return nilability of the callee.
// Calls through function values are not analyzed: their nilability is
// carried on the function type and redeclarations can disagree.
func (c *Classifier) classifyCall(call *ast.CallExpr) verdict.Verdict {
	fn, ok := c.object(calleeIdent(call)).(*types.Func)
	if !ok {
		return verdict.Unspecified
	}

	if v, ok := c.annot.Lookup(fn); ok {
		return v
	}

	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Results().Len() == 0 {
		return verdict.Unspecified
	}

	if v, ok := annotation.Intrinsic(sig.Results().At(0).Type()); ok {
		return v
	}

	return verdict.Unspecified
}

// declared resolves the nilability annotated on a referenced
// declaration: an explicit directive, or the intrinsic nilability of
// its type.
func (c *Classifier) declared(obj types.Object) verdict.Verdict {
	if obj == nil {
		return verdict.Unspecified
	}

	if v, ok := c.annot.Lookup(obj); ok {
		return v
	}

	if v, ok := annotation.Intrinsic(obj.Type()); ok {
		return v
	}

	return verdict.Unspecified
}

// object resolves an identifier to the object it denotes or declares.
// Named result variables referenced by naked returns are definitions,
// not uses.
func (c *Classifier) object(id *ast.Ident) types.Object {
	if id == nil {
		return nil
	}

	if obj, ok := c.info.Uses[id]; ok {
		return obj
	}

	return c.info.Defs[id]
}

// calleeIdent extracts the identifier naming the called declaration.
func calleeIdent(call *ast.CallExpr) *ast.Ident {
	switch fun := ast.Unparen(call.Fun).(type) {
	case *ast.Ident:
		return fun

	case *ast.SelectorExpr:
		return fun.Sel

	default:
		return nil
	}
}
