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

// Package annotation reads nilability annotations.
//
// Explicit annotations are directive comments of the form
//
//	//nilinfer:nonnull
//	//nilinfer:nullable
//	//nilinfer:unspecified
//
// attached to function declarations, interface methods, struct fields
// and package-level variables. Implicit annotations come from the type
// system itself: a type that cannot hold nil is intrinsically nonnull.
package annotation

import (
	"go/ast"
	"go/types"
	"regexp"

	"fillmore-labs.com/nilinfer/internal/verdict"
)

var directivePattern = regexp.MustCompile(`^//\s*nilinfer:(nonnull|nullable|unspecified)\b`)

// spellings maps directive arguments to verdicts.
var spellings = map[string]verdict.Verdict{
	"nonnull":     verdict.NonNull,
	"nullable":    verdict.Nullable,
	"unspecified": verdict.Unspecified,
}

// Table maps annotated declarations to their declared nilability.
type Table struct {
	objs map[types.Object]verdict.Verdict
}

// Collect gathers all nilability directives from the given files into a [Table].
func Collect(info *types.Info, files []*ast.File) *Table {
	t := &Table{objs: make(map[types.Object]verdict.Verdict)}

	for _, file := range files {
		for _, decl := range file.Decls {
			t.collectDecl(info, decl)
		}
	}

	return t
}

func (t *Table) collectDecl(info *types.Info, decl ast.Decl) {
	switch d := decl.(type) {
	case *ast.FuncDecl:
		t.add(info.Defs[d.Name], d.Doc)

	case *ast.GenDecl:
		for _, spec := range d.Specs {
			switch s := spec.(type) {
			case *ast.ValueSpec:
				doc := s.Doc
				if doc == nil && len(d.Specs) == 1 {
					doc = d.Doc
				}

				for _, name := range s.Names {
					t.add(info.Defs[name], doc, s.Comment)
				}

			case *ast.TypeSpec:
				t.collectFields(info, s.Type)
			}
		}
	}
}

// collectFields reads directives off interface methods and struct fields.
func (t *Table) collectFields(info *types.Info, typ ast.Expr) {
	var fields *ast.FieldList

	switch n := typ.(type) {
	case *ast.InterfaceType:
		fields = n.Methods
	case *ast.StructType:
		fields = n.Fields
	default:
		return
	}

	for _, field := range fields.List {
		for _, name := range field.Names {
			t.add(info.Defs[name], field.Doc, field.Comment)
		}
	}
}

// add records the first directive found in the comment groups for obj.
func (t *Table) add(obj types.Object, groups ...*ast.CommentGroup) {
	if obj == nil {
		return
	}

	for _, group := range groups {
		if group == nil {
			continue
		}

		for _, comment := range group.List {
			if v, ok := ParseDirective(comment); ok {
				t.objs[obj] = v

				return
			}
		}
	}
}

// Lookup returns the explicitly annotated nilability of obj.
func (t *Table) Lookup(obj types.Object) (verdict.Verdict, bool) {
	v, ok := t.objs[obj]

	return v, ok
}

// Annotated reports whether obj carries an explicit nilability directive.
func (t *Table) Annotated(obj types.Object) bool {
	_, ok := t.objs[obj]

	return ok
}

// ParseDirective reads a nilability directive from a single comment line.
func ParseDirective(comment *ast.Comment) (verdict.Verdict, bool) {
	matches := directivePattern.FindStringSubmatch(comment.Text)
	if matches == nil {
		return 0, false
	}

	v, ok := spellings[matches[1]]

	return v, ok
}

// Nilable reports whether a value of type t can be nil at all.
func Nilable(t types.Type) bool {
	switch u := t.Underlying().(type) {
	case *types.Pointer, *types.Interface, *types.Map, *types.Slice, *types.Chan, *types.Signature:
		return true

	case *types.Basic:
		return u.Kind() == types.UnsafePointer || u.Kind() == types.UntypedNil

	default:
		return false
	}
}

// Intrinsic returns the nilability carried by the type itself: a type
// that cannot hold nil is always nonnull. Nilable types carry no
// intrinsic verdict.
func Intrinsic(t types.Type) (verdict.Verdict, bool) {
	if t == nil || Nilable(t) {
		return 0, false
	}

	return verdict.NonNull, true
}
