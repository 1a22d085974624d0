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

// Package decl indexes the declarations of one package and aggregates
// exit points across redeclarations.
//
// The canonical declaration of a concrete function or method is its own
// [ast.FuncDecl]. An interface method is a canonical declaration without
// a body; its redeclarations are the package's concrete methods whose
// receiver type implements the interface.
package decl

import (
	"cmp"
	"go/ast"
	"go/types"
	"slices"

	"golang.org/x/tools/go/ast/inspector"
)

// Index maps a package's function objects to their declarations and
// interface methods to their ordered implementations.
type Index struct {
	funcs map[*types.Func]inspector.Cursor
	impls map[*types.Func][]inspector.Cursor
}

// NewIndex builds an [Index] for the package rooted at the given cursor.
// The index borrows the syntax tree for the duration of one pass and
// never mutates it.
func NewIndex(pkg *types.Package, info *types.Info, root inspector.Cursor) *Index {
	ix := &Index{
		funcs: make(map[*types.Func]inspector.Cursor),
		impls: make(map[*types.Func][]inspector.Cursor),
	}

	for c := range root.Preorder((*ast.FuncDecl)(nil)) {
		fn := c.Node().(*ast.FuncDecl)
		if obj, ok := info.Defs[fn.Name].(*types.Func); ok {
			ix.funcs[obj] = c
		}
	}

	ix.indexImplementations(pkg)

	return ix
}

// Decl returns the declaration cursor of a function object.
func (ix *Index) Decl(obj *types.Func) (inspector.Cursor, bool) {
	c, ok := ix.funcs[obj]

	return c, ok
}

// Implementations returns the number of known implementation bodies of
// an interface method.
func (ix *Index) Implementations(obj *types.Func) int {
	return len(ix.impls[obj])
}

// indexImplementations pairs every interface method declared at package
// scope with the concrete methods implementing it, in declaration order.
func (ix *Index) indexImplementations(pkg *types.Package) {
	var ifaces []*types.Interface

	var concrete []types.Type

	scope := pkg.Scope()
	for _, name := range scope.Names() {
		tn, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || tn.IsAlias() {
			continue
		}

		if iface, ok := tn.Type().Underlying().(*types.Interface); ok {
			ifaces = append(ifaces, iface)
		} else {
			concrete = append(concrete, tn.Type())
		}
	}

	for _, iface := range ifaces {
		for i := range iface.NumExplicitMethods() {
			ix.indexMethod(iface.ExplicitMethod(i), iface, concrete)
		}
	}
}

func (ix *Index) indexMethod(m *types.Func, iface *types.Interface, concrete []types.Type) {
	var impls []inspector.Cursor

	for _, t := range concrete {
		if !types.Implements(t, iface) && !types.Implements(types.NewPointer(t), iface) {
			continue
		}

		obj, _, _ := types.LookupFieldOrMethod(t, true, m.Pkg(), m.Name())

		fn, ok := obj.(*types.Func)
		if !ok {
			continue
		}

		// Only methods declared in this package's syntax are inspected.
		if c, ok := ix.funcs[fn]; ok {
			impls = append(impls, c)
		}
	}

	if len(impls) == 0 {
		return
	}

	slices.SortFunc(impls, func(a, b inspector.Cursor) int {
		return cmp.Compare(a.Node().Pos(), b.Node().Pos())
	})

	ix.impls[m] = impls
}
