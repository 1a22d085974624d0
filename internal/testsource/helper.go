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

// Package testsource provides utilities for parsing and type checking Go
// source code in tests.
//
// Unlike statement-level helpers, sources here are complete files (minus
// the package clause), since nilability inference operates on whole
// declarations, interfaces and their implementations.
package testsource

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"golang.org/x/tools/go/ast/inspector"
)

const testpkg = "test"

// Parse parses a Go source fragment consisting of top-level declarations.
// The package clause is added automatically.
//
// Returns the file set, the parsed file and an [inspector.Cursor] at the
// root of the file's syntax tree.
func Parse(tb testing.TB, src string) (*token.FileSet, *ast.File, inspector.Cursor) {
	tb.Helper()

	const filename = "test.go"

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, filename, "package "+testpkg+"\n\n"+src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	root := inspector.New([]*ast.File{f}).Root()

	return fset, f, root
}

// Check type checks the parsed file and returns the package and its type
// information. Use this when testing components that resolve objects,
// callee signatures or type nilability.
func Check(tb testing.TB, fset *token.FileSet, f *ast.File) (*types.Package, *types.Info) {
	tb.Helper()

	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
	}

	conf := types.Config{Importer: importer.Default()}

	pkg, err := conf.Check(testpkg, fset, []*ast.File{f}, info)
	if err != nil {
		tb.Fatalf("failed to type check source: %v", err)
	}

	return pkg, info
}

// FuncDecl finds the declaration of the named function or method in the file.
func FuncDecl(tb testing.TB, root inspector.Cursor, name string) (*ast.FuncDecl, inspector.Cursor) {
	tb.Helper()

	for c := range root.Preorder((*ast.FuncDecl)(nil)) {
		if fn := c.Node().(*ast.FuncDecl); fn.Name.Name == name {
			return fn, c
		}
	}

	tb.Fatalf("Can't find function %q", name)

	return nil, inspector.Cursor{}
}
