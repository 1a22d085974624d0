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

package analyzer

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"log/slog"
	"slices"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/nilinfer/internal/annotation"
	"fillmore-labs.com/nilinfer/internal/astutil"
	"fillmore-labs.com/nilinfer/internal/classify"
	"fillmore-labs.com/nilinfer/internal/config"
	"fillmore-labs.com/nilinfer/internal/decl"
	"fillmore-labs.com/nilinfer/internal/report"
	"fillmore-labs.com/nilinfer/internal/verdict"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// run executes the nilinfer pipeline.
//
// Each matched declaration is routed through the aggregator and merger
// independently: no state persists across declarations, and the syntax
// tree is only borrowed for the duration of this pass.
func (r *runOptions) run(p *analysis.Pass) (any, error) {
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("nilinfer: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	d := dispatcher{
		pass:     p,
		log:      slog.Default(),
		annot:    annotation.Collect(p.TypesInfo, p.Files),
		index:    decl.NewIndex(p.Pkg, p.TypesInfo, in.Root()),
		checks:   r.checks,
		behavior: r.behavior,
	}
	d.classifier = classify.New(p.TypesInfo, d.annot)

	// Loop over all files
	for f := range in.Root().Children() {
		file, ok := f.Node().(*ast.File)
		if !ok {
			continue
		}

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if astutil.NoLint(file.Doc) {
			continue
		}

		// Loop over all top-level declarations in this file
		for _, dcl := range file.Decls {
			switch n := dcl.(type) {
			case *ast.FuncDecl:
				d.function(n)

			case *ast.GenDecl:
				d.genDecl(n)
			}
		}
	}

	report.Process(p, d.findings, r.behavior)

	return nil, nil
}

// dispatcher routes matched declarations through the analysis pipeline
// and accumulates structured findings.
type dispatcher struct {
	pass       *analysis.Pass
	log        *slog.Logger
	annot      *annotation.Table
	index      *decl.Index
	classifier *classify.Classifier
	checks     config.Checks
	behavior   config.Behaviors
	findings   []report.Finding
}

// function handles a concrete function or method declaration.
func (d *dispatcher) function(fn *ast.FuncDecl) {
	check := config.FunctionCheck
	if fn.Recv != nil {
		check = config.MethodCheck
	}

	if !d.checks.Enabled(check) || astutil.NoLint(fn.Doc) {
		return
	}

	obj, ok := d.pass.TypesInfo.Defs[fn.Name].(*types.Func)
	if !ok {
		return
	}

	if fn.Body == nil {
		// An externally implemented prototype has no body to inspect.
		d.log.Debug("prototype matched", "decl", obj.FullName())

		return
	}

	d.analyze(obj, fn.Name.Name, fn.Pos(), fn.Name.End())
}

// genDecl handles the remaining match categories: interface methods are
// analyzed by pooling their implementations, struct fields and
// package-level variables are matched but deliberately left as
// pass-through hooks. Their classification is not implemented.
func (d *dispatcher) genDecl(g *ast.GenDecl) {
	switch g.Tok {
	case token.VAR:
		for _, spec := range g.Specs {
			if vs, ok := spec.(*ast.ValueSpec); ok {
				d.variableHook(vs)
			}
		}

	case token.TYPE:
		for _, spec := range g.Specs {
			if ts, ok := spec.(*ast.TypeSpec); ok {
				d.typeSpec(ts)
			}
		}

	default: // imports and constants carry no nilability
	}
}

func (d *dispatcher) typeSpec(ts *ast.TypeSpec) {
	switch t := ts.Type.(type) {
	case *ast.InterfaceType:
		if d.checks.Enabled(config.InterfaceCheck) {
			d.interfaceMethods(t)
		}

	case *ast.StructType:
		d.fieldHook(ts.Name, t)
	}
}

// interfaceMethods analyzes each explicit interface method as a
// canonical declaration without a body.
func (d *dispatcher) interfaceMethods(it *ast.InterfaceType) {
	for _, field := range it.Methods.List {
		if astutil.NoLint(field.Doc) {
			continue
		}

		for _, name := range field.Names {
			obj, ok := d.pass.TypesInfo.Defs[name].(*types.Func)
			if !ok {
				continue
			}

			if d.index.Implementations(obj) == 0 {
				// A protocol without conformers yields nothing to pool.
				d.log.Debug("interface method without implementations", "decl", obj.FullName())

				continue
			}

			d.analyze(obj, name.Name, name.Pos(), name.End())
		}
	}
}

// analyze runs the aggregator and merger for one canonical declaration
// and records the finding.
func (d *dispatcher) analyze(obj *types.Func, name string, pos, end token.Pos) {
	if d.annot.Annotated(obj) {
		return // nothing left to infer
	}

	sig, ok := obj.Type().(*types.Signature)
	if !ok || sig.Results().Len() == 0 || !annotation.Nilable(sig.Results().At(0).Type()) {
		return
	}

	exits := d.index.ExitPoints(obj)

	classifications := make([]verdict.Classification, 0, len(exits))
	for _, exit := range exits {
		classifications = append(classifications, d.classifier.Classify(exit))
	}

	v, evidence := verdict.Merge(slices.Values(classifications))

	d.findings = append(d.findings, report.Finding{
		Name:     name,
		FullName: obj.FullName(),
		Pos:      pos,
		End:      end,
		Verdict:  v,
		Evidence: evidence,
		Exits:    len(exits),
	})
}

// variableHook matches package-level variables. Global variable
// nilability is not inferred yet; the match is only surfaced in logs.
func (d *dispatcher) variableHook(vs *ast.ValueSpec) {
	for _, name := range vs.Names {
		if obj := d.pass.TypesInfo.Defs[name]; obj != nil {
			d.log.Debug("global variable matched", "decl", obj.Name(), "pkg", d.pass.Pkg.Path())
		}
	}
}

// fieldHook matches struct field declarations. Field nilability is not
// inferred yet; the match is only surfaced in logs.
func (d *dispatcher) fieldHook(typeName *ast.Ident, st *ast.StructType) {
	for _, field := range st.Fields.List {
		for _, name := range field.Names {
			d.log.Debug("field matched", "type", typeName.Name, "field", name.Name)
		}
	}
}
