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
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"

	"fillmore-labs.com/nilinfer/internal/config"
)

// runOptions represent the configuration of one nilinfer analyzer instance.
type runOptions struct {
	// checks selects which declaration categories are analyzed.
	checks config.Checks

	// behavior holds reporting and file selection options.
	behavior config.Behaviors
}

// New creates a new instance of the nilinfer analyzer.
// It allows for programmatic configuration using [Option], which is useful
// for integrating the analyzer into other tools. For command-line use, the
// pre-configured [Analyzer] variable is typically sufficient.
func New(opts ...Option) *analysis.Analyzer {
	r := defaultRunOptions()
	Options(opts).apply(r)

	a := &analysis.Analyzer{
		Name:     name,
		Doc:      doc,
		URL:      url,
		Run:      r.run,
		Requires: []*analysis.Analyzer{inspect.Analyzer},
	}

	registerFlags(&a.Flags, r)

	return a
}

// defaultRunOptions returns the default configuration: all declaration
// categories analyzed, unspecified inferences reported, generated files
// and no-evidence declarations skipped.
func defaultRunOptions() *runOptions {
	return &runOptions{
		checks:   config.NewBitMask(config.FunctionCheck | config.MethodCheck | config.InterfaceCheck),
		behavior: config.NewBitMask(config.ReportUnspecified),
	}
}
