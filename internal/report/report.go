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

// Package report renders nilability findings into diagnostics.
//
// The inference pipeline produces findings as plain data; this package
// is the only place user-facing text is formatted. Keeping the two
// apart means the algorithm stays a pure function of the syntax tree.
package report

import (
	"fmt"
	"go/token"
	"log/slog"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/nilinfer/internal/config"
	"fillmore-labs.com/nilinfer/internal/verdict"
)

// Finding is the structured result of analyzing one declaration.
type Finding struct {
	// Name is the declaration's name as written.
	Name string

	// FullName is the qualified name, e.g. "(pkg.T).Find".
	FullName string

	// Pos and End locate the declaration.
	Pos, End token.Pos

	// Verdict is the merged nilability. Only meaningful when Evidence
	// is true.
	Verdict verdict.Verdict

	// Evidence reports whether at least one value-carrying exit point
	// was found. A finding without evidence is not conflated with an
	// unspecified verdict.
	Evidence bool

	// Exits is the number of collected return statements, valued or not.
	Exits int
}

// LogValue implements [slog.LogValuer].
func (f Finding) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("decl", f.FullName),
		slog.String("verdict", f.Verdict.String()),
		slog.Bool("evidence", f.Evidence),
		slog.Int("exits", f.Exits),
	)
}

// Process reports the given findings on the pass.
//
// Inferred verdicts become diagnostics at the declaration. Declarations
// without evidence are reported only when [config.ReportNoEvidence] is
// enabled, and unspecified inferences only when
// [config.ReportUnspecified] is enabled.
func Process(p *analysis.Pass, findings []Finding, behavior config.Behaviors) {
	log := slog.Default()

	for _, f := range findings {
		log.Debug("nilability analyzed", "finding", f)

		message, ok := render(f, behavior)
		if !ok {
			continue
		}

		p.Report(analysis.Diagnostic{Pos: f.Pos, End: f.End, Message: message})
	}
}

func render(f Finding, behavior config.Behaviors) (string, bool) {
	switch {
	case f.Evidence:
		if f.Verdict == verdict.Unspecified && !behavior.Enabled(config.ReportUnspecified) {
			return "", false
		}

		return fmt.Sprintf("Return value of %q is inferred %s", f.Name, f.Verdict), true

	case f.Exits > 0:
		if !behavior.Enabled(config.ReportNoEvidence) {
			return "", false
		}

		return fmt.Sprintf("%q has only bare return statements", f.Name), true

	default:
		if !behavior.Enabled(config.ReportNoEvidence) {
			return "", false
		}

		return fmt.Sprintf("%q has no return statements", f.Name), true
	}
}
