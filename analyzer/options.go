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
	"log/slog"

	"fillmore-labs.com/nilinfer/internal/config"
)

// Option configures specific behavior of a [New] nilinfer analyzer.
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithFunctions is an [Option] to configure whether package-level functions are analyzed.
func WithFunctions(functions bool) Option { return functionsOption{functions: functions} }

type functionsOption struct{ functions bool }

func (o functionsOption) apply(r *runOptions) {
	r.checks.Set(config.FunctionCheck, o.functions)
}

func (o functionsOption) LogAttr() slog.Attr {
	return slog.Bool("functions", o.functions)
}

// WithMethods is an [Option] to configure whether concrete methods are analyzed.
func WithMethods(methods bool) Option { return methodsOption{methods: methods} }

type methodsOption struct{ methods bool }

func (o methodsOption) apply(r *runOptions) {
	r.checks.Set(config.MethodCheck, o.methods)
}

func (o methodsOption) LogAttr() slog.Attr {
	return slog.Bool("methods", o.methods)
}

// WithInterfaces is an [Option] to configure whether interface methods are
// analyzed by pooling the bodies of all implementations in the package.
func WithInterfaces(interfaces bool) Option { return interfacesOption{interfaces: interfaces} }

type interfacesOption struct{ interfaces bool }

func (o interfacesOption) apply(r *runOptions) {
	r.checks.Set(config.InterfaceCheck, o.interfaces)
}

func (o interfacesOption) LogAttr() slog.Attr {
	return slog.Bool("interfaces", o.interfaces)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *runOptions) {
	r.behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithUnspecified is an [Option] to configure whether unspecified inferences
// are reported. These mark return values that need human review.
func WithUnspecified(unspecified bool) Option { return unspecifiedOption{unspecified: unspecified} }

type unspecifiedOption struct{ unspecified bool }

func (o unspecifiedOption) apply(r *runOptions) {
	r.behavior.Set(config.ReportUnspecified, o.unspecified)
}

func (o unspecifiedOption) LogAttr() slog.Attr {
	return slog.Bool("unspecified", o.unspecified)
}

// WithNoEvidence is an [Option] to configure reporting of declarations
// whose bodies contain no value-carrying return statements.
func WithNoEvidence(noEvidence bool) Option { return noEvidenceOption{noEvidence: noEvidence} }

type noEvidenceOption struct{ noEvidence bool }

func (o noEvidenceOption) apply(r *runOptions) {
	r.behavior.Set(config.ReportNoEvidence, o.noEvidence)
}

func (o noEvidenceOption) LogAttr() slog.Attr {
	return slog.Bool("no-evidence", o.noEvidence)
}
