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

// Package config holds the flag sets shared between the analyzer options,
// the command line flags and the golangci-lint plugin settings.
package config

// CheckFlags selects which declaration categories are analyzed.
type CheckFlags uint8

const (
	// FunctionCheck enables nilability inference for package-level functions.
	FunctionCheck CheckFlags = 1 << iota

	// MethodCheck enables nilability inference for concrete methods.
	MethodCheck

	// InterfaceCheck enables nilability inference for interface methods,
	// pooling the return statements of all implementations in the package.
	InterfaceCheck
)

// Behavior represents behavioral options of the analyzer.
type Behavior uint8

const (
	// IncludeGenerated specifies whether generated files are analyzed.
	IncludeGenerated Behavior = 1 << iota

	// ReportUnspecified reports declarations whose inferred nilability is
	// unspecified. These mark return values that need human review.
	ReportUnspecified

	// ReportNoEvidence reports declarations whose bodies yield no evidence,
	// because they contain no value-carrying return statements.
	ReportNoEvidence
)

// Checks is a [BitMask] of [CheckFlags].
type Checks = BitMask[CheckFlags]

// Behaviors is a [BitMask] of [Behavior] options.
type Behaviors = BitMask[Behavior]
