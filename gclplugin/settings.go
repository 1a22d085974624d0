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

package gclplugin

import nilinfer "fillmore-labs.com/nilinfer/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Functions enables analysis of package-level functions.
	Functions *bool `json:"functions,omitzero"`
	// Methods enables analysis of concrete methods.
	Methods *bool `json:"methods,omitzero"`
	// Interfaces enables analysis of interface methods across their implementations.
	Interfaces *bool `json:"interfaces,omitzero"`
	// Unspecified enables reporting of unspecified inferences.
	Unspecified *bool `json:"unspecified,omitzero"`
	// NoEvidence enables reporting of declarations without value-carrying returns.
	NoEvidence *bool `json:"no-evidence,omitzero"`
}

// Options converts [Settings] into a list of [nilinfer.Option] for the nilinfer analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []nilinfer.Option {
	var opts []nilinfer.Option

	opts = appendOption(opts, s.Functions, nilinfer.WithFunctions)
	opts = appendOption(opts, s.Methods, nilinfer.WithMethods)
	opts = appendOption(opts, s.Interfaces, nilinfer.WithInterfaces)
	opts = appendOption(opts, s.Unspecified, nilinfer.WithUnspecified)
	opts = appendOption(opts, s.NoEvidence, nilinfer.WithNoEvidence)

	return opts
}

// appendOption appends a non-nil setting to a [nilinfer.Option] list.
func appendOption[T any](opts []nilinfer.Option, value *T, constructor func(T) nilinfer.Option) []nilinfer.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
