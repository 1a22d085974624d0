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
	"flag"

	"fillmore-labs.com/nilinfer/internal/config"
)

// registerFlags binds the run options to command line flag values.
func registerFlags(flags *flag.FlagSet, r *runOptions) {
	flags.Var(checkValue(r, config.FunctionCheck), "functions", "analyze package-level functions")
	flags.Var(checkValue(r, config.MethodCheck), "methods", "analyze concrete methods")
	flags.Var(checkValue(r, config.InterfaceCheck), "interfaces", "analyze interface methods across implementations")
	flags.Var(behaviorValue(r, config.IncludeGenerated), "generated", "analyze generated files")
	flags.Var(behaviorValue(r, config.ReportUnspecified), "unspecified", "report unspecified inferences")
	flags.Var(behaviorValue(r, config.ReportNoEvidence), "no-evidence", "report declarations without value-carrying returns")
}

func checkValue(r *runOptions, value config.CheckFlags) flag.Value {
	return boolValue[config.CheckFlags, *config.Checks]{flags: &r.checks, value: value}
}

func behaviorValue(r *runOptions, value config.Behavior) flag.Value {
	return boolValue[config.Behavior, *config.Behaviors]{flags: &r.behavior, value: value}
}
