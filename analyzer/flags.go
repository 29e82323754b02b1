// Copyright 2025 Oliver Eikemeier. All Rights Reserved.
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

	"fillmore-labs.com/drainloop/internal/config"
	"fillmore-labs.com/drainloop/internal/run"
)

// registerFlags binds the run options to command line flag values.
func registerFlags(flags *flag.FlagSet, o *run.Options) {
	flags.Var(NewBehaviorValue(&o.Behavior, config.IncludeGenerated), "generated", "check generated files")
	flags.Var(NewBehaviorValue(&o.Behavior, config.SuggestFixes), "fixes", "attach suggested rewrites to diagnostics")
	flags.Var(NewListValue(&o.Names.Pop), "pop", "comma-separated pop method names")
	flags.Var(NewListValue(&o.Names.Empty), "is-empty", "comma-separated emptiness query method names")
	flags.Var(NewListValue(&o.Names.Unwrap), "unwrap", "comma-separated forceful unwrap method names")
	flags.Var(NewListValue(&o.Names.Expect), "expect", "comma-separated unwrap-with-message method names")
	flags.StringVar(&o.Names.Value, "value-method", o.Names.Value, "comma-ok accessor used in rewrites")
	flags.StringVar(&o.Names.Placeholder, "placeholder", o.Names.Placeholder, "identifier bound by inline rewrites")
}
