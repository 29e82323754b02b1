// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

// Package report renders findings as diagnostics with suggested rewrites.
package report

import (
	"context"
	"fmt"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/drainloop/internal/astutil"
	"fillmore-labs.com/drainloop/internal/config"
	"fillmore-labs.com/drainloop/internal/detect"
)

// Process emits the diagnostic for one finding.
//
// The diagnostic is anchored at the offending pop-unwrap span. When fixes are
// enabled and the finding is fixable, it carries the atomic two-span rewrite
// built by [BuildFix].
func Process(ctx context.Context, p *analysis.Pass, names config.Names, behavior config.Behavior, f detect.Finding) {
	defer trace.StartRegion(ctx, "Report").End()

	recv, err := Render(p.Fset, f.Receiver)
	if err != nil {
		astutil.InternalError(p, f, "Can't render receiver: %s", err)

		return
	}

	diagnostic := analysis.Diagnostic{
		Pos:     f.PopPos,
		End:     f.PopEnd,
		Message: fmt.Sprintf("Loop drains '%s' with a forced unwrap", recv),
	}

	if behavior.Enabled(config.SuggestFixes) && f.Fixable {
		fix, ok := BuildFix(names, f, recv)
		if !ok {
			astutil.InternalError(p, f, "Overlapping rewrite spans")

			return
		}

		diagnostic.SuggestedFixes = []analysis.SuggestedFix{fix}
	}

	p.Report(diagnostic)
}
