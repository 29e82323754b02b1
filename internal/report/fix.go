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

package report

import (
	"bytes"
	"cmp"
	"fmt"
	"go/ast"
	"go/printer"
	"go/token"
	"slices"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/drainloop/internal/config"
	"fillmore-labs.com/drainloop/internal/detect"
)

var rawcfg = &printer.Config{Mode: printer.RawFormat}

// Render prints an expression without reformatting it.
func Render(fset *token.FileSet, expr ast.Expr) (string, error) {
	var buf bytes.Buffer
	if err := rawcfg.Fprint(&buf, fset, expr); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// BuildFix composes the rewrite for a finding: the loop header is replaced by
// a combined pop-test-bind clause, and the pop-unwrap span is deleted
// ([detect.BoundToLocal]) or replaced by the bound placeholder
// ([detect.Inline]).
//
// The two edits only yield valid code together; they are returned as a single
// [analysis.SuggestedFix], which the analysis framework applies atomically.
// The rewrite is a pure syntactic transform with no behavior change, so it is
// safe to auto-apply.
func BuildFix(names config.Names, f detect.Finding, recv string) (analysis.SuggestedFix, bool) {
	pat := names.Placeholder

	var popText []byte

	if f.Kind == detect.BoundToLocal {
		pat = f.Name
	} else {
		popText = []byte(pat)
	}

	okName := "ok"
	if pat == okName {
		okName = "found"
	}

	popValue := fmt.Sprintf("%s.%s().%s()", recv, f.PopName, names.Value)
	header := fmt.Sprintf("for %[1]s, %[2]s := %[3]s; %[2]s; %[1]s, %[2]s = %[3]s", pat, okName, popValue)

	edits := []analysis.TextEdit{
		{Pos: f.HeaderPos, End: f.HeaderEnd, NewText: []byte(header)},
		{Pos: f.PopPos, End: f.PopEnd, NewText: popText},
	}

	if Overlapping(edits) {
		return analysis.SuggestedFix{}, false
	}

	return analysis.SuggestedFix{
		Message:   fmt.Sprintf("Pop and test '%s' in the loop header", recv),
		TextEdits: edits,
	}, true
}

// Overlapping reports whether any two edits touch overlapping source ranges.
// Overlapping edits cannot be applied as one fix, so a rewrite producing them
// is discarded as an internal error.
func Overlapping(edits []analysis.TextEdit) bool {
	sorted := slices.Clone(edits)
	slices.SortFunc(sorted, func(a, b analysis.TextEdit) int { return cmp.Compare(a.Pos, b.Pos) })

	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].End > sorted[i].Pos {
			return true
		}
	}

	return false
}
