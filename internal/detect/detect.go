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

// Package detect classifies loop statements as manual drain loops.
//
// A drain loop tests a collection for emptiness and then pops and forcefully
// unwraps its last element:
//
//	for !s.IsEmpty() {
//	    x := s.Pop().Unwrap()
//	    ...
//	}
//
// Detection is a pure decision function over the type-checked AST; a loop
// that does not match is simply not a finding, never an error.
package detect

import (
	"go/ast"
	"go/token"

	"fillmore-labs.com/drainloop/internal/astutil"
	"fillmore-labs.com/drainloop/internal/identity"
	"fillmore-labs.com/drainloop/internal/match"
)

// Loop inspects one for statement and reports whether it is a drain loop.
//
// The loop must be condition-only with a guard of the shape `!recv.IsEmpty()`,
// and the first statement of its body must pop and unwrap the same receiver,
// either into a fresh local binding or inline as a call argument.
func Loop(res *identity.Resolver, cmp match.Comparer, loop *ast.ForStmt) (Finding, bool) {
	if loop.Init != nil || loop.Post != nil || loop.Cond == nil {
		return Finding{}, false
	}

	not, ok := ast.Unparen(loop.Cond).(*ast.UnaryExpr)
	if !ok || not.Op != token.NOT {
		return Finding{}, false
	}

	emptyCall, ok := ast.Unparen(not.X).(*ast.CallExpr)
	if !ok || res.Classify(emptyCall) != identity.OpIsEmpty {
		return Finding{}, false
	}

	recv, ok := match.Receiver(emptyCall)
	if !ok || len(loop.Body.List) == 0 {
		return Finding{}, false
	}

	// Only the first statement is inspected. Pop calls deeper in the body
	// are not part of the drain idiom and would risk false positives.
	f, ok := classify(res, cmp, loop.Body.List[0], recv)
	if !ok {
		return Finding{}, false
	}

	f.Receiver = recv
	f.HeaderPos, f.HeaderEnd = loop.For, loop.Cond.End()

	return f, true
}

// classify matches the first body statement against the two recognized
// statement shapes, confirming that the popped receiver is structurally
// equal to the one tested for emptiness.
func classify(res *identity.Resolver, cmp match.Comparer, stmt ast.Stmt, recv ast.Expr) (Finding, bool) {
	if id, init, typed, ok := astutil.Binding(stmt); ok {
		pop, ok := match.PopUnwrap(res, init)
		if !ok || !cmp.Equal(recv, pop.Receiver) {
			return Finding{}, false
		}

		// An explicit type on the binding would be lost by the rewrite, so
		// the finding is reported without one.
		return Finding{
			Kind:    BoundToLocal,
			Name:    id.Name,
			PopName: pop.Method,
			PopPos:  stmt.Pos(),
			PopEnd:  stmt.End(),
			Fixable: !typed && res.HasValue(pop.Call),
		}, true
	}

	es, ok := stmt.(*ast.ExprStmt)
	if !ok {
		return Finding{}, false
	}

	call, ok := ast.Unparen(es.X).(*ast.CallExpr)
	if !ok {
		return Finding{}, false
	}

	for _, arg := range call.Args {
		pop, ok := match.PopUnwrap(res, arg)
		if !ok || !cmp.Equal(recv, pop.Receiver) {
			continue
		}

		return Finding{
			Kind:    Inline,
			PopName: pop.Method,
			PopPos:  arg.Pos(),
			PopEnd:  arg.End(),
			Fixable: res.HasValue(pop.Call),
		}, true
	}

	return Finding{}, false
}
