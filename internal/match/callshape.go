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

// Package match recognizes the call shapes of a manual drain loop and
// decides structural equality of receiver expressions.
package match

import (
	"go/ast"

	"fillmore-labs.com/drainloop/internal/identity"
)

// Pop describes a matched pop-then-unwrap call shape.
type Pop struct {
	// Receiver is the collection the pop method is called on.
	Receiver ast.Expr

	// Call is the inner pop call.
	Call *ast.CallExpr

	// Method is the pop method's name, reused verbatim in rewrites.
	Method string
}

// PopUnwrap matches the two-level shape `recv.Pop().Unwrap()`, an unwrap
// family call whose receiver is itself a pop family call, and returns the
// pop call's receiver.
//
// A bare pop with no unwrap is never a match: its option result is already
// handled safely by the surrounding code.
func PopUnwrap(r *identity.Resolver, expr ast.Expr) (Pop, bool) {
	unwrap, ok := ast.Unparen(expr).(*ast.CallExpr)
	if !ok {
		return Pop{}, false
	}

	if op := r.Classify(unwrap); op != identity.OpUnwrap && op != identity.OpExpect {
		return Pop{}, false
	}

	inner, ok := Receiver(unwrap)
	if !ok {
		return Pop{}, false
	}

	popCall, ok := ast.Unparen(inner).(*ast.CallExpr)
	if !ok || r.Classify(popCall) != identity.OpPop {
		return Pop{}, false
	}

	recv, ok := Receiver(popCall)
	if !ok {
		return Pop{}, false
	}

	sel := ast.Unparen(popCall.Fun).(*ast.SelectorExpr)

	return Pop{Receiver: recv, Call: popCall, Method: sel.Sel.Name}, true
}

// Receiver returns the expression a method call is invoked on.
func Receiver(call *ast.CallExpr) (ast.Expr, bool) {
	sel, ok := ast.Unparen(call.Fun).(*ast.SelectorExpr)
	if !ok {
		return nil, false
	}

	return sel.X, true
}
