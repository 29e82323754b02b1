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

// Package identity classifies call expressions by their type-checked callee.
//
// Classification is semantic, not syntactic: a call belongs to an operation
// family only when the method it resolves to carries a recognized name and
// the family's signature shape. Import aliases, embedding and shadowed
// helpers are transparent, and calls without type information never classify.
package identity

import (
	"go/ast"
	"go/types"
	"slices"

	"golang.org/x/tools/go/types/typeutil"

	"fillmore-labs.com/drainloop/internal/config"
)

// Op is the operation family a resolved call belongs to.
type Op int

const (
	// OpUnknown marks calls that resolve to no recognized family,
	// including calls whose callee cannot be resolved at all.
	OpUnknown Op = iota

	// OpIsEmpty marks emptiness queries of the form `func() bool`.
	OpIsEmpty

	// OpPop marks pop operations of the form `func() O` for a named option type O.
	OpPop

	// OpUnwrap marks forceful unwraps of the form `func() T`.
	OpUnwrap

	// OpExpect marks unwraps with a panic message, of the form `func(string) T`.
	OpExpect
)

// Resolver maps call expressions to their operation family.
type Resolver struct {
	pkg   *types.Package
	info  *types.Info
	names config.Names
}

// NewResolver creates a [Resolver] for one type-checked package.
func NewResolver(pkg *types.Package, info *types.Info, names config.Names) *Resolver {
	return &Resolver{pkg: pkg, info: info, names: names}
}

// Classify resolves the callee of call and returns the operation family it
// belongs to. Unresolvable callees and plain function calls classify as
// [OpUnknown].
func (r *Resolver) Classify(call *ast.CallExpr) Op {
	fn, ok := typeutil.Callee(r.info, call).(*types.Func)
	if !ok {
		return OpUnknown
	}

	sig, ok := fn.Type().(*types.Signature)
	if !ok || sig.Recv() == nil {
		return OpUnknown
	}

	switch name := fn.Name(); {
	case slices.Contains(r.names.Empty, name) && isEmptySig(sig):
		return OpIsEmpty

	case slices.Contains(r.names.Pop, name) && isPopSig(sig):
		return OpPop

	case slices.Contains(r.names.Unwrap, name) && isUnwrapSig(sig):
		return OpUnwrap

	case slices.Contains(r.names.Expect, name) && isExpectSig(sig):
		return OpExpect
	}

	return OpUnknown
}

// HasValue reports whether the option type returned by popCall exposes the
// comma-ok accessor used in rewrites. Findings on option types without it are
// reported without a suggested fix.
func (r *Resolver) HasValue(popCall *ast.CallExpr) bool {
	t := r.info.TypeOf(popCall)
	if t == nil {
		return false
	}

	obj, _, _ := types.LookupFieldOrMethod(t, true, r.pkg, r.names.Value)

	fn, ok := obj.(*types.Func)
	if !ok {
		return false
	}

	sig, ok := fn.Type().(*types.Signature)

	return ok && sig.Params().Len() == 0 && sig.Results().Len() == 2 && isBool(sig.Results().At(1).Type())
}

func isEmptySig(sig *types.Signature) bool {
	return sig.Params().Len() == 0 && sig.Results().Len() == 1 && isBool(sig.Results().At(0).Type())
}

func isPopSig(sig *types.Signature) bool {
	if sig.Params().Len() != 0 || sig.Results().Len() != 1 {
		return false
	}

	// The result must be an option-style named type, not a bare value.
	_, ok := types.Unalias(sig.Results().At(0).Type()).(*types.Named)

	return ok
}

func isUnwrapSig(sig *types.Signature) bool {
	return sig.Params().Len() == 0 && sig.Results().Len() == 1
}

func isExpectSig(sig *types.Signature) bool {
	return sig.Params().Len() == 1 && sig.Results().Len() == 1 && isString(sig.Params().At(0).Type())
}

func isBool(t types.Type) bool {
	b, ok := t.Underlying().(*types.Basic)

	return ok && b.Kind() == types.Bool
}

func isString(t types.Type) bool {
	b, ok := t.Underlying().(*types.Basic)

	return ok && b.Kind() == types.String
}
