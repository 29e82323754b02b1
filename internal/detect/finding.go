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

package detect

import (
	"go/ast"
	"go/token"
)

// Kind describes the statement shape the pop-unwrap call appeared in.
// It decides what pattern the rewrite binds in the loop header.
type Kind int

//go:generate go tool stringer -type=Kind

const (
	// BoundToLocal marks a pop-unwrap used as the initializer of a local
	// binding. The binding's name becomes the loop variable and the whole
	// statement is deleted by the rewrite.
	BoundToLocal Kind = iota

	// Inline marks a pop-unwrap passed as a call argument. The argument is
	// replaced by a placeholder identifier bound in the rewritten header.
	Inline
)

// Finding is one detected drain loop.
type Finding struct {
	// Kind is the statement shape of the pop-unwrap call.
	Kind Kind

	// Name is the bound variable's name for [BoundToLocal] findings.
	Name string

	// Receiver is the drained collection, taken from the emptiness check.
	Receiver ast.Expr

	// PopName is the matched pop method's name.
	PopName string

	// HeaderPos and HeaderEnd span the `for` keyword through the condition.
	HeaderPos, HeaderEnd token.Pos

	// PopPos and PopEnd span the binding statement for [BoundToLocal]
	// findings and the offending argument for [Inline] findings.
	PopPos, PopEnd token.Pos

	// Fixable is true when the option type exposes the comma-ok accessor
	// and the binding carries no explicit type, so a rewritten loop header
	// can be offered.
	Fixable bool
}

// Pos returns the start of the offending pop-unwrap span.
func (f Finding) Pos() token.Pos { return f.PopPos }

// End returns the end of the offending pop-unwrap span.
func (f Finding) End() token.Pos { return f.PopEnd }
