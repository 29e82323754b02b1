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

package match

import (
	"go/ast"
	"go/types"
)

// Comparer reports structural equality of expressions, ignoring source
// positions and parentheses. Identifiers compare by their resolved object
// when type information is available and by spelling otherwise; literals
// compare by exact value. Expression shapes outside the supported set never
// compare equal, so an overly exotic receiver yields a missed detection
// rather than a wrong one.
//
// The zero Comparer is valid and compares purely syntactically.
type Comparer struct {
	uses map[*ast.Ident]types.Object
}

// NewComparer creates a [Comparer] that resolves identifiers through uses.
func NewComparer(uses map[*ast.Ident]types.Object) Comparer {
	return Comparer{uses: uses}
}

// Equal reports whether a and b are structurally equal.
// It is symmetric and free of side effects.
func (c Comparer) Equal(a, b ast.Expr) bool {
	a, b = ast.Unparen(a), ast.Unparen(b)

	switch a := a.(type) {
	case *ast.Ident:
		b, ok := b.(*ast.Ident)

		return ok && c.equalIdent(a, b)

	case *ast.BasicLit:
		b, ok := b.(*ast.BasicLit)

		return ok && a.Kind == b.Kind && a.Value == b.Value

	case *ast.SelectorExpr:
		b, ok := b.(*ast.SelectorExpr)

		return ok && c.equalIdent(a.Sel, b.Sel) && c.Equal(a.X, b.X)

	case *ast.StarExpr:
		b, ok := b.(*ast.StarExpr)

		return ok && c.Equal(a.X, b.X)

	case *ast.UnaryExpr:
		b, ok := b.(*ast.UnaryExpr)

		return ok && a.Op == b.Op && c.Equal(a.X, b.X)

	case *ast.BinaryExpr:
		b, ok := b.(*ast.BinaryExpr)

		return ok && a.Op == b.Op && c.Equal(a.X, b.X) && c.Equal(a.Y, b.Y)

	case *ast.IndexExpr:
		b, ok := b.(*ast.IndexExpr)

		return ok && c.Equal(a.X, b.X) && c.Equal(a.Index, b.Index)

	case *ast.CallExpr:
		b, ok := b.(*ast.CallExpr)

		return ok && c.equalCall(a, b)

	default:
		return false
	}
}

func (c Comparer) equalIdent(a, b *ast.Ident) bool {
	if ao, bo := c.uses[a], c.uses[b]; ao != nil || bo != nil {
		return ao == bo
	}

	return a.Name == b.Name
}

func (c Comparer) equalCall(a, b *ast.CallExpr) bool {
	if len(a.Args) != len(b.Args) || a.Ellipsis.IsValid() != b.Ellipsis.IsValid() {
		return false
	}

	if !c.Equal(a.Fun, b.Fun) {
		return false
	}

	for i, arg := range a.Args {
		if !c.Equal(arg, b.Args[i]) {
			return false
		}
	}

	return true
}
