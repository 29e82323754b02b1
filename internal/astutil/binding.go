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

package astutil

import (
	"go/ast"
	"go/token"
)

// Binding returns the single bound identifier and its initializer for local
// bindings of the forms `x := expr`, `var x = expr` and `var x T = expr`.
// typed reports whether the declaration carries an explicit type, which a
// rewrite moving the initializer into a loop header would not preserve.
//
// Bindings with multiple names or multiple values do not qualify.
func Binding(stmt ast.Stmt) (id *ast.Ident, init ast.Expr, typed, ok bool) {
	switch stmt := stmt.(type) {
	case *ast.AssignStmt:
		if stmt.Tok != token.DEFINE || len(stmt.Lhs) != 1 || len(stmt.Rhs) != 1 {
			return nil, nil, false, false
		}

		id, ok := stmt.Lhs[0].(*ast.Ident)
		if !ok {
			return nil, nil, false, false
		}

		return id, stmt.Rhs[0], false, true

	case *ast.DeclStmt:
		decl, ok := stmt.Decl.(*ast.GenDecl)
		if !ok || decl.Tok != token.VAR || len(decl.Specs) != 1 {
			return nil, nil, false, false
		}

		vspec, ok := decl.Specs[0].(*ast.ValueSpec)
		if !ok || len(vspec.Names) != 1 || len(vspec.Values) != 1 {
			return nil, nil, false, false
		}

		return vspec.Names[0], vspec.Values[0], vspec.Type != nil, true

	default:
		return nil, nil, false, false
	}
}
