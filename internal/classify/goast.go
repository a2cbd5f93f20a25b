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

package classify

import (
	"go/ast"
	"go/token"
	"iter"

	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/magicnumber/internal/kind"
)

// KindOf maps a Go syntax node to its [kind.Kind].
func KindOf(n ast.Node) kind.Kind {
	switch n := n.(type) {
	case *ast.BinaryExpr:
		return binaryKind(n.Op)

	case *ast.IndexExpr, *ast.SliceExpr:
		return kind.ArrayIndex

	case *ast.IfStmt:
		return kind.IfStatement

	case *ast.ForStmt:
		return kind.WhileLoop

	default:
		return kind.None
	}
}

func binaryKind(op token.Token) kind.Kind {
	switch op {
	case token.ADD:
		return kind.Add
	case token.SUB:
		return kind.Subtract
	case token.MUL:
		return kind.Multiply
	case token.QUO:
		return kind.Divide
	case token.REM:
		return kind.Modulo
	case token.LAND:
		return kind.LogicalAnd
	case token.LOR:
		return kind.LogicalOr
	case token.LSS:
		return kind.LessThan
	case token.GTR:
		return kind.GreaterThan
	case token.LEQ:
		return kind.LessOrEqual
	case token.GEQ:
		return kind.GreaterOrEqual
	case token.EQL:
		return kind.Equal
	case token.NEQ:
		return kind.NotEqual
	default: // bit operations, shifts
		return kind.None
	}
}

// Ancestors yields the kinds of the nodes enclosing c, nearest first.
// The node at c itself is not included.
func Ancestors(c inspector.Cursor) iter.Seq[kind.Kind] {
	return func(yield func(kind.Kind) bool) {
		parent := c.Parent()
		if parent == parent.Inspector().Root() {
			return
		}

		for p := range parent.Enclosing() {
			if !yield(KindOf(p.Node())) {
				return
			}
		}
	}
}
