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

// Package kind defines the syntactic contexts that make a numeric literal significant.
package kind

import "iter"

// Kind is a syntactic category relevant to magic number detection.
//
// The set is closed: hosts map their own node tags into a [Kind] and
// everything they cannot map becomes [None].
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	// None marks an ancestor without a relevant context.
	None Kind = iota // none

	Add            // addition
	Subtract       // subtraction
	Multiply       // multiplication
	Divide         // division
	Modulo         // modulo
	LogicalAnd     // logical and
	LogicalOr      // logical or
	LessThan       // less than comparison
	GreaterThan    // greater than comparison
	LessOrEqual    // less or equal comparison
	GreaterOrEqual // greater or equal comparison
	Equal          // equality comparison
	NotEqual       // inequality comparison
	ArrayIndex     // array index
	IfStatement    // if statement
	WhileLoop      // while loop
	DoWhileLoop    // do-while loop
)

const numKinds = int(DoWhileLoop) + 1

// Relevant reports whether k belongs to the relevant set.
// Unknown values are never relevant.
func (k Kind) Relevant() bool { return k > None && int(k) < numKinds }

// All yields the relevant kinds in declaration order.
func All() iter.Seq[Kind] {
	return func(yield func(Kind) bool) {
		for k := None + 1; int(k) < numKinds; k++ {
			if !yield(k) {
				return
			}
		}
	}
}
