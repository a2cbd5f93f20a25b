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

// Package literal decides which literal values are candidates for magic number detection.
package literal

import (
	"go/ast"
	"go/constant"
	"go/token"
)

// Filter returns the value of v as a float64 and true when v is a candidate.
//
// Candidates are numeric, real and not exactly 0 or 1. Values that do not fit a
// float64 exactly are converted to the nearest representable value.
func Filter(v constant.Value) (float64, bool) {
	switch v.Kind() {
	case constant.Int, constant.Float:

	case constant.Complex:
		if constant.Sign(constant.Imag(v)) != 0 {
			return 0, false
		}

		v = constant.Real(v)

	default: // Unknown, Bool, String
		return 0, false
	}

	f, _ := constant.Float64Val(constant.ToFloat(v))

	if f == 0 || f == 1 {
		return 0, false
	}

	return f, true
}

// FromBasicLit converts a Go literal to a [constant.Value].
//
// Character and string literals become non-numeric values. Malformed
// literals become [constant.Unknown].
func FromBasicLit(lit *ast.BasicLit) constant.Value {
	switch lit.Kind {
	case token.INT, token.FLOAT, token.IMAG, token.STRING:
		return constant.MakeFromLiteral(lit.Value, lit.Kind, 0)

	default: // CHAR is a rune, not a number
		return constant.MakeUnknown()
	}
}
