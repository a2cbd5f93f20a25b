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

package javasrc

import (
	"go/constant"
	"go/token"
	"strings"

	"fillmore-labs.com/magicnumber/internal/kind"
)

// numericLiterals are the Java grammar's numeric literal node types.
var numericLiterals = map[string]token.Token{
	"decimal_integer_literal":        token.INT,
	"hex_integer_literal":            token.INT,
	"octal_integer_literal":          token.INT,
	"binary_integer_literal":         token.INT,
	"decimal_floating_point_literal": token.FLOAT,
	"hex_floating_point_literal":     token.FLOAT,
}

// ParseNumber converts the text of a Java numeric literal node to a [constant.Value].
// Other node types and malformed text yield [constant.Unknown].
func ParseNumber(nodeType, text string) constant.Value {
	tok, ok := numericLiterals[nodeType]
	if !ok {
		return constant.MakeUnknown()
	}

	text = strings.ReplaceAll(text, "_", "")

	switch tok {
	case token.INT:
		text = strings.TrimRight(text, "lL")

	case token.FLOAT:
		text = strings.TrimRight(text, "fFdD")
	}

	// Java octal literals ("017") have the same meaning in Go.
	return constant.MakeFromLiteral(text, tok, 0)
}

// KindOf maps a Java grammar node type to a [kind.Kind].
// operator is the text of a binary expression's operator and ignored otherwise.
func KindOf(nodeType, operator string) kind.Kind {
	switch nodeType {
	case "binary_expression":
		return binaryKinds[operator]

	case "array_access":
		return kind.ArrayIndex

	case "if_statement":
		return kind.IfStatement

	case "while_statement":
		return kind.WhileLoop

	case "do_statement":
		return kind.DoWhileLoop

	default:
		return kind.None
	}
}

var binaryKinds = map[string]kind.Kind{
	"+":  kind.Add,
	"-":  kind.Subtract,
	"*":  kind.Multiply,
	"/":  kind.Divide,
	"%":  kind.Modulo,
	"&&": kind.LogicalAnd,
	"||": kind.LogicalOr,
	"<":  kind.LessThan,
	">":  kind.GreaterThan,
	"<=": kind.LessOrEqual,
	">=": kind.GreaterOrEqual,
	"==": kind.Equal,
	"!=": kind.NotEqual,
}
