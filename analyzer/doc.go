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

// Package analyzer implements the magicnumber static analysis pass.
//
// # Overview
//
// MagicNumber detects numeric literals that are used directly in expressions
// instead of being bound to a named constant.
//
// A literal is reported when it is neither 0 nor 1 and its nearest enclosing
// relevant construct is an arithmetic operation, a comparison, a logical
// operator, an index or slice expression, an if statement or a for loop.
// Literals elsewhere, like plain call arguments or assignments, are ignored.
//
// # Example
//
//	func retry(attempts int) bool {
//	    return attempts < 5 // magic number 5 in less than comparison
//	}
//
// After extracting the constant:
//
//	const maxAttempts = 5
//
//	func retry(attempts int) bool {
//	    return attempts < maxAttempts
//	}
//
// Literals inside constant declarations are not reported unless enabled with
// [WithConstDecls]. A //nolint:magicnumber comment suppresses a line or, in
// the package doc comment, a file.
//
// # Summary
//
// Analyzers created with [WithSession] count every reported literal by value
// and context. The host ends the [Session] after the run to print the most
// common offenders.
package analyzer
