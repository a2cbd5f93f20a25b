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

// Package classify determines the syntactic context governing a literal.
package classify

import (
	"iter"

	"fillmore-labs.com/magicnumber/internal/kind"
)

// Result is the outcome of a classification.
// The zero value means the literal has no relevant context.
type Result struct {
	Kind kind.Kind
}

// Irrelevant is the [Result] for literals without a relevant enclosing construct.
var Irrelevant = Result{}

// Relevant reports whether a relevant context was found.
func (r Result) Relevant() bool { return r.Kind.Relevant() }

// Classify returns the first relevant kind of path, which is ordered from the
// literal's parent toward the root.
//
// Kinds that are not in the relevant set are skipped, so the nearest
// relevant construct wins even with parentheses or conversions in between.
func Classify(path iter.Seq[kind.Kind]) Result {
	if path == nil {
		return Irrelevant
	}

	for k := range path {
		if k.Relevant() {
			return Result{Kind: k}
		}
	}

	return Irrelevant
}
