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

// Package detect combines literal filtering, context classification and aggregation
// into a single evaluation per literal.
package detect

import (
	"go/constant"
	"iter"

	"fillmore-labs.com/magicnumber/internal/classify"
	"fillmore-labs.com/magicnumber/internal/kind"
	"fillmore-labs.com/magicnumber/internal/literal"
)

// Recorder accumulates accepted occurrences.
type Recorder interface {
	Record(value float64, k kind.Kind)
}

// Result is the outcome of evaluating one literal.
type Result struct {
	Accepted bool
	Value    float64
	Kind     kind.Kind
	Message  string
}

// Evaluate decides whether the literal with source text and value v is a magic
// number, given the kinds of its ancestors ordered nearest first.
//
// Accepted literals are recorded with rec, when it is not nil.
func Evaluate(rec Recorder, text string, v constant.Value, path iter.Seq[kind.Kind]) Result {
	value, ok := literal.Filter(v)
	if !ok {
		return Result{}
	}

	c := classify.Classify(path)
	if !c.Relevant() {
		return Result{}
	}

	if rec != nil {
		rec.Record(value, c.Kind)
	}

	return Result{
		Accepted: true,
		Value:    value,
		Kind:     c.Kind,
		Message:  Message(text, c.Kind),
	}
}

// Message formats the diagnostic for a magic number.
func Message(text string, k kind.Kind) string {
	return "magic number " + text + " in " + k.String() + "; consider replacing it with a named constant"
}
