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

package detect_test

import (
	"go/constant"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"fillmore-labs.com/magicnumber/internal/aggregate"
	. "fillmore-labs.com/magicnumber/internal/detect"
	"fillmore-labs.com/magicnumber/internal/kind"
)

func TestEvaluate(t *testing.T) {
	t.Parallel()

	relevant := []kind.Kind{kind.None, kind.ArrayIndex, kind.Add, kind.IfStatement}

	tests := []struct {
		name  string
		text  string
		value constant.Value
		path  []kind.Kind
		want  Result
	}{
		{
			name:  "array_index",
			text:  "5",
			value: constant.MakeInt64(5),
			path:  relevant,
			want: Result{
				Accepted: true,
				Value:    5,
				Kind:     kind.ArrayIndex,
				Message:  "magic number 5 in array index; consider replacing it with a named constant",
			},
		},
		{
			name:  "safe_zero",
			text:  "0",
			value: constant.MakeInt64(0),
			path:  []kind.Kind{kind.Add},
		},
		{
			name:  "safe_one",
			text:  "1.0",
			value: constant.MakeFloat64(1),
			path:  relevant,
		},
		{
			name:  "irrelevant",
			text:  "42",
			value: constant.MakeInt64(42),
			path:  []kind.Kind{kind.None, kind.None},
		},
		{
			name:  "no_ancestors",
			text:  "42",
			value: constant.MakeInt64(42),
		},
		{
			name:  "string",
			text:  `"5"`,
			value: constant.MakeString("5"),
			path:  relevant,
		},
		{
			name:  "hex_text",
			text:  "0x20",
			value: constant.MakeInt64(32),
			path:  []kind.Kind{kind.DoWhileLoop},
			want: Result{
				Accepted: true,
				Value:    32,
				Kind:     kind.DoWhileLoop,
				Message:  "magic number 0x20 in do-while loop; consider replacing it with a named constant",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var state aggregate.State

			got := Evaluate(&state, tt.text, tt.value, slices.Values(tt.path))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Evaluate() mismatch (-want +got):\n%s", diff)
			}

			want := 0
			if tt.want.Accepted {
				want = 1
			}

			if n := state.Occurrences(); n != want {
				t.Errorf("Recorded %d occurrences, want %d", n, want)
			}
		})
	}
}

func TestEvaluateScenario(t *testing.T) {
	t.Parallel()

	var state aggregate.State

	// a[5]
	if r := Evaluate(&state, "5", constant.MakeInt64(5), slices.Values([]kind.Kind{kind.ArrayIndex})); !r.Accepted || r.Kind != kind.ArrayIndex {
		t.Errorf("a[5] = %+v, want accepted array index", r)
	}

	// x + 0
	if r := Evaluate(&state, "0", constant.MakeInt64(0), slices.Values([]kind.Kind{kind.Add})); r.Accepted {
		t.Errorf("x + 0 = %+v, want rejected", r)
	}

	// print(42)
	if r := Evaluate(&state, "42", constant.MakeInt64(42), slices.Values([]kind.Kind{kind.None, kind.None})); r.Accepted {
		t.Errorf("print(42) = %+v, want rejected", r)
	}

	rows := state.Summarize(aggregate.DefaultTopN)
	if len(rows) != 1 || rows[0].Value != 5 {
		t.Errorf("Summarize() = %+v, want only 5", rows)
	}
}

func TestEvaluateNilRecorder(t *testing.T) {
	t.Parallel()

	r := Evaluate(nil, "3", constant.MakeInt64(3), slices.Values([]kind.Kind{kind.Modulo}))
	if !r.Accepted || r.Kind != kind.Modulo {
		t.Errorf("Evaluate() = %+v, want accepted modulo", r)
	}
}
