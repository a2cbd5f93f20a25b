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

package aggregate_test

import (
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "fillmore-labs.com/magicnumber/internal/aggregate"
	"fillmore-labs.com/magicnumber/internal/kind"
)

func TestRecordBreakdown(t *testing.T) {
	t.Parallel()

	var s State
	for range 3 {
		s.Record(7, kind.LessThan)
	}

	s.Record(7, kind.ArrayIndex)

	want := []Row{{
		Value: 7,
		Total: 4,
		PerKind: []KindCount{
			{Kind: kind.LessThan, Count: 3},
			{Kind: kind.ArrayIndex, Count: 1},
		},
	}}

	if diff := cmp.Diff(want, s.Summarize(DefaultTopN)); diff != "" {
		t.Errorf("Summarize() mismatch (-want +got):\n%s", diff)
	}

	wantTotals := []KindCount{
		{Kind: kind.LessThan, Count: 3},
		{Kind: kind.ArrayIndex, Count: 1},
	}

	if diff := cmp.Diff(wantTotals, s.TotalsByKind()); diff != "" {
		t.Errorf("TotalsByKind() mismatch (-want +got):\n%s", diff)
	}
}

func TestSummarizeRanking(t *testing.T) {
	t.Parallel()

	var s State

	record := func(value float64, n int) {
		for range n {
			s.Record(value, kind.Equal)
		}
	}

	record(3, 5)
	record(9, 12)
	record(2, 1)

	var got []float64
	for _, row := range s.Summarize(DefaultTopN) {
		got = append(got, row.Value)
	}

	if diff := cmp.Diff([]float64{9, 3, 2}, got); diff != "" {
		t.Errorf("Summarize() order mismatch (-want +got):\n%s", diff)
	}
}

func TestSummarizeTieBreak(t *testing.T) {
	t.Parallel()

	var s State
	for _, v := range []float64{5, -2, 3.5, 100} {
		s.Record(v, kind.Add)
	}

	var got []float64
	for _, row := range s.Summarize(0) {
		got = append(got, row.Value)
	}

	if diff := cmp.Diff([]float64{-2, 3.5, 5, 100}, got); diff != "" {
		t.Errorf("Summarize() tie order mismatch (-want +got):\n%s", diff)
	}
}

func TestSummarizeTruncation(t *testing.T) {
	t.Parallel()

	var s State
	for i := range 15 {
		s.Record(float64(i+2), kind.Multiply)
	}

	if got := len(s.Summarize(DefaultTopN)); got != DefaultTopN {
		t.Errorf("Summarize(%d) returned %d rows", DefaultTopN, got)
	}

	if got := len(s.Summarize(0)); got != 15 {
		t.Errorf("Summarize(0) returned %d rows, want 15", got)
	}

	if got := s.Len(); got != 15 {
		t.Errorf("Len() = %d, want 15", got)
	}
}

func TestRecordCanonicalValues(t *testing.T) {
	t.Parallel()

	var s State
	s.Record(math.NaN(), kind.Divide)
	s.Record(math.Float64frombits(0x7ff8_0000_0000_0002), kind.Divide)
	s.Record(math.Inf(1), kind.Divide)
	s.Record(math.Inf(1), kind.Divide)

	rows := s.Summarize(0)
	if len(rows) != 2 {
		t.Fatalf("Summarize() returned %d rows, want 2", len(rows))
	}

	for _, row := range rows {
		if row.Total != 2 {
			t.Errorf("Value %g total = %d, want 2", row.Value, row.Total)
		}
	}
}

func TestRecordConcurrent(t *testing.T) {
	t.Parallel()

	const workers, perWorker = 8, 1000

	var (
		s  State
		wg sync.WaitGroup
	)

	for range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for range perWorker {
				s.Record(42, kind.GreaterThan)
			}
		}()
	}

	wg.Wait()

	if got, want := s.Occurrences(), workers*perWorker; got != want {
		t.Errorf("Occurrences() = %d, want %d", got, want)
	}
}

func TestWriteSummary(t *testing.T) {
	t.Parallel()

	var s State
	for range 12 {
		s.Record(9, kind.LessThan)
	}

	for range 4 {
		s.Record(3, kind.ArrayIndex)
	}

	s.Record(3, kind.Add)
	s.Record(0.25, kind.Multiply)

	const want = `Magic number summary: top 2 of 3 values, 18 occurrences
  9: 12 occurrences
      less than comparison: 12
  3: 5 occurrences
      array index: 4
      addition: 1
End of magic number summary
`

	var out strings.Builder
	if err := s.WriteSummary(&out, 2); err != nil {
		t.Fatalf("WriteSummary() failed: %v", err)
	}

	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("WriteSummary() mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteSummaryEmpty(t *testing.T) {
	t.Parallel()

	const want = `Magic number summary: top 0 of 0 values, 0 occurrences
  no magic numbers found
End of magic number summary
`

	var (
		s   State
		out strings.Builder
	)

	if err := s.WriteSummary(&out, DefaultTopN); err != nil {
		t.Fatalf("WriteSummary() failed: %v", err)
	}

	if got := out.String(); got != want {
		t.Errorf("WriteSummary() = %q, want %q", got, want)
	}
}
