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

// Package aggregate accumulates magic number occurrences over an analysis session.
package aggregate

import (
	"cmp"
	"math"
	"slices"
	"sync"

	"fillmore-labs.com/magicnumber/internal/kind"
)

// DefaultTopN is the number of values listed in a summary.
const DefaultTopN = 10

// State holds occurrence counters by value and by context.
//
// The zero value is ready for use. Record is safe for concurrent use;
// summaries must happen after all Record calls.
type State struct {
	mu sync.Mutex

	values map[valueKey]*entry
	totals [numSlots]int
}

// numSlots covers every [kind.Kind] value.
const numSlots = math.MaxUint8 + 1

type entry struct {
	value   float64
	total   int
	perKind map[kind.Kind]int
}

// valueKey identifies a float64 by its bits, with all NaNs and both zeros collapsed.
type valueKey uint64

func keyOf(value float64) valueKey {
	switch {
	case math.IsNaN(value):
		return valueKey(math.Float64bits(math.NaN()))

	case value == 0:
		return 0

	default:
		return valueKey(math.Float64bits(value))
	}
}

// Record counts one accepted occurrence of value in context k.
func (s *State) Record(value float64, k kind.Kind) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.values == nil {
		s.values = make(map[valueKey]*entry)
	}

	key := keyOf(value)

	e, ok := s.values[key]
	if !ok {
		e = &entry{value: value, perKind: make(map[kind.Kind]int)}
		s.values[key] = e
	}

	e.total++
	e.perKind[k]++
	s.totals[k]++
}

// KindCount is the number of occurrences in one context.
type KindCount struct {
	Kind  kind.Kind
	Count int
}

// Row is one summarized value.
type Row struct {
	Value   float64
	Total   int
	PerKind []KindCount
}

// Summarize returns the topN most frequent values, most frequent first.
// Ties are ordered by ascending value, NaN first. A topN <= 0 returns all values.
func (s *State) Summarize(topN int) []Row {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := make([]*entry, 0, len(s.values))
	for _, e := range s.values {
		entries = append(entries, e)
	}

	slices.SortFunc(entries, func(a, b *entry) int {
		if c := cmp.Compare(b.total, a.total); c != 0 {
			return c
		}

		return cmp.Compare(a.value, b.value)
	})

	if topN > 0 && len(entries) > topN {
		entries = entries[:topN]
	}

	rows := make([]Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, Row{Value: e.value, Total: e.total, PerKind: sortedCounts(e.perKind)})
	}

	return rows
}

// TotalsByKind returns the occurrence count per context, in [kind.All] order.
// Contexts without occurrences are omitted.
func (s *State) TotalsByKind() []KindCount {
	s.mu.Lock()
	defer s.mu.Unlock()

	var counts []KindCount

	for k := range kind.All() {
		if n := s.totals[k]; n > 0 {
			counts = append(counts, KindCount{Kind: k, Count: n})
		}
	}

	return counts
}

// Len returns the number of distinct values recorded.
func (s *State) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.values)
}

// Occurrences returns the number of recorded occurrences.
func (s *State) Occurrences() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int
	for _, e := range s.values {
		n += e.total
	}

	return n
}

func sortedCounts(perKind map[kind.Kind]int) []KindCount {
	counts := make([]KindCount, 0, len(perKind))
	for k, n := range perKind {
		counts = append(counts, KindCount{Kind: k, Count: n})
	}

	slices.SortFunc(counts, func(a, b KindCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}

		return cmp.Compare(a.Kind, b.Kind)
	})

	return counts
}
