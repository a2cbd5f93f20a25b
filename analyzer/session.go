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

package analyzer

import (
	"io"
	"sync"

	"fillmore-labs.com/magicnumber/internal/aggregate"
	"fillmore-labs.com/magicnumber/internal/kind"
)

// DefaultTopN is the number of values listed in a session summary.
const DefaultTopN = aggregate.DefaultTopN

// Session accumulates magic number occurrences over one analysis run.
//
// Analyzers created with [WithSession] record into the session concurrently.
// The host calls [Session.End] once all analysis work is finished.
type Session struct {
	state aggregate.State

	mu    sync.Mutex
	hooks []func(*Session)
	once  sync.Once
}

// NewSession starts a new analysis session.
func NewSession() *Session {
	return &Session{}
}

// OnEnd registers a callback to run when the session ends.
// Callbacks run in registration order.
func (s *Session) OnEnd(hook func(*Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.hooks = append(s.hooks, hook)
}

// End runs the registered callbacks. Only the first call has an effect.
func (s *Session) End() {
	s.once.Do(func() {
		s.mu.Lock()
		hooks := s.hooks
		s.mu.Unlock()

		for _, hook := range hooks {
			hook(s)
		}
	})
}

// SummaryRow is one value of a session summary.
type SummaryRow struct {
	Value   float64
	Total   int
	PerKind map[string]int
}

// Summary returns the topN most frequent magic numbers of the session.
func (s *Session) Summary(topN int) []SummaryRow {
	rows := s.state.Summarize(topN)

	summary := make([]SummaryRow, 0, len(rows))
	for _, row := range rows {
		perKind := make(map[string]int, len(row.PerKind))
		for _, kc := range row.PerKind {
			perKind[kc.Kind.String()] = kc.Count
		}

		summary = append(summary, SummaryRow{Value: row.Value, Total: row.Total, PerKind: perKind})
	}

	return summary
}

// Occurrences returns the number of magic numbers recorded in the session.
func (s *Session) Occurrences() int {
	return s.state.Occurrences()
}

// TotalsByContext returns the number of occurrences per syntactic context.
func (s *Session) TotalsByContext() map[string]int {
	totals := make(map[string]int)
	for _, kc := range s.state.TotalsByKind() {
		totals[kc.Kind.String()] = kc.Count
	}

	return totals
}

// WriteSummary renders the topN most frequent magic numbers to w.
func (s *Session) WriteSummary(w io.Writer, topN int) error {
	return s.state.WriteSummary(w, topN)
}

// Record counts one accepted occurrence. Hosts other than the analyzer use it
// to feed the session; it is safe for concurrent use.
func (s *Session) Record(value float64, k kind.Kind) {
	s.state.Record(value, k)
}
