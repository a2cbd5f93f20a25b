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

package aggregate

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// WriteSummary renders the topN most frequent values to w.
//
// The output is deterministic for identical statistics:
//
//	Magic number summary: top 2 of 3 values, 17 occurrences
//	  9: 12 occurrences
//	      less than comparison: 12
//	  3: 5 occurrences
//	      array index: 4
//	      addition: 1
//	End of magic number summary
func (s *State) WriteSummary(w io.Writer, topN int) error {
	rows := s.Summarize(topN)
	distinct, occurrences := s.Len(), s.Occurrences()

	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "Magic number summary: top %d of %d values, %s\n",
		len(rows), distinct, plural(occurrences, "occurrence"))

	if len(rows) == 0 {
		bw.WriteString("  no magic numbers found\n")
	}

	for _, row := range rows {
		fmt.Fprintf(bw, "  %s: %s\n", FormatValue(row.Value), plural(row.Total, "occurrence"))

		for _, kc := range row.PerKind {
			fmt.Fprintf(bw, "      %s: %d\n", kc.Kind, kc.Count)
		}
	}

	bw.WriteString("End of magic number summary\n")

	return bw.Flush()
}

// FormatValue formats a recorded value in its shortest exact form.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}

	return strconv.Itoa(n) + " " + noun + "s"
}
