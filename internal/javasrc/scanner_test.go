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

//go:build cgo

package javasrc_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"fillmore-labs.com/magicnumber/internal/aggregate"
	. "fillmore-labs.com/magicnumber/internal/javasrc"
	"fillmore-labs.com/magicnumber/internal/kind"
)

const source = `package demo;

public class Demo {
    private static final int LIMIT = 10 * 2;
    private int size = 4 + count;

    int check(int[] a, int x) {
        if (x < 7) {
            System.out.println(42);
        }
        int y = a[5] + 0;
        do {
            x--;
        } while (x > 3);
        String s = "9";
        return (int) (x * 2.5f) % 1;
    }
}
`

func TestScan(t *testing.T) {
	t.Parallel()

	var state aggregate.State

	s := Scanner{Recorder: &state}

	got, err := s.Scan(t.Context(), []byte(source))
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	want := []Finding{
		{Line: 5, Column: 24, Text: "4", Value: 4, Kind: kind.Add},
		{Line: 8, Column: 17, Text: "7", Value: 7, Kind: kind.LessThan},
		{Line: 9, Column: 32, Text: "42", Value: 42, Kind: kind.IfStatement},
		{Line: 11, Column: 19, Text: "5", Value: 5, Kind: kind.ArrayIndex},
		{Line: 14, Column: 22, Text: "3", Value: 3, Kind: kind.GreaterThan},
		{Line: 16, Column: 27, Text: "2.5f", Value: 2.5, Kind: kind.Multiply},
	}

	if diff := cmp.Diff(want, got, cmpopts.IgnoreFields(Finding{}, "Message")); diff != "" {
		t.Errorf("Scan() mismatch (-want +got):\n%s", diff)
	}

	if n := state.Occurrences(); n != len(want) {
		t.Errorf("Recorded %d occurrences, want %d", n, len(want))
	}
}

func TestScanConstDecls(t *testing.T) {
	t.Parallel()

	s := Scanner{ConstDecls: true}

	got, err := s.Scan(t.Context(), []byte(source))
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	var texts []string
	for _, f := range got[:2] {
		texts = append(texts, f.Text)
	}

	if diff := cmp.Diff([]string{"10", "2"}, texts); diff != "" {
		t.Errorf("Scan() constant findings mismatch (-want +got):\n%s", diff)
	}
}

func TestDoWhile(t *testing.T) {
	t.Parallel()

	const src = `class Loop {
    void run(int x) {
        do {
            System.out.println(12);
        } while (x-- != 0);
    }
}
`

	got, err := Scanner{}.Scan(t.Context(), []byte(src))
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if len(got) != 1 || got[0].Kind != kind.DoWhileLoop {
		t.Fatalf("Scan() = %+v, want one do-while finding", got)
	}

	const want = "magic number 12 in do-while loop; consider replacing it with a named constant"
	if got[0].Message != want {
		t.Errorf("Message = %q, want %q", got[0].Message, want)
	}
}

func TestScanFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "Demo.java")
	if err := os.WriteFile(path, []byte(source), 0o600); err != nil {
		t.Fatalf("Can't write source: %v", err)
	}

	got, err := Scanner{}.ScanFile(t.Context(), path)
	if err != nil {
		t.Fatalf("ScanFile failed: %v", err)
	}

	for _, f := range got {
		if f.Path != path {
			t.Errorf("Finding path = %q, want %q", f.Path, path)
		}
	}

	if _, err := (Scanner{}).ScanFile(t.Context(), filepath.Join(t.TempDir(), "Missing.java")); err == nil {
		t.Error("ScanFile succeeded on missing file")
	}
}
