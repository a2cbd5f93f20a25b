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

// Package javasrc finds magic numbers in Java sources.
//
// Sources are parsed with tree-sitter. Node types of the Java grammar are
// mapped to [kind.Kind] values and fed through the same classification and
// aggregation as Go sources. Parsing requires cgo; without it [Available]
// reports false and scans fail with [ErrUnavailable].
package javasrc

import (
	"errors"

	"fillmore-labs.com/magicnumber/internal/detect"
	"fillmore-labs.com/magicnumber/internal/kind"
)

// ErrUnavailable is returned when the scanner was built without cgo.
var ErrUnavailable = errors.New("java scanning requires cgo (tree-sitter)")

// Finding is a magic number found in a Java source.
type Finding struct {
	Path    string
	Line    int // 1-based
	Column  int // 1-based
	Text    string
	Value   float64
	Kind    kind.Kind
	Message string
}

// Scanner finds magic numbers in Java sources.
type Scanner struct {
	// Recorder receives accepted occurrences. Nil disables aggregation.
	Recorder detect.Recorder

	// ConstDecls enables checks of literals in static final field initializers.
	ConstDecls bool
}
