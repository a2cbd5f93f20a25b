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

package javasrc

import (
	"context"
	"fmt"
	"iter"
	"os"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"

	"fillmore-labs.com/magicnumber/internal/detect"
	"fillmore-labs.com/magicnumber/internal/kind"
)

// Available reports whether Java scanning is supported by this build.
func Available() bool { return true }

// ScanFile reads and scans the Java source at path.
func (s Scanner) ScanFile(ctx context.Context, path string) ([]Finding, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("can't read source: %w", err)
	}

	findings, err := s.Scan(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	for i := range findings {
		findings[i].Path = path
	}

	return findings, nil
}

// Scan parses a Java source and returns its magic numbers in source order.
func (s Scanner) Scan(ctx context.Context, src []byte) ([]Finding, error) {
	// Parsers are not safe for concurrent use, create one per call
	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(java.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("tree-sitter parse failed: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, nil
	}

	var findings []Finding

	for n := range preorder(root) {
		if _, ok := numericLiterals[n.Type()]; !ok {
			continue
		}

		if !s.ConstDecls && inConstField(n) {
			continue
		}

		text := n.Content(src)

		res := detect.Evaluate(s.Recorder, text, ParseNumber(n.Type(), text), ancestors(n, src))
		if !res.Accepted {
			continue
		}

		start := n.StartPoint()
		findings = append(findings, Finding{
			Line:    int(start.Row) + 1,
			Column:  int(start.Column) + 1,
			Text:    text,
			Value:   res.Value,
			Kind:    res.Kind,
			Message: res.Message,
		})
	}

	return findings, nil
}

// preorder yields n and all its descendants in source order.
func preorder(n *sitter.Node) iter.Seq[*sitter.Node] {
	return func(yield func(*sitter.Node) bool) {
		walk(n, yield)
	}
}

func walk(n *sitter.Node, yield func(*sitter.Node) bool) bool {
	if !yield(n) {
		return false
	}

	for i := range int(n.ChildCount()) {
		if c := n.Child(i); c != nil && !walk(c, yield) {
			return false
		}
	}

	return true
}

// ancestors yields the kinds of the nodes enclosing n, nearest first.
func ancestors(n *sitter.Node, src []byte) iter.Seq[kind.Kind] {
	return func(yield func(kind.Kind) bool) {
		for p := n.Parent(); p != nil; p = p.Parent() {
			var operator string
			if p.Type() == "binary_expression" {
				if op := p.ChildByFieldName("operator"); op != nil {
					operator = op.Content(src)
				}
			}

			if !yield(KindOf(p.Type(), operator)) {
				return
			}
		}
	}
}

// inConstField reports whether n is part of a static final field declaration.
func inConstField(n *sitter.Node) bool {
	for p := n.Parent(); p != nil; p = p.Parent() {
		switch p.Type() {
		case "field_declaration", "constant_declaration":
			return p.Type() == "constant_declaration" || hasModifiers(p, "static", "final")

		case "method_declaration", "constructor_declaration", "lambda_expression", "class_body":
			return false
		}
	}

	return false
}

// hasModifiers reports whether the declaration carries all given modifiers.
func hasModifiers(decl *sitter.Node, modifiers ...string) bool {
	var found map[string]bool

	for i := range int(decl.ChildCount()) {
		c := decl.Child(i)
		if c == nil || c.Type() != "modifiers" {
			continue
		}

		found = make(map[string]bool)
		for j := range int(c.ChildCount()) {
			if m := c.Child(j); m != nil {
				found[m.Type()] = true
			}
		}
	}

	for _, m := range modifiers {
		if !found[m] {
			return false
		}
	}

	return true
}
