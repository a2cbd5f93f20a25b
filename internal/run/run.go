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

package run

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/magicnumber/internal/astutil"
	"fillmore-labs.com/magicnumber/internal/classify"
	"fillmore-labs.com/magicnumber/internal/config"
	"fillmore-labs.com/magicnumber/internal/detect"
	"fillmore-labs.com/magicnumber/internal/literal"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Category is the diagnostic category of magic number reports.
const Category = "magicnumber"

// Run executes the magicnumber analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("magicnumber: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "MagicNumber")
	defer task.End()

	if p.Pkg != nil {
		trace.Log(ctx, "package", p.Pkg.Path())
	}

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if currentFile.NoLintFile() {
			continue
		}

		r.checkFile(ctx, p, currentFile, f)
	}

	return nil, nil
}

// checkFile evaluates every literal in a file and reports the magic numbers.
func (r *Options) checkFile(ctx context.Context, p *analysis.Pass, currentFile astutil.CurrentFile, f inspector.Cursor) {
	defer trace.StartRegion(ctx, "CheckFile").End()

	constDecls := r.Behavior.Enabled(config.IncludeConstDecls)

	for c := range f.Preorder((*ast.BasicLit)(nil)) {
		lit := c.Node().(*ast.BasicLit)

		if !constDecls && astutil.InConstDecl(c) {
			continue
		}

		if currentFile.NoLintComment(lit.End()) {
			continue
		}

		res := detect.Evaluate(r.Recorder, lit.Value, literal.FromBasicLit(lit), classify.Ancestors(c))
		if !res.Accepted {
			continue
		}

		p.Report(analysis.Diagnostic{
			Pos:      lit.Pos(),
			End:      lit.End(),
			Category: Category,
			Message:  res.Message,
		})
	}
}
