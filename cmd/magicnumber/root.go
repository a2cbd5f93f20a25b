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

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/checker"
	"golang.org/x/tools/go/packages"

	"fillmore-labs.com/magicnumber/analyzer"
)

// errFoundIssues signals that magic numbers were reported.
var errFoundIssues = errors.New("magic numbers found")

// errLoad is returned when packages could not be loaded.
var errLoad = errors.New("package loading failed")

func newRootCmd() *cobra.Command {
	var o cliOptions

	cmd := &cobra.Command{
		Use:   "magicnumber [flags] [packages]",
		Short: "Find numeric literals that should be named constants",
		Long: `magicnumber reports numeric literals used directly in arithmetic,
comparisons, logical operators, index expressions, conditions and loops.

The values 0 and 1 are never reported. At the end of the run a summary of the
most frequent values and their contexts is printed.

Examples:
  magicnumber ./...
  magicnumber --top=5 --const-decls ./internal/...
  magicnumber java src/main/java`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGo(cmd, &o, args)
		},
	}

	o.register(cmd.PersistentFlags())
	cmd.Flags().BoolVar(&o.tests, "tests", false, "include test files")
	cmd.Flags().StringVar(&o.dir, "dir", "", "directory to load packages from")

	cmd.AddCommand(newJavaCmd(&o))

	return cmd
}

// runGo analyzes Go packages.
func runGo(cmd *cobra.Command, o *cliOptions, args []string) error {
	st, err := o.resolve(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), o.verbose)

	if len(args) == 0 {
		args = []string{"."}
	}

	session := st.newSession(cmd.OutOrStdout())

	opts := analyzer.Options{
		analyzer.WithGenerated(st.generated),
		analyzer.WithConstDecls(st.constDecls),
		analyzer.WithSession(session),
	}
	logger.Debug("Analyzer configured", slog.Any("options", opts), slog.Int("top", st.top), slog.Bool("summary", st.summary))

	start := time.Now()

	cfg := &packages.Config{
		Mode:    packages.LoadAllSyntax,
		Context: cmd.Context(),
		Dir:     o.dir,
		Tests:   o.tests,
	}

	pkgs, err := packages.Load(cfg, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", errLoad, err)
	}

	if n := packages.PrintErrors(pkgs); n > 0 {
		return fmt.Errorf("%w: %d errors", errLoad, n)
	}

	if o.tests {
		pkgs = withoutTestedPackages(pkgs)
	}

	logger.Debug("Packages loaded", slog.Int("count", len(pkgs)), slog.Duration("elapsed", time.Since(start)))

	a := analyzer.New(opts)

	graph, err := checker.Analyze([]*analysis.Analyzer{a}, pkgs, &checker.Options{})
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	var errs []error
	for _, act := range graph.Roots {
		if act.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", act.Package.PkgPath, act.Err))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return err
	}

	if err := graph.PrintText(cmd.OutOrStdout(), -1); err != nil {
		return err
	}

	session.End()

	logger.Debug("Analysis finished", slog.Int("occurrences", session.Occurrences()), slog.Duration("elapsed", time.Since(start)))

	if session.Occurrences() > 0 {
		return errFoundIssues
	}

	return nil
}

// withoutTestedPackages drops packages that also have a test variant in pkgs.
// The variant contains all files of the package, so analyzing both would
// record each literal twice.
func withoutTestedPackages(pkgs []*packages.Package) []*packages.Package {
	tested := make(map[string]struct{})
	for _, pkg := range pkgs {
		if pkg.ForTest != "" && pkg.PkgPath == pkg.ForTest {
			tested[pkg.PkgPath] = struct{}{}
		}
	}

	if len(tested) == 0 {
		return pkgs
	}

	return slices.DeleteFunc(pkgs, func(pkg *packages.Package) bool {
		_, ok := tested[pkg.PkgPath]

		return ok && pkg.ForTest == ""
	})
}
