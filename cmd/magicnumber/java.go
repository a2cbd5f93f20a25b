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
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"fillmore-labs.com/magicnumber/internal/javasrc"
)

func newJavaCmd(o *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "java [flags] [paths]",
		Short: "Find magic numbers in Java sources",
		Long: `Scan Java source files for magic numbers.

Directories are searched recursively for .java files. Literals in static final
field initializers are skipped unless --const-decls is set.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJava(cmd, o, args)
		},
	}
}

// runJava scans Java sources.
func runJava(cmd *cobra.Command, o *cliOptions, args []string) error {
	if !javasrc.Available() {
		return javasrc.ErrUnavailable
	}

	st, err := o.resolve(cmd)
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), o.verbose)

	if len(args) == 0 {
		args = []string{"."}
	}

	files, err := javaFiles(args)
	if err != nil {
		return err
	}

	logger.Debug("Java sources found", slog.Int("count", len(files)))

	start := time.Now()

	session := st.newSession(cmd.OutOrStdout())
	scanner := javasrc.Scanner{Recorder: session, ConstDecls: st.constDecls}

	results := make([][]javasrc.Finding, len(files))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range files {
		g.Go(func() error {
			findings, err := scanner.ScanFile(ctx, path)
			results[i] = findings

			return err
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	for _, findings := range results {
		for _, f := range findings {
			fmt.Fprintf(w, "%s:%d:%d: %s\n", f.Path, f.Line, f.Column, f.Message)
		}
	}

	session.End()

	logger.Debug("Scan finished", slog.Int("occurrences", session.Occurrences()), slog.Duration("elapsed", time.Since(start)))

	if session.Occurrences() > 0 {
		return errFoundIssues
	}

	return nil
}

// javaFiles expands paths into a sorted list of Java sources.
// Hidden directories are skipped.
func javaFiles(paths []string) ([]string, error) {
	var files []string

	for _, root := range paths {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != root && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}

				return nil
			}

			if filepath.Ext(path) == ".java" {
				files = append(files, path)
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("can't list sources: %w", err)
		}
	}

	slices.Sort(files)

	return slices.Compact(files), nil
}
