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
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"fillmore-labs.com/magicnumber/analyzer"
	"fillmore-labs.com/magicnumber/internal/config"
)

// cliOptions holds the command line flag values.
type cliOptions struct {
	configFile string
	top        int
	summary    bool
	generated  bool
	constDecls bool
	verbose    bool

	// Go packages only
	tests bool
	dir   string
}

func (o *cliOptions) register(fs *pflag.FlagSet) {
	fs.StringVar(&o.configFile, "config", "", "YAML settings file (default "+config.DefaultFile+" if present)")
	fs.IntVar(&o.top, "top", analyzer.DefaultTopN, "number of values in the summary, 0 for all")
	fs.BoolVar(&o.summary, "summary", true, "print a summary of the most frequent magic numbers")
	fs.BoolVar(&o.generated, "generated", false, "check generated files")
	fs.BoolVar(&o.constDecls, "const-decls", false, "check literals inside constant declarations")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "enable debug logging")
}

// settings are the effective options after merging the settings file and flags.
type settings struct {
	top        int
	summary    bool
	generated  bool
	constDecls bool
}

// resolve merges the settings file with the flags. Flags set on the command line take precedence.
func (o *cliOptions) resolve(cmd *cobra.Command) (settings, error) {
	path, optional := o.configFile, false
	if path == "" {
		path, optional = config.DefaultFile, true
	}

	file, err := config.Load(path, optional)
	if err != nil {
		return settings{}, err
	}

	behavior := config.DefaultBehaviors()
	file.Apply(&behavior)

	st := settings{
		top:        o.top,
		summary:    o.summary,
		generated:  behavior.Enabled(config.IncludeGenerated),
		constDecls: behavior.Enabled(config.IncludeConstDecls),
	}

	flags := cmd.Flags()

	if file.Top != nil && !flags.Changed("top") {
		st.top = *file.Top
	}

	if file.Summary != nil && !flags.Changed("summary") {
		st.summary = *file.Summary
	}

	if flags.Changed("generated") {
		st.generated = o.generated
	}

	if flags.Changed("const-decls") {
		st.constDecls = o.constDecls
	}

	if st.top < 0 {
		return settings{}, fmt.Errorf("invalid summary size %d", st.top)
	}

	return st, nil
}

// newSession starts a session that prints its summary to w when enabled.
func (st settings) newSession(w io.Writer) *analyzer.Session {
	session := analyzer.NewSession()

	if st.summary {
		top := st.top
		session.OnEnd(func(s *analyzer.Session) {
			if err := s.WriteSummary(w, top); err != nil {
				slog.Error("Can't write summary", slog.Any("error", err))
			}
		})
	}

	return session
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
