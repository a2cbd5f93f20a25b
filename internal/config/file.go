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

package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFile is the settings file looked up in the working directory.
const DefaultFile = ".magicnumber.yaml"

// File holds the settings read from a YAML configuration file.
// Unset fields are nil and leave the defaults untouched.
type File struct {
	// Generated enables checks in generated files.
	Generated *bool `yaml:"generated"`
	// ConstDecls enables checks of literals inside constant declarations.
	ConstDecls *bool `yaml:"const-decls"`
	// Summary enables the end of session summary.
	Summary *bool `yaml:"summary"`
	// Top is the number of values in the summary.
	Top *int `yaml:"top"`
}

// Load reads settings from path.
// A missing file is an error unless optional is set, in which case empty settings are returned.
func Load(path string, optional bool) (File, error) {
	f, err := os.Open(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return File{}, nil
		}

		return File{}, fmt.Errorf("can't open config: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode parses YAML settings, rejecting unknown keys.
func Decode(r io.Reader) (File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file File
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("can't parse config: %w", err)
	}

	return file, nil
}

// Apply enables or disables behaviors for the settings present in the file.
func (f File) Apply(b *Behaviors) {
	if f.Generated != nil {
		b.Set(IncludeGenerated, *f.Generated)
	}

	if f.ConstDecls != nil {
		b.Set(IncludeConstDecls, *f.ConstDecls)
	}
}
