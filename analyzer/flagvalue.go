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
	"strconv"

	"fillmore-labs.com/magicnumber/internal/config"
)

// behaviorValue is a boolean [flag.Value] toggling a single [config.Behavior].
type behaviorValue struct {
	flags *config.Behaviors
	value config.Behavior
}

// newBehaviorValue returns a [flag.Value] bound to one behavior in flags.
func newBehaviorValue(flags *config.Behaviors, value config.Behavior) behaviorValue {
	return behaviorValue{flags: flags, value: value}
}

// Set implements [flag.Value].
func (f behaviorValue) Set(s string) error {
	b, err := parseBool(s)
	if err != nil {
		return err
	}

	f.flags.Set(f.value, b)

	return nil
}

// String implements [flag.Value].
func (f behaviorValue) String() string {
	if f.flags == nil {
		return "false"
	}

	return strconv.FormatBool(f.flags.Enabled(f.value))
}

// Get implements [flag.Getter].
func (f behaviorValue) Get() any {
	if f.flags == nil {
		return false
	}

	return f.flags.Enabled(f.value)
}

// IsBoolFlag returns true to indicate that this is a boolean [flag.Value].
func (behaviorValue) IsBoolFlag() bool { return true }

// parseBool is [strconv.ParseBool] with on/off.
func parseBool(str string) (bool, error) {
	switch str {
	case "on", "On", "ON":
		return true, nil
	case "off", "Off", "OFF":
		return false, nil
	}

	return strconv.ParseBool(str)
}
