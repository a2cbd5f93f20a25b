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

// Command magicnumber reports numeric literals that should be named constants
// and prints a summary of the most common ones.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
)

// exitFoundIssues is the exit status when magic numbers were found, as with singlechecker.
const exitFoundIssues = 3

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := newRootCmd().ExecuteContext(ctx)

	stop()

	switch {
	case err == nil:

	case errors.Is(err, errFoundIssues):
		os.Exit(exitFoundIssues)

	default:
		fmt.Fprintln(os.Stderr, "magicnumber:", err)
		os.Exit(1)
	}
}
