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

//go:build !cgo

package javasrc

import "context"

// Available reports whether Java scanning is supported by this build.
func Available() bool { return false }

// ScanFile always fails with [ErrUnavailable] in builds without cgo.
func (Scanner) ScanFile(context.Context, string) ([]Finding, error) {
	return nil, ErrUnavailable
}

// Scan always fails with [ErrUnavailable] in builds without cgo.
func (Scanner) Scan(context.Context, []byte) ([]Finding, error) {
	return nil, ErrUnavailable
}
