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

package astutil

import (
	"go/ast"
	"go/token"

	"golang.org/x/tools/go/ast/inspector"
)

// InConstDecl reports whether the node at c is part of a const declaration.
func InConstDecl(c inspector.Cursor) bool {
	for d := range c.Enclosing((*ast.GenDecl)(nil)) {
		return d.Node().(*ast.GenDecl).Tok == token.CONST
	}

	return false
}
