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

package a

import "fmt"

const limit = 10 * 2

func index(a []int) int {
	return a[5] // want "magic number 5 in array index"
}

func safe(x int) int {
	return x + 0 + 1
}

func printed() {
	fmt.Println(42)
}

func compare(x int) bool {
	return x < 7 // want "magic number 7 in less than comparison"
}

func nested(a []int, i int) int {
	return a[i+3] // want "magic number 3 in addition"
}

func floats(r float64) float64 {
	return r * 3.14 // want "magic number 3.14 in multiplication"
}

func masked(x int) bool {
	return x&0xff == 0x7f // want "magic number 0xff in equality comparison" "magic number 0x7f in equality comparison"
}

func negative(x int) int {
	return x - -4 // want "magic number 4 in subtraction"
}

func loop() {
	for i := 0; i < 3; i++ { // want "magic number 3 in less than comparison"
		fmt.Println(i)
	}

	n := 10
	for n > 2 { // want "magic number 2 in greater than comparison"
		n--
	}
}

func branch(ok bool) {
	if ok {
		fmt.Println(99) // want "magic number 99 in if statement"
	}
}

func local(x int) int {
	const factor = 3 * 4

	return x * factor
}

func text(s string, r rune) bool {
	return s == "5" || r == 'a'
}

func suppressed(x int) int {
	return x * 60 //nolint:magicnumber
}

func logical(x, y int) bool {
	return x%2 == 0 && y/8 != 5 // want "magic number 2 in modulo" "magic number 8 in division" "magic number 5 in inequality comparison"
}

func bounds(x int) bool {
	return x <= 100 || x >= 2.5e3 // want "magic number 100 in less or equal comparison" "magic number 2.5e3 in greater or equal comparison"
}
