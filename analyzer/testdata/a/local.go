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

import "test/collection"

// Pop-unwrap bound to a fresh local
func drainSum(s collection.Stack[int]) int {
	sum := 0
	for !s.IsEmpty() {
		x := s.Pop().Unwrap() // want `Loop drains 's' with a forced unwrap`
		sum += x
	}

	return sum
}

// The unwrap-with-message variant is recognized equivalently
func drainExpect(s collection.Stack[string]) {
	for !s.IsEmpty() {
		item := s.Pop().Expect("stack drained concurrently") // want `Loop drains 's' with a forced unwrap`
		handle(item)
	}
}

// Plain var declarations bind the same way
func drainVar(s collection.Stack[int]) {
	for !s.IsEmpty() {
		var x = s.Pop().Unwrap() // want `Loop drains 's' with a forced unwrap`
		use(x)
	}
}

type worker struct {
	pending collection.Stack[string]
}

// The receiver can be any path expression, not just a plain identifier
func (w *worker) drainField() {
	for !w.pending.IsEmpty() {
		item := w.pending.Pop().Unwrap() // want `Loop drains 'w.pending' with a forced unwrap`
		handle(item)
	}
}

func handle(string) {}

func use(int) {}
