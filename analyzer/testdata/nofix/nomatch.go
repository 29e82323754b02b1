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

package nofix

import "test/collection"

// Different receivers in the emptiness check and the pop
func mismatched(a, b collection.Stack[int]) {
	for !a.IsEmpty() {
		x := b.Pop().Unwrap()
		use(x)
	}
}

// A bare pop already handles the absent case safely
func barePop(s collection.Stack[int]) {
	for !s.IsEmpty() {
		x := s.Pop()
		if v, ok := x.Get(); ok {
			use(v)
		}
	}
}

// The drain idiom is only recognized in the body's first statement
func secondStatement(s collection.Stack[int]) {
	for !s.IsEmpty() {
		tick()

		x := s.Pop().Unwrap()
		use(x)
	}
}

// Conditions other than a negated emptiness query are not matched
func lenCondition(s collection.Stack[int]) {
	for s.Len() > 0 {
		x := s.Pop().Unwrap()
		use(x)
	}
}

// Loops with an init or post clause are never drain loops
func withInit(s collection.Stack[int]) {
	for i := 0; !s.IsEmpty(); i++ {
		x := s.Pop().Unwrap()
		use(x)
	}
}

// Unwrapping something other than a pop result
func unwrapLocal(s collection.Stack[int]) {
	opt := s.Pop()
	for !s.IsEmpty() {
		x := opt.Unwrap()
		use(x)
	}
}

func suppressed(s collection.Stack[int]) {
	for !s.IsEmpty() { //nolint:drainloop
		x := s.Pop().Unwrap()
		use(x)
	}
}

//nolint:drainloop
func suppressedFunc(s collection.Stack[int]) {
	for !s.IsEmpty() {
		x := s.Pop().Unwrap()
		use(x)
	}
}

func tick() {}

func use(int) {}
