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

// Pop-unwrap consumed inline as a call argument
func drainInline(s collection.Stack[int]) {
	for !s.IsEmpty() {
		record(1, s.Pop().Unwrap()) // want `Loop drains 's' with a forced unwrap`
	}
}

// Only the first matching argument is rewritten; other arguments stay verbatim
func drainFree(s collection.Stack[string]) {
	for !s.IsEmpty() {
		log("popped", s.Pop().Expect("not empty"), "done") // want `Loop drains 's' with a forced unwrap`
	}
}

func record(int, int) {}

func log(...string) {}
