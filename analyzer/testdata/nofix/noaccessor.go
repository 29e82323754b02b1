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

// Box has no comma-ok accessor, so the diagnostic carries no rewrite
func drainQueue(q collection.Queue[int]) {
	for !q.IsEmpty() {
		x := q.PopFront().Unwrap() // want `Loop drains 'q' with a forced unwrap`
		use(x)
	}
}

// An explicitly typed binding would lose its type in a rewritten header, so
// the diagnostic carries no rewrite either
func drainTyped(s collection.Stack[int]) {
	for !s.IsEmpty() {
		var x int = s.Pop().Unwrap() // want `Loop drains 's' with a forced unwrap`
		use(x)
	}
}
