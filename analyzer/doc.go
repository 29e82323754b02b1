// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

// Package analyzer implements the drainloop static analysis pass.
//
// # Overview
//
// DrainLoop detects loops that manually drain an option-returning collection
// by testing it for emptiness and then popping and forcefully unwrapping an
// element.
//
// # Example
//
// Before:
//
//	func process(s collection.Stack[int]) {
//	    for !s.IsEmpty() {
//	        x := s.Pop().Unwrap() // panics if another goroutine drained s
//	        use(x)
//	    }
//	}
//
// After applying drainloop's suggested fix:
//
//	func process(s collection.Stack[int]) {
//	    for x, ok := s.Pop().Get(); ok; x, ok = s.Pop().Get() {
//	        use(x)
//	    }
//	}
//
// # Matching
//
// Calls are matched by their type-checked callee, not by surface syntax: the
// emptiness query, the pop, and the unwrap must each resolve to a method with
// a recognized name and signature shape, and the popped collection must be
// structurally identical to the one tested for emptiness. Both unwrap forms
// are recognized, the plain one and the variant taking a panic message.
//
// The recognized method names and the identifiers used in rewrites are
// configurable through [Option] values and analyzer flags.
package analyzer
