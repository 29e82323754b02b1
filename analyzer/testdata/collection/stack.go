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

package collection

import "test/option"

// Stack is a last-in-first-out container.
type Stack[T any] struct {
	items []T
}

// Push appends v.
func (s *Stack[T]) Push(v T) { s.items = append(s.items, v) }

// Pop removes and returns the last element.
func (s *Stack[T]) Pop() option.Option[T] {
	if len(s.items) == 0 {
		return option.None[T]()
	}

	v := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]

	return option.Some(v)
}

// IsEmpty reports whether the stack has no elements.
func (s *Stack[T]) IsEmpty() bool { return len(s.items) == 0 }

// Len returns the number of elements.
func (s *Stack[T]) Len() int { return len(s.items) }
