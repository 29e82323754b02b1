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

// Queue is a first-in-first-out container. PopFront returns a [option.Box],
// which has no comma-ok accessor.
type Queue[T any] struct {
	items []T
}

// Push appends v.
func (q *Queue[T]) Push(v T) { q.items = append(q.items, v) }

// PopFront removes and returns the first element.
func (q *Queue[T]) PopFront() option.Box[T] {
	if len(q.items) == 0 {
		return option.Box[T]{}
	}

	v := q.items[0]
	q.items = q.items[1:]

	return option.BoxOf(v)
}

// IsEmpty reports whether the queue has no elements.
func (q *Queue[T]) IsEmpty() bool { return len(q.items) == 0 }
