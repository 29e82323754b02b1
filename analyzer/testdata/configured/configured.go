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

package configured

// Maybe holds an int or nothing.
type Maybe struct {
	v  int
	ok bool
}

// Must returns the held value and panics when absent.
func (m Maybe) Must() int {
	if !m.ok {
		panic("empty")
	}

	return m.v
}

// Take returns the held value and whether it is present.
func (m Maybe) Take() (int, bool) { return m.v, m.ok }

// Ring is an int buffer with bespoke method names.
type Ring struct {
	items []int
}

// Shift removes and returns the first element.
func (r *Ring) Shift() Maybe {
	if len(r.items) == 0 {
		return Maybe{}
	}

	v := r.items[0]
	r.items = r.items[1:]

	return Maybe{v: v, ok: true}
}

// Vacant reports whether the ring has no elements.
func (r *Ring) Vacant() bool { return len(r.items) == 0 }

func drain(r Ring) {
	for !r.Vacant() {
		sink(r.Shift().Must()) // want `Loop drains 'r' with a forced unwrap`
	}
}

func sink(int) {}
