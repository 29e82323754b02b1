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

package option

// Option holds a value of type T or nothing.
type Option[T any] struct {
	value   T
	present bool
}

// Some returns an Option holding value.
func Some[T any](value T) Option[T] { return Option[T]{value: value, present: true} }

// None returns an empty Option.
func None[T any]() Option[T] { return Option[T]{} }

// Get returns the held value and whether it is present.
func (o Option[T]) Get() (T, bool) { return o.value, o.present }

// IsPresent reports whether a value is held.
func (o Option[T]) IsPresent() bool { return o.present }

// Unwrap returns the held value and panics when absent.
func (o Option[T]) Unwrap() T {
	if !o.present {
		panic("option: no value present")
	}

	return o.value
}

// Expect returns the held value and panics with msg when absent.
func (o Option[T]) Expect(msg string) T {
	if !o.present {
		panic(msg)
	}

	return o.value
}

// Box holds a value of type T or nothing, exposing only a forceful accessor.
type Box[T any] struct {
	value   T
	present bool
}

// BoxOf returns a Box holding value.
func BoxOf[T any](value T) Box[T] { return Box[T]{value: value, present: true} }

// Unwrap returns the held value and panics when absent.
func (b Box[T]) Unwrap() T {
	if !b.present {
		panic("box: no value present")
	}

	return b.value
}
