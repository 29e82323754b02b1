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

package config

// Names holds the recognized method names for each operation family and the
// identifiers used in suggested rewrites.
//
// A method call only belongs to a family when its name is listed here and its
// type-checked signature has the family's shape, so the lists can stay short
// without producing false positives.
type Names struct {
	// Pop methods remove and return an element wrapped in an option value.
	Pop []string

	// Empty methods report whether a collection has no elements.
	Empty []string

	// Unwrap methods return the option's value and panic when it is absent.
	Unwrap []string

	// Expect methods behave like Unwrap but panic with a caller-supplied message.
	Expect []string

	// Value is the comma-ok accessor expected on the option type.
	// A rewrite is only offered when the option type has it.
	Value string

	// Placeholder is the identifier bound by rewrites of inline pop arguments.
	Placeholder string
}

// DefaultNames returns the default recognized names.
func DefaultNames() Names {
	return Names{
		Pop:         []string{"Pop", "PopBack", "PopFront"},
		Empty:       []string{"IsEmpty", "Empty"},
		Unwrap:      []string{"Unwrap", "MustGet"},
		Expect:      []string{"Expect"},
		Value:       "Get",
		Placeholder: "element",
	}
}
