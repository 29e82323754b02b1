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

package gclplugin

import drainloop "fillmore-labs.com/drainloop/analyzer"

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Fixes attaches suggested rewrites to diagnostics.
	Fixes *bool `json:"fixes,omitzero"`
	// Pop replaces the recognized pop method names.
	Pop []string `json:"pop,omitzero"`
	// IsEmpty replaces the recognized emptiness query method names.
	IsEmpty []string `json:"is-empty,omitzero"`
	// Unwrap replaces the recognized forceful unwrap method names.
	Unwrap []string `json:"unwrap,omitzero"`
	// Expect replaces the recognized unwrap-with-message method names.
	Expect []string `json:"expect,omitzero"`
	// ValueMethod sets the comma-ok accessor used in rewrites.
	ValueMethod *string `json:"value-method,omitzero"`
	// Placeholder sets the identifier bound by inline rewrites.
	Placeholder *string `json:"placeholder,omitzero"`
}

// Options converts [Settings] into a list of [drainloop.Option] for the drainloop analyzer.
// It processes settings and applies them only when explicitly set.
func (s Settings) Options() []drainloop.Option {
	var opts []drainloop.Option

	opts = appendOption(opts, s.Fixes, drainloop.WithFixes)
	opts = appendListOption(opts, s.Pop, drainloop.WithPopMethods)
	opts = appendListOption(opts, s.IsEmpty, drainloop.WithEmptyMethods)
	opts = appendListOption(opts, s.Unwrap, drainloop.WithUnwrapMethods)
	opts = appendListOption(opts, s.Expect, drainloop.WithExpectMethods)
	opts = appendOption(opts, s.ValueMethod, drainloop.WithValueMethod)
	opts = appendOption(opts, s.Placeholder, drainloop.WithPlaceholder)

	return opts
}

// appendOption appends a non-nil setting to a [drainloop.Option] list.
func appendOption[T any](opts []drainloop.Option, value *T, constructor func(T) drainloop.Option) []drainloop.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}

// appendListOption appends a non-empty name list setting to a [drainloop.Option] list.
func appendListOption(opts []drainloop.Option, value []string, constructor func(...string) drainloop.Option) []drainloop.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(value...))
}
