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

package analyzer

import (
	"log/slog"
	"slices"

	"fillmore-labs.com/drainloop/internal/config"
	"fillmore-labs.com/drainloop/internal/run"
)

// Option configures specific behavior of a [New] drainloop analyzer.
type Option interface {
	apply(r *run.Options)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *run.Options) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithGenerated is an [Option] to configure diagnostics in generated files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *run.Options) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithFixes is an [Option] to configure whether diagnostics carry a suggested rewrite.
func WithFixes(fixes bool) Option { return fixesOption{fixes: fixes} }

type fixesOption struct{ fixes bool }

func (o fixesOption) apply(r *run.Options) {
	r.Behavior.Set(config.SuggestFixes, o.fixes)
}

func (o fixesOption) LogAttr() slog.Attr {
	return slog.Bool("fixes", o.fixes)
}

// WithPopMethods is an [Option] to replace the recognized pop method names.
func WithPopMethods(methods ...string) Option { return popOption{methods: methods} }

type popOption struct{ methods []string }

func (o popOption) apply(r *run.Options) {
	r.Names.Pop = slices.Clone(o.methods)
}

func (o popOption) LogAttr() slog.Attr {
	return slog.Any("pop", o.methods)
}

// WithEmptyMethods is an [Option] to replace the recognized emptiness query method names.
func WithEmptyMethods(methods ...string) Option { return emptyOption{methods: methods} }

type emptyOption struct{ methods []string }

func (o emptyOption) apply(r *run.Options) {
	r.Names.Empty = slices.Clone(o.methods)
}

func (o emptyOption) LogAttr() slog.Attr {
	return slog.Any("is-empty", o.methods)
}

// WithUnwrapMethods is an [Option] to replace the recognized forceful unwrap method names.
func WithUnwrapMethods(methods ...string) Option { return unwrapOption{methods: methods} }

type unwrapOption struct{ methods []string }

func (o unwrapOption) apply(r *run.Options) {
	r.Names.Unwrap = slices.Clone(o.methods)
}

func (o unwrapOption) LogAttr() slog.Attr {
	return slog.Any("unwrap", o.methods)
}

// WithExpectMethods is an [Option] to replace the recognized unwrap-with-message method names.
func WithExpectMethods(methods ...string) Option { return expectOption{methods: methods} }

type expectOption struct{ methods []string }

func (o expectOption) apply(r *run.Options) {
	r.Names.Expect = slices.Clone(o.methods)
}

func (o expectOption) LogAttr() slog.Attr {
	return slog.Any("expect", o.methods)
}

// WithValueMethod is an [Option] to configure the comma-ok accessor used in rewrites.
func WithValueMethod(method string) Option { return valueOption{method: method} }

type valueOption struct{ method string }

func (o valueOption) apply(r *run.Options) {
	r.Names.Value = o.method
}

func (o valueOption) LogAttr() slog.Attr {
	return slog.String("value-method", o.method)
}

// WithPlaceholder is an [Option] to configure the identifier bound by inline rewrites.
func WithPlaceholder(placeholder string) Option { return placeholderOption{placeholder: placeholder} }

type placeholderOption struct{ placeholder string }

func (o placeholderOption) apply(r *run.Options) {
	r.Names.Placeholder = o.placeholder
}

func (o placeholderOption) LogAttr() slog.Attr {
	return slog.String("placeholder", o.placeholder)
}
