// Copyright 2025 The string-difference-finder Authors
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

// Package config provides shared configuration mechanisms for packages in
// this module.
//
// This package is an implementation detail, the configuration surface for
// users is provided via diff.Option.
package config

// Variant selects the sequence-alignment algorithm.
type Variant int

const (
	// Hirschberg's linear-space divide-and-conquer algorithm. Exact.
	VariantHirschberg Variant = iota

	// Greedy candidate chains per token value. Faster, but approximate when
	// token values repeat.
	VariantCandidate
)

// Tokenizer selects how raw strings are split into tokens.
type Tokenizer int

const (
	// Maximal word runs, maximal whitespace runs, or single other characters.
	TokenizerRuns Tokenizer = iota

	// UAX #29 word segmentation.
	TokenizerUnicode
)

// Config collects all configurable parameters for comparison functions in
// this module.
type Config struct {
	// Sequence-alignment variant.
	Variant Variant

	// If set, the alignment never forks independent sub-computations into
	// their own goroutines.
	Sequential bool

	// Tokenizer used by the string-based entry points.
	Tokenizer Tokenizer
}

// Default is the default configuration.
var Default = Config{
	Variant:    VariantHirschberg,
	Sequential: false,
	Tokenizer:  TokenizerRuns,
}

// Flag describes a single config entry. This is used to detect options being
// set on functions that don't support them.
type Flag int

const (
	Fast Flag = 1 << iota
	Sequential
	UnicodeTokens
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Fast:
		return "diff.Fast"
	case Sequential:
		return "diff.Sequential"
	case UnicodeTokens:
		return "diff.UnicodeTokens"
	default:
		panic("never reached")
	}
}
