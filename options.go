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

package diff

import "github.com/krkarma777/string-difference-finder/internal/config"

// Option configures the behavior of comparison functions.
type Option = config.Option

// Fast aligns with greedy candidate chains instead of the default
// linear-space divide-and-conquer algorithm. This is usually faster, but the
// resulting script is not guaranteed to be minimal when token values repeat.
func Fast() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Variant = config.VariantCandidate
		return config.Fast
	}
}

// Sequential disables the fork-join parallelism the default alignment uses
// for large inputs. The result is identical with or without this option.
func Sequential() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Sequential = true
		return config.Sequential
	}
}

// UnicodeTokens tokenizes the inputs with UAX #29 word segmentation instead
// of the default word/whitespace/other run scanner. Word boundaries then
// follow the Unicode rules for the scripts involved, which splits prose in
// languages without ASCII word characters more usefully.
func UnicodeTokens() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Tokenizer = config.TokenizerUnicode
		return config.UnicodeTokens
	}
}
