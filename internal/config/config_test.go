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

package config

import "testing"

func fastOpt() Option {
	return func(cfg *Config) Flag {
		cfg.Variant = VariantCandidate
		return Fast
	}
}

func unicodeOpt() Option {
	return func(cfg *Config) Flag {
		cfg.Tokenizer = TokenizerUnicode
		return UnicodeTokens
	}
}

func TestFromOptions(t *testing.T) {
	cfg := FromOptions(nil, 0)
	if cfg != Default {
		t.Errorf("FromOptions(nil, 0) = %+v, want default %+v", cfg, Default)
	}

	cfg = FromOptions([]Option{fastOpt()}, Fast|Sequential)
	if cfg.Variant != VariantCandidate {
		t.Errorf("FromOptions(...) variant = %v, want %v", cfg.Variant, VariantCandidate)
	}
}

func TestFromOptionsDisallowed(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("FromOptions with a disallowed option did not panic")
		}
	}()
	FromOptions([]Option{unicodeOpt()}, Fast|Sequential)
}
