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

// Package token splits raw text into the token sequences the comparison
// functions operate on.
//
// A token is a maximal run of word characters (letters, digits, underscore),
// a maximal run of whitespace characters, or a single character that is
// neither. Concatenating the tokens of a sequence always reproduces the
// input exactly; tokens are compared by value with no normalization.
package token

import (
	"unicode"

	"github.com/clipperhouse/uax29/v2/words"
)

type class int

const (
	classWord class = iota
	classSpace
	classOther
)

func classOf(r rune) class {
	switch {
	case r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r):
		return classWord
	case unicode.IsSpace(r):
		return classSpace
	default:
		return classOther
	}
}

// Split splits text into tokens: maximal word runs, maximal whitespace runs,
// or single other characters. Empty input yields an empty sequence.
func Split(text string) []string {
	var tokens []string
	start := -1 // start of the current run, -1 before the first rune
	var run class
	for i, r := range text {
		c := classOf(r)
		// Word and whitespace runs extend; everything else is a single
		// character token.
		if start >= 0 && c == run && c != classOther {
			continue
		}
		if start >= 0 {
			tokens = append(tokens, text[start:i])
		}
		start, run = i, c
	}
	if start < 0 {
		return nil
	}
	return append(tokens, text[start:])
}

// SplitWords splits text into tokens using UAX #29 word segmentation. The
// segmenter yields every segment, including whitespace and punctuation, so
// concatenating the tokens reproduces the input exactly.
func SplitWords(text string) []string {
	if text == "" {
		return nil
	}
	var tokens []string
	iter := words.FromString(text)
	for iter.Next() {
		tokens = append(tokens, iter.Value())
	}
	return tokens
}
