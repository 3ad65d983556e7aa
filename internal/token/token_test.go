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

package token

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "empty",
			in:   "",
			want: nil,
		},
		{
			name: "single-word",
			in:   "foo",
			want: []string{"foo"},
		},
		{
			name: "words-and-punctuation",
			in:   "foo bar, baz",
			want: []string{"foo", " ", "bar", ",", " ", "baz"},
		},
		{
			name: "underscore-is-a-word-character",
			in:   "committer_list",
			want: []string{"committer_list"},
		},
		{
			name: "whitespace-runs",
			in:   "a \t\n b",
			want: []string{"a", " \t\n ", "b"},
		},
		{
			name: "punctuation-is-single-tokens",
			in:   "a,,b",
			want: []string{"a", ",", ",", "b"},
		},
		{
			name: "digits-extend-word-runs",
			in:   "v1_2-rc3",
			want: []string{"v1_2", "-", "rc3"},
		},
		{
			name: "unicode-letters",
			in:   "héllo wörld!",
			want: []string{"héllo", " ", "wörld", "!"},
		},
		{
			name: "only-whitespace",
			in:   "   ",
			want: []string{"   "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Split(%q) is different [-want, +got]:\n%s", tt.in, diff)
			}
			if joined := strings.Join(got, ""); joined != tt.in {
				t.Errorf("Split(%q) does not reconstruct its input, got %q", tt.in, joined)
			}
		})
	}
}

func TestSplitWords(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{
			name: "empty",
			in:   "",
			want: nil,
		},
		{
			name: "two-words",
			in:   "foo bar",
			want: []string{"foo", " ", "bar"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitWords(tt.in)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SplitWords(%q) is different [-want, +got]:\n%s", tt.in, diff)
			}
		})
	}
}

func TestSplitWordsReconstructs(t *testing.T) {
	inputs := []string{
		"foo bar, baz",
		"don't stop",
		"héllo wörld",
		"a  \t b\n",
	}
	for _, in := range inputs {
		if got := strings.Join(SplitWords(in), ""); got != in {
			t.Errorf("SplitWords(%q) does not reconstruct its input, got %q", in, got)
		}
	}
}
