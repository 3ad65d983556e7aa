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

import (
	"strings"
	"time"

	"github.com/krkarma777/string-difference-finder/internal/config"
	"github.com/krkarma777/string-difference-finder/internal/impl"
	"github.com/krkarma777/string-difference-finder/internal/token"
)

// Op describes an edit operation.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Equal  Op = iota // The token is present in both inputs.
	Delete           // The token is only present in the first input.
	Insert           // The token is only present in the second input.
)

// Edit describes a single edit of a diff: the operation and the token text
// it applies to. Edits for a trimmed common affix carry the concatenated
// text of the whole run; all other edits carry a single token.
type Edit struct {
	Op   Op
	Text string
}

// Script is an ordered sequence of edits. Replaying the Equal and Delete
// edits reconstructs the first input, replaying the Equal and Insert edits
// reconstructs the second.
type Script []Edit

// Source returns the first input, reconstructed from the Equal and Delete
// edits.
func (s Script) Source() string {
	var b strings.Builder
	for _, e := range s {
		if e.Op == Equal || e.Op == Delete {
			b.WriteString(e.Text)
		}
	}
	return b.String()
}

// Target returns the second input, reconstructed from the Equal and Insert
// edits.
func (s Script) Target() string {
	var b strings.Builder
	for _, e := range s {
		if e.Op == Equal || e.Op == Insert {
			b.WriteString(e.Text)
		}
	}
	return b.String()
}

// Stats summarizes a script as the number of edits per operation.
type Stats struct {
	Equal    int
	Deleted  int
	Inserted int
}

// Stats returns the number of edits per operation in s.
func (s Script) Stats() Stats {
	var st Stats
	for _, e := range s {
		switch e.Op {
		case Equal:
			st.Equal++
		case Delete:
			st.Deleted++
		case Insert:
			st.Inserted++
		}
	}
	return st
}

// Compare tokenizes x and y and returns an edit script that transforms x
// into y, together with the elapsed computation time. The elapsed time is
// informational only and not part of the result's correctness.
//
// If x and y are identical, the script is a single Equal edit covering the
// whole input; if both are empty, the script is empty.
//
// The following options are supported: [Fast], [Sequential], [UnicodeTokens]
//
// Important: When ties exist between equally long alignments, the exact edit
// boundaries are not guaranteed to be stable and may change with minor
// version upgrades. DO NOT rely on the output being stable.
func Compare(x, y string, opts ...Option) (Script, time.Duration) {
	start := time.Now()
	cfg := config.FromOptions(opts, config.Fast|config.Sequential|config.UnicodeTokens)
	split := token.Split
	if cfg.Tokenizer == config.TokenizerUnicode {
		split = token.SplitWords
	}
	s := script(split(x), split(y), cfg)
	return s, time.Since(start)
}

// Tokens returns an edit script that transforms the token sequence x into y,
// for callers that tokenize their inputs themselves.
//
// The following options are supported: [Fast], [Sequential]
func Tokens(x, y []string, opts ...Option) Script {
	cfg := config.FromOptions(opts, config.Fast|config.Sequential)
	return script(x, y, cfg)
}

// script trims the common affixes, aligns the interiors, and walks the
// interiors against the alignment.
//
// The interior walk advances an index into each of x, y, and the common
// subsequence. When both sides match the current subsequence token, a single
// Equal edit consumes all three. Otherwise the side that diverges from the
// subsequence is consumed as a Delete or Insert; both may fire in the same
// step, yielding a deletion directly followed by an insertion. Adjacent
// Equal edits of the interior are deliberately not merged, the presentation
// layer coalesces them if it wants to.
func script(x, y []string, cfg config.Config) Script {
	prefix, suffix, lcs := impl.LCS(x, y, cfg)

	xi := x[prefix : len(x)-suffix]
	yi := y[prefix : len(y)-suffix]

	out := make(Script, 0, len(xi)+len(yi)+2)
	if prefix > 0 {
		out = append(out, Edit{Equal, strings.Join(x[:prefix], "")})
	}
	i, j, k := 0, 0, 0
	for i < len(xi) || j < len(yi) {
		if k < len(lcs) && i < len(xi) && j < len(yi) && xi[i] == lcs[k] && yi[j] == lcs[k] {
			out = append(out, Edit{Equal, lcs[k]})
			i++
			j++
			k++
			continue
		}
		if i < len(xi) && (k >= len(lcs) || xi[i] != lcs[k]) {
			out = append(out, Edit{Delete, xi[i]})
			i++
		}
		if j < len(yi) && (k >= len(lcs) || yi[j] != lcs[k]) {
			out = append(out, Edit{Insert, yi[j]})
			j++
		}
	}
	if suffix > 0 {
		out = append(out, Edit{Equal, strings.Join(x[len(x)-suffix:], "")})
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
