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

// Package htmldiff renders edit scripts as HTML for side-by-side display.
//
// A script renders into two aligned views: [Deleted] shows the first input
// with deletions highlighted and insertions blanked out, [Inserted] shows
// the second input symmetrically. Blanked-out edits take up the same number
// of character positions as the text they stand in for, so the two views
// line up in a monospace rendering. All token text is escaped before it is
// embedded in markup.
package htmldiff

import (
	"strings"
	"unicode/utf8"

	diff "github.com/krkarma777/string-difference-finder"
)

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// Escape escapes s for embedding in HTML markup.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Deleted renders the deleted view of s: the first input with deletions
// wrapped in a "diff-del" span and insertions replaced by placeholders of
// equal width.
func Deleted(s diff.Script) string {
	var b strings.Builder
	for _, e := range s {
		switch e.Op {
		case diff.Equal:
			b.WriteString(Escape(e.Text))
		case diff.Delete:
			writeSpan(&b, "diff-del", e.Text)
		case diff.Insert:
			writePlaceholder(&b, e.Text)
		}
	}
	return b.String()
}

// Inserted renders the inserted view of s: the second input with insertions
// wrapped in a "diff-ins" span and deletions replaced by placeholders of
// equal width.
func Inserted(s diff.Script) string {
	var b strings.Builder
	for _, e := range s {
		switch e.Op {
		case diff.Equal:
			b.WriteString(Escape(e.Text))
		case diff.Insert:
			writeSpan(&b, "diff-ins", e.Text)
		case diff.Delete:
			writePlaceholder(&b, e.Text)
		}
	}
	return b.String()
}

func writeSpan(b *strings.Builder, class, text string) {
	b.WriteString(`<span class="`)
	b.WriteString(class)
	b.WriteString(`">`)
	b.WriteString(Escape(text))
	b.WriteString(`</span>`)
}

// writePlaceholder writes a run of non-breaking spaces as wide as text, so
// the opposite view stays aligned.
func writePlaceholder(b *strings.Builder, text string) {
	b.WriteString(`<span class="diff-pad">`)
	for range utf8.RuneCountInString(text) {
		b.WriteString("&nbsp;")
	}
	b.WriteString(`</span>`)
}
