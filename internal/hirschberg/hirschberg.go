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

// Package hirschberg computes a longest common subsequence in linear space.
//
// The classic dynamic programming solution fills a table L where L[i][j] is
// the length of a longest common subsequence of x[:i] and y[:j]:
//
//	L[i][j] = L[i-1][j-1] + 1             if x[i-1] == y[j-1]
//	L[i][j] = max(L[i-1][j], L[i][j-1])   otherwise
//
// Materializing the table takes O(N*M) space, but computing only the final
// row needs just two rows of length M+1: the current row depends only on the
// previous one. Two rows give lengths, not the subsequence itself.
//
// Hirschberg's observation is that the subsequence can be recovered by
// divide and conquer. Split x at its midpoint mid. For every column p in
// 0..M, an optimal path through the full table that passes through row mid
// splits into an optimal path for (x[:mid], y[:p]) and one for (x[mid:],
// y[p:]). The first has length l1[p], the final forward DP row of the first
// half against y; the second has length l2rev[p], the final DP row of the
// reversed second half against reversed y, read backwards. Some p maximizes
// l1[p] + l2rev[p] and that maximum equals the overall LCS length, so
// recursing on the two sub-problems and concatenating their results yields a
// longest common subsequence. The recursion halves x every level, giving
// O(N*M) time overall and O(M) working memory.
//
// The forward and backward row computations of one split are independent of
// each other, as are the two recursive sub-problems, so both pairs can run
// concurrently. Forking is capped by an input size threshold to bound memory
// and scheduling overhead.
//
// # References
//
// Hirschberg, D.S. A linear space algorithm for computing maximal common
// subsequences. Commun. ACM 18, 341-343 (1975).
// https://doi.org/10.1145/360825.360861
package hirschberg

import (
	"slices"

	"golang.org/x/sync/errgroup"
)

// parallelMinSize is the smallest combined input length for which the two
// independent halves of a split are forked into their own goroutine. Below
// this, scheduling overhead dominates the actual work.
const parallelMinSize = 4096

// LCS returns a longest common subsequence of x and y. When ties exist, the
// result is one valid choice, not a canonical one.
//
// With parallel set, independent halves of the computation run concurrently
// for large inputs; the result is identical either way.
func LCS(x, y []string, parallel bool) []string {
	if len(x) == 0 || len(y) == 0 {
		return nil
	}
	h := hirschberg{parallel: parallel}
	return h.lcs(nil, x, y, newRows(len(y)), newRows(len(y)))
}

type hirschberg struct {
	parallel bool
}

func (h *hirschberg) fork(size int) bool {
	return h.parallel && size >= parallelMinSize
}

// rows is the working memory of a single row-by-row length computation: two
// DP rows that are swapped by reference exchange after every line of the
// table, so a computation never allocates beyond its initial pair.
type rows struct {
	prev, cur []int
}

func newRows(m int) *rows {
	buf := make([]int, 2*(m+1)) // single allocation for both rows
	return &rows{prev: buf[: m+1 : m+1], cur: buf[m+1:]}
}

// lcs appends a longest common subsequence of x and y to dst.
//
// fr and br are the row pairs for the forward and backward passes. They are
// reused down the recursion; forked branches allocate their own.
func (h *hirschberg) lcs(dst []string, x, y []string, fr, br *rows) []string {
	switch {
	case len(x) == 0 || len(y) == 0:
		return dst
	case len(x) == 1:
		// Containment is all that is checked here, not the position of the
		// occurrence. Any occurrence forms a common subsequence of length
		// one, and no longer one exists when x is a single element.
		if slices.Contains(y, x[0]) {
			return append(dst, x[0])
		}
		return dst
	case len(y) == 1:
		if slices.Contains(x, y[0]) {
			return append(dst, y[0])
		}
		return dst
	}

	mid := len(x) / 2

	// Final DP row for (x[:mid], y) forward and for (x[mid:], y) backward.
	// The two passes share no state: each owns its row pair.
	var l1, l2 []int
	if h.fork(len(x) + len(y)) {
		var g errgroup.Group
		g.Go(func() error {
			l1 = forward(x[:mid], y, fr)
			return nil
		})
		l2 = backward(x[mid:], y, br)
		g.Wait()
	} else {
		l1 = forward(x[:mid], y, fr)
		l2 = backward(x[mid:], y, br)
	}

	// The column maximizing the sum of both path lengths lies on an optimal
	// path through the full table. Ties resolve to the lowest index.
	p, best := 0, -1
	for i := 0; i <= len(y); i++ {
		if s := l1[i] + l2[len(y)-i]; s > best {
			p, best = i, s
		}
	}

	// l1 and l2 alias the row pairs, which the recursion below reuses; both
	// have been fully consumed at this point.
	if h.fork(len(x) + len(y)) {
		var g errgroup.Group
		var right []string
		g.Go(func() error {
			right = h.lcs(nil, x[mid:], y[p:], newRows(len(y)-p), newRows(len(y)-p))
			return nil
		})
		dst = h.lcs(dst, x[:mid], y[:p], fr, br)
		g.Wait()
		return append(dst, right...)
	}
	dst = h.lcs(dst, x[:mid], y[:p], fr, br)
	return h.lcs(dst, x[mid:], y[p:], fr, br)
}

// forward computes the final row of the LCS length table for x and y. The
// result aliases one of r's rows and is valid until r is reused.
func forward(x, y []string, r *rows) []int {
	prev, cur := r.prev, r.cur
	clear(prev)
	for _, e := range x {
		cur[0] = 0
		for j, f := range y {
			if e == f {
				cur[j+1] = prev[j] + 1
			} else {
				cur[j+1] = max(prev[j+1], cur[j])
			}
		}
		prev, cur = cur, prev
	}
	return prev[:len(y)+1]
}

// backward computes the row forward would produce for the reversed inputs,
// iterating from the ends instead of materializing reversed copies.
func backward(x, y []string, r *rows) []int {
	prev, cur := r.prev, r.cur
	clear(prev)
	n, m := len(x), len(y)
	for i := range n {
		e := x[n-1-i]
		cur[0] = 0
		for j := range m {
			if e == y[m-1-j] {
				cur[j+1] = prev[j] + 1
			} else {
				cur[j+1] = max(prev[j+1], cur[j])
			}
		}
		prev, cur = cur, prev
	}
	return prev[:m+1]
}
