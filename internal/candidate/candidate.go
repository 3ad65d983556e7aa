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

// Package candidate approximates a longest common subsequence with greedy
// candidate chains, in the style of patience diff.
//
// Every token value in y is mapped to the ordered list of its occurrence
// positions (its equivalence class). Scanning x left to right, each token
// greedily extends a strictly increasing chain of y positions by selecting
// the smallest occurrence past the previous selection. The chain is a valid
// common subsequence of both inputs by construction, but with repeated
// tokens whose optimal alignment is non-monotonic it can be shorter than a
// true LCS. Its length is a lower bound; callers that need an exact result
// use package hirschberg.
package candidate

import "sort"

// LCS returns a common subsequence of x and y built from greedy candidate
// chains: exact when every token value occurs at most once in y, possibly
// shorter than a longest common subsequence otherwise.
func LCS(x, y []string) []string {
	if len(x) == 0 || len(y) == 0 {
		return nil
	}

	// Ordered occurrence positions per token value in y.
	occ := make(map[string][]int, len(y))
	for j, tok := range y {
		occ[tok] = append(occ[tok], j)
	}

	var chain []string
	last := -1 // y position of the previous selection
	for _, tok := range x {
		positions := occ[tok]
		k := sort.SearchInts(positions, last+1)
		if k == len(positions) {
			continue
		}
		last = positions[k]
		chain = append(chain, tok)
	}
	return chain
}
