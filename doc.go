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

// Package diff computes token-level differences between two text inputs.
//
// The main entry point is [Compare], which tokenizes both inputs into word
// runs, whitespace runs, and single punctuation characters, aligns the token
// sequences on a longest common subsequence, and returns an edit [Script] of
// [Equal], [Delete], and [Insert] edits together with the elapsed
// computation time. [Tokens] is the same operation for callers that
// tokenize themselves.
//
// By default, alignment uses Hirschberg's linear-space divide-and-conquer
// algorithm, which is exact: no script with fewer changed tokens exists. The
// [Fast] option switches to a greedy candidate-chain alignment that is
// cheaper on large inputs but may produce a longer script when token values
// repeat.
//
// Replaying a script reconstructs both inputs: the Equal and Delete edits
// concatenate to the first input, the Equal and Insert edits to the second.
//
// Note: For rendering scripts as HTML, see [github.com/krkarma777/string-difference-finder/htmldiff].
package diff
