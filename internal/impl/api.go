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

// Package impl wires token sequences to the alignment algorithms: it trims
// the common affixes and dispatches the remaining interior to the configured
// variant.
package impl

import (
	"fmt"

	"github.com/krkarma777/string-difference-finder/internal/candidate"
	"github.com/krkarma777/string-difference-finder/internal/config"
	"github.com/krkarma777/string-difference-finder/internal/hirschberg"
)

// LCS trims the common prefix and suffix of x and y and computes a common
// subsequence of the remaining interiors using the configured variant.
//
// prefix and suffix are the number of trimmed tokens on either end. The
// suffix is computed over the prefix-trimmed ranges, so the two windows
// never overlap even when the inputs share more matching ends than the
// shorter input is long. lcs covers only x[prefix:len(x)-suffix] and
// y[prefix:len(y)-suffix]. Trimming is purely a problem size reduction; the
// semantic content of the resulting script is unaffected.
func LCS(x, y []string, cfg config.Config) (prefix, suffix int, lcs []string) {
	smin, smax, tmin, tmax := findChangeBounds(x, y)
	prefix = smin
	suffix = len(x) - smax

	xi, yi := x[smin:smax], y[tmin:tmax]
	if len(xi) == 0 || len(yi) == 0 {
		// Identical inputs, or a pure insertion or deletion. Nothing to
		// align.
		return prefix, suffix, nil
	}

	switch cfg.Variant {
	case config.VariantHirschberg:
		lcs = hirschberg.LCS(xi, yi, !cfg.Sequential)
	case config.VariantCandidate:
		lcs = candidate.LCS(xi, yi)
	default:
		panic(fmt.Sprintf("unknown variant: %v", cfg.Variant))
	}
	return prefix, suffix, lcs
}

// CommonPrefix returns the number of leading tokens shared by x and y.
func CommonPrefix(x, y []string) int {
	n := min(len(x), len(y))
	i := 0
	for i < n && x[i] == y[i] {
		i++
	}
	return i
}

// CommonSuffix returns the number of trailing tokens shared by x and y.
func CommonSuffix(x, y []string) int {
	n := min(len(x), len(y))
	i := 0
	for i < n && x[len(x)-1-i] == y[len(y)-1-i] {
		i++
	}
	return i
}

// findChangeBounds returns the bounds of the changed portion of the inputs.
func findChangeBounds(x, y []string) (smin, smax, tmin, tmax int) {
	p := CommonPrefix(x, y)
	s := CommonSuffix(x[p:], y[p:])
	return p, len(x) - s, p, len(y) - s
}
