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

// Package benchmarks compares this module against other diff libraries.
//
// This is a separate module to keep the other implementations out of the
// main module's dependencies.
package benchmarks

import (
	"github.com/sergi/go-diff/diffmatchpatch"

	diff "github.com/krkarma777/string-difference-finder"
)

// Impl is a named diff implementation. Diff returns the number of changed
// segments it reports for the two inputs, a rough quality signal to compare
// alongside the timings.
type Impl struct {
	Name string
	Diff func(x, y string) int
}

var Impls = []Impl{
	{
		Name: "hirschberg",
		Diff: func(x, y string) int {
			s, _ := diff.Compare(x, y)
			return changed(s)
		},
	},
	{
		Name: "hirschberg-sequential",
		Diff: func(x, y string) int {
			s, _ := diff.Compare(x, y, diff.Sequential())
			return changed(s)
		},
	},
	{
		Name: "candidate",
		Diff: func(x, y string) int {
			s, _ := diff.Compare(x, y, diff.Fast())
			return changed(s)
		},
	},
	{
		Name: "diffmatchpatch",
		Diff: func(x, y string) int {
			dmp := diffmatchpatch.New()
			n := 0
			for _, d := range dmp.DiffMain(x, y, false) {
				if d.Type != diffmatchpatch.DiffEqual {
					n++
				}
			}
			return n
		},
	},
}

func changed(s diff.Script) int {
	n := 0
	for _, e := range s {
		if e.Op != diff.Equal {
			n++
		}
	}
	return n
}
