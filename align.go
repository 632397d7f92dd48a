/*
Copyright © 2025 the ncompare authors.
This file is part of ncompare.

ncompare is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

ncompare is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with ncompare.  If not, see <http://www.gnu.org/licenses/>.
*/

package ncompare

import (
	"fmt"
	"sort"
)

// alignedRow pairs one member of the union of two name collections with
// its presence on each side. At least one of a and b is always
// non-empty.
type alignedRow struct {
	i    int
	a, b string
}

// alignNames matches the members of two unordered name collections.
// It returns one row per member of the sorted, deduplicated union of
// both inputs: matched names appear on both sides, unmatched names
// appear on one side with the other side empty. Ordering is the
// lexicographic order of the union, regardless of input order.
func alignNames(namesA, namesB []string) ([]alignedRow, error) {
	inA := make(map[string]bool, len(namesA))
	for _, n := range namesA {
		inA[n] = true
	}
	inB := make(map[string]bool, len(namesB))
	for _, n := range namesB {
		inB[n] = true
	}

	union := make([]string, 0, len(inA)+len(inB))
	for n := range inA {
		union = append(union, n)
	}
	for n := range inB {
		if !inA[n] {
			union = append(union, n)
		}
	}
	sort.Strings(union)

	rows := make([]alignedRow, 0, len(union))
	for i, n := range union {
		row := alignedRow{i: i, a: n, b: n}
		switch {
		case !inA[n] && !inB[n]:
			// Unreachable by construction; the union only contains
			// names drawn from the inputs.
			return nil, fmt.Errorf("ncompare: align: name %q in neither input", n)
		case !inA[n]:
			row.a = ""
		case !inB[n]:
			row.b = ""
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// sameNameSet reports whether two name collections contain the same
// set of names, ignoring order and duplicates.
func sameNameSet(namesA, namesB []string) bool {
	setA := make(map[string]bool, len(namesA))
	for _, n := range namesA {
		setA[n] = true
	}
	setB := make(map[string]bool, len(namesB))
	for _, n := range namesB {
		setB[n] = true
	}
	if len(setA) != len(setB) {
		return false
	}
	for n := range setA {
		if !setB[n] {
			return false
		}
	}
	return true
}

// sortedNames returns a lexicographically sorted copy of names.
func sortedNames(names []string) []string {
	o := make([]string, len(names))
	copy(o, names)
	sort.Strings(o)
	return o
}
