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
	"strings"
)

// reportListDiff prints a verdict on whether two name collections hold
// the same set of names (order- and duplicate-insensitive). When they
// differ it also prints the full aligned union, one highlighted row per
// name, so the reader can spot which side each name is missing from.
// Row labels are "<prefix> #NN". It returns true iff the sets are equal.
func (p *Printer) reportListDiff(listA, listB []string, prefix string) (bool, error) {
	same := sameNameSet(listA, listB)
	if same {
		p.goodf("Are lists the same? ---> %v.", same)
		return true, nil
	}

	p.attentionf("Are lists the same? ---> %v.", same)
	p.attentionf("Which items are different?")
	p.sideBySide(" ", "File A", "File B", false, false)

	rows, err := alignNames(listA, listB)
	if err != nil {
		return false, err
	}
	for _, row := range rows {
		label := fmt.Sprintf("%s #%02d", prefix, row.i)
		p.sideBySide(label, strings.TrimSpace(row.a), strings.TrimSpace(row.b), true, true)
	}
	return false, nil
}
