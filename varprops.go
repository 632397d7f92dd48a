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
	"strconv"
	"strings"
)

// maxVarNameLen is the longest variable name rendered in a comparison
// row; longer names are truncated.
const maxVarNameLen = 47

// compareVariableProperties renders a five-row side-by-side comparison
// of a matched variable pair: name, dtype, shape, chunking and scale
// factor. Either name may be empty (variable missing from that file),
// in which case that side's properties render as empty strings. Only
// the scale-factor row is highlighted on difference.
func (p *Printer) compareVariableProperties(nameA, nameB string, grpA, grpB Group) error {
	p.sideBySide("var:", truncateName(nameA), truncateName(nameB), false, false)

	dtypeA, shapeA, chunkA, sfA, err := variableProperties(grpA, nameA)
	if err != nil {
		return err
	}
	dtypeB, shapeB, chunkB, sfB, err := variableProperties(grpB, nameB)
	if err != nil {
		return err
	}

	p.sideBySide("dtype:", dtypeA, dtypeB, false, false)
	p.sideBySide("shape:", shapeA, shapeB, false, false)
	p.sideBySide("chunksize:", chunkA, chunkB, false, false)
	p.sideBySide("sf:", sfA, sfB, false, true)
	return nil
}

// variableProperties extracts the rendered property strings for one
// side of a variable comparison. An empty name short-circuits to empty
// strings rather than failing. An absent or zero scale_factor
// attribute renders as a single space.
func variableProperties(grp Group, name string) (dtype, shape, chunking, scaleFactor string, err error) {
	if name == "" {
		return "", "", "", " ", nil
	}
	v, err := grp.Variable(name)
	if err != nil {
		return "", "", "", "", fmt.Errorf("ncompare: properties of variable %q: %v", name, err)
	}
	dtype = v.Dtype()
	shape = shapeString(v.Shape())
	chunking = chunkString(v.Chunking())
	scaleFactor = " "
	if val, ok := v.Attr("scale_factor"); ok {
		if f, ok := attrFloat(val); ok && f != 0 {
			scaleFactor = strconv.FormatFloat(f, 'g', -1, 64)
		}
	}
	return dtype, shape, chunking, scaleFactor, nil
}

func truncateName(name string) string {
	if len(name) > maxVarNameLen {
		return name[:maxVarNameLen]
	}
	return name
}

// shapeString formats a shape as "(d0, d1, ...)"; a scalar is "()".
func shapeString(shape []int) string {
	dims := make([]string, len(shape))
	for i, d := range shape {
		dims[i] = strconv.Itoa(d)
	}
	return "(" + strings.Join(dims, ", ") + ")"
}

// chunkString formats a chunk layout as "[c0, c1, ...]", or the
// "contiguous" sentinel for unchunked storage.
func chunkString(chunks []int, ok bool) string {
	if !ok {
		return "contiguous"
	}
	dims := make([]string, len(chunks))
	for i, c := range chunks {
		dims[i] = strconv.Itoa(c)
	}
	return "[" + strings.Join(dims, ", ") + "]"
}
