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
	"math"
	"math/rand"

	"github.com/ctessum/sparse"
	"gonum.org/v1/gonum/floats"
)

// Sampling defaults.
const (
	DefaultSamples   = 100
	DefaultThreshold = 1e-6
)

// compareRandomSample draws `samples` uniformly random indices into
// varA's shape and compares the value at each index across both
// variables. A sample where either value is NaN never counts as a
// mismatch. Otherwise the values mismatch when |b-a| is strictly
// greater than threshold; a matching sample prints a progress dot and a
// mismatching one prints a detail block. The two variables are assumed
// to share a shape; an index outside varB's shape returns an error
// rather than comparing further. Returns the mismatch count.
func (p *Printer) compareRandomSample(varA, varB Variable, rnd *rand.Rand, samples int, threshold float64) (int, error) {
	valsA, err := varA.Values()
	if err != nil {
		return 0, fmt.Errorf("ncompare: random sample: reading first variable: %v", err)
	}
	valsB, err := varB.Values()
	if err != nil {
		return 0, fmt.Errorf("ncompare: random sample: reading second variable: %v", err)
	}

	shape := varA.Shape()
	var mismatches int
	var exceeded []float64
	for i := 0; i < samples; i++ {
		idx := make([]int, len(shape))
		for d, size := range shape {
			if size <= 0 {
				return mismatches, fmt.Errorf("ncompare: random sample: dimension %d has size %d", d, size)
			}
			idx[d] = rnd.Intn(size)
		}

		a, err := valueAt(valsA, idx)
		if err != nil {
			return mismatches, err
		}
		b, err := valueAt(valsB, idx)
		if err != nil {
			return mismatches, err
		}

		if math.IsNaN(a) || math.IsNaN(b) {
			p.printf(".")
			continue
		}
		diff := b - a
		if math.Abs(diff) <= threshold {
			p.printf(".")
			continue
		}

		mismatches++
		exceeded = append(exceeded, math.Abs(diff))
		p.printf("\n")
		p.attentionf("Difference exceeded threshold (diff == %v)", diff)
		p.printf("var shape: %s\n", shapeString(shape))
		p.printf("indices:   %s\n", shapeString(idx))
		p.printf("value a: %v\n", a)
		p.printf("value b: %v\n\n", b)
	}

	if mismatches > 0 {
		p.attentionf(" %d mismatches, out of %d samples.", mismatches, samples)
		p.printf("largest absolute difference: %v\n", floats.Max(exceeded))
	} else {
		p.goodf(" No mismatches.")
	}
	p.printf("Done.\n")
	return mismatches, nil
}

// valueAt fetches the scalar at a multi-dimensional index, with bounds
// checking against the array's own shape (the two compared variables
// are not required up front to share a shape, so the index drawn from
// one may not be valid for the other).
func valueAt(arr *sparse.DenseArray, idx []int) (float64, error) {
	if len(idx) == 0 {
		if len(arr.Elements) == 0 {
			return 0, fmt.Errorf("ncompare: random sample: empty array")
		}
		return arr.Elements[0], nil
	}
	if len(idx) != len(arr.Shape) {
		return 0, fmt.Errorf("ncompare: random sample: index rank %d does not match array rank %d",
			len(idx), len(arr.Shape))
	}
	for d, i := range idx {
		if i < 0 || i >= arr.Shape[d] {
			return 0, fmt.Errorf("ncompare: random sample: index %v out of range for shape %v",
				idx, arr.Shape)
		}
	}
	return arr.Get(idx...), nil
}
