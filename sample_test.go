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
	"bytes"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/ctessum/sparse"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func denseOf(shape []int, data []float64) *sparse.DenseArray {
	da := sparse.ZerosDense(shape...)
	da.Elements = data
	return da
}

func TestCompareRandomSampleNoMismatches(t *testing.T) {
	a := &memVar{shape: []int{2, 3}, data: []float64{1, 2, 3, 4, 5, 6}}
	b := &memVar{shape: []int{2, 3}, data: []float64{1, 2, 3, 4, 5, 6}}

	var buf bytes.Buffer
	p := NewPrinter(&buf, false)
	n, err := p.compareRandomSample(a, b, testRand(), 50, DefaultThreshold)
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("have %d mismatches, want 0", n)
	}
	out := buf.String()
	if !strings.Contains(out, strings.Repeat(".", 50)) {
		t.Errorf("missing progress marks: %q", out)
	}
	if !strings.Contains(out, "No mismatches.") {
		t.Errorf("missing summary: %q", out)
	}
}

func TestCompareRandomSampleAllMismatches(t *testing.T) {
	a := &memVar{shape: []int{4}, data: []float64{0, 0, 0, 0}}
	b := &memVar{shape: []int{4}, data: []float64{1, 1, 1, 1}}

	var buf bytes.Buffer
	p := NewPrinter(&buf, false)
	n, err := p.compareRandomSample(a, b, testRand(), 10, DefaultThreshold)
	if err != nil {
		t.Fatal(err)
	}
	if n != 10 {
		t.Errorf("have %d mismatches, want 10", n)
	}
	out := buf.String()
	if !strings.Contains(out, "10 mismatches, out of 10 samples.") {
		t.Errorf("missing summary: %q", out)
	}
	if !strings.Contains(out, "Difference exceeded threshold (diff == 1)") {
		t.Errorf("missing detail block: %q", out)
	}
	if !strings.Contains(out, "largest absolute difference: 1") {
		t.Errorf("missing difference statistic: %q", out)
	}
}

func TestCompareRandomSampleNaNIsNeverAMismatch(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		name         string
		dataA, dataB []float64
	}{
		{"NaN vs number", []float64{nan, nan}, []float64{5, 5}},
		{"number vs NaN", []float64{5, 5}, []float64{nan, nan}},
		{"NaN vs NaN", []float64{nan, nan}, []float64{nan, nan}},
	}
	for _, test := range tests {
		a := &memVar{shape: []int{2}, data: test.dataA}
		b := &memVar{shape: []int{2}, data: test.dataB}

		var buf bytes.Buffer
		p := NewPrinter(&buf, false)
		n, err := p.compareRandomSample(a, b, testRand(), 20, DefaultThreshold)
		if err != nil {
			t.Errorf("%s: %v", test.name, err)
			continue
		}
		if n != 0 {
			t.Errorf("%s: have %d mismatches, want 0", test.name, n)
		}
	}
}

func TestCompareRandomSampleThresholdIsStrict(t *testing.T) {
	// A difference exactly equal to the threshold is not a mismatch.
	a := &memVar{shape: []int{1}, data: []float64{0}}
	b := &memVar{shape: []int{1}, data: []float64{1e-6}}

	var buf bytes.Buffer
	p := NewPrinter(&buf, false)
	n, err := p.compareRandomSample(a, b, testRand(), 10, 1e-6)
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("|diff| == threshold: have %d mismatches, want 0", n)
	}

	// Just over the threshold is.
	b = &memVar{shape: []int{1}, data: []float64{1.01e-6}}
	buf.Reset()
	n, err = p.compareRandomSample(a, b, testRand(), 10, 1e-6)
	if err != nil {
		t.Fatal(err)
	}
	if n != 10 {
		t.Errorf("|diff| just over threshold: have %d mismatches, want 10", n)
	}
}

func TestValueAt(t *testing.T) {
	arr := denseOf([]int{2, 3}, []float64{0, 1, 2, 3, 4, 5})

	v, err := valueAt(arr, []int{1, 2})
	if err != nil {
		t.Fatal(err)
	}
	if v != 5 {
		t.Errorf("have %v, want 5", v)
	}

	// An index drawn from a larger shape is rejected, not compared.
	if _, err := valueAt(arr, []int{2, 0}); err == nil {
		t.Error("out-of-range index: have nil error, want error")
	}
	// A rank mismatch likewise.
	if _, err := valueAt(arr, []int{1}); err == nil {
		t.Error("rank mismatch: have nil error, want error")
	}

	// Scalars are fetched directly.
	scalar := denseOf(nil, []float64{7})
	v, err = valueAt(scalar, nil)
	if err != nil {
		t.Fatal(err)
	}
	if v != 7 {
		t.Errorf("have %v, want 7", v)
	}
}
