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
	"io"
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Version is the ncompare version number.
const Version = "0.3.0"

// Options configure a comparison run.
type Options struct {
	// Group optionally names a group whose variable lists should be
	// compared. It also gates the value-comparison phases.
	Group string

	// Variable optionally names a variable within Group whose values
	// should be sampled and compared. Ignored when Group is empty.
	Variable string

	// Color enables ANSI-colored output.
	Color bool

	// Samples is the number of random value draws; DefaultSamples when
	// zero or negative.
	Samples int

	// Threshold is the value-difference tolerance; DefaultThreshold
	// when zero.
	Threshold float64

	// Rand is the random source for index draws. When nil a
	// time-seeded source is used, making runs non-deterministic.
	Rand *rand.Rand
}

// Compare runs the full comparison sequence between the datasets at
// pathA and pathB, writing the report to w: dimension listing, group
// diff, the optional focused in-group and per-variable phases, and a
// variable-by-variable structural walk over the root group and every
// matched subgroup. Structural differences are reported, not returned;
// the error is non-nil only for failures of the machinery itself.
func Compare(w io.Writer, open OpenFunc, pathA, pathB string, opts Options) error {
	if opts.Samples <= 0 {
		opts.Samples = DefaultSamples
	}
	if opts.Threshold == 0 {
		opts.Threshold = DefaultThreshold
	}
	rnd := opts.Rand
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	p := NewPrinter(w, opts.Color)

	p.headingf("\nDimensions:")
	if err := printDimensions(p, open, pathA); err != nil {
		return err
	}
	if err := printDimensions(p, open, pathB); err != nil {
		return err
	}

	p.headingf("\nGroups:")
	if err := compareGroups(p, open, pathA, pathB); err != nil {
		return err
	}

	if opts.Group != "" {
		p.headingf("\nVariables within specified group <%s>:", opts.Group)
		if err := compareGroupVariables(p, open, pathA, pathB, opts.Group); err != nil {
			return err
		}

		if opts.Variable != "" {
			err := compareFocusedVariable(p, open, pathA, pathB, opts, rnd)
			if err != nil {
				if !errors.Is(err, ErrNotFound) {
					return err
				}
				// Missing group or variable in the focused phases is
				// reported with its stack and the remaining phases run.
				p.attentionf("\nError when comparing values for variable <%s> in group <%s>.",
					opts.Variable, opts.Group)
				p.printf("%+v\n\n", err)
			}
		} else {
			p.mutedf("\nNo variable selected for comparison. Skipping..")
		}
	} else {
		p.mutedf("\nNo variable group selected for comparison. Skipping..")
	}

	p.headingf("\nAll variables:")
	if err := compareAllVariables(p, open, pathA, pathB); err != nil {
		return err
	}

	p.headingf("\nDone.")
	return nil
}

// compareFocusedVariable runs the two value-comparison phases for the
// variable named by opts: a first-row preview from each file, then the
// random-sample comparison.
func compareFocusedVariable(p *Printer, open OpenFunc, pathA, pathB string, opts Options, rnd *rand.Rand) error {
	p.headingf("\nSample values within specified variable <%s>:", opts.Variable)
	if err := printSampleValues(p, open, pathA, opts.Group, opts.Variable); err != nil {
		return err
	}
	if err := printSampleValues(p, open, pathB, opts.Group, opts.Variable); err != nil {
		return err
	}

	p.headingf("\nChecking multiple random values within specified variable <%s>:", opts.Variable)
	return compareRandomValues(p, open, pathA, pathB, opts.Group, opts.Variable,
		rnd, opts.Samples, opts.Threshold)
}

// printDimensions lists one file's dimension names and sizes, sorted
// by name.
func printDimensions(p *Printer, open OpenFunc, path string) error {
	ds, err := open(path)
	if err != nil {
		return err
	}
	defer ds.Close()

	dims, err := ds.Dimensions()
	if err != nil {
		return fmt.Errorf("ncompare: dimensions of %s: %v", path, err)
	}
	names := make([]string, 0, len(dims))
	for n := range dims {
		names = append(names, n)
	}
	sort.Strings(names)
	pairs := make([]string, len(names))
	for i, n := range names {
		pairs[i] = fmt.Sprintf("(%s, %d)", n, dims[n])
	}
	p.printf("[%s]\n", strings.Join(pairs, ", "))
	return nil
}

// compareGroups lists each file's group names and diffs the two lists.
func compareGroups(p *Printer, open OpenFunc, pathA, pathB string) error {
	listGroups := func(path string) ([]string, error) {
		ds, err := open(path)
		if err != nil {
			return nil, err
		}
		defer ds.Close()
		names, err := ds.GroupNames()
		if err != nil {
			return nil, fmt.Errorf("ncompare: groups of %s: %v", path, err)
		}
		sorted := sortedNames(names)
		p.printf("%v\n", sorted)
		return sorted, nil
	}

	glistA, err := listGroups(pathA)
	if err != nil {
		return err
	}
	glistB, err := listGroups(pathB)
	if err != nil {
		return err
	}
	_, err = p.reportListDiff(glistA, glistB, "")
	return err
}

// compareGroupVariables lists the variables of the named group in each
// file and diffs the two lists.
func compareGroupVariables(p *Printer, open OpenFunc, pathA, pathB, group string) error {
	vlistA, err := listGroupVariables(p, open, pathA, group)
	if err != nil {
		return err
	}
	vlistB, err := listGroupVariables(p, open, pathB, group)
	if err != nil {
		return err
	}
	_, err = p.reportListDiff(vlistA, vlistB, "")
	return err
}

// listGroupVariables prints and returns the sorted variable names of
// one file's group. A failure to open the group is annotated on the
// report before the error propagates.
func listGroupVariables(p *Printer, open OpenFunc, path, group string) ([]string, error) {
	ds, err := open(path)
	if err != nil {
		return nil, err
	}
	defer ds.Close()

	grp, err := ds.Group(group)
	if err != nil {
		p.printf("\nError occurred when attempting to open group within <%s>.\n\n", path)
		return nil, err
	}
	names, err := grp.VariableNames()
	if err != nil {
		return nil, fmt.Errorf("ncompare: variables of group %q in %s: %v", group, path, err)
	}
	sorted := sortedNames(names)
	p.printf("%v\n", sorted)
	return sorted, nil
}

// printSampleValues prints the first row of the named variable's
// values from one file.
func printSampleValues(p *Printer, open OpenFunc, path, group, varname string) error {
	ds, err := open(path)
	if err != nil {
		return err
	}
	defer ds.Close()

	grp, err := ds.Group(group)
	if err != nil {
		return err
	}
	v, err := grp.Variable(varname)
	if err != nil {
		return err
	}
	vals, err := v.Values()
	if err != nil {
		return err
	}
	row := vals.Elements
	if n := len(vals.Shape); n > 0 {
		if rl := vals.Shape[n-1]; rl < len(row) {
			row = row[:rl]
		}
	}
	p.printf("%v\n", row)
	return nil
}

// compareRandomValues opens the named variable in both files and runs
// the random-sample comparison on the pair.
func compareRandomValues(p *Printer, open OpenFunc, pathA, pathB, group, varname string,
	rnd *rand.Rand, samples int, threshold float64) error {

	openVar := func(path string) (Variable, func() error, error) {
		ds, err := open(path)
		if err != nil {
			return nil, nil, err
		}
		grp, err := ds.Group(group)
		if err != nil {
			ds.Close()
			return nil, nil, err
		}
		v, err := grp.Variable(varname)
		if err != nil {
			ds.Close()
			return nil, nil, err
		}
		return v, ds.Close, nil
	}

	varA, closeA, err := openVar(pathA)
	if err != nil {
		return err
	}
	defer closeA()
	varB, closeB, err := openVar(pathB)
	if err != nil {
		return err
	}
	defer closeB()

	_, err = p.compareRandomSample(varA, varB, rnd, samples, threshold)
	return err
}

// compareAllVariables walks both files structurally: a header, the
// root-group variables aligned and rendered pairwise, then every
// matched group's variables likewise.
func compareAllVariables(p *Printer, open OpenFunc, pathA, pathB string) error {
	p.sideBySide(" ", "File A", "File B", false, false)

	dsA, err := open(pathA)
	if err != nil {
		return err
	}
	defer dsA.Close()
	dsB, err := open(pathB)
	if err != nil {
		return err
	}
	defer dsB.Close()

	p.sideBySide("-", "-", "-", true, false)

	rootVarsA, err := dsA.Root().VariableNames()
	if err != nil {
		return fmt.Errorf("ncompare: root variables of %s: %v", pathA, err)
	}
	rootVarsB, err := dsB.Root().VariableNames()
	if err != nil {
		return fmt.Errorf("ncompare: root variables of %s: %v", pathB, err)
	}
	p.sideBySide("num variables in root group:",
		strconv.Itoa(len(rootVarsA)), strconv.Itoa(len(rootVarsB)), false, false)

	rows, err := alignNames(rootVarsA, rootVarsB)
	if err != nil {
		return err
	}
	for _, row := range rows {
		if err := p.compareVariableProperties(row.a, row.b, dsA.Root(), dsB.Root()); err != nil {
			return err
		}
	}

	groupsA, err := dsA.GroupNames()
	if err != nil {
		return err
	}
	groupsB, err := dsB.GroupNames()
	if err != nil {
		return err
	}
	grows, err := alignNames(groupsA, groupsB)
	if err != nil {
		return err
	}
	for _, g := range grows {
		p.sideBySide(fmt.Sprintf("group #%02d", g.i),
			strings.TrimSpace(g.a), strings.TrimSpace(g.b), true, false)

		var grpA, grpB Group
		var varsA, varsB []string
		if g.a != "" {
			if grpA, err = dsA.Group(g.a); err != nil {
				return err
			}
			if varsA, err = grpA.VariableNames(); err != nil {
				return err
			}
			varsA = sortedNames(varsA)
		}
		if g.b != "" {
			if grpB, err = dsB.Group(g.b); err != nil {
				return err
			}
			if varsB, err = grpB.VariableNames(); err != nil {
				return err
			}
			varsB = sortedNames(varsB)
		}
		p.sideBySide("num variables in groups:",
			strconv.Itoa(len(varsA)), strconv.Itoa(len(varsB)), false, false)

		vrows, err := alignNames(varsA, varsB)
		if err != nil {
			return err
		}
		for _, v := range vrows {
			// A nil group is only reachable alongside an empty name,
			// which short-circuits before the group is touched.
			if err := p.compareVariableProperties(v.a, v.b, grpA, grpB); err != nil {
				return err
			}
		}
	}
	return nil
}
