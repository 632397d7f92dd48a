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

	"github.com/ctessum/sparse"
)

// In-memory dataset implementations for testing the comparison engine
// without file I/O.

type memVar struct {
	dtype  string
	shape  []int
	chunks []int
	attrs  map[string]interface{}
	data   []float64
}

func (v *memVar) Dtype() string { return v.dtype }

func (v *memVar) Shape() []int { return v.shape }

func (v *memVar) Chunking() ([]int, bool) { return v.chunks, v.chunks != nil }

func (v *memVar) Attr(name string) (interface{}, bool) {
	val, ok := v.attrs[name]
	return val, ok
}

func (v *memVar) Values() (*sparse.DenseArray, error) {
	da := sparse.ZerosDense(v.shape...)
	da.Elements = v.data
	return da, nil
}

type memGroup struct {
	vars map[string]*memVar
}

func (g *memGroup) VariableNames() ([]string, error) {
	names := make([]string, 0, len(g.vars))
	for n := range g.vars {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}

func (g *memGroup) Variable(name string) (Variable, error) {
	v, ok := g.vars[name]
	if !ok {
		return nil, fmt.Errorf("variable %q: %w", name, ErrNotFound)
	}
	return v, nil
}

type memDataset struct {
	dims   map[string]int
	root   *memGroup
	groups map[string]*memGroup
}

func (d *memDataset) Dimensions() (map[string]int, error) { return d.dims, nil }

func (d *memDataset) GroupNames() ([]string, error) {
	names := make([]string, 0, len(d.groups))
	for n := range d.groups {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}

func (d *memDataset) Group(name string) (Group, error) {
	g, ok := d.groups[name]
	if !ok {
		return nil, fmt.Errorf("group %q: %w", name, ErrNotFound)
	}
	return g, nil
}

func (d *memDataset) Root() Group { return d.root }

func (d *memDataset) Close() error { return nil }

// openerFor returns an OpenFunc serving the given datasets by path.
func openerFor(datasets map[string]*memDataset) OpenFunc {
	return func(path string) (Dataset, error) {
		ds, ok := datasets[path]
		if !ok {
			return nil, fmt.Errorf("no such dataset: %s", path)
		}
		return ds, nil
	}
}
