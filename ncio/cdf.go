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

package ncio

import (
	"os"
	"reflect"

	"github.com/ctessum/cdf"
	"github.com/ctessum/sparse"
	"github.com/danielfromearth/ncompare"
	"github.com/pkg/errors"
)

// cdfDataset reads classic-format (CDF magic) NetCDF files. The classic
// format has neither groups nor chunking, so the root group holds every
// variable and chunk queries report contiguous storage.
type cdfDataset struct {
	path string
	f    *os.File
	ff   *cdf.File
}

func openCDF(f *os.File, path string) (ncompare.Dataset, error) {
	ff, err := cdf.Open(f)
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "ncio: opening %s", path)
	}
	return &cdfDataset{path: path, f: f, ff: ff}, nil
}

func (d *cdfDataset) Close() error {
	return d.f.Close()
}

// Dimensions derives the dimension name→size map from the file's
// variables: cdf exposes per-variable dimension names and lengths but
// no global dimension listing, so dimensions used by no variable are
// invisible here.
func (d *cdfDataset) Dimensions() (map[string]int, error) {
	dims := make(map[string]int)
	for _, v := range d.ff.Header.Variables() {
		names := d.ff.Header.Dimensions(v)
		lengths := d.ff.Header.Lengths(v)
		for i, n := range names {
			if i < len(lengths) {
				dims[n] = lengths[i]
			}
		}
	}
	return dims, nil
}

func (d *cdfDataset) GroupNames() ([]string, error) {
	return nil, nil
}

func (d *cdfDataset) Group(name string) (ncompare.Group, error) {
	return nil, errors.Wrapf(ncompare.ErrNotFound,
		"ncio: group %q in %s: classic NetCDF files have no groups", name, d.path)
}

func (d *cdfDataset) Root() ncompare.Group {
	return &cdfGroup{d: d}
}

type cdfGroup struct {
	d *cdfDataset
}

func (g *cdfGroup) VariableNames() ([]string, error) {
	return g.d.ff.Header.Variables(), nil
}

func (g *cdfGroup) Variable(name string) (ncompare.Variable, error) {
	for _, v := range g.d.ff.Header.Variables() {
		if v == name {
			return &cdfVariable{d: g.d, name: name}, nil
		}
	}
	return nil, errors.Wrapf(ncompare.ErrNotFound, "ncio: variable %q in %s", name, g.d.path)
}

type cdfVariable struct {
	d    *cdfDataset
	name string
}

// Dtype reports the Go element type of the variable's values, taken
// from the type of the buffer the cdf reader allocates for it.
func (v *cdfVariable) Dtype() string {
	r := v.d.ff.Reader(v.name, nil, nil)
	buf := r.Zero(0)
	t := reflect.TypeOf(buf)
	if t == nil || t.Kind() != reflect.Slice {
		return ""
	}
	return t.Elem().String()
}

func (v *cdfVariable) Shape() []int {
	return v.d.ff.Header.Lengths(v.name)
}

func (v *cdfVariable) Chunking() ([]int, bool) {
	return nil, false
}

func (v *cdfVariable) Attr(name string) (interface{}, bool) {
	val := v.d.ff.Header.GetAttribute(v.name, name)
	if val == nil {
		return nil, false
	}
	return val, true
}

func (v *cdfVariable) Values() (*sparse.DenseArray, error) {
	r := v.d.ff.Reader(v.name, nil, nil)
	buf := r.Zero(-1)
	if _, err := r.Read(buf); err != nil {
		return nil, errors.Wrapf(err, "ncio: reading variable %q from %s", v.name, v.d.path)
	}
	return toDense(buf, v.Shape())
}
