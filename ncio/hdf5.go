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
	"github.com/batchatco/go-native-netcdf/netcdf/api"
	"github.com/batchatco/go-native-netcdf/netcdf/hdf5"
	"github.com/ctessum/sparse"
	"github.com/danielfromearth/ncompare"
	"github.com/pkg/errors"
)

// h5Dataset reads NetCDF4 (HDF5-backed) files. Subgroups opened during
// a comparison phase stay open until the dataset handle is closed.
//
// The reader's API does not expose chunk layouts, so chunk queries
// report contiguous storage.
type h5Dataset struct {
	path string
	root api.Group
	subs []api.Group
}

func openHDF5(path string) (ncompare.Dataset, error) {
	g, err := hdf5.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "ncio: opening %s", path)
	}
	return &h5Dataset{path: path, root: g}, nil
}

func (d *h5Dataset) Close() error {
	for _, g := range d.subs {
		g.Close()
	}
	d.root.Close()
	return nil
}

// Dimensions derives the dimension name→size map from the file's
// root-group variables, pairing each variable's dimension names with
// its shape.
func (d *h5Dataset) Dimensions() (map[string]int, error) {
	dims := make(map[string]int)
	for _, name := range d.root.ListVariables() {
		v, err := d.newVariable(d.root, name)
		if err != nil {
			return nil, err
		}
		shape := v.Shape()
		for i, dim := range v.vg.Dimensions() {
			if i < len(shape) {
				dims[dim] = shape[i]
			}
		}
	}
	return dims, nil
}

func (d *h5Dataset) GroupNames() ([]string, error) {
	return d.root.ListSubgroups(), nil
}

func (d *h5Dataset) Group(name string) (ncompare.Group, error) {
	found := false
	for _, g := range d.root.ListSubgroups() {
		if g == name {
			found = true
			break
		}
	}
	if !found {
		return nil, errors.Wrapf(ncompare.ErrNotFound, "ncio: group %q in %s", name, d.path)
	}
	g, err := d.root.GetGroup(name)
	if err != nil {
		return nil, errors.Wrapf(err, "ncio: opening group %q in %s", name, d.path)
	}
	d.subs = append(d.subs, g)
	return &h5Group{d: d, g: g}, nil
}

func (d *h5Dataset) Root() ncompare.Group {
	return &h5Group{d: d, g: d.root}
}

// newVariable opens a variable and reads its values once; the HDF5
// reader exposes neither shape nor element count per dimension, so the
// shape comes from the nesting of the returned value.
func (d *h5Dataset) newVariable(g api.Group, name string) (*h5Variable, error) {
	vg, err := g.GetVarGetter(name)
	if err != nil {
		return nil, errors.Wrapf(err, "ncio: variable %q in %s", name, d.path)
	}
	vals, err := vg.Values()
	if err != nil {
		return nil, errors.Wrapf(err, "ncio: reading variable %q from %s", name, d.path)
	}
	return &h5Variable{d: d, name: name, vg: vg, vals: vals, shape: shapeOf(vals)}, nil
}

type h5Group struct {
	d *h5Dataset
	g api.Group
}

func (g *h5Group) VariableNames() ([]string, error) {
	return g.g.ListVariables(), nil
}

func (g *h5Group) Variable(name string) (ncompare.Variable, error) {
	for _, v := range g.g.ListVariables() {
		if v == name {
			return g.d.newVariable(g.g, name)
		}
	}
	return nil, errors.Wrapf(ncompare.ErrNotFound, "ncio: variable %q in %s", name, g.d.path)
}

type h5Variable struct {
	d     *h5Dataset
	name  string
	vg    api.VarGetter
	vals  interface{}
	shape []int
}

// Dtype reports the variable's base type in CDL form ("float",
// "double", "int", ...).
func (v *h5Variable) Dtype() string {
	return v.vg.Type()
}

func (v *h5Variable) Shape() []int {
	return v.shape
}

func (v *h5Variable) Chunking() ([]int, bool) {
	return nil, false
}

func (v *h5Variable) Attr(name string) (interface{}, bool) {
	return v.vg.Attributes().Get(name)
}

func (v *h5Variable) Values() (*sparse.DenseArray, error) {
	return toDense(v.vals, v.shape)
}
