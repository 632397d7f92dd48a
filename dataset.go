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

// Package ncompare compares the structure and contents of two
// hierarchical array-data (NetCDF-style) files and reports the
// differences in a human-readable side-by-side format.
package ncompare

import (
	"errors"

	"github.com/ctessum/sparse"
)

// ErrNotFound is returned (possibly wrapped) by Dataset and Group
// implementations when a requested group or variable does not exist in
// the file.
var ErrNotFound = errors.New("not found")

// OpenFunc opens the dataset at the given path. The comparison phases
// each open and close their own handles, so an OpenFunc may be called
// several times for the same path during one comparison.
type OpenFunc func(path string) (Dataset, error)

// Dataset is a handle to an open hierarchical array file.
type Dataset interface {
	// Dimensions returns the named dimensions of the file and their sizes.
	Dimensions() (map[string]int, error)

	// GroupNames lists the names of the groups one level below the root.
	GroupNames() ([]string, error)

	// Group returns the named group below the root. It returns an error
	// wrapping ErrNotFound if no such group exists.
	Group(name string) (Group, error)

	// Root returns the root group of the file.
	Root() Group

	Close() error
}

// Group is a named namespace within a dataset that holds variables.
type Group interface {
	// VariableNames lists the names of the variables in this group.
	VariableNames() ([]string, error)

	// Variable returns the named variable. It returns an error wrapping
	// ErrNotFound if no such variable exists.
	Variable(name string) (Variable, error)
}

// Variable is a named, typed, shaped array within a group.
type Variable interface {
	// Dtype returns the element type of the variable, as the backend
	// names it (e.g. "float32", "double").
	Dtype() string

	// Shape returns the dimension lengths of the variable in order.
	// A scalar has an empty shape.
	Shape() []int

	// Chunking returns the per-dimension chunk sizes of the variable's
	// on-disk layout, or ok == false if the variable is stored
	// contiguously (or the backend cannot tell).
	Chunking() (chunks []int, ok bool)

	// Attr returns the named attribute value, or ok == false if the
	// attribute is not present.
	Attr(name string) (val interface{}, ok bool)

	// Values reads the full contents of the variable into a dense array.
	Values() (*sparse.DenseArray, error)
}

// attrFloat coerces an attribute value to a float64. Backends return
// scalar attributes in whatever width the file stores, and classic
// NetCDF attributes always arrive as slices.
func attrFloat(val interface{}) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case []float64:
		if len(v) > 0 {
			return v[0], true
		}
	case []float32:
		if len(v) > 0 {
			return float64(v[0]), true
		}
	case []int32:
		if len(v) > 0 {
			return float64(v[0]), true
		}
	case []int64:
		if len(v) > 0 {
			return float64(v[0]), true
		}
	}
	return 0, false
}
