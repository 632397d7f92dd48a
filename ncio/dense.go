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
	"reflect"

	"github.com/ctessum/sparse"
	"github.com/pkg/errors"
)

// shapeOf derives the dimension lengths of a value as the readers
// return it: a scalar, a flat typed slice, or nested slices of slices.
// An empty outer dimension ends the walk, leaving inner lengths at zero.
func shapeOf(val interface{}) []int {
	var shape []int
	v := reflect.ValueOf(val)
	for v.Kind() == reflect.Slice || v.Kind() == reflect.Array {
		shape = append(shape, v.Len())
		if v.Len() == 0 {
			break
		}
		v = v.Index(0)
		if v.Kind() == reflect.Interface {
			v = v.Elem()
		}
	}
	return shape
}

// toDense flattens a numeric value of the given shape into a dense
// float64 array in row-major order.
func toDense(val interface{}, shape []int) (*sparse.DenseArray, error) {
	n := 1
	for _, s := range shape {
		n *= s
	}
	flat := make([]float64, 0, n)
	if err := flattenInto(reflect.ValueOf(val), &flat); err != nil {
		return nil, err
	}
	if len(flat) != n {
		return nil, errors.Errorf("ncio: shape %v implies %d elements but found %d", shape, n, len(flat))
	}
	da := sparse.ZerosDense(shape...)
	da.Elements = flat
	return da, nil
}

func flattenInto(v reflect.Value, out *[]float64) error {
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if err := flattenInto(v.Index(i), out); err != nil {
				return err
			}
		}
		return nil
	case reflect.Interface:
		return flattenInto(v.Elem(), out)
	case reflect.Float32, reflect.Float64:
		*out = append(*out, v.Float())
		return nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		*out = append(*out, float64(v.Int()))
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		*out = append(*out, float64(v.Uint()))
		return nil
	default:
		return errors.Errorf("ncio: cannot compare values of type %s", v.Kind())
	}
}
