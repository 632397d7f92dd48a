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

// Package ncio opens NetCDF-family files as ncompare datasets.
// Classic-format files (CDF magic) are read with github.com/ctessum/cdf
// and NetCDF4/HDF5 files with github.com/batchatco/go-native-netcdf.
package ncio

import (
	"os"

	"github.com/danielfromearth/ncompare"
	"github.com/pkg/errors"
)

// Leading magic bytes of the two supported container formats.
const (
	magicCDF = 'C'
	magicHDF = 0x89
)

// Open opens the dataset at path, choosing a backend from the file's
// leading magic byte. It satisfies ncompare.OpenFunc.
func Open(path string) (ncompare.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var b [1]byte
	if _, err := f.Read(b[:]); err != nil {
		f.Close()
		return nil, errors.Wrapf(err, "ncio: reading file type of %s", path)
	}

	switch b[0] {
	case magicCDF:
		// cdf reads through ReadAt, so the consumed byte is harmless.
		return openCDF(f, path)
	case magicHDF:
		f.Close()
		return openHDF5(path)
	default:
		f.Close()
		return nil, errors.Errorf("ncio: %s is not a CDF or HDF5 file", path)
	}
}
