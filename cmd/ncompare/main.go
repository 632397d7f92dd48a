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

// Command ncompare is a command-line interface for comparing the
// structure and contents of two NetCDF datasets.
package main

import (
	"fmt"
	"os"

	"github.com/danielfromearth/ncompare/ncompareutil"
)

func main() {
	if err := ncompareutil.Root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
