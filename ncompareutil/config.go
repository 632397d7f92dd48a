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

package ncompareutil

import (
	"fmt"
	"io"
	"os"
)

// checkInputFile expands environment variables in an input path and
// makes sure it names an existing regular file. It runs before any
// comparison work so a bad path never produces partial output.
func checkInputFile(path string) (string, error) {
	path = os.ExpandEnv(path)
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("ncompare: expected file does not exist: %s", path)
	}
	if err != nil {
		return "", fmt.Errorf("ncompare: checking input file %s: %v", path, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("ncompare: expected a file but found a directory: %s", path)
	}
	return path, nil
}

// checkReportFile creates the report file. A pre-existing file is never
// overwritten or appended to.
func checkReportFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if os.IsExist(err) {
			return nil, fmt.Errorf("ncompare: file selected for report already exists. "+
				"Delete it or choose a different filename: %s", path)
		}
		return nil, fmt.Errorf("ncompare: creating report file %s: %v", path, err)
	}
	return f, nil
}

// reportWriter returns the writer the comparison report goes to:
// standard output, or, when a report path is given, a multi-writer
// duplicating every write to the report file verbatim.
func reportWriter(report string) (io.Writer, func() error, error) {
	if report == "" {
		return os.Stdout, nil, nil
	}
	f, err := checkReportFile(os.ExpandEnv(report))
	if err != nil {
		return nil, nil, err
	}
	return io.MultiWriter(os.Stdout, f), f.Close, nil
}
