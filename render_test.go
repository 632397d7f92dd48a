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
	"strings"
	"testing"
)

const ansiRed = "\x1b[31m"

func TestSideBySideWidths(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)
	p.sideBySide("dtype:", "float32", "float64", false, false)

	line := strings.TrimSuffix(buf.String(), "\n")
	// " " + 28-char label + " " + 48-char value + " " + 48-char value.
	if len(line) != 1+labelWidth+1+valueWidth+1+valueWidth {
		t.Errorf("line length %d, want %d", len(line), 1+labelWidth+1+2*valueWidth)
	}
	want := " " + justify("dtype:", labelWidth, ' ') +
		" " + justify("float32", valueWidth, ' ') +
		" " + justify("float64", valueWidth, ' ')
	if line != want {
		t.Errorf("have %q, want %q", line, want)
	}
}

func TestSideBySideDashLine(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)
	p.sideBySide("group #00", "obs", "obs", true, false)

	line := buf.String()
	if !strings.Contains(line, strings.Repeat("-", valueWidth-3)+"obs") {
		t.Errorf("value not dash-padded: %q", line)
	}
	// The label column keeps space padding even on dash lines.
	if !strings.Contains(line, " "+justify("group #00", labelWidth, ' ')+" ") {
		t.Errorf("label not space-padded: %q", line)
	}
}

func TestSideBySideHighlight(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true)

	p.sideBySide("sf:", "0.1", "0.1", false, true)
	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("equal values should not be colored: %q", buf.String())
	}

	buf.Reset()
	p.sideBySide("sf:", "0.1", "0.2", false, true)
	if !strings.Contains(buf.String(), ansiRed) {
		t.Errorf("differing values should color the label: %q", buf.String())
	}

	// The row text itself is unchanged by the highlight.
	plain := &bytes.Buffer{}
	NewPrinter(plain, false).sideBySide("sf:", "0.1", "0.2", false, true)
	stripped := strings.ReplaceAll(buf.String(), ansiRed, "")
	stripped = strings.ReplaceAll(stripped, "\x1b[0m", "")
	if stripped != plain.String() {
		t.Errorf("highlighted row text differs: have %q, want %q", stripped, plain.String())
	}
}

func TestColorDisabledDegradesToPlainText(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false)
	p.headingf("Groups:")
	p.attentionf("different")
	p.goodf("same")
	p.mutedf("skipping")
	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("disabled color should emit no escape codes: %q", buf.String())
	}
	want := "Groups:\ndifferent\nsame\nskipping\n"
	if buf.String() != want {
		t.Errorf("have %q, want %q", buf.String(), want)
	}
}

func TestJustify(t *testing.T) {
	tests := []struct {
		s    string
		pad  byte
		want string
	}{
		{"ab", ' ', "   ab"},
		{"ab", '-', "---ab"},
		{"abcde", ' ', "abcde"},
		{"abcdefg", ' ', "abcdefg"}, // over width passes through
		{"", '-', "-----"},
	}
	for _, test := range tests {
		if have := justify(test.s, 5, test.pad); have != test.want {
			t.Errorf("justify(%q, 5, %q): have %q, want %q", test.s, test.pad, have, test.want)
		}
	}
}
