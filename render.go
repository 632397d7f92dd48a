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
	"strings"

	"github.com/fatih/color"
)

// Column widths of the three-column comparison rows: a right-justified
// label followed by one right-justified value per file.
const (
	labelWidth = 28
	valueWidth = 48
)

// A Printer renders comparison report lines to a writer. Color use is
// decided once at construction; when disabled, all color codes degrade
// to empty strings and the text is unchanged.
type Printer struct {
	w io.Writer

	heading   *color.Color
	attention *color.Color
	good      *color.Color
	muted     *color.Color
}

// NewPrinter returns a Printer writing to w. Color is forced on or off
// explicitly rather than auto-detected, so report output tee'd to a
// file keeps its ANSI codes when color is enabled.
func NewPrinter(w io.Writer, enableColor bool) *Printer {
	p := &Printer{
		w:         w,
		heading:   color.New(color.FgHiBlue),
		attention: color.New(color.FgRed),
		good:      color.New(color.FgCyan),
		muted:     color.New(color.FgHiBlack),
	}
	for _, c := range []*color.Color{p.heading, p.attention, p.good, p.muted} {
		if enableColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// printf writes plain text with no added newline.
func (p *Printer) printf(format string, a ...interface{}) {
	fmt.Fprintf(p.w, format, a...)
}

// headingf writes a phase heading line.
func (p *Printer) headingf(format string, a ...interface{}) {
	fmt.Fprintln(p.w, p.heading.Sprintf(format, a...))
}

// attentionf writes an attention-colored line.
func (p *Printer) attentionf(format string, a ...interface{}) {
	fmt.Fprintln(p.w, p.attention.Sprintf(format, a...))
}

// goodf writes a no-differences verdict line.
func (p *Printer) goodf(format string, a ...interface{}) {
	fmt.Fprintln(p.w, p.good.Sprintf(format, a...))
}

// mutedf writes a de-emphasized notice line.
func (p *Printer) mutedf(format string, a ...interface{}) {
	fmt.Fprintln(p.w, p.muted.Sprintf(format, a...))
}

// sideBySide renders one three-column comparison row. The label is
// right-justified to labelWidth and each value to valueWidth; dashLine
// pads the value columns with dashes instead of spaces. When
// highlightDiff is set and the values differ, the label is emitted in
// the attention color. The row is emitted either way.
func (p *Printer) sideBySide(label, a, b string, dashLine, highlightDiff bool) {
	lbl := justify(label, labelWidth, ' ')
	if highlightDiff && a != b {
		lbl = p.attention.Sprint(lbl)
	}
	pad := byte(' ')
	if dashLine {
		pad = '-'
	}
	fmt.Fprintf(p.w, " %s %s %s\n", lbl, justify(a, valueWidth, pad), justify(b, valueWidth, pad))
}

// justify right-justifies s in a field of the given width, filling on
// the left with pad. Strings at or over the width are passed through.
func justify(s string, width int, pad byte) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(string(pad), width-len(s)) + s
}
