// Package diff renders line diffs between a generated file on disk and the
// output the generator would write now.
package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// contextLines is the number of unchanged lines kept around a change.
const contextLines = 3

// Result holds a computed diff.
type Result struct {
	Old  string // label of the existing content
	New  string // label of the regenerated content
	Diff string // body without header, empty when the inputs are equal
}

// Equal reports whether the inputs were identical.
func (r Result) Equal() bool {
	return r.Diff == ""
}

// Compute returns a line-based diff between oldContent and newContent.
func Compute(oldContent, newContent, oldLabel, newLabel string) Result {
	r := Result{Old: oldLabel, New: newLabel}
	if oldContent == newContent {
		return r
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(oldContent, newContent)
	d := dmp.DiffMain(a, b, false)
	d = dmp.DiffCharsToLines(d, lines)

	r.Diff = format(d)
	return r
}

func format(diffs []diffmatchpatch.Diff) string {
	var b strings.Builder
	for i, d := range diffs {
		text := strings.TrimSuffix(d.Text, "\n")
		if text == "" {
			continue
		}
		lines := strings.Split(text, "\n")
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			for _, l := range lines {
				b.WriteString("- " + l + "\n")
			}
		case diffmatchpatch.DiffInsert:
			for _, l := range lines {
				b.WriteString("+ " + l + "\n")
			}
		case diffmatchpatch.DiffEqual:
			writeContext(&b, lines, i == 0, i == len(diffs)-1)
		}
	}
	return b.String()
}

// writeContext keeps only the lines next to a change: the tail of a leading
// equal block, the head of a trailing one, both ends of a middle one.
func writeContext(b *strings.Builder, lines []string, first, last bool) {
	if len(lines) <= 2*contextLines {
		for _, l := range lines {
			b.WriteString("  " + l + "\n")
		}
		return
	}
	if !first {
		for _, l := range lines[:contextLines] {
			b.WriteString("  " + l + "\n")
		}
	}
	b.WriteString("  ...\n")
	if !last {
		for _, l := range lines[len(lines)-contextLines:] {
			b.WriteString("  " + l + "\n")
		}
	}
}

// Colourise adds ANSI colours to removed and added lines.
func Colourise(d string) string {
	const (
		red   = "\033[31m"
		green = "\033[32m"
		reset = "\033[0m"
	)

	var b strings.Builder
	for _, line := range strings.Split(d, "\n") {
		if line == "" {
			continue
		}
		switch {
		case strings.HasPrefix(line, "- "):
			b.WriteString(red + line + reset + "\n")
		case strings.HasPrefix(line, "+ "):
			b.WriteString(green + line + reset + "\n")
		default:
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}

// Format returns the diff with a ---/+++ header, or "" when there is no
// difference.
func (r Result) Format(colour bool) string {
	if r.Equal() {
		return ""
	}
	header := fmt.Sprintf("--- %s\n+++ %s\n", r.Old, r.New)
	if colour {
		return header + Colourise(r.Diff)
	}
	return header + r.Diff
}
