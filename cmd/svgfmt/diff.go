package main

import (
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

var (
	deleted  = color.New(color.FgRed, color.CrossedOut)
	inserted = color.New(color.FgGreen)
)

// renderDiff returns a character-level diff from one text to another,
// deletions struck through in red and insertions in green. With colors
// disabled the markers fall back to {-...-} and {+...+}.
func renderDiff(from, to string) string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(from, to, true))

	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			if color.NoColor {
				b.WriteString("{-" + d.Text + "-}")
			} else {
				b.WriteString(deleted.Sprint(d.Text))
			}
		case diffmatchpatch.DiffInsert:
			if color.NoColor {
				b.WriteString("{+" + d.Text + "+}")
			} else {
				b.WriteString(inserted.Sprint(d.Text))
			}
		case diffmatchpatch.DiffEqual:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}
