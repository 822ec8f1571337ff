package dump

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/vnodes/abi"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Diff writes a line diff from one text to another, prefixing inserted lines
// with "+ ", deleted ones with "- " and common ones with "  ". It reports
// whether the texts differ.
func Diff(w io.Writer, from, to string, colors *Colors) (bool, error) {
	diffCfg := diffpatch.New()
	a, b, lines := diffCfg.DiffLinesToChars(from, to)
	diffs := diffCfg.DiffCharsToLines(diffCfg.DiffMain(a, b, false), lines)
	changed := false
	for _, diff := range diffs {
		prefix, attr := "  ", ValueColor
		switch diff.Type {
		case diffpatch.DiffInsert:
			prefix, attr = "+ ", InsertColor
			changed = true
		case diffpatch.DiffDelete:
			prefix, attr = "- ", DeleteColor
			changed = true
		}
		for _, line := range strings.SplitAfter(diff.Text, "\n") {
			if line == "" {
				continue
			}
			line = prefix + strings.TrimSuffix(line, "\n")
			if attr != ValueColor {
				line = colors.Color(abi.Void, attr, line)
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return changed, err
			}
		}
	}
	return changed, nil
}
