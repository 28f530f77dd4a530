package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffString renders the character level differences from one string to
// another. It returns "" if the strings are equal or differ in more than
// half of the shorter one.
func DiffString(from, to string) string {
	diffCfg := diffpatch.New()
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := diffCfg.DiffMain(from, to, doMultiLine)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	diffSize := 0
	var buf strings.Builder
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffInsert:
			diffSize += len(diff.Text)
			buf.WriteString("{+" + diff.Text + "+}")
		case diffpatch.DiffDelete:
			diffSize += len(diff.Text)
			buf.WriteString("[-" + diff.Text + "-]")
		case diffpatch.DiffEqual:
			buf.WriteString(diff.Text)
		}
	}
	if diffSize == 0 || diffSize > min(len(from), len(to))/2 {
		return ""
	}
	return buf.String()
}
