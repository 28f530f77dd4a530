package libdiff

import (
	"strconv"
	"strings"

	"github.com/signadot/yamlnav"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// we align the items by their summaries:
//
//  1. every item is summarized: scalars by their text, collections by
//     their type
//  2. the summaries are mapped to runes and diffed
//  3. matching collections are recursed into
//  4. a run of deletions followed by a run of insertions is paired up
//     into changes, the remainder are removals or additions
func (d *differ) sequence(path string, from, to yamlnav.Node) {
	m := map[string]rune{}
	fromRunes := mapValues(m, from)
	toRunes := mapValues(m, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	at := func(i int) string {
		return path + "[" + strconv.Itoa(i) + "]"
	}
	fi, ti := 0, 0
	var deleted []int
	flush := func() {
		for _, i := range deleted {
			d.res = append(d.res, makeChange(at(i), from.Index(i), yamlnav.Node{}))
		}
		deleted = deleted[:0]
	}
	for i := range diffs {
		diff := &diffs[i]
		n := len([]rune(diff.Text))
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range n {
				deleted = append(deleted, fi)
				fi++
			}
		case diffpatch.DiffInsert:
			for range n {
				if len(deleted) != 0 {
					d.res = append(d.res, makeChange(at(ti), from.Index(deleted[0]), to.Index(ti)))
					deleted = deleted[1:]
				} else {
					d.res = append(d.res, makeChange(at(ti), yamlnav.Node{}, to.Index(ti)))
				}
				ti++
			}
			flush()
		case diffpatch.DiffEqual:
			flush()
			for range n {
				d.diff(at(ti), from.Index(fi), to.Index(ti))
				fi++
				ti++
			}
		}
	}
	flush()
}

func mapValues(m map[string]rune, node yamlnav.Node) []rune {
	rs := make([]rune, 0, node.Size())
	for _, v := range node.Items() {
		sum := summaryStr(v)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs = append(rs, r)
	}
	return rs
}

func summaryStr(node yamlnav.Node) string {
	switch node.Type() {
	case yamlnav.Scalar:
		if strings.Contains(node.Text(), "\n") {
			return node.Type().String() + "/m"
		}
		return node.Type().String() + "-" + node.Text()
	default:
		return node.Type().String()
	}
}
