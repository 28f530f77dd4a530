package token

import (
	"fmt"
	"sort"
	"strconv"
	"unicode/utf8"
)

// PosDoc indexes the line breaks of a source document so that byte
// offsets and line/column pairs can be converted in both directions.
type PosDoc struct {
	d []byte
	n []int
}

func NewPosDoc(d []byte) *PosDoc {
	p := &PosDoc{d: d}
	for i, c := range d {
		if c == '\n' {
			p.nl(i)
		}
	}
	return p
}

func (p *PosDoc) nl(i int) {
	if len(p.n) > 0 && p.n[len(p.n)-1] == i {
		return
	}
	p.n = append(p.n, i)
}

// Bytes returns the indexed source.
func (p *PosDoc) Bytes() []byte {
	return p.d
}

// Lines returns the number of lines in the document.
func (p *PosDoc) Lines() int {
	return len(p.n) + 1
}

// LineCol returns the 0-based line and byte column of off.
func (p *PosDoc) LineCol(off int) (int, int) {
	N := len(p.n)
	di := sort.Search(N, func(i int) bool {
		return p.n[i] >= off
	})
	switch di {
	case 0:
		return 0, off
	default:
		return di, off - p.n[di-1] - 1
	}
}

// LineRuneCol is like LineCol but counts the column in runes.
func (p *PosDoc) LineRuneCol(off int) (int, int) {
	off = p.clamp(off)
	line, col := p.LineCol(off)
	start := off - col
	return line, utf8.RuneCount(p.d[start:off])
}

// Offset returns the byte offset of the 0-based line and rune column.
// Lines past the end map to the end of the document and columns past
// the end of a line map to the line break.
func (p *PosDoc) Offset(line, runeCol int) int {
	if line < 0 {
		return 0
	}
	if line > len(p.n) {
		return len(p.d)
	}
	start := 0
	if line > 0 {
		start = p.n[line-1] + 1
	}
	end := len(p.d)
	if line < len(p.n) {
		end = p.n[line]
	}
	off := start
	for i := 0; i < runeCol && off < end; i++ {
		_, sz := utf8.DecodeRune(p.d[off:end])
		off += sz
	}
	return off
}

func (p *PosDoc) clamp(off int) int {
	return max(0, min(off, len(p.d)))
}

func (d *PosDoc) Pos(i int) *Pos {
	return &Pos{
		I: d.clamp(i),
		D: d,
	}
}

func (p *PosDoc) End() *Pos {
	return &Pos{
		I: len(p.d),
		D: p,
	}
}

type Pos struct {
	I int
	D *PosDoc
}

func (p *Pos) LineCol() (int, int) {
	return p.D.LineRuneCol(p.I)
}

func (p *Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

func (p *Pos) Col() int {
	_, c := p.LineCol()
	return c
}

func (p Pos) String() string {
	sample := string(p.D.d[max(0, p.I-5):min(p.I+5, len(p.D.d))])
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`...%s...` at offset %d (line=%d, col=%d)", sample, p.I, p.Line(), p.Col())
}
