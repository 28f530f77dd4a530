package main

import (
	"strings"

	"github.com/signadot/yamlnav"
	"github.com/signadot/yamlnav/libdiff"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	TypeColor ColorAttr = iota
	KeyColor
	ValueColor
	MarkColor
	PathColor
)

type Colorable struct {
	Type yamlnav.Type
	Attr ColorAttr
}

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
	Ops     map[libdiff.Op]func(string, ...any) string
}

func NoColors() *Colors {
	return &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
		Ops:     map[libdiff.Op]func(string, ...any) string{},
	}
}

func NewColors() *Colors {
	colors := NoColors()
	for _, t := range []yamlnav.Type{yamlnav.Null, yamlnav.Scalar, yamlnav.Sequence, yamlnav.Map} {
		colors.Map[Colorable{Type: t, Attr: TypeColor}] = color.RGB(74, 92, 138).SprintfFunc()
		colors.Map[Colorable{Type: t, Attr: MarkColor}] = color.RGB(96, 96, 96).SprintfFunc()
		colors.Map[Colorable{Type: t, Attr: PathColor}] = color.RGB(255, 0, 196).SprintfFunc()
	}
	colors.Map[Colorable{Type: yamlnav.Map, Attr: KeyColor}] = color.RGB(128, 168, 196).SprintfFunc()
	colors.Map[Colorable{Type: yamlnav.Scalar, Attr: ValueColor}] = color.RGB(8, 196, 16).SprintfFunc()
	colors.Map[Colorable{Type: yamlnav.Null, Attr: ValueColor}] = color.RGB(168, 0, 196).SprintfFunc()

	colors.Ops[libdiff.Added] = color.GreenString
	colors.Ops[libdiff.Removed] = color.RedString
	colors.Ops[libdiff.Changed] = color.YellowString
	colors.Ops[libdiff.Retyped] = color.CyanString

	for k, f := range colors.Map {
		colors.Map[k] = escaped(f)
	}
	for k, f := range colors.Ops {
		colors.Ops[k] = escaped(f)
	}
	return colors
}

func escaped(f func(string, ...any) string) func(string, ...any) string {
	return func(v string, _ ...any) string {
		return f(strings.Replace(v, "%", "%%", -1))
	}
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(t yamlnav.Type, a ColorAttr, s string) string {
	return c.Get(t, a)(s)
}

func (c *Colors) Get(t yamlnav.Type, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Type: t, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}

func (c *Colors) Op(op libdiff.Op, s string) string {
	f := c.Ops[op]
	if f == nil {
		return c.Default(s)
	}
	return f(s)
}
