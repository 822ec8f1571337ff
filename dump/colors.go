package dump

import (
	"strings"

	"github.com/fatih/color"
	"github.com/signadot/vnodes/abi"
)

type Colorable struct {
	Kind abi.Flags
	Attr ColorAttr
}

type ColorAttr int

const (
	KeyColor ColorAttr = iota
	ValueColor
	SepColor
	InsertColor
	DeleteColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range kinds {
		colors.Map[Colorable{Kind: k, Attr: KeyColor}] = color.RGB(196, 96, 16).SprintfFunc()
		colors.Map[Colorable{Kind: k, Attr: SepColor}] = color.RGB(96, 96, 96).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Kind = abi.Void
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()
	able.Attr = InsertColor
	colors.Map[able] = color.GreenString
	able.Attr = DeleteColor
	colors.Map[able] = color.RedString
	able.Attr = ValueColor

	able.Kind = abi.Integer
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Kind = abi.Float
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Kind = abi.Bool
	colors.Map[able] = color.CyanString
	able.Kind = abi.String
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
	able.Kind = abi.Interned
	colors.Map[able] = color.RGB(88, 158, 86).SprintfFunc()
	able.Kind = abi.Err
	colors.Map[able] = color.RedString

	able.Kind = abi.Node
	able.Attr = KeyColor
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

var kinds = []abi.Flags{abi.Void, abi.Node, abi.String, abi.Integer, abi.Float, abi.Bool, abi.Interned, abi.Err}

func colorDefault(v string, _ ...any) string { return v }

// Color is nil safe; a nil *Colors leaves s as is.
func (c *Colors) Color(k abi.Flags, a ColorAttr, s string) string {
	if c == nil {
		return s
	}
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k abi.Flags, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k.Kind(), Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
