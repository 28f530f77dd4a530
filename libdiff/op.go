package libdiff

import "fmt"

type Op int

const (
	Added Op = iota
	Removed
	Changed
	Retyped
)

func (o Op) String() string {
	s, ok := map[Op]string{
		Added:   "Added",
		Removed: "Removed",
		Changed: "Changed",
		Retyped: "Retyped",
	}[o]
	if ok {
		return s
	}
	return "<unknown op>"
}

// Sign returns the one character prefix used when printing changes.
func (o Op) Sign() string {
	switch o {
	case Added:
		return "+"
	case Removed:
		return "-"
	case Changed:
		return "~"
	case Retyped:
		return "!"
	}
	return "?"
}

func (o Op) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Op) UnmarshalText(d []byte) error {
	oo, ok := map[string]Op{
		"Added":   Added,
		"Removed": Removed,
		"Changed": Changed,
		"Retyped": Retyped,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized op %q", d)
	}
	*o = oo
	return nil
}
