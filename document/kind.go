package document

import "fmt"

type Kind int

const (
	NoNode Kind = iota
	ScalarNode
	SequenceNode
	MappingNode
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		NoNode:       "NoNode",
		ScalarNode:   "Scalar",
		SequenceNode: "Sequence",
		MappingNode:  "Mapping",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"NoNode":   NoNode,
		"Scalar":   ScalarNode,
		"Sequence": SequenceNode,
		"Mapping":  MappingNode,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func (k Kind) IsCollection() bool {
	return k == SequenceNode || k == MappingNode
}
