package document

import (
	"fmt"
	"math/big"

	"gopkg.in/yaml.v3"

	"deep-cloner/value"
)

type encoder struct {
	onPath map[any]bool
}

// Encode renders a value graph as YAML. Parent chains are written under
// "$parent". Cyclic graphs are rejected with ErrCycle.
func Encode(v any) ([]byte, error) {
	e := &encoder{onPath: make(map[any]bool)}

	n, err := e.encode(v)
	if err != nil {
		return nil, err
	}

	return yaml.Marshal(n)
}

func (e *encoder) enter(id any) error {
	if e.onPath[id] {
		return ErrCycle
	}

	e.onPath[id] = true
	return nil
}

func (e *encoder) encode(v any) (*yaml.Node, error) {
	switch x := v.(type) {
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil

	case value.Symbol:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: SymbolTag, Value: x.Description()}, nil

	case *big.Int:
		if x == nil {
			return e.encode(nil)
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: BigIntTag, Value: x.String()}, nil

	case *value.Record:
		if x == nil {
			return e.encode(nil)
		}
		return e.encodeRecord(x)

	case []any:
		if x == nil {
			return e.encode(nil)
		}
		return e.encodeSequence(x)
	}

	n := &yaml.Node{}
	if err := n.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode %T: %w", v, err)
	}

	return n, nil
}

func (e *encoder) encodeRecord(r *value.Record) (*yaml.Node, error) {
	if err := e.enter(r); err != nil {
		return nil, err
	}
	defer delete(e.onPath, r)

	n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range r.Keys() {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k.Name()}
		if s, ok := k.Symbol(); ok {
			keyNode = &yaml.Node{Kind: yaml.ScalarNode, Tag: SymbolTag, Value: s.Description()}
		}

		fv, _ := r.Get(k)
		valNode, err := e.encode(fv)
		if err != nil {
			return nil, err
		}

		n.Content = append(n.Content, keyNode, valNode)
	}

	if p := r.Parent(); p != nil {
		parentNode, err := e.encode(p)
		if err != nil {
			return nil, err
		}

		n.Content = append(n.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: ParentKey},
			parentNode,
		)
	}

	return n, nil
}

func (e *encoder) encodeSequence(s []any) (*yaml.Node, error) {
	if len(s) > 0 {
		id := &s[0]
		if err := e.enter(id); err != nil {
			return nil, err
		}
		defer delete(e.onPath, id)
	}

	n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, el := range s {
		child, err := e.encode(el)
		if err != nil {
			return nil, err
		}

		n.Content = append(n.Content, child)
	}

	return n, nil
}
